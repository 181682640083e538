package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/yt2025id-lab/panda-petgame/internal/config"
)

// TestAdminCheckProperty verifies that a user is recognized as an admin
// if and only if their ID appears in the configured admin list.
func TestAdminCheckProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		numAdmins := rapid.IntRange(1, 10).Draw(t, "numAdmins")
		adminIDs := make([]int64, numAdmins)
		adminSet := make(map[int64]bool)
		for i := 0; i < numAdmins; i++ {
			adminIDs[i] = rapid.Int64Range(1, 1000000000).Draw(t, "adminID")
			adminSet[adminIDs[i]] = true
		}

		cfg := &config.Config{
			Admin: config.AdminConfig{IDs: adminIDs},
		}

		userID := rapid.Int64Range(1, 1000000000).Draw(t, "userID")
		if cfg.IsAdmin(userID) != adminSet[userID] {
			t.Fatalf("admin check mismatch: userID=%d, adminIDs=%v", userID, adminIDs)
		}

		// A known admin must always be recognized.
		known := adminIDs[rapid.IntRange(0, numAdmins-1).Draw(t, "adminIndex")]
		if !cfg.IsAdmin(known) {
			t.Fatalf("known admin %d not recognized, adminIDs=%v", known, adminIDs)
		}
	})
}

// TestWhitelistEnforcementProperty verifies that group chats are allowed
// if and only if they appear in the whitelist, and that an empty
// whitelist allows everything.
func TestWhitelistEnforcementProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		numChats := rapid.IntRange(1, 10).Draw(t, "numChats")
		chatIDs := make([]int64, numChats)
		chatSet := make(map[int64]bool)
		for i := 0; i < numChats; i++ {
			// Group chat IDs are negative.
			chatIDs[i] = -rapid.Int64Range(1, 1000000000).Draw(t, "chatID")
			chatSet[chatIDs[i]] = true
		}

		cfg := &config.Config{
			Whitelist: config.WhitelistConfig{Chats: chatIDs},
		}

		testChatID := -rapid.Int64Range(1, 1000000000).Draw(t, "testChatID")
		if cfg.IsChatAllowed(testChatID) != chatSet[testChatID] {
			t.Fatalf("whitelist check mismatch: chatID=%d, chats=%v", testChatID, chatIDs)
		}
	})
}

func TestEmptyWhitelistAllowsAllChats(t *testing.T) {
	cfg := &config.Config{
		Whitelist: config.WhitelistConfig{Chats: []int64{}},
	}
	assert.True(t, cfg.IsChatAllowed(-123456789))
	assert.True(t, cfg.IsChatAllowed(42))
}

// TestPrivateUserCache verifies the round trip through the private user
// cache used by the whitelist middleware.
func TestPrivateUserCacheProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		userID := rapid.Int64Range(1, 1000000000).Draw(t, "userID")
		AllowPrivateUser(userID)
		if !IsPrivateUserAllowed(userID) {
			t.Fatalf("user %d should be allowed after caching", userID)
		}
	})
}

func TestRateLimiter_BurstThenThrottle(t *testing.T) {
	limiter := NewRateLimiter(1, 3)

	// The burst is spent immediately, further calls are throttled.
	for i := 0; i < 3; i++ {
		require.True(t, limiter.Allow(100), "call %d should pass within burst", i)
	}
	assert.False(t, limiter.Allow(100))

	// Other users have their own bucket.
	assert.True(t, limiter.Allow(200))
}

func TestRateLimiter_Cleanup(t *testing.T) {
	limiter := NewRateLimiter(5, 10)
	limiter.Allow(1)
	limiter.Allow(2)

	limiter.Cleanup(0)
	time.Sleep(time.Millisecond)
	limiter.Cleanup(0)

	// Cleanup must not break subsequent calls.
	assert.True(t, limiter.Allow(1))
}
