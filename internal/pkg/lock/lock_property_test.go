package lock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// TestConcurrentSessionSafetyProperty tests that concurrent mutations
// of the same player's state under the player lock produce the same
// result as sequential execution.
func TestConcurrentSessionSafetyProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		initialCoins := rapid.Int64Range(1000, 100000).Draw(t, "initialCoins")
		numOps := rapid.IntRange(2, 20).Draw(t, "numOps")

		deltas := make([]int64, numOps)
		expected := initialCoins
		for i := range deltas {
			deltas[i] = rapid.Int64Range(-500, 500).Draw(t, "delta")
			expected += deltas[i]
		}

		playerID := rapid.Int64Range(1, 1000000).Draw(t, "playerID")

		pl := NewPlayerLock()
		coins := initialCoins

		var wg sync.WaitGroup
		wg.Add(numOps)
		for _, delta := range deltas {
			go func(d int64) {
				defer wg.Done()
				pl.Lock(playerID)
				defer pl.Unlock(playerID)
				coins += d
			}(delta)
		}
		wg.Wait()

		if coins != expected {
			t.Fatalf("coin mismatch with locking: expected %d, got %d (initial=%d, numOps=%d)",
				expected, coins, initialCoins, numOps)
		}
	})
}

// TestPlayerLock_Independence tests that different players never block
// each other.
func TestPlayerLock_Independence(t *testing.T) {
	pl := NewPlayerLock()

	pl.Lock(1)
	defer pl.Unlock(1)

	// A different player's lock is still free
	assert.True(t, pl.TryLock(2))
	pl.Unlock(2)

	// The held lock is not
	assert.False(t, pl.TryLock(1))
	assert.True(t, pl.IsLocked(1))
	assert.False(t, pl.IsLocked(2))
}

// TestPlayerLock_WithLock tests that WithLock releases on both paths.
func TestPlayerLock_WithLock(t *testing.T) {
	pl := NewPlayerLock()

	err := pl.WithLock(1, func() error { return nil })
	assert.NoError(t, err)
	assert.False(t, pl.IsLocked(1))

	err = pl.WithLock(1, func() error { return assert.AnError })
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, pl.IsLocked(1))
}
