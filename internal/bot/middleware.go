// Package bot provides middleware for the Telegram bot.
package bot

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v3"

	"github.com/yt2025id-lab/panda-petgame/internal/config"
)

// privateUserCache tracks users who have used the bot in whitelisted
// groups, which allows them to use the bot in private chat.
var (
	privateUserCache = make(map[int64]bool)
	privateUserMu    sync.RWMutex
)

// AllowPrivateUser marks a user as allowed to use private chat.
func AllowPrivateUser(userID int64) {
	privateUserMu.Lock()
	defer privateUserMu.Unlock()
	privateUserCache[userID] = true
}

// IsPrivateUserAllowed checks if a user is allowed to use private chat.
func IsPrivateUserAllowed(userID int64) bool {
	privateUserMu.RLock()
	defer privateUserMu.RUnlock()
	return privateUserCache[userID]
}

// WhitelistMiddleware creates a middleware that checks if the chat is
// whitelisted.
func WhitelistMiddleware(cfg *config.Config) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			chat := c.Chat()
			sender := c.Sender()

			if chat == nil || sender == nil {
				return nil
			}

			if chat.Type == tele.ChatPrivate {
				if IsPrivateUserAllowed(sender.ID) {
					return next(c)
				}

				// An empty whitelist allows all private chats
				if len(cfg.Whitelist.Chats) == 0 {
					return next(c)
				}

				log.Debug().
					Int64("user_id", sender.ID).
					Msg("Ignoring private chat from user not in whitelist cache")
				return nil
			}

			if !cfg.IsChatAllowed(chat.ID) {
				log.Debug().
					Int64("chat_id", chat.ID).
					Msg("Ignoring command from non-whitelisted chat")
				return nil
			}

			AllowPrivateUser(sender.ID)

			return next(c)
		}
	}
}

// AdminMiddleware creates a middleware that checks if the user is an
// admin.
func AdminMiddleware(cfg *config.Config) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}

			if !cfg.IsAdmin(sender.ID) {
				log.Warn().
					Int64("user_id", sender.ID).
					Str("command", c.Text()).
					Msg("Non-admin attempted admin command")
				return c.Reply("❌ This command requires admin permissions")
			}

			return next(c)
		}
	}
}

// LoggingMiddleware creates a middleware that logs all incoming
// messages.
func LoggingMiddleware() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			chat := c.Chat()

			logEvent := log.Debug()
			if sender != nil {
				logEvent = logEvent.
					Int64("user_id", sender.ID).
					Str("username", sender.Username)
			}
			if chat != nil {
				logEvent = logEvent.
					Int64("chat_id", chat.ID).
					Str("chat_type", string(chat.Type))
			}
			logEvent.
				Str("text", c.Text()).
				Msg("Received message")

			return next(c)
		}
	}
}

// RecoveryMiddleware creates a middleware that recovers from panics.
func RecoveryMiddleware() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			defer func() {
				if r := recover(); r != nil {
					log.Error().
						Interface("panic", r).
						Msg("Recovered from panic in handler")
					_ = c.Reply("❌ Something went wrong, please try again later")
				}
			}()
			return next(c)
		}
	}
}

// userLimiter pairs a token bucket with its last use for cleanup.
type userLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out a token-bucket limiter per user and drops
// buckets that have been idle for an hour.
type RateLimiter struct {
	perSecond float64
	burst     int

	mu       sync.Mutex
	limiters map[int64]*userLimiter
}

// NewRateLimiter creates a per-user rate limiter.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		perSecond: perSecond,
		burst:     burst,
		limiters:  make(map[int64]*userLimiter),
	}
}

// Allow reports whether the user may proceed right now.
func (r *RateLimiter) Allow(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.limiters[userID]
	if !ok {
		u = &userLimiter{limiter: rate.NewLimiter(rate.Limit(r.perSecond), r.burst)}
		r.limiters[userID] = u
	}
	u.lastSeen = time.Now()
	return u.limiter.Allow()
}

// Cleanup drops limiters idle longer than the given age.
func (r *RateLimiter) Cleanup(maxIdle time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	for id, u := range r.limiters {
		if u.lastSeen.Before(cutoff) {
			delete(r.limiters, id)
		}
	}
}

// RateLimitMiddleware creates a middleware that silently drops updates
// from users sending commands faster than the configured rate.
func RateLimitMiddleware(limiter *RateLimiter) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}

			if !limiter.Allow(sender.ID) {
				log.Debug().
					Int64("user_id", sender.ID).
					Msg("Rate limited")
				return nil
			}

			return next(c)
		}
	}
}
