// Package session owns the live, in-memory game state. Each player has
// one Session holding the authoritative player record and mission
// ledgers; the database is a write-behind copy flushed periodically and
// on shutdown.
package session

import (
	"time"

	"github.com/yt2025id-lab/panda-petgame/internal/mission"
	"github.com/yt2025id-lab/panda-petgame/internal/model"
)

// Transient presentation windows.
const (
	EatingDuration  = 2 * time.Second
	WashingDuration = 2 * time.Second
	MessageDuration = 5 * time.Second
)

// Session is one player's live state. All access must happen under the
// player's lock; the session itself holds no locking.
type Session struct {
	Player *model.Player

	// Static holds the permanent missions; Daily holds the three
	// missions selected for DayKey and is rebuilt at day rollover.
	Static *mission.Ledger
	Daily  *mission.Ledger
	DayKey string

	dirty bool

	eatingUntil  time.Time
	washingUntil time.Time
	message      string
	messageUntil time.Time
}

// New creates a session around a loaded player and ledgers.
func New(p *model.Player, static, daily *mission.Ledger, dayKey string) *Session {
	return &Session{
		Player: p,
		Static: static,
		Daily:  daily,
		DayKey: dayKey,
	}
}

// MarkDirty flags the session for the next flush.
func (s *Session) MarkDirty() {
	s.dirty = true
}

// Dirty reports whether the session has unflushed changes.
func (s *Session) Dirty() bool {
	return s.dirty
}

// ClearDirty resets the flush flag after a successful flush.
func (s *Session) ClearDirty() {
	s.dirty = false
}

// StartEating opens the eating animation window.
func (s *Session) StartEating(now time.Time) {
	s.eatingUntil = now.Add(EatingDuration)
}

// IsEating reports whether the eating window is still open.
func (s *Session) IsEating(now time.Time) bool {
	return now.Before(s.eatingUntil)
}

// StartWashing opens the washing animation window.
func (s *Session) StartWashing(now time.Time) {
	s.washingUntil = now.Add(WashingDuration)
}

// IsWashing reports whether the washing window is still open.
func (s *Session) IsWashing(now time.Time) bool {
	return now.Before(s.washingUntil)
}

// Say shows a dialogue message for the standard display window,
// replacing any message already showing.
func (s *Session) Say(msg string, now time.Time) {
	s.message = msg
	s.messageUntil = now.Add(MessageDuration)
}

// ClearMessage drops any pending dialogue, e.g. when the pet falls
// asleep.
func (s *Session) ClearMessage() {
	s.message = ""
	s.messageUntil = time.Time{}
}

// Message returns the currently visible dialogue line, or "" once the
// display window has passed.
func (s *Session) Message(now time.Time) string {
	if now.Before(s.messageUntil) {
		return s.message
	}
	return ""
}

// RollDay replaces the daily ledger for a new calendar day. Progress
// from the previous day is already persisted under its own day key.
func (s *Session) RollDay(now time.Time) {
	s.Daily = mission.NewLedger(mission.DailyMissions(now), nil)
	s.DayKey = mission.DayKey(now)
	s.dirty = true
}
