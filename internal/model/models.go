// Package model defines the data models for the panda pet game.
package model

import "time"

// PetStats holds the five bounded vital gauges plus progression state.
// Gauges live in [0, 100]; XP is kept below 100 by the level-up loop.
type PetStats struct {
	Hunger  float64 `db:"hunger"`
	Energy  float64 `db:"energy"`
	Fun     float64 `db:"fun"`
	Hygiene float64 `db:"hygiene"`
	Health  float64 `db:"health"`
	XP      float64 `db:"xp"`
	Level   int     `db:"level"`
}

// InitialStats returns the documented starting gauges for a new pet.
func InitialStats() PetStats {
	return PetStats{
		Hunger:  80,
		Energy:  70,
		Fun:     60,
		Hygiene: 90,
		Health:  100,
		XP:      0,
		Level:   1,
	}
}

// InitialCoins is the coin balance granted to a new player.
const InitialCoins int64 = 100

// Player is one player's persistent game state: identity, coin balance,
// pet stats and the sleep flag.
type Player struct {
	TelegramID int64     `db:"telegram_id"`
	Username   string    `db:"username"`
	Coins      int64     `db:"coins"`
	Stats      PetStats  `db:"-"`
	IsSleeping bool      `db:"is_sleeping"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// MissionStatus is the per-player mutable record for one mission.
// Progress is clamped to the mission requirement and Claimed is a
// one-way false -> true latch.
type MissionStatus struct {
	MissionID string  `db:"mission_id"`
	Progress  float64 `db:"progress"`
	Claimed   bool    `db:"claimed"`
}

// StreakRecord tracks consecutive daily check-ins.
// LastDate is an ISO calendar date ("2006-01-02").
type StreakRecord struct {
	Count    int    `db:"count"`
	LastDate string `db:"last_date"`
}

// Transaction represents one coin balance change.
type Transaction struct {
	ID          int64     `db:"id"`
	PlayerID    int64     `db:"player_id"`
	Amount      int64     `db:"amount"`
	Type        string    `db:"type"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// Transaction types for categorizing coin balance changes.
const (
	TxTypeInitial      = "initial"              // Initial balance on account creation
	TxTypeFeed         = "feed_cost"            // Food purchase
	TxTypeMission      = "mission_reward"       // Static mission claim
	TxTypeDailyMission = "daily_mission_reward" // Daily mission claim
	TxTypeMinigame     = "minigame_reward"      // Minigame payout
	TxTypeCheckin      = "checkin_bonus"        // Daily check-in base bonus
	TxTypeStreak       = "streak_bonus"         // Streak milestone bonus
	TxTypeConvert      = "idrx_convert"         // IDRX to coin conversion
	TxTypeAdminAdd     = "admin_add"            // Admin added coins
	TxTypeAdminSet     = "admin_set"            // Admin set balance
)
