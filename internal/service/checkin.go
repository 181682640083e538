package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yt2025id-lab/panda-petgame/internal/mission"
	"github.com/yt2025id-lab/panda-petgame/internal/model"
	"github.com/yt2025id-lab/panda-petgame/internal/repository"
	"github.com/yt2025id-lab/panda-petgame/internal/session"
)

// StreakMilestones maps consecutive-day counts to bonus coins paid on
// top of the base check-in bonus when the streak reaches them.
var StreakMilestones = map[int]int64{
	3:  100,
	7:  300,
	14: 500,
	30: 1000,
}

// CheckinService runs the daily check-in and streak bookkeeping.
type CheckinService struct {
	sessions   *session.Manager
	streakRepo *repository.StreakRepository
	txRepo     *repository.TransactionRepository
	baseBonus  int64
}

// NewCheckinService creates a CheckinService.
func NewCheckinService(
	sessions *session.Manager,
	streakRepo *repository.StreakRepository,
	txRepo *repository.TransactionRepository,
	baseBonus int64,
) *CheckinService {
	return &CheckinService{
		sessions:   sessions,
		streakRepo: streakRepo,
		txRepo:     txRepo,
		baseBonus:  baseBonus,
	}
}

// CheckinResult reports a successful check-in.
type CheckinResult struct {
	Streak         int
	BaseBonus      int64
	MilestoneBonus int64
	TotalCoins     int64
}

// NextStreak computes the streak count a check-in on day `today` would
// produce, or ok=false when the player already checked in today.
// Checking in the day after the last check-in extends the streak; any
// gap resets it to 1.
func NextStreak(record *model.StreakRecord, today time.Time) (int, bool) {
	todayKey := mission.DayKey(today)
	if record.LastDate == todayKey {
		return record.Count, false
	}
	yesterdayKey := mission.DayKey(today.AddDate(0, 0, -1))
	if record.LastDate == yesterdayKey {
		return record.Count + 1, true
	}
	return 1, true
}

// MilestoneBonus returns the extra coins paid when a streak reaches a
// milestone, or 0.
func MilestoneBonus(streak int) int64 {
	return StreakMilestones[streak]
}

// Checkin performs the daily check-in: extend or reset the streak, pay
// the base bonus plus any milestone bonus, and persist.
func (c *CheckinService) Checkin(ctx context.Context, playerID int64, username string) (*CheckinResult, error) {
	s, err := c.sessions.Get(ctx, playerID, username)
	if err != nil {
		return nil, err
	}

	var result CheckinResult
	err = c.sessions.Lock(playerID, func() error {
		record, err := c.streakRepo.Get(ctx, playerID)
		if err != nil {
			return err
		}

		now := c.sessions.Now()
		streak, ok := NextStreak(record, now)
		if !ok {
			return ErrAlreadyCheckedIn
		}

		milestone := MilestoneBonus(streak)
		total := c.baseBonus + milestone

		record.Count = streak
		record.LastDate = mission.DayKey(now)
		if err := c.streakRepo.Save(ctx, playerID, record); err != nil {
			return err
		}

		s.Player.Coins += total
		s.MarkDirty()

		desc := fmt.Sprintf("day %d check-in", streak)
		if _, err := c.txRepo.Create(ctx, playerID, c.baseBonus, model.TxTypeCheckin, &desc); err != nil {
			log.Error().Err(err).Int64("player_id", playerID).Msg("Failed to record check-in transaction")
		}
		if milestone > 0 {
			mdesc := fmt.Sprintf("%d-day streak milestone", streak)
			if _, err := c.txRepo.Create(ctx, playerID, milestone, model.TxTypeStreak, &mdesc); err != nil {
				log.Error().Err(err).Int64("player_id", playerID).Msg("Failed to record streak transaction")
			}
		}

		result = CheckinResult{
			Streak:         streak,
			BaseBonus:      c.baseBonus,
			MilestoneBonus: milestone,
			TotalCoins:     total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := c.sessions.Flush(ctx, playerID); err != nil {
		log.Error().Err(err).Int64("player_id", playerID).Msg("Failed to flush after check-in")
	}
	return &result, nil
}
