// Package ballshooter implements the ball shooter minigame payout.
package ballshooter

import (
	"errors"
	"fmt"

	"github.com/yt2025id-lab/panda-petgame/internal/minigame"
)

// MaxGoals caps the plausible goal count for a single run.
const MaxGoals = 50

// Errors for the ball shooter game.
var (
	ErrNegativeMetric = errors.New("goal count must be non-negative")
	ErrMetricTooHigh  = errors.New("goal count exceeds maximum")
)

// Game converts a run's goal count into the payout triple.
type Game struct{}

// New creates the ball shooter game.
func New() *Game {
	return &Game{}
}

// Name returns the game's display name.
func (g *Game) Name() string { return "Ball Shooter" }

// Command returns the command that reports this game's result.
func (g *Game) Command() string { return "ballshooter" }

// Description returns a brief description of the game.
func (g *Game) Description() string {
	return "Shoot balls past the keeper: 10 XP and 25 coins per goal!"
}

// MaxMetric returns the largest accepted goal count.
func (g *Game) MaxMetric() int64 { return MaxGoals }

// ValidateMetric checks the reported goal count.
func (g *Game) ValidateMetric(metric int64) error {
	if metric < 0 {
		return ErrNegativeMetric
	}
	if metric > MaxGoals {
		return fmt.Errorf("%w: max is %d", ErrMetricTooHigh, MaxGoals)
	}
	return nil
}

// Rewards computes the payout: xp = goals*10, coins = goals*25.
func (g *Game) Rewards(metric int64, level int) (*minigame.Result, error) {
	if err := g.ValidateMetric(metric); err != nil {
		return nil, err
	}
	return &minigame.Result{
		Score: metric,
		XP:    float64(metric * 10),
		Coins: metric * 25,
	}, nil
}
