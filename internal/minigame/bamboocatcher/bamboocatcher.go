// Package bamboocatcher implements the bamboo catcher minigame payout.
package bamboocatcher

import (
	"errors"
	"fmt"

	"github.com/yt2025id-lab/panda-petgame/internal/minigame"
)

// MaxCatches caps the plausible catch count for a single run.
const MaxCatches = 200

// Errors for the bamboo catcher game.
var (
	ErrNegativeMetric = errors.New("catch count must be non-negative")
	ErrMetricTooHigh  = errors.New("catch count exceeds maximum")
)

// Game converts a run's catch count into the payout triple. The coin
// payout scales with the pet's level.
type Game struct{}

// New creates the bamboo catcher game.
func New() *Game {
	return &Game{}
}

// Name returns the game's display name.
func (g *Game) Name() string { return "Bamboo Catcher" }

// Command returns the command that reports this game's result.
func (g *Game) Command() string { return "bamboocatcher" }

// Description returns a brief description of the game.
func (g *Game) Description() string {
	return "Catch falling bamboo: 5 XP per catch, coins scale with your level!"
}

// MaxMetric returns the largest accepted catch count.
func (g *Game) MaxMetric() int64 { return MaxCatches }

// ValidateMetric checks the reported catch count.
func (g *Game) ValidateMetric(metric int64) error {
	if metric < 0 {
		return ErrNegativeMetric
	}
	if metric > MaxCatches {
		return fmt.Errorf("%w: max is %d", ErrMetricTooHigh, MaxCatches)
	}
	return nil
}

// Rewards computes the payout: xp = catches*5, coins = catches*2 + level*10.
func (g *Game) Rewards(metric int64, level int) (*minigame.Result, error) {
	if err := g.ValidateMetric(metric); err != nil {
		return nil, err
	}
	if level < 1 {
		level = 1
	}
	return &minigame.Result{
		Score: metric,
		XP:    float64(metric * 5),
		Coins: metric*2 + int64(level)*10,
	}, nil
}
