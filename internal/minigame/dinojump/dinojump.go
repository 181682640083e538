// Package dinojump implements the dino jump minigame payout.
package dinojump

import (
	"errors"
	"fmt"

	"github.com/yt2025id-lab/panda-petgame/internal/minigame"
)

// MaxDistance caps the plausible distance score for a single run.
const MaxDistance = 5000

// Errors for the dino jump game.
var (
	ErrNegativeMetric = errors.New("distance must be non-negative")
	ErrMetricTooHigh  = errors.New("distance exceeds maximum")
)

// Game converts a run's distance score into the payout triple.
type Game struct{}

// New creates the dino jump game.
func New() *Game {
	return &Game{}
}

// Name returns the game's display name.
func (g *Game) Name() string { return "Dino Jump" }

// Command returns the command that reports this game's result.
func (g *Game) Command() string { return "dinojump" }

// Description returns a brief description of the game.
func (g *Game) Description() string {
	return "Jump the cacti and run as far as you can: 1 XP per 2 distance!"
}

// MaxMetric returns the largest accepted distance.
func (g *Game) MaxMetric() int64 { return MaxDistance }

// ValidateMetric checks the reported distance.
func (g *Game) ValidateMetric(metric int64) error {
	if metric < 0 {
		return ErrNegativeMetric
	}
	if metric > MaxDistance {
		return fmt.Errorf("%w: max is %d", ErrMetricTooHigh, MaxDistance)
	}
	return nil
}

// Rewards computes the payout: xp = floor(distance*0.5),
// coins = floor(distance*0.3).
func (g *Game) Rewards(metric int64, level int) (*minigame.Result, error) {
	if err := g.ValidateMetric(metric); err != nil {
		return nil, err
	}
	return &minigame.Result{
		Score: metric,
		XP:    float64(int64(float64(metric) * 0.5)),
		Coins: int64(float64(metric) * 0.3),
	}, nil
}
