// Package bambooslice implements the bamboo slice minigame payout.
package bambooslice

import (
	"errors"
	"fmt"

	"github.com/yt2025id-lab/panda-petgame/internal/minigame"
)

// MaxScore caps the plausible final score for a single run. Bomb
// penalties can drive a run's score negative, so the accepted range is
// symmetric around zero.
const MaxScore = 10000

// Errors for the bamboo slice game.
var (
	ErrMetricTooLow  = errors.New("score below minimum")
	ErrMetricTooHigh = errors.New("score exceeds maximum")
)

// Game converts a run's final score into the payout triple.
type Game struct{}

// New creates the bamboo slice game.
func New() *Game {
	return &Game{}
}

// Name returns the game's display name.
func (g *Game) Name() string { return "Bamboo Slice" }

// Command returns the command that reports this game's result.
func (g *Game) Command() string { return "bambooslice" }

// Description returns a brief description of the game.
func (g *Game) Description() string {
	return "Slice flying bamboo, dodge the bombs: 1 XP per 5 points!"
}

// MaxMetric returns the largest accepted score.
func (g *Game) MaxMetric() int64 { return MaxScore }

// ValidateMetric checks the reported score. Negative scores are valid
// runs (too many bombs), they just pay nothing.
func (g *Game) ValidateMetric(metric int64) error {
	if metric < -MaxScore {
		return fmt.Errorf("%w: min is %d", ErrMetricTooLow, -MaxScore)
	}
	if metric > MaxScore {
		return fmt.Errorf("%w: max is %d", ErrMetricTooHigh, MaxScore)
	}
	return nil
}

// Rewards computes the payout: xp = score/5, coins = score/10, both
// floored. A negative run is clamped to zero before the split, so the
// payout and the leaderboard score never go negative.
func (g *Game) Rewards(metric int64, level int) (*minigame.Result, error) {
	if err := g.ValidateMetric(metric); err != nil {
		return nil, err
	}
	score := metric
	if score < 0 {
		score = 0
	}
	return &minigame.Result{
		Score: score,
		XP:    float64(score / 5),
		Coins: score / 10,
	}, nil
}
