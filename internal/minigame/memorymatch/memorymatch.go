// Package memorymatch implements the memory match minigame payout.
package memorymatch

import (
	"errors"
	"fmt"

	"github.com/yt2025id-lab/panda-petgame/internal/minigame"
)

// Board and payout constants. The board holds 8 pairs.
const (
	MaxMatches     = 8
	PointsPerMatch = 10
	XPPerMatch     = 5
	CoinsPerMatch  = 3
)

// Errors for the memory match game.
var (
	ErrNegativeMetric = errors.New("match count must be non-negative")
	ErrMetricTooHigh  = errors.New("match count exceeds board size")
)

// Game converts a run's matched-pair count into the payout triple.
type Game struct{}

// New creates the memory match game.
func New() *Game {
	return &Game{}
}

// Name returns the game's display name.
func (g *Game) Name() string { return "Memory Match" }

// Command returns the command that reports this game's result.
func (g *Game) Command() string { return "memorymatch" }

// Description returns a brief description of the game.
func (g *Game) Description() string {
	return "Match the pairs before time runs out: 5 XP and 3 coins per pair!"
}

// MaxMetric returns the board's pair count.
func (g *Game) MaxMetric() int64 { return MaxMatches }

// ValidateMetric checks the reported match count.
func (g *Game) ValidateMetric(metric int64) error {
	if metric < 0 {
		return ErrNegativeMetric
	}
	if metric > MaxMatches {
		return fmt.Errorf("%w: max is %d", ErrMetricTooHigh, MaxMatches)
	}
	return nil
}

// Rewards computes the payout: score = matches*10, xp = matches*5,
// coins = matches*3.
func (g *Game) Rewards(metric int64, level int) (*minigame.Result, error) {
	if err := g.ValidateMetric(metric); err != nil {
		return nil, err
	}
	return &minigame.Result{
		Score: metric * PointsPerMatch,
		XP:    float64(metric * XPPerMatch),
		Coins: metric * CoinsPerMatch,
	}, nil
}
