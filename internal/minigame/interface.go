// Package minigame defines the minigame interface and registry.
// Minigames run on the player's side; the core receives one finished
// result per run, validates the raw metric and converts it into the
// (score, xp, coins) payout triple folded into the simulation.
package minigame

// Result is the payout contract every minigame reports on completion.
// All three values are non-negative.
type Result struct {
	Score int64   // raw score submitted to the leaderboard
	XP    float64 // experience folded into the pet's progression
	Coins int64   // coins credited to the player
}

// Minigame converts a reported raw performance metric into a Result.
// Adding a new minigame only requires implementing this interface and
// registering it.
type Minigame interface {
	// Name returns the game's display name (e.g. "Bamboo Catcher").
	Name() string

	// Command returns the bot command that reports this game's result.
	Command() string

	// Description returns a brief description of the game.
	Description() string

	// MaxMetric returns the largest plausible raw metric for one run.
	MaxMetric() int64

	// ValidateMetric checks the reported raw metric.
	ValidateMetric(metric int64) error

	// Rewards computes the payout for a run. level is the pet's current
	// level; most games ignore it.
	Rewards(metric int64, level int) (*Result, error)
}
