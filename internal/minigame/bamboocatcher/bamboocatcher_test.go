package bamboocatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestBambooCatcher_Rewards tests the payout for various catch counts
// and levels.
func TestBambooCatcher_Rewards(t *testing.T) {
	game := New()

	tests := []struct {
		name      string
		catches   int64
		level     int
		wantXP    float64
		wantCoins int64
	}{
		{"no catches level 1", 0, 1, 0, 10},
		{"ten catches level 1", 10, 1, 50, 30},
		{"ten catches level 5", 10, 5, 50, 70},
		{"max catches level 3", 200, 3, 1000, 430},
		{"zero level treated as one", 10, 0, 50, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := game.Rewards(tt.catches, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.catches, result.Score)
			assert.Equal(t, tt.wantXP, result.XP)
			assert.Equal(t, tt.wantCoins, result.Coins)
		})
	}
}

// TestBambooCatcher_ValidateMetric tests metric validation.
func TestBambooCatcher_ValidateMetric(t *testing.T) {
	game := New()

	assert.NoError(t, game.ValidateMetric(0))
	assert.NoError(t, game.ValidateMetric(200))
	assert.ErrorIs(t, game.ValidateMetric(-1), ErrNegativeMetric)
	assert.ErrorIs(t, game.ValidateMetric(201), ErrMetricTooHigh)
}

// TestBambooCatcher_Interface tests the game's metadata.
func TestBambooCatcher_Interface(t *testing.T) {
	game := New()

	assert.Equal(t, "Bamboo Catcher", game.Name())
	assert.Equal(t, "bamboocatcher", game.Command())
	assert.NotEmpty(t, game.Description())
	assert.Equal(t, int64(MaxCatches), game.MaxMetric())
}

// TestBambooCatcherLevelScalingProperty tests that the level bonus adds
// exactly 10 coins per level and never touches the XP payout.
func TestBambooCatcherLevelScalingProperty(t *testing.T) {
	game := New()

	rapid.Check(t, func(t *rapid.T) {
		catches := rapid.Int64Range(0, MaxCatches).Draw(t, "catches")
		level := rapid.IntRange(1, 50).Draw(t, "level")

		base, err := game.Rewards(catches, 1)
		if err != nil {
			t.Fatalf("valid catch count %d rejected: %v", catches, err)
		}
		scaled, err := game.Rewards(catches, level)
		if err != nil {
			t.Fatalf("valid catch count %d rejected: %v", catches, err)
		}

		if scaled.XP != base.XP {
			t.Fatalf("catches=%d level=%d: xp changed with level: %v != %v",
				catches, level, scaled.XP, base.XP)
		}
		wantCoins := base.Coins + int64(level-1)*10
		if scaled.Coins != wantCoins {
			t.Fatalf("catches=%d level=%d: expected coins=%d, got=%d",
				catches, level, wantCoins, scaled.Coins)
		}
	})
}
