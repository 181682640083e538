package dinojump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestDinoJump_Rewards tests the payout for various distances.
func TestDinoJump_Rewards(t *testing.T) {
	game := New()

	tests := []struct {
		name      string
		distance  int64
		wantXP    float64
		wantCoins int64
	}{
		{"zero distance", 0, 0, 0},
		{"short run", 10, 5, 3},
		{"odd distance floors xp", 101, 50, 30},
		{"long run", 1000, 500, 300},
		{"max distance", 5000, 2500, 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := game.Rewards(tt.distance, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.distance, result.Score)
			assert.Equal(t, tt.wantXP, result.XP)
			assert.Equal(t, tt.wantCoins, result.Coins)
		})
	}
}

// TestDinoJump_ValidateMetric tests metric validation.
func TestDinoJump_ValidateMetric(t *testing.T) {
	game := New()

	assert.NoError(t, game.ValidateMetric(0))
	assert.NoError(t, game.ValidateMetric(5000))
	assert.ErrorIs(t, game.ValidateMetric(-1), ErrNegativeMetric)
	assert.ErrorIs(t, game.ValidateMetric(5001), ErrMetricTooHigh)
}

// TestDinoJump_Interface tests the game's metadata.
func TestDinoJump_Interface(t *testing.T) {
	game := New()

	assert.Equal(t, "Dino Jump", game.Name())
	assert.Equal(t, "dinojump", game.Command())
	assert.NotEmpty(t, game.Description())
	assert.Equal(t, int64(MaxDistance), game.MaxMetric())
}

// TestDinoJumpPayoutProperty tests the payout bounds for any valid
// distance.
func TestDinoJumpPayoutProperty(t *testing.T) {
	game := New()

	rapid.Check(t, func(t *rapid.T) {
		distance := rapid.Int64Range(0, MaxDistance).Draw(t, "distance")

		result, err := game.Rewards(distance, 1)
		if err != nil {
			t.Fatalf("valid distance %d rejected: %v", distance, err)
		}

		if result.XP != float64(int64(float64(distance)*0.5)) {
			t.Fatalf("distance=%d: unexpected xp=%v", distance, result.XP)
		}
		if result.Coins != int64(float64(distance)*0.3) {
			t.Fatalf("distance=%d: unexpected coins=%d", distance, result.Coins)
		}
		if result.XP < 0 || result.Coins < 0 {
			t.Fatalf("distance=%d: negative payout", distance)
		}
	})
}
