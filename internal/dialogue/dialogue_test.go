package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yt2025id-lab/panda-petgame/internal/model"
)

func fixedRand(v float64) func() float64 {
	return func() float64 { return v }
}

func TestForStats_MoodPriority(t *testing.T) {
	tests := []struct {
		name  string
		stats model.PetStats
		want  string
	}{
		{"hungry wins first", model.PetStats{Hunger: 10, Energy: 10, Fun: 90}, hungryLines[0]},
		{"tired", model.PetStats{Hunger: 50, Energy: 10, Fun: 50, Hygiene: 50, Health: 100}, tiredLines[0]},
		{"happy", model.PetStats{Hunger: 50, Energy: 50, Fun: 90, Hygiene: 50, Health: 100}, happyLines[0]},
		{"sad", model.PetStats{Hunger: 50, Energy: 50, Fun: 10, Hygiene: 50, Health: 100}, sadLines[0]},
		{"dirty", model.PetStats{Hunger: 50, Energy: 50, Fun: 50, Hygiene: 10, Health: 100}, dirtyLines[0]},
		{"sick", model.PetStats{Hunger: 50, Energy: 50, Fun: 50, Hygiene: 50, Health: 30}, sickLines[0]},
		{"default", model.PetStats{Hunger: 50, Energy: 50, Fun: 50, Hygiene: 50, Health: 100}, defaultLines[0]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForStats(tt.stats, fixedRand(0))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestForStats_DeterministicUnderSeededRand(t *testing.T) {
	stats := model.PetStats{Hunger: 50, Energy: 50, Fun: 50, Hygiene: 50, Health: 100}

	a := ForStats(stats, fixedRand(0.5))
	b := ForStats(stats, fixedRand(0.5))

	assert.Equal(t, a, b)
}

func TestForStats_RandNearOneStaysInPool(t *testing.T) {
	stats := model.PetStats{Hunger: 50, Energy: 50, Fun: 50, Hygiene: 50, Health: 100}

	got := ForStats(stats, fixedRand(0.999999))
	assert.Equal(t, defaultLines[len(defaultLines)-1], got)
}

func TestCustom(t *testing.T) {
	assert.Equal(t, "🐼 just woke up", Custom("just woke up"))
}
