package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yt2025id-lab/panda-petgame/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
}

// TestNextStreak tests streak extension, reset and same-day rejection.
func TestNextStreak(t *testing.T) {
	tests := []struct {
		name   string
		record model.StreakRecord
		today  time.Time
		want   int
		wantOK bool
	}{
		{"first ever check-in", model.StreakRecord{}, day(2026, 3, 10), 1, true},
		{"consecutive day extends", model.StreakRecord{Count: 2, LastDate: "2026-03-09"}, day(2026, 3, 10), 3, true},
		{"same day rejected", model.StreakRecord{Count: 3, LastDate: "2026-03-10"}, day(2026, 3, 10), 3, false},
		{"one day gap resets", model.StreakRecord{Count: 9, LastDate: "2026-03-08"}, day(2026, 3, 10), 1, true},
		{"long gap resets", model.StreakRecord{Count: 30, LastDate: "2025-12-01"}, day(2026, 3, 10), 1, true},
		{"extends across month boundary", model.StreakRecord{Count: 5, LastDate: "2026-02-28"}, day(2026, 3, 1), 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextStreak(&tt.record, tt.today)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestMilestoneBonus tests the fixed milestone table.
func TestMilestoneBonus(t *testing.T) {
	assert.Equal(t, int64(0), MilestoneBonus(1))
	assert.Equal(t, int64(0), MilestoneBonus(2))
	assert.Equal(t, int64(100), MilestoneBonus(3))
	assert.Equal(t, int64(0), MilestoneBonus(4))
	assert.Equal(t, int64(300), MilestoneBonus(7))
	assert.Equal(t, int64(500), MilestoneBonus(14))
	assert.Equal(t, int64(1000), MilestoneBonus(30))
	assert.Equal(t, int64(0), MilestoneBonus(31))
}
