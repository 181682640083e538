// Property-based tests for mission ledger invariants.
package mission

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/yt2025id-lab/panda-petgame/internal/catalog"
)

// TestProgressMonotonicityProperty verifies cumulative progress never
// decreases and never exceeds the requirement, across random record and
// claim interleavings.
func TestProgressMonotonicityProperty(t *testing.T) {
	types := []catalog.MissionType{
		catalog.MissionFeed, catalog.MissionPet, catalog.MissionWash, catalog.MissionPlay,
	}

	rapid.Check(t, func(t *rapid.T) {
		l := NewLedger(catalog.Missions, nil)

		prev := make(map[string]float64)
		claimed := make(map[string]bool)

		steps := rapid.IntRange(1, 200).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Float64Range(0, 1).Draw(t, "op") < 0.8 {
				typ := types[rapid.IntRange(0, len(types)-1).Draw(t, "type")]
				amount := rapid.Float64Range(0, 50).Draw(t, "amount")
				l.Record(typ, amount, false)
			} else {
				d := catalog.Missions[rapid.IntRange(0, len(catalog.Missions)-1).Draw(t, "claimIdx")]
				if _, ok := l.Claim(d.ID); ok {
					if claimed[d.ID] {
						t.Fatalf("mission %s paid twice", d.ID)
					}
					claimed[d.ID] = true
				}
			}

			for _, s := range l.Statuses() {
				d, _ := catalog.MissionByID(s.MissionID)
				if s.Progress < prev[s.MissionID] {
					t.Fatalf("progress of %s decreased: %v -> %v", s.MissionID, prev[s.MissionID], s.Progress)
				}
				if s.Progress > d.Requirement {
					t.Fatalf("progress of %s exceeds requirement: %v > %v", s.MissionID, s.Progress, d.Requirement)
				}
				prev[s.MissionID] = s.Progress
			}
		}
	})
}

// TestDailySelectionDeterminismProperty verifies the daily selection is
// pure over the calendar date for arbitrary dates.
func TestDailySelectionDeterminismProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		day := time.Date(
			rapid.IntRange(2024, 2100).Draw(t, "year"),
			time.Month(rapid.IntRange(1, 12).Draw(t, "month")),
			rapid.IntRange(1, 28).Draw(t, "day"),
			rapid.IntRange(0, 23).Draw(t, "hourA"), 0, 0, 0, time.Local,
		)
		other := time.Date(day.Year(), day.Month(), day.Day(),
			rapid.IntRange(0, 23).Draw(t, "hourB"), 59, 59, 0, time.Local)

		a := DailyMissions(day)
		b := DailyMissions(other)

		if len(a) != DailyCount || len(b) != DailyCount {
			t.Fatalf("expected %d daily missions, got %d and %d", DailyCount, len(a), len(b))
		}
		seen := make(map[string]bool)
		for i := range a {
			if a[i].ID != b[i].ID {
				t.Fatalf("selection not deterministic at %d: %s vs %s", i, a[i].ID, b[i].ID)
			}
			if seen[a[i].ID] {
				t.Fatalf("duplicate mission in daily set: %s", a[i].ID)
			}
			seen[a[i].ID] = true
		}
	})
}
