package mission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yt2025id-lab/panda-petgame/internal/catalog"
	"github.com/yt2025id-lab/panda-petgame/internal/model"
)

func TestLedger_RecordCumulative(t *testing.T) {
	l := NewLedger(catalog.Missions, nil)

	l.Record(catalog.MissionFeed, 1, false)
	l.Record(catalog.MissionFeed, 1, false)

	s, ok := l.Status("m1")
	require.True(t, ok)
	assert.InDelta(t, 2, s.Progress, 1e-9)
	assert.False(t, s.Claimed)
}

func TestLedger_ProgressClampsToRequirement(t *testing.T) {
	l := NewLedger(catalog.Missions, nil)

	l.Record(catalog.MissionWash, 100, false)

	s, _ := l.Status("m3") // requirement 3
	assert.InDelta(t, 3, s.Progress, 1e-9)
}

func TestLedger_RecordAbsolute(t *testing.T) {
	l := NewLedger(catalog.Missions, nil)

	l.Record(catalog.MissionLevel, 2, true)

	s, _ := l.Status("m5")
	assert.InDelta(t, 2, s.Progress, 1e-9)
	assert.True(t, l.Claimable("m5"))
}

func TestLedger_ClaimPaysExactlyOnce(t *testing.T) {
	l := NewLedger(catalog.Missions, nil)
	l.Record(catalog.MissionWash, 3, false)

	reward, ok := l.Claim("m3")
	require.True(t, ok)
	assert.Equal(t, int64(40), reward)

	// Second claim in direct succession is a no-op.
	reward, ok = l.Claim("m3")
	assert.False(t, ok)
	assert.Zero(t, reward)

	s, _ := l.Status("m3")
	assert.True(t, s.Claimed)
}

func TestLedger_ClaimBeforeEligibleIsNoop(t *testing.T) {
	l := NewLedger(catalog.Missions, nil)
	l.Record(catalog.MissionFeed, 2, false)

	reward, ok := l.Claim("m1") // requires 5
	assert.False(t, ok)
	assert.Zero(t, reward)
}

func TestLedger_ClaimedMissionIgnoresProgress(t *testing.T) {
	l := NewLedger(catalog.Missions, nil)
	l.Record(catalog.MissionWash, 3, false)
	_, ok := l.Claim("m3")
	require.True(t, ok)

	l.Record(catalog.MissionWash, 5, false)

	s, _ := l.Status("m3")
	assert.InDelta(t, 3, s.Progress, 1e-9, "claimed mission progress is frozen")
}

func TestLedger_SeedsFromExistingStatuses(t *testing.T) {
	existing := []model.MissionStatus{
		{MissionID: "m1", Progress: 4, Claimed: false},
		{MissionID: "m3", Progress: 3, Claimed: true},
	}
	l := NewLedger(catalog.Missions, existing)

	s, _ := l.Status("m1")
	assert.InDelta(t, 4, s.Progress, 1e-9)
	assert.False(t, l.Claimable("m3"), "claimed status survives reload")
}

func TestDailyMissions_Deterministic(t *testing.T) {
	day := time.Date(2026, time.August, 29, 15, 4, 5, 0, time.Local)

	first := DailyMissions(day)
	second := DailyMissions(day)

	require.Len(t, first, DailyCount)
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID, "same date must select the same ordered set")
	}

	// A different time of the same day selects the same set.
	later := DailyMissions(time.Date(2026, time.August, 29, 23, 59, 0, 0, time.Local))
	for i := range first {
		assert.Equal(t, first[i].ID, later[i].ID)
	}
}

func TestDailyMissions_ChangesAcrossDays(t *testing.T) {
	// Not guaranteed for every adjacent pair, but these two differ.
	a := DailyMissions(time.Date(2026, time.August, 29, 0, 0, 0, 0, time.Local))
	b := DailyMissions(time.Date(2026, time.August, 30, 0, 0, 0, 0, time.Local))

	same := true
	for i := range a {
		if a[i].ID != b[i].ID {
			same = false
		}
	}
	assert.False(t, same, "consecutive days should normally draw different sets")
}

func TestDateSeed(t *testing.T) {
	seed := DateSeed(time.Date(2026, time.August, 29, 10, 0, 0, 0, time.Local))
	assert.Equal(t, 20260829, seed)
}

func TestDayKey(t *testing.T) {
	key := DayKey(time.Date(2026, time.January, 5, 10, 0, 0, 0, time.Local))
	assert.Equal(t, "2026-01-05", key)
}
