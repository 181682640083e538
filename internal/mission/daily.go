package mission

import (
	"time"

	"github.com/yt2025id-lab/panda-petgame/internal/catalog"
)

// DailyCount is how many missions are drawn from the pool each day.
const DailyCount = 3

// DateSeed derives the shuffle seed from a calendar date:
// year*10000 + month*100 + day.
func DateSeed(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// DayKey formats a calendar date as the storage key for daily mission
// statuses. Keying statuses by day makes the midnight reset automatic:
// a new day simply reads and writes fresh records.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DailyMissions returns the day's mission set: a seeded Fisher-Yates
// shuffle of the pool, truncated to DailyCount. It is pure over the
// date: the same day always yields the same ordered set.
func DailyMissions(t time.Time) []catalog.Mission {
	seed := DateSeed(t)
	pool := make([]catalog.Mission, len(catalog.DailyPool))
	copy(pool, catalog.DailyPool)

	for i := len(pool) - 1; i > 0; i-- {
		j := (seed * (i + 7) * 31) % (i + 1)
		if j < 0 {
			j = -j
		}
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:DailyCount]
}
