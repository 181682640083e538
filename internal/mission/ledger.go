// Package mission implements the mission ledger: per-player progress
// tracking against mission definitions with exactly-once reward payout,
// plus the deterministic daily mission selection.
package mission

import (
	"github.com/yt2025id-lab/panda-petgame/internal/catalog"
	"github.com/yt2025id-lab/panda-petgame/internal/model"
)

// Ledger tracks a player's progress toward a fixed set of mission
// definitions. A status moves in_progress -> claimable -> claimed; no
// transition ever reduces progress or un-claims.
type Ledger struct {
	defs     []catalog.Mission
	statuses map[string]*model.MissionStatus
}

// NewLedger builds a ledger over defs, seeding progress from existing
// statuses where present and zero records otherwise.
func NewLedger(defs []catalog.Mission, existing []model.MissionStatus) *Ledger {
	l := &Ledger{
		defs:     defs,
		statuses: make(map[string]*model.MissionStatus, len(defs)),
	}
	for _, d := range defs {
		l.statuses[d.ID] = &model.MissionStatus{MissionID: d.ID}
	}
	for _, s := range existing {
		if cur, ok := l.statuses[s.MissionID]; ok {
			*cur = s
		}
	}
	return l
}

// Record applies progress to every unclaimed mission of the given type.
// Cumulative records add amount; absolute records set progress to amount.
// Progress is clamped to the mission requirement, and claimed missions
// are untouched.
func (l *Ledger) Record(typ catalog.MissionType, amount float64, absolute bool) {
	for _, d := range l.defs {
		if d.Type != typ {
			continue
		}
		s := l.statuses[d.ID]
		if s.Claimed {
			continue
		}
		progress := s.Progress + amount
		if absolute {
			progress = amount
		}
		if progress > d.Requirement {
			progress = d.Requirement
		}
		if progress > s.Progress || absolute {
			s.Progress = progress
		}
	}
}

// Claimable reports whether the mission's reward can be collected.
func (l *Ledger) Claimable(missionID string) bool {
	s, ok := l.statuses[missionID]
	if !ok || s.Claimed {
		return false
	}
	d, ok := l.def(missionID)
	return ok && s.Progress >= d.Requirement
}

// Claim latches the claimed flag and returns the reward. It pays at most
// once: a second call for the same mission returns (0, false), as does a
// claim before the requirement is met.
func (l *Ledger) Claim(missionID string) (int64, bool) {
	if !l.Claimable(missionID) {
		return 0, false
	}
	l.statuses[missionID].Claimed = true
	d, _ := l.def(missionID)
	return d.Reward, true
}

// Status returns a copy of the status for one mission.
func (l *Ledger) Status(missionID string) (model.MissionStatus, bool) {
	s, ok := l.statuses[missionID]
	if !ok {
		return model.MissionStatus{}, false
	}
	return *s, true
}

// Statuses returns copies of all statuses in definition order.
func (l *Ledger) Statuses() []model.MissionStatus {
	out := make([]model.MissionStatus, 0, len(l.defs))
	for _, d := range l.defs {
		out = append(out, *l.statuses[d.ID])
	}
	return out
}

// Defs returns the mission definitions this ledger tracks.
func (l *Ledger) Defs() []catalog.Mission {
	return l.defs
}

func (l *Ledger) def(missionID string) (catalog.Mission, bool) {
	for _, d := range l.defs {
		if d.ID == missionID {
			return d, true
		}
	}
	return catalog.Mission{}, false
}
