package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yt2025id-lab/panda-petgame/internal/catalog"
	"github.com/yt2025id-lab/panda-petgame/internal/mission"
	"github.com/yt2025id-lab/panda-petgame/internal/pet"
	"github.com/yt2025id-lab/panda-petgame/internal/pkg/lock"
	"github.com/yt2025id-lab/panda-petgame/internal/repository"
)

// Manager loads sessions on demand, drives the decay tick across all
// live sessions and flushes dirty state back to the database.
type Manager struct {
	players  *repository.PlayerRepository
	missions *repository.MissionRepository
	locks    *lock.PlayerLock
	engine   *pet.Engine

	tickPeriod    time.Duration
	flushInterval time.Duration

	mu       sync.RWMutex
	sessions map[int64]*Session

	now func() time.Time
}

// NewManager creates a session manager.
func NewManager(
	players *repository.PlayerRepository,
	missions *repository.MissionRepository,
	locks *lock.PlayerLock,
	engine *pet.Engine,
	tickPeriod, flushInterval time.Duration,
) *Manager {
	return &Manager{
		players:       players,
		missions:      missions,
		locks:         locks,
		engine:        engine,
		tickPeriod:    tickPeriod,
		flushInterval: flushInterval,
		sessions:      make(map[int64]*Session),
		now:           time.Now,
	}
}

// Now returns the manager's clock reading. Services use it so tests
// can freeze time.
func (m *Manager) Now() time.Time {
	return m.now()
}

// Get returns the player's live session, loading it from the database
// on first access. New players are created with the initial stats.
func (m *Manager) Get(ctx context.Context, telegramID int64, username string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[telegramID]
	m.mu.RUnlock()
	if ok {
		return s, nil
	}

	player, created, err := m.players.GetOrCreate(ctx, telegramID, username)
	if err != nil {
		return nil, err
	}

	staticStatuses, err := m.missions.GetStatuses(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	now := m.now()
	dayKey := mission.DayKey(now)
	dailyStatuses, err := m.missions.GetDailyStatuses(ctx, telegramID, dayKey)
	if err != nil {
		return nil, err
	}

	loaded := New(
		player,
		mission.NewLedger(catalog.Missions, staticStatuses),
		mission.NewLedger(mission.DailyMissions(now), dailyStatuses),
		dayKey,
	)

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another request may have loaded the session while we hit the
	// database; keep the first one.
	if existing, ok := m.sessions[telegramID]; ok {
		return existing, nil
	}
	m.sessions[telegramID] = loaded

	if created {
		log.Info().Int64("player_id", telegramID).Str("username", username).Msg("New player created")
	}
	return loaded, nil
}

// Lock runs fn while holding the player's lock. All session mutation
// goes through here.
func (m *Manager) Lock(playerID int64, fn func() error) error {
	return m.locks.WithLock(playerID, fn)
}

// Run drives the decay tick and periodic flush until ctx is cancelled,
// then performs a final flush.
func (m *Manager) Run(ctx context.Context) {
	tick := time.NewTicker(m.tickPeriod)
	defer tick.Stop()
	flush := time.NewTicker(m.flushInterval)
	defer flush.Stop()

	log.Info().
		Dur("tick_period", m.tickPeriod).
		Dur("flush_interval", m.flushInterval).
		Msg("Session manager started")

	for {
		select {
		case <-ctx.Done():
			m.flushAll(context.Background())
			log.Info().Msg("Session manager stopped")
			return
		case <-tick.C:
			m.tickAll()
		case <-flush.C:
			m.flushAll(ctx)
		}
	}
}

// tickAll applies one decay period to every live session and rolls the
// daily missions when the calendar day changes.
func (m *Manager) tickAll() {
	now := m.now()
	dayKey := mission.DayKey(now)

	for _, s := range m.snapshot() {
		s := s
		_ = m.locks.WithLock(s.Player.TelegramID, func() error {
			if s.DayKey != dayKey {
				s.RollDay(now)
				log.Debug().Int64("player_id", s.Player.TelegramID).Str("day", dayKey).Msg("Daily missions rolled")
			}
			m.engine.Tick(s.Player)
			s.MarkDirty()
			return nil
		})
	}
}

// flushAll writes every dirty session back to the database.
func (m *Manager) flushAll(ctx context.Context) {
	for _, s := range m.snapshot() {
		s := s
		err := m.locks.WithLock(s.Player.TelegramID, func() error {
			if !s.Dirty() {
				return nil
			}
			if err := m.flushLocked(ctx, s); err != nil {
				return err
			}
			s.ClearDirty()
			return nil
		})
		if err != nil {
			log.Error().Err(err).Int64("player_id", s.Player.TelegramID).Msg("Failed to flush session")
		}
	}
}

// flushLocked persists one session. Caller holds the player's lock.
func (m *Manager) flushLocked(ctx context.Context, s *Session) error {
	if err := m.players.Save(ctx, s.Player); err != nil {
		return err
	}
	for _, st := range s.Static.Statuses() {
		if err := m.missions.SaveStatus(ctx, s.Player.TelegramID, st); err != nil {
			return err
		}
	}
	for _, st := range s.Daily.Statuses() {
		if err := m.missions.SaveDailyStatus(ctx, s.Player.TelegramID, s.DayKey, st); err != nil {
			return err
		}
	}
	return nil
}

// Flush persists one player's session immediately, outside the
// periodic cycle. Used after coin-bearing operations.
func (m *Manager) Flush(ctx context.Context, playerID int64) error {
	m.mu.RLock()
	s, ok := m.sessions[playerID]
	m.mu.RUnlock()
	if !ok {
		return nil
	}

	return m.locks.WithLock(playerID, func() error {
		if err := m.flushLocked(ctx, s); err != nil {
			return err
		}
		s.ClearDirty()
		return nil
	})
}

// snapshot copies the session list so ticking never holds the map lock
// while waiting on player locks.
func (m *Manager) snapshot() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	return out
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
