package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/yt2025id-lab/panda-petgame/internal/catalog"
	"github.com/yt2025id-lab/panda-petgame/internal/model"
	"github.com/yt2025id-lab/panda-petgame/internal/repository"
	"github.com/yt2025id-lab/panda-petgame/internal/session"
)

// MissionService exposes mission boards and runs claims.
type MissionService struct {
	sessions *session.Manager
	txRepo   *repository.TransactionRepository
}

// NewMissionService creates a MissionService.
func NewMissionService(sessions *session.Manager, txRepo *repository.TransactionRepository) *MissionService {
	return &MissionService{sessions: sessions, txRepo: txRepo}
}

// MissionView pairs a mission definition with the player's status.
type MissionView struct {
	Mission   catalog.Mission
	Progress  float64
	Claimed   bool
	Claimable bool
}

// List returns the permanent mission board.
func (m *MissionService) List(ctx context.Context, playerID int64, username string) ([]MissionView, error) {
	s, err := m.sessions.Get(ctx, playerID, username)
	if err != nil {
		return nil, err
	}

	var views []MissionView
	err = m.sessions.Lock(playerID, func() error {
		views = ledgerViews(s, false)
		return nil
	})
	return views, err
}

// DailyList returns today's three daily missions.
func (m *MissionService) DailyList(ctx context.Context, playerID int64, username string) ([]MissionView, error) {
	s, err := m.sessions.Get(ctx, playerID, username)
	if err != nil {
		return nil, err
	}

	var views []MissionView
	err = m.sessions.Lock(playerID, func() error {
		views = ledgerViews(s, true)
		return nil
	})
	return views, err
}

// Claim pays out a completed mission exactly once. The mission may be
// permanent or one of today's dailies.
func (m *MissionService) Claim(ctx context.Context, playerID int64, username, missionID string) (int64, error) {
	s, err := m.sessions.Get(ctx, playerID, username)
	if err != nil {
		return 0, err
	}

	var reward int64
	err = m.sessions.Lock(playerID, func() error {
		ledger := s.Static
		txType := model.TxTypeMission
		if _, ok := s.Static.Status(missionID); !ok {
			if _, ok := s.Daily.Status(missionID); !ok {
				return ErrUnknownMission
			}
			ledger = s.Daily
			txType = model.TxTypeDailyMission
		}

		amount, ok := ledger.Claim(missionID)
		if !ok {
			return ErrMissionNotReady
		}
		reward = amount
		s.Player.Coins += amount
		s.MarkDirty()

		desc := fmt.Sprintf("mission %s", missionID)
		if _, err := m.txRepo.Create(ctx, playerID, amount, txType, &desc); err != nil {
			log.Error().Err(err).Int64("player_id", playerID).Str("mission", missionID).Msg("Failed to record mission transaction")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	// Claims move coins; persist promptly rather than waiting for the
	// periodic flush.
	if err := m.sessions.Flush(ctx, playerID); err != nil {
		log.Error().Err(err).Int64("player_id", playerID).Msg("Failed to flush after mission claim")
	}
	return reward, nil
}

// ledgerViews must run under the player's lock.
func ledgerViews(s *session.Session, daily bool) []MissionView {
	ledger := s.Static
	if daily {
		ledger = s.Daily
	}

	defs := ledger.Defs()
	views := make([]MissionView, 0, len(defs))
	for _, def := range defs {
		status, _ := ledger.Status(def.ID)
		views = append(views, MissionView{
			Mission:   def,
			Progress:  status.Progress,
			Claimed:   status.Claimed,
			Claimable: ledger.Claimable(def.ID),
		})
	}
	return views
}
