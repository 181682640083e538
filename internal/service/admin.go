package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/yt2025id-lab/panda-petgame/internal/model"
	"github.com/yt2025id-lab/panda-petgame/internal/repository"
	"github.com/yt2025id-lab/panda-petgame/internal/session"
)

// AdminService performs privileged coin adjustments. Mutations go
// through the live session so the in-memory state stays authoritative.
type AdminService struct {
	sessions *session.Manager
	txRepo   *repository.TransactionRepository
}

// NewAdminService creates an AdminService.
func NewAdminService(sessions *session.Manager, txRepo *repository.TransactionRepository) *AdminService {
	return &AdminService{sessions: sessions, txRepo: txRepo}
}

// AddCoins grants (or removes, with a negative amount) coins and
// returns the new balance. The balance never drops below zero.
func (a *AdminService) AddCoins(ctx context.Context, playerID int64, amount int64) (int64, error) {
	s, err := a.sessions.Get(ctx, playerID, "")
	if err != nil {
		return 0, err
	}

	var balance int64
	err = a.sessions.Lock(playerID, func() error {
		s.Player.Coins += amount
		if s.Player.Coins < 0 {
			s.Player.Coins = 0
		}
		balance = s.Player.Coins
		s.MarkDirty()

		desc := fmt.Sprintf("admin grant %d", amount)
		if _, err := a.txRepo.Create(ctx, playerID, amount, model.TxTypeAdminAdd, &desc); err != nil {
			log.Error().Err(err).Int64("player_id", playerID).Msg("Failed to record admin transaction")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := a.sessions.Flush(ctx, playerID); err != nil {
		log.Error().Err(err).Int64("player_id", playerID).Msg("Failed to flush after admin grant")
	}
	return balance, nil
}

// SetCoins sets an absolute coin balance.
func (a *AdminService) SetCoins(ctx context.Context, playerID int64, amount int64) (int64, error) {
	if amount < 0 {
		amount = 0
	}

	s, err := a.sessions.Get(ctx, playerID, "")
	if err != nil {
		return 0, err
	}

	var balance int64
	err = a.sessions.Lock(playerID, func() error {
		delta := amount - s.Player.Coins
		s.Player.Coins = amount
		balance = amount
		s.MarkDirty()

		desc := fmt.Sprintf("admin set to %d", amount)
		if _, err := a.txRepo.Create(ctx, playerID, delta, model.TxTypeAdminSet, &desc); err != nil {
			log.Error().Err(err).Int64("player_id", playerID).Msg("Failed to record admin transaction")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := a.sessions.Flush(ctx, playerID); err != nil {
		log.Error().Err(err).Int64("player_id", playerID).Msg("Failed to flush after admin set")
	}
	return balance, nil
}
