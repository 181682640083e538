package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/yt2025id-lab/panda-petgame/internal/chain"
	"github.com/yt2025id-lab/panda-petgame/internal/model"
	"github.com/yt2025id-lab/panda-petgame/internal/repository"
	"github.com/yt2025id-lab/panda-petgame/internal/session"
)

// CoinsForIDRX converts an IDRX amount into whole coins at the given
// rate, flooring the remainder.
func CoinsForIDRX(amount, rate int64) int64 {
	return amount / rate
}

// WalletService bridges the IDRX token economy into the coin economy.
type WalletService struct {
	sessions *session.Manager
	txRepo   *repository.TransactionRepository
	adapter  chain.Adapter
	coinRate int64
}

// NewWalletService creates a WalletService.
func NewWalletService(
	sessions *session.Manager,
	txRepo *repository.TransactionRepository,
	adapter chain.Adapter,
	coinRate int64,
) *WalletService {
	return &WalletService{
		sessions: sessions,
		txRepo:   txRepo,
		adapter:  adapter,
		coinRate: coinRate,
	}
}

// Balance returns the player's IDRX balance.
func (w *WalletService) Balance(ctx context.Context, playerID int64) (int64, error) {
	return w.adapter.IDRXBalance(ctx, playerID)
}

// Faucet claims the IDRX faucet grant for the player. The cooldown is
// enforced by the chain adapter.
func (w *WalletService) Faucet(ctx context.Context, playerID int64) (int64, error) {
	return w.adapter.ClaimFaucet(ctx, playerID)
}

// ConvertResult reports a completed IDRX to coin conversion.
type ConvertResult struct {
	IDRXSpent   int64
	CoinsGained int64
	Coins       int64
}

// Convert exchanges IDRX for coins at the fixed rate. The amount must
// be at least one coin's worth and within the player's balance;
// rejected conversions are reported to the caller, never silent.
func (w *WalletService) Convert(ctx context.Context, playerID int64, username string, amount int64) (*ConvertResult, error) {
	if amount < w.coinRate {
		return nil, fmt.Errorf("%w: minimum is %d IDRX", ErrConversionTooSmall, w.coinRate)
	}

	s, err := w.sessions.Get(ctx, playerID, username)
	if err != nil {
		return nil, err
	}

	var result ConvertResult
	err = w.sessions.Lock(playerID, func() error {
		// Debit first; the adapter rejects overdrafts.
		if err := w.adapter.WithdrawIDRX(ctx, playerID, amount); err != nil {
			return err
		}

		coins := CoinsForIDRX(amount, w.coinRate)
		s.Player.Coins += coins
		s.MarkDirty()

		desc := fmt.Sprintf("converted %d IDRX", amount)
		if _, err := w.txRepo.Create(ctx, playerID, coins, model.TxTypeConvert, &desc); err != nil {
			log.Error().Err(err).Int64("player_id", playerID).Msg("Failed to record conversion transaction")
		}

		result = ConvertResult{
			IDRXSpent:   amount,
			CoinsGained: coins,
			Coins:       s.Player.Coins,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := w.sessions.Flush(ctx, playerID); err != nil {
		log.Error().Err(err).Int64("player_id", playerID).Msg("Failed to flush after conversion")
	}
	return &result, nil
}
