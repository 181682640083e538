// Package repository provides data access layer implementations.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yt2025id-lab/panda-petgame/internal/model"
)

// Common errors for repository operations.
var (
	ErrPlayerNotFound = errors.New("player not found")
)

// PlayerRepository handles player and pet stat persistence.
type PlayerRepository struct {
	pool *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository instance.
func NewPlayerRepository(pool *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{pool: pool}
}

const playerColumns = `
	telegram_id, username, coins, is_sleeping,
	hunger, energy, fun, hygiene, health, xp, level,
	created_at, updated_at`

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var p model.Player
	err := row.Scan(
		&p.TelegramID,
		&p.Username,
		&p.Coins,
		&p.IsSleeping,
		&p.Stats.Hunger,
		&p.Stats.Energy,
		&p.Stats.Fun,
		&p.Stats.Hygiene,
		&p.Stats.Health,
		&p.Stats.XP,
		&p.Stats.Level,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create creates a new player with the documented initial pet stats
// and starting coin balance, recording the grant in the transaction
// ledger atomically.
func (r *PlayerRepository) Create(ctx context.Context, telegramID int64, username string) (*model.Player, error) {
	query := `
		INSERT INTO players (
			telegram_id, username, coins, is_sleeping,
			hunger, energy, fun, hygiene, health, xp, level,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, FALSE, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING` + playerColumns

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	s := model.InitialStats()
	p, err := scanPlayer(tx.QueryRow(ctx, query,
		telegramID, username, model.InitialCoins,
		s.Hunger, s.Energy, s.Fun, s.Hygiene, s.Health, s.XP, s.Level,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO transactions (player_id, amount, type, description)
		VALUES ($1, $2, $3, 'starting balance')
	`, telegramID, model.InitialCoins, model.TxTypeInitial)
	if err != nil {
		return nil, fmt.Errorf("failed to record initial grant: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit player creation: %w", err)
	}
	return p, nil
}

// GetByID retrieves a player by their Telegram ID.
// Returns ErrPlayerNotFound if the player does not exist.
func (r *PlayerRepository) GetByID(ctx context.Context, telegramID int64) (*model.Player, error) {
	query := `SELECT` + playerColumns + ` FROM players WHERE telegram_id = $1`

	p, err := scanPlayer(r.pool.QueryRow(ctx, query, telegramID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return p, nil
}

// GetOrCreate retrieves a player by Telegram ID, creating one with the
// initial stats if it doesn't exist. The second return value reports
// whether a new player was created.
func (r *PlayerRepository) GetOrCreate(ctx context.Context, telegramID int64, username string) (*model.Player, bool, error) {
	p, err := r.GetByID(ctx, telegramID)
	if err == nil {
		return p, false, nil
	}
	if !errors.Is(err, ErrPlayerNotFound) {
		return nil, false, err
	}

	p, err = r.Create(ctx, telegramID, username)
	if err != nil {
		// Another request may have created the player first
		p, err = r.GetByID(ctx, telegramID)
		if err != nil {
			return nil, false, err
		}
		return p, false, nil
	}
	return p, true, nil
}

// Save writes the player's full mutable state back to the database.
// The session layer calls this on periodic flushes and shutdown.
func (r *PlayerRepository) Save(ctx context.Context, p *model.Player) error {
	const query = `
		UPDATE players
		SET username = $2, coins = $3, is_sleeping = $4,
		    hunger = $5, energy = $6, fun = $7, hygiene = $8, health = $9,
		    xp = $10, level = $11, updated_at = NOW()
		WHERE telegram_id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		p.TelegramID, p.Username, p.Coins, p.IsSleeping,
		p.Stats.Hunger, p.Stats.Energy, p.Stats.Fun, p.Stats.Hygiene,
		p.Stats.Health, p.Stats.XP, p.Stats.Level,
	)
	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// AddCoins adjusts a player's coin balance by the given amount, which
// may be negative. Returns the updated player.
func (r *PlayerRepository) AddCoins(ctx context.Context, telegramID int64, amount int64) (*model.Player, error) {
	query := `
		UPDATE players
		SET coins = coins + $2, updated_at = NOW()
		WHERE telegram_id = $1
		RETURNING` + playerColumns

	p, err := scanPlayer(r.pool.QueryRow(ctx, query, telegramID, amount))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to add coins: %w", err)
	}
	return p, nil
}

// SetCoins sets a player's coin balance to an absolute amount.
// Used by the admin surface.
func (r *PlayerRepository) SetCoins(ctx context.Context, telegramID int64, amount int64) (*model.Player, error) {
	query := `
		UPDATE players
		SET coins = $2, updated_at = NOW()
		WHERE telegram_id = $1
		RETURNING` + playerColumns

	p, err := scanPlayer(r.pool.QueryRow(ctx, query, telegramID, amount))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to set coins: %w", err)
	}
	return p, nil
}
