package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yt2025id-lab/panda-petgame/internal/model"
)

// StreakRepository persists consecutive check-in streaks.
type StreakRepository struct {
	pool *pgxpool.Pool
}

// NewStreakRepository creates a new StreakRepository instance.
func NewStreakRepository(pool *pgxpool.Pool) *StreakRepository {
	return &StreakRepository{pool: pool}
}

// Get returns the player's streak record. A player who has never
// checked in gets a zero record, not an error.
func (r *StreakRepository) Get(ctx context.Context, playerID int64) (*model.StreakRecord, error) {
	const query = `
		SELECT count, last_date
		FROM streaks
		WHERE player_id = $1
	`

	var s model.StreakRecord
	err := r.pool.QueryRow(ctx, query, playerID).Scan(&s.Count, &s.LastDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &model.StreakRecord{}, nil
		}
		return nil, fmt.Errorf("failed to get streak: %w", err)
	}
	return &s, nil
}

// Save upserts the player's streak record.
func (r *StreakRepository) Save(ctx context.Context, playerID int64, s *model.StreakRecord) error {
	const query = `
		INSERT INTO streaks (player_id, count, last_date, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (player_id)
		DO UPDATE SET count = $2, last_date = $3, updated_at = NOW()
	`

	if _, err := r.pool.Exec(ctx, query, playerID, s.Count, s.LastDate); err != nil {
		return fmt.Errorf("failed to save streak: %w", err)
	}
	return nil
}
