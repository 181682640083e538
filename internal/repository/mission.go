package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yt2025id-lab/panda-petgame/internal/model"
)

// MissionRepository persists per-player mission statuses. Static
// missions live in mission_statuses; daily missions live in
// daily_mission_statuses keyed additionally by the calendar day, which
// makes the midnight reset automatic: a new day simply has no rows yet.
type MissionRepository struct {
	pool *pgxpool.Pool
}

// NewMissionRepository creates a new MissionRepository instance.
func NewMissionRepository(pool *pgxpool.Pool) *MissionRepository {
	return &MissionRepository{pool: pool}
}

// GetStatuses returns the player's static mission statuses. Missions
// with no row yet are absent from the result.
func (r *MissionRepository) GetStatuses(ctx context.Context, playerID int64) ([]model.MissionStatus, error) {
	const query = `
		SELECT mission_id, progress, claimed
		FROM mission_statuses
		WHERE player_id = $1
	`

	rows, err := r.pool.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get mission statuses: %w", err)
	}
	defer rows.Close()

	var statuses []model.MissionStatus
	for rows.Next() {
		var s model.MissionStatus
		if err := rows.Scan(&s.MissionID, &s.Progress, &s.Claimed); err != nil {
			return nil, fmt.Errorf("failed to scan mission status: %w", err)
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}

// SaveStatus upserts one static mission status.
func (r *MissionRepository) SaveStatus(ctx context.Context, playerID int64, s model.MissionStatus) error {
	const query = `
		INSERT INTO mission_statuses (player_id, mission_id, progress, claimed, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (player_id, mission_id)
		DO UPDATE SET progress = $3, claimed = $4, updated_at = NOW()
	`

	if _, err := r.pool.Exec(ctx, query, playerID, s.MissionID, s.Progress, s.Claimed); err != nil {
		return fmt.Errorf("failed to save mission status: %w", err)
	}
	return nil
}

// GetDailyStatuses returns the player's daily mission statuses for one
// calendar day ("2006-01-02").
func (r *MissionRepository) GetDailyStatuses(ctx context.Context, playerID int64, dayKey string) ([]model.MissionStatus, error) {
	const query = `
		SELECT mission_id, progress, claimed
		FROM daily_mission_statuses
		WHERE player_id = $1 AND day_key = $2
	`

	rows, err := r.pool.Query(ctx, query, playerID, dayKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily mission statuses: %w", err)
	}
	defer rows.Close()

	var statuses []model.MissionStatus
	for rows.Next() {
		var s model.MissionStatus
		if err := rows.Scan(&s.MissionID, &s.Progress, &s.Claimed); err != nil {
			return nil, fmt.Errorf("failed to scan daily mission status: %w", err)
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}

// SaveDailyStatus upserts one daily mission status for a calendar day.
func (r *MissionRepository) SaveDailyStatus(ctx context.Context, playerID int64, dayKey string, s model.MissionStatus) error {
	const query = `
		INSERT INTO daily_mission_statuses (player_id, day_key, mission_id, progress, claimed, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (player_id, day_key, mission_id)
		DO UPDATE SET progress = $4, claimed = $5, updated_at = NOW()
	`

	if _, err := r.pool.Exec(ctx, query, playerID, dayKey, s.MissionID, s.Progress, s.Claimed); err != nil {
		return fmt.Errorf("failed to save daily mission status: %w", err)
	}
	return nil
}
