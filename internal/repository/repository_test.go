// Package repository tests use testcontainers-go to spin up a
// PostgreSQL container and exercise the real schema.
package repository

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/yt2025id-lab/panda-petgame/internal/model"
)

// checkDockerAvailable checks if Docker is available and running.
func checkDockerAvailable() bool {
	cmd := exec.Command("docker", "info")
	return cmd.Run() == nil
}

// setupTestDB creates a PostgreSQL container and returns a connection
// pool. Skips the test if Docker is not available.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	if !checkDockerAvailable() {
		t.Skip("Docker is not available, skipping integration test")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, runMigrations(ctx, pool))

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// runMigrations applies the database schema.
func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS players (
			telegram_id BIGINT PRIMARY KEY,
			username VARCHAR(255) NOT NULL,
			coins BIGINT NOT NULL DEFAULT 100,
			is_sleeping BOOLEAN NOT NULL DEFAULT FALSE,
			hunger DOUBLE PRECISION NOT NULL DEFAULT 80,
			energy DOUBLE PRECISION NOT NULL DEFAULT 70,
			fun DOUBLE PRECISION NOT NULL DEFAULT 60,
			hygiene DOUBLE PRECISION NOT NULL DEFAULT 90,
			health DOUBLE PRECISION NOT NULL DEFAULT 100,
			xp DOUBLE PRECISION NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS mission_statuses (
			player_id BIGINT NOT NULL REFERENCES players(telegram_id) ON DELETE CASCADE,
			mission_id VARCHAR(50) NOT NULL,
			progress DOUBLE PRECISION NOT NULL DEFAULT 0,
			claimed BOOLEAN NOT NULL DEFAULT FALSE,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (player_id, mission_id)
		)`,
		`CREATE TABLE IF NOT EXISTS daily_mission_statuses (
			player_id BIGINT NOT NULL REFERENCES players(telegram_id) ON DELETE CASCADE,
			day_key VARCHAR(10) NOT NULL,
			mission_id VARCHAR(50) NOT NULL,
			progress DOUBLE PRECISION NOT NULL DEFAULT 0,
			claimed BOOLEAN NOT NULL DEFAULT FALSE,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (player_id, day_key, mission_id)
		)`,
		`CREATE TABLE IF NOT EXISTS streaks (
			player_id BIGINT PRIMARY KEY REFERENCES players(telegram_id) ON DELETE CASCADE,
			count INTEGER NOT NULL DEFAULT 0,
			last_date VARCHAR(10) NOT NULL DEFAULT '',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id BIGSERIAL PRIMARY KEY,
			player_id BIGINT NOT NULL REFERENCES players(telegram_id) ON DELETE CASCADE,
			amount BIGINT NOT NULL,
			type VARCHAR(50) NOT NULL,
			description TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_player_created
			ON transactions(player_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func TestPlayerRepository_Create(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewPlayerRepository(pool)
	ctx := context.Background()

	p, err := repo.Create(ctx, 12345, "pandafan")
	require.NoError(t, err)
	assert.Equal(t, int64(12345), p.TelegramID)
	assert.Equal(t, "pandafan", p.Username)
	assert.Equal(t, model.InitialCoins, p.Coins)
	assert.Equal(t, model.InitialStats(), p.Stats)
	assert.False(t, p.IsSleeping)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestPlayerRepository_GetByID(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewPlayerRepository(pool)
	ctx := context.Background()

	_, err := repo.Create(ctx, 12345, "pandafan")
	require.NoError(t, err)

	p, err := repo.GetByID(ctx, 12345)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), p.TelegramID)

	_, err = repo.GetByID(ctx, 99999)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestPlayerRepository_GetOrCreate(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewPlayerRepository(pool)
	ctx := context.Background()

	p, created, err := repo.GetOrCreate(ctx, 12345, "pandafan")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, model.InitialCoins, p.Coins)

	p, created, err = repo.GetOrCreate(ctx, 12345, "pandafan")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(12345), p.TelegramID)
}

func TestPlayerRepository_Save(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewPlayerRepository(pool)
	ctx := context.Background()

	p, err := repo.Create(ctx, 12345, "pandafan")
	require.NoError(t, err)

	p.Coins = 420
	p.IsSleeping = true
	p.Stats.Hunger = 33.5
	p.Stats.XP = 55
	p.Stats.Level = 3
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.GetByID(ctx, 12345)
	require.NoError(t, err)
	assert.Equal(t, int64(420), got.Coins)
	assert.True(t, got.IsSleeping)
	assert.Equal(t, 33.5, got.Stats.Hunger)
	assert.Equal(t, float64(55), got.Stats.XP)
	assert.Equal(t, 3, got.Stats.Level)

	// Saving an unknown player reports not found
	unknown := *p
	unknown.TelegramID = 99999
	assert.ErrorIs(t, repo.Save(ctx, &unknown), ErrPlayerNotFound)
}

func TestPlayerRepository_AddAndSetCoins(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewPlayerRepository(pool)
	ctx := context.Background()

	_, err := repo.Create(ctx, 12345, "pandafan")
	require.NoError(t, err)

	p, err := repo.AddCoins(ctx, 12345, 50)
	require.NoError(t, err)
	assert.Equal(t, model.InitialCoins+50, p.Coins)

	p, err = repo.AddCoins(ctx, 12345, -30)
	require.NoError(t, err)
	assert.Equal(t, model.InitialCoins+20, p.Coins)

	p, err = repo.SetCoins(ctx, 12345, 7777)
	require.NoError(t, err)
	assert.Equal(t, int64(7777), p.Coins)

	_, err = repo.AddCoins(ctx, 99999, 10)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestMissionRepository_Statuses(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	players := NewPlayerRepository(pool)
	repo := NewMissionRepository(pool)
	ctx := context.Background()

	_, err := players.Create(ctx, 12345, "pandafan")
	require.NoError(t, err)

	statuses, err := repo.GetStatuses(ctx, 12345)
	require.NoError(t, err)
	assert.Empty(t, statuses)

	require.NoError(t, repo.SaveStatus(ctx, 12345, model.MissionStatus{
		MissionID: "m1", Progress: 2, Claimed: false,
	}))
	// Upsert overwrites the existing row
	require.NoError(t, repo.SaveStatus(ctx, 12345, model.MissionStatus{
		MissionID: "m1", Progress: 3, Claimed: true,
	}))

	statuses, err = repo.GetStatuses(ctx, 12345)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, "m1", statuses[0].MissionID)
	assert.Equal(t, float64(3), statuses[0].Progress)
	assert.True(t, statuses[0].Claimed)
}

func TestMissionRepository_DailyStatusesKeyedByDay(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	players := NewPlayerRepository(pool)
	repo := NewMissionRepository(pool)
	ctx := context.Background()

	_, err := players.Create(ctx, 12345, "pandafan")
	require.NoError(t, err)

	require.NoError(t, repo.SaveDailyStatus(ctx, 12345, "2026-03-01", model.MissionStatus{
		MissionID: "d3", Progress: 5, Claimed: true,
	}))

	// Yesterday's progress does not leak into today
	today, err := repo.GetDailyStatuses(ctx, 12345, "2026-03-02")
	require.NoError(t, err)
	assert.Empty(t, today)

	yesterday, err := repo.GetDailyStatuses(ctx, 12345, "2026-03-01")
	require.NoError(t, err)
	require.Len(t, yesterday, 1)
	assert.Equal(t, "d3", yesterday[0].MissionID)
	assert.True(t, yesterday[0].Claimed)
}

func TestStreakRepository_GetAndSave(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	players := NewPlayerRepository(pool)
	repo := NewStreakRepository(pool)
	ctx := context.Background()

	_, err := players.Create(ctx, 12345, "pandafan")
	require.NoError(t, err)

	// Never checked in: zero record, no error
	s, err := repo.Get(ctx, 12345)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Count)
	assert.Empty(t, s.LastDate)

	require.NoError(t, repo.Save(ctx, 12345, &model.StreakRecord{Count: 3, LastDate: "2026-03-01"}))
	require.NoError(t, repo.Save(ctx, 12345, &model.StreakRecord{Count: 4, LastDate: "2026-03-02"}))

	s, err = repo.Get(ctx, 12345)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, "2026-03-02", s.LastDate)
}

func TestTransactionRepository_CreateAndList(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	players := NewPlayerRepository(pool)
	repo := NewTransactionRepository(pool)
	ctx := context.Background()

	_, err := players.Create(ctx, 12345, "pandafan")
	require.NoError(t, err)

	desc := "mission m1"
	tx, err := repo.Create(ctx, 12345, 50, model.TxTypeMission, &desc)
	require.NoError(t, err)
	assert.NotZero(t, tx.ID)
	assert.Equal(t, int64(50), tx.Amount)
	assert.Equal(t, model.TxTypeMission, tx.Type)

	_, err = repo.Create(ctx, 12345, -10, model.TxTypeFeed, nil)
	require.NoError(t, err)

	// Player creation itself records the starting balance grant.
	txs, err := repo.GetByPlayerID(ctx, 12345, 10)
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, model.TxTypeInitial, txs[2].Type)
	assert.Equal(t, model.InitialCoins, txs[2].Amount)
}
