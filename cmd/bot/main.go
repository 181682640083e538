// Package main is the entry point for the panda pet game bot.
package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yt2025id-lab/panda-petgame/internal/bot"
	"github.com/yt2025id-lab/panda-petgame/internal/chain"
	"github.com/yt2025id-lab/panda-petgame/internal/config"
	"github.com/yt2025id-lab/panda-petgame/internal/minigame"
	"github.com/yt2025id-lab/panda-petgame/internal/minigame/ballshooter"
	"github.com/yt2025id-lab/panda-petgame/internal/minigame/bamboocatcher"
	"github.com/yt2025id-lab/panda-petgame/internal/minigame/bambooslice"
	"github.com/yt2025id-lab/panda-petgame/internal/minigame/dinojump"
	"github.com/yt2025id-lab/panda-petgame/internal/minigame/memorymatch"
	"github.com/yt2025id-lab/panda-petgame/internal/pet"
	"github.com/yt2025id-lab/panda-petgame/internal/pkg/db"
	"github.com/yt2025id-lab/panda-petgame/internal/pkg/lock"
	"github.com/yt2025id-lab/panda-petgame/internal/repository"
	"github.com/yt2025id-lab/panda-petgame/internal/service"
	"github.com/yt2025id-lab/panda-petgame/internal/session"
)

func main() {
	// Configure zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration
	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().Msg("Configuration loaded successfully")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	dbPool, err := db.NewPool(ctx, &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbPool.Close()

	// Run database migrations
	if err := runMigrations(ctx, dbPool); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize repositories
	playerRepo := repository.NewPlayerRepository(dbPool.Pool)
	missionRepo := repository.NewMissionRepository(dbPool.Pool)
	streakRepo := repository.NewStreakRepository(dbPool.Pool)
	txRepo := repository.NewTransactionRepository(dbPool.Pool)

	// Initialize the per-player lock and the stat engine
	playerLock := lock.NewPlayerLock()
	engine := pet.NewEngine(pet.DefaultConfig(), rand.Float64)

	// Initialize the session manager and start its tick/flush loop
	sessions := session.NewManager(
		playerRepo,
		missionRepo,
		playerLock,
		engine,
		cfg.Game.TickPeriod,
		cfg.Game.FlushInterval,
	)
	go sessions.Run(ctx)

	// Initialize minigame registry and register games
	registry := minigame.NewRegistry()
	for _, g := range []minigame.Minigame{
		ballshooter.New(),
		bamboocatcher.New(),
		bambooslice.New(),
		dinojump.New(),
		memorymatch.New(),
	} {
		if err := registry.Register(g); err != nil {
			log.Fatal().Err(err).Str("game", g.Name()).Msg("Failed to register minigame")
		}
	}

	log.Info().
		Int("game_count", registry.Count()).
		Strs("games", registry.Commands()).
		Msg("Minigames registered")

	// Initialize the chain adapter
	adapter := chain.NewLocalAdapter(cfg.IDRX.FaucetAmount, cfg.IDRX.FaucetCooldown)

	// Initialize services
	gameService := service.NewGameService(sessions, txRepo, engine, registry, adapter, rand.Float64)
	missionService := service.NewMissionService(sessions, txRepo)
	checkinService := service.NewCheckinService(sessions, streakRepo, txRepo, cfg.Checkin.BaseBonus)
	walletService := service.NewWalletService(sessions, txRepo, adapter, cfg.IDRX.CoinRate)
	pandaService := service.NewPandaService(adapter)
	adminService := service.NewAdminService(sessions, txRepo)

	// Create bot dependencies
	deps := &bot.Dependencies{
		Config:         cfg,
		Registry:       registry,
		GameService:    gameService,
		MissionService: missionService,
		CheckinService: checkinService,
		WalletService:  walletService,
		PandaService:   pandaService,
		AdminService:   adminService,
	}

	// Initialize bot
	telegramBot, err := bot.New(deps)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create bot")
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start bot in a goroutine
	go func() {
		log.Info().Msg("Bot is starting...")
		telegramBot.Start()
	}()

	// Wait for shutdown signal
	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

	// Graceful shutdown: stop polling, then cancel the session loop so
	// it performs its final flush.
	telegramBot.Stop()
	cancel()
	time.Sleep(500 * time.Millisecond)
	log.Info().Msg("Bot stopped gracefully")
}

// runMigrations executes database migrations.
func runMigrations(ctx context.Context, pool *db.Pool) error {
	log.Info().Msg("Running database migrations...")

	// Migration 1: Create players table
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS players (
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
		);
	`)
	if err != nil {
		return err
	}
	log.Info().Msg("Migration 1: players table created")

	// Migration 2: Create mission status tables
	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS mission_statuses (
			player_id BIGINT NOT NULL REFERENCES players(telegram_id) ON DELETE CASCADE,
			mission_id VARCHAR(50) NOT NULL,
			progress DOUBLE PRECISION NOT NULL DEFAULT 0,
			claimed BOOLEAN NOT NULL DEFAULT FALSE,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (player_id, mission_id)
		);
		CREATE TABLE IF NOT EXISTS daily_mission_statuses (
			player_id BIGINT NOT NULL REFERENCES players(telegram_id) ON DELETE CASCADE,
			day_key VARCHAR(10) NOT NULL,
			mission_id VARCHAR(50) NOT NULL,
			progress DOUBLE PRECISION NOT NULL DEFAULT 0,
			claimed BOOLEAN NOT NULL DEFAULT FALSE,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (player_id, day_key, mission_id)
		);
	`)
	if err != nil {
		return err
	}
	log.Info().Msg("Migration 2: mission status tables created")

	// Migration 3: Create streaks table
	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS streaks (
			player_id BIGINT PRIMARY KEY REFERENCES players(telegram_id) ON DELETE CASCADE,
			count INTEGER NOT NULL DEFAULT 0,
			last_date VARCHAR(10) NOT NULL DEFAULT '',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return err
	}
	log.Info().Msg("Migration 3: streaks table created")

	// Migration 4: Create transactions table
	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS transactions (
			id BIGSERIAL PRIMARY KEY,
			player_id BIGINT NOT NULL REFERENCES players(telegram_id) ON DELETE CASCADE,
			amount BIGINT NOT NULL,
			type VARCHAR(50) NOT NULL,
			description TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_transactions_player_created
			ON transactions(player_id, created_at DESC);
	`)
	if err != nil {
		return err
	}
	log.Info().Msg("Migration 4: transactions table created")

	log.Info().Msg("All migrations completed successfully")
	return nil
}
