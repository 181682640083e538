// Package bot provides the Telegram bot initialization and handler
// registration.
package bot

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"github.com/yt2025id-lab/panda-petgame/internal/config"
	"github.com/yt2025id-lab/panda-petgame/internal/handler"
	"github.com/yt2025id-lab/panda-petgame/internal/minigame"
	"github.com/yt2025id-lab/panda-petgame/internal/service"
)

// Bot wraps the telebot instance with application dependencies.
type Bot struct {
	bot      *tele.Bot
	cfg      *config.Config
	registry *minigame.Registry

	petHandler      *handler.PetHandler
	missionHandler  *handler.MissionHandler
	checkinHandler  *handler.CheckinHandler
	minigameHandler *handler.MinigameHandler
	walletHandler   *handler.WalletHandler
	cosmeticHandler *handler.CosmeticHandler
	adminHandler    *handler.AdminHandler
}

// Dependencies holds everything the bot handlers need.
type Dependencies struct {
	Config         *config.Config
	Registry       *minigame.Registry
	GameService    *service.GameService
	MissionService *service.MissionService
	CheckinService *service.CheckinService
	WalletService  *service.WalletService
	PandaService   *service.PandaService
	AdminService   *service.AdminService
}

// New creates a new Bot instance with the given dependencies.
func New(deps *Dependencies) (*Bot, error) {
	if deps.Config.Bot.Token == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	pref := tele.Settings{
		Token:  deps.Config.Bot.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	teleBot, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	b := &Bot{
		bot:      teleBot,
		cfg:      deps.Config,
		registry: deps.Registry,

		petHandler:      handler.NewPetHandler(deps.GameService),
		missionHandler:  handler.NewMissionHandler(deps.MissionService),
		checkinHandler:  handler.NewCheckinHandler(deps.CheckinService),
		minigameHandler: handler.NewMinigameHandler(deps.GameService, deps.Registry),
		walletHandler:   handler.NewWalletHandler(deps.WalletService),
		cosmeticHandler: handler.NewCosmeticHandler(deps.PandaService),
		adminHandler:    handler.NewAdminHandler(deps.AdminService),
	}

	b.registerMiddleware()
	b.registerHandlers()

	return b, nil
}

// registerMiddleware registers all middleware.
func (b *Bot) registerMiddleware() {
	b.bot.Use(RecoveryMiddleware())
	b.bot.Use(WhitelistMiddleware(b.cfg))
	b.bot.Use(RateLimitMiddleware(NewRateLimiter(b.cfg.RateLimit.PerSecond, b.cfg.RateLimit.Burst)))
	b.bot.Use(LoggingMiddleware())
}

// registerHandlers registers all command handlers.
func (b *Bot) registerHandlers() {
	// Pet care
	b.bot.Handle("/start", b.petHandler.HandleStart)
	b.bot.Handle("/status", b.petHandler.HandleStatus)
	b.bot.Handle("/feed", b.petHandler.HandleFeed)
	b.bot.Handle("/play", b.petHandler.HandlePlay)
	b.bot.Handle("/pet", b.petHandler.HandlePet)
	b.bot.Handle("/wash", b.petHandler.HandleWash)
	b.bot.Handle("/sleep", b.petHandler.HandleSleep)

	// Missions and check-in
	b.bot.Handle("/missions", b.missionHandler.HandleMissions)
	b.bot.Handle("/daily", b.missionHandler.HandleDaily)
	b.bot.Handle("/claim", b.missionHandler.HandleClaim)
	b.bot.Handle("/checkin", b.checkinHandler.HandleCheckin)

	// Minigames: one result command per registered game
	b.bot.Handle("/games", b.minigameHandler.HandleGames)
	for _, command := range b.registry.Commands() {
		b.bot.Handle("/"+command, b.minigameHandler.HandleResult(command))
	}
	b.bot.Handle("/leaderboard", b.minigameHandler.HandleLeaderboard)

	// Wallet
	b.bot.Handle("/wallet", b.walletHandler.HandleWallet)
	b.bot.Handle("/faucet", b.walletHandler.HandleFaucet)
	b.bot.Handle("/convert", b.walletHandler.HandleConvert)

	// Panda NFTs and social
	b.bot.Handle("/mint", b.cosmeticHandler.HandleMint)
	b.bot.Handle("/pandas", b.cosmeticHandler.HandlePandas)
	b.bot.Handle("/equip", b.cosmeticHandler.HandleEquip)
	b.bot.Handle("/unequip", b.cosmeticHandler.HandleUnequip)
	b.bot.Handle("/addfriend", b.cosmeticHandler.HandleAddFriend)
	b.bot.Handle("/achievement", b.cosmeticHandler.HandleAchievement)
	b.bot.Handle("/gift", b.cosmeticHandler.HandleGift)
	b.bot.Handle("/gifts", b.cosmeticHandler.HandleGifts)

	// Admin commands behind the admin middleware
	adminGroup := b.bot.Group()
	adminGroup.Use(AdminMiddleware(b.cfg))
	adminGroup.Handle("/admin_add", b.adminHandler.HandleAdminAdd)
	adminGroup.Handle("/admin_set", b.adminHandler.HandleAdminSet)
}

// Start starts the bot polling. Blocks until Stop is called.
func (b *Bot) Start() {
	log.Info().Msg("Starting bot...")
	b.bot.Start()
}

// Stop stops the bot polling.
func (b *Bot) Stop() {
	log.Info().Msg("Stopping bot...")
	b.bot.Stop()
}
