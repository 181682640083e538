package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/yt2025id-lab/panda-petgame/internal/catalog"
	"github.com/yt2025id-lab/panda-petgame/internal/chain"
	"github.com/yt2025id-lab/panda-petgame/internal/dialogue"
	"github.com/yt2025id-lab/panda-petgame/internal/minigame"
	"github.com/yt2025id-lab/panda-petgame/internal/model"
	"github.com/yt2025id-lab/panda-petgame/internal/pet"
	"github.com/yt2025id-lab/panda-petgame/internal/repository"
	"github.com/yt2025id-lab/panda-petgame/internal/session"
)

// PetProgressPerStroke is the fractional pet-mission progress recorded
// per stroke.
const PetProgressPerStroke = 0.1

// GameService drives the pet care actions and minigame results against
// live sessions.
type GameService struct {
	sessions *session.Manager
	txRepo   *repository.TransactionRepository
	engine   *pet.Engine
	registry *minigame.Registry
	adapter  chain.Adapter
	rand     func() float64
}

// NewGameService creates a GameService.
func NewGameService(
	sessions *session.Manager,
	txRepo *repository.TransactionRepository,
	engine *pet.Engine,
	registry *minigame.Registry,
	adapter chain.Adapter,
	rand func() float64,
) *GameService {
	return &GameService{
		sessions: sessions,
		txRepo:   txRepo,
		engine:   engine,
		registry: registry,
		adapter:  adapter,
		rand:     rand,
	}
}

// StatusView is a snapshot of a session for rendering.
type StatusView struct {
	Stats      model.PetStats
	Coins      int64
	IsSleeping bool
	IsEating   bool
	IsWashing  bool
	Message    string
}

// ActionOutcome reports what a care action or minigame did.
type ActionOutcome struct {
	Stats        model.PetStats
	Coins        int64
	XPAwarded    float64
	LevelsGained int
	CoinsEarned  int64
	Message      string
}

// Status returns a render snapshot of the player's session.
func (g *GameService) Status(ctx context.Context, playerID int64, username string) (*StatusView, error) {
	s, err := g.sessions.Get(ctx, playerID, username)
	if err != nil {
		return nil, err
	}

	var view StatusView
	err = g.sessions.Lock(playerID, func() error {
		now := g.sessions.Now()
		view = StatusView{
			Stats:      s.Player.Stats,
			Coins:      s.Player.Coins,
			IsSleeping: s.Player.IsSleeping,
			IsEating:   s.IsEating(now),
			IsWashing:  s.IsWashing(now),
			Message:    s.Message(now),
		}
		if view.Message == "" {
			view.Message = dialogue.ForStats(s.Player.Stats, g.rand)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Feed feeds the pet one food item, deducting its cost.
func (g *GameService) Feed(ctx context.Context, playerID int64, username, foodID string) (*ActionOutcome, error) {
	food, ok := catalog.FoodByID(foodID)
	if !ok {
		return nil, ErrUnknownFood
	}

	s, err := g.sessions.Get(ctx, playerID, username)
	if err != nil {
		return nil, err
	}

	var out ActionOutcome
	err = g.sessions.Lock(playerID, func() error {
		if s.Player.IsSleeping {
			return ErrPetAsleep
		}
		if s.Player.Coins < food.Cost {
			return ErrNotEnoughCoins
		}

		res := g.engine.Feed(s.Player, food)
		g.recordProgress(s, catalog.MissionFeed, 1, false)
		g.afterLevelUps(s, res.LevelsGained)

		now := g.sessions.Now()
		s.StartEating(now)
		msg := dialogue.Custom(fmt.Sprintf("Yum! %s!", food.Name))
		s.Say(msg, now)
		s.MarkDirty()

		if food.Cost > 0 {
			desc := fmt.Sprintf("fed %s", food.Name)
			if _, err := g.txRepo.Create(ctx, playerID, -food.Cost, model.TxTypeFeed, &desc); err != nil {
				log.Error().Err(err).Int64("player_id", playerID).Msg("Failed to record feed transaction")
			}
		}

		out = g.outcome(s, res, msg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Play plays with a toy, trading energy for fun.
func (g *GameService) Play(ctx context.Context, playerID int64, username, toyID string) (*ActionOutcome, error) {
	toy, ok := catalog.ToyByID(toyID)
	if !ok {
		return nil, ErrUnknownToy
	}

	s, err := g.sessions.Get(ctx, playerID, username)
	if err != nil {
		return nil, err
	}

	var out ActionOutcome
	err = g.sessions.Lock(playerID, func() error {
		if s.Player.IsSleeping {
			return ErrPetAsleep
		}
		if s.Player.Stats.Energy < toy.EnergyCost {
			return ErrTooTired
		}

		res := g.engine.Play(s.Player, toy)
		g.recordProgress(s, catalog.MissionPlay, 1, false)
		g.afterLevelUps(s, res.LevelsGained)

		var msg string
		if res.Talk {
			msg = dialogue.Custom(fmt.Sprintf("The %s is so much fun!", toy.Name))
			s.Say(msg, g.sessions.Now())
		}
		s.MarkDirty()

		out = g.outcome(s, res, msg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Pet strokes the pet for a small fun bump and fractional mission
// progress.
func (g *GameService) Pet(ctx context.Context, playerID int64, username string) (*ActionOutcome, error) {
	s, err := g.sessions.Get(ctx, playerID, username)
	if err != nil {
		return nil, err
	}

	var out ActionOutcome
	err = g.sessions.Lock(playerID, func() error {
		if s.Player.IsSleeping {
			return ErrPetAsleep
		}

		res := g.engine.Pet(s.Player)
		g.recordProgress(s, catalog.MissionPet, PetProgressPerStroke, false)
		g.afterLevelUps(s, res.LevelsGained)

		var msg string
		if res.Talk {
			msg = dialogue.Custom("That feels nice!")
			s.Say(msg, g.sessions.Now())
		}
		s.MarkDirty()

		out = g.outcome(s, res, msg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Wash cleans the pet.
func (g *GameService) Wash(ctx context.Context, playerID int64, username string) (*ActionOutcome, error) {
	s, err := g.sessions.Get(ctx, playerID, username)
	if err != nil {
		return nil, err
	}

	var out ActionOutcome
	err = g.sessions.Lock(playerID, func() error {
		if s.Player.IsSleeping {
			return ErrPetAsleep
		}

		res := g.engine.Wash(s.Player)
		g.recordProgress(s, catalog.MissionWash, 1, false)
		g.afterLevelUps(s, res.LevelsGained)

		now := g.sessions.Now()
		s.StartWashing(now)
		msg := dialogue.Custom("So fresh and so clean!")
		s.Say(msg, now)
		s.MarkDirty()

		out = g.outcome(s, res, msg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleSleep flips the pet's sleep state and returns the new state.
// Falling asleep clears any pending dialogue; waking greets the player.
func (g *GameService) ToggleSleep(ctx context.Context, playerID int64, username string) (bool, error) {
	s, err := g.sessions.Get(ctx, playerID, username)
	if err != nil {
		return false, err
	}

	var sleeping bool
	err = g.sessions.Lock(playerID, func() error {
		sleeping = g.engine.ToggleSleep(s.Player)
		if sleeping {
			s.ClearMessage()
		} else {
			s.Say(dialogue.Custom("Good morning! I feel refreshed!"), g.sessions.Now())
		}
		s.MarkDirty()
		return nil
	})
	return sleeping, err
}

// ApplyMinigameResult folds a finished minigame run into the session:
// payout into coins and XP, score into play-mission progress, and the
// score onto the chain leaderboard (fire-and-forget).
func (g *GameService) ApplyMinigameResult(ctx context.Context, playerID int64, username, command string, metric int64) (*ActionOutcome, error) {
	game, ok := g.registry.Get(command)
	if !ok {
		return nil, ErrUnknownGame
	}

	s, err := g.sessions.Get(ctx, playerID, username)
	if err != nil {
		return nil, err
	}

	var out ActionOutcome
	var score int64
	err = g.sessions.Lock(playerID, func() error {
		result, err := game.Rewards(metric, s.Player.Stats.Level)
		if err != nil {
			return err
		}
		score = result.Score

		res := g.engine.ApplyMinigame(s.Player, result.XP, result.Coins)
		g.recordProgress(s, catalog.MissionPlay, float64(result.Score), false)
		g.afterLevelUps(s, res.LevelsGained)

		msg := dialogue.Custom(fmt.Sprintf("%s was great! +%d coins", game.Name(), result.Coins))
		s.Say(msg, g.sessions.Now())
		s.MarkDirty()

		if result.Coins > 0 {
			desc := fmt.Sprintf("%s payout, score %d", game.Command(), result.Score)
			if _, err := g.txRepo.Create(ctx, playerID, result.Coins, model.TxTypeMinigame, &desc); err != nil {
				log.Error().Err(err).Int64("player_id", playerID).Msg("Failed to record minigame transaction")
			}
		}

		out = g.outcome(s, res, msg)
		out.CoinsEarned = result.Coins
		return nil
	})
	if err != nil {
		return nil, err
	}

	if score > 0 {
		go func() {
			if err := g.adapter.SubmitScore(context.Background(), playerID, command, score); err != nil {
				log.Warn().Err(err).Int64("player_id", playerID).Str("game", command).Msg("Failed to submit score")
			}
		}()
	}
	return &out, nil
}

// LeaderboardView is the ranked board for one game plus the caller's
// own best score.
type LeaderboardView struct {
	Game    string
	Entries []chain.ScoreEntry
	OwnBest int64
}

// Leaderboard returns the top n scores for a game along with the
// caller's personal best.
func (g *GameService) Leaderboard(ctx context.Context, playerID int64, command string, n int) (*LeaderboardView, error) {
	game, ok := g.registry.Get(command)
	if !ok {
		return nil, ErrUnknownGame
	}

	entries, err := g.adapter.TopScores(ctx, command, n)
	if err != nil {
		return nil, fmt.Errorf("fetching leaderboard for %s: %w", command, err)
	}
	best, err := g.adapter.BestScore(ctx, playerID, command)
	if err != nil {
		return nil, fmt.Errorf("fetching best score for %s: %w", command, err)
	}

	return &LeaderboardView{
		Game:    game.Name(),
		Entries: entries,
		OwnBest: best,
	}, nil
}

// recordProgress records mission progress on both the static and daily
// ledgers. Types that do not match any mission are ignored by the
// ledger itself.
func (g *GameService) recordProgress(s *session.Session, typ catalog.MissionType, amount float64, absolute bool) {
	s.Static.Record(typ, amount, absolute)
	s.Daily.Record(typ, amount, absolute)
}

// afterLevelUps resolves the side effects of any level-ups: the
// level-mission progress is set to the new level (absolute, not
// cumulative) and the celebration line replaces pending dialogue.
func (g *GameService) afterLevelUps(s *session.Session, levels int) {
	if levels <= 0 {
		return
	}
	g.recordProgress(s, catalog.MissionLevel, float64(s.Player.Stats.Level), true)
	s.Say(dialogue.Custom(fmt.Sprintf("Level up! I'm level %d now!", s.Player.Stats.Level)), g.sessions.Now())
	log.Info().Int64("player_id", s.Player.TelegramID).Int("level", s.Player.Stats.Level).Msg("Level up")
}

func (g *GameService) outcome(s *session.Session, res pet.ActionResult, msg string) ActionOutcome {
	return ActionOutcome{
		Stats:        s.Player.Stats,
		Coins:        s.Player.Coins,
		XPAwarded:    res.XPAwarded,
		LevelsGained: res.LevelsGained,
		Message:      msg,
	}
}
