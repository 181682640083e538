package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v3"

	"github.com/yt2025id-lab/panda-petgame/internal/minigame"
	"github.com/yt2025id-lab/panda-petgame/internal/service"
)

// MinigameHandler handles minigame result commands. Minigames run on
// the player's side; the command reports the finished run's raw metric.
type MinigameHandler struct {
	gameService *service.GameService
	registry    *minigame.Registry
}

// NewMinigameHandler creates a new MinigameHandler.
func NewMinigameHandler(gameService *service.GameService, registry *minigame.Registry) *MinigameHandler {
	return &MinigameHandler{gameService: gameService, registry: registry}
}

// HandleGames handles the /games command, listing the minigames.
func (h *MinigameHandler) HandleGames(c tele.Context) error {
	var b strings.Builder
	b.WriteString("🕹 Minigames\n\n")
	for _, g := range h.registry.List() {
		fmt.Fprintf(&b, "/%s <result> - %s\n    %s\n", g.Command(), g.Name(), g.Description())
	}
	b.WriteString("\nReport your result after a run, e.g. /dinojump 420")
	return c.Reply(b.String())
}

// leaderboardSize is how many rows a leaderboard reply shows.
const leaderboardSize = 10

// HandleLeaderboard handles the /leaderboard command: the top scores
// for one game plus the caller's personal best.
func (h *MinigameHandler) HandleLeaderboard(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	args := c.Args()
	if len(args) < 1 {
		return c.Reply(fmt.Sprintf(
			"Usage: /leaderboard <game>\nGames: %s",
			strings.Join(h.registry.Commands(), ", "),
		))
	}

	view, err := h.gameService.Leaderboard(context.Background(), sender.ID, args[0], leaderboardSize)
	if err != nil {
		if errors.Is(err, service.ErrUnknownGame) {
			return c.Reply("❓ Unknown minigame. See /games.")
		}
		return c.Reply("❌ Something went wrong, please try again later")
	}

	if len(view.Entries) == 0 {
		return c.Reply(fmt.Sprintf("🏆 %s has no scores yet. Be the first!", view.Game))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏆 %s leaderboard\n\n", view.Game)
	for i, entry := range view.Entries {
		marker := ""
		if entry.Player == sender.ID {
			marker = " (you)"
		}
		fmt.Fprintf(&b, "%d. Player %d: %d%s\n", i+1, entry.Player, entry.Score, marker)
	}
	fmt.Fprintf(&b, "\nYour best: %d", view.OwnBest)
	return c.Reply(b.String())
}

// HandleResult handles a per-game result command: /<game> <metric>.
func (h *MinigameHandler) HandleResult(command string) tele.HandlerFunc {
	return func(c tele.Context) error {
		sender := c.Sender()
		if sender == nil {
			return nil
		}

		game, ok := h.registry.Get(command)
		if !ok {
			return c.Reply("❓ Unknown minigame. See /games.")
		}

		args := c.Args()
		if len(args) < 1 {
			return c.Reply(fmt.Sprintf("Usage: /%s <result> (0 to %d)", game.Command(), game.MaxMetric()))
		}

		metric, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return c.Reply(fmt.Sprintf("❓ That doesn't look like a number. Usage: /%s <result>", game.Command()))
		}

		out, err := h.gameService.ApplyMinigameResult(context.Background(), sender.ID, senderName(sender), command, metric)
		if err != nil {
			if errors.Is(err, service.ErrUnknownGame) {
				return c.Reply("❓ Unknown minigame. See /games.")
			}
			if validationErr := game.ValidateMetric(metric); validationErr != nil {
				return c.Reply(fmt.Sprintf("🚫 %v", validationErr))
			}
			return c.Reply("❌ Something went wrong, please try again later")
		}

		return c.Reply(fmt.Sprintf(
			"🏆 %s result recorded!\n+%.0f XP, +%d coins%s",
			game.Name(), out.XPAwarded, out.CoinsEarned, levelUpSuffix(out),
		))
	}
}
