// Package handler provides Telegram bot command handlers. Handlers
// parse arguments, call services and turn sentinel errors into
// friendly replies.
package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v3"

	"github.com/yt2025id-lab/panda-petgame/internal/catalog"
	"github.com/yt2025id-lab/panda-petgame/internal/service"
)

// PetHandler handles the pet care commands.
type PetHandler struct {
	gameService *service.GameService
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(gameService *service.GameService) *PetHandler {
	return &PetHandler{gameService: gameService}
}

// senderName extracts the best display name from the sender.
func senderName(sender *tele.User) string {
	if sender.Username != "" {
		return sender.Username
	}
	return sender.FirstName
}

// HandleStart handles the /start command and greets new players.
func (h *PetHandler) HandleStart(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	view, err := h.gameService.Status(context.Background(), sender.ID, senderName(sender))
	if err != nil {
		return c.Reply("❌ Could not load your panda, please try again later")
	}

	return c.Reply(fmt.Sprintf(
		"🐼 Welcome to Panda Pet, @%s!\n\n"+
			"Your panda is waiting for you. Coins: %d\n\n"+
			"Commands:\n"+
			"/status - check on your panda\n"+
			"/feed <food> - feed it (try /feed bamboo)\n"+
			"/play <toy> - play with a toy\n"+
			"/pet - give it a stroke\n"+
			"/wash - bath time\n"+
			"/sleep - tuck it in or wake it up\n"+
			"/missions /daily - earn coins\n"+
			"/checkin - daily bonus\n"+
			"/games - minigames\n"+
			"/leaderboard <game> - top scores",
		senderName(sender), view.Coins,
	))
}

// HandleStatus handles the /status command.
func (h *PetHandler) HandleStatus(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	view, err := h.gameService.Status(context.Background(), sender.ID, senderName(sender))
	if err != nil {
		return c.Reply("❌ Could not load your panda, please try again later")
	}

	return c.Reply(renderStatus(view))
}

// renderStatus formats a status snapshot.
func renderStatus(view *service.StatusView) string {
	var b strings.Builder

	state := "🐼"
	switch {
	case view.IsSleeping:
		state = "😴 Sleeping"
	case view.IsEating:
		state = "😋 Eating"
	case view.IsWashing:
		state = "🛁 Washing"
	}

	fmt.Fprintf(&b, "%s  Level %d  (XP %.0f/100)\n\n", state, view.Stats.Level, view.Stats.XP)
	fmt.Fprintf(&b, "🍗 Hunger:  %s\n", gaugeBar(view.Stats.Hunger))
	fmt.Fprintf(&b, "⚡ Energy:  %s\n", gaugeBar(view.Stats.Energy))
	fmt.Fprintf(&b, "🎈 Fun:     %s\n", gaugeBar(view.Stats.Fun))
	fmt.Fprintf(&b, "🧼 Hygiene: %s\n", gaugeBar(view.Stats.Hygiene))
	fmt.Fprintf(&b, "❤️ Health:  %s\n\n", gaugeBar(view.Stats.Health))
	fmt.Fprintf(&b, "💰 Coins: %d", view.Coins)

	if view.Message != "" {
		fmt.Fprintf(&b, "\n\n%s", view.Message)
	}
	return b.String()
}

// gaugeBar renders a ten-segment bar for a [0, 100] gauge.
func gaugeBar(v float64) string {
	filled := int(v) / 10
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled) + fmt.Sprintf(" %.0f", v)
}

// HandleFeed handles the /feed command: /feed <food>.
func (h *PetHandler) HandleFeed(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	args := c.Args()
	if len(args) < 1 {
		var menu strings.Builder
		menu.WriteString("🍽 What should your panda eat?\n\n")
		for _, f := range catalog.Foods {
			fmt.Fprintf(&menu, "%s /feed %s - %s (+%.0f hunger, %d coins)\n", f.Emoji, f.ID, f.Name, f.Nutrition, f.Cost)
		}
		return c.Reply(menu.String())
	}

	out, err := h.gameService.Feed(context.Background(), sender.ID, senderName(sender), strings.ToLower(args[0]))
	if err != nil {
		return replyActionError(c, err)
	}

	return c.Reply(fmt.Sprintf("%s\n\n+%.0f XP, %d coins left", out.Message, out.XPAwarded, out.Coins) + levelUpSuffix(out))
}

// HandlePlay handles the /play command: /play <toy>.
func (h *PetHandler) HandlePlay(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	args := c.Args()
	if len(args) < 1 {
		var menu strings.Builder
		menu.WriteString("🧸 Pick a toy!\n\n")
		for _, t := range catalog.Toys {
			fmt.Fprintf(&menu, "%s /play %s - %s (+%.0f fun, -%.0f energy)\n", t.Emoji, t.ID, t.Name, t.FunValue, t.EnergyCost)
		}
		return c.Reply(menu.String())
	}

	out, err := h.gameService.Play(context.Background(), sender.ID, senderName(sender), strings.ToLower(args[0]))
	if err != nil {
		return replyActionError(c, err)
	}

	reply := fmt.Sprintf("🎉 Playtime! +%.0f XP", out.XPAwarded)
	if out.Message != "" {
		reply = out.Message + "\n\n" + reply
	}
	return c.Reply(reply + levelUpSuffix(out))
}

// HandlePet handles the /pet command.
func (h *PetHandler) HandlePet(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	out, err := h.gameService.Pet(context.Background(), sender.ID, senderName(sender))
	if err != nil {
		return replyActionError(c, err)
	}

	if out.Message != "" {
		return c.Reply(out.Message)
	}
	return c.Reply("🐼 *happy panda noises*")
}

// HandleWash handles the /wash command.
func (h *PetHandler) HandleWash(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	out, err := h.gameService.Wash(context.Background(), sender.ID, senderName(sender))
	if err != nil {
		return replyActionError(c, err)
	}

	return c.Reply(fmt.Sprintf("%s\n\n+%.0f XP", out.Message, out.XPAwarded) + levelUpSuffix(out))
}

// HandleSleep handles the /sleep command.
func (h *PetHandler) HandleSleep(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	sleeping, err := h.gameService.ToggleSleep(context.Background(), sender.ID, senderName(sender))
	if err != nil {
		return c.Reply("❌ Something went wrong, please try again later")
	}

	if sleeping {
		return c.Reply("😴 Your panda curled up and fell asleep. Energy recovers while it rests.")
	}
	return c.Reply("☀️ Your panda woke up, ready for action!")
}

// replyActionError maps service errors to friendly replies.
func replyActionError(c tele.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrPetAsleep):
		return c.Reply("😴 Shh, your panda is sleeping! Use /sleep to wake it up.")
	case errors.Is(err, service.ErrNotEnoughCoins):
		return c.Reply("💸 Not enough coins!")
	case errors.Is(err, service.ErrTooTired):
		return c.Reply("🥱 Your panda is too tired for that. Let it rest with /sleep.")
	case errors.Is(err, service.ErrUnknownFood):
		return c.Reply("❓ Unknown food. Try /feed to see the menu.")
	case errors.Is(err, service.ErrUnknownToy):
		return c.Reply("❓ Unknown toy. Try /play to see the toy box.")
	default:
		return c.Reply("❌ Something went wrong, please try again later")
	}
}

// levelUpSuffix appends a celebration when an action leveled the pet.
func levelUpSuffix(out *service.ActionOutcome) string {
	if out.LevelsGained > 0 {
		return fmt.Sprintf("\n\n🎊 Level up! Now level %d!", out.Stats.Level)
	}
	return ""
}
