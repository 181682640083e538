package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v3"

	"github.com/yt2025id-lab/panda-petgame/internal/service"
)

// MissionHandler handles mission board commands.
type MissionHandler struct {
	missionService *service.MissionService
}

// NewMissionHandler creates a new MissionHandler.
func NewMissionHandler(missionService *service.MissionService) *MissionHandler {
	return &MissionHandler{missionService: missionService}
}

// HandleMissions handles the /missions command.
func (h *MissionHandler) HandleMissions(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	views, err := h.missionService.List(context.Background(), sender.ID, senderName(sender))
	if err != nil {
		return c.Reply("❌ Could not load missions, please try again later")
	}

	return c.Reply(renderMissions("📋 Missions", views))
}

// HandleDaily handles the /daily command.
func (h *MissionHandler) HandleDaily(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	views, err := h.missionService.DailyList(context.Background(), sender.ID, senderName(sender))
	if err != nil {
		return c.Reply("❌ Could not load daily missions, please try again later")
	}

	return c.Reply(renderMissions("🌅 Today's Missions (reset at midnight)", views))
}

// HandleClaim handles the /claim command: /claim <mission-id>.
func (h *MissionHandler) HandleClaim(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	args := c.Args()
	if len(args) < 1 {
		return c.Reply("Usage: /claim <mission-id>, e.g. /claim m1")
	}

	reward, err := h.missionService.Claim(context.Background(), sender.ID, senderName(sender), strings.ToLower(args[0]))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownMission):
			return c.Reply("❓ Unknown mission. Check /missions or /daily for IDs.")
		case errors.Is(err, service.ErrMissionNotReady):
			return c.Reply("⏳ That mission isn't finished yet, or you already claimed it.")
		default:
			return c.Reply("❌ Something went wrong, please try again later")
		}
	}

	return c.Reply(fmt.Sprintf("🎁 Mission complete! +%d coins", reward))
}

// renderMissions formats a mission board.
func renderMissions(title string, views []service.MissionView) string {
	var b strings.Builder
	b.WriteString(title + "\n\n")

	for _, v := range views {
		mark := "▫️"
		switch {
		case v.Claimed:
			mark = "✅"
		case v.Claimable:
			mark = "🎁"
		}
		fmt.Fprintf(&b, "%s %s - %s\n", mark, v.Mission.ID, v.Mission.Title)
		fmt.Fprintf(&b, "    %s (%.0f/%.0f) · %d coins\n", v.Mission.Description, v.Progress, v.Mission.Requirement, v.Mission.Reward)
	}

	b.WriteString("\nClaim finished missions with /claim <id>")
	return b.String()
}
