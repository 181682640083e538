package handler

import (
	"context"
	"errors"
	"fmt"

	tele "gopkg.in/telebot.v3"

	"github.com/yt2025id-lab/panda-petgame/internal/service"
)

// CheckinHandler handles the daily check-in command.
type CheckinHandler struct {
	checkinService *service.CheckinService
}

// NewCheckinHandler creates a new CheckinHandler.
func NewCheckinHandler(checkinService *service.CheckinService) *CheckinHandler {
	return &CheckinHandler{checkinService: checkinService}
}

// HandleCheckin handles the /checkin command.
func (h *CheckinHandler) HandleCheckin(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	result, err := h.checkinService.Checkin(context.Background(), sender.ID, senderName(sender))
	if err != nil {
		if errors.Is(err, service.ErrAlreadyCheckedIn) {
			return c.Reply("📅 You already checked in today. Come back tomorrow!")
		}
		return c.Reply("❌ Check-in failed, please try again later")
	}

	reply := fmt.Sprintf("✅ Day %d check-in! +%d coins", result.Streak, result.BaseBonus)
	if result.MilestoneBonus > 0 {
		reply += fmt.Sprintf("\n🔥 %d-day streak bonus: +%d coins!", result.Streak, result.MilestoneBonus)
	}
	return c.Reply(reply)
}
