package handler

import (
	"context"
	"fmt"
	"strconv"

	tele "gopkg.in/telebot.v3"

	"github.com/yt2025id-lab/panda-petgame/internal/service"
)

// AdminHandler handles privileged coin adjustment commands. The admin
// middleware has already verified the sender.
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// parseAdminArgs parses "<user-id> <amount>".
func parseAdminArgs(args []string) (int64, int64, error) {
	if len(args) < 2 {
		return 0, 0, fmt.Errorf("expected <user-id> <amount>")
	}
	playerID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid user ID")
	}
	amount, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid amount")
	}
	return playerID, amount, nil
}

// HandleAdminAdd handles /admin_add <user-id> <amount>.
func (h *AdminHandler) HandleAdminAdd(c tele.Context) error {
	playerID, amount, err := parseAdminArgs(c.Args())
	if err != nil {
		return c.Reply(fmt.Sprintf("Usage: /admin_add <user-id> <amount> (%v)", err))
	}

	balance, err := h.adminService.AddCoins(context.Background(), playerID, amount)
	if err != nil {
		return c.Reply("❌ Adjustment failed")
	}

	return c.Reply(fmt.Sprintf("✅ Added %d coins to %d. New balance: %d", amount, playerID, balance))
}

// HandleAdminSet handles /admin_set <user-id> <amount>.
func (h *AdminHandler) HandleAdminSet(c tele.Context) error {
	playerID, amount, err := parseAdminArgs(c.Args())
	if err != nil {
		return c.Reply(fmt.Sprintf("Usage: /admin_set <user-id> <amount> (%v)", err))
	}

	balance, err := h.adminService.SetCoins(context.Background(), playerID, amount)
	if err != nil {
		return c.Reply("❌ Adjustment failed")
	}

	return c.Reply(fmt.Sprintf("✅ Set %d's balance to %d", playerID, balance))
}
