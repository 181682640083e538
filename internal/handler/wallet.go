package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	tele "gopkg.in/telebot.v3"

	"github.com/yt2025id-lab/panda-petgame/internal/chain"
	"github.com/yt2025id-lab/panda-petgame/internal/service"
)

// WalletHandler handles IDRX wallet commands.
type WalletHandler struct {
	walletService *service.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletService *service.WalletService) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// HandleWallet handles the /wallet command.
func (h *WalletHandler) HandleWallet(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	balance, err := h.walletService.Balance(context.Background(), sender.ID)
	if err != nil {
		return c.Reply("❌ Could not reach your wallet, please try again later")
	}

	return c.Reply(fmt.Sprintf(
		"👛 IDRX balance: %d\n\n"+
			"/faucet - claim free IDRX (hourly)\n"+
			"/convert <amount> - exchange IDRX for coins",
		balance,
	))
}

// HandleFaucet handles the /faucet command.
func (h *WalletHandler) HandleFaucet(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	amount, err := h.walletService.Faucet(context.Background(), sender.ID)
	if err != nil {
		if errors.Is(err, chain.ErrFaucetCooldown) {
			return c.Reply(fmt.Sprintf("⏳ %v", err))
		}
		return c.Reply("❌ Faucet claim failed, please try again later")
	}

	return c.Reply(fmt.Sprintf("🚰 Faucet claimed: +%d IDRX", amount))
}

// HandleConvert handles the /convert command: /convert <idrx-amount>.
func (h *WalletHandler) HandleConvert(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	args := c.Args()
	if len(args) < 1 {
		return c.Reply("Usage: /convert <idrx-amount>, e.g. /convert 1000")
	}

	amount, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || amount <= 0 {
		return c.Reply("❓ Amount must be a positive number")
	}

	result, err := h.walletService.Convert(context.Background(), sender.ID, senderName(sender), amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConversionTooSmall):
			return c.Reply(fmt.Sprintf("🚫 %v", err))
		case errors.Is(err, chain.ErrInsufficientIDRX):
			return c.Reply("💸 Not enough IDRX. Try /faucet first.")
		default:
			return c.Reply("❌ Conversion failed, please try again later")
		}
	}

	return c.Reply(fmt.Sprintf(
		"💱 Converted %d IDRX into %d coins.\n💰 New balance: %d coins",
		result.IDRXSpent, result.CoinsGained, result.Coins,
	))
}
