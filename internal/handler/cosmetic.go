package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v3"

	"github.com/yt2025id-lab/panda-petgame/internal/catalog"
	"github.com/yt2025id-lab/panda-petgame/internal/chain"
	"github.com/yt2025id-lab/panda-petgame/internal/service"
)

// CosmeticHandler handles panda NFT and social commands.
type CosmeticHandler struct {
	pandaService *service.PandaService
}

// NewCosmeticHandler creates a new CosmeticHandler.
func NewCosmeticHandler(pandaService *service.PandaService) *CosmeticHandler {
	return &CosmeticHandler{pandaService: pandaService}
}

// HandleMint handles the /mint command: /mint <name>.
func (h *CosmeticHandler) HandleMint(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	args := c.Args()
	if len(args) < 1 {
		return c.Reply("Usage: /mint <name>, e.g. /mint Bao")
	}

	panda, err := h.pandaService.Mint(context.Background(), sender.ID, strings.Join(args, " "))
	if err != nil {
		return c.Reply("❌ Minting failed, please try again later")
	}

	return c.Reply(fmt.Sprintf("🐼 %s has been minted!\nID: %s", panda.Name, panda.ID))
}

// HandlePandas handles the /pandas command.
func (h *CosmeticHandler) HandlePandas(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	pandas, err := h.pandaService.Owned(context.Background(), sender.ID)
	if err != nil {
		return c.Reply("❌ Could not load your pandas, please try again later")
	}
	if len(pandas) == 0 {
		return c.Reply("You don't own any pandas yet. Mint one with /mint <name>!")
	}

	var b strings.Builder
	b.WriteString("🐼 Your pandas\n\n")
	for _, p := range pandas {
		fmt.Fprintf(&b, "%s (%s)\n", p.Name, p.ID)
		for category, itemID := range p.Cosmetics {
			fmt.Fprintf(&b, "    %s: %s\n", category, itemID)
		}
	}
	return c.Reply(b.String())
}

// HandleEquip handles the /equip command: /equip <panda-id> <cosmetic>.
func (h *CosmeticHandler) HandleEquip(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	args := c.Args()
	if len(args) < 2 {
		var menu strings.Builder
		menu.WriteString("Usage: /equip <panda-id> <cosmetic>\n\nCosmetics:\n")
		for _, cos := range catalog.Cosmetics {
			fmt.Fprintf(&menu, "%s %s (%s slot)\n", cos.Emoji, cos.ID, cos.Category)
		}
		return c.Reply(menu.String())
	}

	cosmetic, err := h.pandaService.Equip(context.Background(), sender.ID, args[0], strings.ToLower(args[1]))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownCosmetic):
			return c.Reply("❓ Unknown cosmetic. Try /equip to see the list.")
		case errors.Is(err, chain.ErrPandaNotFound):
			return c.Reply("❓ No panda with that ID. See /pandas.")
		default:
			return c.Reply("❌ Equip failed, please try again later")
		}
	}

	return c.Reply(fmt.Sprintf("%s %s equipped!", cosmetic.Emoji, cosmetic.Name))
}

// HandleUnequip handles the /unequip command: /unequip <panda-id> <slot>.
func (h *CosmeticHandler) HandleUnequip(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	args := c.Args()
	if len(args) < 2 {
		return c.Reply("Usage: /unequip <panda-id> <slot> (hat, eyes, neck)")
	}

	err := h.pandaService.Unequip(context.Background(), sender.ID, args[0], strings.ToLower(args[1]))
	if err != nil {
		switch {
		case errors.Is(err, chain.ErrPandaNotFound):
			return c.Reply("❓ No panda with that ID. See /pandas.")
		case errors.Is(err, chain.ErrNothingEquipped):
			return c.Reply("That slot is already empty.")
		default:
			return c.Reply("❌ Unequip failed, please try again later")
		}
	}

	return c.Reply("🧺 Cosmetic removed.")
}

// HandleAddFriend handles the /addfriend command: /addfriend <user-id>.
func (h *CosmeticHandler) HandleAddFriend(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	args := c.Args()
	if len(args) < 1 {
		return c.Reply("Usage: /addfriend <user-id>")
	}

	friendID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.Reply("❓ That doesn't look like a user ID")
	}

	if err := h.pandaService.AddFriend(context.Background(), sender.ID, friendID); err != nil {
		switch {
		case errors.Is(err, chain.ErrAlreadyFriends):
			return c.Reply("You're already friends!")
		case errors.Is(err, chain.ErrSelfFriend):
			return c.Reply("🐼 Your panda is already your best friend.")
		default:
			return c.Reply("❌ Could not add friend, please try again later")
		}
	}

	return c.Reply("🤝 Friend added!")
}

// HandleAchievement handles the /achievement command: /achievement <id>.
func (h *CosmeticHandler) HandleAchievement(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	args := c.Args()
	if len(args) < 1 {
		return c.Reply("Usage: /achievement <id>")
	}

	err := h.pandaService.ClaimAchievement(context.Background(), sender.ID, strings.ToLower(args[0]))
	if err != nil {
		if errors.Is(err, chain.ErrAchievementClaimed) {
			return c.Reply("🏆 You've already claimed that achievement.")
		}
		return c.Reply("❌ Claim failed, please try again later")
	}

	return c.Reply("🏆 Achievement claimed!")
}

// HandleGift handles the /gift command: /gift <user-id> <item>.
func (h *CosmeticHandler) HandleGift(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	args := c.Args()
	if len(args) < 2 {
		return c.Reply("Usage: /gift <user-id> <item>, e.g. /gift 12345 bamboo")
	}

	toID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.Reply("❓ That doesn't look like a user ID")
	}

	giftID, err := h.pandaService.SendGift(context.Background(), sender.ID, toID, strings.ToLower(args[1]))
	if err != nil {
		return c.Reply("❌ Gift failed, please try again later")
	}

	return c.Reply(fmt.Sprintf("🎁 Gift sent! (id %s)", giftID))
}

// HandleGifts handles the /gifts command, listing received gifts.
func (h *CosmeticHandler) HandleGifts(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	gifts, err := h.pandaService.ReceivedGifts(context.Background(), sender.ID)
	if err != nil {
		return c.Reply("❌ Could not load your gifts, please try again later")
	}
	if len(gifts) == 0 {
		return c.Reply("🎁 No gifts yet. Make some friends with /addfriend!")
	}

	var b strings.Builder
	b.WriteString("🎁 Your gifts\n\n")
	for _, g := range gifts {
		fmt.Fprintf(&b, "%s from player %d\n", g.ItemID, g.From)
	}
	return c.Reply(b.String())
}
