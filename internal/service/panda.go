package service

import (
	"context"

	"github.com/yt2025id-lab/panda-petgame/internal/catalog"
	"github.com/yt2025id-lab/panda-petgame/internal/chain"
)

// PandaService wraps the NFT and social operations of the chain
// adapter, resolving catalog items before crossing the boundary.
type PandaService struct {
	adapter chain.Adapter
}

// NewPandaService creates a PandaService.
func NewPandaService(adapter chain.Adapter) *PandaService {
	return &PandaService{adapter: adapter}
}

// Mint mints a named panda NFT for the player.
func (p *PandaService) Mint(ctx context.Context, playerID int64, name string) (*chain.Panda, error) {
	return p.adapter.MintPanda(ctx, playerID, name)
}

// Owned lists the player's pandas.
func (p *PandaService) Owned(ctx context.Context, playerID int64) ([]*chain.Panda, error) {
	return p.adapter.QueryOwnedPandas(ctx, playerID)
}

// Equip puts a catalog cosmetic on one of the player's pandas. The
// cosmetic's category decides which slot it fills.
func (p *PandaService) Equip(ctx context.Context, playerID int64, pandaID, cosmeticID string) (*catalog.Cosmetic, error) {
	cosmetic, ok := catalog.CosmeticByID(cosmeticID)
	if !ok {
		return nil, ErrUnknownCosmetic
	}
	if err := p.adapter.EquipCosmetic(ctx, playerID, pandaID, cosmetic.Category, cosmetic.ID); err != nil {
		return nil, err
	}
	return &cosmetic, nil
}

// Unequip clears a cosmetic slot on one of the player's pandas.
func (p *PandaService) Unequip(ctx context.Context, playerID int64, pandaID, category string) error {
	return p.adapter.UnequipCosmetic(ctx, playerID, pandaID, category)
}

// AddFriend links the player with another player.
func (p *PandaService) AddFriend(ctx context.Context, playerID, friendID int64) error {
	return p.adapter.AddFriend(ctx, playerID, friendID)
}

// SendGift sends a catalog item to another player.
func (p *PandaService) SendGift(ctx context.Context, playerID, toID int64, itemID string) (string, error) {
	return p.adapter.SendGift(ctx, playerID, toID, itemID)
}

// ReceivedGifts lists the gifts other players have sent, oldest first.
func (p *PandaService) ReceivedGifts(ctx context.Context, playerID int64) ([]chain.Gift, error) {
	return p.adapter.ReceivedGifts(ctx, playerID)
}

// ClaimAchievement claims an on-chain achievement exactly once.
func (p *PandaService) ClaimAchievement(ctx context.Context, playerID int64, achievementID string) error {
	return p.adapter.ClaimAchievement(ctx, playerID, achievementID)
}
