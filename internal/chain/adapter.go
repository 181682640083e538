// Package chain defines the boundary to the blockchain collaborator.
// The game core calls these operations as opaque async calls and only
// consumes their success or failure; chain semantics (wallets,
// contracts, gas) live entirely behind the Adapter.
package chain

import (
	"context"
	"errors"
	"time"
)

// Errors returned by adapter implementations.
var (
	ErrFaucetCooldown     = errors.New("faucet is on cooldown")
	ErrPandaNotFound      = errors.New("panda not found")
	ErrNothingEquipped    = errors.New("no cosmetic equipped in that slot")
	ErrAchievementClaimed = errors.New("achievement already claimed")
	ErrAlreadyFriends     = errors.New("already friends")
	ErrSelfFriend         = errors.New("cannot add yourself as a friend")
	ErrInsufficientIDRX   = errors.New("insufficient IDRX balance")
)

// Panda is an on-chain pet NFT. Cosmetics maps slot category to the
// equipped item ID.
type Panda struct {
	ID        string
	Owner     int64
	Name      string
	Cosmetics map[string]string
	MintedAt  time.Time
}

// Gift is a one-way item transfer between two players.
type Gift struct {
	ID     string
	From   int64
	To     int64
	ItemID string
	SentAt time.Time
}

// ScoreEntry is one leaderboard row: a player's best score for a game.
type ScoreEntry struct {
	Player int64
	Score  int64
}

// Adapter is the single boundary the game core uses for every on-chain
// operation. Player identity is the Telegram user ID on both sides.
type Adapter interface {
	// MintPanda mints a named pet NFT for the owner.
	MintPanda(ctx context.Context, ownerID int64, name string) (*Panda, error)

	// QueryOwnedPandas lists the owner's pandas.
	QueryOwnedPandas(ctx context.Context, ownerID int64) ([]*Panda, error)

	// EquipCosmetic equips an item into a slot on one of the owner's
	// pandas, replacing whatever the slot held.
	EquipCosmetic(ctx context.Context, ownerID int64, pandaID, category, itemID string) error

	// UnequipCosmetic clears a slot on one of the owner's pandas.
	UnequipCosmetic(ctx context.Context, ownerID int64, pandaID, category string) error

	// ClaimFaucet credits the faucet grant and returns the amount, or
	// ErrFaucetCooldown if claimed too recently.
	ClaimFaucet(ctx context.Context, ownerID int64) (int64, error)

	// IDRXBalance returns the owner's current IDRX balance.
	IDRXBalance(ctx context.Context, ownerID int64) (int64, error)

	// WithdrawIDRX debits IDRX from the owner's balance, failing with
	// ErrInsufficientIDRX rather than going negative.
	WithdrawIDRX(ctx context.Context, ownerID int64, amount int64) error

	// SubmitScore records a minigame score on the leaderboard.
	SubmitScore(ctx context.Context, ownerID int64, game string, score int64) error

	// TopScores returns a game's leaderboard, best first, at most n
	// entries.
	TopScores(ctx context.Context, game string, n int) ([]ScoreEntry, error)

	// BestScore returns the owner's best recorded score for a game,
	// 0 if they never played.
	BestScore(ctx context.Context, ownerID int64, game string) (int64, error)

	// ClaimAchievement claims an achievement exactly once per owner.
	ClaimAchievement(ctx context.Context, ownerID int64, achievementID string) error

	// AddFriend links two players. The link is symmetric.
	AddFriend(ctx context.Context, ownerID, friendID int64) error

	// SendGift transfers an item to another player and returns the
	// gift's ID.
	SendGift(ctx context.Context, fromID, toID int64, itemID string) (string, error)

	// ReceivedGifts lists the gifts sent to a player.
	ReceivedGifts(ctx context.Context, playerID int64) ([]Gift, error)
}
