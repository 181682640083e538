package chain

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LocalAdapter is an in-memory Adapter used in development and tests.
// It enforces the faucet cooldown and ownership checks but performs no
// real chain calls.
type LocalAdapter struct {
	faucetAmount   int64
	faucetCooldown time.Duration

	mu           sync.Mutex
	balances     map[int64]int64
	lastFaucet   map[int64]time.Time
	pandas       map[int64][]*Panda
	achievements map[int64]map[string]bool
	friends      map[int64]map[int64]bool
	gifts        []Gift
	scores       map[string]map[int64]int64

	now func() time.Time
}

// NewLocalAdapter creates a local adapter with the given faucet grant
// and cooldown.
func NewLocalAdapter(faucetAmount int64, faucetCooldown time.Duration) *LocalAdapter {
	return &LocalAdapter{
		faucetAmount:   faucetAmount,
		faucetCooldown: faucetCooldown,
		balances:       make(map[int64]int64),
		lastFaucet:     make(map[int64]time.Time),
		pandas:         make(map[int64][]*Panda),
		achievements:   make(map[int64]map[string]bool),
		friends:        make(map[int64]map[int64]bool),
		scores:         make(map[string]map[int64]int64),
		now:            time.Now,
	}
}

// MintPanda mints a named pet NFT for the owner.
func (a *LocalAdapter) MintPanda(ctx context.Context, ownerID int64, name string) (*Panda, error) {
	if name == "" {
		return nil, fmt.Errorf("panda name cannot be empty")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	p := &Panda{
		ID:        uuid.NewString(),
		Owner:     ownerID,
		Name:      name,
		Cosmetics: make(map[string]string),
		MintedAt:  a.now(),
	}
	a.pandas[ownerID] = append(a.pandas[ownerID], p)
	return p, nil
}

// QueryOwnedPandas lists the owner's pandas.
func (a *LocalAdapter) QueryOwnedPandas(ctx context.Context, ownerID int64) ([]*Panda, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	owned := make([]*Panda, len(a.pandas[ownerID]))
	copy(owned, a.pandas[ownerID])
	return owned, nil
}

// EquipCosmetic equips an item into a slot on one of the owner's pandas.
func (a *LocalAdapter) EquipCosmetic(ctx context.Context, ownerID int64, pandaID, category, itemID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	p := a.findPanda(ownerID, pandaID)
	if p == nil {
		return ErrPandaNotFound
	}
	p.Cosmetics[category] = itemID
	return nil
}

// UnequipCosmetic clears a slot on one of the owner's pandas.
func (a *LocalAdapter) UnequipCosmetic(ctx context.Context, ownerID int64, pandaID, category string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	p := a.findPanda(ownerID, pandaID)
	if p == nil {
		return ErrPandaNotFound
	}
	if _, ok := p.Cosmetics[category]; !ok {
		return ErrNothingEquipped
	}
	delete(p.Cosmetics, category)
	return nil
}

// ClaimFaucet credits the faucet grant, enforcing the cooldown.
func (a *LocalAdapter) ClaimFaucet(ctx context.Context, ownerID int64) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	if last, ok := a.lastFaucet[ownerID]; ok && now.Sub(last) < a.faucetCooldown {
		return 0, fmt.Errorf("%w: try again in %s",
			ErrFaucetCooldown, (a.faucetCooldown - now.Sub(last)).Round(time.Second))
	}

	a.lastFaucet[ownerID] = now
	a.balances[ownerID] += a.faucetAmount
	return a.faucetAmount, nil
}

// IDRXBalance returns the owner's current IDRX balance.
func (a *LocalAdapter) IDRXBalance(ctx context.Context, ownerID int64) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balances[ownerID], nil
}

// WithdrawIDRX debits IDRX from the owner's balance.
func (a *LocalAdapter) WithdrawIDRX(ctx context.Context, ownerID int64, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("withdraw amount must be positive")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.balances[ownerID] < amount {
		return ErrInsufficientIDRX
	}
	a.balances[ownerID] -= amount
	return nil
}

// SubmitScore records a minigame score, keeping each player's best.
func (a *LocalAdapter) SubmitScore(ctx context.Context, ownerID int64, game string, score int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	board, ok := a.scores[game]
	if !ok {
		board = make(map[int64]int64)
		a.scores[game] = board
	}
	if score > board[ownerID] {
		board[ownerID] = score
	}
	return nil
}

// TopScores returns a game's leaderboard, best first. Ties rank the
// lower player ID first so the ordering is stable.
func (a *LocalAdapter) TopScores(ctx context.Context, game string, n int) ([]ScoreEntry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	entries := make([]ScoreEntry, 0, len(a.scores[game]))
	for player, score := range a.scores[game] {
		entries = append(entries, ScoreEntry{Player: player, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Player < entries[j].Player
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}

// BestScore returns the owner's best recorded score for a game.
func (a *LocalAdapter) BestScore(ctx context.Context, ownerID int64, game string) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.scores[game][ownerID], nil
}

// ClaimAchievement claims an achievement exactly once per owner.
func (a *LocalAdapter) ClaimAchievement(ctx context.Context, ownerID int64, achievementID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	claimed, ok := a.achievements[ownerID]
	if !ok {
		claimed = make(map[string]bool)
		a.achievements[ownerID] = claimed
	}
	if claimed[achievementID] {
		return ErrAchievementClaimed
	}
	claimed[achievementID] = true
	return nil
}

// AddFriend links two players symmetrically.
func (a *LocalAdapter) AddFriend(ctx context.Context, ownerID, friendID int64) error {
	if ownerID == friendID {
		return ErrSelfFriend
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.friends[ownerID][friendID] {
		return ErrAlreadyFriends
	}
	a.link(ownerID, friendID)
	a.link(friendID, ownerID)
	return nil
}

// SendGift transfers an item to another player.
func (a *LocalAdapter) SendGift(ctx context.Context, fromID, toID int64, itemID string) (string, error) {
	if itemID == "" {
		return "", fmt.Errorf("gift item cannot be empty")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	g := Gift{
		ID:     uuid.NewString(),
		From:   fromID,
		To:     toID,
		ItemID: itemID,
		SentAt: a.now(),
	}
	a.gifts = append(a.gifts, g)
	return g.ID, nil
}

// ReceivedGifts returns the gifts sent to a player, oldest first.
func (a *LocalAdapter) ReceivedGifts(ctx context.Context, playerID int64) ([]Gift, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var received []Gift
	for _, g := range a.gifts {
		if g.To == playerID {
			received = append(received, g)
		}
	}
	return received, nil
}

// findPanda must be called with the lock held.
func (a *LocalAdapter) findPanda(ownerID int64, pandaID string) *Panda {
	for _, p := range a.pandas[ownerID] {
		if p.ID == pandaID {
			return p
		}
	}
	return nil
}

func (a *LocalAdapter) link(from, to int64) {
	if a.friends[from] == nil {
		a.friends[from] = make(map[int64]bool)
	}
	a.friends[from][to] = true
}
