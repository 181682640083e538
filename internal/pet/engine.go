// Package pet implements the stat engine: the deterministic-per-tick
// state machine that owns the pet's gauges, decay and discrete action
// effects, plus the XP-to-level progression loop.
//
// The engine is pure with respect to time and I/O: callers drive ticks,
// and the only nondeterminism is the injected random source used for
// probability-gated extras.
package pet

import (
	"github.com/yt2025id-lab/panda-petgame/internal/catalog"
	"github.com/yt2025id-lab/panda-petgame/internal/model"
)

// Config holds the fixed simulation formulas.
type Config struct {
	HungerDecay   float64 // per tick
	EnergyDecay   float64 // per tick, awake
	FunDecay      float64 // per tick
	HygieneDecay  float64 // per tick
	SleepRecovery float64 // energy gained per tick while asleep
	HealthPenalty float64 // health lost per tick while starving

	FeedXP          float64
	FeedHygieneCost float64
	PlayXP          float64
	WashXP          float64
	WashAmount      float64
	PetFunGain      float64
	PetXPTrickle    float64

	PetXPChance        float64 // chance Pet also awards the XP trickle
	PlayDialogueChance float64 // chance Play triggers a dialogue line

	LevelThreshold float64 // XP needed per level
}

// DefaultConfig returns the production simulation constants.
func DefaultConfig() Config {
	return Config{
		HungerDecay:   0.1,
		EnergyDecay:   0.05,
		FunDecay:      0.15,
		HygieneDecay:  0.08,
		SleepRecovery: 0.5,
		HealthPenalty: 0.2,

		FeedXP:          10,
		FeedHygieneCost: 2,
		PlayXP:          20,
		WashXP:          10,
		WashAmount:      20,
		PetFunGain:      0.5,
		PetXPTrickle:    1,

		PetXPChance:        0.01,
		PlayDialogueChance: 0.3,

		LevelThreshold: 100,
	}
}

// Engine applies decay and discrete action effects to a player's pet.
// The rand source returns values in [0, 1) and is injected so that
// probability-gated behavior is deterministic under test.
type Engine struct {
	cfg  Config
	rand func() float64
}

// NewEngine creates an Engine. rand may be nil for actions that never
// hit a probability gate, but production callers should always supply one.
func NewEngine(cfg Config, rand func() float64) *Engine {
	return &Engine{cfg: cfg, rand: rand}
}

// ActionResult reports what a discrete action did so callers can record
// mission progress and surface dialogue.
type ActionResult struct {
	Applied      bool
	XPAwarded    float64
	LevelsGained int
	Talk         bool // action wants a dialogue line shown
}

// Tick applies one decay period. Hunger decay is halved while the pet
// sleeps, energy recovers instead of decaying, and a starving pet
// (hunger pinned at 0) loses health. Starvation is judged on the
// hunger entering the tick, so the tick that empties the gauge does
// not itself drain health.
func (e *Engine) Tick(p *model.Player) {
	s := &p.Stats
	starving := s.Hunger == 0

	hungerDecay := e.cfg.HungerDecay
	if p.IsSleeping {
		hungerDecay /= 2
	}
	s.Hunger = clamp(s.Hunger - hungerDecay)

	if p.IsSleeping {
		s.Energy = clamp(s.Energy + e.cfg.SleepRecovery)
	} else {
		s.Energy = clamp(s.Energy - e.cfg.EnergyDecay)
	}

	s.Fun = clamp(s.Fun - e.cfg.FunDecay)
	s.Hygiene = clamp(s.Hygiene - e.cfg.HygieneDecay)

	if starving {
		s.Health = clamp(s.Health - e.cfg.HealthPenalty)
	}
}

// Feed feeds the pet. It is a silent no-op when the pet is asleep or the
// player cannot afford the food; otherwise it deducts the cost, restores
// hunger, soils the pet slightly and awards XP.
func (e *Engine) Feed(p *model.Player, food catalog.Food) ActionResult {
	if p.IsSleeping || p.Coins < food.Cost {
		return ActionResult{}
	}

	p.Coins -= food.Cost
	p.Stats.Hunger = clamp(p.Stats.Hunger + food.Nutrition)
	p.Stats.Hygiene = clamp(p.Stats.Hygiene - e.cfg.FeedHygieneCost)
	levels := e.AddXP(p, e.cfg.FeedXP)

	return ActionResult{Applied: true, XPAwarded: e.cfg.FeedXP, LevelsGained: levels}
}

// Play plays with a toy. No-op while asleep or when energy is below the
// toy's cost.
func (e *Engine) Play(p *model.Player, toy catalog.Toy) ActionResult {
	if p.IsSleeping || p.Stats.Energy < toy.EnergyCost {
		return ActionResult{}
	}

	p.Stats.Fun = clamp(p.Stats.Fun + toy.FunValue)
	p.Stats.Energy = clamp(p.Stats.Energy - toy.EnergyCost)
	levels := e.AddXP(p, e.cfg.PlayXP)

	return ActionResult{
		Applied:      true,
		XPAwarded:    e.cfg.PlayXP,
		LevelsGained: levels,
		Talk:         e.chance(e.cfg.PlayDialogueChance),
	}
}

// Pet strokes the pet: a small fun bump, and a low-probability XP trickle.
func (e *Engine) Pet(p *model.Player) ActionResult {
	if p.IsSleeping {
		return ActionResult{}
	}

	p.Stats.Fun = clamp(p.Stats.Fun + e.cfg.PetFunGain)

	res := ActionResult{Applied: true}
	if e.chance(e.cfg.PetXPChance) {
		res.XPAwarded = e.cfg.PetXPTrickle
		res.LevelsGained = e.AddXP(p, e.cfg.PetXPTrickle)
		res.Talk = true
	}
	return res
}

// Wash cleans the pet and awards XP. No-op while asleep.
func (e *Engine) Wash(p *model.Player) ActionResult {
	if p.IsSleeping {
		return ActionResult{}
	}

	p.Stats.Hygiene = clamp(p.Stats.Hygiene + e.cfg.WashAmount)
	levels := e.AddXP(p, e.cfg.WashXP)

	return ActionResult{Applied: true, XPAwarded: e.cfg.WashXP, LevelsGained: levels}
}

// ToggleSleep flips the sleep flag and returns the new state.
func (e *Engine) ToggleSleep(p *model.Player) bool {
	p.IsSleeping = !p.IsSleeping
	return p.IsSleeping
}

// ApplyMinigame folds a finished minigame's payout into XP and coins.
// Unlike the discrete actions it runs unconditionally.
func (e *Engine) ApplyMinigame(p *model.Player, xpEarned float64, coinsEarned int64) ActionResult {
	p.Coins += coinsEarned
	levels := e.AddXP(p, xpEarned)
	return ActionResult{Applied: true, XPAwarded: xpEarned, LevelsGained: levels, Talk: true}
}

// AddXP accumulates XP and resolves level-ups: while XP is at or above
// the threshold, subtract it and increment the level. Returns the number
// of levels gained so callers can emit one celebration per level and set
// the level mission progress.
func (e *Engine) AddXP(p *model.Player, amount float64) int {
	p.Stats.XP += amount
	levels := 0
	for p.Stats.XP >= e.cfg.LevelThreshold {
		p.Stats.XP -= e.cfg.LevelThreshold
		p.Stats.Level++
		levels++
	}
	return levels
}

// chance rolls the injected random source against p.
func (e *Engine) chance(p float64) bool {
	if e.rand == nil || p <= 0 {
		return false
	}
	return e.rand() < p
}

// clamp bounds a gauge to [0, 100].
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
