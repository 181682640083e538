package minigame

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages minigame registration and lookup by command.
type Registry struct {
	games map[string]Minigame
	mu    sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{games: make(map[string]Minigame)}
}

// Register adds a minigame. A game with the same command replaces the
// previous registration.
func (r *Registry) Register(g Minigame) error {
	if g == nil {
		return fmt.Errorf("cannot register nil minigame")
	}
	if g.Command() == "" {
		return fmt.Errorf("minigame command cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[g.Command()] = g
	return nil
}

// Get retrieves a minigame by its command.
func (r *Registry) Get(command string) (Minigame, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[command]
	return g, ok
}

// List returns all registered minigames sorted by command.
func (r *Registry) List() []Minigame {
	r.mu.RLock()
	defer r.mu.RUnlock()

	games := make([]Minigame, 0, len(r.games))
	for _, g := range r.games {
		games = append(games, g)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].Command() < games[j].Command() })
	return games
}

// Commands returns all registered commands sorted.
func (r *Registry) Commands() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	commands := make([]string, 0, len(r.games))
	for cmd := range r.games {
		commands = append(commands, cmd)
	}
	sort.Strings(commands)
	return commands
}

// Count returns the number of registered minigames.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}
