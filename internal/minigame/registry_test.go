package minigame

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGame is a minimal Minigame for registry tests.
type stubGame struct {
	name    string
	command string
}

func (g *stubGame) Name() string        { return g.name }
func (g *stubGame) Command() string     { return g.command }
func (g *stubGame) Description() string { return "stub" }
func (g *stubGame) MaxMetric() int64    { return 100 }
func (g *stubGame) ValidateMetric(metric int64) error {
	if metric < 0 {
		return errors.New("negative metric")
	}
	return nil
}
func (g *stubGame) Rewards(metric int64, level int) (*Result, error) {
	return &Result{Score: metric, XP: float64(metric), Coins: metric}, nil
}

// TestRegistry_RegisterAndGet tests registration and lookup.
func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	game := &stubGame{name: "Test Game", command: "testgame"}
	require.NoError(t, registry.Register(game))

	got, ok := registry.Get("testgame")
	require.True(t, ok)
	assert.Equal(t, "Test Game", got.Name())

	_, ok = registry.Get("missing")
	assert.False(t, ok)
}

// TestRegistry_RegisterInvalid tests rejection of bad registrations.
func TestRegistry_RegisterInvalid(t *testing.T) {
	registry := NewRegistry()

	assert.Error(t, registry.Register(nil))
	assert.Error(t, registry.Register(&stubGame{name: "No Command"}))
	assert.Equal(t, 0, registry.Count())
}

// TestRegistry_RegisterReplaces tests that re-registering a command
// replaces the previous game.
func TestRegistry_RegisterReplaces(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register(&stubGame{name: "First", command: "game"}))
	require.NoError(t, registry.Register(&stubGame{name: "Second", command: "game"}))

	assert.Equal(t, 1, registry.Count())
	got, ok := registry.Get("game")
	require.True(t, ok)
	assert.Equal(t, "Second", got.Name())
}

// TestRegistry_ListAndCommands tests sorted enumeration.
func TestRegistry_ListAndCommands(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register(&stubGame{name: "C", command: "charlie"}))
	require.NoError(t, registry.Register(&stubGame{name: "A", command: "alpha"}))
	require.NoError(t, registry.Register(&stubGame{name: "B", command: "bravo"}))

	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, registry.Commands())

	list := registry.List()
	require.Len(t, list, 3)
	assert.Equal(t, "alpha", list[0].Command())
	assert.Equal(t, "bravo", list[1].Command())
	assert.Equal(t, "charlie", list[2].Command())
}
