// Package registry keeps the set of playable game variants. Variants register
// themselves in init() so the CLI and SSH host can find them by ID.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// ErrUnknownGame is returned (wrapped) by Create for unregistered IDs.
var ErrUnknownGame = errors.New("unknown game")

// Game is what the host drives once per frame. Implementations hold pure
// game logic; input mapping, timing and terminal output live in the host.
type Game interface {
	// ID returns a unique identifier such as "frogger".
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset loads the level and starts a fresh session.
	Reset(cfg core.RuntimeConfig) error

	// Step advances the simulation by one host frame that lasted dt and
	// consumes the input edges of that frame.
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the status of the last tick.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory. It panics on a duplicate ID, which is a
// programming error in an init() function.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
