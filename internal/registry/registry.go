// Package registry provides a global registry for board variant factories.
// Variants register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ndemidov/tui-wordle/internal/core"
)

// Game is the interface every board variant must implement.
// Games contain pure logic with no external dependencies (especially no
// Bubble Tea). The platform handles word selection, input mapping, timing,
// and rendering.
type Game interface {
	// ID returns a unique identifier for this variant (e.g., "classic").
	// Used for CLI commands.
	ID() string

	// Title returns a human-readable name for display (e.g., "Classic 5x6").
	Title() string

	// Rows returns the number of attempts allowed.
	Rows() int

	// Cols returns the word length for this variant.
	Cols() int

	// Reset initializes or resets the game state. The game is left waiting
	// for a target word; input is ignored until Start is called.
	Reset(cfg core.RuntimeConfig)

	// Start supplies the target word for the round and enables input.
	// The word must be lowercase and exactly Cols() letters long.
	Start(target string)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Letter, Submit, etc.).
	Step(in core.InputFrame) core.StepResult

	// Resize informs the game of a new screen size. Unlike Reset, the
	// round in progress is preserved.
	Resize(width, height int)

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (row, game over, won).
	State() core.GameState
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID    string
	Title string
	Rows  int
	Cols  int
}

// Factory is a function that creates a new instance of a variant.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Typically called from a game's init() function.
// Panics if a variant with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	factories[id] = f

	// Capture metadata from a temporary instance
	g := f()
	infos[id] = GameInfo{ID: id, Title: g.Title(), Rows: g.Rows(), Cols: g.Cols()}
}

// List returns information about all registered variants, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its variant ID.
// Returns an error if the ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	return f(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
