// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/boostout/internal/core"
)

// Game is the interface every playable mode implements.
// Games contain pure logic with no external dependencies (no Bubble Tea, no Ebiten).
// The platform handles input mapping, timing, and drawing.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "breakout", "practice").
	// Used for CLI arguments.
	ID() string

	// Title returns a human-readable name for display (e.g., "Breakout").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides the arena size and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame of f.DT seconds.
	// Input is abstracted to platform-level actions (Left, Boost, Pause, etc.)
	// and resizes arrive in world units.
	// Returns the result of this tick including current game state.
	Step(f core.Frame) core.StepResult

	// Render draws the current game state into a terminal cell buffer.
	Render(dst *core.Screen)

	// Scene returns the positioned rectangles to draw, in world units.
	// Used by pixel renderers.
	Scene() []core.Sprite

	// Overlay returns status text lines for pixel renderers (HUD, pause,
	// game over). The first line is the HUD.
	Overlay() []string

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
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
