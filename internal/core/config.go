package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Host surface width (cells for the TUI, pixels for the window)
	ScreenH  int   // Host surface height
	TickRate int   // Frames per second requested from the driver (default 60)
	Seed     int64 // RNG seed; 0 means the platform layer picks one from the clock

	// Arena size in world units. Zero means the game's configured arena.
	WorldW float64
	WorldH float64
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Resize is a window-resize notification in world units.
type Resize struct {
	Width  float64
	Height float64
}

// Frame is everything a driver hands the simulation for one tick:
// elapsed seconds, current input and the resizes seen since the last tick.
type Frame struct {
	DT      float64
	Input   InputFrame
	Resizes []Resize
}

// NewFrame creates a frame with the given delta and an empty input set.
func NewFrame(dt float64) Frame {
	return Frame{DT: dt, Input: NewInputFrame()}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
