package breakout

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/boostout/internal/config"
	"github.com/vovakirdan/boostout/internal/core"
	"github.com/vovakirdan/boostout/internal/registry"
)

// Visual characters for terminal rendering
const (
	PaddleChar    = '='
	BallChar      = '●'
	BrickChar     = '█'
	HUDBarChar    = '█'
	HUDBackground = '░'
)

// Terminal cell geometry: one cell covers CellWidth x CellHeight world units
// and the top HUDRows rows hold the text HUD.
const (
	CellWidth  = 16.0
	CellHeight = 32.0
	HUDRows    = 1
)

// GameState constants
const (
	StateServe    = "serve"    // Ball held at spawn, counting down
	StatePlaying  = "playing"  // Ball in play
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // No lives left
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeBreakout GameMode = iota // Bricks, lives and rounds
	ModePractice                 // Walls, paddle, ball and boost only
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives simulation events; silent unless the CLI installs one.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger installs the logger used for simulation events.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// ScreenWorldSize returns the arena size, in world units, shown by a
// terminal of cols x rows cells.
func ScreenWorldSize(cols, rows int) core.Resize {
	return core.NewViewport(cols, rows, HUDRows, CellWidth, CellHeight).WorldSize()
}

// Game adapts a World to the registry: it adds lives, score, rounds and the
// serve/pause/game-over states on top of the frame simulation.
type Game struct {
	mode     GameMode
	world    *World
	worldErr error // Why world is nil

	// Game state
	state       string
	resumeState string // State to return to when unpausing
	score       int
	lives       int
	round       int
	tickCount   int
	serveTimer  float64

	// Configuration
	runtime     core.RuntimeConfig
	cfg         config.BreakoutConfig
	progression *config.Progression
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{mode: ModeBreakout}
}

// NewPractice creates a brick-less practice instance.
func NewPractice() *Game {
	return &Game{mode: ModePractice}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "practice"
	}
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Breakout (Practice)"
	}
	return "Breakout"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		logger.Warn("falling back to default config", "err", err)
		cfg = config.DefaultBreakoutConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.progression = config.NewProgression(cfg.Progression)

	// Initialize game state
	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.round = 0
	g.tickCount = 0
	g.resumeState = StatePlaying

	g.buildWorld(runtime.WorldW, runtime.WorldH)
}

// buildWorld creates the world for the given arena size. When the arena is
// too small the game waits for a resize that makes it usable.
func (g *Game) buildWorld(width, height float64) {
	w, err := NewWorld(g.cfg, WorldOptions{
		Width:    width,
		Height:   height,
		Seed:     g.runtime.Seed,
		NoBricks: g.mode == ModePractice,
	})
	if err != nil {
		if errors.Is(err, ErrArenaTooSmall) {
			logger.Warn("arena too small", "width", width, "height", height, "err", err)
		} else {
			logger.Error("cannot build world", "err", err)
		}
		g.world = nil
		g.worldErr = err
		return
	}

	g.world = w
	g.worldErr = nil
	g.startServe()
	logger.Debug("world ready",
		"mode", g.ID(),
		"width", w.Width, "height", w.Height,
		"bricks", len(w.Bricks), "seed", g.runtime.Seed)
}

// startServe holds the ball for serve_delay seconds.
func (g *Game) startServe() {
	g.state = StateServe
	g.serveTimer = g.cfg.Gameplay.ServeDelay
}

// ballSpeed returns the per-axis launch speed for the current round.
func (g *Game) ballSpeed() float64 {
	return g.progression.Speed(g.cfg.Ball.Speed, g.round)
}

// trackResizes remembers the latest arena size so restarts keep it.
func (g *Game) trackResizes(rs []core.Resize) {
	for _, r := range rs {
		g.runtime.WorldW = r.Width
		g.runtime.WorldH = r.Height
	}
}

// Step advances the game by one frame.
func (g *Game) Step(f core.Frame) core.StepResult {
	g.trackResizes(f.Resizes)

	if g.world == nil {
		if len(f.Resizes) > 0 && g.waitingForResize() {
			g.buildWorld(g.runtime.WorldW, g.runtime.WorldH)
		}
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if f.Input.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if f.Input.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = g.resumeState
		case StatePlaying, StateServe:
			g.resumeState = g.state
			g.state = StatePaused
		}
	}

	// Frozen states still follow the window
	if g.state == StatePaused || g.state == StateGameOver {
		g.world.ApplyResizes(f.Resizes)
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if g.state == StateServe {
		g.world.TickIdle(f)
		g.serveTimer -= f.DT
		if g.serveTimer <= 0 {
			g.serveTimer = 0
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}
	}

	rep := g.world.Tick(f)
	g.score += rep.Hits*g.cfg.Gameplay.HitPoints + rep.Destroyed*g.cfg.Gameplay.DestroyPoints
	if rep.Destroyed > 0 {
		logger.Debug("bricks destroyed", "count", rep.Destroyed, "remaining", len(g.world.Bricks), "score", g.score)
	}

	switch {
	case rep.Cleared:
		g.handleRoundClear()
	case rep.BallLost:
		g.handleMiss()
	}

	return core.StepResult{State: g.State()}
}

// handleMiss handles the ball leaving through the open bottom edge.
// Practice mode respawns without costing a life.
func (g *Game) handleMiss() {
	if g.mode != ModePractice {
		g.lives--
	}
	logger.Debug("ball lost", "lives", g.lives, "score", g.score)

	if g.lives <= 0 {
		g.state = StateGameOver
		logger.Debug("game over", "score", g.score, "round", g.round+1)
		return
	}

	g.world.RespawnBall(g.ballSpeed())
	g.startServe()
}

// handleRoundClear starts the next round with a fresh field and faster ball.
func (g *Game) handleRoundClear() {
	g.round++
	g.world.RefillBricks()
	g.world.RespawnBall(g.ballSpeed())
	g.startServe()
	logger.Debug("round cleared", "round", g.round+1, "speed", g.ballSpeed(), "bricks", len(g.world.Bricks))
}

// World returns the underlying simulation, or nil while the arena is too small.
func (g *Game) World() *World {
	return g.world
}

// Scene returns the world's sprites, or nil while no world exists.
func (g *Game) Scene() []core.Sprite {
	if g.world == nil {
		return nil
	}
	return g.world.Scene()
}

// hudText builds the one-line status shown above the arena.
func (g *Game) hudText() string {
	boost := 0.0
	if g.world != nil {
		boost = g.world.Boost.Value
	}
	if g.mode == ModePractice {
		return fmt.Sprintf("Practice  Boost: %3.0f%%", boost)
	}
	return fmt.Sprintf("Score: %d  Lives: %d  Round: %d  Boost: %3.0f%%", g.score, g.lives, g.round+1, boost)
}

// Overlay returns the HUD line followed by any state message.
func (g *Game) Overlay() []string {
	if g.world == nil {
		return g.noWorldLines()
	}

	lines := []string{g.hudText()}
	switch g.state {
	case StateServe:
		lines = append(lines, "Get ready...")
	case StatePaused:
		lines = append(lines, "PAUSED", "Press P to resume")
	case StateGameOver:
		lines = append(lines, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
	return lines
}

// waitingForResize reports whether a larger arena would let the world build.
func (g *Game) waitingForResize() bool {
	return g.worldErr == nil || errors.Is(g.worldErr, ErrArenaTooSmall)
}

// noWorldLines explains why there is nothing to play.
func (g *Game) noWorldLines() []string {
	if !g.waitingForResize() {
		return []string{"Invalid configuration", g.worldErr.Error()}
	}
	return []string{"Window too small", fmt.Sprintf("Need at least %.0f world units across", g.cfg.Paddle.Width)}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.world == nil {
		lines := g.noWorldLines()
		if g.waitingForResize() {
			cols := int(g.cfg.Paddle.Width/CellWidth) + 1
			lines[1] = fmt.Sprintf("Need %d columns", cols)
		}
		dst.DrawTextCentered(dst.Height()/2-1, lines[0])
		dst.DrawTextCentered(dst.Height()/2+1, lines[1])
		return
	}

	vp := core.NewViewport(dst.Width(), dst.Height(), HUDRows, CellWidth, CellHeight)

	for _, s := range g.world.Scene() {
		switch s.Kind {
		case core.SpriteWall:
			// Walls sit just outside the terminal edges
		case core.SpriteBall:
			x, y := vp.CellAt(s.Center)
			if y >= vp.Top {
				dst.SetColored(x, y, BallChar, s.Color)
			}
		default:
			r := vp.CellRect(s.Box())
			if r.Y < vp.Top {
				r.H -= vp.Top - r.Y
				r.Y = vp.Top
			}
			dst.DrawRect(r, spriteRune(s.Kind), s.Color)
		}
	}

	// Draw HUD
	dst.DrawText(1, 0, g.hudText())

	// Draw overlay messages
	g.renderOverlay(dst)
}

// spriteRune returns the fill character for a sprite kind.
func spriteRune(k core.SpriteKind) rune {
	switch k {
	case core.SpritePaddle:
		return PaddleChar
	case core.SpriteHUDBackground:
		return HUDBackground
	case core.SpriteHUDBar:
		return HUDBarChar
	default:
		return BrickChar
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateServe:
		dst.DrawTextCentered(dst.Height()-1, "Get ready...")

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))
	boxW := core.Max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Round returns the current round, starting at 1.
func (g *Game) Round() int {
	return g.round + 1
}

// Register the games with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
	registry.Register("practice", func() registry.Game {
		return NewPractice()
	})
}
