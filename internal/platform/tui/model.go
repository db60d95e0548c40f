package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/boostout/internal/core"
	"github.com/vovakirdan/boostout/internal/games/breakout"
	"github.com/vovakirdan/boostout/internal/registry"
)

// maxFrameDT caps the simulated time of one frame so a stalled terminal
// does not tunnel the ball through a brick.
const maxFrameDT = 0.1

// helpRows is the number of rows below the game used by the controls line.
const helpRows = 1

// Options tune the terminal driver.
type Options struct {
	// Hold is how long a direction key counts as held after a press.
	Hold time.Duration
	// ShowHelp draws the controls line under the game.
	ShowHelp bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	opts      Options
	keys      *KeyMapper
	help      help.Model
	resizes   []core.Resize
	lastTick  time.Time
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenW and cfg.ScreenH are the terminal size in cells.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	cols, rows := cfg.ScreenW, gameRows(cfg.ScreenH, opts)
	size := breakout.ScreenWorldSize(cols, rows)
	cfg.WorldW, cfg.WorldH = size.Width, size.Height

	h := help.New()
	h.Width = cols

	return Model{
		game:   game,
		screen: core.NewScreen(cols, rows),
		config: cfg,
		opts:   opts,
		keys:   NewKeyMapper(opts.Hold),
		help:   h,
	}
}

// gameRows returns the rows left for the game on a terminal of the given height.
func gameRows(height int, opts Options) int {
	if opts.ShowHelp {
		height -= helpRows
	}
	return max(height, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKey(msg, time.Now()) == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize resizes the cell buffer and queues the new arena size for
// the next frame. The game keeps its state across resizes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	cols, rows := msg.Width, gameRows(msg.Height, m.opts)
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(cols, rows)
	m.help.Width = cols

	size := breakout.ScreenWorldSize(cols, rows)
	m.config.WorldW, m.config.WorldH = size.Width, size.Height
	m.resizes = append(m.resizes, size)

	return m, nil
}

// handleTick runs one simulation frame with the time elapsed since the
// previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	f := core.Frame{
		DT:      m.frameDT(now),
		Input:   m.keys.Frame(now),
		Resizes: m.resizes,
	}
	m.resizes = nil
	m.lastTick = now

	result := m.game.Step(f)
	m.gameState = result.State

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// frameDT returns the seconds to simulate for a tick arriving at now.
func (m Model) frameDT(now time.Time) float64 {
	if m.lastTick.IsZero() {
		return 1 / float64(max(m.config.TickRate, 1))
	}
	dt := now.Sub(m.lastTick).Seconds()
	return core.ClampF(dt, 0, maxFrameDT)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".boostout", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	view := RenderScreen(m.screen)
	if m.opts.ShowHelp {
		view += "\n" + m.help.View(m.keys.Keys())
	}
	return view
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
