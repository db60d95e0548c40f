// Package gui runs games in a desktop window with ebiten. Keys are polled
// every frame, so held keys and releases are exact.
package gui

import (
	"image/color"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/boostout/internal/core"
	"github.com/vovakirdan/boostout/internal/registry"
)

var background = color.RGBA{16, 16, 28, 255}

// Line height of the ebitenutil debug font in pixels.
const textLineHeight = 16

// Window adapts a registry.Game to ebiten.Game. One world unit is one pixel.
type Window struct {
	game   registry.Game
	logger *log.Logger

	// Layout runs outside Update, so resizes queue here until the next frame.
	mu      sync.Mutex
	pending []core.Resize
	width   int
	height  int
}

// New creates a window driver for game. cfg.ScreenW and cfg.ScreenH are the
// initial window size in pixels.
func New(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.Default()
	}
	cfg.WorldW = float64(cfg.ScreenW)
	cfg.WorldH = float64(cfg.ScreenH)
	game.Reset(cfg)

	return &Window{
		game:   game,
		logger: logger,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Layout records the window size and keeps the logical screen equal to it.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if outsideWidth != w.width || outsideHeight != w.height {
		w.width, w.height = outsideWidth, outsideHeight
		w.pending = append(w.pending, core.Resize{
			Width:  float64(outsideWidth),
			Height: float64(outsideHeight),
		})
	}
	return outsideWidth, outsideHeight
}

// takeResizes hands over the queued resizes.
func (w *Window) takeResizes() []core.Resize {
	w.mu.Lock()
	defer w.mu.Unlock()

	rs := w.pending
	w.pending = nil
	return rs
}

// Update advances the game by one fixed tick of 1/TPS seconds.
func (w *Window) Update() error {
	in := pollInput()
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	f := core.Frame{
		DT:      1 / float64(ebiten.TPS()),
		Input:   in,
		Resizes: w.takeResizes(),
	}
	for _, r := range f.Resizes {
		w.logger.Debug("window resized", "width", r.Width, "height", r.Height)
	}
	w.game.Step(f)
	return nil
}

// Draw paints the scene rectangles and the overlay text.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	bounds := screen.Bounds()
	sw, sh := float64(bounds.Dx()), float64(bounds.Dy())

	for _, s := range w.game.Scene() {
		x, y, bw, bh := core.PixelRect(s.Box(), sw, sh)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(bw), float32(bh), s.Color.RGBA(), false)
	}

	lines := w.game.Overlay()
	for i, line := range lines {
		if i == 0 {
			ebitenutil.DebugPrintAt(screen, line, 8, 4)
			continue
		}
		// Status lines stack in the middle of the window.
		x := (bounds.Dx() - len(line)*6) / 2
		y := bounds.Dy()/2 + (i-1)*textLineHeight
		ebitenutil.DebugPrintAt(screen, line, x, y)
	}
}

// Run opens a resizable window and blocks until it closes or Q is pressed.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = 1280, 720
	}
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	ebiten.SetWindowSize(cfg.ScreenW, cfg.ScreenH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizable(true)

	w := New(game, cfg, logger)
	if err := ebiten.RunGame(w); err != nil {
		return err
	}
	return nil
}
