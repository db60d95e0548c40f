package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/boostout/internal/core"
	"github.com/vovakirdan/boostout/internal/games/breakout"
	"github.com/vovakirdan/boostout/internal/platform/gui"
	"github.com/vovakirdan/boostout/internal/registry"
)

var (
	flagWindowW int
	flagWindowH int
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open a resizable desktop window. One pixel is one world unit, so
resizing the window resizes the arena.

Controls:
  Left/Right, A/D   - Move paddle
  Shift (held)      - Boost while moving
  P/Esc             - Pause
  R                 - Restart (after game over)
  Q                 - Quit

Examples:
  boostout window
  boostout window practice --width 1600 --height 900`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWindowW, "width", 1280, "Initial window width in pixels")
	windowCmd.Flags().IntVar(&flagWindowH, "height", 720, "Initial window height in pixels")
	windowCmd.Flags().BoolVar(&flagPractice, "practice", false, "Play practice mode (no bricks, no lives)")
}

func runWindow(_ *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	breakout.SetLogger(logger)

	gameID := "breakout"
	switch {
	case flagPractice:
		gameID = "practice"
	case len(args) == 1:
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	cfg := core.RuntimeConfig{
		ScreenW:  flagWindowW,
		ScreenH:  flagWindowH,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("opening window", "mode", gameID, "width", cfg.ScreenW, "height", cfg.ScreenH)
	if err := gui.Run(game, cfg, logger); err != nil {
		logger.Error("window closed with error", "err", err)
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
