package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/boostout/internal/core"
	"github.com/vovakirdan/boostout/internal/games/breakout"
	"github.com/vovakirdan/boostout/internal/platform/tui"
	"github.com/vovakirdan/boostout/internal/registry"
)

var (
	flagPractice bool
	flagHold     time.Duration
	flagNoHelp   bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Play in the terminal. Without a mode, a menu picks the mode and
difficulty and comes back after each game.

Controls:
  Left/Right, A/D          - Move paddle
  Shift+Left/Right, A/D    - Move with boost (uppercase A/D)
  P/Esc                    - Pause
  R                        - Restart (after game over)
  Ctrl+S                   - Save a text screenshot
  Q/Ctrl+C                 - Quit

Terminals report key presses but not releases, so a key counts as held
for --hold after its last press or auto-repeat.

Examples:
  boostout play
  boostout play breakout --difficulty hard
  boostout play --practice
  boostout play --hold 250ms --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPractice, "practice", false, "Play practice mode (no bricks, no lives)")
	playCmd.Flags().DurationVar(&flagHold, "hold", tui.DefaultHold, "How long a key counts as held after a press")
	playCmd.Flags().BoolVar(&flagNoHelp, "no-help", false, "Hide the controls line")
}

func runPlay(_ *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	breakout.SetLogger(logger)

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	opts := tui.Options{Hold: flagHold, ShowHelp: !flagNoHelp}

	gameID := ""
	switch {
	case flagPractice:
		gameID = "practice"
	case len(args) == 1:
		gameID = args[0]
	}

	if gameID != "" {
		if err := playOnce(gameID, cfg, opts); err != nil {
			fmt.Fprintln(os.Stderr, "Run 'boostout list' to see available modes.")
			return err
		}
		return nil
	}

	// Menu loop: pick a mode, play it, come back.
	difficulty := flagDifficulty
	for {
		res, err := tui.RunMenu(cfg, difficulty)
		if err != nil {
			return err
		}
		if res.Quit {
			return nil
		}

		cfg = res.Config
		difficulty = res.Difficulty
		breakout.SetDifficultyPreset(difficulty)
		logger.Info("starting game", "mode", res.GameID, "difficulty", difficulty)

		if err := playOnce(res.GameID, cfg, opts); err != nil {
			return err
		}
	}
}

// playOnce runs one game until the player quits.
func playOnce(gameID string, cfg core.RuntimeConfig, opts tui.Options) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	return tui.Run(game, cfg, opts)
}
