// boostout is a Breakout game with a boost meter, playable in the terminal,
// in a desktop window, or over SSH.
//
// Usage:
//
//	boostout list                 - List available modes
//	boostout play [mode]          - Play in the terminal (menu when no mode is given)
//	boostout window [mode]        - Play in a desktop window
//	boostout serve                - Start SSH server for remote play
//	boostout config print         - Print the effective config as YAML
//	boostout config validate <f>  - Check a config file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible brick fields
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-file <path>     - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/boostout/internal/config"
	"github.com/vovakirdan/boostout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boostout",
	Short: "Boostout - Breakout with a boost meter",
	Long: `Boostout is a Breakout game with a boost meter: hold Shift while
steering to double the paddle speed until the meter runs dry.

Available commands:
  list     - Show the available modes
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print or validate configuration

Examples:
  boostout play
  boostout play practice
  boostout window --difficulty hard
  boostout serve --ssh :2222
  boostout config validate ./my-breakout.yaml`,
	PersistentPreRunE: configureGame,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// configureGame checks the global flags and hands them to the game package.
func configureGame(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)
	return nil
}

// newLogger builds the process logger. With --log-file it logs at debug level
// to that file; otherwise it writes info and above to fallback.
// The returned func closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out, level := fallback, log.InfoLevel
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		out, level = f, log.DebugLevel
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "boostout",
		Level:           level,
	})
	return logger, closeFn, nil
}
