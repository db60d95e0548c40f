package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/boostout/internal/config"
	"github.com/vovakirdan/boostout/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available modes and brick patterns",
	Long:  `Shows every registered game mode and the built-in brick patterns.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Brick patterns (bricks.pattern in the config):")
	fmt.Printf("  %s\n", config.PatternRandom)
	for _, name := range config.BrickPatternNames() {
		fmt.Printf("  %s\n", name)
	}

	fmt.Println()
	fmt.Println("Run 'boostout play <id>' to play.")
}
