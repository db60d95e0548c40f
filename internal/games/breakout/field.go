// Package breakout implements the boost Breakout simulation: a ball, a paddle
// with a draining boost meter, three walls and a destructible brick field.
package breakout

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/boostout/internal/config"
	"github.com/vovakirdan/boostout/internal/core"
)

// newRNG creates the brick field random source. The same seed always yields
// the same field. The PCG is returned alongside so its state can be captured.
func newRNG(seed int64) (*rand.Rand, *rand.PCG) {
	s := uint64(seed) //#nosec G115 -- bit pattern reuse
	src := rand.NewPCG(s, s^0x9e3779b97f4a7c15)
	return rand.New(src), src
}

// resolveLayout returns the fixed layout to use, or nil for random fill.
// An explicit layout wins over a named pattern.
func resolveLayout(cfg config.BricksConfig) ([]string, error) {
	if len(cfg.Layout) > 0 {
		return cfg.Layout, nil
	}
	if cfg.Pattern == "" || cfg.Pattern == config.PatternRandom {
		return nil, nil
	}
	lines, ok := config.BrickPattern(cfg.Pattern)
	if !ok {
		return nil, fmt.Errorf("unknown brick pattern %q", cfg.Pattern)
	}
	return lines, nil
}

// parseCell returns the starting health for a layout character, 0 for empty.
func parseCell(ch byte, maxHealth int) int {
	switch {
	case ch == '#':
		return maxHealth
	case ch >= '1' && ch <= '9':
		return core.Clamp(int(ch-'0'), 1, maxHealth)
	default:
		return 0
	}
}

// generateField lays out bricks for an arena of the given size.
// Columns tile the width edge to edge and are centered horizontally; the first
// row sits TopOffset below the top edge and rows grow downward. Without a fixed
// layout each cell is filled with probability FillChance.
func generateField(cfg config.BricksConfig, layout []string, width, height float64, rng *rand.Rand) []Brick {
	pitch := cfg.Size + cfg.Margin
	if pitch <= 0 || cfg.MaxHealth < 1 {
		return nil
	}
	cols := int(math.Floor(width / pitch))
	rows := cfg.Rows
	if layout != nil {
		rows = len(layout)
		widest := 0
		for _, line := range layout {
			widest = core.Max(widest, len(line))
		}
		cols = min(cols, widest)
	}
	if cols <= 0 || rows <= 0 {
		return nil
	}

	span := float64(cols)*pitch - cfg.Margin
	startX := -span/2 + cfg.Size/2
	startY := height/2 - cfg.TopOffset

	bricks := make([]Brick, 0, rows*cols)
	for row := range rows {
		for col := range cols {
			health := cfg.MaxHealth
			if layout != nil {
				line := layout[row]
				if col >= len(line) {
					continue
				}
				health = parseCell(line[col], cfg.MaxHealth)
				if health == 0 {
					continue
				}
			} else if rng.Float64() >= cfg.FillChance {
				continue
			}

			bricks = append(bricks, Brick{
				Pos:    core.V2(startX+float64(col)*pitch, startY-float64(row)*pitch),
				Size:   cfg.Size,
				Health: health,
				Color:  BrickColors[BrickColorIndex(cfg.MaxHealth, health)],
			})
		}
	}
	return bricks
}
