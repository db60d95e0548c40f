package breakout

import "github.com/vovakirdan/boostout/internal/core"

// Ball is the single moving body. Its speed magnitude only changes on respawn;
// collisions flip velocity signs.
type Ball struct {
	Pos  core.Vec2
	Size core.Vec2
	Vel  core.Vec2 // Units per second
}

// Box returns the ball's bounds.
func (b *Ball) Box() core.Box {
	return core.NewBox(b.Pos, b.Size)
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return b.Vel.Len()
}

// Paddle is the player-controlled bar. Pos.X stays within ±Bound.
type Paddle struct {
	Pos   core.Vec2
	Size  core.Vec2
	Speed float64 // Base speed in units per second
	Bound float64 // Maximum |Pos.X| for the current arena width
}

// Box returns the paddle's bounds.
func (p *Paddle) Box() core.Box {
	return core.NewBox(p.Pos, p.Size)
}

// WallSlot identifies one of the three arena walls.
type WallSlot int

const (
	WallLeft WallSlot = iota
	WallRight
	WallTop
)

// String returns a human-readable name for the slot.
func (s WallSlot) String() string {
	switch s {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	case WallTop:
		return "top"
	default:
		return "unknown"
	}
}

// Wall hugs one arena edge from outside. The bottom edge has no wall.
type Wall struct {
	Slot WallSlot
	Pos  core.Vec2
	Size core.Vec2
}

// Box returns the wall's bounds.
func (w *Wall) Box() core.Box {
	return core.NewBox(w.Pos, w.Size)
}

// BrickColors maps damage taken (max health minus current health) to a tint.
// Index 0 is undamaged, the last index is the low-health tint.
var BrickColors = [...]core.Color{core.ColorBrightCyan, core.ColorYellow, core.ColorBrightRed}

// BrickColorIndex returns the BrickColors index for a brick with the given
// health out of maxHealth.
func BrickColorIndex(maxHealth, health int) int {
	return core.Clamp(maxHealth-health, 0, len(BrickColors)-1)
}

// Brick is a square, destructible obstacle.
type Brick struct {
	Pos    core.Vec2
	Size   float64
	Health int
	Color  core.Color
}

// Box returns the brick's bounds.
func (b *Brick) Box() core.Box {
	return core.NewBox(b.Pos, core.V2(b.Size, b.Size))
}

// HUD is the boost bar projection. It is recomputed every frame from the
// meter and the arena size.
type HUD struct {
	Bar        core.Box
	Background core.Box
}
