package core

import "math"

// Side identifies which face of a stationary box was struck by a moving one.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Horizontal reports whether the side is Left or Right.
func (s Side) Horizontal() bool {
	return s == SideLeft || s == SideRight
}

// Collide tests moving box A (centerA, sizeA) against box B (centerB, sizeB).
// Boxes overlap iff the center distance on each axis is strictly less than the
// sum of half extents. The returned side is the face of B that A struck, picked
// by the axis with the smaller penetration depth. Equal depths resolve
// horizontally.
func Collide(centerA, sizeA, centerB, sizeB Vec2) (Side, bool) {
	dx := centerA.X - centerB.X
	dy := centerA.Y - centerB.Y

	penX := (sizeA.X+sizeB.X)/2 - math.Abs(dx)
	penY := (sizeA.Y+sizeB.Y)/2 - math.Abs(dy)
	if penX <= 0 || penY <= 0 {
		return SideLeft, false
	}

	if penX <= penY {
		if dx < 0 {
			return SideLeft, true
		}
		return SideRight, true
	}
	if dy > 0 {
		return SideTop, true
	}
	return SideBottom, true
}

// CollideBoxes is Collide for two Box values.
func CollideBoxes(a, b Box) (Side, bool) {
	return Collide(a.Center, a.Size, b.Center, b.Size)
}
