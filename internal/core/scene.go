package core

// SpriteKind is the closed set of visual entities the simulation exposes.
type SpriteKind int

const (
	SpriteWall SpriteKind = iota
	SpriteBrick
	SpritePaddle
	SpriteBall
	SpriteHUDBackground
	SpriteHUDBar
)

// Sprite is a positioned, sized, colored rectangle handed to a renderer.
// Center and Size are in world units (origin at window center, +y up).
type Sprite struct {
	Kind   SpriteKind
	Center Vec2
	Size   Vec2
	Color  Color
}

// Box returns the sprite's bounds.
func (s Sprite) Box() Box {
	return Box{Center: s.Center, Size: s.Size}
}
