package breakout

import "github.com/vovakirdan/boostout/internal/core"

// DefaultEpsilon is the gap left between the ball and a struck face.
const DefaultEpsilon = 0.1

// Resolve bounces the ball off other if they overlap.
// Left/Right hits negate vx, Top/Bottom hits negate vy. The ball is then moved
// flush against the struck face plus eps so the next frame starts clear.
func Resolve(ball *Ball, other core.Box, eps float64) (core.Side, bool) {
	side, ok := core.Collide(ball.Pos, ball.Size, other.Center, other.Size)
	if !ok {
		return side, false
	}

	half := ball.Size.Half()
	switch side {
	case core.SideLeft:
		ball.Vel.X = -ball.Vel.X
		ball.Pos.X = other.Left() - half.X - eps
	case core.SideRight:
		ball.Vel.X = -ball.Vel.X
		ball.Pos.X = other.Right() + half.X + eps
	case core.SideTop:
		ball.Vel.Y = -ball.Vel.Y
		ball.Pos.Y = other.Top() + half.Y + eps
	case core.SideBottom:
		ball.Vel.Y = -ball.Vel.Y
		ball.Pos.Y = other.Bottom() - half.Y - eps
	}
	return side, true
}
