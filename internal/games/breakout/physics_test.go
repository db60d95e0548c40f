package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/boostout/internal/core"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestResolveSides(t *testing.T) {
	block := core.NewBox(core.V2(0, 0), core.V2(100, 40))

	tests := []struct {
		name     string
		pos      core.Vec2
		vel      core.Vec2
		wantSide core.Side
		wantVel  core.Vec2
		wantPos  core.Vec2
	}{
		{
			name:     "from the left",
			pos:      core.V2(-60, 0),
			vel:      core.V2(250, -250),
			wantSide: core.SideLeft,
			wantVel:  core.V2(-250, -250),
			wantPos:  core.V2(-50-15-0.1, 0),
		},
		{
			name:     "from the right",
			pos:      core.V2(62, 5),
			vel:      core.V2(-250, 250),
			wantSide: core.SideRight,
			wantVel:  core.V2(250, 250),
			wantPos:  core.V2(50+15+0.1, 5),
		},
		{
			name:     "from above",
			pos:      core.V2(10, 33),
			vel:      core.V2(250, -250),
			wantSide: core.SideTop,
			wantVel:  core.V2(250, 250),
			wantPos:  core.V2(10, 20+15+0.1),
		},
		{
			name:     "from below",
			pos:      core.V2(-10, -34),
			vel:      core.V2(-250, 250),
			wantSide: core.SideBottom,
			wantVel:  core.V2(-250, -250),
			wantPos:  core.V2(-10, -20-15-0.1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := Ball{Pos: tt.pos, Size: core.V2(30, 30), Vel: tt.vel}
			speed := ball.Speed()

			side, ok := Resolve(&ball, block, DefaultEpsilon)
			if !ok {
				t.Fatal("expected a collision")
			}
			if side != tt.wantSide {
				t.Errorf("side = %v, want %v", side, tt.wantSide)
			}
			if ball.Vel != tt.wantVel {
				t.Errorf("velocity = %v, want %v", ball.Vel, tt.wantVel)
			}
			if !approx(ball.Pos.X, tt.wantPos.X) || !approx(ball.Pos.Y, tt.wantPos.Y) {
				t.Errorf("position = %v, want %v", ball.Pos, tt.wantPos)
			}
			if !approx(ball.Speed(), speed) {
				t.Errorf("speed changed from %g to %g", speed, ball.Speed())
			}
			if _, again := Resolve(&ball, block, DefaultEpsilon); again {
				t.Error("ball still overlaps after repositioning")
			}
		})
	}
}

func TestResolveNoOverlap(t *testing.T) {
	block := core.NewBox(core.V2(0, 0), core.V2(100, 40))
	// Exactly touching edges do not overlap.
	ball := Ball{Pos: core.V2(65, 0), Size: core.V2(30, 30), Vel: core.V2(-250, 250)}

	if _, ok := Resolve(&ball, block, DefaultEpsilon); ok {
		t.Fatal("touching boxes should not collide")
	}
	if ball.Vel != core.V2(-250, 250) || ball.Pos != core.V2(65, 0) {
		t.Errorf("ball changed without a collision: %+v", ball)
	}
}

func TestResolveFlipsOneAxis(t *testing.T) {
	block := core.NewBox(core.V2(0, 0), core.V2(60, 60))

	// Sweep a ball around the block; every hit must flip exactly one axis.
	for x := -40.0; x <= 40; x += 4 {
		for y := -40.0; y <= 40; y += 4 {
			ball := Ball{Pos: core.V2(x, y), Size: core.V2(30, 30), Vel: core.V2(180, -240)}
			side, ok := Resolve(&ball, block, DefaultEpsilon)
			if !ok {
				continue
			}
			if side.Horizontal() {
				if ball.Vel != core.V2(-180, -240) {
					t.Fatalf("at (%g, %g) side %v: velocity %v, want vx flipped only", x, y, side, ball.Vel)
				}
			} else if ball.Vel != core.V2(180, 240) {
				t.Fatalf("at (%g, %g) side %v: velocity %v, want vy flipped only", x, y, side, ball.Vel)
			}
		}
	}
}
