package breakout

import "github.com/vovakirdan/boostout/internal/core"

// Report summarizes what happened during one Tick.
type Report struct {
	Hits      int  // Resolved brick collisions
	Destroyed int  // Bricks removed this frame
	Cleared   bool // The last brick was removed this frame or by a resize
	BallLost  bool // The ball is entirely below the arena
}

// Tick advances the world by one frame. Systems run in a fixed order:
// resize relayout, paddle movement, ball movement, collisions, boost recharge,
// boost display.
func (w *World) Tick(f core.Frame) Report {
	return w.tick(f, true)
}

// TickIdle runs a frame with the ball held in place: the paddle, boost and
// layout still update but nothing collides.
func (w *World) TickIdle(f core.Frame) {
	w.tick(f, false)
}

func (w *World) tick(f core.Frame, live bool) Report {
	var rep Report

	w.ApplyResizes(f.Resizes)
	w.movePaddle(f.DT, f.Input)
	if live {
		w.moveBall(f.DT)
		rep = w.collide()
		rep.BallLost = w.BallLost()
		if w.emptied && len(w.Bricks) == 0 {
			rep.Cleared = true
		}
		w.emptied = false
	}
	w.rechargeBoost(f.DT)
	w.updateHUD()
	return rep
}

// movePaddle applies held direction and boost. Boost is engaged only while a
// direction is held; it doubles speed if the meter had charge before this
// frame's drain.
func (w *World) movePaddle(dt float64, in core.InputFrame) {
	dir := in.Direction()
	speed := w.Paddle.Speed

	if dir != 0 && in.Has(core.ActionBoost) {
		w.Timer.Reset()
		if w.Boost.Value > 0 {
			speed *= 2
		}
		w.Boost.Add(-w.cfg.Boost.DrainRate * dt)
	}

	w.Paddle.Pos.X += dir * speed * dt
	w.Paddle.Pos.X = core.ClampF(w.Paddle.Pos.X, -w.Paddle.Bound, w.Paddle.Bound)
}

// moveBall integrates position with explicit Euler.
func (w *World) moveBall(dt float64) {
	w.Ball.Pos = w.Ball.Pos.Add(w.Ball.Vel.Scale(dt))
}

// collide sweeps the ball against walls, the paddle, then every brick in slice
// order. Each resolution sees the previous one's velocity and position. Bricks
// lose one health per resolved hit and are compacted out at zero.
func (w *World) collide() Report {
	var rep Report
	eps := w.Epsilon()

	for i := range w.Walls {
		Resolve(&w.Ball, w.Walls[i].Box(), eps)
	}
	Resolve(&w.Ball, w.Paddle.Box(), eps)

	if len(w.Bricks) == 0 {
		return rep
	}

	maxHealth := w.cfg.Bricks.MaxHealth
	kept := w.Bricks[:0]
	for _, b := range w.Bricks {
		if _, hit := Resolve(&w.Ball, b.Box(), eps); hit {
			rep.Hits++
			b.Health--
			if b.Health <= 0 {
				rep.Destroyed++
				continue
			}
			b.Color = BrickColors[BrickColorIndex(maxHealth, b.Health)]
		}
		kept = append(kept, b)
	}
	clear(w.Bricks[len(kept):])
	w.Bricks = kept
	rep.Cleared = rep.Destroyed > 0 && len(w.Bricks) == 0
	return rep
}

// rechargeBoost adds recharge_amount for every completed timer period.
func (w *World) rechargeBoost(dt float64) {
	if n := w.Timer.Advance(dt); n > 0 {
		w.Boost.Add(float64(n) * w.cfg.Boost.RechargeAmount)
	}
}

// updateHUD projects the meter onto the bar. The left edge is anchored
// hud_inset_x from the window's left edge, so the bar shrinks from the right.
func (w *World) updateHUD() {
	bc := w.cfg.Boost
	left := -w.Width/2 + bc.HUDInsetX
	y := w.Height/2 - bc.HUDInsetY

	width := bc.BarWidth * w.Boost.Ratio()
	w.HUD.Bar = core.NewBox(core.V2(left+width/2, y), core.V2(width, bc.BarHeight))
	w.HUD.Background = core.NewBox(
		core.V2(left+bc.BarWidth/2, y),
		core.V2(bc.BarWidth+2*bc.BarPadding, bc.BarHeight+2*bc.BarPadding),
	)
}
