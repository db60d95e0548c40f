package breakout

import "math"

// Snapshot contains the complete game state for determinism checks.
// Floats are stored as IEEE-754 bits so equal states compare and hash equal.
type Snapshot struct {
	Tick       uint64
	State      string
	Score      int
	Lives      int
	Round      int
	ServeTimer uint64

	Width  uint64
	Height uint64

	// Ball state (X, Y, VX, VY)
	BallData [4]uint64

	PaddleX    uint64
	Boost      uint64
	TimerValue uint64

	// Brick states, in slice order. Each brick is 3 values: X bits, Y bits, Health
	BrickCount int
	BrickData  []uint64

	// PCG state of the brick field RNG
	RNGState []byte
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:      g.state,
		Score:      g.score,
		Lives:      g.lives,
		Round:      g.round,
		ServeTimer: math.Float64bits(g.serveTimer),
	}

	w := g.world
	if w == nil {
		return snap
	}

	snap.Width = math.Float64bits(w.Width)
	snap.Height = math.Float64bits(w.Height)
	snap.BallData = [4]uint64{
		math.Float64bits(w.Ball.Pos.X),
		math.Float64bits(w.Ball.Pos.Y),
		math.Float64bits(w.Ball.Vel.X),
		math.Float64bits(w.Ball.Vel.Y),
	}
	snap.PaddleX = math.Float64bits(w.Paddle.Pos.X)
	snap.Boost = math.Float64bits(w.Boost.Value)
	snap.TimerValue = math.Float64bits(w.Timer.Elapsed)

	// Flatten brick states
	snap.BrickCount = len(w.Bricks)
	snap.BrickData = make([]uint64, 0, len(w.Bricks)*3)
	for _, b := range w.Bricks {
		snap.BrickData = append(snap.BrickData,
			math.Float64bits(b.Pos.X),
			math.Float64bits(b.Pos.Y),
			uint64(b.Health), //#nosec G115 -- health is never negative
		)
	}

	if state, err := w.src.MarshalBinary(); err == nil {
		snap.RNGState = state
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range []byte(snap.State) {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Round) //#nosec G115 -- hash computation
	h = h*31 + snap.ServeTimer
	h = h*31 + snap.Width
	h = h*31 + snap.Height
	h = h*31 + snap.PaddleX
	h = h*31 + snap.Boost
	h = h*31 + snap.TimerValue
	h = h*31 + uint64(snap.BrickCount) //#nosec G115 -- hash computation

	for _, v := range snap.BallData {
		h = h*31 + v
	}

	for _, v := range snap.BrickData {
		h = h*31 + v
	}

	for _, c := range snap.RNGState {
		h = h*31 + uint64(c)
	}

	return h
}
