package breakout

import "github.com/vovakirdan/boostout/internal/core"

// BoostMax is the full boost meter.
const BoostMax = 100.0

// timerTolerance absorbs float drift when summing frame deltas.
const timerTolerance = 1e-9

// BoostMeter holds the boost charge in [0, BoostMax].
type BoostMeter struct {
	Value float64
}

// Add changes the meter by delta and clamps the result.
func (m *BoostMeter) Add(delta float64) {
	m.Value = core.ClampF(m.Value+delta, 0, BoostMax)
}

// Ratio returns the fill fraction in [0, 1].
func (m BoostMeter) Ratio() float64 {
	return core.ClampF(m.Value/BoostMax, 0, 1)
}

// BoostTimer is a repeating countdown that paces boost recharge.
// Resetting it restarts a full period; the frame that resets does not count
// towards the next period.
type BoostTimer struct {
	Period  float64
	Elapsed float64
	held    bool // Reset this frame; skip the next Advance
}

// NewBoostTimer creates a timer with the given period in seconds.
func NewBoostTimer(period float64) BoostTimer {
	return BoostTimer{Period: period}
}

// Reset restarts the period.
func (t *BoostTimer) Reset() {
	t.Elapsed = 0
	t.held = true
}

// Advance moves the timer forward by dt and returns how many periods
// completed.
func (t *BoostTimer) Advance(dt float64) int {
	if t.held {
		t.held = false
		return 0
	}
	if t.Period <= 0 {
		return 0
	}

	t.Elapsed += dt
	fired := 0
	for t.Elapsed >= t.Period-timerTolerance {
		t.Elapsed -= t.Period
		fired++
	}
	if t.Elapsed < 0 {
		t.Elapsed = 0
	}
	return fired
}
