package config

import "math"

// Progression calculates the ball speed multiplier for a given round.
type Progression struct {
	cfg ProgressionConfig
}

// NewProgression creates a progression calculator.
func NewProgression(cfg ProgressionConfig) *Progression {
	return &Progression{cfg: cfg}
}

// SetEnabled enables or disables speed progression.
func (p *Progression) SetEnabled(enabled bool) {
	p.cfg.Enabled = enabled
}

// IsEnabled returns whether speed progression is active.
func (p *Progression) IsEnabled() bool {
	return p.cfg.Enabled && p.cfg.SpeedStep > 0
}

// Multiplier returns 1 + speed_step * round, capped at max_multiplier.
// Round 0 is the first field.
func (p *Progression) Multiplier(round int) float64 {
	if !p.IsEnabled() || round <= 0 {
		return 1.0
	}
	maxMul := math.Max(p.cfg.MaxMultiplier, 1.0)
	return clampF(1.0+p.cfg.SpeedStep*float64(round), 1.0, maxMul)
}

// Speed returns baseSpeed scaled by the multiplier for round.
func (p *Progression) Speed(baseSpeed float64, round int) float64 {
	return baseSpeed * p.Multiplier(round)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
