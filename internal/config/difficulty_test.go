package config

import (
	"math"
	"testing"
)

func TestProgressionMultiplier(t *testing.T) {
	tests := []struct {
		name  string
		cfg   ProgressionConfig
		round int
		want  float64
	}{
		{"first round", ProgressionConfig{Enabled: true, SpeedStep: 0.1, MaxMultiplier: 2}, 0, 1.0},
		{"third round", ProgressionConfig{Enabled: true, SpeedStep: 0.1, MaxMultiplier: 2}, 3, 1.3},
		{"capped", ProgressionConfig{Enabled: true, SpeedStep: 0.5, MaxMultiplier: 2}, 10, 2.0},
		{"disabled", ProgressionConfig{Enabled: false, SpeedStep: 0.5, MaxMultiplier: 2}, 4, 1.0},
		{"zero step", ProgressionConfig{Enabled: true, SpeedStep: 0, MaxMultiplier: 2}, 4, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProgression(tt.cfg)
			if got := p.Multiplier(tt.round); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Multiplier(%d) = %g, want %g", tt.round, got, tt.want)
			}
		})
	}
}

func TestProgressionSpeed(t *testing.T) {
	p := NewProgression(ProgressionConfig{Enabled: true, SpeedStep: 0.2, MaxMultiplier: 3})
	if got := p.Speed(250, 1); math.Abs(got-300) > 1e-9 {
		t.Errorf("Speed(250, 1) = %g, want 300", got)
	}

	p.SetEnabled(false)
	if got := p.Speed(250, 5); got != 250 {
		t.Errorf("disabled Speed = %g, want 250", got)
	}
}
