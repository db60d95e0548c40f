package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
// Mirrors defaults/breakout.yaml and is used when the embedded file fails to parse.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Arena: ArenaConfig{
			Width:         1280,
			Height:        720,
			WallThickness: 20,
		},
		Ball: BallConfig{
			Speed:  250,
			Size:   30,
			StartX: -150,
			StartY: 0,
		},
		Paddle: PaddleConfig{
			Width:        200,
			Height:       50,
			Speed:        500,
			OffsetBottom: 60,
		},
		Boost: BoostConfig{
			DrainRate:        50,
			RechargeAmount:   5,
			RechargeInterval: 1.0,
			BarWidth:         200,
			BarHeight:        15,
			BarPadding:       5,
			HUDInsetX:        40,
			HUDInsetY:        60,
		},
		Bricks: BricksConfig{
			Rows:       4,
			Size:       50,
			Margin:     10,
			TopOffset:  120,
			FillChance: 0.6,
			MaxHealth:  3,
			Pattern:    "random",
		},
		Physics: PhysicsConfig{
			Epsilon: 0.1,
		},
		Gameplay: GameplayConfig{
			Lives:         3,
			HitPoints:     10,
			DestroyPoints: 50,
			ServeDelay:    1.0,
		},
		Progression: ProgressionConfig{
			Enabled:       true,
			SpeedStep:     0.1,
			MaxMultiplier: 2.0,
		},
	}
}

// GetDefaultYAML returns the embedded default configuration file.
func GetDefaultYAML() []byte {
	return defaultBreakoutYAML
}
