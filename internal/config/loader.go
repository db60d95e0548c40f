package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.boostout/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. The result is validated before it is returned.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultBreakoutConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "breakout.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultBreakoutConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".boostout", "configs", filename)
}

// Validate reports every problem in the config at once.
// The returned error wraps ErrInvalidConfig.
func (c BreakoutConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %g", name, v))
		}
	}

	positive("arena.width", c.Arena.Width)
	positive("arena.height", c.Arena.Height)
	positive("arena.wall_thickness", c.Arena.WallThickness)

	positive("ball.speed", c.Ball.Speed)
	positive("ball.size", c.Ball.Size)

	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("paddle.speed", c.Paddle.Speed)
	nonNegative("paddle.offset_bottom", c.Paddle.OffsetBottom)
	if c.Paddle.Width > c.Arena.Width {
		errs = append(errs, fmt.Errorf("paddle.width %g exceeds arena.width %g", c.Paddle.Width, c.Arena.Width))
	}

	nonNegative("boost.drain_rate", c.Boost.DrainRate)
	nonNegative("boost.recharge_amount", c.Boost.RechargeAmount)
	positive("boost.recharge_interval", c.Boost.RechargeInterval)
	positive("boost.bar_width", c.Boost.BarWidth)
	positive("boost.bar_height", c.Boost.BarHeight)
	nonNegative("boost.bar_padding", c.Boost.BarPadding)

	if c.Bricks.Rows < 0 {
		errs = append(errs, fmt.Errorf("bricks.rows must not be negative, got %d", c.Bricks.Rows))
	}
	positive("bricks.size", c.Bricks.Size)
	nonNegative("bricks.margin", c.Bricks.Margin)
	if c.Bricks.FillChance < 0 || c.Bricks.FillChance > 1 {
		errs = append(errs, fmt.Errorf("bricks.fill_chance must be within [0, 1], got %g", c.Bricks.FillChance))
	}
	if c.Bricks.MaxHealth < 1 {
		errs = append(errs, fmt.Errorf("bricks.max_health must be at least 1, got %d", c.Bricks.MaxHealth))
	}
	if !validPattern(c.Bricks.Pattern) {
		errs = append(errs, fmt.Errorf("bricks.pattern %q is not %s or one of %s",
			c.Bricks.Pattern, PatternRandom, strings.Join(BrickPatternNames(), ", ")))
	}
	for i, row := range c.Bricks.Layout {
		for j, ch := range row {
			if ch != '.' && ch != '#' && (ch < '1' || ch > '9') {
				errs = append(errs, fmt.Errorf("bricks.layout[%d][%d]: unexpected %q", i, j, ch))
			}
		}
	}

	positive("physics.epsilon", c.Physics.Epsilon)

	if c.Gameplay.Lives < 1 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be at least 1, got %d", c.Gameplay.Lives))
	}
	nonNegative("gameplay.serve_delay", c.Gameplay.ServeDelay)

	if c.Progression.Enabled {
		nonNegative("progression.speed_step", c.Progression.SpeedStep)
		if c.Progression.MaxMultiplier < 1 {
			errs = append(errs, fmt.Errorf("progression.max_multiplier must be at least 1, got %g", c.Progression.MaxMultiplier))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Normal and the empty preset leave the config untouched.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Ball.Speed = 200
		cfg.Bricks.FillChance = 0.4
		cfg.Boost.RechargeAmount = 10
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Ball.Speed = 350
		cfg.Bricks.FillChance = 0.8
		cfg.Boost.RechargeAmount = 3
	}
}
