// Package config provides YAML-based game configuration loading, validation
// and difficulty presets.
package config

// BreakoutConfig contains all tunables for the Breakout simulation.
// Lengths are world units (pixels at 1:1 window scale), times are seconds.
type BreakoutConfig struct {
	Arena       ArenaConfig       `yaml:"arena"`
	Ball        BallConfig        `yaml:"ball"`
	Paddle      PaddleConfig      `yaml:"paddle"`
	Boost       BoostConfig       `yaml:"boost"`
	Bricks      BricksConfig      `yaml:"bricks"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Gameplay    GameplayConfig    `yaml:"gameplay"`
	Progression ProgressionConfig `yaml:"progression"`
}

// ArenaConfig defines the initial window and the walls around it.
type ArenaConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// BallConfig defines the ball's spawn point, size and speed.
// The ball launches diagonally with |vx| = |vy| = Speed.
type BallConfig struct {
	Speed  float64 `yaml:"speed"`
	Size   float64 `yaml:"size"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// PaddleConfig defines paddle geometry and base speed.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	OffsetBottom float64 `yaml:"offset_bottom"` // Paddle center distance above the bottom edge
}

// BoostConfig defines the boost meter and its HUD bar.
type BoostConfig struct {
	DrainRate        float64 `yaml:"drain_rate"`        // Meter units per second while boosting
	RechargeAmount   float64 `yaml:"recharge_amount"`   // Meter units per completed interval
	RechargeInterval float64 `yaml:"recharge_interval"` // Seconds
	BarWidth         float64 `yaml:"bar_width"`
	BarHeight        float64 `yaml:"bar_height"`
	BarPadding       float64 `yaml:"bar_padding"`
	HUDInsetX        float64 `yaml:"hud_inset_x"` // Bar left edge distance from the window's left edge
	HUDInsetY        float64 `yaml:"hud_inset_y"` // Bar center distance below the window's top edge
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Rows       int      `yaml:"rows"`
	Size       float64  `yaml:"size"`
	Margin     float64  `yaml:"margin"`
	TopOffset  float64  `yaml:"top_offset"` // First row center distance below the top edge
	FillChance float64  `yaml:"fill_chance"`
	MaxHealth  int      `yaml:"max_health"`
	Pattern    string   `yaml:"pattern"`          // "random" or a built-in pattern name
	Layout     []string `yaml:"layout,omitempty"` // Optional fixed layout, wins over Pattern
}

// PhysicsConfig holds collision response tunables.
type PhysicsConfig struct {
	Epsilon float64 `yaml:"epsilon"`
}

// GameplayConfig holds scoring and life rules.
type GameplayConfig struct {
	Lives         int     `yaml:"lives"`
	HitPoints     int     `yaml:"hit_points"`
	DestroyPoints int     `yaml:"destroy_points"`
	ServeDelay    float64 `yaml:"serve_delay"`
}

// ProgressionConfig defines how ball speed grows with cleared rounds.
type ProgressionConfig struct {
	Enabled       bool    `yaml:"enabled"`
	SpeedStep     float64 `yaml:"speed_step"`     // Fraction of base speed added per cleared round
	MaxMultiplier float64 `yaml:"max_multiplier"` // Upper bound on the speed multiplier
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string into a preset. Empty input yields "".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return "", true
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}
