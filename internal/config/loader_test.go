package config

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg BreakoutConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	want := DefaultBreakoutConfig()
	if cfg.Arena != want.Arena || cfg.Ball != want.Ball || cfg.Paddle != want.Paddle ||
		cfg.Boost != want.Boost || cfg.Physics != want.Physics ||
		cfg.Gameplay != want.Gameplay || cfg.Progression != want.Progression {
		t.Errorf("embedded defaults differ from DefaultBreakoutConfig:\n got %+v\nwant %+v", cfg, want)
	}
	if cfg.Bricks.Rows != want.Bricks.Rows || cfg.Bricks.Size != want.Bricks.Size ||
		cfg.Bricks.FillChance != want.Bricks.FillChance || cfg.Bricks.MaxHealth != want.Bricks.MaxHealth ||
		cfg.Bricks.Pattern != want.Bricks.Pattern {
		t.Errorf("embedded brick defaults differ: got %+v, want %+v", cfg.Bricks, want.Bricks)
	}
}

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultBreakoutConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "breakout.yaml")
	data := "ball:\n  speed: 400\nbricks:\n  layout:\n    - \"#.#\"\n    - \"123\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}
	if cfg.Ball.Speed != 400 {
		t.Errorf("Ball.Speed = %g, want 400", cfg.Ball.Speed)
	}
	// Keys not named in the file keep their defaults.
	if cfg.Ball.Size != 30 {
		t.Errorf("Ball.Size = %g, want default 30", cfg.Ball.Size)
	}
	if cfg.Paddle.Width != 200 {
		t.Errorf("Paddle.Width = %g, want default 200", cfg.Paddle.Width)
	}
	if len(cfg.Bricks.Layout) != 2 {
		t.Errorf("Layout rows = %d, want 2", len(cfg.Bricks.Layout))
	}
}

func TestLoadBreakoutErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		missing bool
		invalid bool
	}{
		{name: "missing file", missing: true},
		{name: "malformed yaml", content: "ball: [1, 2"},
		{name: "invalid values", content: "ball:\n  speed: -1\n", invalid: true},
		{name: "unknown pattern", content: "bricks:\n  pattern: nope\n", invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			if !tt.missing {
				if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			_, err := LoadBreakout(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
		want   []string
	}{
		{
			name:   "zero width",
			mutate: func(c *BreakoutConfig) { c.Arena.Width = 0 },
			want:   []string{"arena.width"},
		},
		{
			name:   "fill chance out of range",
			mutate: func(c *BreakoutConfig) { c.Bricks.FillChance = 1.5 },
			want:   []string{"bricks.fill_chance"},
		},
		{
			name:   "paddle wider than arena",
			mutate: func(c *BreakoutConfig) { c.Paddle.Width = 2000 },
			want:   []string{"paddle.width"},
		},
		{
			name: "several problems reported together",
			mutate: func(c *BreakoutConfig) {
				c.Bricks.MaxHealth = 0
				c.Gameplay.Lives = 0
				c.Physics.Epsilon = 0
			},
			want: []string{"bricks.max_health", "gameplay.lives", "physics.epsilon"},
		},
		{
			name:   "bad layout rune",
			mutate: func(c *BreakoutConfig) { c.Bricks.Layout = []string{"#x"} },
			want:   []string{"bricks.layout[0][1]"},
		},
		{
			name:   "unknown brick pattern",
			mutate: func(c *BreakoutConfig) { c.Bricks.Pattern = "nope" },
			want:   []string{"bricks.pattern", "classic"},
		},
		{
			name:   "progression below one",
			mutate: func(c *BreakoutConfig) { c.Progression.MaxMultiplier = 0.5 },
			want:   []string{"progression.max_multiplier"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error does not wrap ErrInvalidConfig: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(err.Error(), w) {
					t.Errorf("error %q does not mention %q", err, w)
				}
			}
		})
	}
}

func TestBrickPatterns(t *testing.T) {
	names := BrickPatternNames()
	if !sort.StringsAreSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
	for _, name := range append(names, PatternRandom, "") {
		cfg := DefaultBreakoutConfig()
		cfg.Bricks.Pattern = name
		if err := cfg.Validate(); err != nil {
			t.Errorf("pattern %q rejected: %v", name, err)
		}
	}
	if _, ok := BrickPattern(PatternRandom); ok {
		t.Error("random should not have fixed rows")
	}
	if rows, ok := BrickPattern("classic"); !ok || len(rows) == 0 {
		t.Errorf("classic = %v, %v", rows, ok)
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		wantLives int
		wantSpeed float64
	}{
		{DifficultyEasy, 5, 200},
		{DifficultyNormal, 3, 250},
		{DifficultyHard, 2, 350},
		{"", 3, 250},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			ApplyBreakoutPreset(&cfg, tt.preset)
			if cfg.Gameplay.Lives != tt.wantLives {
				t.Errorf("Lives = %d, want %d", cfg.Gameplay.Lives, tt.wantLives)
			}
			if cfg.Ball.Speed != tt.wantSpeed {
				t.Errorf("Ball.Speed = %g, want %g", cfg.Ball.Speed, tt.wantSpeed)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config invalid: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in     string
		want   DifficultyPreset
		wantOK bool
	}{
		{"", "", true},
		{"easy", DifficultyEasy, true},
		{"normal", DifficultyNormal, true},
		{"hard", DifficultyHard, true},
		{"nightmare", "", false},
	}
	for _, tt := range tests {
		got, ok := ParsePreset(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParsePreset(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
