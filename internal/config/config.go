// Package config provides YAML-based board configuration loading,
// environment overrides, validation and difficulty presets for watersort.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/vovakirdan/watersort/internal/watersort"
)

// validate is the shared validator instance.
var validate = validator.New()

// Config is the full watersort configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board" envPrefix:"BOARD_"`
	Display DisplayConfig `yaml:"display" envPrefix:"DISPLAY_"`
	Storage StorageConfig `yaml:"storage" envPrefix:"STORAGE_"`
}

// BoardConfig describes the deal. An empty Colors list takes the first
// Filled colors of the palette.
type BoardConfig struct {
	Difficulty Difficulty `yaml:"difficulty" env:"DIFFICULTY" validate:"omitempty,oneof=easy normal hard expert"`
	Colors     []string   `yaml:"colors" env:"COLORS" envSeparator:","`
	Capacity   int        `yaml:"capacity" env:"CAPACITY" validate:"min=1,max=12"`
	Tubes      int        `yaml:"tubes" env:"TUBES" validate:"min=1,max=24"`
	Filled     int        `yaml:"filled" env:"FILLED" validate:"min=0,ltefield=Tubes"`
	Seed       int64      `yaml:"seed" env:"SEED"` // 0 picks a fresh seed per deal
}

// DisplayConfig controls the terminal front end.
type DisplayConfig struct {
	Theme  string `yaml:"theme" env:"THEME" validate:"oneof=default neon pastel mono"`
	Labels bool   `yaml:"labels" env:"LABELS"` // Show tube index labels
	Mouse  bool   `yaml:"mouse" env:"MOUSE"`   // Accept mouse clicks on tubes
}

// StorageConfig locates the solve history database.
type StorageConfig struct {
	Path string `yaml:"path" env:"PATH" validate:"required"`
}

// GenConfig resolves the board section into generator input.
func (c BoardConfig) GenConfig() (watersort.GenConfig, error) {
	var colors []watersort.Color
	if len(c.Colors) == 0 {
		n := c.Filled
		if n == 0 {
			n = c.Tubes
		}
		colors = watersort.Palette(n)
	} else {
		colors = make([]watersort.Color, 0, len(c.Colors))
		for _, name := range c.Colors {
			color, ok := watersort.ParseColor(name)
			if !ok {
				return watersort.GenConfig{}, &watersort.ConfigError{
					Code:    watersort.CodeUnknownColorRef,
					Message: fmt.Sprintf("unknown color %q", name),
				}
			}
			colors = append(colors, color)
		}
	}

	filled := c.Filled
	if filled == 0 {
		filled = len(colors)
	}

	gen := watersort.GenConfig{
		Colors:          colors,
		Capacity:        c.Capacity,
		TubeCount:       c.Tubes,
		FilledTubeCount: filled,
	}
	if c.Seed != 0 {
		gen = gen.WithSeed(c.Seed)
	}
	return gen, nil
}

// Validate checks struct tags, then the cross-field rules the generator
// enforces, so a bad file is rejected at load time rather than at deal time.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	gen, err := cfg.Board.GenConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := gen.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
