package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/vovakirdan/watersort/internal/watersort"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("Default() should validate: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, defaultYAML, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	def := Default()
	if cfg.Board.Tubes != def.Board.Tubes || cfg.Board.Filled != def.Board.Filled ||
		cfg.Board.Capacity != def.Board.Capacity || cfg.Display.Theme != def.Display.Theme {
		t.Errorf("embedded default %+v drifted from Default() %+v", cfg, def)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	yaml := `
board:
  colors: [red, blue, green]
  capacity: 3
  tubes: 5
  filled: 3
  seed: 42
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Board.Capacity != 3 || cfg.Board.Tubes != 5 || cfg.Board.Seed != 42 {
		t.Errorf("board = %+v", cfg.Board)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Display.Theme != "default" {
		t.Errorf("Theme = %q, expected default to survive", cfg.Display.Theme)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestGenConfigResolvesColors(t *testing.T) {
	board := BoardConfig{Colors: []string{"red", "B", "green"}, Capacity: 4, Tubes: 5, Seed: 9}
	gen, err := board.GenConfig()
	if err != nil {
		t.Fatalf("GenConfig failed: %v", err)
	}

	want := []watersort.Color{watersort.ColorRed, watersort.ColorBlue, watersort.ColorGreen}
	if !slices.Equal(gen.Colors, want) {
		t.Errorf("Colors = %v, want %v", gen.Colors, want)
	}
	if gen.FilledTubeCount != 3 {
		t.Errorf("FilledTubeCount = %d, expected it to default to the color count", gen.FilledTubeCount)
	}
	if gen.Seed == nil || *gen.Seed != 9 {
		t.Errorf("Seed = %v, expected 9", gen.Seed)
	}
}

func TestGenConfigPaletteAndSeed(t *testing.T) {
	gen, err := BoardConfig{Capacity: 4, Tubes: 6, Filled: 4}.GenConfig()
	if err != nil {
		t.Fatalf("GenConfig failed: %v", err)
	}
	if !slices.Equal(gen.Colors, watersort.Palette(4)) {
		t.Errorf("Colors = %v, expected the first four palette colors", gen.Colors)
	}
	if gen.Seed != nil {
		t.Error("zero seed should leave the generator to pick one")
	}
}

func TestGenConfigUnknownColor(t *testing.T) {
	_, err := BoardConfig{Colors: []string{"red", "mauve"}, Capacity: 4, Tubes: 4}.GenConfig()

	var cerr *watersort.ConfigError
	if !errors.As(err, &cerr) || cerr.Code != watersort.CodeUnknownColorRef {
		t.Fatalf("error = %v, expected %s", err, watersort.CodeUnknownColorRef)
	}
	if !errors.Is(err, watersort.ErrConfiguration) {
		t.Error("unknown color should match ErrConfiguration")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero capacity", func(c *Config) { c.Board.Capacity = 0 }},
		{"too many filled", func(c *Config) { c.Board.Filled = 9 }},
		{"bad theme", func(c *Config) { c.Display.Theme = "sepia" }},
		{"bad difficulty", func(c *Config) { c.Board.Difficulty = "insane" }},
		{"duplicate colors", func(c *Config) {
			c.Board.Colors = []string{"red", "red"}
			c.Board.Filled = 2
		}},
		{"color count differs from filled", func(c *Config) {
			c.Board.Colors = []string{"red", "blue"}
			c.Board.Filled = 3
		}},
		{"empty storage path", func(c *Config) { c.Storage.Path = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := Validate(cfg); err == nil {
				t.Errorf("Validate accepted %+v", cfg)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("WATERSORT_BOARD_TUBES", "9")
	t.Setenv("WATERSORT_BOARD_COLORS", "red,blue,green")
	t.Setenv("WATERSORT_BOARD_FILLED", "3")
	t.Setenv("WATERSORT_DISPLAY_THEME", "neon")

	cfg := Default()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}

	if cfg.Board.Tubes != 9 || cfg.Board.Filled != 3 {
		t.Errorf("board = %+v", cfg.Board)
	}
	if !slices.Equal(cfg.Board.Colors, []string{"red", "blue", "green"}) {
		t.Errorf("Colors = %v", cfg.Board.Colors)
	}
	if cfg.Display.Theme != "neon" {
		t.Errorf("Theme = %q", cfg.Display.Theme)
	}
	// Unset variables leave values alone.
	if cfg.Board.Capacity != 4 {
		t.Errorf("Capacity = %d, expected default 4", cfg.Board.Capacity)
	}
}

func TestApplyEnvBadValue(t *testing.T) {
	t.Setenv("WATERSORT_BOARD_CAPACITY", "four")
	cfg := Default()
	if err := ApplyEnv(&cfg); err == nil {
		t.Error("expected parse error for non-numeric capacity")
	}
}

func TestApplyPreset(t *testing.T) {
	for _, d := range Difficulties() {
		t.Run(string(d), func(t *testing.T) {
			cfg := Default()
			cfg.Board.Colors = []string{"red"}
			if err := ApplyPreset(&cfg.Board, d); err != nil {
				t.Fatalf("ApplyPreset failed: %v", err)
			}
			if cfg.Board.Colors != nil {
				t.Error("preset should clear explicit colors")
			}
			if err := Validate(cfg); err != nil {
				t.Errorf("preset %s does not validate: %v", d, err)
			}
		})
	}

	var board BoardConfig
	if err := ApplyPreset(&board, "impossible"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestParseDifficulty(t *testing.T) {
	if d, err := ParseDifficulty("hard"); err != nil || d != DifficultyHard {
		t.Errorf("ParseDifficulty(hard) = %q, %v", d, err)
	}
	if _, err := ParseDifficulty("medium"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}
