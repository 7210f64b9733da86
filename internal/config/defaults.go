package config

import (
	_ "embed"
)

//go:embed defaults/watersort.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration used when no file and no
// embedded default can be read.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Difficulty: DifficultyNormal,
			Capacity:   4,
			Tubes:      7,
			Filled:     5,
		},
		Display: DisplayConfig{
			Theme:  "default",
			Labels: true,
			Mouse:  true,
		},
		Storage: StorageConfig{
			Path: "~/.watersort/watersort.db",
		},
	}
}
