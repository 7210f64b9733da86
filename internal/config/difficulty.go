package config

import "fmt"

// Difficulty is a named board size preset.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// Difficulties lists the presets from smallest to largest board.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyExpert}
}

// preset is the board shape behind a difficulty.
type preset struct {
	colors   int
	capacity int
	spare    int // Empty tubes on top of the filled ones
}

var presets = map[Difficulty]preset{
	DifficultyEasy:   {colors: 3, capacity: 4, spare: 2},
	DifficultyNormal: {colors: 5, capacity: 4, spare: 2},
	DifficultyHard:   {colors: 7, capacity: 4, spare: 2},
	DifficultyExpert: {colors: 9, capacity: 5, spare: 2},
}

// ParseDifficulty converts a flag value to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if _, ok := presets[d]; !ok {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or expert)", s)
	}
	return d, nil
}

// ApplyPreset reshapes the board for a difficulty. Explicit colors are
// dropped so the palette matches the new size; the seed is kept.
func ApplyPreset(cfg *BoardConfig, d Difficulty) error {
	p, ok := presets[d]
	if !ok {
		return fmt.Errorf("unknown difficulty %q", d)
	}
	cfg.Difficulty = d
	cfg.Colors = nil
	cfg.Capacity = p.capacity
	cfg.Filled = p.colors
	cfg.Tubes = p.colors + p.spare
	return nil
}
