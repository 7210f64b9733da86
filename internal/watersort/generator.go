package watersort

import (
	"math/rand"
	"time"
)

// GenConfig configures the initial deal.
type GenConfig struct {
	Colors          []Color // Distinct liquid colors, one full tube's worth each
	Capacity        int     // Units per tube and per color
	TubeCount       int     // Total tubes on the board
	FilledTubeCount int     // Tubes that start full; must equal len(Colors)
	Seed            *int64  // Fixed seed for a reproducible deal; nil picks one
}

// WithSeed returns a copy of cfg using the given seed.
func (cfg GenConfig) WithSeed(seed int64) GenConfig {
	cfg.Seed = &seed
	return cfg
}

// Validate checks the generator preconditions.
func (cfg GenConfig) Validate() error {
	if cfg.Capacity <= 0 {
		return configErrorf(CodeBadCapacity, "capacity must be positive, got %d", cfg.Capacity)
	}
	if len(cfg.Colors) == 0 {
		return configErrorf(CodeNoColors, "at least one color is required")
	}
	seen := make(map[Color]bool, len(cfg.Colors))
	for _, c := range cfg.Colors {
		if !c.Valid() {
			return configErrorf(CodeInvalidColor, "color %d is not a liquid color", c)
		}
		if seen[c] {
			return configErrorf(CodeDuplicateColor, "color %s listed twice", c)
		}
		seen[c] = true
	}
	if cfg.TubeCount <= 0 {
		return configErrorf(CodeBadTubeCount, "tube count must be positive, got %d", cfg.TubeCount)
	}
	if cfg.FilledTubeCount > cfg.TubeCount {
		return configErrorf(CodeTooManyFilled, "%d filled tubes exceed %d total tubes",
			cfg.FilledTubeCount, cfg.TubeCount)
	}
	if len(cfg.Colors) != cfg.FilledTubeCount {
		return configErrorf(CodeFillMismatch, "%d colors x %d units cannot fill exactly %d tubes",
			len(cfg.Colors), cfg.Capacity, cfg.FilledTubeCount)
	}
	return nil
}

// Generate deals a new board: every color repeated Capacity times, shuffled,
// poured bottom-to-top into the first FilledTubeCount tubes. The remaining
// tubes start empty.
func Generate(cfg GenConfig) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	units := make([]Color, 0, len(cfg.Colors)*cfg.Capacity)
	for _, c := range cfg.Colors {
		for range cfg.Capacity {
			units = append(units, c)
		}
	}
	Shuffle(units, rng)

	board := &Board{Tubes: make([]*Tube, cfg.TubeCount), Seed: seed}
	for i := range cfg.TubeCount {
		var chunk []Color
		if i < cfg.FilledTubeCount {
			chunk = units[i*cfg.Capacity : (i+1)*cfg.Capacity]
		}
		t, err := NewTubeWith(cfg.Capacity, chunk...)
		if err != nil {
			return nil, err
		}
		board.Tubes[i] = t
	}

	return board, nil
}

// Shuffle applies a Fisher-Yates permutation: each index i is swapped with
// a uniformly chosen index in [i, len).
func Shuffle(units []Color, rng *rand.Rand) {
	for i := range units {
		j := i + rng.Intn(len(units)-i)
		units[i], units[j] = units[j], units[i]
	}
}
