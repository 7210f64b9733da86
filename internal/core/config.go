package core

// RuntimeConfig is passed from the CLI to the terminal front end.
type RuntimeConfig struct {
	ScreenW int    // Screen width in characters
	ScreenH int    // Screen height in characters
	Seed    int64  // Deal seed; 0 lets the generator pick one
	LevelID string // Level being played, "" for a config-driven deal
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
