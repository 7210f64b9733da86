package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlLevel is the on-disk shape of a level file.
type yamlLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Colors   []string          `yaml:"colors,omitempty"`
	Capacity int               `yaml:"capacity"`
	Tubes    int               `yaml:"tubes,omitempty"`
	Filled   int               `yaml:"filled,omitempty"`
	Seed     int64             `yaml:"seed,omitempty"`
	Layout   []string          `yaml:"layout,omitempty"` // Bottom-to-top color letters per tube
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// supportedExtensions lists the level file extensions the loader reads.
var supportedExtensions = []string{".yaml", ".yml"}

func parseYAML(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}

	lvl := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Colors:   yl.Colors,
		Capacity: yl.Capacity,
		Tubes:    yl.Tubes,
		Filled:   yl.Filled,
		Seed:     yl.Seed,
		Layout:   yl.Layout,
		Metadata: yl.Metadata,
	}
	if lvl.Name == "" {
		lvl.Name = lvl.ID
	}
	if lvl.Handmade() && lvl.Tubes == 0 {
		lvl.Tubes = len(lvl.Layout)
	}
	return lvl, nil
}
