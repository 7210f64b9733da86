// Package levels loads watersort level packs. A level is either a generator
// recipe (colors, capacity, tube counts and an optional fixed seed) or a
// hand-authored layout.
package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/watersort/internal/config"
	"github.com/vovakirdan/watersort/internal/watersort"
)

// ErrNotFound is returned by LoadByID for an unknown level.
var ErrNotFound = errors.New("level not found")

// Level is one playable puzzle definition.
type Level struct {
	ID       string
	Name     string
	Colors   []string
	Capacity int
	Tubes    int
	Filled   int
	Seed     int64
	Layout   []string
	Metadata map[string]string
	FilePath string
}

// CustomID identifies deals built from the board config rather than a pack.
const CustomID = "custom"

// Custom wraps a board config as a playable level.
func Custom(b config.BoardConfig) Level {
	name := "Custom"
	if b.Difficulty != "" {
		name = fmt.Sprintf("Custom (%s)", b.Difficulty)
	}
	return Level{
		ID:       CustomID,
		Name:     name,
		Colors:   b.Colors,
		Capacity: b.Capacity,
		Tubes:    b.Tubes,
		Filled:   b.Filled,
		Seed:     b.Seed,
	}
}

// Handmade reports whether the level ships a fixed layout instead of a deal.
func (l Level) Handmade() bool {
	return len(l.Layout) > 0
}

// Board returns the board config equivalent of a generated level.
func (l Level) Board() config.BoardConfig {
	return config.BoardConfig{
		Colors:   l.Colors,
		Capacity: l.Capacity,
		Tubes:    l.Tubes,
		Filled:   l.Filled,
		Seed:     l.Seed,
	}
}

// GenConfig resolves a generated level into generator input.
func (l Level) GenConfig() (watersort.GenConfig, error) {
	gen, err := l.Board().GenConfig()
	if err != nil {
		return gen, err
	}
	return gen, gen.Validate()
}

// BuildBoard parses a handmade layout. Each layout row lists one tube
// bottom-to-top as color letters or names separated by spaces; "_" and
// "." are empty slots and may only trail. Every color must appear exactly
// Capacity times.
func (l Level) BuildBoard() (*watersort.Board, error) {
	if !l.Handmade() {
		return nil, fmt.Errorf("level %s has no layout", l.ID)
	}
	if l.Capacity <= 0 {
		return nil, &watersort.ConfigError{
			Code:    watersort.CodeBadCapacity,
			Message: fmt.Sprintf("level %s: capacity must be positive", l.ID),
		}
	}

	tubes := make([]*watersort.Tube, 0, len(l.Layout))
	for i, row := range l.Layout {
		colors, err := parseLayoutRow(row)
		if err != nil {
			return nil, fmt.Errorf("level %s tube %d: %w", l.ID, i, err)
		}
		tube, err := watersort.NewTubeWith(l.Capacity, colors...)
		if err != nil {
			return nil, fmt.Errorf("level %s tube %d: %w", l.ID, i, err)
		}
		tubes = append(tubes, tube)
	}

	board := watersort.NewBoard(tubes...)
	for color, n := range board.Census() {
		if n != l.Capacity {
			return nil, &watersort.ConfigError{
				Code:    watersort.CodeFillMismatch,
				Message: fmt.Sprintf("level %s: %s appears %d times, want %d", l.ID, color, n, l.Capacity),
			}
		}
	}
	return board, nil
}

// NewGame starts a session on this level.
func (l Level) NewGame(notifier watersort.Notifier) (*watersort.Game, error) {
	if l.Handmade() {
		board, err := l.BuildBoard()
		if err != nil {
			return nil, err
		}
		return watersort.NewGameFromBoard(board, notifier), nil
	}
	gen, err := l.GenConfig()
	if err != nil {
		return nil, err
	}
	return watersort.NewGame(gen, notifier)
}

// Validate checks that the level can actually be played.
func (l Level) Validate() error {
	if l.Handmade() {
		_, err := l.BuildBoard()
		return err
	}
	_, err := l.GenConfig()
	return err
}

func parseLayoutRow(row string) ([]watersort.Color, error) {
	fields := strings.Fields(row)
	if len(fields) == 1 && len(fields[0]) > 1 {
		if _, ok := watersort.ParseColor(fields[0]); !ok {
			// Compact form: "RRBB" or "RB__".
			fields = strings.Split(fields[0], "")
		}
	}

	var colors []watersort.Color
	emptySeen := false
	for _, f := range fields {
		if f == "_" || f == "." {
			emptySeen = true
			continue
		}
		if emptySeen {
			return nil, fmt.Errorf("color %q above an empty slot", f)
		}
		c, ok := watersort.ParseColor(f)
		if !ok {
			return nil, &watersort.ConfigError{
				Code:    watersort.CodeUnknownColorRef,
				Message: fmt.Sprintf("unknown color %q", f),
			}
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// Loader handles loading levels from a directory tree.
type Loader struct {
	fsys fs.FS
	Root string
}

// NewLoader creates a loader reading level files under root.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), Root: root}
}

// NewFSLoader creates a loader over an arbitrary file system.
func NewFSLoader(fsys fs.FS, name string) *Loader {
	return &Loader{fsys: fsys, Root: name}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Levels are sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads and validates one level file, relative to the loader root.
func (l *Loader) LoadFile(name string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", name, err)
	}

	if !isSupportedExtension(path.Ext(name)) {
		return Level{}, fmt.Errorf("unsupported extension: %s", path.Ext(name))
	}
	lvl, err := parseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", name, err)
	}
	if err := lvl.Validate(); err != nil {
		return Level{}, fmt.Errorf("validating file %s: %w", name, err)
	}

	lvl.FilePath = path.Join(l.Root, name)
	return lvl, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range supportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}
