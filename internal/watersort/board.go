package watersort

import (
	"fmt"
	"strings"
)

// Board is the fixed, ordered set of tubes for one puzzle.
type Board struct {
	Tubes []*Tube
	Seed  int64 // Seed the board was dealt with; 0 for hand-built boards
}

// NewBoard wraps existing tubes.
func NewBoard(tubes ...*Tube) *Board {
	return &Board{Tubes: tubes}
}

// Len returns the number of tubes.
func (b *Board) Len() int {
	return len(b.Tubes)
}

// Tube returns the tube at index i.
func (b *Board) Tube(i int) (*Tube, error) {
	if i < 0 || i >= len(b.Tubes) {
		return nil, fmt.Errorf("watersort: tube %d out of range [0,%d): %w", i, len(b.Tubes), ErrInvalidOperation)
	}
	return b.Tubes[i], nil
}

// TubeSnapshot is the rendering view of one tube.
type TubeSnapshot struct {
	Index    int
	Capacity int
	Colors   []Color // Bottom to top, occupied slots only
}

// Snapshot returns a copy of every tube's contents for rendering.
func (b *Board) Snapshot() []TubeSnapshot {
	out := make([]TubeSnapshot, len(b.Tubes))
	for i, t := range b.Tubes {
		out[i] = TubeSnapshot{Index: i, Capacity: t.Capacity(), Colors: t.Colors()}
	}
	return out
}

// Census counts units per color across the whole board.
// Pouring never changes it.
func (b *Board) Census() map[Color]int {
	counts := make(map[Color]int)
	for _, t := range b.Tubes {
		for _, c := range t.Colors() {
			counts[c]++
		}
	}
	return counts
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	tubes := make([]*Tube, len(b.Tubes))
	for i, t := range b.Tubes {
		tubes[i] = t.Clone()
	}
	return &Board{Tubes: tubes, Seed: b.Seed}
}

// String renders one tube per line.
func (b *Board) String() string {
	var sb strings.Builder
	for i, t := range b.Tubes {
		fmt.Fprintf(&sb, "%2d %s\n", i+1, t)
	}
	return sb.String()
}
