package watersort

import (
	"fmt"
	"strings"
)

// Tube is a capacity-bounded stack of liquid units.
// Slots are ordered bottom (index 0) to top. Occupied slots always form a
// contiguous run starting at index 0; every mutation keeps it that way.
type Tube struct {
	slots []Color
}

// NewTube creates an empty tube. Capacity must be positive.
func NewTube(capacity int) (*Tube, error) {
	if capacity <= 0 {
		return nil, configErrorf(CodeBadCapacity, "tube capacity must be positive, got %d", capacity)
	}
	return &Tube{slots: make([]Color, capacity)}, nil
}

// NewTubeWith creates a tube pre-filled bottom-to-top with colors.
func NewTubeWith(capacity int, colors ...Color) (*Tube, error) {
	t, err := NewTube(capacity)
	if err != nil {
		return nil, err
	}
	if len(colors) > capacity {
		return nil, fmt.Errorf("watersort: %d units do not fit in capacity %d: %w",
			len(colors), capacity, ErrInvalidOperation)
	}
	for i, c := range colors {
		if !c.Valid() {
			return nil, fmt.Errorf("watersort: slot %d has invalid color %d: %w", i, c, ErrInvalidOperation)
		}
		t.slots[i] = c
	}
	return t, nil
}

// Capacity returns the maximum number of units the tube holds.
func (t *Tube) Capacity() int {
	return len(t.slots)
}

// Len returns the number of occupied slots (the fill height).
func (t *Tube) Len() int {
	n := 0
	for n < len(t.slots) && t.slots[n] != ColorNone {
		n++
	}
	return n
}

// EmptyCount returns the number of unoccupied slots.
func (t *Tube) EmptyCount() int {
	return len(t.slots) - t.Len()
}

// IsFull reports whether no slot is free.
func (t *Tube) IsFull() bool {
	return t.EmptyCount() == 0
}

// IsEmpty reports whether no slot is occupied.
func (t *Tube) IsEmpty() bool {
	return t.Len() == 0
}

// IsUniform reports whether all occupied slots share one color.
// An empty tube is uniform.
func (t *Tube) IsUniform() bool {
	n := t.Len()
	for i := 1; i < n; i++ {
		if t.slots[i] != t.slots[0] {
			return false
		}
	}
	return true
}

// Top returns the color of the topmost occupied slot, or ColorNone.
func (t *Tube) Top() Color {
	n := t.Len()
	if n == 0 {
		return ColorNone
	}
	return t.slots[n-1]
}

// TopRun returns the color of the top unit and how many consecutive units
// below it (inclusive) share that color. Returns (ColorNone, 0) when empty.
func (t *Tube) TopRun() (Color, int) {
	n := t.Len()
	if n == 0 {
		return ColorNone, 0
	}
	top := t.slots[n-1]
	count := 0
	for i := n - 1; i >= 0 && t.slots[i] == top; i-- {
		count++
	}
	return top, count
}

// RemoveTop clears the top n occupied slots.
func (t *Tube) RemoveTop(n int) error {
	filled := t.Len()
	if n < 0 || n > filled {
		return fmt.Errorf("watersort: remove %d from tube holding %d: %w", n, filled, ErrInvalidOperation)
	}
	for i := filled - n; i < filled; i++ {
		t.slots[i] = ColorNone
	}
	return nil
}

// AddUnits fills the next n empty slots above the fill height with color.
func (t *Tube) AddUnits(n int, color Color) error {
	if !color.Valid() {
		return fmt.Errorf("watersort: add invalid color %d: %w", color, ErrInvalidOperation)
	}
	filled := t.Len()
	free := len(t.slots) - filled
	if n < 0 || n > free {
		return fmt.Errorf("watersort: add %d to tube with %d free: %w", n, free, ErrInvalidOperation)
	}
	for i := filled; i < filled+n; i++ {
		t.slots[i] = color
	}
	return nil
}

// Colors returns a bottom-to-top copy of the occupied slots.
func (t *Tube) Colors() []Color {
	n := t.Len()
	out := make([]Color, n)
	copy(out, t.slots[:n])
	return out
}

// Slot returns the color at index i (ColorNone when empty or out of range).
func (t *Tube) Slot(i int) Color {
	if i < 0 || i >= len(t.slots) {
		return ColorNone
	}
	return t.slots[i]
}

// Clone returns an independent copy.
func (t *Tube) Clone() *Tube {
	slots := make([]Color, len(t.slots))
	copy(slots, t.slots)
	return &Tube{slots: slots}
}

// String renders the tube bottom-to-top, e.g. "[R R B _]".
func (t *Tube) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range t.slots {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(c.Char())
	}
	sb.WriteByte(']')
	return sb.String()
}
