package watersort

// IsSolved reports whether every tube is either empty or full of one color.
func IsSolved(b *Board) bool {
	for _, t := range b.Tubes {
		if !tubeSettled(t) {
			return false
		}
	}
	return true
}

func tubeSettled(t *Tube) bool {
	return t.IsEmpty() || (t.IsUniform() && t.IsFull())
}

// SettledCount returns how many tubes already satisfy the win condition.
func SettledCount(b *Board) int {
	n := 0
	for _, t := range b.Tubes {
		if !t.IsEmpty() && tubeSettled(t) {
			n++
		}
	}
	return n
}
