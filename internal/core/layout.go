package core

// Tube drawing metrics, in cells.
const (
	TubeWidth = 5 // "│ ▓ │" style column
	TubeGap   = 2
)

// TubeHeight returns the drawn height of a tube column: one lift row for the
// armed tube, one row per unit of capacity and the bottom cap.
func TubeHeight(capacity int) int {
	return capacity + 2
}

// LayoutTubes places count tube columns inside area, wrapping into extra
// rows when they do not fit side by side. Each row of tubes is centered and
// leaves one line below for the index label.
func LayoutTubes(count, capacity int, area Rect) []Rect {
	if count <= 0 {
		return nil
	}

	h := TubeHeight(capacity)
	perRow := max(1, (area.W+TubeGap)/(TubeWidth+TubeGap))
	perRow = min(perRow, count)
	rows := (count + perRow - 1) / perRow

	blockH := h + 2 // label line + spacer
	top := area.Y + max(0, (area.H-rows*blockH)/2)

	rects := make([]Rect, 0, count)
	for row := range rows {
		n := min(perRow, count-row*perRow)
		rowW := n*TubeWidth + (n-1)*TubeGap
		left := area.X + max(0, (area.W-rowW)/2)
		y := top + row*blockH
		for i := range n {
			rects = append(rects, NewRect(left+i*(TubeWidth+TubeGap), y, TubeWidth, h))
		}
	}
	return rects
}

// HitTest returns the index of the tube column containing (x, y), counting
// the label line below each tube, or -1.
func HitTest(rects []Rect, x, y int) int {
	for i, r := range rects {
		r.H++
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}
