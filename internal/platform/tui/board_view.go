package tui

import (
	"strconv"

	"github.com/vovakirdan/watersort/internal/core"
	"github.com/vovakirdan/watersort/internal/watersort"
)

const liquidGlyph = '█'

// boardView draws a game snapshot into a screen buffer.
type boardView struct {
	letters bool // Draw color letters instead of solid blocks
	labels  bool // Draw 1-based tube numbers under each tube
}

// liquidColor converts a puzzle color to its screen color.
func liquidColor(c watersort.Color) core.Color {
	return core.LiquidColor(int(c))
}

// draw renders every tube of snap into its rect. The armed tube is lifted by
// one row; the tube under the cursor gets highlighted walls.
func (v boardView) draw(s *core.Screen, snap watersort.GameSnapshot, rects []core.Rect, cursor int) {
	for i, tube := range snap.Tubes {
		if i >= len(rects) {
			break
		}
		r := rects[i]

		wall := core.ColorDim
		switch {
		case i == snap.Selected:
			wall = core.ColorHighlight
		case i == cursor:
			wall = core.ColorWhite
		}

		// Bottom cap sits on the last row, or one higher when lifted.
		bottom := r.Bottom() - 1
		if i == snap.Selected {
			bottom--
		}

		for slot := range tube.Capacity {
			y := bottom - 1 - slot
			s.SetColored(r.X, y, '│', wall)
			s.SetColored(r.Right()-1, y, '│', wall)
			if slot < len(tube.Colors) {
				v.drawUnit(s, r.X+1, y, tube.Colors[slot])
			}
		}
		s.DrawTextColored(r.X, bottom, "╰───╯", wall)

		if v.labels {
			label := strconv.Itoa(i + 1)
			lx := r.X + (r.W-len(label))/2
			labelColor := core.ColorDim
			if i == cursor {
				labelColor = core.ColorWhite
			}
			s.DrawTextColored(lx, r.Bottom(), label, labelColor)
		}
	}
}

func (v boardView) drawUnit(s *core.Screen, x, y int, c watersort.Color) {
	color := liquidColor(c)
	if v.letters {
		ch := c.Char()
		s.SetColored(x, y, ch, color)
		s.SetColored(x+1, y, ch, color)
		s.SetColored(x+2, y, ch, color)
		return
	}
	for dx := range core.TubeWidth - 2 {
		s.SetColored(x+dx, y, liquidGlyph, color)
	}
}
