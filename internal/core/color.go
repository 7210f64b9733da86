package core

// Color is the foreground color of a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Screen colors. The liquid block mirrors the puzzle palette one-to-one so
// a liquid color converts with LiquidColor.
const (
	ColorDefault Color = iota
	ColorRed
	ColorBlue
	ColorGreen
	ColorYellow
	ColorPurple
	ColorOrange
	ColorCyan
	ColorPink
	ColorLime
	ColorBrown
	ColorTeal
	ColorGray
	ColorWhite
	ColorDim
	ColorHighlight
)

// LiquidColor converts a 1-based liquid palette index into a screen color.
// Zero and out-of-range values map to ColorDefault.
func LiquidColor(index int) Color {
	if index <= 0 || index > int(ColorGray) {
		return ColorDefault
	}
	return Color(index)
}
