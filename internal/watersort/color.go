package watersort

import "strings"

// Color identifies a liquid. Only equality is meaningful.
// ColorNone marks an empty slot and never appears inside a palette.
type Color uint8

const (
	ColorNone Color = iota
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
	colorSentinel
)

var colorNames = [...]string{
	ColorNone:   "none",
	ColorRed:    "red",
	ColorBlue:   "blue",
	ColorGreen:  "green",
	ColorYellow: "yellow",
	ColorPurple: "purple",
	ColorOrange: "orange",
	ColorCyan:   "cyan",
	ColorPink:   "pink",
	ColorLime:   "lime",
	ColorBrown:  "brown",
	ColorTeal:   "teal",
	ColorGray:   "gray",
}

var colorChars = [...]rune{
	ColorNone:   '_',
	ColorRed:    'R',
	ColorBlue:   'B',
	ColorGreen:  'G',
	ColorYellow: 'Y',
	ColorPurple: 'P',
	ColorOrange: 'O',
	ColorCyan:   'C',
	ColorPink:   'K',
	ColorLime:   'L',
	ColorBrown:  'N',
	ColorTeal:   'T',
	ColorGray:   'A',
}

// String returns the lowercase color name.
func (c Color) String() string {
	if c >= colorSentinel {
		return "unknown"
	}
	return colorNames[c]
}

// Char returns a single character for ASCII rendering.
func (c Color) Char() rune {
	if c >= colorSentinel {
		return '?'
	}
	return colorChars[c]
}

// Valid reports whether c is a liquid color (not ColorNone, not out of range).
func (c Color) Valid() bool {
	return c > ColorNone && c < colorSentinel
}

// ParseColor converts a name or single-letter code to a Color.
// Returns ColorNone and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c := ColorRed; c < colorSentinel; c++ {
		if s == colorNames[c] || (len(s) == 1 && strings.ToLower(string(colorChars[c])) == s) {
			return c, true
		}
	}
	return ColorNone, false
}

// AllColors returns every liquid color in declaration order.
func AllColors() []Color {
	colors := make([]Color, 0, int(colorSentinel)-1)
	for c := ColorRed; c < colorSentinel; c++ {
		colors = append(colors, c)
	}
	return colors
}

// Palette returns the first n liquid colors, capped at the number available.
func Palette(n int) []Color {
	all := AllColors()
	if n < 0 {
		n = 0
	}
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}
