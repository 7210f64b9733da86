package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/watersort/internal/core"
)

// Theme holds every style the front end draws with.
type Theme struct {
	Name string

	// Liquid colors, indexed by core.Color (ColorRed..ColorGray)
	Liquid map[core.Color]lipgloss.Style

	Glass  lipgloss.Style // Tube walls and labels
	Cursor lipgloss.Style // Walls of the tube under the cursor
	Armed  lipgloss.Style // Walls of the armed tube and the win panel

	// Menus and panels
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	Help            lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Name: "default",
		Liquid: map[core.Color]lipgloss.Style{
			core.ColorRed:    fg("196"),
			core.ColorBlue:   fg("27"),
			core.ColorGreen:  fg("34"),
			core.ColorYellow: fg("226"),
			core.ColorPurple: fg("129"),
			core.ColorOrange: fg("208"),
			core.ColorCyan:   fg("51"),
			core.ColorPink:   fg("205"),
			core.ColorLime:   fg("118"),
			core.ColorBrown:  fg("130"),
			core.ColorTeal:   fg("30"),
			core.ColorGray:   fg("250"),
		},

		Glass:  fg("245"),
		Cursor: fg("255").Bold(true),
		Armed:  fg("226").Bold(true),

		MenuTitle:       fg("51").Bold(true),
		MenuItemNormal:  fg("252"),
		MenuItemActive:  fg("226").Bold(true),
		MenuDescription: fg("245"),
		Help:            fg("241"),
	}
}

// NeonTheme returns a saturated theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "neon"
	theme.Liquid[core.ColorRed] = fg("197")
	theme.Liquid[core.ColorBlue] = fg("33")
	theme.Liquid[core.ColorGreen] = fg("46")
	theme.Liquid[core.ColorYellow] = fg("227")
	theme.Liquid[core.ColorPurple] = fg("171")
	theme.Liquid[core.ColorPink] = fg("199")
	theme.Liquid[core.ColorCyan] = fg("87")
	theme.Glass = fg("63")
	return theme
}

// PastelTheme returns a softer pastel theme.
func PastelTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "pastel"
	theme.Liquid[core.ColorRed] = fg("210")
	theme.Liquid[core.ColorBlue] = fg("111")
	theme.Liquid[core.ColorGreen] = fg("157")
	theme.Liquid[core.ColorYellow] = fg("229")
	theme.Liquid[core.ColorPurple] = fg("183")
	theme.Liquid[core.ColorPink] = fg("218")
	theme.Liquid[core.ColorCyan] = fg("123")
	return theme
}

// MonoTheme returns a theme that tells colors apart by glyph brightness only.
// Board rendering switches to letter glyphs with it.
func MonoTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "mono"
	for c := range theme.Liquid {
		theme.Liquid[c] = fg("255")
	}
	return theme
}

// ThemeByName resolves a config theme name, falling back to the default.
func ThemeByName(name string) Theme {
	switch name {
	case "neon":
		return NeonTheme()
	case "pastel":
		return PastelTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}

// Style returns the style for a screen color.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.Liquid[c]; ok {
		return s
	}
	switch c {
	case core.ColorDim:
		return t.Glass
	case core.ColorWhite:
		return t.Cursor
	case core.ColorHighlight:
		return t.Armed
	default:
		return lipgloss.NewStyle()
	}
}

// Letters reports whether liquids should be drawn as color letters.
func (t Theme) Letters() bool {
	return t.Name == "mono"
}

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}
