package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/watersort/internal/core"
	"github.com/vovakirdan/watersort/internal/levels"
	"github.com/vovakirdan/watersort/internal/storage"
)

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items       []levels.Level
	stats       map[string]*storage.LevelStats
	cursor      int
	width       int
	height      int
	theme       Theme
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	quitting    bool
	selected    *levels.Level // Set when user picks a level
	openHistory bool          // True if user pressed Tab for history
}

// NewMenuModel creates a level picker over items. Stats are read from store
// when one is given.
func NewMenuModel(items []levels.Level, store *storage.Store, theme Theme, cfg core.RuntimeConfig) MenuModel {
	var stats map[string]*storage.LevelStats
	if store != nil {
		// A broken history only hides the stats column.
		stats, _ = store.AllLevelStats()
	}

	return MenuModel{
		items:     items,
		stats:     stats,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		theme:     theme,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionHistory:
		m.openHistory = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.theme.MenuTitle.Render(centerText("  W A T E R   S O R T  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(m.theme.MenuDescription.Render(centerText("Pick a level", m.width)))
	b.WriteString("\n\n")

	nameW := 0
	for _, item := range m.items {
		nameW = max(nameW, len(item.Name))
	}

	for i, item := range m.items {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}

		line := fmt.Sprintf("%s%-*s  %s", cursor, nameW, item.Name, m.describe(item))
		b.WriteString(style.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: History  |  Q: Quit"
	b.WriteString(m.theme.Help.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// describe summarizes a level and its best solve.
func (m MenuModel) describe(l levels.Level) string {
	var shape string
	if l.Handmade() {
		shape = fmt.Sprintf("%d tubes, fixed", l.Tubes)
	} else {
		shape = fmt.Sprintf("%d tubes × %d", l.Tubes, l.Capacity)
	}

	st, ok := m.stats[l.ID]
	if !ok || st.Solves == 0 {
		return shape
	}
	return fmt.Sprintf("%s  best %d (%d solved)", shape, st.BestMoves, st.Solves)
}

// Selected returns the selected level, or nil if none selected.
func (m MenuModel) Selected() *levels.Level {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested solve history.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the level picker.
type MenuResult struct {
	Level        *levels.Level
	Config       core.RuntimeConfig
	WantsHistory bool
	Quit         bool
}

// RunLevelPicker runs the level picker and returns the selection result.
func RunLevelPicker(items []levels.Level, store *storage.Store, theme Theme, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(items, store, theme, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsHistory():
		result.WantsHistory = true
	case m.Selected() != nil:
		result.Level = m.Selected()
	default:
		result.Quit = true
	}
	return result, nil
}
