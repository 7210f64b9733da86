package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/watersort/internal/core"
	"github.com/vovakirdan/watersort/internal/levels"
)

type sessionMode int

const (
	modeMenu sessionMode = iota
	modePlay
	modeHistory
)

// SessionModel manages the full flow: level picker -> puzzle -> picker,
// with the history screen one key away. SSH sessions and the local
// interactive mode both run it.
type SessionModel struct {
	items    []levels.Level
	opts     Options
	config   core.RuntimeConfig
	mode     sessionMode
	menu     MenuModel
	play     *Model
	history  HistoryModel
	status   string
	quitting bool
}

// NewSessionModel creates a session over the given levels.
func NewSessionModel(items []levels.Level, opts Options, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		items:  items,
		opts:   opts,
		config: cfg,
		menu:   NewMenuModel(items, opts.Store, opts.Theme, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return tea.Batch(m.menu.Init(), waitForConfig(m.opts.Updates))
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height

	case ConfigMsg:
		// The session owns the watcher so reloads survive screen changes.
		var cmd tea.Cmd
		if msg.Err == nil {
			m.opts = OptionsFromConfig(m.opts, msg.Config)
			m.menu.theme = m.opts.Theme
		}
		if m.mode == modePlay && m.play != nil {
			var next tea.Model
			next, cmd = m.play.Update(msg)
			m.setPlay(next)
		}
		return m, tea.Batch(cmd, waitForConfig(m.opts.Updates))
	}

	switch m.mode {
	case modePlay:
		return m.updatePlay(msg)
	case modeHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menuModel, ok := next.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsHistory():
		m.history = NewHistoryModel(m.opts.Store, m.items, m.config.ScreenW, m.config.ScreenH)
		m.mode = modeHistory
		return m, m.history.Init()

	case m.menu.Selected() != nil:
		level := *m.menu.Selected()
		m.config = m.menu.Config()

		opts := m.opts
		opts.Updates = nil
		play, err := NewModel(level, opts, m.config)
		if err != nil {
			m.status = err.Error()
			m.menu = NewMenuModel(m.items, m.opts.Store, m.opts.Theme, m.config)
			return m, nil
		}
		m.play = &play
		m.mode = modePlay
		m.status = ""
		return m, m.play.Init()
	}

	return m, cmd
}

// updatePlay handles updates when a puzzle is running.
func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.play.Update(msg)
	m.setPlay(next)

	switch {
	case m.play.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.play.BackToMenu():
		m.toMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateHistory handles updates on the history screen.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.history.Update(msg)
	if historyModel, ok := next.(HistoryModel); ok {
		m.history = historyModel
	}

	switch {
	case m.history.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.history.IsGoingBack():
		m.toMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m *SessionModel) setPlay(next tea.Model) {
	if playModel, ok := next.(Model); ok {
		m.play = &playModel
	}
}

// toMenu rebuilds the picker so fresh stats are shown.
func (m *SessionModel) toMenu() {
	m.mode = modeMenu
	m.play = nil
	m.menu = NewMenuModel(m.items, m.opts.Store, m.opts.Theme, m.config)
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modePlay:
		return m.play.View()
	case modeHistory:
		return m.history.View()
	}

	view := m.menu.View()
	if m.status != "" {
		view += "\n" + m.opts.Theme.MenuItemActive.Render(centerText(m.status, m.config.ScreenW))
	}
	return view
}

// Play returns the running puzzle model, or nil outside a puzzle.
func (m SessionModel) Play() *Model {
	return m.play
}

// RunSession runs the interactive picker/puzzle/history loop locally.
func RunSession(items []levels.Level, opts Options, cfg core.RuntimeConfig) error {
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	_, err := tea.NewProgram(NewSessionModel(items, opts, cfg), progOpts...).Run()
	return err
}
