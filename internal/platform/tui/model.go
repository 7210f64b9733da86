package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/watersort/internal/config"
	"github.com/vovakirdan/watersort/internal/core"
	"github.com/vovakirdan/watersort/internal/levels"
	"github.com/vovakirdan/watersort/internal/storage"
	"github.com/vovakirdan/watersort/internal/telemetry"
	"github.com/vovakirdan/watersort/internal/watersort"
)

// Screen rows reserved above and below the board.
const (
	headerRows = 2
	statusRows = 1
)

// Options configures a puzzle session.
type Options struct {
	Context    context.Context
	Store      *storage.Store
	Notifier   watersort.Notifier // Receives every transition; may be nil
	Theme      Theme
	Labels     bool
	Mouse      bool
	Player     string
	Updates    <-chan config.Update // Config file reloads; nil disables watching
	ConfigPath string
}

// DefaultOptions returns options for a local session without storage.
func DefaultOptions() Options {
	return Options{
		Context: context.Background(),
		Theme:   DefaultTheme(),
		Labels:  true,
		Mouse:   true,
		Player:  storage.LocalPlayer,
	}
}

// OptionsFromConfig applies the display section of cfg.
func OptionsFromConfig(opts Options, cfg config.Config) Options {
	opts.Theme = ThemeByName(cfg.Display.Theme)
	opts.Labels = cfg.Display.Labels
	opts.Mouse = cfg.Display.Mouse
	return opts
}

// levelResetter is implemented by notifiers that tag events with a level.
type levelResetter interface {
	Reset(level string)
}

func resetNotifier(n watersort.Notifier, level string) {
	switch n := n.(type) {
	case watersort.Notifiers:
		for _, inner := range n {
			resetNotifier(inner, level)
		}
	case levelResetter:
		n.Reset(level)
	}
}

// Model is the Bubble Tea model for one puzzle.
type Model struct {
	level     levels.Level
	pending   *levels.Level // Config reload waiting for the next deal
	game      *watersort.Game
	opts      Options
	screen    *core.Screen
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	rects     []core.Rect
	cursor    int
	status    string
	statusErr bool
	started   time.Time
	now       time.Time
	elapsed   time.Duration // Frozen once solved
	saved     bool
	quitting  bool
	goingBack bool
}

// NewModel deals level and returns a model ready to run.
func NewModel(level levels.Level, opts Options, cfg core.RuntimeConfig) (Model, error) {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Player == "" {
		opts.Player = storage.LocalPlayer
	}
	if opts.Theme.Liquid == nil {
		opts.Theme = DefaultTheme()
	}

	resetNotifier(opts.Notifier, level.ID)
	game, err := level.NewGame(opts.Notifier)
	if err != nil {
		return Model{}, fmt.Errorf("level %s: %w", level.ID, err)
	}

	now := time.Now()
	m := Model{
		level:     level,
		game:      game,
		opts:      opts,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		started:   now,
		now:       now,
		status:    level.Name,
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.boardScreenHeight())
	m.relayout()
	return m, nil
}

// Init starts the clock and the config watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(time.Second), waitForConfig(m.opts.Updates))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keyMapper.Keys().Help) {
			m.help.ShowAll = !m.help.ShowAll
			m.resize(m.config.ScreenW, m.config.ScreenH)
			return m, nil
		}
		return m.handleInput(m.keyMapper.MapKey(msg))

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.now = time.Time(msg)
		return m, tickCmd(time.Second)

	case ConfigMsg:
		m.applyConfig(config.Update(msg))
		return m, waitForConfig(m.opts.Updates)
	}

	return m, nil
}

// handleInput applies one decoded input.
func (m Model) handleInput(in core.Input) (tea.Model, tea.Cmd) {
	n := m.game.Board().Len()

	switch in.Action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.goingBack = true
		return m, tea.Quit

	case core.ActionLeft:
		m.cursor = core.Wrap(m.cursor-1, n)

	case core.ActionRight:
		m.cursor = core.Wrap(m.cursor+1, n)

	case core.ActionActivate:
		m.activate(m.cursor)

	case core.ActionPick:
		if in.Tube >= 0 && in.Tube < n {
			m.cursor = in.Tube
		}
		m.activate(in.Tube)

	case core.ActionCancel:
		if m.game.Cancel() {
			m.setStatus("selection cleared", false)
		}

	case core.ActionRestart:
		m.restart()

	case core.ActionReplay:
		if err := m.game.Replay(); err != nil {
			m.setStatus(err.Error(), true)
			break
		}
		m.resetClock()
		m.setStatus(fmt.Sprintf("replaying seed %d", m.game.Seed()), false)
	}

	return m, nil
}

// handleMouse maps a left click on a tube to a direct pick.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.opts.Mouse || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	idx := core.HitTest(m.rects, msg.X, msg.Y)
	if idx < 0 {
		return m, nil
	}
	return m.handleInput(core.Pick(idx))
}

// activate feeds one tube activation to the game and reports the result.
func (m *Model) activate(index int) {
	if m.game.Solved() {
		return
	}

	tr, err := m.game.Activate(index)
	if err != nil {
		m.setStatus(fmt.Sprintf("no tube %d", index+1), true)
		return
	}

	switch tr.Kind {
	case watersort.TransitionArm:
		m.setStatus(fmt.Sprintf("tube %d selected", index+1), false)
	case watersort.TransitionDisarm:
		m.setStatus(fmt.Sprintf("tube %d released", index+1), false)
	case watersort.TransitionPour:
		if !tr.Result.OK() {
			m.setStatus(fmt.Sprintf("can't pour %d → %d: %s", tr.Source+1, tr.Target+1, tr.Result.Reason), true)
			return
		}
		m.setStatus(fmt.Sprintf("poured %d %s", tr.Result.Count, tr.Result.Color), false)
		if tr.Solved {
			m.finish()
		}
	}
}

// finish freezes the clock and records the solve once.
func (m *Model) finish() {
	m.elapsed = m.now.Sub(m.started)
	if m.elapsed < 0 {
		m.elapsed = 0
	}
	m.setStatus(fmt.Sprintf("solved in %d moves", m.game.Moves()), false)

	if m.saved || m.opts.Store == nil {
		return
	}
	m.saved = true
	_, err := m.opts.Store.SaveSolve(storage.SolveRecord{
		LevelID:  m.level.ID,
		Player:   m.opts.Player,
		Seed:     m.game.Seed(),
		Moves:    m.game.Moves(),
		Duration: m.elapsed,
	})
	if err != nil {
		m.setStatus(fmt.Sprintf("solved, but saving failed: %v", err), true)
	}
}

// restart deals a new shuffle, switching to a reloaded config when one is
// pending.
func (m *Model) restart() {
	if m.pending != nil {
		level := *m.pending
		resetNotifier(m.opts.Notifier, level.ID)
		game, err := level.NewGame(m.opts.Notifier)
		if err != nil {
			m.setStatus(err.Error(), true)
			return
		}
		m.level = level
		m.game = game
		m.pending = nil
		m.cursor = 0
		m.resetClock()
		m.relayout()
		m.setStatus("new config dealt", false)
		return
	}

	if err := m.game.Restart(); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.resetClock()
	if m.level.Handmade() {
		m.setStatus("layout reset", false)
		return
	}
	m.setStatus(fmt.Sprintf("new deal, seed %d", m.game.Seed()), false)
}

// applyConfig takes a config reload. Display settings apply immediately;
// board settings wait for the next deal of a custom level.
func (m *Model) applyConfig(u config.Update) {
	telemetry.EmitConfigReloaded(m.opts.Context, m.opts.ConfigPath, u.Err)
	if u.Err != nil {
		m.setStatus(fmt.Sprintf("config rejected: %v", u.Err), true)
		return
	}

	m.opts = OptionsFromConfig(m.opts, u.Config)
	if m.level.ID != levels.CustomID {
		m.setStatus("config reloaded", false)
		return
	}
	level := levels.Custom(u.Config.Board)
	m.pending = &level
	m.setStatus("config reloaded, press r to deal it", false)
}

func (m *Model) resetClock() {
	m.started = m.now
	m.elapsed = 0
	m.saved = false
	resetNotifier(m.opts.Notifier, m.level.ID)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// boardScreenHeight is the terminal height minus the help bar.
func (m Model) boardScreenHeight() int {
	lines := 1
	if m.help.ShowAll {
		for _, col := range m.keyMapper.Keys().FullHelp() {
			lines = max(lines, len(col))
		}
	}
	return max(1, m.config.ScreenH-lines)
}

func (m *Model) resize(width, height int) {
	m.config.ScreenW = width
	m.config.ScreenH = height
	m.help.Width = width
	m.screen.Resize(width, m.boardScreenHeight())
	m.relayout()
}

// relayout recomputes tube rects for the current screen and board.
func (m *Model) relayout() {
	board := m.game.Board()
	h := m.screen.Height()
	area := core.NewRect(0, headerRows, m.screen.Width(), max(0, h-headerRows-statusRows))
	m.rects = core.LayoutTubes(board.Len(), board.Tubes[0].Capacity(), area)
	m.cursor = core.Clamp(m.cursor, 0, board.Len()-1)
}

// clock returns the solve time shown in the header.
func (m Model) clock() time.Duration {
	if m.game.Solved() {
		return m.elapsed
	}
	return max(0, m.now.Sub(m.started))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	s := m.screen
	s.Clear()

	s.DrawTextCentered(0, "W A T E R   S O R T  ·  "+m.level.Name, core.ColorWhite)
	info := fmt.Sprintf("moves %d   time %s   seed %d", m.game.Moves(), formatClock(m.clock()), m.game.Seed())
	s.DrawTextCentered(1, info, core.ColorDim)

	view := boardView{letters: m.opts.Theme.Letters(), labels: m.opts.Labels}
	view.draw(s, m.game.Snapshot(), m.rects, m.cursor)

	statusColor := core.ColorDim
	if m.statusErr {
		statusColor = core.ColorRed
	}
	s.DrawTextCentered(s.Height()-1, m.status, statusColor)

	if m.game.Solved() {
		m.drawWinPanel(s)
	}

	return RenderScreen(s, m.opts.Theme) + "\n" + m.opts.Theme.Help.Render(m.help.View(m.keyMapper.Keys()))
}

// drawWinPanel overlays the solved banner in the middle of the screen.
func (m Model) drawWinPanel(s *core.Screen) {
	lines := []string{
		"SOLVED!",
		fmt.Sprintf("%d moves in %s", m.game.Moves(), formatClock(m.elapsed)),
		"r new deal · R replay · b levels",
	}
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 2

	panel := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
	s.DrawRect(panel, ' ', core.ColorDefault)
	s.DrawBox(panel, core.ColorHighlight)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorHighlight
		}
		x := panel.X + (w-len([]rune(l)))/2
		s.DrawTextColored(x, panel.Y+1+i, l, c)
	}
}

func formatClock(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Game returns the running puzzle.
func (m Model) Game() *watersort.Game {
	return m.game
}

// Level returns the level being played.
func (m Model) Level() levels.Level {
	return m.level
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level picker.
func (m Model) BackToMenu() bool {
	return m.goingBack
}

// PlayResult reports how a puzzle session ended.
type PlayResult struct {
	Back   bool // Return to the level picker
	Solved bool
	Moves  int
}

// Run plays level in a Bubble Tea program until the player quits or goes back.
func Run(level levels.Level, opts Options, cfg core.RuntimeConfig) (PlayResult, error) {
	model, err := NewModel(level, opts, cfg)
	if err != nil {
		return PlayResult{}, err
	}

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, progOpts...)

	finalModel, err := p.Run()
	if err != nil {
		return PlayResult{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return PlayResult{}, nil
	}
	return PlayResult{
		Back:   m.BackToMenu(),
		Solved: m.game.Solved(),
		Moves:  m.game.Moves(),
	}, nil
}
