package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/watersort/internal/config"
	"github.com/vovakirdan/watersort/internal/core"
	"github.com/vovakirdan/watersort/internal/levels"
	"github.com/vovakirdan/watersort/internal/storage"
)

// twoPourLevel is solved by pouring tube 1 into 2, then tube 1 into 3.
func twoPourLevel() levels.Level {
	return levels.Level{
		ID:       "two-pour",
		Name:     "Two Pour",
		Capacity: 2,
		Tubes:    3,
		Layout:   []string{"RB", "B", "R"},
	}
}

func newTestModel(t *testing.T, level levels.Level, opts Options) Model {
	t.Helper()
	m, err := NewModel(level, opts, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

// send feeds messages through Update and returns the resulting model.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

// apply feeds decoded inputs straight to the model.
func apply(m Model, ins ...core.Input) Model {
	for _, in := range ins {
		next, _ := m.handleInput(in)
		m = next.(Model)
	}
	return m
}

func keys(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, runeKey(r))
	}
	return msgs
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "solves.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelSolveIsSaved(t *testing.T) {
	store := openTestStore(t)
	opts := DefaultOptions()
	opts.Store = store

	m := newTestModel(t, twoPourLevel(), opts)
	m = send(t, m, keys("1213")...)

	if !m.Game().Solved() {
		t.Fatalf("puzzle not solved:\n%s", m.Game().Board())
	}
	if m.Game().Moves() != 2 {
		t.Errorf("Moves() = %d, want 2", m.Game().Moves())
	}
	if !strings.Contains(m.View(), "SOLVED!") {
		t.Error("win panel missing from view")
	}

	solves, err := store.BestSolves("two-pour", 10)
	if err != nil {
		t.Fatalf("BestSolves failed: %v", err)
	}
	if len(solves) != 1 {
		t.Fatalf("saved %d solves, want 1", len(solves))
	}
	if solves[0].Moves != 2 || solves[0].Player != storage.LocalPlayer {
		t.Errorf("saved solve = %+v", solves[0])
	}

	// Further input on a solved board is ignored and does not save again.
	m = send(t, m, keys("12")...)
	if solves, _ = store.BestSolves("two-pour", 10); len(solves) != 1 {
		t.Errorf("solve saved %d times", len(solves))
	}
}

func TestModelRejectedPourSetsErrorStatus(t *testing.T) {
	m := newTestModel(t, twoPourLevel(), DefaultOptions())

	// Blue onto red.
	m = send(t, m, keys("23")...)
	if !m.statusErr || !strings.Contains(m.status, "top colors differ") {
		t.Errorf("status = %q (err %v), want rejection message", m.status, m.statusErr)
	}
	if _, armed := m.Game().Selection().Armed(); armed {
		t.Error("rejected pour left a tube armed")
	}
	if m.Game().Moves() != 0 {
		t.Errorf("rejected pour counted as a move")
	}
}

func TestModelOutOfRangePick(t *testing.T) {
	m := newTestModel(t, twoPourLevel(), DefaultOptions())
	m = send(t, m, runeKey('1'), runeKey('9'))

	if !m.statusErr || !strings.Contains(m.status, "no tube 9") {
		t.Errorf("status = %q, want out-of-range message", m.status)
	}
	if i, armed := m.Game().Selection().Armed(); !armed || i != 0 {
		t.Error("out-of-range pick changed the selection")
	}
	if m.cursor != 0 {
		t.Errorf("cursor moved to %d", m.cursor)
	}
}

func TestModelCursorWraps(t *testing.T) {
	m := newTestModel(t, twoPourLevel(), DefaultOptions())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.cursor != 2 {
		t.Errorf("cursor after left from 0 = %d, want 2", m.cursor)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.cursor != 0 {
		t.Errorf("cursor after wrap right = %d, want 0", m.cursor)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEsc})
	if _, armed := m.Game().Selection().Armed(); armed {
		t.Error("esc did not cancel the selection")
	}
}

func TestModelMouseClickPicksTube(t *testing.T) {
	m := newTestModel(t, twoPourLevel(), DefaultOptions())
	r := m.rects[1]

	m = send(t, m, tea.MouseMsg{
		X:      r.X + 2,
		Y:      r.Y + 2,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if i, armed := m.Game().Selection().Armed(); !armed || i != 1 {
		t.Errorf("click did not arm tube 2: %v", m.Game().Selection())
	}
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	// Clicks outside every tube are ignored.
	m = send(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if _, armed := m.Game().Selection().Armed(); !armed {
		t.Error("click on empty space changed the selection")
	}
}

func TestModelMouseDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.Mouse = false
	m := newTestModel(t, twoPourLevel(), opts)
	r := m.rects[0]

	m = send(t, m, tea.MouseMsg{X: r.X + 2, Y: r.Y + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if _, armed := m.Game().Selection().Armed(); armed {
		t.Error("click armed a tube with mouse disabled")
	}
}

func TestModelReplayRestoresDeal(t *testing.T) {
	level := levels.Custom(config.BoardConfig{Capacity: 4, Tubes: 5, Filled: 3, Seed: 42})
	m := newTestModel(t, level, DefaultOptions())
	before := m.Game().Board().String()

	// Pour until something executes, then replay.
	for src := 0; src < 5 && m.Game().Moves() == 0; src++ {
		for dst := 0; dst < 5 && m.Game().Moves() == 0; dst++ {
			if src != dst {
				m = apply(m, core.Pick(src), core.Pick(dst))
			}
		}
	}
	if m.Game().Moves() == 0 {
		t.Fatal("no legal pour found on the deal")
	}

	m = send(t, m, runeKey('R'))
	if got := m.Game().Board().String(); got != before {
		t.Errorf("replay dealt\n%s\nwant\n%s", got, before)
	}
	if m.Game().Moves() != 0 {
		t.Errorf("Moves() after replay = %d", m.Game().Moves())
	}
}

func TestModelConfigReloadAppliesOnRestart(t *testing.T) {
	cfg := config.Default()
	m := newTestModel(t, levels.Custom(cfg.Board), DefaultOptions())
	if m.Game().Board().Len() != cfg.Board.Tubes {
		t.Fatalf("initial tubes = %d, want %d", m.Game().Board().Len(), cfg.Board.Tubes)
	}

	cfg.Board.Tubes = 5
	cfg.Board.Filled = 3
	cfg.Display.Theme = "mono"
	m = send(t, m, ConfigMsg{Config: cfg})

	if m.opts.Theme.Name != "mono" {
		t.Errorf("theme = %q, want mono applied immediately", m.opts.Theme.Name)
	}
	if m.Game().Board().Len() != 7 {
		t.Error("board changed before restart")
	}

	m = send(t, m, runeKey('r'))
	if m.Game().Board().Len() != 5 {
		t.Errorf("tubes after restart = %d, want 5", m.Game().Board().Len())
	}
	if m.pending != nil {
		t.Error("pending config not consumed")
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m := newTestModel(t, twoPourLevel(), DefaultOptions())

	next, cmd := m.Update(runeKey('b'))
	if !next.(Model).BackToMenu() || cmd == nil {
		t.Error("b should request the level picker")
	}

	next, cmd = m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelRestartResetsHandmadeLevel(t *testing.T) {
	store := openTestStore(t)
	opts := DefaultOptions()
	opts.Store = store

	m := newTestModel(t, twoPourLevel(), opts)
	initial := m.Game().Board().String()
	m = send(t, m, keys("1213")...)
	if !m.Game().Solved() {
		t.Fatal("puzzle not solved")
	}

	m = send(t, m, runeKey('r'))
	if got := m.Game().Board().String(); got != initial {
		t.Errorf("restart left\n%s\nwant\n%s", got, initial)
	}
	if m.Game().Solved() || m.Game().Moves() != 0 {
		t.Errorf("after restart solved=%v moves=%d", m.Game().Solved(), m.Game().Moves())
	}
	if strings.Contains(m.View(), "SOLVED!") {
		t.Error("win panel still shown after restart")
	}

	// The level is playable again and the second solve is recorded.
	m = send(t, m, keys("1213")...)
	if !m.Game().Solved() {
		t.Fatal("puzzle not solvable after restart")
	}
	solves, err := store.BestSolves("two-pour", 10)
	if err != nil {
		t.Fatalf("BestSolves failed: %v", err)
	}
	if len(solves) != 2 {
		t.Errorf("saved %d solves, want 2", len(solves))
	}
}
