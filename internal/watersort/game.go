// Package watersort implements the water-sort puzzle rules: tubes, the pour
// engine, the two-click selection state machine, the win check and the
// shuffled initial deal. The package is UI-agnostic and deterministic for a
// given seed.
package watersort

import "math/rand"

// Game is one puzzle session: a dealt board plus its selection state.
type Game struct {
	cfg      GenConfig
	notifier Notifier
	board    *Board
	selector *Selector
	seeds    *rand.Rand // Derives restart seeds so whole sessions replay
	layout   *Board     // Pristine copy of a hand-built board; nil for deals
}

// NewGame deals a board from cfg.
func NewGame(cfg GenConfig, notifier Notifier) (*Game, error) {
	board, err := Generate(cfg)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:      cfg,
		notifier: notifier,
		seeds:    rand.New(rand.NewSource(board.Seed)),
	}
	g.install(board)
	return g, nil
}

// NewGameFromBoard starts a session on a hand-built board. Restart and
// Replay put that layout back since there is no deal to repeat.
func NewGameFromBoard(board *Board, notifier Notifier) *Game {
	g := &Game{
		notifier: notifier,
		seeds:    rand.New(rand.NewSource(board.Seed)),
		layout:   board.Clone(),
	}
	g.install(board)
	return g
}

func (g *Game) install(board *Board) {
	g.board = board
	g.selector = NewSelector(board, g.notifier)
}

// Activate forwards a tube activation to the selector.
func (g *Game) Activate(index int) (Transition, error) {
	return g.selector.Activate(index)
}

// Cancel drops an armed selection.
func (g *Game) Cancel() bool {
	return g.selector.Cancel()
}

// Restart deals a fresh shuffle with the next seed in the session.
func (g *Game) Restart() error {
	if g.layout != nil {
		return g.Replay()
	}
	board, err := Generate(g.cfg.WithSeed(g.seeds.Int63()))
	if err != nil {
		return err
	}
	g.install(board)
	return nil
}

// Replay deals the current seed again, undoing every pour.
func (g *Game) Replay() error {
	if g.layout != nil {
		g.install(g.layout.Clone())
		return nil
	}
	board, err := Generate(g.cfg.WithSeed(g.board.Seed))
	if err != nil {
		return err
	}
	g.install(board)
	return nil
}

// Board returns the live board. Callers must not mutate it directly.
func (g *Game) Board() *Board {
	return g.board
}

// Selection returns the current selection state.
func (g *Game) Selection() SelectionState {
	return g.selector.State()
}

// Moves returns the number of executed pours since the last deal.
func (g *Game) Moves() int {
	return g.selector.Moves()
}

// Solved reports whether the board is solved.
func (g *Game) Solved() bool {
	return g.selector.Solved()
}

// Seed returns the seed of the current deal.
func (g *Game) Seed() int64 {
	return g.board.Seed
}

// Config returns the deal configuration.
func (g *Game) Config() GenConfig {
	return g.cfg
}

// GameSnapshot captures the session for determinism tests and rendering.
type GameSnapshot struct {
	Seed     int64
	Moves    int
	Solved   bool
	Selected int // -1 when nothing is armed
	Tubes    []TubeSnapshot
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() GameSnapshot {
	selected := -1
	if i, ok := g.selector.State().Armed(); ok {
		selected = i
	}
	return GameSnapshot{
		Seed:     g.board.Seed,
		Moves:    g.selector.Moves(),
		Solved:   g.selector.Solved(),
		Selected: selected,
		Tubes:    g.board.Snapshot(),
	}
}
