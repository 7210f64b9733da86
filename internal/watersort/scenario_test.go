package watersort_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/watersort/internal/watersort"
)

func newTube(t *testing.T, capacity int, colors ...watersort.Color) *watersort.Tube {
	t.Helper()
	tube, err := watersort.NewTubeWith(capacity, colors...)
	if err != nil {
		t.Fatalf("NewTubeWith failed: %v", err)
	}
	return tube
}

func TestRedBlueScenario(t *testing.T) {
	red, blue := watersort.ColorRed, watersort.ColorBlue
	board := watersort.NewBoard(
		newTube(t, 4, red, red, blue, blue),
		newTube(t, 4, blue, blue, red, red),
		newTube(t, 4),
		newTube(t, 4),
	)
	game := watersort.NewGameFromBoard(board, nil)

	if _, err := game.Activate(0); err != nil {
		t.Fatalf("Activate(0) failed: %v", err)
	}
	tr, err := game.Activate(2)
	if err != nil {
		t.Fatalf("Activate(2) failed: %v", err)
	}

	if !tr.Result.OK() || tr.Result.Color != blue || tr.Result.Count != 2 {
		t.Fatalf("pour result = %+v, want 2 blue executed", tr.Result)
	}
	if got := board.Tubes[0].Colors(); !slices.Equal(got, []watersort.Color{red, red}) {
		t.Errorf("tube0 = %v, want [red red]", got)
	}
	if got := board.Tubes[2].Colors(); !slices.Equal(got, []watersort.Color{blue, blue}) {
		t.Errorf("tube2 = %v, want [blue blue]", got)
	}
	if game.Solved() {
		t.Error("board should not be solved yet")
	}
}

// TestRandomPlayConservesUnits drives random activations over dealt boards
// and checks the color census and tube shape after every step.
func TestRandomPlayConservesUnits(t *testing.T) {
	cfg := watersort.GenConfig{
		Colors:          watersort.Palette(5),
		Capacity:        4,
		TubeCount:       7,
		FilledTubeCount: 5,
	}

	for seed := int64(1); seed <= 10; seed++ {
		game, err := watersort.NewGame(cfg.WithSeed(seed), nil)
		if err != nil {
			t.Fatalf("NewGame(seed=%d) failed: %v", seed, err)
		}
		want := game.Board().Census()
		rng := rand.New(rand.NewSource(seed))

		for step := range 200 {
			if _, err := game.Activate(rng.Intn(cfg.TubeCount)); err != nil {
				t.Fatalf("seed %d step %d: %v", seed, step, err)
			}
			got := game.Board().Census()
			if len(got) != len(want) {
				t.Fatalf("seed %d step %d: census %v, want %v", seed, step, got, want)
			}
			for c, n := range want {
				if got[c] != n {
					t.Fatalf("seed %d step %d: %s count %d, want %d", seed, step, c, got[c], n)
				}
			}
			for i, tube := range game.Board().Tubes {
				if tube.Len()+tube.EmptyCount() != tube.Capacity() {
					t.Fatalf("seed %d step %d: tube %d has a gap: %s", seed, step, i, tube)
				}
			}
		}
	}
}

func TestSolvedIffEverySettled(t *testing.T) {
	red, blue := watersort.ColorRed, watersort.ColorBlue
	board := watersort.NewBoard(
		newTube(t, 2, red, blue),
		newTube(t, 2, blue, red),
		newTube(t, 2),
	)
	game := watersort.NewGameFromBoard(board, nil)

	moves := [][2]int{{0, 2}, {1, 0}, {1, 2}}
	for _, m := range moves {
		game.Activate(m[0])
		tr, err := game.Activate(m[1])
		if err != nil || !tr.Result.OK() {
			t.Fatalf("move %v failed: %v %v", m, err, tr.Result.Reason)
		}
	}
	if !game.Solved() || !watersort.IsSolved(board) {
		t.Fatalf("board should be solved: %s", board)
	}
	if game.Moves() != 3 {
		t.Errorf("Moves() = %d, want 3", game.Moves())
	}
}
