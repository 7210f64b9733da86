package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveSolve(SolveRecord{LevelID: "03-easy", Seed: 1, Moves: 12}); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	recent, err := store.RecentSolves(5)
	if err != nil {
		t.Fatalf("RecentSolves() failed: %v", err)
	}
	if len(recent) != 1 {
		t.Errorf("Expected 1 solve after reopen, got %d", len(recent))
	}
}

func TestBestSolvesOrdering(t *testing.T) {
	store := openTestStore(t)

	solves := []SolveRecord{
		{LevelID: "04-normal", Seed: 1, Moves: 30, Duration: 40 * time.Second},
		{LevelID: "04-normal", Seed: 2, Moves: 22, Duration: 90 * time.Second},
		{LevelID: "04-normal", Seed: 3, Moves: 22, Duration: 50 * time.Second},
		{LevelID: "05-hard", Seed: 4, Moves: 10, Duration: time.Second},
	}
	for _, s := range solves {
		if _, err := store.SaveSolve(s); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	best, err := store.BestSolves("04-normal", 10)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("Expected 3 solves, got %d", len(best))
	}

	// Fewest moves first, ties broken by time
	wantSeeds := []int64{3, 2, 1}
	for i, want := range wantSeeds {
		if best[i].Seed != want {
			t.Errorf("best[%d].Seed = %d, expected %d", i, best[i].Seed, want)
		}
	}
	if best[0].Duration != 50*time.Second {
		t.Errorf("Duration = %v, expected 50s", best[0].Duration)
	}
	if best[0].Player != LocalPlayer {
		t.Errorf("Player = %q, expected %q", best[0].Player, LocalPlayer)
	}

	limited, err := store.BestSolves("04-normal", 1)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected 1 solve with limit, got %d", len(limited))
	}
}

func TestRecentSolves(t *testing.T) {
	store := openTestStore(t)

	for i, level := range []string{"a", "b", "c"} {
		if _, err := store.SaveSolve(SolveRecord{LevelID: level, Player: "ssh-user", Moves: i + 1}); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	recent, err := store.RecentSolves(2)
	if err != nil {
		t.Fatalf("RecentSolves() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 solves, got %d", len(recent))
	}
	if recent[0].LevelID != "c" || recent[1].LevelID != "b" {
		t.Errorf("Expected newest first, got %s, %s", recent[0].LevelID, recent[1].LevelID)
	}
	if recent[0].Player != "ssh-user" {
		t.Errorf("Player = %q", recent[0].Player)
	}
}

func TestSaveSolveRequiresLevel(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveSolve(SolveRecord{Moves: 3}); err == nil {
		t.Error("Expected error for solve without level id")
	}
}

func TestLevelStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.LevelStats("nothing")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if empty.Solves != 0 || empty.BestMoves != 0 || !empty.LastSolved.IsZero() {
		t.Errorf("Expected zero stats, got %+v", empty)
	}

	for _, moves := range []int{10, 20, 30} {
		rec := SolveRecord{LevelID: "03-easy", Moves: moves, Duration: time.Duration(moves) * time.Second}
		if _, err := store.SaveSolve(rec); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	stats, err := store.LevelStats("03-easy")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if stats.Solves != 3 {
		t.Errorf("Solves = %d, expected 3", stats.Solves)
	}
	if stats.BestMoves != 10 {
		t.Errorf("BestMoves = %d, expected 10", stats.BestMoves)
	}
	if stats.AvgMoves != 20 {
		t.Errorf("AvgMoves = %f, expected 20", stats.AvgMoves)
	}
	if stats.BestTime != 10*time.Second {
		t.Errorf("BestTime = %v, expected 10s", stats.BestTime)
	}

	all, err := store.AllLevelStats()
	if err != nil {
		t.Fatalf("AllLevelStats() failed: %v", err)
	}
	if len(all) != 1 || all["03-easy"].Solves != 3 {
		t.Errorf("AllLevelStats() = %v", all)
	}
}

func TestClearSolves(t *testing.T) {
	store := openTestStore(t)

	store.SaveSolve(SolveRecord{LevelID: "a", Moves: 1})
	store.SaveSolve(SolveRecord{LevelID: "b", Moves: 1})

	if err := store.ClearSolves("a"); err != nil {
		t.Fatalf("ClearSolves() failed: %v", err)
	}

	a, _ := store.BestSolves("a", 10)
	b, _ := store.BestSolves("b", 10)
	if len(a) != 0 {
		t.Errorf("Expected 0 solves for a after clear, got %d", len(a))
	}
	if len(b) != 1 {
		t.Errorf("Expected b to be untouched, got %d", len(b))
	}
}
