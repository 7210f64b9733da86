package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/watersort/internal/platform/tui"
	"github.com/vovakirdan/watersort/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryTUI   bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [level]",
	Short: "Show solve history",
	Long: `Display solves for a level ordered by fewest moves, or the most recent
solves across all levels when no level is given.

Examples:
  watersort history
  watersort history 03-easy
  watersort history --tui
  watersort history custom --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of solves to show")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse history interactively")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the solves of the given level")
}

func runHistory(_ *cobra.Command, args []string) {
	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}
	logger, closeLog, err := newLogger(flagHistoryTUI)
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		exitf("opening solve database: %v", err)
	}
	defer store.Close()

	if flagHistoryClear {
		if levelID == "" {
			exitf("--clear needs a level")
		}
		if err := store.ClearSolves(levelID); err != nil {
			exitf("%v", err)
		}
		logger.Info("cleared solves", "level", levelID)
		fmt.Printf("Cleared solves for %s.\n", levelID)
		return
	}

	if flagHistoryTUI {
		all, err := loadLevels(logger)
		if err != nil {
			exitf("%v", err)
		}
		screen := terminalConfig()
		if _, err := tui.RunHistory(store, all, levelID, screen.ScreenW, screen.ScreenH); err != nil {
			exitf("running history: %v", err)
		}
		return
	}

	var solves []storage.SolveRecord
	if levelID == "" {
		solves, err = store.RecentSolves(flagHistoryLimit)
		fmt.Println("Recent solves")
	} else {
		solves, err = store.BestSolves(levelID, flagHistoryLimit)
		fmt.Printf("Best solves - %s\n", levelID)
	}
	if err != nil {
		exitf("retrieving solves: %v", err)
	}
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Println("Run 'watersort play' to solve your first puzzle!")
		return
	}

	fmt.Printf("  %-4s  %-14s  %-5s  %-7s  %-10s  %s\n", "Rank", "Level", "Moves", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-14s  %-5s  %-7s  %-10s  %s\n", "----", "-----", "-----", "----", "------", "----")
	for i, s := range solves {
		fmt.Printf("  %-4d  %-14s  %-5d  %-7s  %-10s  %s\n",
			i+1, s.LevelID, s.Moves, s.Duration.Round(100*time.Millisecond).String(), s.Player, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	if levelID != "" {
		if st, err := store.LevelStats(levelID); err == nil && st.Solves > 0 {
			fmt.Println()
			fmt.Printf("Solved %d times, best %d moves, average %.1f\n", st.Solves, st.BestMoves, st.AvgMoves)
		}
	}
}
