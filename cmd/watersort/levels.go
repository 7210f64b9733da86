package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/watersort/internal/levels"
	"github.com/vovakirdan/watersort/internal/platform/tui"
	"github.com/vovakirdan/watersort/internal/storage"
)

var flagPick bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the built-in levels plus any found in --levels-dir, with your
best solve for each.

With --pick an interactive picker opens and the chosen level starts.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagPick, "pick", false, "Open the interactive level picker")
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}
	logger, closeLog, err := newLogger(flagPick)
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	all, err := loadLevels(logger)
	if err != nil {
		exitf("%v", err)
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open solve database", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	if flagPick {
		pickAndPlay(all, store)
		return
	}

	if len(all) == 0 {
		fmt.Println("No levels available.")
		return
	}

	var stats map[string]*storage.LevelStats
	if store != nil {
		stats, _ = store.AllLevelStats()
	}

	maxIDLen := 2 // "ID" header
	for _, l := range all {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Println("Available levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-18s  %-7s  %-6s  %s\n", maxIDLen, "ID", "Name", "Tubes", "Cap", "Best")
	fmt.Printf("  %-*s  %-18s  %-7s  %-6s  %s\n", maxIDLen, "--", "----", "-----", "---", "----")

	for _, l := range all {
		best := "-"
		if st, ok := stats[l.ID]; ok && st.Solves > 0 {
			best = fmt.Sprintf("%d moves", st.BestMoves)
		}
		kind := ""
		if l.Handmade() {
			kind = "*"
		}
		fmt.Printf("  %-*s  %-18s  %-7s  %-6d  %s\n", maxIDLen, l.ID, l.Name, fmt.Sprintf("%d%s", l.Tubes, kind), l.Capacity, best)
	}

	fmt.Println()
	fmt.Println("* fixed layout")
	fmt.Println("Run 'watersort play --level <id>' to play a level.")
}

// pickAndPlay alternates between the picker and a puzzle until the player
// quits from the picker.
func pickAndPlay(all []levels.Level, store *storage.Store) {
	opts := tui.DefaultOptions()
	opts.Store = store
	theme := opts.Theme
	screen := terminalConfig()

	for {
		result, err := tui.RunLevelPicker(all, store, theme, screen)
		if err != nil {
			exitf("running level picker: %v", err)
		}
		screen = result.Config

		switch {
		case result.Quit:
			return
		case result.WantsHistory:
			back, err := tui.RunHistory(store, all, "", screen.ScreenW, screen.ScreenH)
			if err != nil {
				exitf("running history: %v", err)
			}
			if !back {
				return
			}
			continue
		}

		played, err := tui.Run(*result.Level, opts, screen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if !played.Back {
			return
		}
	}
}
