package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/watersort/internal/levels"
)

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Print a generated board",
	Long: `Deal a board and print it without starting the TUI. The board comes
from --level, or from the config shaped by --difficulty and --seed.

Each line is one tube, bottom to top:
   1 [R R B _]

Examples:
  watersort deal
  watersort deal --difficulty hard --seed 7
  watersort deal --level 04-normal`,
	Args: cobra.NoArgs,
	Run:  runDeal,
}

func init() {
	dealCmd.Flags().StringVar(&flagLevel, "level", "", "Level ID to deal")
	dealCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, expert")
	dealCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Deal seed (0 = random)")
}

func runDeal(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}
	if _, err := applyBoardFlags(cmd, &cfg); err != nil {
		exitf("%v", err)
	}
	logger, closeLog, err := newLogger(false)
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	level := levels.Custom(cfg.Board)
	if flagLevel != "" {
		all, err := loadLevels(logger)
		if err != nil {
			exitf("%v", err)
		}
		if level, err = findLevel(all, flagLevel, cfg); err != nil {
			exitf("%v", err)
		}
	}

	game, err := level.NewGame(nil)
	if err != nil {
		exitf("dealing %s: %v", level.ID, err)
	}
	board := game.Board()
	logger.Debug("dealt board", "level", level.ID, "seed", board.Seed, "tubes", board.Len())

	fmt.Printf("%s  seed %d\n\n", level.Name, board.Seed)
	fmt.Print(board.String())
}
