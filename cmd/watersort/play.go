package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/watersort/internal/config"
	"github.com/vovakirdan/watersort/internal/levels"
	"github.com/vovakirdan/watersort/internal/platform/tui"
	"github.com/vovakirdan/watersort/internal/storage"
	"github.com/vovakirdan/watersort/internal/telemetry"
	"github.com/vovakirdan/watersort/internal/watersort"
)

var (
	flagLevel      string
	flagDifficulty string
	flagSeed       int64
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Start a puzzle. Without --level an interactive level picker opens.
--difficulty or --seed deal a custom board from the config instead.

Controls:
  Left/Right, h/l - Move the tube cursor
  Space/Enter     - Select a tube, then pour into another
  1-9             - Select or pour into a tube directly
  Mouse click     - Same as pressing the tube's number
  Esc             - Cancel the selection
  r               - New deal (fresh shuffle)
  R               - Replay the current deal
  b               - Back to the level picker
  q/Ctrl+C        - Quit

Examples:
  watersort play
  watersort play --level 01-first-pour
  watersort play --difficulty expert
  watersort play --level custom --seed 42
  watersort play --config ./watersort.yaml --watch`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level ID to play ('custom' deals from config)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, expert")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Deal seed (0 = random)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

// applyBoardFlags layers --difficulty and --seed over the loaded config.
func applyBoardFlags(cmd *cobra.Command, cfg *config.Config) (bool, error) {
	changed := false
	if flagDifficulty != "" {
		d, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return false, err
		}
		if err := config.ApplyPreset(&cfg.Board, d); err != nil {
			return false, err
		}
		changed = true
	}
	if cmd.Flags().Changed("seed") {
		cfg.Board.Seed = flagSeed
		changed = true
	}
	if changed {
		return true, config.Validate(*cfg)
	}
	return false, nil
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}
	custom, err := applyBoardFlags(cmd, &cfg)
	if err != nil {
		exitf("%v", err)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	all, err := loadLevels(logger)
	if err != nil {
		exitf("%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solve database: %v\n", err)
		// Continue without storage - the puzzle still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	opts := tui.OptionsFromConfig(tui.DefaultOptions(), cfg)
	opts.Context = ctx
	opts.Store = store
	opts.Notifier = buildNotifier(ctx, logger, fmt.Sprintf("local-%d", os.Getpid()))

	if flagWatch {
		path, watchErr := watchPath()
		if watchErr != nil {
			exitf("%v", watchErr)
		}
		updates, watchErr := config.Watch(ctx, path)
		if watchErr != nil {
			exitf("%v", watchErr)
		}
		opts.Updates = updates
		opts.ConfigPath = path
		logger.Info("watching config", "path", path)
	}

	if flagLevel == "" && custom {
		flagLevel = levels.CustomID
	}

	if flagLevel == "" {
		items := append(all, levels.Custom(cfg.Board))
		if err := tui.RunSession(items, opts, terminalConfig()); err != nil {
			exitf("running session: %v", err)
		}
		return
	}

	level, err := findLevel(all, flagLevel, cfg)
	if err != nil {
		exitf("%v", err)
	}
	logger.Info("starting level", "level", level.ID, "handmade", level.Handmade())

	result, err := tui.Run(level, opts, terminalConfig())
	if err != nil {
		exitf("running puzzle: %v", err)
	}
	if result.Solved {
		logger.Info("level solved", "level", level.ID, "moves", result.Moves)
	}
}

// buildNotifier fans core notifications out to the log and, with
// --signals, to telemetry signals.
func buildNotifier(ctx context.Context, logger *log.Logger, session string) watersort.Notifier {
	notifiers := watersort.Notifiers{telemetry.NewLogNotifier(logger)}
	if flagSignals {
		notifiers = append(notifiers, telemetry.NewSignalNotifier(ctx, session, ""))
	}
	return notifiers
}

// watchPath picks the file to watch: --config, else the user config file.
func watchPath() (string, error) {
	if flagConfig != "" {
		return flagConfig, nil
	}
	dir := config.ConfigDir()
	if dir == "" {
		return "", errors.New("--watch needs --config when the home directory is unknown")
	}
	path := filepath.Join(dir, "configs", config.FileName)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("--watch: no config at %s, pass --config", path)
	}
	return path, nil
}
