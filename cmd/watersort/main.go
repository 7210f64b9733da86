// watersort is a terminal water-sort puzzle.
//
// Usage:
//
//	watersort play            - Pick a level and play
//	watersort play --level id - Play one level directly
//	watersort levels          - List available levels
//	watersort deal            - Print a generated board
//	watersort history [level] - Show solve history
//	watersort serve           - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.watersort/configs, ./configs)
//	--db <path>         - Solve database (default: from config)
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
//	--signals           - Emit telemetry signals and log them
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/watersort/internal/config"
	"github.com/vovakirdan/watersort/internal/core"
	"github.com/vovakirdan/watersort/internal/levels"
	"github.com/vovakirdan/watersort/internal/telemetry"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagSignals  bool
	flagLevelDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "watersort",
	Short: "Water Sort - sort colored liquids in your terminal",
	Long: `Water Sort is a terminal puzzle: pour liquid between tubes until every
tube holds a single color.

Available commands:
  play     - Play a level (interactive picker by default)
  levels   - List built-in and custom levels
  deal     - Print a generated board without the TUI
  history  - Show solve history
  serve    - Start SSH server for remote play

Examples:
  watersort play
  watersort play --level 03-easy
  watersort play --difficulty hard --seed 7
  watersort deal --difficulty expert
  watersort serve --ssh :23235`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to solve database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagSignals, "signals", false, "Emit telemetry signals and log them")
	rootCmd.PersistentFlags().StringVar(&flagLevelDir, "levels-dir", "", "Directory with extra level YAML files")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(dealCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the config file, environment and validation.
func loadConfig() (config.Config, error) {
	cfg, err := config.Resolve(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, nil
}

// newLogger builds the command logger. interactive commands own the
// terminal, so without --log-file their logs are discarded.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := telemetry.NewLogger(w, "watersort", level)
	if flagSignals {
		telemetry.HookLogger(logger)
		inner := closeFn
		closeFn = func() {
			telemetry.Shutdown()
			inner()
		}
	}
	return logger, closeFn, nil
}

// loadLevels returns the built-in pack followed by --levels-dir levels.
func loadLevels(logger *log.Logger) ([]levels.Level, error) {
	all, err := levels.Builtin().LoadAll()
	if err != nil {
		return nil, fmt.Errorf("built-in levels: %w", err)
	}
	if flagLevelDir != "" {
		extra, err := levels.NewLoader(flagLevelDir).LoadAll()
		if err != nil {
			return nil, fmt.Errorf("levels in %s: %w", flagLevelDir, err)
		}
		logger.Debug("loaded custom levels", "dir", flagLevelDir, "count", len(extra))
		all = append(all, extra...)
	}
	return all, nil
}

// findLevel resolves a level ID. "custom" deals from the board config.
func findLevel(all []levels.Level, id string, cfg config.Config) (levels.Level, error) {
	if id == levels.CustomID {
		return levels.Custom(cfg.Board), nil
	}
	for _, l := range all {
		if l.ID == id {
			return l, nil
		}
	}
	return levels.Level{}, fmt.Errorf("%w: %q (run 'watersort levels' to list them)", levels.ErrNotFound, id)
}

// terminalConfig sizes the screen from the controlling terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
