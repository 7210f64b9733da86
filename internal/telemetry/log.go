package telemetry

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/zoobzio/capitan"

	"github.com/vovakirdan/watersort/internal/watersort"
)

// NewLogger creates the shared logger style: timestamps and a prefix.
func NewLogger(w io.Writer, prefix string, level log.Level) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
	})
	logger.SetLevel(level)
	return logger
}

// LogNotifier writes each puzzle notification to a logger.
// Selection churn goes to debug, pours and solves to info.
type LogNotifier struct {
	logger *log.Logger
}

var _ watersort.Notifier = (*LogNotifier)(nil)

// NewLogNotifier wraps logger.
func NewLogNotifier(logger *log.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Armed(index int) {
	n.logger.Debug("tube armed", "tube", index)
}

func (n *LogNotifier) Disarmed(index int) {
	n.logger.Debug("tube disarmed", "tube", index)
}

func (n *LogNotifier) PourExecuted(source, target int, color watersort.Color, count int) {
	n.logger.Info("pour", "source", source, "target", target, "color", color, "count", count)
}

func (n *LogNotifier) PourRejected(source, target int, reason watersort.RejectReason) {
	n.logger.Debug("pour rejected", "source", source, "target", target, "reason", reason)
}

func (n *LogNotifier) PuzzleSolved(moves int) {
	n.logger.Info("puzzle solved", "moves", moves)
}

// HookLogger forwards every telemetry signal to logger. Use it when signals
// are enabled but nothing else consumes them.
func HookLogger(logger *log.Logger) {
	capitan.Hook(TubeArmed, func(_ context.Context, e *capitan.Event) {
		tube, _ := KeyTube.From(e)
		logger.Debug("signal", "name", "tube.armed", "session", session(e), "tube", tube)
	})
	capitan.Hook(TubeDisarmed, func(_ context.Context, e *capitan.Event) {
		tube, _ := KeyTube.From(e)
		logger.Debug("signal", "name", "tube.disarmed", "session", session(e), "tube", tube)
	})
	capitan.Hook(PourExecuted, func(_ context.Context, e *capitan.Event) {
		source, _ := KeySource.From(e)
		target, _ := KeyTarget.From(e)
		color, _ := KeyColor.From(e)
		count, _ := KeyCount.From(e)
		logger.Info("signal", "name", "pour.executed", "session", session(e),
			"source", source, "target", target, "color", color, "count", count)
	})
	capitan.Hook(PourRejected, func(_ context.Context, e *capitan.Event) {
		reason, _ := KeyReason.From(e)
		logger.Debug("signal", "name", "pour.rejected", "session", session(e), "reason", reason)
	})
	capitan.Hook(PuzzleSolved, func(_ context.Context, e *capitan.Event) {
		level, _ := KeyLevel.From(e)
		moves, _ := KeyMoves.From(e)
		elapsed, _ := KeyElapsed.From(e)
		logger.Info("signal", "name", "puzzle.solved", "session", session(e),
			"level", level, "moves", moves, "elapsed", elapsed.Round(time.Millisecond))
	})
	capitan.Hook(ConfigReloaded, func(_ context.Context, e *capitan.Event) {
		path, _ := KeyPath.From(e)
		if msg, ok := KeyError.From(e); ok {
			logger.Warn("config reload rejected", "path", path, "error", msg)
			return
		}
		logger.Info("config reloaded", "path", path)
	})
}

func session(e *capitan.Event) string {
	s, _ := KeySession.From(e)
	return s
}

// Shutdown drains pending signal deliveries.
func Shutdown() {
	capitan.Shutdown()
}
