package telemetry

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"

	"github.com/vovakirdan/watersort/internal/watersort"
)

// SignalNotifier emits a capitan signal for every puzzle notification.
type SignalNotifier struct {
	ctx     context.Context
	session string
	level   string
	started time.Time
	now     func() time.Time
}

var _ watersort.Notifier = (*SignalNotifier)(nil)

// NewSignalNotifier creates a notifier tagging events with session and level.
func NewSignalNotifier(ctx context.Context, session, level string) *SignalNotifier {
	if ctx == nil {
		ctx = context.Background()
	}
	n := &SignalNotifier{ctx: ctx, session: session, level: level, now: time.Now}
	n.started = n.now()
	return n
}

// Reset restarts the solve clock after a new deal.
func (n *SignalNotifier) Reset(level string) {
	n.level = level
	n.started = n.now()
}

func (n *SignalNotifier) Armed(index int) {
	capitan.Emit(n.ctx, TubeArmed,
		KeySession.Field(n.session),
		KeyLevel.Field(n.level),
		KeyTube.Field(index),
	)
}

func (n *SignalNotifier) Disarmed(index int) {
	capitan.Emit(n.ctx, TubeDisarmed,
		KeySession.Field(n.session),
		KeyLevel.Field(n.level),
		KeyTube.Field(index),
	)
}

func (n *SignalNotifier) PourExecuted(source, target int, color watersort.Color, count int) {
	capitan.Emit(n.ctx, PourExecuted,
		KeySession.Field(n.session),
		KeyLevel.Field(n.level),
		KeySource.Field(source),
		KeyTarget.Field(target),
		KeyColor.Field(color.String()),
		KeyCount.Field(count),
	)
}

func (n *SignalNotifier) PourRejected(source, target int, reason watersort.RejectReason) {
	capitan.Emit(n.ctx, PourRejected,
		KeySession.Field(n.session),
		KeyLevel.Field(n.level),
		KeySource.Field(source),
		KeyTarget.Field(target),
		KeyReason.Field(reason.String()),
	)
}

func (n *SignalNotifier) PuzzleSolved(moves int) {
	capitan.Emit(n.ctx, PuzzleSolved,
		KeySession.Field(n.session),
		KeyLevel.Field(n.level),
		KeyMoves.Field(moves),
		KeyElapsed.Field(n.now().Sub(n.started)),
	)
}

// EmitConfigReloaded reports a config reload outcome. A nil err means the
// new config was accepted.
func EmitConfigReloaded(ctx context.Context, path string, err error) {
	if err != nil {
		capitan.Emit(ctx, ConfigReloaded, KeyPath.Field(path), KeyError.Field(err.Error()))
		return
	}
	capitan.Emit(ctx, ConfigReloaded, KeyPath.Field(path))
}
