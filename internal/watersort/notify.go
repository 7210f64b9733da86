package watersort

// Notifier receives the outcome of every selection transition.
// Presentation layers (rendering, sound, logging) implement it; none of
// them can change core state from inside a callback.
type Notifier interface {
	Armed(index int)
	Disarmed(index int)
	PourExecuted(source, target int, color Color, count int)
	PourRejected(source, target int, reason RejectReason)
	PuzzleSolved(moves int)
}

// NopNotifier ignores every notification.
type NopNotifier struct{}

func (NopNotifier) Armed(int)                           {}
func (NopNotifier) Disarmed(int)                        {}
func (NopNotifier) PourExecuted(int, int, Color, int)   {}
func (NopNotifier) PourRejected(int, int, RejectReason) {}
func (NopNotifier) PuzzleSolved(int)                    {}

// Notifiers fans each notification out in order.
type Notifiers []Notifier

func (ns Notifiers) Armed(index int) {
	for _, n := range ns {
		n.Armed(index)
	}
}

func (ns Notifiers) Disarmed(index int) {
	for _, n := range ns {
		n.Disarmed(index)
	}
}

func (ns Notifiers) PourExecuted(source, target int, color Color, count int) {
	for _, n := range ns {
		n.PourExecuted(source, target, color, count)
	}
}

func (ns Notifiers) PourRejected(source, target int, reason RejectReason) {
	for _, n := range ns {
		n.PourRejected(source, target, reason)
	}
}

func (ns Notifiers) PuzzleSolved(moves int) {
	for _, n := range ns {
		n.PuzzleSolved(moves)
	}
}
