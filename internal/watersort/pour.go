package watersort

// Outcome is the result kind of a pour attempt.
type Outcome int

const (
	Rejected Outcome = iota
	Executed
)

func (o Outcome) String() string {
	if o == Executed {
		return "executed"
	}
	return "rejected"
}

// RejectReason says which legality rule a pour broke.
type RejectReason int

const (
	RejectNone RejectReason = iota
	RejectSelf
	RejectSourceEmpty
	RejectTargetFull
	RejectColorMismatch
	RejectInsufficientSpace
)

func (r RejectReason) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectSelf:
		return "source and target are the same tube"
	case RejectSourceEmpty:
		return "source tube is empty"
	case RejectTargetFull:
		return "target tube is full"
	case RejectColorMismatch:
		return "top colors differ"
	case RejectInsufficientSpace:
		return "not enough room for the whole run"
	default:
		return "unknown"
	}
}

// PourResult describes a pour attempt. Count and Color are set only when
// Outcome is Executed; Reason only when it is Rejected.
type PourResult struct {
	Outcome Outcome
	Count   int
	Color   Color
	Reason  RejectReason
}

// OK reports whether liquid moved.
func (r PourResult) OK() bool {
	return r.Outcome == Executed
}

// CheckPour returns RejectNone when pouring src into dst is legal, or the
// first rule the attempt breaks. Runs are never split: the target must have
// room for the whole top run of the source.
func CheckPour(src, dst *Tube) RejectReason {
	if src == dst {
		return RejectSelf
	}
	color, count := src.TopRun()
	if count == 0 {
		return RejectSourceEmpty
	}
	if dst.IsFull() {
		return RejectTargetFull
	}
	if !dst.IsEmpty() && dst.Top() != color {
		return RejectColorMismatch
	}
	if dst.EmptyCount() < count {
		return RejectInsufficientSpace
	}
	return RejectNone
}

// CanPour reports whether pouring src into dst is legal.
func CanPour(src, dst *Tube) bool {
	return CheckPour(src, dst) == RejectNone
}

// Pour moves the top run of src onto dst. Illegal attempts return a
// Rejected result and leave both tubes untouched.
func Pour(src, dst *Tube) PourResult {
	if reason := CheckPour(src, dst); reason != RejectNone {
		return PourResult{Outcome: Rejected, Reason: reason}
	}

	color, count := src.TopRun()
	if err := src.RemoveTop(count); err != nil {
		return PourResult{Outcome: Rejected, Reason: RejectSourceEmpty}
	}
	if err := dst.AddUnits(count, color); err != nil {
		// Put the run back so neither tube shows a half-finished pour.
		//nolint:errcheck // the slots were just vacated
		src.AddUnits(count, color)
		return PourResult{Outcome: Rejected, Reason: RejectInsufficientSpace}
	}

	return PourResult{Outcome: Executed, Count: count, Color: color}
}
