package watersort

import "fmt"

// SelectionState is either NoneSelected or Selected(index).
type SelectionState struct {
	armed bool
	index int
}

// NoneSelected is the idle state.
var NoneSelected = SelectionState{}

// Selected returns the state with tube index armed as the pour source.
func Selected(index int) SelectionState {
	return SelectionState{armed: true, index: index}
}

// Armed returns the armed tube index and whether one is armed.
func (s SelectionState) Armed() (int, bool) {
	return s.index, s.armed
}

func (s SelectionState) String() string {
	if !s.armed {
		return "none"
	}
	return fmt.Sprintf("selected(%d)", s.index)
}

// TransitionKind names what an activation did.
type TransitionKind int

const (
	TransitionArm TransitionKind = iota
	TransitionDisarm
	TransitionPour
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionArm:
		return "arm"
	case TransitionDisarm:
		return "disarm"
	case TransitionPour:
		return "pour"
	default:
		return "unknown"
	}
}

// Transition reports one step of the selection state machine.
type Transition struct {
	Kind   TransitionKind
	From   SelectionState
	To     SelectionState
	Source int        // Pour only
	Target int        // Pour only
	Result PourResult // Pour only
	Solved bool       // Pour only; set when the executed pour finished the puzzle
}

// Selector is the two-click selection state machine for one board.
// The first activation arms a source tube; the second either disarms it
// (same tube) or attempts a pour (different tube). Either way the
// selection is consumed.
type Selector struct {
	board    *Board
	notifier Notifier
	state    SelectionState
	moves    int
	solved   bool
}

// NewSelector binds a selector to a board. A nil notifier is replaced by
// NopNotifier.
func NewSelector(board *Board, notifier Notifier) *Selector {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Selector{
		board:    board,
		notifier: notifier,
		solved:   IsSolved(board),
	}
}

// State returns the current selection state.
func (s *Selector) State() SelectionState {
	return s.state
}

// Moves returns the number of executed pours.
func (s *Selector) Moves() int {
	return s.moves
}

// Solved reports whether the last executed pour solved the board.
func (s *Selector) Solved() bool {
	return s.solved
}

// Activate feeds a tube activation into the state machine.
// An out-of-range index returns ErrInvalidOperation and changes nothing.
func (s *Selector) Activate(index int) (Transition, error) {
	if _, err := s.board.Tube(index); err != nil {
		return Transition{}, err
	}

	from := s.state
	armed, ok := from.Armed()

	switch {
	case !ok:
		s.state = Selected(index)
		s.notifier.Armed(index)
		return Transition{Kind: TransitionArm, From: from, To: s.state}, nil

	case armed == index:
		s.state = NoneSelected
		s.notifier.Disarmed(index)
		return Transition{Kind: TransitionDisarm, From: from, To: s.state}, nil
	}

	result := Pour(s.board.Tubes[armed], s.board.Tubes[index])
	s.state = NoneSelected

	tr := Transition{
		Kind:   TransitionPour,
		From:   from,
		To:     s.state,
		Source: armed,
		Target: index,
		Result: result,
	}

	if !result.OK() {
		s.notifier.PourRejected(armed, index, result.Reason)
		return tr, nil
	}

	s.moves++
	s.notifier.PourExecuted(armed, index, result.Color, result.Count)

	s.solved = IsSolved(s.board)
	tr.Solved = s.solved
	if s.solved {
		s.notifier.PuzzleSolved(s.moves)
	}
	return tr, nil
}

// Cancel drops an armed selection, if any.
func (s *Selector) Cancel() bool {
	index, ok := s.state.Armed()
	if !ok {
		return false
	}
	s.state = NoneSelected
	s.notifier.Disarmed(index)
	return true
}
