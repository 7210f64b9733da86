package core

// Action is a semantic puzzle action, abstracted from physical key presses
// and mouse clicks.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Move the tube cursor left
	ActionRight           // Move the tube cursor right
	ActionActivate        // Activate the tube under the cursor
	ActionPick            // Activate a tube by index (digit keys, mouse)
	ActionCancel          // Drop an armed selection
	ActionRestart         // Deal a fresh shuffle
	ActionReplay          // Re-deal the current seed
	ActionBack            // Return to the level picker
	ActionQuit            // Exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionActivate:
		return "Activate"
	case ActionPick:
		return "Pick"
	case ActionCancel:
		return "Cancel"
	case ActionRestart:
		return "Restart"
	case ActionReplay:
		return "Replay"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is one decoded user intent. Tube is only meaningful for ActionPick.
type Input struct {
	Action Action
	Tube   int
}

// Pick returns an input activating tube index directly.
func Pick(index int) Input {
	return Input{Action: ActionPick, Tube: index}
}

// Is reports whether the input carries action a.
func (in Input) Is(a Action) bool {
	return in.Action == a
}
