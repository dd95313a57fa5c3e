package core

// Action is a semantic input event, abstracted from physical key presses.
// At most one action is delivered to the game per tick; simultaneous key
// presses are not modeled.
type Action int

const (
	ActionNone  Action = iota
	ActionFlap         // Space, W, Up - upward impulse
	ActionStart        // P, Enter - start or restart a run
	ActionQuit         // Q, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
