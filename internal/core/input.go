package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys; the simulation consumes intents.
type Action int

const (
	ActionNone      Action = iota
	ActionTurnLeft         // A, Left arrow - queue a 90° left turn
	ActionTurnRight        // D, Right arrow - queue a 90° right turn
	ActionConfirm          // Enter, Space - start run / replay
	ActionBack             // B, Escape - back to menu/scoreboard
	ActionRestart          // R key - replay after game over
	ActionQuit             // Q, Ctrl+C - exit session
	ActionPause            // P - pause/unpause while playing
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}
