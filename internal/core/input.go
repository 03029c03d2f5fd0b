package core

// Action represents a semantic game action, abstracted from physical key presses.
// Front ends (terminal, desktop window) map their own key/mouse events to actions
// so the game only ever sees intents.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, K, Up arrow
	ActionDown             // S, J, Down arrow
	ActionLeft             // A, H, Left arrow
	ActionRight            // D, L, Right arrow
	ActionUpLeft           // Home, 7
	ActionUpRight          // PgUp, 9
	ActionDownLeft         // End, 1
	ActionDownRight        // PgDn, 3
	ActionConfirm          // Enter, Y
	ActionBack             // Esc, N
	ActionRestart          // R - new game after game over
	ActionQuit             // Ctrl+C
	ActionPause            // P
	ActionContinue         // Space - dismiss the win banner and keep playing
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUpLeft:
		return "UpLeft"
	case ActionUpRight:
		return "UpRight"
	case ActionDownLeft:
		return "DownLeft"
	case ActionDownRight:
		return "DownRight"
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
	case ActionContinue:
		return "Continue"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the eight movement actions.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionDownRight
}

// MoveActions lists the movement actions in priority order.
// When several arrive in one frame, the first one found wins.
var MoveActions = []Action{
	ActionUp, ActionDown, ActionLeft, ActionRight,
	ActionUpLeft, ActionUpRight, ActionDownLeft, ActionDownRight,
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// FirstMove returns the first movement action set in this frame.
func (f InputFrame) FirstMove() (Action, bool) {
	for _, a := range MoveActions {
		if f.Has(a) {
			return a, true
		}
	}
	return ActionNone, false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
