package core

// Action represents a semantic input intent, abstracted from physical keys.
type Action int

const (
	ActionNone       Action = iota
	ActionPrimary           // Space, Up, W - the one-button control (start, flap, restart)
	ActionStart             // Enter - start a new game from the title screen
	ActionRestart           // R - restart after game over
	ActionQuit              // Q, Ctrl+C - exit
	ActionScreenshot        // Ctrl+S - dump the screen to a file
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrimary:
		return "Primary"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions received between two simulation ticks.
// Order is preserved: a start followed by a flap must be applied in that
// order.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make([]Action, 0, 4)}
}

// Push appends an action to the frame. ActionNone is dropped.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Actions returns the queued actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Clear empties the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
