package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow
	ActionDown         // S, Down arrow
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionHelp         // ? - toggle the full key help
	ActionQuit         // Q, Ctrl+C
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
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the input edges that fired during one tick.
// An action is either pressed this frame or not; pressing the same key
// twice before the tick is consumed still counts as one edge.
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// ParseAction maps a lower-case action name ("up", "left", ...) to an Action.
// Used by scripted input such as the headless simulator.
func ParseAction(name string) (Action, bool) {
	switch name {
	case "up", "u":
		return ActionUp, true
	case "down", "d":
		return ActionDown, true
	case "left", "l":
		return ActionLeft, true
	case "right", "r":
		return ActionRight, true
	}
	return ActionNone, false
}
