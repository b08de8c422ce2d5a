package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // A, Left arrow - run left
	ActionMoveRight        // D, Right arrow - run right
	ActionJump             // W, Up, Space - jump
	ActionPause            // P, Escape - pause/unpause game
	ActionRestart          // R key - restart the level
	ActionQuit             // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction maps a lower-case action name ("left", "right", "jump",
// "pause", "restart", "quit") to an Action.
func ParseAction(name string) (Action, bool) {
	switch name {
	case "left":
		return ActionMoveLeft, true
	case "right":
		return ActionMoveRight, true
	case "jump":
		return ActionJump, true
	case "pause":
		return ActionPause, true
	case "restart":
		return ActionRestart, true
	case "quit":
		return ActionQuit, true
	}
	return ActionNone, false
}

// KeyKind distinguishes key presses from key releases.
type KeyKind int

const (
	KeyDown KeyKind = iota
	KeyUp
)

// String returns "down" or "up".
func (k KeyKind) String() string {
	if k == KeyUp {
		return "up"
	}
	return "down"
}

// KeyEvent is a single press or release of an action key.
type KeyEvent struct {
	Kind   KeyKind
	Action Action
}

// Down is shorthand for a KeyDown event.
func Down(a Action) KeyEvent { return KeyEvent{Kind: KeyDown, Action: a} }

// Up is shorthand for a KeyUp event.
func Up(a Action) KeyEvent { return KeyEvent{Kind: KeyUp, Action: a} }

// InputFrame carries the key events that arrived since the previous tick,
// in arrival order. Held keys are not repeated: games keep their own
// held-key state and update it from the events.
type InputFrame struct {
	Events []KeyEvent
}

// NewInputFrame creates an input frame from the given events.
func NewInputFrame(events ...KeyEvent) InputFrame {
	return InputFrame{Events: events}
}

// Push appends an event to the frame.
func (f *InputFrame) Push(e KeyEvent) {
	f.Events = append(f.Events, e)
}

// Pressed returns true if the frame holds a KeyDown for the given action.
func (f InputFrame) Pressed(a Action) bool {
	for _, e := range f.Events {
		if e.Kind == KeyDown && e.Action == a {
			return true
		}
	}
	return false
}

// Empty reports whether the frame carries no events.
func (f InputFrame) Empty() bool {
	return len(f.Events) == 0
}

// Clear resets the frame for the next tick, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
