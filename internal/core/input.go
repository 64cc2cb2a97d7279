package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - walk left
	ActionRight          // D, Right arrow - walk right
	ActionUp             // W, Up arrow - unused by play, still a key press
	ActionDown           // S, Down arrow - unused by play, still a key press
	ActionJump           // Space - jump
	ActionConfirm        // Enter - submit name
	ActionErase          // Backspace - delete last character
	ActionPause          // P - pause/unpause
	ActionQuit           // Esc, Ctrl+C - exit
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionErase:
		return "Erase"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// EventType distinguishes discrete input events.
type EventType int

const (
	EventKeyDown EventType = iota
	EventKeyUp
	EventMouseDown
)

// Event is a single discrete input occurrence within a tick.
// Rune carries the typed character for printable keys (0 otherwise).
// X and Y are world coordinates for mouse events.
type Event struct {
	Type   EventType
	Action Action
	Rune   rune
	X, Y   int
}

// KeyDown builds a key-down event.
func KeyDown(a Action, r rune) Event {
	return Event{Type: EventKeyDown, Action: a, Rune: r}
}

// KeyUp builds a key-up event.
func KeyUp(a Action, r rune) Event {
	return Event{Type: EventKeyUp, Action: a, Rune: r}
}

// MouseDown builds a mouse press event at world coordinates (x, y).
func MouseDown(x, y int) Event {
	return Event{Type: EventMouseDown, X: x, Y: y}
}

// InputFrame represents the input state during one simulation tick:
// the set of currently held actions plus the discrete events that arrived
// since the previous tick, in arrival order.
type InputFrame struct {
	// Held maps actions to whether their key is currently down.
	Held map[Action]bool
	// Events lists key and mouse events in arrival order.
	Events []Event
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Push appends a discrete event.
func (f *InputFrame) Push(e Event) {
	f.Events = append(f.Events, e)
}

// Clear resets held actions and events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Held {
		delete(f.Held, k)
	}
	f.Events = f.Events[:0]
}
