package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // ArrowLeft, A, H - move the duck left
	ActionRight           // ArrowRight, D, L - move the duck right
	ActionDrop            // Space, Down - release the hovering duck
	ActionStart           // Enter in the menu - start with the entered seed
	ActionContinue        // Enter after a level-up
	ActionRetry           // R after game over - replay the same seed
	ActionMenu            // M, Escape - back to the menu
	ActionQuit            // Q, Ctrl+C - exit
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
	case ActionDrop:
		return "Drop"
	case ActionStart:
		return "Start"
	case ActionContinue:
		return "Continue"
	case ActionRetry:
		return "Retry"
	case ActionMenu:
		return "Menu"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerPhase identifies a pointer event.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
)

// String returns a human-readable name for the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is a mouse or touch event in screen pixels.
type PointerEvent struct {
	Phase PointerPhase
	X, Y  float64
}

// InputEvent is either an action or a pointer event.
type InputEvent struct {
	Action  Action
	Pointer *PointerEvent
}

// InputFrame holds the input received between two simulation ticks.
// Events keep their arrival order: pressing Right then Left is not the
// same as Left then Right once clamping kicks in.
type InputFrame struct {
	Events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Events = append(f.Events, InputEvent{Action: a})
}

// Pointer appends a pointer event to this frame.
func (f *InputFrame) Pointer(phase PointerPhase, x, y float64) {
	f.Events = append(f.Events, InputEvent{Pointer: &PointerEvent{Phase: phase, X: x, Y: y}})
}

// Empty reports whether the frame carries no events.
func (f InputFrame) Empty() bool {
	return len(f.Events) == 0
}

// Clear resets all events for the next frame.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
