package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/duck-tower/internal/core"
	"github.com/vovakirdan/duck-tower/internal/games/ducks"
)

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action for the given mode.
// Returns the action (may be ActionNone) and whether it's a quit request.
// The menu is not handled here: its keys belong to the seed input.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, mode ducks.Mode) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "esc", "m":
		return core.ActionMenu, false
	}

	switch mode {
	case ducks.ModePlaying:
		switch key {
		case "left", "a", "h":
			return core.ActionLeft, false
		case "right", "d", "l":
			return core.ActionRight, false
		case " ", "down", "s", "j":
			return core.ActionDrop, false
		}
	case ducks.ModeLevelUp:
		switch key {
		case "enter", " ":
			return core.ActionContinue, false
		}
	case ducks.ModeGameOver:
		switch key {
		case "r", "enter":
			return core.ActionRetry, false
		}
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, mode ducks.Mode, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg, mode)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse translates a mouse message to a pointer event in screen pixels.
// A cell maps to its centre pixel. Returns false for wheel and other events.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.PointerEvent, bool) {
	x := (float64(msg.X) + 0.5) * ducks.CellWidth
	y := (float64(msg.Y) + 0.5) * ducks.CellHeight

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return core.PointerEvent{}, false
		}
		return core.PointerEvent{Phase: core.PointerDown, X: x, Y: y}, true
	case tea.MouseActionMotion:
		return core.PointerEvent{Phase: core.PointerMove, X: x, Y: y}, true
	case tea.MouseActionRelease:
		return core.PointerEvent{Phase: core.PointerUp, X: x, Y: y}, true
	}
	return core.PointerEvent{}, false
}

// MapMouseToFrame appends a mouse message to an input frame.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if p, ok := km.MapMouse(msg); ok {
		frame.Pointer(p.Phase, p.X, p.Y)
	}
}
