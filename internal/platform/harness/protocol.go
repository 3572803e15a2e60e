// Package harness exposes a duck tower session to automated test drivers.
// Drivers send JSON commands over a websocket and get the full game state
// back after every command; plain HTTP serves the state and its schema.
package harness

import "github.com/vovakirdan/duck-tower/internal/games/ducks"

// Message types accepted from clients.
const (
	TypeStart    = "start"
	TypeRetry    = "retry"
	TypeContinue = "continue"
	TypeMenu     = "menu"
	TypeKey      = "key"
	TypePointer  = "pointer"
	TypeTick     = "tick"
	TypeState    = "state"
	TypeDebug    = "debug"
	TypeResize   = "resize"
)

// Reply types sent to clients.
const (
	ReplyState = "state"
	ReplyError = "error"
)

// Keys accepted by TypeKey messages.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeySpace      = "Space"
)

// Pointer phases accepted by TypePointer messages.
const (
	PhaseDown  = "down"
	PhaseMove  = "move"
	PhaseUp    = "up"
	PhaseClick = "click"
)

// Debug operations accepted by TypeDebug messages.
const (
	OpSetX         = "setX"
	OpAlignWithTop = "alignWithTop"
	OpForceStatic  = "forceStatic"
	OpForceMode    = "forceMode"
	OpCameraTarget = "cameraTarget"
)

// maxTicks bounds a single tick message.
const maxTicks = 100000

// Message is a client command. Only the fields the type needs are read.
type Message struct {
	Type  string  `json:"type"`
	Seed  string  `json:"seed,omitempty"`  // start
	Key   string  `json:"key,omitempty"`   // key
	Phase string  `json:"phase,omitempty"` // pointer
	X     float64 `json:"x,omitempty"`     // pointer x, or resize width, in screen pixels
	Y     float64 `json:"y,omitempty"`     // pointer y, or resize height, in screen pixels
	Ticks int     `json:"ticks,omitempty"` // tick; zero means one
	Op    string  `json:"op,omitempty"`    // debug
	Value float64 `json:"value,omitempty"` // debug argument
	Mode  string  `json:"mode,omitempty"`  // debug forceMode
}

// Reply answers every message: the state after it ran, or why it failed.
type Reply struct {
	Type  string          `json:"type"`
	State *ducks.Snapshot `json:"state,omitempty"`
	Error string          `json:"error,omitempty"`
}

func stateReply(s ducks.Snapshot) Reply {
	return Reply{Type: ReplyState, State: &s}
}

func errorReply(err error) Reply {
	return Reply{Type: ReplyError, Error: err.Error()}
}
