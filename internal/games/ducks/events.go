package ducks

// EventKind identifies something that happened during a tick.
type EventKind string

const (
	EventLanded   EventKind = "landed"
	EventMerged   EventKind = "merged"
	EventLevelUp  EventKind = "levelup"
	EventGameOver EventKind = "gameover"
)

// Event is emitted by the game for loggers and drivers.
// Only the fields meaningful for the kind are set.
type Event struct {
	Kind       EventKind
	Tick       uint64
	Score      int
	Level      int
	Landing    LandingKind
	Offset     float64
	MergeLevel int
	BaseWidth  float64
	Fallback   bool // Game over by falling past the floor
}

// StepResult is the outcome of one tick. Events is owned by the caller.
type StepResult struct {
	Mode   Mode
	Events []Event
}
