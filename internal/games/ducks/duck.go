package ducks

import "github.com/vovakirdan/duck-tower/internal/core"

// DuckState is the lifecycle state of a duck.
// A duck is in exactly one state at a time.
type DuckState int

const (
	StateHover   DuckState = iota // Waiting above the tower, player controlled
	StateDragged                  // Held by the pointer
	StateFalling                  // Released, under gravity
	StateLanded                   // Part of the stack
)

// String returns a human-readable name for the state.
func (s DuckState) String() string {
	switch s {
	case StateHover:
		return "hover"
	case StateDragged:
		return "dragged"
	case StateFalling:
		return "falling"
	case StateLanded:
		return "landed"
	default:
		return "unknown"
	}
}

// Duck is a single duck. X and Y are the centre in design space.
type Duck struct {
	X, Y       float64
	W, H       float64
	SpawnX     float64 // Horizontal spawn position, never changes
	PrevY      float64 // Y at the previous tick
	Velocity   float64 // Vertical velocity, design px per tick
	State      DuckState
	MergeLevel int // Merges absorbed; base duck only
}

// newDuck creates a hovering duck at (x, y).
func newDuck(x, y, w, h float64) *Duck {
	return &Duck{
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
		SpawnX: x,
		PrevY:  y,
		State:  StateHover,
	}
}

// IsFalling reports whether the duck is in free fall.
func (d *Duck) IsFalling() bool { return d.State == StateFalling }

// IsStatic reports whether the duck is part of the stack.
func (d *Duck) IsStatic() bool { return d.State == StateLanded }

// IsBeingDragged reports whether the pointer holds the duck.
func (d *Duck) IsBeingDragged() bool { return d.State == StateDragged }

// Rect returns the duck's hit box.
func (d *Duck) Rect() core.Rect {
	return core.CenteredRect(d.X, d.Y, d.W, d.H)
}

// setX moves the duck horizontally, keeping it fully inside [0, width].
func (d *Duck) setX(x, width float64) {
	d.X = core.ClampF(x, d.W/2, width-d.W/2)
}

// startDrag moves a hovering duck to Dragged.
func (d *Duck) startDrag() bool {
	if d.State != StateHover {
		return false
	}
	d.State = StateDragged
	return true
}

// release starts the fall from Hover or Dragged.
func (d *Duck) release() bool {
	if d.State != StateHover && d.State != StateDragged {
		return false
	}
	d.State = StateFalling
	d.PrevY = d.Y
	d.Velocity = 0
	return true
}

// fall advances one tick of free fall.
func (d *Duck) fall(gravity float64) {
	d.PrevY = d.Y
	d.Velocity += gravity
	d.Y += d.Velocity
}

// land freezes the duck at its resting position.
func (d *Duck) land(x, y float64) {
	d.X = x
	d.Y = y
	d.Velocity = 0
	d.State = StateLanded
}
