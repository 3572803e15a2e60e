package ducks

import "github.com/vovakirdan/duck-tower/internal/core"

// applyAction dispatches a semantic action. Actions that make no sense in
// the current mode are ignored.
func (g *Game) applyAction(a core.Action) {
	switch a {
	case core.ActionLeft:
		g.MoveLeft()
	case core.ActionRight:
		g.MoveRight()
	case core.ActionDrop:
		g.Drop()
	case core.ActionStart:
		g.StartGame("")
	case core.ActionContinue:
		g.ContinueLevel()
	case core.ActionRetry:
		g.RetryGame()
	case core.ActionMenu:
		g.BackToMenu()
	}
}

func (g *Game) applyPointer(p core.PointerEvent) {
	switch p.Phase {
	case core.PointerDown:
		g.PointerDown(p.X, p.Y)
	case core.PointerMove:
		g.PointerMove(p.X, p.Y)
	case core.PointerUp:
		g.PointerUp(p.X, p.Y)
	}
}

// controllable returns the current duck if keys may move it.
func (g *Game) controllable() *Duck {
	if g.mode != ModePlaying || g.current == nil {
		return nil
	}
	switch g.current.State {
	case StateHover, StateFalling:
		return g.current
	}
	return nil
}

// MoveLeft shifts the current duck one arrow step left.
func (g *Game) MoveLeft() {
	if d := g.controllable(); d != nil {
		d.setX(d.X-g.cfg.Physics.ArrowStep, g.view.DesignW)
	}
}

// MoveRight shifts the current duck one arrow step right.
func (g *Game) MoveRight() {
	if d := g.controllable(); d != nil {
		d.setX(d.X+g.cfg.Physics.ArrowStep, g.view.DesignW)
	}
}

// Drop releases a hovering duck.
func (g *Game) Drop() {
	if g.mode != ModePlaying || g.current == nil || g.current.State != StateHover {
		return
	}
	g.current.release()
}

// PointerDown grabs the duck when the pointer is on it and drops it
// otherwise. Coordinates are screen pixels.
func (g *Game) PointerDown(sx, sy float64) {
	if g.mode != ModePlaying || g.current == nil || g.current.State != StateHover {
		return
	}

	x, y := g.view.ToDesign(sx, sy, g.camera.Y)
	if g.current.Rect().Contains(x, y) {
		g.current.startDrag()
		g.dragging = true
		return
	}
	g.current.release()
}

// PointerMove drags the held duck, clamped to the play area.
func (g *Game) PointerMove(sx, sy float64) {
	if !g.dragging || g.current == nil || !g.current.IsBeingDragged() {
		return
	}
	x, _ := g.view.ToDesign(sx, sy, g.camera.Y)
	g.current.setX(x, g.view.DesignW)
}

// PointerUp lets go of the held duck, which starts falling where it is.
func (g *Game) PointerUp(sx, sy float64) {
	if !g.dragging {
		return
	}
	g.dragging = false
	if g.current == nil || !g.current.IsBeingDragged() {
		return
	}
	g.current.release()
}

// Click is a pointer press and release at the same point.
func (g *Game) Click(sx, sy float64) {
	g.PointerDown(sx, sy)
	g.PointerUp(sx, sy)
}
