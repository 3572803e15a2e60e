package ducks

// Debug pokes at game state directly, for test drivers only. Nothing in
// normal play goes through it.
type Debug struct {
	g *Game
}

// Debug returns the test-support handle of the game.
func (g *Game) Debug() Debug {
	return Debug{g: g}
}

// SetCurrentX places the current duck at x, clamped to the play area.
func (d Debug) SetCurrentX(x float64) bool {
	cur := d.g.current
	if cur == nil {
		return false
	}
	cur.setX(x, d.g.view.DesignW)
	return true
}

// AlignWithTop places the current duck offset pixels right of the top of
// the tower (negative is left). The position is not clamped, so any offset
// can be set up.
func (d Debug) AlignWithTop(offset float64) bool {
	cur := d.g.current
	if cur == nil || d.g.stack == nil {
		return false
	}
	cur.X = d.g.stack.Top().X + offset
	return true
}

// ForceStatic freezes the current duck in place without landing it.
// Nothing is scored and no new duck spawns.
func (d Debug) ForceStatic() bool {
	cur := d.g.current
	if cur == nil {
		return false
	}
	cur.State = StateLanded
	cur.Velocity = 0
	d.g.dragging = false
	return true
}

// ForceMode switches mode without any of the usual transition work.
// Leaving the menu this way sets up a run first so there is a tower.
func (d Debug) ForceMode(m Mode) bool {
	if !m.Valid() {
		return false
	}
	if m != ModeMenu && d.g.stack == nil {
		if d.g.seed == "" {
			d.g.seed = DefaultSeed
		}
		d.g.newRun()
	}
	d.g.mode = m
	return true
}

// SetCameraTarget points the camera at y.
func (d Debug) SetCameraTarget(y float64) {
	d.g.camera.TargetY = y
}
