package ducks

import (
	"fmt"
	"math"

	"github.com/vovakirdan/duck-tower/internal/core"
)

// Terminal cells are treated as CellWidth x CellHeight screen pixels.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Visual characters for rendering
const (
	DuckBodyChar = '█'
	DuckHeldChar = '▓'
	DuckEyeChar  = '•'
	DuckBeakChar = '▶'
	GroundChar   = '▀'
	ParticleChar = '✦'
	GuideChar    = '┊'
)

// ScreenSize returns the pixel viewport of a terminal of cols x rows.
func ScreenSize(cols, rows int) (float64, float64) {
	return float64(cols * CellWidth), float64(rows * CellHeight)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.mode == ModeMenu {
		g.renderMenu(dst)
		return
	}

	lc := g.LevelConfig()
	g.renderGround(dst)
	g.renderStack(dst, lc)
	g.renderCurrent(dst, lc)
	g.renderParticles(dst)
	g.renderHUD(dst, lc)

	switch g.mode {
	case ModeLevelUp:
		g.drawCenteredMessage(dst, fmt.Sprintf("LEVEL %d COMPLETE", g.level),
			"Press Enter to continue  |  M for menu", core.ColorBrightGreen)
	case ModeGameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  R to retry  |  M for menu", g.score), core.ColorBrightRed)
	}
}

// cellRect converts a design-space rect to a cell rect.
func (g *Game) cellRect(r core.Rect) (x, y, w, h int) {
	sx0, sy0 := g.view.ToScreen(r.X, r.Y, g.camera.Y)
	sx1, sy1 := g.view.ToScreen(r.Right(), r.Bottom(), g.camera.Y)

	x = int(math.Floor(sx0 / CellWidth))
	y = int(math.Floor(sy0 / CellHeight))
	w = max(1, int(math.Ceil(sx1/CellWidth))-x)
	h = max(1, int(math.Ceil(sy1/CellHeight))-y)
	return x, y, w, h
}

func (g *Game) renderGround(dst *core.Screen) {
	ground := core.NewRect(0, g.baseY+g.cfg.Duck.BaseHeight/2, g.view.DesignW, 1)
	x, y, w, _ := g.cellRect(ground)
	dst.DrawHLine(x, y, w, GroundChar, core.ColorGreen)
}

// renderStack draws the tower, leaning with the wobble angle.
func (g *Game) renderStack(dst *core.Screen, lc LevelConfig) {
	if g.stack == nil {
		return
	}
	for i, d := range g.stack.Ducks() {
		lean := math.Sin(g.wobble.Angle) * (g.baseY - d.Y)
		r := d.Rect()
		r.X += lean

		color := lc.Color
		if i == 0 {
			color = lc.SecondaryColor
		}
		g.drawDuck(dst, r, DuckBodyChar, color)
	}
}

func (g *Game) renderCurrent(dst *core.Screen, lc LevelConfig) {
	d := g.current
	if d == nil {
		return
	}

	// Drop guide from a hovering duck to the top of the tower
	if d.State == StateHover || d.State == StateDragged {
		targetY := g.resolver.TargetY(g.stack.Top())
		gx, gy, _, gh := g.cellRect(core.NewRect(d.X, d.Y+d.H/2, 1, targetY-d.Y-d.H))
		for row := gy; row < gy+gh; row++ {
			dst.SetColored(gx, row, GuideChar, core.ColorGray)
		}
	}

	ch := DuckBodyChar
	if d.IsBeingDragged() {
		ch = DuckHeldChar
	}
	g.drawDuck(dst, d.Rect(), ch, lc.Color)
}

// drawDuck fills the duck body and adds an eye and a beak.
func (g *Game) drawDuck(dst *core.Screen, r core.Rect, body rune, c core.Color) {
	x, y, w, h := g.cellRect(r)
	dst.FillRect(x, y, w, h, body, c)
	if w >= 3 {
		dst.SetColored(x+w-2, y, DuckEyeChar, core.ColorBrightWhite)
		dst.SetColored(x+w, y+h/2, DuckBeakChar, core.ColorOrange)
	}
}

func (g *Game) renderParticles(dst *core.Screen) {
	for _, p := range g.particles.Particles() {
		sx, sy := g.view.ToScreen(p.X, p.Y, g.camera.Y)
		dst.SetColored(int(sx/CellWidth), int(sy/CellHeight), ParticleChar, p.Color)
	}
}

func (g *Game) renderHUD(dst *core.Screen, lc LevelConfig) {
	left := fmt.Sprintf(" Score: %d  Level: %d  Merge: %d/%d ",
		g.score, g.level, g.mergeCount, g.progress.MergeThreshold())
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	ws := g.wobble.State()
	stability := fmt.Sprintf(" Stability: %3d%% ", ws.Stability)
	color := core.ColorBrightGreen
	switch {
	case ws.Collapsing:
		color = core.ColorBrightRed
	case ws.Stability < 50:
		color = core.ColorBrightYellow
	}
	dst.DrawTextColored(dst.Width()-len(stability), 0, stability, color)

	info := fmt.Sprintf(" %s  |  seed: %s ", lc.Name, g.seed)
	dst.DrawTextColored(0, 1, info, core.ColorGray)
}

func (g *Game) renderMenu(dst *core.Screen) {
	y := dst.Height() / 3
	dst.DrawTextCentered(y, "D U C K   T O W E R", core.ColorBrightYellow)
	dst.DrawTextCentered(y+2, "Stack the ducks. Land close for a perfect.", core.ColorWhite)
	dst.DrawTextCentered(y+3, "Five landings merge into a wider base.", core.ColorWhite)
	dst.DrawTextCentered(y+5, "←/→ move  |  Space drop  |  drag with the mouse", core.ColorGray)
}

// drawCenteredMessage draws a boxed message in the middle of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	dst.FillRect(x, y, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(x, y, boxW, boxH, c)
	dst.DrawTextCentered(y+1, title, c)
	dst.DrawTextCentered(y+3, subtitle, core.ColorWhite)
}
