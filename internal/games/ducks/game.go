// Package ducks implements the duck tower stacking game.
// Ducks hover above a growing tower, drop under gravity and must land on
// the duck below. Every few landings the tower merges into a wider base;
// a base wide enough completes the level. The simulation is deterministic
// for a given seed string and input sequence.
package ducks

import (
	"slices"

	"github.com/vovakirdan/duck-tower/internal/config"
	"github.com/vovakirdan/duck-tower/internal/core"
)

// DefaultSeed is used when a game is started without any seed.
const DefaultSeed = "duck-tower"

// Game is the whole simulation state. It is not safe for concurrent use.
type Game struct {
	cfg     config.DucksConfig
	runtime core.RuntimeConfig
	view    core.Viewport

	mode       Mode
	seed       string
	score      int
	level      int
	mergeCount int
	tick       uint64

	baseY  float64 // Centre y of the base duck
	hoverY float64 // Hover y relative to the camera

	stack     *Stack
	current   *Duck
	camera    Camera
	wobble    *Wobble
	particles *ParticleSystem
	levels    *LevelBook
	progress  Progression
	resolver  Resolver
	dragging  bool

	spawnRNG  *RNG
	wobbleRNG *RNG
	fxRNG     *RNG

	events []Event
}

// New creates a game with the given tunables. Call Reset before use.
func New(cfg config.DucksConfig) *Game {
	return &Game{
		cfg:       cfg,
		mode:      ModeMenu,
		camera:    NewCamera(cfg.Camera),
		wobble:    NewWobble(cfg.Wobble),
		particles: NewParticleSystem(cfg.Particles),
		resolver:  NewResolver(cfg.Landing),
	}
}

// Reset sizes the game for a viewport and returns it to the menu.
// The runtime seed becomes the seed used by the next start without one.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.view = core.NewViewport(rc.ViewportW, rc.ViewportH,
		g.cfg.Viewport.MinDesignWidth, g.cfg.Viewport.MaxDesignWidth)
	g.layout()
	g.seed = rc.Seed
	g.toMenu()
}

// Resize adapts to a new viewport. In the menu the design space is derived
// again; during a run it is kept and letter-boxed so the run's merge math
// does not change under the player.
func (g *Game) Resize(screenW, screenH float64) {
	g.runtime.ViewportW = screenW
	g.runtime.ViewportH = screenH
	if g.mode == ModeMenu {
		g.view = core.NewViewport(screenW, screenH,
			g.cfg.Viewport.MinDesignWidth, g.cfg.Viewport.MaxDesignWidth)
		g.layout()
		return
	}
	g.view = g.view.Fit(screenW, screenH)
}

// layout derives the fixed positions from the design space.
func (g *Game) layout() {
	g.baseY = g.view.DesignH - g.cfg.Duck.BaseHeight
	g.hoverY = g.view.DesignH * g.cfg.Duck.HoverRatio
	g.progress = NewProgression(g.cfg.Progression, g.cfg.Duck.BaseWidth, g.view.DesignW)
}

// StartGame begins a run from the menu. An empty seed falls back to the
// runtime seed, then to DefaultSeed.
func (g *Game) StartGame(seed string) {
	if !g.mode.CanStart() {
		return
	}
	switch {
	case seed != "":
		g.seed = seed
	case g.seed == "":
		g.seed = DefaultSeed
	}
	g.newRun()
}

// RetryGame restarts a lost run with the same seed.
func (g *Game) RetryGame() {
	if !g.mode.CanRetry() {
		return
	}
	g.newRun()
}

// ContinueLevel resumes play after a level-up with a fresh base.
func (g *Game) ContinueLevel() {
	if !g.mode.CanContinue() {
		return
	}
	g.mode = ModePlaying
	g.mergeCount = 0
	g.stack = NewStack(g.newBase())
	g.camera.Follow(g.stack.Top().Y, g.view.DesignH)
	g.wobble.Reset()
	g.retuneWobble()
	g.spawn()
}

// BackToMenu abandons the run. The seed is kept for the next start.
func (g *Game) BackToMenu() {
	if g.mode == ModeMenu {
		return
	}
	g.toMenu()
}

func (g *Game) toMenu() {
	g.mode = ModeMenu
	g.score = 0
	g.level = 0
	g.mergeCount = 0
	g.stack = nil
	g.current = nil
	g.dragging = false
	g.levels = nil
	g.camera.Reset()
	g.wobble.Reset()
	g.particles.Clear()
}

// newRun resets every piece of run state and re-derives all random
// streams from the seed, so a retry replays the same spawns.
func (g *Game) newRun() {
	root := NewRNG(g.seed)
	g.spawnRNG = root.Derive("spawn")
	g.wobbleRNG = root.Derive("wobble")
	g.fxRNG = root.Derive("particles")
	g.levels = NewLevelBook(g.seed)

	g.mode = ModePlaying
	g.score = 0
	g.level = 0
	g.mergeCount = 0
	g.tick = 0
	g.dragging = false
	g.stack = NewStack(g.newBase())
	g.camera.Reset()
	g.wobble.Reset()
	g.particles.Clear()
	g.spawn()
}

func (g *Game) newBase() *Duck {
	return newDuck(g.view.DesignW/2, g.baseY, g.cfg.Duck.BaseWidth, g.cfg.Duck.BaseHeight)
}

// spawn creates the next hovering duck at a seeded x.
func (g *Game) spawn() {
	w := g.cfg.Duck.BaseWidth
	x := g.spawnRNG.Float(w/2, g.view.DesignW-w/2)
	h := g.cfg.Duck.BaseHeight
	g.current = newDuck(x, g.hoverLine(h), w, h)
	g.dragging = false
}

// hoverLine is the y of a hovering duck of height h. It follows the camera
// but stays a full duck above the landing line, so every drop crosses it.
func (g *Game) hoverLine(h float64) float64 {
	return min(g.camera.Y+g.hoverY, g.resolver.TargetY(g.stack.Top())-h)
}

// Step applies the frame's input in order and advances one tick.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.events = g.events[:0]

	for _, e := range in.Events {
		if e.Pointer != nil {
			g.applyPointer(*e.Pointer)
			continue
		}
		g.applyAction(e.Action)
	}

	if g.mode == ModePlaying {
		g.update()
	}

	return StepResult{Mode: g.mode, Events: slices.Clone(g.events)}
}

// update runs one tick: duck physics, collision, camera, wobble, particles.
func (g *Game) update() {
	g.tick++

	if d := g.current; d != nil {
		switch d.State {
		case StateHover, StateDragged:
			d.Y = g.hoverLine(d.H)
			d.PrevY = d.Y
		case StateFalling:
			d.fall(g.cfg.Physics.Gravity)
			g.resolve(d)
		}
	}

	g.camera.Update()
	g.wobble.Update(g.wobbleRNG)
	g.particles.Update()
}

// resolve checks the falling duck against the tower.
func (g *Game) resolve(d *Duck) {
	top := g.stack.Top()
	landing := g.resolver.Resolve(d, top)

	switch {
	case landing.Kind.Landed():
		g.land(d, top, landing)
	case landing.Kind == LandingMiss:
		g.gameOver(landing, false)
	case d.Y > g.baseY+g.camera.Y+g.cfg.Landing.FallbackMargin:
		g.gameOver(landing, true)
	}
}

// land commits an accepted landing and everything it triggers.
func (g *Game) land(d, top *Duck, landing Landing) {
	x := d.X
	perfect := landing.Kind == LandingPerfect
	if perfect {
		x = top.X
	}
	d.land(x, landing.TargetY)
	if perfect {
		lc := g.levels.Level(g.level)
		g.particles.Burst(d.X, d.Y-d.H/2, []core.Color{lc.Color, lc.SecondaryColor}, g.fxRNG)
	}

	g.stack.Push(d)
	g.current = nil
	g.score++
	g.mergeCount++
	g.emit(Event{Kind: EventLanded, Landing: landing.Kind, Offset: landing.Offset})

	if g.mergeCount >= g.progress.MergeThreshold() {
		g.merge()
	}
	if g.progress.ReachedLevelUp(g.stack.Base().W) {
		g.levelUp()
	}

	g.camera.Follow(g.stack.Top().Y, g.view.DesignH)
	g.retuneWobble()

	if g.mode == ModePlaying {
		g.spawn()
	}
}

// merge folds the recent landings into a wider base.
func (g *Game) merge() {
	g.stack.PopN(g.progress.MergeThreshold())
	g.mergeCount = 0

	base := g.stack.Base()
	base.MergeLevel++
	base.W = g.progress.BaseWidth(g.level, base.MergeLevel)

	g.emit(Event{Kind: EventMerged, MergeLevel: base.MergeLevel, BaseWidth: base.W})
}

func (g *Game) levelUp() {
	g.mode = ModeLevelUp
	g.level++
	g.levels.Ensure(g.level)
	g.current = nil
	g.dragging = false
	g.emit(Event{Kind: EventLevelUp})
}

func (g *Game) gameOver(landing Landing, fallback bool) {
	g.mode = ModeGameOver
	g.current = nil
	g.dragging = false
	g.emit(Event{Kind: EventGameOver, Offset: landing.Offset, Fallback: fallback})
}

func (g *Game) retuneWobble() {
	g.wobble.Retune(g.stack, g.progress.MergeThreshold(), g.progress.MergesForLevel(g.level))
}

func (g *Game) emit(e Event) {
	e.Tick = g.tick
	e.Score = g.score
	e.Level = g.level
	g.events = append(g.events, e)
}

// Accessors

// Mode returns the current mode.
func (g *Game) Mode() Mode { return g.mode }

// Seed returns the seed of the current (or next) run.
func (g *Game) Seed() string { return g.seed }

// Score returns the number of landings this run.
func (g *Game) Score() int { return g.score }

// Level returns the number of completed levels.
func (g *Game) Level() int { return g.level }

// MergeCount returns landings since the last merge.
func (g *Game) MergeCount() int { return g.mergeCount }

// Tick returns the number of simulated ticks this run.
func (g *Game) Tick() uint64 { return g.tick }

// Viewport returns the design-to-screen mapping.
func (g *Game) Viewport() core.Viewport { return g.view }

// Stack returns the tower, or nil in the menu.
func (g *Game) Stack() *Stack { return g.stack }

// Current returns the active duck, or nil when there is none.
func (g *Game) Current() *Duck { return g.current }

// Camera returns the camera.
func (g *Game) Camera() Camera { return g.camera }

// Wobble returns the wobble physics.
func (g *Game) Wobble() *Wobble { return g.wobble }

// Particles returns the live particles.
func (g *Game) Particles() []Particle { return g.particles.Particles() }

// Progression returns the merge and level-up math of the current layout.
func (g *Game) Progression() Progression { return g.progress }

// LevelConfig returns the look of the current level.
func (g *Game) LevelConfig() LevelConfig {
	if g.levels == nil {
		return NewLevelBook(g.seed).Level(0)
	}
	return g.levels.Level(g.level)
}

// IsDragging reports whether the pointer holds the current duck.
func (g *Game) IsDragging() bool { return g.dragging }
