package ducks

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/duck-tower/internal/config"
)

func TestCameraFollow(t *testing.T) {
	c := NewCamera(config.DefaultDucksConfig().Camera)

	c.Follow(845, 915)
	assert.Equal(t, 0.0, c.TargetY, "camera never goes below the ground")

	c.Follow(300, 915)
	assert.InDelta(t, 300-915*0.6, c.TargetY, 1e-9)
}

func TestCameraApproachesTarget(t *testing.T) {
	c := NewCamera(config.DefaultDucksConfig().Camera)
	c.TargetY = -200

	prevDist := math.Abs(c.TargetY - c.Y)
	for i := 0; i < 200; i++ {
		c.Update()
		dist := math.Abs(c.TargetY - c.Y)
		require.LessOrEqual(t, dist, prevDist, "tick %d", i)
		prevDist = dist
	}
	assert.Equal(t, c.TargetY, c.Y, "camera should snap once close enough")

	c.Y = -100
	c.Update()
	assert.InDelta(t, -110, c.Y, 1e-9, "one tick moves a tenth of the way")

	c.Reset()
	assert.Zero(t, c.Y)
	assert.Zero(t, c.TargetY)
}

func TestWobbleStillTowerStaysStill(t *testing.T) {
	w := NewWobble(config.DefaultDucksConfig().Wobble)
	rng := NewRNG("still")

	for i := 0; i < 100; i++ {
		w.Update(rng)
	}
	assert.Zero(t, w.Angle)
	assert.Equal(t, WobbleState{Stability: 100}, w.State())
}

func TestWobbleRetune(t *testing.T) {
	cfg := config.DefaultDucksConfig().Wobble
	w := NewWobble(cfg)

	base := &Duck{X: 200, W: 80, H: 70}
	stack := NewStack(base)
	w.Retune(stack, 5, 6)
	assert.Zero(t, w.Instability)

	for i := 0; i < 4; i++ {
		stack.Push(&Duck{X: 220, W: 80, H: 70, State: StateLanded})
	}
	w.Retune(stack, 5, 6)
	assert.InDelta(t, 20, w.CenterOfMassOffset, 1e-9)
	// 0.5 * 4/5 + 0.3 * 20/40 + 0.2 * 0
	assert.InDelta(t, 0.55, w.Instability, 1e-9)

	base.MergeLevel = 6
	stack.Push(&Duck{X: 400, W: 80, H: 70, State: StateLanded})
	w.Retune(stack, 5, 6)
	assert.InDelta(t, 1.0, w.Instability, 1e-9, "instability is capped at 1")
}

func TestWobbleAngleIsClamped(t *testing.T) {
	cfg := config.DefaultDucksConfig().Wobble
	w := NewWobble(cfg)
	w.Instability = 1
	w.CenterOfMassOffset = 200
	rng := NewRNG("lean")

	for i := 0; i < 500; i++ {
		w.Update(rng)
		require.LessOrEqual(t, math.Abs(w.Angle), cfg.MaxAngle)
	}

	assert.Equal(t, cfg.MaxAngle, w.Angle)
	state := w.State()
	assert.Equal(t, 0, state.Stability)
	assert.True(t, state.Collapsing)
}

func TestWobbleCollapseThreshold(t *testing.T) {
	w := NewWobble(config.DefaultDucksConfig().Wobble)

	w.Angle = -w.MaxAngle * 0.94
	assert.False(t, w.State().Collapsing)
	assert.Equal(t, 6, w.State().Stability)

	w.Angle = -w.MaxAngle * 0.95
	assert.True(t, w.State().Collapsing)
}

func TestParticlesExpire(t *testing.T) {
	cfg := config.DefaultDucksConfig().Particles
	ps := NewParticleSystem(cfg)
	ps.Burst(100, 100, nil, NewRNG("fx"))
	require.Equal(t, cfg.Count, ps.Len())

	for i := 0; i < cfg.MinLife-1; i++ {
		ps.Update()
	}
	assert.Equal(t, cfg.Count, ps.Len(), "nothing expires before the minimum life")

	for i := 0; i < cfg.MaxLife; i++ {
		ps.Update()
	}
	assert.Zero(t, ps.Len())
}

func TestStackPopN(t *testing.T) {
	s := NewStack(&Duck{X: 200})
	assert.True(t, s.Base().IsStatic())
	assert.Zero(t, s.PopN(5), "the base is never removed")

	for i := 0; i < 3; i++ {
		s.Push(&Duck{X: float64(i)})
	}
	assert.Equal(t, 3, s.Stacked())
	assert.Equal(t, 2.0, s.Top().X)

	assert.Equal(t, 3, s.PopN(5))
	assert.Equal(t, 1, s.Len())
	assert.Same(t, s.Base(), s.Top())
}

func TestLevelBookDeterministic(t *testing.T) {
	a := NewLevelBook("palette")
	b := NewLevelBook("palette")
	require.Len(t, a.Levels(), initialLevels)
	assert.Equal(t, a.Levels(), b.Levels())

	// Level 25 looks the same whether or not earlier levels were generated.
	c := NewLevelBook("palette")
	assert.Equal(t, c.Level(25), a.Level(25))
	assert.Len(t, a.Levels(), 26)
	assert.NotEmpty(t, a.Level(0).Name)
	assert.NotEmpty(t, a.Level(0).Color)
}
