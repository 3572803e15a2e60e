package ducks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/duck-tower/internal/config"
)

func TestCrossed(t *testing.T) {
	tests := []struct {
		name     string
		prevY, y float64
		target   float64
		expected bool
	}{
		{"above target", 100, 200, 300, false},
		{"crosses", 290, 310, 300, true},
		{"lands exactly on target", 290, 300, 300, true},
		{"started on target", 300, 310, 300, false},
		{"already below", 310, 320, 300, false},
		{"huge step tunnels through", 0, 5000, 300, true},
		{"moving up", 310, 290, 300, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Crossed(tt.prevY, tt.y, tt.target))
		})
	}
}

func TestResolverClassifies(t *testing.T) {
	r := NewResolver(config.DefaultDucksConfig().Landing)
	top := &Duck{X: 0, Y: 500, W: 80, H: 70, State: StateLanded}
	target := r.TargetY(top)
	hit := r.HitTolerance(top)

	assert.InDelta(t, 440.5, target, 1e-9)
	assert.InDelta(t, 52, hit, 1e-9)

	tests := []struct {
		name     string
		x        float64
		expected LandingKind
	}{
		{"dead centre", 0, LandingPerfect},
		{"just inside perfect", 7.99, LandingPerfect},
		{"perfect boundary is a near miss", 8, LandingNearMiss},
		{"near miss left", -30, LandingNearMiss},
		{"exactly at hit tolerance lands", hit, LandingNearMiss},
		{"past hit tolerance", hit + 0.001, LandingMiss},
		{"far miss", -(hit + 10), LandingMiss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Duck{X: tt.x, PrevY: target - 5, Y: target + 5, W: 80, H: 70, State: StateFalling}
			l := r.Resolve(d, top)
			assert.Equal(t, tt.expected, l.Kind)
			assert.Equal(t, target, l.TargetY)
		})
	}
}

func TestResolverIgnoresNonCrossing(t *testing.T) {
	r := NewResolver(config.DefaultDucksConfig().Landing)
	top := &Duck{X: 100, Y: 500, W: 80, H: 70, State: StateLanded}

	above := &Duck{X: 400, PrevY: 100, Y: 120, State: StateFalling}
	assert.Equal(t, LandingNone, r.Resolve(above, top).Kind)

	hovering := &Duck{X: 100, PrevY: 430, Y: 450, State: StateHover}
	assert.Equal(t, LandingNone, r.Resolve(hovering, top).Kind)
}

func TestLandingKindLanded(t *testing.T) {
	assert.True(t, LandingPerfect.Landed())
	assert.True(t, LandingNearMiss.Landed())
	assert.False(t, LandingMiss.Landed())
	assert.False(t, LandingNone.Landed())
	assert.Equal(t, "near-miss", LandingNearMiss.String())
}
