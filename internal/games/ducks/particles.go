package ducks

import (
	"math"

	"github.com/vovakirdan/duck-tower/internal/config"
	"github.com/vovakirdan/duck-tower/internal/core"
)

// Particle is one spark of a perfect-landing burst.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int // Ticks left
	Color  core.Color
}

// ParticleSystem owns the live particles.
type ParticleSystem struct {
	cfg   config.ParticleConfig
	items []Particle
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem(cfg config.ParticleConfig) *ParticleSystem {
	return &ParticleSystem{cfg: cfg}
}

// Burst spawns a ring of particles at (x, y).
func (ps *ParticleSystem) Burst(x, y float64, colors []core.Color, rng *RNG) {
	for i := 0; i < ps.cfg.Count; i++ {
		angle := 2*math.Pi*float64(i)/float64(ps.cfg.Count) + rng.Float(-0.3, 0.3)
		speed := ps.cfg.Speed * rng.Float(0.5, 1)

		p := Particle{
			X:    x,
			Y:    y,
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle)*speed - ps.cfg.Speed/2,
			Life: ps.cfg.MinLife + rng.Intn(ps.cfg.MaxLife-ps.cfg.MinLife+1),
		}
		if len(colors) > 0 {
			p.Color = colors[i%len(colors)]
		}
		ps.items = append(ps.items, p)
	}
}

// Update moves every particle one tick and drops the expired ones.
func (ps *ParticleSystem) Update() {
	alive := ps.items[:0]
	for _, p := range ps.items {
		p.Life--
		if p.Life <= 0 {
			continue
		}
		p.VY += ps.cfg.Gravity
		p.X += p.VX
		p.Y += p.VY
		alive = append(alive, p)
	}
	ps.items = alive
}

// Particles returns the live particles. The slice must not be modified.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.items
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.items)
}

// Clear removes every particle.
func (ps *ParticleSystem) Clear() {
	ps.items = ps.items[:0]
}
