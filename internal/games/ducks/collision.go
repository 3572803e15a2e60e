package ducks

import (
	"math"

	"github.com/vovakirdan/duck-tower/internal/config"
)

// LandingKind classifies the outcome of a falling duck reaching the tower.
type LandingKind int

const (
	LandingNone     LandingKind = iota // Target line not crossed this tick
	LandingPerfect                     // Within perfect tolerance: snap and burst
	LandingNearMiss                    // Within hit tolerance: lands where it is
	LandingMiss                        // Outside hit tolerance: game over
)

// String returns a human-readable name for the landing kind.
func (k LandingKind) String() string {
	switch k {
	case LandingNone:
		return "none"
	case LandingPerfect:
		return "perfect"
	case LandingNearMiss:
		return "near-miss"
	case LandingMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// Landed reports whether the duck joins the stack.
func (k LandingKind) Landed() bool {
	return k == LandingPerfect || k == LandingNearMiss
}

// Landing is the result of one resolver check.
type Landing struct {
	Kind         LandingKind
	Offset       float64 // |duck.x - top.x|
	TargetY      float64 // Resting y on top of the stack
	HitTolerance float64
}

// Resolver checks a falling duck against the top of the stack.
type Resolver struct {
	PerfectTolerance  float64
	HitToleranceRatio float64
	StackOffsetRatio  float64
}

// NewResolver creates a resolver from the landing config.
func NewResolver(cfg config.LandingConfig) Resolver {
	return Resolver{
		PerfectTolerance:  cfg.PerfectTolerance,
		HitToleranceRatio: cfg.HitToleranceRatio,
		StackOffsetRatio:  cfg.StackOffsetRatio,
	}
}

// TargetY returns the y at which a duck rests on top.
func (r Resolver) TargetY(top *Duck) float64 {
	return top.Y - top.H*r.StackOffsetRatio
}

// HitTolerance returns the widest offset that still lands on top.
func (r Resolver) HitTolerance(top *Duck) float64 {
	return top.W * r.HitToleranceRatio
}

// Crossed reports whether a point moving from prevY to y crossed targetY
// this tick. Sweeping the whole interval means no speed can tunnel past it.
func Crossed(prevY, y, targetY float64) bool {
	return prevY < targetY && targetY <= y
}

// Resolve classifies the falling duck d against top.
// Offset equal to the hit tolerance still lands.
func (r Resolver) Resolve(d, top *Duck) Landing {
	l := Landing{
		TargetY:      r.TargetY(top),
		HitTolerance: r.HitTolerance(top),
	}
	if !d.IsFalling() || !Crossed(d.PrevY, d.Y, l.TargetY) {
		return l
	}

	l.Offset = math.Abs(d.X - top.X)
	switch {
	case l.Offset > l.HitTolerance:
		l.Kind = LandingMiss
	case l.Offset < r.PerfectTolerance:
		l.Kind = LandingPerfect
	default:
		l.Kind = LandingNearMiss
	}
	return l
}
