package ducks

import (
	"math"

	"github.com/vovakirdan/duck-tower/internal/config"
	"github.com/vovakirdan/duck-tower/internal/core"
)

// Wobble is an angular spring that makes the tower sway. Taller, more
// off-centre and more merged towers are less stable.
type Wobble struct {
	Angle              float64
	AngularVelocity    float64
	Instability        float64 // 0 (rock solid) to 1
	CenterOfMassOffset float64
	Damping            float64
	Restoring          float64
	MaxAngle           float64

	cfg config.WobbleConfig
}

// WobbleState is the player-facing summary of the wobble.
type WobbleState struct {
	Stability  int  `json:"stability" jsonschema:"description=Percent of the maximum angle left,minimum=0,maximum=100"`
	Collapsing bool `json:"collapsing" jsonschema:"description=Angle is within 5% of the limit"`
}

// NewWobble creates a still tower.
func NewWobble(cfg config.WobbleConfig) *Wobble {
	return &Wobble{
		Damping:   cfg.Damping,
		Restoring: cfg.Restoring,
		MaxAngle:  cfg.MaxAngle,
		cfg:       cfg,
	}
}

// Reset stops all motion.
func (w *Wobble) Reset() {
	w.Angle = 0
	w.AngularVelocity = 0
	w.Instability = 0
	w.CenterOfMassOffset = 0
}

// Retune recomputes instability from the tower's shape.
func (w *Wobble) Retune(stack *Stack, threshold, mergesForLevel int) {
	base := stack.Base()
	w.CenterOfMassOffset = stack.CenterOfMassOffset()

	height := ratio(float64(stack.Stacked()), float64(threshold))
	imbalance := ratio(math.Abs(w.CenterOfMassOffset), base.W/2)
	merge := ratio(float64(base.MergeLevel), float64(mergesForLevel))

	w.Instability = core.ClampF(
		w.cfg.HeightWeight*height+w.cfg.ImbalanceWeight*imbalance+w.cfg.MergeWeight*merge,
		0, 1)
}

// Update advances the spring one tick, drawing one value from rng.
func (w *Wobble) Update(rng *RNG) {
	randomForce := (rng.Next() - 0.5) * w.Instability * w.cfg.RandomForce
	restoringForce := -w.Angle * w.Restoring * (1 - w.Instability)
	massForce := w.CenterOfMassOffset * w.cfg.MassForce * w.Instability

	w.AngularVelocity += randomForce + restoringForce + massForce
	w.AngularVelocity *= w.Damping
	w.Angle = core.ClampF(w.Angle+w.AngularVelocity, -w.MaxAngle, w.MaxAngle)
}

// State returns stability as a percentage and the collapse signal.
func (w *Wobble) State() WobbleState {
	if w.MaxAngle <= 0 {
		return WobbleState{Stability: 100}
	}
	abs := math.Abs(w.Angle)
	return WobbleState{
		Stability:  int(math.Round(100 * (1 - abs/w.MaxAngle))),
		Collapsing: abs >= w.MaxAngle*w.cfg.CollapseRatio,
	}
}

// ratio returns v/limit capped to [0, 1].
func ratio(v, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return core.ClampF(v/limit, 0, 1)
}
