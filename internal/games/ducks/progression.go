package ducks

import (
	"math"

	"github.com/vovakirdan/duck-tower/internal/config"
)

// levelUpEpsilon absorbs float rounding in the geometric growth.
const levelUpEpsilon = 1e-9

// Progression holds the merge and level-up math for one design width.
// Every rate is derived from the design width so the number of landings
// per level is the same on every screen.
type Progression struct {
	cfg       config.ProgressionConfig
	baseWidth float64
	designW   float64
}

// NewProgression creates the progression math for a design width.
func NewProgression(cfg config.ProgressionConfig, baseWidth, designW float64) Progression {
	return Progression{cfg: cfg, baseWidth: baseWidth, designW: designW}
}

// MergeThreshold returns the number of landings per merge.
func (p Progression) MergeThreshold() int {
	return p.cfg.MergeThreshold
}

// MergesForLevel returns how many merges grow the base to the level-up
// width at the given level. Non-decreasing in level.
func (p Progression) MergesForLevel(level int) int {
	level = max(level, 0)
	return p.cfg.BaseMergesPerLevel + int(math.Floor(math.Log2(float64(level+2))*p.cfg.DifficultyScale))
}

// LevelUpWidth returns the base width that completes a level.
func (p Progression) LevelUpWidth() float64 {
	return p.designW * p.cfg.LevelUpScreenRatio
}

// GrowthRate returns the per-merge growth factor minus one for a level.
func (p Progression) GrowthRate(level int) float64 {
	return math.Pow(p.LevelUpWidth()/p.baseWidth, 1/float64(p.MergesForLevel(level))) - 1
}

// BaseWidth returns the base duck width after mergeLevel merges.
func (p Progression) BaseWidth(level, mergeLevel int) float64 {
	return p.baseWidth * math.Pow(1+p.GrowthRate(level), float64(mergeLevel))
}

// ReachedLevelUp reports whether a base of width w completes the level.
func (p Progression) ReachedLevelUp(w float64) bool {
	return w >= p.LevelUpWidth()-levelUpEpsilon
}
