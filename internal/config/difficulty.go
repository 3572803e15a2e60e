package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyDucksPreset modifies the config based on a difficulty preset.
// Presets only touch landing tolerances, gravity and level pacing, never
// the width-relative level-up target, so difficulty stays equal across
// screen sizes.
func ApplyDucksPreset(cfg *DucksConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Landing.PerfectTolerance = 12
		cfg.Landing.HitToleranceRatio = 0.75
		cfg.Physics.Gravity = 0.4
		cfg.Progression.DifficultyScale = 1.0
	case DifficultyHard:
		cfg.Landing.PerfectTolerance = 5
		cfg.Landing.HitToleranceRatio = 0.5
		cfg.Physics.Gravity = 0.7
		cfg.Progression.DifficultyScale = 2.0
	}
}
