// Package config provides YAML-based configuration loading and difficulty
// presets for the duck tower simulation.
package config

import (
	"errors"
	"fmt"
)

// DucksConfig contains all tunables of the duck tower simulation.
type DucksConfig struct {
	Viewport    ViewportConfig    `yaml:"viewport"`
	Duck        DuckConfig        `yaml:"duck"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Landing     LandingConfig     `yaml:"landing"`
	Progression ProgressionConfig `yaml:"progression"`
	Camera      CameraConfig      `yaml:"camera"`
	Wobble      WobbleConfig      `yaml:"wobble"`
	Particles   ParticleConfig    `yaml:"particles"`
}

// ViewportConfig bounds the design-space width.
type ViewportConfig struct {
	MinDesignWidth float64 `yaml:"min_design_width"`
	MaxDesignWidth float64 `yaml:"max_design_width"`
}

// DuckConfig defines duck dimensions and the hover position.
type DuckConfig struct {
	BaseWidth  float64 `yaml:"base_width"`
	BaseHeight float64 `yaml:"base_height"`
	HoverRatio float64 `yaml:"hover_ratio"` // Hover y as a fraction of design height, camera relative
}

// PhysicsConfig defines falling physics and keyboard control.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // Downward acceleration per tick
	ArrowStep float64 `yaml:"arrow_step"` // Horizontal move per arrow press
}

// LandingConfig defines the collision resolver tolerances.
type LandingConfig struct {
	PerfectTolerance  float64 `yaml:"perfect_tolerance"`
	HitToleranceRatio float64 `yaml:"hit_tolerance_ratio"` // Fraction of top duck width
	StackOffsetRatio  float64 `yaml:"stack_offset_ratio"`  // Fraction of top duck height
	FallbackMargin    float64 `yaml:"fallback_margin"`     // Below baseY+cameraY
}

// ProgressionConfig defines merge and level-up pacing.
type ProgressionConfig struct {
	MergeThreshold     int     `yaml:"merge_threshold"`
	BaseMergesPerLevel int     `yaml:"base_merges_per_level"`
	DifficultyScale    float64 `yaml:"difficulty_scale"`
	LevelUpScreenRatio float64 `yaml:"level_up_screen_ratio"`
}

// CameraConfig defines camera follow behaviour.
type CameraConfig struct {
	FollowRatio float64 `yaml:"follow_ratio"` // Top duck kept at this fraction of height
	Lerp        float64 `yaml:"lerp"`
}

// WobbleConfig defines the angular spring of the tower.
type WobbleConfig struct {
	Damping         float64 `yaml:"damping"`
	Restoring       float64 `yaml:"restoring"`
	MaxAngle        float64 `yaml:"max_angle"`
	RandomForce     float64 `yaml:"random_force"`
	MassForce       float64 `yaml:"mass_force"`
	CollapseRatio   float64 `yaml:"collapse_ratio"`
	HeightWeight    float64 `yaml:"height_weight"`
	ImbalanceWeight float64 `yaml:"imbalance_weight"`
	MergeWeight     float64 `yaml:"merge_weight"`
}

// ParticleConfig defines the perfect-landing burst.
type ParticleConfig struct {
	Count   int     `yaml:"count"`
	MinLife int     `yaml:"min_life"`
	MaxLife int     `yaml:"max_life"`
	Speed   float64 `yaml:"speed"`
	Gravity float64 `yaml:"gravity"`
}

// Validate reports every out-of-range value in the config.
func (c DucksConfig) Validate() error {
	var errs []error

	if c.Viewport.MinDesignWidth <= 0 || c.Viewport.MaxDesignWidth < c.Viewport.MinDesignWidth {
		errs = append(errs, fmt.Errorf("viewport: invalid design width range [%g, %g]",
			c.Viewport.MinDesignWidth, c.Viewport.MaxDesignWidth))
	}
	if c.Duck.BaseWidth <= 0 || c.Duck.BaseHeight <= 0 {
		errs = append(errs, fmt.Errorf("duck: dimensions must be positive"))
	}
	if c.Duck.BaseWidth >= c.Viewport.MinDesignWidth*c.Progression.LevelUpScreenRatio {
		errs = append(errs, fmt.Errorf("duck: base_width %g leaves no room to grow", c.Duck.BaseWidth))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics: gravity must be positive"))
	}
	if c.Physics.ArrowStep <= 0 {
		errs = append(errs, fmt.Errorf("physics: arrow_step must be positive"))
	}
	if c.Landing.PerfectTolerance < 0 || c.Landing.HitToleranceRatio <= 0 {
		errs = append(errs, fmt.Errorf("landing: tolerances must be positive"))
	}
	if c.Progression.MergeThreshold < 1 || c.Progression.BaseMergesPerLevel < 1 {
		errs = append(errs, fmt.Errorf("progression: thresholds must be at least 1"))
	}
	if c.Progression.LevelUpScreenRatio <= 0 || c.Progression.LevelUpScreenRatio > 1 {
		errs = append(errs, fmt.Errorf("progression: level_up_screen_ratio must be in (0, 1]"))
	}
	if c.Camera.Lerp <= 0 || c.Camera.Lerp > 1 {
		errs = append(errs, fmt.Errorf("camera: lerp must be in (0, 1]"))
	}
	if c.Wobble.MaxAngle <= 0 || c.Wobble.Damping <= 0 || c.Wobble.Damping > 1 {
		errs = append(errs, fmt.Errorf("wobble: max_angle must be positive and damping in (0, 1]"))
	}
	if c.Particles.Count < 1 || c.Particles.MinLife < 1 || c.Particles.MaxLife < c.Particles.MinLife {
		errs = append(errs, fmt.Errorf("particles: invalid count or lifetime range"))
	}

	return errors.Join(errs...)
}
