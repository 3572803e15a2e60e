package config

import (
	_ "embed"
)

//go:embed defaults/ducks.yaml
var defaultDucksYAML []byte

// DefaultDucksConfig returns the built-in duck tower configuration.
func DefaultDucksConfig() DucksConfig {
	return DucksConfig{
		Viewport: ViewportConfig{
			MinDesignWidth: 412,
			MaxDesignWidth: 800,
		},
		Duck: DuckConfig{
			BaseWidth:  80,
			BaseHeight: 70,
			HoverRatio: 0.18,
		},
		Physics: PhysicsConfig{
			Gravity:   0.5,
			ArrowStep: 15,
		},
		Landing: LandingConfig{
			PerfectTolerance:  8,
			HitToleranceRatio: 0.65,
			StackOffsetRatio:  0.85,
			FallbackMargin:    400,
		},
		Progression: ProgressionConfig{
			MergeThreshold:     5,
			BaseMergesPerLevel: 5,
			DifficultyScale:    1.5,
			LevelUpScreenRatio: 0.8,
		},
		Camera: CameraConfig{
			FollowRatio: 0.6,
			Lerp:        0.1,
		},
		Wobble: WobbleConfig{
			Damping:         0.95,
			Restoring:       0.05,
			MaxAngle:        0.35,
			RandomForce:     0.004,
			MassForce:       0.0004,
			CollapseRatio:   0.95,
			HeightWeight:    0.5,
			ImbalanceWeight: 0.3,
			MergeWeight:     0.2,
		},
		Particles: ParticleConfig{
			Count:   14,
			MinLife: 30,
			MaxLife: 50,
			Speed:   4,
			Gravity: 0.2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDucksYAML
}
