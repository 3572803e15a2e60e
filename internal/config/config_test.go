package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseDucks(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultDucksConfig(), cfg, "embedded YAML differs from DefaultDucksConfig()")
}

func TestDefaultsValidate(t *testing.T) {
	assert.NoError(t, DefaultDucksConfig().Validate())
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := ParseDucks([]byte("physics:\n  arrow_step: 20\n"))
	require.NoError(t, err)

	assert.Equal(t, 20.0, cfg.Physics.ArrowStep)
	assert.Equal(t, DefaultDucksConfig().Physics.Gravity, cfg.Physics.Gravity, "Gravity should keep its default")
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative gravity", "physics:\n  gravity: -1\n"},
		{"inverted viewport", "viewport:\n  min_design_width: 900\n"},
		{"zero merge threshold", "progression:\n  merge_threshold: 0\n"},
		{"lerp above one", "camera:\n  lerp: 2\n"},
		{"malformed", "physics: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDucks([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadDucksCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ducks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("landing:\n  perfect_tolerance: 10\n"), 0o600))

	cfg, err := LoadDucks(path)
	require.NoError(t, err)
	assert.Equal(t, 10.0, cfg.Landing.PerfectTolerance)

	_, err = LoadDucks(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "a missing custom path should fail")
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		flag    string
		preset  DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", "", true},
	}

	for _, tc := range tests {
		preset, err := ParseDifficulty(tc.flag)
		if tc.wantErr {
			assert.Error(t, err, "ParseDifficulty(%q)", tc.flag)
		} else {
			assert.NoError(t, err, "ParseDifficulty(%q)", tc.flag)
		}
		assert.Equal(t, tc.preset, preset, "ParseDifficulty(%q)", tc.flag)
	}

	easy := DefaultDucksConfig()
	ApplyDucksPreset(&easy, DifficultyEasy)
	hard := DefaultDucksConfig()
	ApplyDucksPreset(&hard, DifficultyHard)

	assert.Greater(t, easy.Landing.PerfectTolerance, hard.Landing.PerfectTolerance, "easy should be more forgiving than hard")
	assert.Equal(t, hard.Progression.LevelUpScreenRatio, easy.Progression.LevelUpScreenRatio, "presets must not change the level-up width ratio")
	assert.NoError(t, easy.Validate())
	assert.NoError(t, hard.Validate())

	normal := DefaultDucksConfig()
	ApplyDucksPreset(&normal, DifficultyNormal)
	assert.Equal(t, DefaultDucksConfig(), normal, "normal preset should leave defaults untouched")
}
