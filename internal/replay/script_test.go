package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/duck-tower/internal/config"
)

const stackThree = `
seed: pond
steps:
  - action: start
  - repeat:
      times: 3
      steps:
        - debug: {op: alignWithTop, value: 0}
        - key: Space
        - tick: 90
expect:
  mode: PLAYING
  score: 3
  stackSize: 4
  mergeCount: 3
`

func run(t *testing.T, src string) error {
	t.Helper()
	s, err := Parse([]byte(src))
	require.NoError(t, err)
	_, err = NewRunner(config.DefaultDucksConfig()).Run(s)
	return err
}

func TestRunStacksDucks(t *testing.T) {
	s, err := Parse([]byte(stackThree))
	require.NoError(t, err)

	state, err := NewRunner(config.DefaultDucksConfig()).Run(s)
	require.NoError(t, err)
	assert.Equal(t, "pond", state.Seed)
	assert.Equal(t, uint64(270), state.Tick)
	require.NotNil(t, state.CurrentDuck)
	assert.Equal(t, "hover", state.CurrentDuck.State)
}

func TestRunIsDeterministic(t *testing.T) {
	s, err := Parse([]byte(stackThree))
	require.NoError(t, err)
	runner := NewRunner(config.DefaultDucksConfig())

	a, err := runner.Run(s)
	require.NoError(t, err)
	b, err := runner.Run(s)
	require.NoError(t, err)
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestRunMergesAfterFiveLandings(t *testing.T) {
	err := run(t, `
seed: merge
steps:
  - action: start
  - repeat:
      times: 5
      steps:
        - debug: {op: alignWithTop, value: 0}
        - key: Space
        - tick: 90
expect: {mode: PLAYING, score: 5, stackSize: 1, mergeCount: 0}
`)
	assert.NoError(t, err)
}

func TestRunMissEndsGame(t *testing.T) {
	err := run(t, `
seed: miss
steps:
  - action: start
  - debug: {op: alignWithTop, value: 100}
  - key: Space
  - tick: 200
expect: {mode: GAMEOVER, score: 0}
`)
	assert.NoError(t, err)

	err = run(t, `
seed: miss
steps:
  - action: start
  - debug: {op: alignWithTop, value: 100}
  - key: Space
  - tick: 200
  - action: retry
expect: {mode: PLAYING, score: 0, stackSize: 1}
`)
	assert.NoError(t, err)
}

func TestRunExpectationFailure(t *testing.T) {
	err := run(t, `
seed: fail
steps:
  - action: start
expect: {mode: GAMEOVER, score: 99}
`)
	require.ErrorIs(t, err, ErrExpectation)
	assert.Contains(t, err.Error(), "mode is PLAYING")
	assert.Contains(t, err.Error(), "score is 0")
}

func TestRunUnknownCommands(t *testing.T) {
	err := run(t, `
steps:
  - action: pause
`)
	assert.ErrorContains(t, err, "steps[0]")

	err = run(t, `
steps:
  - action: start
  - repeat:
      times: 2
      steps:
        - key: Enter
`)
	assert.ErrorContains(t, err, "steps[1].repeat#0[0]")
}

func TestParseRejectsBadSteps(t *testing.T) {
	_, err := Parse([]byte(`
steps:
  - key: Space
    tick: 3
`))
	assert.ErrorContains(t, err, "exactly one command")

	_, err = Parse([]byte(`
steps:
  - {}
`))
	assert.Error(t, err)

	_, err = Parse([]byte(`
steps:
  - repeat:
      times: -1
      steps: [{tick: 1}]
`))
	assert.ErrorContains(t, err, "negative repeat")

	_, err = Parse([]byte("steps: {"))
	assert.Error(t, err)
}

func TestRunUsesViewport(t *testing.T) {
	s, err := Parse([]byte(`
viewport: {width: 1600, height: 900}
steps:
  - action: start
`))
	require.NoError(t, err)

	state, err := NewRunner(config.DefaultDucksConfig()).Run(s)
	require.NoError(t, err)
	assert.Equal(t, 800.0, state.Width)
	assert.Equal(t, "duck-tower", state.Seed, "an empty seed falls back to the default")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(stackThree), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "pond", s.Seed)
	assert.Len(t, s.Steps, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
