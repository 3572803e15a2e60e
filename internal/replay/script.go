// Package replay runs scripted duck tower games headlessly.
//
// A script is YAML:
//
//	seed: pond
//	viewport: {width: 412, height: 915}
//	steps:
//	  - action: start
//	  - key: ArrowLeft
//	  - pointer: {phase: click, x: 200, y: 160}
//	  - tick: 120
//	  - repeat:
//	      times: 3
//	      steps:
//	        - debug: {op: alignWithTop, value: 0}
//	        - key: Space
//	        - tick: 90
//	expect: {mode: PLAYING, score: 3}
//
// Steps run in order through a harness session, so the result is exactly
// what a live driver sending the same commands would see.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/duck-tower/internal/config"
	"github.com/vovakirdan/duck-tower/internal/core"
	"github.com/vovakirdan/duck-tower/internal/games/ducks"
	"github.com/vovakirdan/duck-tower/internal/platform/harness"
)

// ErrExpectation is returned when the final state does not match Expect.
var ErrExpectation = errors.New("replay: expectation failed")

// Script is a recorded sequence of commands.
type Script struct {
	Seed     string   `yaml:"seed"`
	Viewport Viewport `yaml:"viewport"`
	Steps    []Step   `yaml:"steps"`
	Expect   *Expect  `yaml:"expect,omitempty"`
}

// Viewport is the screen size in pixels. Zero means 412x915.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Step is one command. Exactly one field is set.
type Step struct {
	Action  string   `yaml:"action,omitempty"` // start, retry, continue, menu
	Key     string   `yaml:"key,omitempty"`    // ArrowLeft, ArrowRight, Space
	Pointer *Pointer `yaml:"pointer,omitempty"`
	Tick    int      `yaml:"tick,omitempty"`
	Debug   *Debug   `yaml:"debug,omitempty"`
	Repeat  *Repeat  `yaml:"repeat,omitempty"`
}

// Pointer is a pointer event in screen pixels.
type Pointer struct {
	Phase string  `yaml:"phase"` // down, move, up, click
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

// Debug is a test-support poke at the game.
type Debug struct {
	Op    string  `yaml:"op"`
	Value float64 `yaml:"value,omitempty"`
	Mode  string  `yaml:"mode,omitempty"`
}

// Repeat runs Steps Times times.
type Repeat struct {
	Times int    `yaml:"times"`
	Steps []Step `yaml:"steps"`
}

// Expect is checked against the final state. Unset fields are not checked.
type Expect struct {
	Mode       string `yaml:"mode,omitempty"`
	Score      *int   `yaml:"score,omitempty"`
	Level      *int   `yaml:"level,omitempty"`
	MinScore   *int   `yaml:"minScore,omitempty"`
	StackSize  *int   `yaml:"stackSize,omitempty"`
	MergeCount *int   `yaml:"mergeCount,omitempty"`
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a script and checks its shape.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("replay: parse: %w", err)
	}
	if err := validateSteps(s.Steps, "steps"); err != nil {
		return nil, err
	}
	return &s, nil
}

func validateSteps(steps []Step, path string) error {
	for i, st := range steps {
		where := fmt.Sprintf("%s[%d]", path, i)

		set := 0
		for _, ok := range []bool{
			st.Action != "", st.Key != "", st.Pointer != nil,
			st.Tick != 0, st.Debug != nil, st.Repeat != nil,
		} {
			if ok {
				set++
			}
		}
		if set != 1 {
			return fmt.Errorf("replay: %s: a step needs exactly one command, got %d", where, set)
		}

		if st.Tick < 0 {
			return fmt.Errorf("replay: %s: negative tick count %d", where, st.Tick)
		}
		if r := st.Repeat; r != nil {
			if r.Times < 0 {
				return fmt.Errorf("replay: %s: negative repeat count %d", where, r.Times)
			}
			if err := validateSteps(r.Steps, where+".repeat.steps"); err != nil {
				return err
			}
		}
	}
	return nil
}

// Runner plays scripts with one set of tunables.
type Runner struct {
	Config config.DucksConfig
	Logger *log.Logger
}

// NewRunner creates a runner that logs nowhere.
func NewRunner(cfg config.DucksConfig) *Runner {
	return &Runner{Config: cfg, Logger: log.New(io.Discard)}
}

// Run plays the script from a fresh game and returns the final state.
// A failed expectation returns the state along with ErrExpectation.
func (r *Runner) Run(s *Script) (ducks.Snapshot, error) {
	rc := core.DefaultConfig()
	if s.Viewport.Width > 0 && s.Viewport.Height > 0 {
		rc.ViewportW = s.Viewport.Width
		rc.ViewportH = s.Viewport.Height
	}
	rc.Seed = s.Seed

	session := harness.NewSession(r.Config, rc, r.Logger)

	if err := r.runSteps(session, s.Seed, s.Steps, "steps"); err != nil {
		return session.Snapshot(), err
	}

	final := session.Snapshot()
	if err := s.Expect.check(final); err != nil {
		return final, err
	}
	return final, nil
}

func (r *Runner) runSteps(session *harness.Session, seed string, steps []Step, path string) error {
	for i, st := range steps {
		where := fmt.Sprintf("%s[%d]", path, i)

		if st.Repeat != nil {
			for n := range st.Repeat.Times {
				inner := fmt.Sprintf("%s.repeat#%d", where, n)
				if err := r.runSteps(session, seed, st.Repeat.Steps, inner); err != nil {
					return err
				}
			}
			continue
		}

		msg, err := st.message(seed)
		if err != nil {
			return fmt.Errorf("replay: %s: %w", where, err)
		}
		if _, err := session.Handle(msg); err != nil {
			return fmt.Errorf("replay: %s: %w", where, err)
		}
	}
	return nil
}

// message converts a step to the harness command it stands for.
func (st Step) message(seed string) (harness.Message, error) {
	switch {
	case st.Action != "":
		switch st.Action {
		case harness.TypeStart:
			return harness.Message{Type: harness.TypeStart, Seed: seed}, nil
		case harness.TypeRetry, harness.TypeContinue, harness.TypeMenu:
			return harness.Message{Type: st.Action}, nil
		}
		return harness.Message{}, fmt.Errorf("unknown action %q", st.Action)
	case st.Key != "":
		return harness.Message{Type: harness.TypeKey, Key: st.Key}, nil
	case st.Pointer != nil:
		return harness.Message{Type: harness.TypePointer, Phase: st.Pointer.Phase, X: st.Pointer.X, Y: st.Pointer.Y}, nil
	case st.Tick > 0:
		return harness.Message{Type: harness.TypeTick, Ticks: st.Tick}, nil
	case st.Debug != nil:
		return harness.Message{Type: harness.TypeDebug, Op: st.Debug.Op, Value: st.Debug.Value, Mode: st.Debug.Mode}, nil
	}
	return harness.Message{}, errors.New("empty step")
}

// check compares the final state with the expectation.
func (e *Expect) check(s ducks.Snapshot) error {
	if e == nil {
		return nil
	}

	var errs []error
	if e.Mode != "" && e.Mode != s.Mode {
		errs = append(errs, fmt.Errorf("mode is %s, want %s", s.Mode, e.Mode))
	}
	checkInt := func(name string, want *int, got int) {
		if want != nil && *want != got {
			errs = append(errs, fmt.Errorf("%s is %d, want %d", name, got, *want))
		}
	}
	checkInt("score", e.Score, s.Score)
	checkInt("level", e.Level, s.Level)
	checkInt("stack size", e.StackSize, len(s.Ducks))
	checkInt("merge count", e.MergeCount, s.MergeCount)
	if e.MinScore != nil && s.Score < *e.MinScore {
		errs = append(errs, fmt.Errorf("score is %d, want at least %d", s.Score, *e.MinScore))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrExpectation, errors.Join(errs...))
	}
	return nil
}
