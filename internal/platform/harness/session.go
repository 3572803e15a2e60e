package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/duck-tower/internal/config"
	"github.com/vovakirdan/duck-tower/internal/core"
	"github.com/vovakirdan/duck-tower/internal/games/ducks"
)

// ErrUnknownType is returned for messages with an unrecognised type.
var ErrUnknownType = errors.New("harness: unknown message type")

// Session is one game shared by every connected driver.
// All access goes through the mutex; the game itself has no locks.
type Session struct {
	mu     sync.Mutex
	game   *ducks.Game
	logger *log.Logger
}

// NewSession creates a session sitting in the menu. A nil logger discards.
func NewSession(cfg config.DucksConfig, rc core.RuntimeConfig, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := ducks.New(cfg)
	g.Reset(rc)
	return &Session{game: g, logger: logger}
}

// Snapshot returns the current state.
func (s *Session) Snapshot() ducks.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// Handle runs one message and returns the resulting state.
// Requests the game does not accept in its current mode are not errors:
// they are ignored and the unchanged state comes back.
func (s *Session) Handle(msg Message) (ducks.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.apply(msg); err != nil {
		return ducks.Snapshot{}, err
	}
	return s.game.Snapshot(), nil
}

func (s *Session) apply(msg Message) error {
	g := s.game

	switch msg.Type {
	case TypeStart:
		g.StartGame(msg.Seed)
		s.logger.Info("run started", "seed", g.Seed(), "mode", g.Mode())
	case TypeRetry:
		g.RetryGame()
	case TypeContinue:
		g.ContinueLevel()
	case TypeMenu:
		g.BackToMenu()
	case TypeKey:
		return s.applyKey(msg.Key)
	case TypePointer:
		return s.applyPointer(msg)
	case TypeTick:
		return s.tick(msg.Ticks)
	case TypeState:
	case TypeDebug:
		return s.applyDebug(msg)
	case TypeResize:
		if msg.X <= 0 || msg.Y <= 0 {
			return fmt.Errorf("harness: resize needs a positive size, got %gx%g", msg.X, msg.Y)
		}
		g.Resize(msg.X, msg.Y)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, msg.Type)
	}
	return nil
}

func (s *Session) applyKey(key string) error {
	switch key {
	case KeyArrowLeft:
		s.game.MoveLeft()
	case KeyArrowRight:
		s.game.MoveRight()
	case KeySpace:
		s.game.Drop()
	default:
		return fmt.Errorf("harness: unknown key %q", key)
	}
	return nil
}

func (s *Session) applyPointer(msg Message) error {
	switch msg.Phase {
	case PhaseDown:
		s.game.PointerDown(msg.X, msg.Y)
	case PhaseMove:
		s.game.PointerMove(msg.X, msg.Y)
	case PhaseUp:
		s.game.PointerUp(msg.X, msg.Y)
	case PhaseClick:
		s.game.Click(msg.X, msg.Y)
	default:
		return fmt.Errorf("harness: unknown pointer phase %q", msg.Phase)
	}
	return nil
}

func (s *Session) tick(n int) error {
	if n < 0 || n > maxTicks {
		return fmt.Errorf("harness: ticks must be between 0 and %d, got %d", maxTicks, n)
	}
	n = max(n, 1)
	empty := core.NewInputFrame()
	for range n {
		s.step(empty)
	}
	return nil
}

// step advances one tick and logs what happened.
func (s *Session) step(in core.InputFrame) {
	res := s.game.Step(in)
	for _, e := range res.Events {
		if e.Kind == ducks.EventLanded {
			s.logger.Debug("landed", "tick", e.Tick, "landing", e.Landing, "offset", e.Offset)
			continue
		}
		s.logger.Info(string(e.Kind), "tick", e.Tick, "score", e.Score, "level", e.Level)
	}
}

func (s *Session) applyDebug(msg Message) error {
	d := s.game.Debug()

	var ok bool
	switch msg.Op {
	case OpSetX:
		ok = d.SetCurrentX(msg.Value)
	case OpAlignWithTop:
		ok = d.AlignWithTop(msg.Value)
	case OpForceStatic:
		ok = d.ForceStatic()
	case OpForceMode:
		ok = d.ForceMode(ducks.Mode(msg.Mode))
	case OpCameraTarget:
		d.SetCameraTarget(msg.Value)
		ok = true
	default:
		return fmt.Errorf("harness: unknown debug op %q", msg.Op)
	}

	if !ok {
		return fmt.Errorf("harness: debug %s not applicable in mode %s", msg.Op, s.game.Mode())
	}
	return nil
}

// Run ticks the session in real time until ctx is done.
func (s *Session) Run(ctx context.Context, tickRate int) {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	empty := core.NewInputFrame()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			s.step(empty)
			s.mu.Unlock()
		}
	}
}
