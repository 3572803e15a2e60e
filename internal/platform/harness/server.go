package harness

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/duck-tower/internal/config"
	"github.com/vovakirdan/duck-tower/internal/core"
)

// Config holds configuration for the harness server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// Ducks holds the game tunables.
	Ducks config.DucksConfig

	// Runtime sizes the viewport and sets the tick rate and default seed.
	Runtime core.RuntimeConfig

	// Realtime ticks the game at the tick rate. Otherwise time only moves
	// on tick messages.
	Realtime bool
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address: ":8080",
		Ducks:   config.DefaultDucksConfig(),
		Runtime: core.DefaultConfig(),
	}
}

// Server serves one Session to websocket drivers and HTTP readers.
type Server struct {
	config   Config
	session  *Session
	schema   []byte
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// NewServer creates a harness server.
func NewServer(cfg Config, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "ducks-harness",
		})
	}

	schema, err := SchemaJSON()
	if err != nil {
		return nil, err
	}

	return &Server{
		config:  cfg,
		session: NewSession(cfg.Ducks, cfg.Runtime, logger),
		schema:  schema,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}, nil
}

// Session returns the server's game session.
func (s *Server) Session() *Session {
	return s.session
}

// Handler returns the HTTP routes: /ws, /state and /schema.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("GET /state", s.handleState)
	mux.HandleFunc("GET /schema", s.handleSchema)
	return mux
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.config.Realtime {
		go s.session.Run(ctx, s.config.Runtime.TickRate)
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting harness server", "address", s.config.Address, "realtime", s.config.Realtime)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("harness: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	s.logger.Info("driver connected", "remote", r.RemoteAddr)
	defer s.logger.Info("driver disconnected", "remote", r.RemoteAddr)

	if err := conn.WriteJSON(stateReply(s.session.Snapshot())); err != nil {
		return
	}

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("read failed", "remote", r.RemoteAddr, "error", err)
			}
			return
		}

		if err := conn.WriteJSON(s.dispatch(payload)); err != nil {
			s.logger.Warn("write failed", "remote", r.RemoteAddr, "error", err)
			return
		}
	}
}

// dispatch decodes and runs one message.
func (s *Server) dispatch(payload []byte) Reply {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		s.logger.Debug("discarding malformed message", "error", err)
		return errorReply(fmt.Errorf("harness: malformed message: %w", err))
	}

	state, err := s.session.Handle(msg)
	if err != nil {
		s.logger.Debug("command rejected", "type", msg.Type, "error", err)
		return errorReply(err)
	}
	return stateReply(state)
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.session.Snapshot()); err != nil {
		s.logger.Warn("could not write state", "error", err)
	}
}

func (s *Server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/schema+json")
	//nolint:errcheck // Client went away
	w.Write(s.schema)
}
