// SPDX-License-Identifier: MIT

package health

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"
)

// ErrAlreadyStarted is returned by Start on a running server.
var ErrAlreadyStarted = errors.New("health: server already started")

// readHeaderTimeout bounds slow clients on the liveness endpoint.
const readHeaderTimeout = 5 * time.Second

// Status is the body served on GET /.
type Status struct {
	Status string `json:"status"`
}

// StatusOK is the only status the host reports: it is alive or unreachable.
var StatusOK = Status{Status: "OK"}

// Server exposes the liveness endpoint.
type Server struct {
	cfg Config
	log *slog.Logger

	mu       sync.Mutex
	srv      *http.Server
	ln       net.Listener
	done     chan struct{}
	serveErr error
}

// NewServer returns an unstarted server. A nil logger discards output.
func NewServer(cfg Config, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Server{cfg: cfg, log: log}
}

// Handler returns the HTTP routes. GET / answers StatusOK; other methods on /
// get 405 and other paths 404.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleStatus)

	return mux
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.log.Debug("status request",
		slog.String("method", r.Method),
		slog.String("remote", r.RemoteAddr),
		slog.String("user_agent", r.UserAgent()),
	)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(StatusOK); err != nil {
		s.log.Warn("write status", slog.Any("err", err))
	}
}

// Start binds the listener and serves in the background. The listener is
// bound before Start returns, so Addr is valid immediately.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv != nil {
		return ErrAlreadyStarted
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("health: listen %s: %w", s.cfg.Addr(), err)
	}

	s.ln = ln
	s.srv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          slog.NewLogLogger(s.log.Handler(), slog.LevelError),
	}
	s.done = make(chan struct{})

	go func(srv *http.Server, done chan struct{}) {
		defer close(done)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.mu.Lock()
			s.serveErr = err
			s.mu.Unlock()
			s.log.Error("serve", slog.Any("err", err))
		}
	}(s.srv, s.done)

	s.log.Info("server is running", slog.String("addr", ln.Addr().String()), slog.String("env", s.cfg.Env))

	return nil
}

// Addr returns the bound address, or "" before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ln == nil {
		return ""
	}

	return s.ln.Addr().String()
}

// Stop shuts the server down gracefully, waiting for in-flight requests until
// ctx expires. Stopping an unstarted or stopped server is a no-op.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv, done := s.srv, s.done
	s.srv, s.ln, s.done = nil, nil, nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	err := srv.Shutdown(ctx)
	<-done
	s.log.Info("server stopped")

	s.mu.Lock()
	serveErr := s.serveErr
	s.serveErr = nil
	s.mu.Unlock()

	return errors.Join(err, serveErr)
}
