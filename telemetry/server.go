package telemetry

import (
	"context"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/status"
)

// Server exposes the spectator feed and the metrics registry.
//
// Routes:
//   - /ws      msgpack frame stream (Hub)
//   - /stats   JSON snapshot of the registry
//   - /health  liveness probe
type Server struct {
	hub    *Hub
	status *status.Registry
	srv    *http.Server
	ln     net.Listener
	done   chan struct{}
}

// NewServer creates a server bound to addr once started
func NewServer(addr string, hub *Hub, reg *status.Registry) *Server {
	s := &Server{hub: hub, status: reg, done: make(chan struct{})}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the route mux
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", s.hub)
	mux.HandleFunc("/stats", s.handleStats)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start listens and serves in the background.
// A listen failure is returned; the caller decides whether to continue without telemetry.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return errors.Wrapf(err, "telemetry listen on %s", s.srv.Addr)
	}
	s.ln = ln
	log.Printf("telemetry: listening on %s", ln.Addr())

	core.Go(func() {
		defer close(s.done)
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("telemetry: serve: %v", err)
		}
	})
	return nil
}

// Addr returns the bound address, empty before Start
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Shutdown disconnects spectators and stops the listener
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	if s.ln == nil {
		return nil
	}
	err := s.srv.Shutdown(ctx)
	select {
	case <-s.done:
	case <-ctx.Done():
	}
	return err
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.status.Snapshot()); err != nil {
		log.Printf("telemetry: stats: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
