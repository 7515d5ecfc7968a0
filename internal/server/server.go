package server

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/ironsheep/colorbench/internal/metrics"
)

// Server holds published results and serves them over HTTP.
type Server struct {
	mu      sync.RWMutex
	reports []metrics.Report
	byID    map[string]int
	latest  image.Image
	state   func() string
	started time.Time

	router *mux.Router
}

// New creates a server with no published results.
func New() *Server {
	s := &Server{
		byID:    make(map[string]int),
		started: time.Now(),
	}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// AddReport publishes a finished report. A report with an ID already seen
// replaces the earlier one.
func (s *Server) AddReport(r metrics.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.byID[r.RunID]; ok {
		s.reports[i] = r
		return
	}
	s.byID[r.RunID] = len(s.reports)
	s.reports = append(s.reports, r)
}

// SetLatestFrame publishes the frame served by /frame/latest.
func (s *Server) SetLatestFrame(img image.Image) {
	s.mu.Lock()
	s.latest = img
	s.mu.Unlock()
}

// SetStateFunc registers a callback reporting the harness state in /healthz.
func (s *Server) SetStateFunc(f func() string) {
	s.mu.Lock()
	s.state = f
	s.mu.Unlock()
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Handler:      s.router,
		Addr:         addr,
		WriteTimeout: 30 * time.Second,
		ReadTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server: listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		slog.Info("server: stopped")
		return nil
	}
}
