package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gorilla/mux"

	"github.com/ironsheep/colorbench/internal/metrics"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Endpoints())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	state := "unknown"
	if s.state != nil {
		state = s.state()
	}
	n := len(s.reports)
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"state":    state,
		"reports":  n,
		"uptime_s": time.Since(s.started).Seconds(),
	})
}

func (s *Server) handleReports(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	out := make([]metrics.Report, len(s.reports))
	copy(out, s.reports)
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.RLock()
	i, ok := s.byID[id]
	var rep metrics.Report
	if ok {
		rep = s.reports[i]
	}
	s.mu.RUnlock()

	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "no report with id "+id)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleLatestFrame(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	img := s.latest
	s.mu.RUnlock()

	if img == nil {
		writeError(w, http.StatusNotFound, "no_frame", "no frame has been displayed yet")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		slog.Warn("server: frame encode failed", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("server: response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: code, Message: message})
}
