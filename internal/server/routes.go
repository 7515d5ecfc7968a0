package server

import (
	"github.com/gorilla/mux"
)

// Endpoint describes one route for the index listing.
type Endpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// Endpoints returns every route the server exposes.
func Endpoints() []Endpoint {
	return []Endpoint{
		{"GET", "/", "List the available endpoints."},
		{"GET", "/healthz", "Liveness, uptime and the current benchmark state."},
		{"GET", "/reports", "Every finished report, oldest first."},
		{"GET", "/reports/{id}", "One report by run ID."},
		{"GET", "/frame/latest", "The most recent display frame as PNG."},
	}
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleIndex).Methods("GET")
	r.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	r.HandleFunc("/reports", s.handleReports).Methods("GET")
	r.HandleFunc("/reports/{id}", s.handleReport).Methods("GET")
	r.HandleFunc("/frame/latest", s.handleLatestFrame).Methods("GET")
	return r
}
