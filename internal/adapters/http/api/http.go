// Package api declares HTTP contracts and route registration helpers
// for the read-only results API.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/dugout/internal/adapters/repository"
)

// Server wires HTTP routes for the results API.
type Server struct {
	store   repository.Store
	siteDir string
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithSiteDir serves the rendered static site at the root path. Empty
// disables the site routes.
func WithSiteDir(dir string) Option {
	return func(s *Server) {
		s.siteDir = dir
	}
}

// NewServer creates an API server backed by the given result store.
func NewServer(store repository.Store, opts ...Option) *Server {
	s := &Server{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches all HTTP routes to mux. Specific paths first.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.handleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.handleMetrics)
	mux.HandleFunc("/api/power-rankings", MetricsMiddleware(s.handlePowerRankings, "power-rankings"))
	mux.HandleFunc("/api/luck", MetricsMiddleware(s.handleLuck, "luck"))
	mux.HandleFunc("/api/h2h", MetricsMiddleware(s.handleH2H, "h2h"))
	mux.HandleFunc("/api/elo", MetricsMiddleware(s.handleElo, "elo"))
	if s.siteDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(s.siteDir)))
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeStoreError maps repository sentinel errors onto HTTP statuses.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrEmpty):
		writeError(w, http.StatusNotFound, "not_found", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal", err)
	}
}
