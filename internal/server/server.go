// Package server exposes a finished scoring run as a read-only HTTP API
// for the dashboard. Restart the server to pick up new data.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/greenscore-dev/greenscore/internal/recommend"
	"github.com/greenscore-dev/greenscore/internal/report"
	"github.com/greenscore-dev/greenscore/internal/scoring"
)

// Server holds one scoring run and the derived report.
type Server struct {
	result        *scoring.Result
	summary       report.Summary
	gen           *recommend.Generator
	topUsers      int
	topCategories int
	log           zerolog.Logger
}

// New creates a Server over a finished scoring run. topUsers and
// topCategories bound the leaderboard lists in the report endpoint.
func New(result *scoring.Result, summary report.Summary, gen *recommend.Generator, topUsers, topCategories int, log zerolog.Logger) *Server {
	return &Server{
		result:        result,
		summary:       summary,
		gen:           gen,
		topUsers:      topUsers,
		topCategories: topCategories,
		log:           log,
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(requestLogger(s.log))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/report", getReport(s))
		r.Get("/profiles", getProfiles(s))
		r.Get("/profiles/{user_id}", getProfile(s))
		r.Get("/transactions", getTransactions(s))
	})

	return r
}

// ListenAndServe starts the API on addr and blocks.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info().
		Str("addr", addr).
		Str("run_id", s.result.RunID).
		Int("users", len(s.result.Profiles)).
		Msg("dashboard API listening")
	return http.ListenAndServe(addr, s.Router())
}
