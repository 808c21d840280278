package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/greenscore-dev/greenscore/internal/logger"
	"github.com/greenscore-dev/greenscore/internal/model"
	"github.com/greenscore-dev/greenscore/internal/report"
)

type reportResponse struct {
	RunID         string                  `json:"run_id"`
	GeneratedAt   time.Time               `json:"generated_at"`
	Summary       report.Summary          `json:"summary"`
	TopUsers      []model.UserProfile     `json:"top_users"`
	TopCategories []report.CategoryAmount `json:"top_categories"`
}

func getReport(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := reportResponse{
			RunID:         s.result.RunID,
			GeneratedAt:   s.result.GeneratedAt,
			Summary:       s.summary,
			TopUsers:      report.TopGreenUsers(s.result.Profiles, s.topUsers),
			TopCategories: report.TopCategories(s.result.Enriched, true, s.topCategories),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func getProfiles(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles := s.result.Profiles
		if profiles == nil {
			profiles = []model.UserProfile{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(profiles)
	}
}

type profileResponse struct {
	Profile         model.UserProfile    `json:"profile"`
	Recommendations []string             `json:"recommendations"`
	Benefits        report.BenefitStatus `json:"benefits"`
}

func getProfile(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		raw := chi.URLParam(r, "user_id")
		userID, err := strconv.Atoi(raw)
		if err != nil {
			log.Warn().Str("user_id", raw).Msg("invalid user id param")
			http.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}

		profile, ok := s.result.Profile(userID)
		if !ok {
			log.Debug().Int("user_id", userID).Msg("user not in scoring run")
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		resp := profileResponse{
			Profile:         profile,
			Recommendations: s.gen.For(profile, s.result.UserTransactions(userID)),
			Benefits:        report.BenefitsFor(profile.Tier, profile.GreenScore),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func getTransactions(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		txns := s.result.Enriched
		if raw := r.URL.Query().Get("user_id"); raw != "" {
			userID, err := strconv.Atoi(raw)
			if err != nil {
				log.Warn().Str("user_id", raw).Msg("invalid user id param")
				http.Error(w, "invalid user id", http.StatusBadRequest)
				return
			}
			txns = s.result.UserTransactions(userID)
		}
		if txns == nil {
			txns = []model.EnrichedTransaction{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(txns)
	}
}
