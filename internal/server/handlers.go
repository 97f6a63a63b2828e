package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tmorita/ats-analytics/internal/keywords"
	"github.com/tmorita/ats-analytics/internal/resume"
	"github.com/tmorita/ats-analytics/internal/scoring"
	"github.com/tmorita/ats-analytics/internal/types"
)

// handleAnalytics builds and returns the full dashboard report.
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	report, err := s.aggregator.BuildReport(r.Context())
	if err != nil {
		s.logger.Error("failed to build report", zap.Error(err))
		s.errorResponse(w, HTTPStatus(&ErrStoreUnavailable{Cause: err}), "failed to build report")
		return
	}

	reportsBuilt.Inc()
	s.jsonResponse(w, http.StatusOK, report)
}

// handleExportCSV streams the report as a CSV attachment.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	report, err := s.aggregator.BuildReport(r.Context())
	if err != nil {
		s.logger.Error("failed to build report", zap.Error(err))
		s.errorResponse(w, HTTPStatus(&ErrStoreUnavailable{Cause: err}), "failed to build report")
		return
	}

	reportsBuilt.Inc()
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="ats_report.csv"`)
	if err := report.WriteCSV(w); err != nil {
		s.logger.Error("failed to write CSV export", zap.Error(err))
	}
}

// handleListVersions returns stored version metadata.
func (s *Server) handleListVersions(w http.ResponseWriter, r *http.Request) {
	versions, err := s.aggregator.Store.List(r.Context())
	if err != nil {
		s.logger.Error("failed to list versions", zap.Error(err))
		s.errorResponse(w, HTTPStatus(&ErrStoreUnavailable{Cause: err}), "failed to list versions")
		return
	}

	s.jsonResponse(w, http.StatusOK, versions)
}

// handleVersionScore returns the scored breakdown for one stored version.
func (s *Server) handleVersionScore(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid version id")
		return
	}

	report, err := s.aggregator.BuildReport(r.Context())
	if err != nil {
		s.logger.Error("failed to build report", zap.Error(err))
		s.errorResponse(w, HTTPStatus(&ErrStoreUnavailable{Cause: err}), "failed to build report")
		return
	}

	for _, v := range report.Versions {
		if v.ID == id {
			versionsScored.Inc()
			s.jsonResponse(w, http.StatusOK, v)
			return
		}
	}

	notFound := &ErrVersionNotFound{ID: id}
	s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
}

// handleProfile returns the display profile, if a source is configured.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	if s.aggregator.Profile == nil {
		s.errorResponse(w, http.StatusNotFound, "no profile configured")
		return
	}

	profile, err := s.aggregator.Profile.Get(r.Context())
	if err != nil {
		s.logger.Error("failed to load profile", zap.Error(err))
		s.errorResponse(w, HTTPStatus(&ErrStoreUnavailable{Cause: err}), "failed to load profile")
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleScore scores an ad-hoc document posted in the request body.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		verr := &ErrValidation{Field: "request", Message: err.Error()}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	kws := req.Keywords
	if len(kws) == 0 {
		kws = keywords.Derive(resume.FlattenDocument(req.Document), s.aggregator.KeywordLimit)
	}

	scorer := s.aggregator.Scorer
	if req.Policy != "" {
		scorer.Policy = scoring.ParseReadabilityPolicy(req.Policy)
	}

	breakdown, overall := scorer.Score(req.Document, kws)
	versionsScored.Inc()

	s.jsonResponse(w, http.StatusOK, types.ScoreResponse{
		Breakdown: breakdown,
		Overall:   overall,
		Keywords:  kws,
		Warnings:  s.aggregator.Validator.Warnings(req.Document),
	})
}
