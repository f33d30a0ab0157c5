package server

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/db"
)

// handleListAnalyses returns a user's saved analyses, newest first.
// The ?limit= query parameter caps the result count (default 20).
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	if s.db == nil {
		s.handleError(w, &ErrNoDatabase{})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.handleError(w, &ErrValidation{Field: "limit", Message: "must be a positive integer"})
			return
		}
		limit = parsed
	}

	analyses, err := s.db.ListAnalyses(r.Context(), userID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list analyses")
		log.Printf("list analyses: %v", err)
		return
	}
	if analyses == nil {
		analyses = []db.AnalysisSummary{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analyses": analyses,
		"count":    len(analyses),
	})
}

// handleGetAnalysis returns one saved analysis with its full stored result.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	analysisID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	if s.db == nil {
		s.handleError(w, &ErrNoDatabase{})
		return
	}

	analysis, err := s.db.GetAnalysis(r.Context(), analysisID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get analysis")
		log.Printf("get analysis: %v", err)
		return
	}
	if analysis == nil {
		s.handleError(w, &ErrNotFound{Resource: "analysis", ID: analysisID})
		return
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleDeleteAnalysis removes a saved analysis owned by the given user.
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	analysisID, ok := s.pathUUID(w, r, "analysis_id")
	if !ok {
		return
	}
	if s.db == nil {
		s.handleError(w, &ErrNoDatabase{})
		return
	}

	if err := s.db.DeleteAnalysis(r.Context(), userID, analysisID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			s.handleError(w, &ErrNotFound{Resource: "analysis", ID: analysisID})
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete analysis")
		log.Printf("delete analysis: %v", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
