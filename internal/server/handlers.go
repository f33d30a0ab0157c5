package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/dictionary"
	"github.com/jonathan/resume-analyzer/internal/extractor"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// ExtractResponse is the response body for POST /extract.
type ExtractResponse struct {
	Keywords []types.Keyword `json:"keywords"`
	Count    int             `json:"count"`
}

// AnalyzeResponse is the response body for POST /analyze.
type AnalyzeResponse struct {
	Analysis   types.ResumeAnalysis `json:"analysis"`
	AnalysisID *uuid.UUID           `json:"analysis_id,omitempty"`
	JobURL     string               `json:"job_url,omitempty"`
	FromCache  bool                 `json:"from_cache,omitempty"`
}

// ScoreResponse is the response body for POST /score.
type ScoreResponse struct {
	Result   types.ScoringResult `json:"result"`
	Strategy string              `json:"strategy"`
}

// handleExtract extracts keywords from a single document.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req types.ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, &ErrValidation{Field: "text", Message: err.Error()})
		return
	}

	snap := s.dict.WithCustom(dictionary.CleanCustom(req.CustomKeywords))
	if req.UseAI && s.suggester != nil {
		suggested, err := s.suggester.SuggestKeywords(r.Context(), req.Text)
		if err != nil {
			// Suggestions are best-effort; fall back to the static dictionary.
			log.Printf("keyword suggestion failed: %v", err)
		} else {
			snap = snap.Merge(suggested)
		}
	}

	keywords := extractor.Extract(req.Text, snap)
	s.jsonResponse(w, http.StatusOK, ExtractResponse{
		Keywords: keywords,
		Count:    len(keywords),
	})
}

// handleAnalyze runs a full resume-versus-job analysis.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, jobText, fromCache, ok := s.analysisInputs(w, r)
	if !ok {
		return
	}

	snap, ok := s.snapshotFor(w, r, req, jobText)
	if !ok {
		return
	}

	result := analyzer.Analyze(req.ResumeText, jobText, snap)

	resp := AnalyzeResponse{
		Analysis:  result,
		JobURL:    req.JobURL,
		FromCache: fromCache,
	}

	if req.Save && req.UserID != "" {
		if s.db == nil {
			s.handleError(w, &ErrNoDatabase{})
			return
		}
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			s.handleError(w, &ErrValidation{Field: "user_id", Message: "must be a valid UUID"})
			return
		}
		id, err := s.db.SaveAnalysis(r.Context(), userID, req.JobURL, result)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "failed to save analysis")
			log.Printf("save analysis: %v", err)
			return
		}
		resp.AnalysisID = &id
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleScore runs the composite (or keyword-only) resume scorer.
// The strategy is selected with the ?strategy= query parameter.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	req, jobText, _, ok := s.analysisInputs(w, r)
	if !ok {
		return
	}

	snap, ok := s.snapshotFor(w, r, req, jobText)
	if !ok {
		return
	}

	analysis := analyzer.Analyze(req.ResumeText, jobText, snap)
	jobKeywords := append(append([]types.Keyword{}, analysis.MatchedKeywords...), analysis.MissingKeywords...)

	scorer := scoring.ForStrategy(r.URL.Query().Get("strategy"))
	result := scorer.Score(scoring.Input{
		ResumeText:  req.ResumeText,
		JobText:     jobText,
		Matched:     analysis.MatchedKeywords,
		Missing:     analysis.MissingKeywords,
		JobKeywords: jobKeywords,
	})

	s.jsonResponse(w, http.StatusOK, ScoreResponse{
		Result:   result,
		Strategy: scorer.Name(),
	})
}

// handlePlan turns a score breakdown into a prioritized optimization plan.
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req types.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, &ErrValidation{Field: "current_score", Message: err.Error()})
		return
	}

	plan := scoring.GenerateOptimizationPlan(req.Breakdown, req.MissingKeywords)
	s.jsonResponse(w, http.StatusOK, map[string]any{"plan": plan})
}

// handleCompare diffs two resume versions.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req types.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, &ErrValidation{Field: "old_text", Message: err.Error()})
		return
	}

	snap := s.dict.WithCustom(dictionary.CleanCustom(req.CustomKeywords))
	diff := scoring.CompareVersions(
		scoring.ResumeVersion{Text: req.OldText, Keywords: extractor.Extract(req.OldText, snap)},
		scoring.ResumeVersion{Text: req.NewText, Keywords: extractor.Extract(req.NewText, snap)},
	)

	s.jsonResponse(w, http.StatusOK, diff)
}

// analysisInputs decodes and validates an AnalyzeRequest, resolving the job
// posting text from either the inline body or a fetched URL. Returns ok=false
// after writing an error response.
func (s *Server) analysisInputs(w http.ResponseWriter, r *http.Request) (req types.AnalyzeRequest, jobText string, fromCache bool, ok bool) {
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return req, "", false, false
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, &ErrValidation{Field: "resume_text", Message: err.Error()})
		return req, "", false, false
	}
	if (req.JobText == "") == (req.JobURL == "") {
		s.handleError(w, &ErrValidation{Field: "job_text", Message: "exactly one of job_text or job_url is required"})
		return req, "", false, false
	}

	jobText = req.JobText
	if req.JobURL != "" {
		fetched, err := s.fetcher.JobPosting(r.Context(), req.JobURL)
		if err != nil {
			s.handleError(w, &ErrJobFetch{URL: req.JobURL, Err: err})
			return req, "", false, false
		}
		jobText = fetched.Text
		fromCache = fetched.FromCache
	}

	return req, jobText, fromCache, true
}

// snapshotFor builds the dictionary snapshot for an analysis request:
// built-in terms, request custom keywords, the user's stored keywords, and
// optionally AI-suggested terms from the job posting. Returns ok=false after
// writing an error response.
func (s *Server) snapshotFor(w http.ResponseWriter, r *http.Request, req types.AnalyzeRequest, jobText string) (dictionary.Snapshot, bool) {
	snap := s.dict.WithCustom(dictionary.CleanCustom(req.CustomKeywords))

	if req.UserID != "" && s.db != nil {
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			s.handleError(w, &ErrValidation{Field: "user_id", Message: "must be a valid UUID"})
			return snap, false
		}
		stored, err := s.db.ListUserKeywords(r.Context(), userID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "failed to load user keywords")
			log.Printf("list user keywords: %v", err)
			return snap, false
		}
		snap = snap.Merge(dictionary.Snapshot{Custom: db.KeywordTexts(stored)})
	}

	if req.UseAI && s.suggester != nil {
		suggested, err := s.suggester.SuggestKeywords(r.Context(), jobText)
		if err != nil {
			log.Printf("keyword suggestion failed: %v", err)
		} else {
			snap = snap.Merge(suggested)
		}
	}

	return snap, true
}
