package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// handleListKeywords returns a user's custom keywords.
func (s *Server) handleListKeywords(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	if s.db == nil {
		s.handleError(w, &ErrNoDatabase{})
		return
	}

	keywords, err := s.db.ListUserKeywords(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list keywords")
		log.Printf("list keywords: %v", err)
		return
	}
	if keywords == nil {
		keywords = []db.UserKeyword{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"keywords": keywords,
		"count":    len(keywords),
	})
}

// handleAddKeyword stores a custom keyword for a user. Adding a duplicate
// (case-insensitive) returns the existing record.
func (s *Server) handleAddKeyword(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	if s.db == nil {
		s.handleError(w, &ErrNoDatabase{})
		return
	}

	var req types.AddKeywordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, &ErrValidation{Field: "keyword", Message: err.Error()})
		return
	}

	keyword, err := s.db.AddUserKeyword(r.Context(), userID, req.Keyword)
	if err != nil {
		if strings.Contains(err.Error(), "keyword") {
			s.handleError(w, &ErrValidation{Field: "keyword", Message: err.Error()})
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "failed to add keyword")
		log.Printf("add keyword: %v", err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, keyword)
}

// handleDeleteKeyword removes one of a user's custom keywords.
func (s *Server) handleDeleteKeyword(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	keywordID, ok := s.pathUUID(w, r, "keyword_id")
	if !ok {
		return
	}
	if s.db == nil {
		s.handleError(w, &ErrNoDatabase{})
		return
	}

	if err := s.db.DeleteUserKeyword(r.Context(), userID, keywordID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			s.handleError(w, &ErrNotFound{Resource: "keyword", ID: keywordID})
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete keyword")
		log.Printf("delete keyword: %v", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathUUID parses a UUID path value, writing a 400 response on failure.
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		s.handleError(w, &ErrValidation{Field: name, Message: "must be a valid UUID"})
		return uuid.Nil, false
	}
	return id, true
}
