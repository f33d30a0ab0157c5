package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", &ErrValidation{Field: "keyword", Message: "required"}, http.StatusBadRequest},
		{"not found", &ErrNotFound{Resource: "analysis", ID: id}, http.StatusNotFound},
		{"no database", &ErrNoDatabase{}, http.StatusServiceUnavailable},
		{"job fetch", &ErrJobFetch{URL: "https://example.com", Err: errors.New("timeout")}, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestErrJobFetch_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := &ErrJobFetch{URL: "https://example.com/job", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "example.com")
}

func TestErrNotFound_Message(t *testing.T) {
	id := uuid.New()
	err := &ErrNotFound{Resource: "keyword", ID: id}
	assert.Contains(t, err.Error(), "keyword not found")
	assert.Contains(t, err.Error(), id.String())
}
