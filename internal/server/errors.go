package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a requested resource was not found
type ErrNotFound struct {
	Resource string
	ID       uuid.UUID
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrNoDatabase indicates a persistence endpoint was called without a
// configured database
type ErrNoDatabase struct{}

func (e *ErrNoDatabase) Error() string {
	return "persistence is not configured; set a database URL to enable saved keywords and analyses"
}

// ErrJobFetch indicates fetching a job posting URL failed
type ErrJobFetch struct {
	URL string
	Err error
}

func (e *ErrJobFetch) Error() string {
	return fmt.Sprintf("failed to fetch job posting from %s: %v", e.URL, e.Err)
}

func (e *ErrJobFetch) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrNotFound:
		return http.StatusNotFound
	case *ErrNoDatabase:
		return http.StatusServiceUnavailable
	case *ErrJobFetch:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
