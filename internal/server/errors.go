// Package server provides the HTTP API for the ATS analytics dashboard.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrVersionNotFound indicates a resume version was not found
type ErrVersionNotFound struct {
	ID uuid.UUID
}

func (e *ErrVersionNotFound) Error() string {
	return fmt.Sprintf("version not found: %s", e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrStoreUnavailable indicates the version store could not be reached
type ErrStoreUnavailable struct {
	Cause error
}

func (e *ErrStoreUnavailable) Error() string {
	return fmt.Sprintf("version store unavailable: %v", e.Cause)
}

func (e *ErrStoreUnavailable) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrVersionNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
