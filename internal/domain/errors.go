package domain

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// MsgRequired is the field message for a missing required value.
const MsgRequired = "is required"

// Conflict refinements. Both satisfy errors.Is(err, ErrConflict) so callers
// that only care about "someone else holds it" need a single check.
var (
	// ErrAlreadyInProgress is returned when a lock key is already held.
	ErrAlreadyInProgress = fmt.Errorf("already in progress: %w", ErrConflict)

	// ErrLimitExceeded is returned when every slot of a rate-limit bucket is held.
	ErrLimitExceeded = fmt.Errorf("rate limit exceeded: %w", ErrConflict)
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	slices.Sort(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError is shorthand for a single-field ValidationError.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// benignCodes are external error codes that mean the compensation target is
// already in the desired state.
var benignCodes = []string{
	"AlreadyCanceled",
	"AlreadyReleased",
	"TransactionNotFound",
	"ReservationNotFound",
}

// ExternalError is the normalized form of a failure reported by a remote
// service collaborator. It keeps the service's own code and name so that the
// ledger can record them, and unwraps to the matching domain sentinel.
type ExternalError struct {
	Service string
	Name    string
	Code    string
	Message string
	Status  int
}

func (e *ExternalError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (%s): %s", e.Service, e.Name, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Service, e.Name, e.Message)
}

// Unwrap maps the HTTP status reported by the remote service to a sentinel.
func (e *ExternalError) Unwrap() error {
	switch {
	case e.Status == http.StatusNotFound:
		return ErrNotFound
	case e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity:
		return ErrValidation
	case e.Status == http.StatusConflict:
		return ErrConflict
	case e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden:
		return ErrForbidden
	case e.Status >= http.StatusInternalServerError || e.Status == 0:
		return ErrUnavailable
	default:
		return nil
	}
}

// IsBenign reports whether the error signals that the target was already
// canceled or released. Only compensation paths may swallow benign errors.
func (e *ExternalError) IsBenign() bool {
	return slices.Contains(benignCodes, e.Code)
}

// IsBenignExternal reports whether err wraps a benign ExternalError.
func IsBenignExternal(err error) bool {
	var ext *ExternalError
	return errors.As(err, &ext) && ext.IsBenign()
}
