package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ovenside/storefront/internal/domain/model"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNoWindowsAvailable signals that a close time cannot be determined
	// because the event has no pickup windows.
	ErrNoWindowsAvailable = errors.New("no pickup windows available")
	// ErrInvalidWindow flags a window whose start is not before its end.
	// Reaching it past save-time validation indicates an upstream gap.
	ErrInvalidWindow = errors.New("invalid pickup window")
	// ErrAlreadyPublished rejects publishing an event twice.
	ErrAlreadyPublished = errors.New("event already published")
)

// ValidationError carries field-level violations. Every violated rule is
// reported at once so callers can render a complete inline checklist.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError wraps a non-empty field->message map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NotReadyError rejects a draft->published transition, listing every unmet
// precondition together.
type NotReadyError struct {
	Missing []model.ReadinessReason
}

func (e *NotReadyError) Error() string {
	reasons := make([]string, 0, len(e.Missing))
	for _, r := range e.Missing {
		reasons = append(reasons, string(r))
	}
	return "event not ready to publish: " + strings.Join(reasons, ", ")
}
