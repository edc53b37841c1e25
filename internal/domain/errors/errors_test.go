package errors

import (
	stdErrors "errors"
	"strings"
	"testing"

	"github.com/ovenside/storefront/internal/domain/model"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"invalid credentials", ErrInvalidCredentials},
		{"no windows", ErrNoWindowsAvailable},
		{"invalid window", ErrInvalidWindow},
		{"already published", ErrAlreadyPublished},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestValidationErrorMessageListsAllFields(t *testing.T) {
	err := NewValidationError(map[string]string{
		"title":       "required",
		"description": "too long",
	})
	msg := err.Error()
	if !strings.Contains(msg, "title: required") {
		t.Fatalf("expected title violation in %q", msg)
	}
	if !strings.Contains(msg, "description: too long") {
		t.Fatalf("expected description violation in %q", msg)
	}
}

func TestNotReadyErrorMessage(t *testing.T) {
	err := &NotReadyError{Missing: []model.ReadinessReason{model.ReasonNoMenuItems, model.ReasonNoPickupWindows}}
	msg := err.Error()
	if !strings.Contains(msg, string(model.ReasonNoMenuItems)) || !strings.Contains(msg, string(model.ReasonNoPickupWindows)) {
		t.Fatalf("expected both reasons in %q", msg)
	}
}
