package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrorsSurviveWrapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", ErrNotFound},
		{"email taken", ErrEmailTaken},
		{"invalid credentials", ErrInvalidCredentials},
		{"empty order", ErrEmptyOrder},
		{"validation", ErrValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("storage: %w", tc.err)
			if !stdErrors.Is(wrapped, tc.err) {
				t.Fatalf("expected wrapped error to match %v", tc.err)
			}
		})
	}
}
