package testutil

import (
	"errors"
	"testing"
	"time"

	apperrors "sosio/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertNewestFirst fails the test unless dates are in non-increasing order.
func AssertNewestFirst(t *testing.T, dates []time.Time) {
	t.Helper()

	for i := 1; i < len(dates); i++ {
		if dates[i].After(dates[i-1]) {
			t.Fatalf("dates not newest first at index %d: %v after %v", i, dates[i], dates[i-1])
		}
	}
}
