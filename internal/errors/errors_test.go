// Package errors tests for error code definitions and error handling.
package errors

import (
	"errors"
	"testing"
)

// TestErrorCodeValues verifies all error codes have non-empty values.
func TestErrorCodeValues(t *testing.T) {
	tests := []struct {
		name string
		code ErrorCode
	}{
		// General errors
		{"internal", ErrInternal},
		{"invalid", ErrInvalid},
		{"not found", ErrNotFound},
		{"validation", ErrValidation},

		// Storage errors
		{"storage", ErrStorage},
		{"storage write", ErrStorageWrite},
		{"document corrupt", ErrDocumentCorrupt},

		// Record errors
		{"record invalid", ErrRecordInvalid},
		{"task not found", ErrTaskNotFound},
		{"alert not found", ErrAlertNotFound},

		// Export/import errors
		{"export failed", ErrExportFailed},
		{"import failed", ErrImportFailed},

		// Mirror errors
		{"mirror not configured", ErrMirrorNotConfigured},
		{"mirror failed", ErrMirrorFailed},

		// Config errors
		{"config invalid", ErrConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code == "" {
				t.Errorf("ErrorCode %q should not be empty", tt.name)
			}
		})
	}
}

// TestAppError_Error verifies error message formatting.
func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		want     string
	}{
		{
			name:     "error without underlying error",
			appError: &AppError{Code: ErrInternal, Message: "something failed"},
			want:     "[INTERNAL_ERROR] something failed",
		},
		{
			name:     "error with underlying error",
			appError: &AppError{Code: ErrStorage, Message: "save failed", Err: errors.New("disk full")},
			want:     "[STORAGE_ERROR] save failed: disk full",
		},
		{
			name:     "not found error",
			appError: &AppError{Code: ErrNotFound, Message: "task not found"},
			want:     "[NOT_FOUND] task not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appError.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestWrap verifies error wrapping preserves the cause.
func TestWrap(t *testing.T) {
	cause := errors.New("quota exceeded")
	wrapped := Wrap(ErrStorageWrite, "could not persist document", cause)

	if wrapped.Code != ErrStorageWrite {
		t.Errorf("Code = %v, want ErrStorageWrite", wrapped.Code)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if wrapped.Unwrap() != cause {
		t.Error("Unwrap() should return the cause")
	}
}

// TestIs verifies code matching.
func TestIs(t *testing.T) {
	err := New(ErrImportFailed, "invalid JSON")

	if !Is(err, ErrImportFailed) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrExportFailed) {
		t.Error("Is() should not match a different code")
	}
	if Is(errors.New("plain"), ErrImportFailed) {
		t.Error("Is() should not match a non-AppError")
	}
}
