// Package errors provides error code definitions shared across the backend.
package errors

import "fmt"

// ErrorCode represents a unique error code surfaced to the UI layer.
type ErrorCode string

const (
	// General errors
	ErrInternal   ErrorCode = "INTERNAL_ERROR"
	ErrInvalid    ErrorCode = "INVALID_INPUT"
	ErrNotFound   ErrorCode = "NOT_FOUND"
	ErrValidation ErrorCode = "VALIDATION_ERROR"

	// Storage errors
	ErrStorage         ErrorCode = "STORAGE_ERROR"
	ErrStorageWrite    ErrorCode = "STORAGE_WRITE_FAILED"
	ErrDocumentCorrupt ErrorCode = "DOCUMENT_CORRUPT"

	// Record errors
	ErrRecordInvalid ErrorCode = "RECORD_INVALID"
	ErrTaskNotFound  ErrorCode = "TASK_NOT_FOUND"
	ErrAlertNotFound ErrorCode = "ALERT_NOT_FOUND"

	// Export/import errors
	ErrExportFailed ErrorCode = "EXPORT_FAILED"
	ErrImportFailed ErrorCode = "IMPORT_FAILED"

	// Mirror errors
	ErrMirrorNotConfigured ErrorCode = "MIRROR_NOT_CONFIGURED"
	ErrMirrorFailed        ErrorCode = "MIRROR_FAILED"

	// Config errors
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"
)

// AppError represents an application error with code and message.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an error code.
func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Is checks if an error is of a specific code.
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}
