package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Standard error types
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrNoText            = errors.New("no text content extracted")
	ErrLanguageUnknown   = errors.New("language could not be detected")
	ErrTooShort          = errors.New("text too short to process")
	ErrBadRequest        = errors.New("bad request")
	ErrNotFound          = errors.New("resource not found")
	ErrValidation        = errors.New("validation error")
	ErrInternal          = errors.New("internal error")
	ErrToolchainMissing  = errors.New("required toolchain not available")
)

// AppError represents an application error with context
type AppError struct {
	Err        error             `json:"-"`
	Message    string            `json:"message"`
	Code       string            `json:"code"`
	StatusCode int               `json:"status_code"`
	Details    map[string]string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code string, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, code string, message string, statusCode int) *AppError {
	return &AppError{
		Err:        err,
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithDetails adds details to an AppError
func (e *AppError) WithDetails(details map[string]string) *AppError {
	e.Details = details
	return e
}

// Common error constructors

func UnsupportedFormat(ext string) *AppError {
	return &AppError{
		Err:        ErrUnsupportedFormat,
		Code:       "UNSUPPORTED_FORMAT",
		Message:    fmt.Sprintf("unsupported file format: %s", ext),
		StatusCode: http.StatusUnsupportedMediaType,
	}
}

func NoText(name string) *AppError {
	return &AppError{
		Err:        ErrNoText,
		Code:       "NO_TEXT",
		Message:    fmt.Sprintf("no text extracted from %s", name),
		StatusCode: http.StatusUnprocessableEntity,
	}
}

func BadRequest(message string) *AppError {
	return &AppError{
		Err:        ErrBadRequest,
		Code:       "BAD_REQUEST",
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Err:        ErrNotFound,
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
	}
}

func Validation(details map[string]string) *AppError {
	return &AppError{
		Err:        ErrValidation,
		Code:       "VALIDATION_ERROR",
		Message:    "validation failed",
		StatusCode: http.StatusBadRequest,
		Details:    details,
	}
}

func Internal(message string) *AppError {
	return &AppError{
		Err:        ErrInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
	}
}

func ToolchainMissing(tool string) *AppError {
	return &AppError{
		Err:        ErrToolchainMissing,
		Code:       "TOOLCHAIN_MISSING",
		Message:    fmt.Sprintf("%s is not installed or not on PATH", tool),
		StatusCode: http.StatusServiceUnavailable,
	}
}

// Is checks if the error matches a target error
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As attempts to convert an error to a specific type
func As(err error, target any) bool {
	return errors.As(err, target)
}
