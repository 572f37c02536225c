package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents a structured error code
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// Database errors
	ErrCodeDatabaseConnection ErrorCode = "DATABASE_CONNECTION"
	ErrCodeDatabaseQuery      ErrorCode = "DATABASE_QUERY"
	ErrCodeDatabaseMigration  ErrorCode = "DATABASE_MIGRATION"

	// Resource errors
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
	ErrCodeConflict      ErrorCode = "CONFLICT"

	// Validation errors
	ErrCodeValidation   ErrorCode = "VALIDATION"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"

	// Timeline and annotation domain errors
	ErrCodeDecodeFailure          ErrorCode = "DECODE_FAILURE"
	ErrCodeReferencedByAnnotation ErrorCode = "REFERENCED_BY_ANNOTATION"
	ErrCodeInvalidFormat          ErrorCode = "INVALID_FORMAT"
	ErrCodeUnknownEventType       ErrorCode = "UNKNOWN_EVENT_TYPE"
	ErrCodeNoActiveSegment        ErrorCode = "NO_ACTIVE_SEGMENT"
	ErrCodeInvalidBinWidth        ErrorCode = "INVALID_BIN_WIDTH"

	// Internal errors
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// AppError represents a structured application error
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  map[string]interface{} `json:"details,omitempty"`
	Cause    error                  `json:"-"`
	HTTPCode int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// GetHTTPCode returns the appropriate HTTP status code
func (e *AppError) GetHTTPCode() int {
	if e.HTTPCode != 0 {
		return e.HTTPCode
	}
	return getDefaultHTTPCode(e.Code)
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Newf creates a new AppError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(cause error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Cause:    cause,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// getDefaultHTTPCode returns the default HTTP status code for an error code
func getDefaultHTTPCode(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound, ErrCodeUnknownEventType:
		return http.StatusNotFound
	case ErrCodeAlreadyExists, ErrCodeConflict, ErrCodeReferencedByAnnotation, ErrCodeNoActiveSegment:
		return http.StatusConflict
	case ErrCodeValidation, ErrCodeInvalidInput, ErrCodeMissingField, ErrCodeInvalidFormat, ErrCodeInvalidBinWidth:
		return http.StatusBadRequest
	case ErrCodeDecodeFailure:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Domain error constructors

// DecodeFailure reports a segment whose decoded duration was zero.
func DecodeFailure(name string) *AppError {
	return New(ErrCodeDecodeFailure, fmt.Sprintf("could not decode %q: duration is zero", name)).
		WithDetail("segment", name)
}

// ReferencedByAnnotation reports a structural mutation blocked by existing annotations.
func ReferencedByAnnotation(operation string) *AppError {
	return New(ErrCodeReferencedByAnnotation, fmt.Sprintf("%s blocked: existing annotations reference the timeline", operation)).
		WithDetail("operation", operation)
}

// InvalidFormat reports an unparsable wall-clock string.
func InvalidFormat(value string) *AppError {
	return New(ErrCodeInvalidFormat, fmt.Sprintf("%q is not a valid HH:MM:SS time", value)).
		WithDetail("value", value)
}

// UnknownEventType reports an event type key absent from the catalog.
func UnknownEventType(key int) *AppError {
	return New(ErrCodeUnknownEventType, fmt.Sprintf("event type %d is not in the catalog", key)).
		WithDetail("event_type", key)
}

// NoActiveSegment reports an operation that needs at least one segment.
func NoActiveSegment() *AppError {
	return New(ErrCodeNoActiveSegment, "no segments loaded")
}

// InvalidBinWidth reports a non-positive histogram bin width.
func InvalidBinWidth(width float64) *AppError {
	return New(ErrCodeInvalidBinWidth, fmt.Sprintf("bin width must be positive, got %g", width)).
		WithDetail("bin_width", width)
}

// NotFound creates a not found error
func NotFound(resource string, id interface{}) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found", resource)).
		WithDetail("resource", resource).
		WithDetail("id", id)
}

// ValidationError creates a validation error
func ValidationError(field string, reason string) *AppError {
	return New(ErrCodeValidation, fmt.Sprintf("validation failed for field '%s': %s", field, reason)).
		WithDetail("field", field).
		WithDetail("reason", reason)
}

// DatabaseError creates a database error
func DatabaseError(operation string, cause error) *AppError {
	return Wrap(cause, ErrCodeDatabaseQuery, fmt.Sprintf("database %s failed", operation)).
		WithDetail("operation", operation)
}

// Is checks if an error carries a specific code
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}

// GetHTTPCode extracts the HTTP status code from an error
func GetHTTPCode(err error) int {
	if appErr, ok := err.(*AppError); ok {
		return appErr.GetHTTPCode()
	}
	return http.StatusInternalServerError
}
