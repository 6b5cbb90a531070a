package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unified error code across the framework.
type ErrorCode string

// Configuration error codes, raised at metric construction time.
const (
	ErrInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Data-integrity error codes, raised during Process or Evaluate.
const (
	ErrShapeMismatch      ErrorCode = "SHAPE_MISMATCH"
	ErrMissingField       ErrorCode = "MISSING_FIELD"
	ErrIndexOutOfRange    ErrorCode = "INDEX_OUT_OF_RANGE"
	ErrNoVisibleKeypoints ErrorCode = "NO_VISIBLE_KEYPOINTS"
)

// Lookup error codes, raised when a mapping lacks an entry for the
// current dataset.
const (
	ErrUnknownDataset ErrorCode = "UNKNOWN_DATASET"
	ErrMissingMeta    ErrorCode = "MISSING_META"
)

// Error represents a structured error with code, message, and metadata.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Metric  string    `json:"metric,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewErrorf creates a new Error with a formatted message.
func NewErrorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithMetric sets the originating metric name.
func (e *Error) WithMetric(metric string) *Error {
	e.Metric = metric
	return e
}

// WrapError wraps an arbitrary error into a structured Error. If err is
// already an *Error it is returned unchanged.
func WrapError(code ErrorCode, message string, err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Code: code, Message: message, Cause: err}
}

// AsError extracts a structured *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) ErrorCode {
	if e, ok := AsError(err); ok {
		return e.Code
	}
	return ""
}

// IsErrorCode reports whether err carries the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code
}
