package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// Scan errors
	ErrScanDir    ErrorCode = "SCAN_DIR"
	ErrScanAccess ErrorCode = "SCAN_ACCESS"

	// Rename execution errors
	ErrRenameExecute ErrorCode = "RENAME_EXECUTE"
	ErrCopyExecute   ErrorCode = "COPY_EXECUTE"
)

// RenamrError represents a structured error with code and details
type RenamrError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RenamrError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RenamrError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RenamrError) Is(target error) bool {
	var targetErr *RenamrError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithDetail adds a detail key/value to the error and returns it
func (e *RenamrError) WithDetail(key string, value interface{}) *RenamrError {
	e.Details[key] = value
	return e
}

// New creates a new RenamrError with the given code and message
func New(code ErrorCode, message string) *RenamrError {
	return &RenamrError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RenamrError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RenamrError {
	return &RenamrError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RenamrError
func Wrap(err error, code ErrorCode, message string) *RenamrError {
	if err == nil {
		return nil
	}
	return &RenamrError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RenamrError {
	if err == nil {
		return nil
	}
	return &RenamrError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// GetCode extracts the error code from an error, returning ErrUnknown for
// errors that are not RenamrError values
func GetCode(err error) ErrorCode {
	var re *RenamrError
	if errors.As(err, &re) {
		return re.Code
	}
	return ErrUnknown
}

// IsCode reports whether err carries the given code
func IsCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}
