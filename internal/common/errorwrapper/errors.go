package errorwrapper

import (
	"errors"
	"fmt"
)

// Common error types used across the application
var (
	// ErrInvalidInput indicates invalid user input
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
	// ErrInvalidConfiguration indicates configuration issues
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrServiceUnavailable indicates a remote service is not available
	ErrServiceUnavailable = errors.New("service unavailable")
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return fmt.Errorf("%s: <nil>", message)
	}
	return fmt.Errorf("%s: %w", message, err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// PipelineStepError identifies which pipeline step a failure came from.
// The wrapped error is the unmodified service client error.
type PipelineStepError struct {
	Step    string
	Message string
	Wrapped error
}

func (e *PipelineStepError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("pipeline step '%s' failed: %s: %v", e.Step, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("pipeline step '%s' failed: %s", e.Step, e.Message)
}

func (e *PipelineStepError) Unwrap() error {
	return e.Wrapped
}

// NewPipelineStepError creates a new pipeline step error
func NewPipelineStepError(step, message string, wrapped error) *PipelineStepError {
	return &PipelineStepError{
		Step:    step,
		Message: message,
		Wrapped: wrapped,
	}
}
