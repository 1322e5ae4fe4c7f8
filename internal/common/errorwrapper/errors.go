package errorwrapper

import (
	"errors"
	"fmt"
)

// Common error types used across the library
var (
	// ErrInvalidURL indicates a URL that cannot be parsed safely
	ErrInvalidURL = errors.New("invalid URL")
	// ErrInvalidArgType indicates a caller passed a value of an unsupported type
	ErrInvalidArgType = errors.New("invalid argument type")
	// ErrInvalidConfiguration indicates configuration issues
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// InvalidURLError reports a URL rejected because its hostname became empty or
// picked up a forbidden character after ASCII-compatible encoding.
type InvalidURLError struct {
	URL      string
	Hostname string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL '%s': hostname '%s' is not allowed after encoding", e.URL, e.Hostname)
}

// Is lets errors.Is match the ErrInvalidURL sentinel.
func (e *InvalidURLError) Is(target error) bool {
	return target == ErrInvalidURL
}

// NewInvalidURLError creates a new invalid URL error
func NewInvalidURLError(url, hostname string) *InvalidURLError {
	return &InvalidURLError{
		URL:      url,
		Hostname: hostname,
	}
}

// ArgTypeError reports a value of an unsupported type handed to a public operation.
type ArgTypeError struct {
	Op    string
	Value any
}

func (e *ArgTypeError) Error() string {
	return fmt.Sprintf("%s: unsupported argument of type %T", e.Op, e.Value)
}

func (e *ArgTypeError) Unwrap() error {
	return ErrInvalidArgType
}

// NewArgTypeError creates a new argument type error
func NewArgTypeError(op string, value any) *ArgTypeError {
	return &ArgTypeError{
		Op:    op,
		Value: value,
	}
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

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Section string
	Field   string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if e.Section != "" && e.Field != "" {
		return fmt.Sprintf("configuration error in section '%s', field '%s': %s", e.Section, e.Field, e.Reason)
	} else if e.Section != "" {
		return fmt.Sprintf("configuration error in section '%s': %s", e.Section, e.Reason)
	}
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(section, field, reason string) *ConfigurationError {
	return &ConfigurationError{
		Section: section,
		Field:   field,
		Reason:  reason,
	}
}
