package arcprogress

import (
	"errors"
	"fmt"
)

// Common errors returned or raised by arcprogress.
var (
	// ErrInvalidArgument is wrapped by every configuration error: an angle
	// out of range, a negative width or duration, an unknown cap.
	ErrInvalidArgument = errors.New("arcprogress: invalid argument")

	// ErrZeroMaximum reports a zero maximum. Setters and Config.Validate
	// return it wrapped in a ConfigError; DeterminateSweep panics with it.
	ErrZeroMaximum = errors.New("arcprogress: maximum must not be zero")
)

// ConfigError describes a rejected configuration value.
// It unwraps to ErrInvalidArgument, and to Err when set.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("arcprogress: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns the errors e matches with errors.Is.
func (e *ConfigError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidArgument, e.Err}
	}
	return []error{ErrInvalidArgument}
}

func invalid(field string, value any, reason string) error {
	return &ConfigError{Field: field, Value: value, Reason: reason}
}
