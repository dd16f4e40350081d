package config

import "fmt"

type (
	// MissingFieldError reports a required configuration field that resolved
	// to no value at any precedence level and has no documented default.
	MissingFieldError struct {
		Field string
	}

	// InvalidValueError reports a field whose resolved value could not be
	// interpreted (for example a non-boolean ephemeral flag).
	InvalidValueError struct {
		Field string
		Value string
		Cause error
	}
)

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("configuration field %q has no value and no documented default", e.Field)
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("configuration field %q has invalid value %q: %v", e.Field, e.Value, e.Cause)
}

func (e *InvalidValueError) Unwrap() error {
	return e.Cause
}
