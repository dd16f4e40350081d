package multierr

import (
	"bytes"
	"errors"
	"fmt"
)

// Error collects independent errors discovered during a single validation
// pass, so that a caller sees every wiring or resolution problem at once
// instead of fixing them one re-run at a time.
type Error []error

func (e Error) Error() string {
	switch len(e) {
	case 0:
		return "<nil>"

	case 1:
		return e[0].Error()

	default:
		buf := new(bytes.Buffer)
		fmt.Fprintf(buf, "%d errors occurred:", len(e))
		for _, err := range e {
			fmt.Fprintf(buf, `
	* %v`, err)
		}
		return buf.String()
	}
}

// Append will mutate e and append the error. Will no-op if `err == nil`.
//
//	var e Error
//	e.Append(err)
func (e *Error) Append(err error) {
	switch {
	case e == nil:
		// nothing we can do without the slice header

	case err == nil:
		// Do nothing

	case *e == nil:
		*e = Error{err}

	default:
		*e = append(*e, err)
	}
}

// ErrOrNil converts e into a plain error. A typed-nil Error compares unequal
// to nil, so callers returning an Error directly would always look like a
// failure; this returns a true nil when empty and unwraps a singleton.
func (e Error) ErrOrNil() error {
	switch len(e) {
	case 0:
		return nil

	case 1:
		return e[0]

	default:
		return e
	}
}

// Unwrap implements the interface used in [errors.Unwrap]
func (e Error) Unwrap() error {
	switch len(e) {
	case 0:
		return nil

	case 1:
		return e[0]

	default:
		return e[1:]
	}
}

// As implements the interface used in [errors.As] by iterating through the
// members, returning true on the first match.
func (e Error) As(target interface{}) bool {
	for _, err := range e {
		if errors.As(err, target) {
			return true
		}
	}
	return false
}

// Is implements the interface used in [errors.Is] by iterating through the
// members, returning true on the first match.
func (e Error) Is(target error) bool {
	for _, err := range e {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
