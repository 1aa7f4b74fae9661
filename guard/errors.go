package guard

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is wrapped when an argument is empty or otherwise invalid.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is wrapped when an argument falls outside its allowed range.
	ErrOutOfRange = errors.New("argument out of range")

	// ErrNilArgument is wrapped when a required argument is nil.
	ErrNilArgument = errors.New("nil argument")
)

// ArgumentError describes a failed guard.
type ArgumentError struct {
	// Param is the name of the offending parameter.
	Param string
	// Message is a human-readable description of the violation.
	Message string
	// Err is the sentinel classifying the violation.
	Err error
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Message)
}

// Unwrap returns the sentinel error.
func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func newArgumentError(sentinel error, param, format string, args ...any) *ArgumentError {
	return &ArgumentError{
		Param:   param,
		Message: fmt.Sprintf(format, args...),
		Err:     sentinel,
	}
}
