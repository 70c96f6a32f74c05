package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrInvalidInput covers empty data, zero variables, non-positive
	// effective sample sizes, out-of-range success counts and confidence
	// levels.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLengthMismatch is returned when variables in a multivariate
	// computation do not share a common length.
	ErrLengthMismatch = errors.New("variable length mismatch")

	// ErrInsufficientData is returned when a computation needs at least
	// one complete case and none exist.
	ErrInsufficientData = errors.New("insufficient data for analysis")
)

// Error constructors with context
func NewInvalidInputError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}

func NewInvalidInputErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func NewLengthMismatchError(variable string, got, want int) error {
	return fmt.Errorf("%w: variable %q has length %d, expected %d", ErrLengthMismatch, variable, got, want)
}

// Error checking helpers
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsLengthMismatch(err error) bool {
	return errors.Is(err, ErrLengthMismatch)
}
