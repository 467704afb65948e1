package dynarray

import (
	"errors"
	"fmt"
)

// Domain errors for array operations.
var (
	// ErrInvalidArgument indicates a negative requested length.
	ErrInvalidArgument = errors.New("dynarray: invalid argument")

	// ErrIndexOutOfRange indicates an index outside [0, length).
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")

	// ErrDivisionByZero indicates a binary division by a zero scalar.
	ErrDivisionByZero = errors.New("dynarray: division by zero")
)

// IndexError reports the offending index and the array length at the time
// of access.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("dynarray: index %d must not be negative", e.Index)
	}
	return fmt.Sprintf("dynarray: index %d out of range [0, %d)", e.Index, e.Length)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// LengthError reports a rejected construction length.
type LengthError struct {
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("dynarray: length %d must be greater or equal zero", e.Length)
}

func (e *LengthError) Unwrap() error {
	return ErrInvalidArgument
}
