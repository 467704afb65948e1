package scenario

import (
	"errors"
	"fmt"

	"github.com/san-kum/dynvec/internal/dynarray"
)

var (
	ErrUnknownOp    = errors.New("scenario: unknown op")
	ErrUnknownArray = errors.New("scenario: unknown array")
	ErrMissingField = errors.New("scenario: missing field")
)

// StepError wraps a scenario error with the step that caused it.
type StepError struct {
	Index   int
	Op      string
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Op, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}

// IsContainerError reports whether err came from the array itself rather
// than from the scenario.
func IsContainerError(err error) bool {
	return errors.Is(err, dynarray.ErrInvalidArgument) ||
		errors.Is(err, dynarray.ErrIndexOutOfRange) ||
		errors.Is(err, dynarray.ErrDivisionByZero)
}
