// Package scenario runs configured sequences of array operations.
//
// A [Runner] takes a [config.Config], builds the named arrays for the chosen
// element type and applies each step through a [Registry] of handlers.
// Container failures (bad index, negative length, division by zero) are
// recorded on the step and the run continues; problems with the scenario
// itself (unknown op, unknown array, missing field) stop the run with a
// [StepError].
package scenario
