// SPDX-License-Identifier: MIT
// Package linpred: sentinel error set.
// Every failure of Levinson/Levinson1D matches exactly one of these sentinels
// via errors.Is. Failures raised inside the recursion are additionally
// wrapped in *StepError so callers can recover the failing row and step.
// Nothing is retried: the computation is deterministic.

package linpred

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for requests rejected before any
	// allocation: nil or empty input, rank 0, negative order, order >= n,
	// or an axis outside the input rank.
	ErrInvalidArgument = errors.New("linpred: invalid argument")

	// ErrSingularSystem is returned when the prediction error is exactly zero
	// before a division (including a zero-lag autocorrelation of zero).
	ErrSingularSystem = errors.New("linpred: singular system, zero prediction error")

	// ErrNumericalInstability is returned when a coefficient or the
	// prediction error becomes NaN or ±Inf.
	ErrNumericalInstability = errors.New("linpred: non-finite value in recursion")

	// ErrResourceExhausted is returned when an output buffer cannot be
	// allocated. The allocator's own error is wrapped alongside it.
	ErrResourceExhausted = errors.New("linpred: resource exhausted")
)

// StepError attributes a recursion failure to a batch row and a recursion
// step. Step 0 denotes the initialization (zero-lag value); steps 1..order
// are the recursion steps. Row is the lane index along the batch axes (0 for
// a single sequence).
type StepError struct {
	Row  int
	Step int
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("linpred: row %d, step %d: %v", e.Row, e.Step, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *StepError) Unwrap() error { return e.Err }

// invalidf builds an ErrInvalidArgument with a formatted reason.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
