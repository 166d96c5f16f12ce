// SPDX-License-Identifier: MIT
// Package: linpred
//
// Purpose:
//  - Reject invalid requests before any allocation or computation, so no
//    partial output ever exists for them.
//  - Fixed check sequence: NotNil → Rank → NonEmpty → Axis → Order.

package linpred

import (
	"fmt"

	"github.com/cournape/talkbox/ndarray"
)

// validateLane checks a single lane of length n against order.
// Complexity: O(1).
func validateLane(n, order int) error {
	if n < 1 {
		return invalidf("cannot operate on empty array")
	}
	if order < 0 {
		return invalidf("order must be >= 0, got %d", order)
	}
	if order >= n {
		return invalidf("order should be <= size-1 (order %d, size %d)", order, n)
	}

	return nil
}

// validateRequest checks seq, order and axis for Levinson and returns the
// normalized lag axis and its length.
// Errors: ErrInvalidArgument (wrapping the ndarray sentinel where one applies).
// Complexity: O(rank).
func validateRequest(seq *ndarray.Array, order, axis int) (lagAxis, n int, err error) {
	if err = ndarray.ValidateNotNil(seq); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if err = ndarray.ValidateMinRank(seq, 1); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if err = ndarray.ValidateNonEmpty(seq); err != nil {
		return 0, 0, fmt.Errorf("%w: cannot operate on empty array: %w", ErrInvalidArgument, err)
	}
	if lagAxis, err = ndarray.NormalizeAxis(axis, seq.Rank()); err != nil {
		return 0, 0, fmt.Errorf("%w: axis %d for rank %d: %w", ErrInvalidArgument, axis, seq.Rank(), err)
	}
	n, _ = seq.Dim(lagAxis)
	if err = validateLane(n, order); err != nil {
		return 0, 0, err
	}

	return lagAxis, n, nil
}
