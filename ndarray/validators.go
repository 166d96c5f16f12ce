// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//  - Provide a single, canonical source of truth for common array checks.
//  - Return tagged sentinel errors so call sites can match with errors.Is.
//
// Note:
//  - Composite checks follow a fixed sequence: NotNil → Rank → NonEmpty.
//  - All checks are pure and allocate nothing on the success path.

package ndarray

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the array reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(a *Array) error {
	if a == nil {
		return validatorErrorf("ValidateNotNil", ErrNilArray)
	}

	return nil
}

// ValidateMinRank ensures a has at least want axes.
// Assumes a is not nil.
// Complexity: O(1).
func ValidateMinRank(a *Array, want int) error {
	if a.Rank() < want {
		return validatorErrorf(fmt.Sprintf("ValidateMinRank(%d): rank %d", want, a.Rank()), ErrBadShape)
	}

	return nil
}

// ValidateNonEmpty ensures a holds at least one element.
// Assumes a is not nil.
// Complexity: O(1).
func ValidateNonEmpty(a *Array) error {
	if a.Size() < 1 {
		return validatorErrorf("ValidateNonEmpty", ErrEmpty)
	}

	return nil
}

// ValidateFinite scans a for NaN or ±Inf and reports the first flat offset.
// Complexity: O(size).
func ValidateFinite(a *Array) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	for i, v := range a.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite: offset %d", i), ErrNaNInf)
		}
	}

	return nil
}
