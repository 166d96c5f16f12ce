// SPDX-License-Identifier: MIT

// Package ndarray - lane access over the last axis.
//
// Purpose:
//   - Treat an array of shape leading+[n] as RowCount() independent lanes of
//     length n, each a window of the flat buffer.
//   - Replace pointer-increment iteration with checked indices: a row index
//     outside [0, RowCount()) is an error, never a silent overrun.
//
// Notes:
//   - Row windows are capped (len == cap == n) so appends cannot spill into
//     the next lane.
//   - Disjoint rows never share elements; concurrent writers touching
//     different rows need no locking.

package ndarray

import "fmt"

const (
	ctxRow     = "Row"
	ctxFlat    = "Flat"
	ctxSetFlat = "SetFlat"
)

// RowLen returns the length of the last axis (1 for a rank-0 array).
// Complexity: O(1).
func (a *Array) RowLen() int {
	if len(a.shape) == 0 {
		return 1
	}

	return a.shape[len(a.shape)-1]
}

// RowCount returns the number of lanes along the last axis, i.e. the product
// of all leading axes (1 for rank 0 and rank 1). It stays well defined when
// the last axis has zero length.
// Complexity: O(rank).
func (a *Array) RowCount() int {
	if len(a.shape) == 0 {
		return 1
	}
	n := 1
	for _, d := range a.shape[:len(a.shape)-1] {
		n *= d
	}

	return n
}

// LeadingShape returns the shape without its last axis.
func (a *Array) LeadingShape() []int {
	if len(a.shape) == 0 {
		return []int{}
	}

	return cloneInts(a.shape[:len(a.shape)-1])
}

// Row returns lane i of the last axis as a window into the flat buffer.
// MAIN DESCRIPTION:
//   - No-copy view of data[i*n : (i+1)*n]; writes are visible in the array.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, RowCount()).
//
// Complexity:
//   - Time O(rank), Space O(1).
func (a *Array) Row(i int) ([]float64, error) {
	rows := a.RowCount()
	if i < 0 || i >= rows {
		return nil, fmt.Errorf("Array.%s(%d) of %d: %w", ctxRow, i, rows, ErrOutOfRange)
	}
	n := a.RowLen()
	lo, hi := i*n, (i+1)*n

	return a.data[lo:hi:hi], nil
}

// Flat returns the element at flat offset i.
// Complexity: O(1).
func (a *Array) Flat(i int) (float64, error) {
	if i < 0 || i >= len(a.data) {
		return 0, fmt.Errorf("Array.%s(%d): %w", ctxFlat, i, ErrOutOfRange)
	}

	return a.data[i], nil
}

// SetFlat stores v at flat offset i.
// Complexity: O(1).
func (a *Array) SetFlat(i int, v float64) error {
	if i < 0 || i >= len(a.data) {
		return fmt.Errorf("Array.%s(%d): %w", ctxSetFlat, i, ErrOutOfRange)
	}
	a.data[i] = v

	return nil
}
