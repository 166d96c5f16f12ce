// SPDX-License-Identifier: MIT

package ndarray

import "fmt"

const (
	ctxTranspose = "Transpose"
	ctxMoveAxis  = "MoveAxis"
)

// strides returns the row-major element strides of shape.
func strides(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for ax := len(shape) - 1; ax >= 0; ax-- {
		st[ax] = acc
		acc *= shape[ax]
	}

	return st
}

// checkPerm validates that perm is a permutation of [0, rank).
func checkPerm(perm []int, rank int) error {
	if len(perm) != rank {
		return ErrBadShape
	}
	seen := make([]bool, rank)
	for _, p := range perm {
		if p < 0 || p >= rank || seen[p] {
			return ErrBadShape
		}
		seen[p] = true
	}

	return nil
}

// Transpose returns a contiguous copy whose axis i is axis perm[i] of a.
// Errors: ErrBadShape when perm is not a permutation.
// Complexity: Time O(size), Space O(size).
func (a *Array) Transpose(perm ...int) (*Array, error) {
	if err := checkPerm(perm, len(a.shape)); err != nil {
		return nil, fmt.Errorf("Array.%s(%v): %w", ctxTranspose, perm, err)
	}
	shape := make([]int, len(perm))
	for i, p := range perm {
		shape[i] = a.shape[p]
	}
	out := &Array{shape: shape, data: make([]float64, len(a.data))}
	a.permuteInto(out, perm)

	return out, nil
}

// TransposeInto writes the permuted copy of a into out, whose shape must be
// the permuted shape of a. Useful when out comes from an Allocator.
// MAIN DESCRIPTION:
//   - General axis permutation into caller-owned storage.
//
// Implementation:
//   - Stage 1: validate perm and the destination shape.
//   - Stage 2: walk out in row-major order with an odometer index, reading
//     a through permuted strides.
//
// Errors:
//   - ErrBadShape for a bad permutation or a destination of the wrong shape.
//   - ErrNilArray when out is nil.
//
// Complexity:
//   - Time O(size) amortized, Space O(rank).
func (a *Array) TransposeInto(out *Array, perm ...int) error {
	if out == nil {
		return fmt.Errorf("Array.%s: %w", ctxTranspose, ErrNilArray)
	}
	if err := checkPerm(perm, len(a.shape)); err != nil {
		return fmt.Errorf("Array.%s(%v): %w", ctxTranspose, perm, err)
	}
	if len(out.shape) != len(perm) {
		return fmt.Errorf("Array.%s(%v): destination rank %d: %w", ctxTranspose, perm, len(out.shape), ErrBadShape)
	}
	for i, p := range perm {
		if out.shape[i] != a.shape[p] {
			return fmt.Errorf("Array.%s(%v): destination shape %v: %w", ctxTranspose, perm, out.shape, ErrBadShape)
		}
	}
	a.permuteInto(out, perm)

	return nil
}

// permuteInto assumes perm and out were validated.
func (a *Array) permuteInto(out *Array, perm []int) {
	rank := len(perm)
	if len(out.data) == 0 {
		return
	}
	src := strides(a.shape)
	step := make([]int, rank) // source stride for each destination axis
	for i, p := range perm {
		step[i] = src[p]
	}

	idx := make([]int, rank)
	off := 0
	for dst := range out.data {
		out.data[dst] = a.data[off]
		// Advance the odometer from the last axis.
		for ax := rank - 1; ax >= 0; ax-- {
			idx[ax]++
			off += step[ax]
			if idx[ax] < out.shape[ax] {
				break
			}
			off -= step[ax] * out.shape[ax]
			idx[ax] = 0
		}
	}
}

// moveAxisPerm returns the permutation moving axis src to position dst.
func moveAxisPerm(rank, src, dst int) ([]int, error) {
	s, err := NormalizeAxis(src, rank)
	if err != nil {
		return nil, err
	}
	d, err := NormalizeAxis(dst, rank)
	if err != nil {
		return nil, err
	}
	perm := make([]int, 0, rank)
	for ax := 0; ax < rank; ax++ {
		if ax != s {
			perm = append(perm, ax)
		}
	}
	// Insert s at position d.
	perm = append(perm, 0)
	copy(perm[d+1:], perm[d:])
	perm[d] = s

	return perm, nil
}

// MoveAxisShape returns shape with axis src moved to position dst.
func MoveAxisShape(shape []int, src, dst int) ([]int, error) {
	perm, err := moveAxisPerm(len(shape), src, dst)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxMoveAxis, src, dst, err)
	}
	out := make([]int, len(perm))
	for i, p := range perm {
		out[i] = shape[p]
	}

	return out, nil
}

// MoveAxis returns a copy of a with axis src moved to position dst; the
// remaining axes keep their relative order. Negative axes count from the end.
// Complexity: O(size).
func (a *Array) MoveAxis(src, dst int) (*Array, error) {
	perm, err := moveAxisPerm(len(a.shape), src, dst)
	if err != nil {
		return nil, fmt.Errorf("Array.%s(%d,%d): %w", ctxMoveAxis, src, dst, err)
	}

	return a.Transpose(perm...)
}

// MoveAxisInto is MoveAxis writing into caller-owned out.
func (a *Array) MoveAxisInto(out *Array, src, dst int) error {
	perm, err := moveAxisPerm(len(a.shape), src, dst)
	if err != nil {
		return fmt.Errorf("Array.%s(%d,%d): %w", ctxMoveAxis, src, dst, err)
	}

	return a.TransposeInto(out, perm...)
}
