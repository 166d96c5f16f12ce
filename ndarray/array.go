// SPDX-License-Identifier: MIT

// Package ndarray - Array storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with an explicit shape.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New: O(size) zero-init; At/Set: O(rank); Clone: O(size); Reshape: O(rank).

package ndarray

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew     = "New"
	ctxWrap    = "Wrap"
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxDim     = "Dim"
	ctxReshape = "Reshape"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// arrayErrorf wraps a sentinel with a uniform Array context and call-site indices.
func arrayErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Array.%s(%v): %w", method, idx, err)
}

// Array is a contiguous row-major N-dimensional float64 array.
//   - shape holds the axis lengths (len(shape) is the rank; rank 0 is a scalar).
//   - data is the flat buffer of length prod(shape) in row-major order.
type Array struct {
	shape []int     // axis lengths, each >= 0
	data  []float64 // contiguous row-major storage (len == prod(shape))
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Array)(nil)

// SizeOf returns the number of elements described by shape.
// Negative dimensions yield ErrBadShape and a product that does not fit in
// an int yields ErrResourceExhausted.
// Complexity: O(rank).
func SizeOf(shape ...int) (int, error) {
	size := 1
	for _, d := range shape {
		if d < 0 {
			return 0, ErrBadShape
		}
		if d != 0 && size > math.MaxInt/d {
			return 0, ErrResourceExhausted
		}
		size *= d
	}

	return size, nil
}

// New creates a zero-filled array of the given shape.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate every dimension is >= 0 and the product fits.
//   - Stage 2: allocate the flat buffer; make() zero-fills it.
//
// Behavior highlights:
//   - Zero-length axes are legal and produce an empty buffer.
//   - No shape (New()) produces a rank-0 scalar holding 0.
//
// Errors:
//   - ErrBadShape, ErrResourceExhausted.
//
// Complexity:
//   - Time O(size), Space O(size).
func New(shape ...int) (*Array, error) {
	size, err := SizeOf(shape...)
	if err != nil {
		return nil, arrayErrorf(ctxNew, shape, err)
	}

	return &Array{shape: cloneInts(shape), data: make([]float64, size)}, nil
}

// FromSlice copies data into a new array of the given shape.
// len(data) must equal the shape product; otherwise ErrBadShape.
// Complexity: O(size).
func FromSlice(data []float64, shape ...int) (*Array, error) {
	a, err := Wrap(data, shape...)
	if err != nil {
		return nil, err
	}
	a.data = append([]float64(nil), data...)

	return a, nil
}

// Wrap builds an array over data without copying; the caller keeps
// ownership and must not resize data while the array is in use.
// Complexity: O(rank).
func Wrap(data []float64, shape ...int) (*Array, error) {
	size, err := SizeOf(shape...)
	if err != nil {
		return nil, arrayErrorf(ctxWrap, shape, err)
	}
	if size != len(data) {
		return nil, fmt.Errorf("Array.%s(%v): len %d: %w", ctxWrap, shape, len(data), ErrBadShape)
	}

	return &Array{shape: cloneInts(shape), data: data[:size:size]}, nil
}

// Vector is a convenience constructor for a rank-1 copy of values.
func Vector(values ...float64) *Array {
	return &Array{shape: []int{len(values)}, data: append([]float64(nil), values...)}
}

// Scalar returns a rank-0 array holding v.
func Scalar(v float64) *Array {
	return &Array{shape: []int{}, data: []float64{v}}
}

// Shape returns a copy of the axis lengths.
// Complexity: O(rank).
func (a *Array) Shape() []int { return cloneInts(a.shape) }

// Rank returns the number of axes. No side effects.
func (a *Array) Rank() int { return len(a.shape) }

// Size returns the total number of elements.
func (a *Array) Size() int { return len(a.data) }

// Data exposes the flat row-major buffer. Writes are visible through the array.
func (a *Array) Data() []float64 { return a.data }

// Dim returns the length of axis. Negative axes count from the end (-1 is
// the last axis).
func (a *Array) Dim(axis int) (int, error) {
	ax, err := NormalizeAxis(axis, len(a.shape))
	if err != nil {
		return 0, fmt.Errorf("Array.%s(%d): %w", ctxDim, axis, err)
	}

	return a.shape[ax], nil
}

// NormalizeAxis maps axis into [0, rank), accepting negative values counted
// from the end. Out-of-range axes yield ErrOutOfRange.
func NormalizeAxis(axis, rank int) (int, error) {
	if axis < 0 {
		axis += rank
	}
	if axis < 0 || axis >= rank {
		return 0, ErrOutOfRange
	}

	return axis, nil
}

// offset computes the row-major offset of idx or returns ErrOutOfRange.
// Complexity: O(rank).
func (a *Array) offset(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, ErrOutOfRange
	}
	off := 0
	for ax, i := range idx {
		if i < 0 || i >= a.shape[ax] {
			return 0, ErrOutOfRange
		}
		off = off*a.shape[ax] + i
	}

	return off, nil
}

// At returns the element at idx (one index per axis) or ErrOutOfRange.
// Complexity: O(rank).
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.offset(idx)
	if err != nil {
		return 0, arrayErrorf(ctxAt, idx, err)
	}

	return a.data[off], nil
}

// Set stores v at idx or returns ErrOutOfRange.
// Complexity: O(rank).
func (a *Array) Set(v float64, idx ...int) error {
	off, err := a.offset(idx)
	if err != nil {
		return arrayErrorf(ctxSet, idx, err)
	}
	a.data[off] = v

	return nil
}

// Clone returns a deep copy with an independent buffer.
// Complexity: O(size).
func (a *Array) Clone() *Array {
	return &Array{shape: cloneInts(a.shape), data: append([]float64(nil), a.data...)}
}

// Reshape returns an array sharing storage with a under a new shape of the
// same size. Writes through either array are visible in both.
// Complexity: O(rank).
func (a *Array) Reshape(shape ...int) (*Array, error) {
	size, err := SizeOf(shape...)
	if err != nil {
		return nil, arrayErrorf(ctxReshape, shape, err)
	}
	if size != len(a.data) {
		return nil, arrayErrorf(ctxReshape, shape, ErrBadShape)
	}

	return &Array{shape: cloneInts(shape), data: a.data}, nil
}

// String renders the array as nested brackets, one bracket level per axis.
// Intended for diagnostics, not hot paths.
func (a *Array) String() string {
	var b strings.Builder
	if len(a.shape) == 0 {
		b.WriteString(fmt.Sprintf("%g", a.data[0]))
		return b.String()
	}
	a.writeAxis(&b, 0, 0)

	return b.String()
}

// writeAxis prints the sub-array starting at flat offset base for axis ax.
func (a *Array) writeAxis(b *strings.Builder, ax, base int) {
	stride := 1
	for _, d := range a.shape[ax+1:] {
		stride *= d
	}
	b.WriteString(_fmtOpen)
	for i := 0; i < a.shape[ax]; i++ {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		if ax == len(a.shape)-1 {
			b.WriteString(fmt.Sprintf("%g", a.data[base+i]))
			continue
		}
		a.writeAxis(b, ax+1, base+i*stride)
	}
	b.WriteString(_fmtClose)
}

// cloneInts copies a shape so callers cannot alias internal state.
func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)

	return out
}
