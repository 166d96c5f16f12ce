// Package ndarray provides the contiguous, row-major float64 array used by
// the linear-prediction routines in this module.
//
// The package provides:
//
//   - Array: an N-dimensional array over a flat []float64 with an explicit
//     shape. Rank 0 (a scalar holding one element) and zero-length axes are
//     legal.
//   - Lane access over the last axis (RowCount, Row) and flat access
//     (Flat, SetFlat). Every index is bounds-checked and reported as
//     ErrOutOfRange instead of panicking.
//   - Axis movement (Transpose, MoveAxis) producing fresh contiguous copies.
//   - Allocator: the allocation service consumed by algorithms that produce
//     new arrays. HeapAllocator is the default; BudgetAllocator caps the
//     number of live elements and reports ErrResourceExhausted.
//
// Offsets follow the row-major formula
//
//	off = ((i0*d1 + i1)*d2 + i2)*... + ik
//
// so the last axis is contiguous and a "row" is a window of the flat buffer.
package ndarray
