// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// All functions return these sentinels (optionally wrapped with call-site
// context via %w); tests match them with errors.Is. User-triggered error
// conditions never panic.

package ndarray

import "errors"

// Every message is prefixed with "ndarray: ..." so it is easy to grep.
var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// dimension, size mismatch with the backing slice, bad permutation).
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrOutOfRange indicates that an index or axis is outside valid bounds.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrNilArray indicates that a nil *Array was used.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrEmpty indicates an array with no elements where at least one is required.
	ErrEmpty = errors.New("ndarray: empty array")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("ndarray: NaN or Inf encountered")

	// ErrResourceExhausted is returned by allocators that cannot satisfy a request.
	ErrResourceExhausted = errors.New("ndarray: allocation exhausted")
)
