// SPDX-License-Identifier: MIT

// Package ndarray - allocation service.
//
// Purpose:
//   - Give algorithms a single place to obtain new arrays so that resource
//     exhaustion surfaces as an error (ErrResourceExhausted) rather than a
//     runtime panic from make().
//   - Pair every Alloc with a Release so callers can scope ownership with a
//     deferred guard and hand reservations back on failure paths.

package ndarray

import (
	"fmt"
	"math"
	"sync"
)

// MaxElements bounds a single HeapAllocator request. Larger requests are
// rejected with ErrResourceExhausted instead of letting make() panic.
const MaxElements = math.MaxInt >> 4

// Allocator hands out zero-filled arrays and takes them back.
// Implementations must be safe for concurrent use.
type Allocator interface {
	// Alloc returns a zero-filled array of the given shape.
	Alloc(shape ...int) (*Array, error)
	// Release returns a's storage to the allocator. Releasing nil is a no-op.
	Release(a *Array)
}

// HeapAllocator allocates on the Go heap; Release is a no-op and the garbage
// collector reclaims storage.
type HeapAllocator struct{}

var _ Allocator = HeapAllocator{}

// Alloc implements Allocator.
func (HeapAllocator) Alloc(shape ...int) (*Array, error) {
	size, err := SizeOf(shape...)
	if err != nil {
		return nil, fmt.Errorf("HeapAllocator.Alloc(%v): %w", shape, err)
	}
	if size > MaxElements {
		return nil, fmt.Errorf("HeapAllocator.Alloc(%v): %d elements: %w", shape, size, ErrResourceExhausted)
	}

	return New(shape...)
}

// Release implements Allocator.
func (HeapAllocator) Release(*Array) {}

// BudgetAllocator caps the number of live elements handed out. It is useful
// to bound memory for large batches and to exercise exhaustion paths.
type BudgetAllocator struct {
	mu     sync.Mutex
	limit  int
	inUse  int
	owners map[*Array]int
}

var _ Allocator = (*BudgetAllocator)(nil)

// NewBudgetAllocator returns an allocator that refuses requests once limit
// elements are live. A negative limit panics (programmer error).
func NewBudgetAllocator(limit int) *BudgetAllocator {
	if limit < 0 {
		panic("ndarray: NewBudgetAllocator: limit must be >= 0")
	}

	return &BudgetAllocator{limit: limit, owners: make(map[*Array]int)}
}

// Alloc implements Allocator. The reservation is taken before the buffer is
// created; on any error nothing stays reserved.
func (b *BudgetAllocator) Alloc(shape ...int) (*Array, error) {
	size, err := SizeOf(shape...)
	if err != nil {
		return nil, fmt.Errorf("BudgetAllocator.Alloc(%v): %w", shape, err)
	}

	b.mu.Lock()
	if size > b.limit-b.inUse {
		free := b.limit - b.inUse
		b.mu.Unlock()
		return nil, fmt.Errorf("BudgetAllocator.Alloc(%v): need %d, free %d: %w", shape, size, free, ErrResourceExhausted)
	}
	b.inUse += size
	b.mu.Unlock()

	a, err := New(shape...)
	if err != nil {
		b.mu.Lock()
		b.inUse -= size
		b.mu.Unlock()
		return nil, err
	}

	b.mu.Lock()
	b.owners[a] = size
	b.mu.Unlock()

	return a, nil
}

// Release implements Allocator. Releasing an array twice, or one not issued
// by b, is a no-op.
func (b *BudgetAllocator) Release(a *Array) {
	if a == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if size, ok := b.owners[a]; ok {
		b.inUse -= size
		delete(b.owners, a)
	}
}

// InUse reports the number of elements currently reserved.
func (b *BudgetAllocator) InUse() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.inUse
}

// Limit reports the configured element budget.
func (b *BudgetAllocator) Limit() int { return b.limit }
