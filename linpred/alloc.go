// SPDX-License-Identifier: MIT

package linpred

import (
	"fmt"

	"github.com/cournape/talkbox/ndarray"
)

// outputs groups the three arrays produced by one Levinson call. All three
// come from the same allocator and are released together.
type outputs struct {
	ar   *ndarray.Array // leading + [order+1]
	perr *ndarray.Array // leading (rank 0 for a single lane)
	refl *ndarray.Array // leading + [order]
}

// outputShapes computes the exact output shapes for a batch whose leading
// (non-lag) axes are leading.
// Complexity: O(len(leading)).
func outputShapes(leading []int, order int) (ar, perr, refl []int) {
	ar = append(append(make([]int, 0, len(leading)+1), leading...), order+1)
	perr = append(make([]int, 0, len(leading)), leading...)
	refl = append(append(make([]int, 0, len(leading)+1), leading...), order)

	return ar, perr, refl
}

// allocateOutputs allocates the three outputs all-or-nothing: when any
// allocation fails, the ones already obtained are released and
// ErrResourceExhausted (wrapping the allocator error) is returned.
// Complexity: O(size of outputs).
func allocateOutputs(alloc ndarray.Allocator, leading []int, order int) (*outputs, error) {
	arShape, perrShape, reflShape := outputShapes(leading, order)

	ar, err := alloc.Alloc(arShape...)
	if err != nil {
		return nil, fmt.Errorf("%w: ar%v: %w", ErrResourceExhausted, arShape, err)
	}
	perr, err := alloc.Alloc(perrShape...)
	if err != nil {
		alloc.Release(ar)
		return nil, fmt.Errorf("%w: prediction error%v: %w", ErrResourceExhausted, perrShape, err)
	}
	refl, err := alloc.Alloc(reflShape...)
	if err != nil {
		alloc.Release(perr)
		alloc.Release(ar)
		return nil, fmt.Errorf("%w: reflection%v: %w", ErrResourceExhausted, reflShape, err)
	}

	return &outputs{ar: ar, perr: perr, refl: refl}, nil
}

// release hands every output back to alloc. Safe on nil.
func (o *outputs) release(alloc ndarray.Allocator) {
	if o == nil {
		return
	}
	alloc.Release(o.refl)
	alloc.Release(o.perr)
	alloc.Release(o.ar)
}
