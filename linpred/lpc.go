// SPDX-License-Identifier: MIT

package linpred

import (
	"fmt"

	"github.com/cournape/talkbox/ndarray"
)

// Levinson computes linear-prediction coefficients for every autocorrelation
// lane of seq.
//
// The lag axis (the last axis by default, see WithAxis) holds n >= order+1
// autocorrelation values r[0], r[1], ... with r[0] the zero-lag energy. All
// other axes are independent batch axes. The results are returned in the
// fixed order (ar, perr, refl):
//
//   - ar:   AR coefficients, shape of seq with the lag axis resized to
//     order+1; ar[..., 0] == 1.
//   - perr: prediction error, shape of seq with the lag axis removed (rank 0
//     for a 1-D seq).
//   - refl: reflection (PARCOR) coefficients, lag axis resized to order.
//
// Control flow: validate → allocate (all-or-nothing) → run every lane.
// Failures are all-or-nothing across the batch: on any error no output is
// returned and every allocation is handed back to the allocator.
//
// Errors:
//   - ErrInvalidArgument: nil/rank-0/empty seq, order < 0, order >= n, bad axis.
//   - ErrResourceExhausted: an output could not be allocated.
//   - ErrSingularSystem, ErrNumericalInstability: wrapped in *StepError with
//     the failing row and step.
//   - the context error when the WithContext context ends first.
//
// Complexity:
//   - Time O(rows·order²), Space O(size of outputs + workers·order).
func Levinson(seq *ndarray.Array, order int, opts ...Option) (ar, perr, refl *ndarray.Array, err error) {
	o := gatherOptions(opts...)

	lagAxis, _, err := validateRequest(seq, order, o.axis)
	if err != nil {
		return nil, nil, nil, err
	}

	last := seq.Rank() - 1
	src := seq
	if lagAxis != last {
		if src, err = seq.MoveAxis(lagAxis, last); err != nil {
			return nil, nil, nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
	}

	out, err := allocateOutputs(o.alloc, src.LeadingShape(), order)
	if err != nil {
		return nil, nil, nil, err
	}
	// Scope guard: outputs go back to the allocator on every failing exit.
	defer func() {
		if err != nil {
			out.release(o.alloc)
		}
	}()

	if err = runBatch(o.ctx, src, order, out, o.workers, o.logger); err != nil {
		return nil, nil, nil, err
	}
	if lagAxis != last {
		moved, mErr := out.moveLagAxis(o.alloc, lagAxis)
		if mErr != nil {
			return nil, nil, nil, mErr
		}
		out = moved
	}

	return out.ar, out.perr, out.refl, nil
}

// moveLagAxis returns outputs whose coefficient axis sits at lagAxis instead
// of last. The new ar/refl come from alloc; on success the lane-layout
// ar/refl are released and perr is carried over unchanged (its axes are
// already in input order). On failure o is left untouched.
func (o *outputs) moveLagAxis(alloc ndarray.Allocator, lagAxis int) (*outputs, error) {
	last := o.ar.Rank() - 1

	ar, err := moveInto(alloc, o.ar, last, lagAxis)
	if err != nil {
		return nil, err
	}
	refl, err := moveInto(alloc, o.refl, last, lagAxis)
	if err != nil {
		alloc.Release(ar)
		return nil, err
	}

	alloc.Release(o.ar)
	alloc.Release(o.refl)

	return &outputs{ar: ar, perr: o.perr, refl: refl}, nil
}

// moveInto allocates the moved layout of a and fills it.
func moveInto(alloc ndarray.Allocator, a *ndarray.Array, src, dst int) (*ndarray.Array, error) {
	shape, err := ndarray.MoveAxisShape(a.Shape(), src, dst)
	if err != nil {
		return nil, err
	}
	moved, err := alloc.Alloc(shape...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v: %w", ErrResourceExhausted, shape, err)
	}
	if err = a.MoveAxisInto(moved, src, dst); err != nil {
		alloc.Release(moved)
		return nil, err
	}

	return moved, nil
}
