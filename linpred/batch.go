// SPDX-License-Identifier: MIT

package linpred

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/cournape/talkbox/ndarray"
)

// runBatch applies the recursion to every lane of src's last axis.
// MAIN DESCRIPTION:
//   - Lane r reads src.Row(r) and writes out.ar.Row(r), out.refl.Row(r)
//     and out.perr[r]. Lanes are independent; row order does not affect
//     the results.
//
// Implementation:
//   - workers <= 1 (or a single lane): sequential loop with one scratch buffer.
//   - otherwise: errgroup pool; each worker owns its scratch buffer and pulls
//     row indices from an atomic cursor. Write regions are disjoint and fixed
//     by the row index, so no locking is needed.
//
// Behavior highlights:
//   - ctx is checked before every row; a row is either computed fully or not
//     started.
//   - The first failure stops the batch. Sequentially that is the lowest
//     failing row; in parallel it is the first one observed.
//
// Errors:
//   - *StepError wrapping ErrSingularSystem / ErrNumericalInstability.
//   - ctx.Err() (wrapped) on cancellation or deadline.
//
// Complexity:
//   - Time O(rows·order²), Space O(workers·order) scratch.
func runBatch(ctx context.Context, src *ndarray.Array, order int, out *outputs, workers int, logger *slog.Logger) error {
	rows := src.RowCount()
	if workers > rows {
		workers = rows
	}
	logger.Debug("levinson batch",
		slog.Int("rows", rows),
		slog.Int("lags", src.RowLen()),
		slog.Int("order", order),
		slog.Int("workers", workers))

	var err error
	if workers <= 1 {
		err = runSequential(ctx, src, order, out, rows)
	} else {
		err = runParallel(ctx, src, order, out, rows, workers)
	}
	if err != nil {
		logger.Debug("levinson batch failed", slog.Any("err", err))
	}

	return err
}

// runSequential processes rows in index order with a single scratch buffer.
func runSequential(ctx context.Context, src *ndarray.Array, order int, out *outputs, rows int) error {
	scratch := make([]float64, order)
	for r := 0; r < rows; r++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("linpred: aborted before row %d: %w", r, err)
		}
		if err := computeRow(src, order, out, r, scratch); err != nil {
			return err
		}
	}

	return nil
}

// runParallel fans rows out over workers goroutines.
func runParallel(ctx context.Context, src *ndarray.Array, order int, out *outputs, rows, workers int) error {
	g, gctx := errgroup.WithContext(ctx)
	var next atomic.Int64

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			scratch := make([]float64, order) // private to this worker
			for {
				r := int(next.Add(1) - 1)
				if r >= rows {
					return nil
				}
				if err := gctx.Err(); err != nil {
					return fmt.Errorf("linpred: aborted before row %d: %w", r, err)
				}
				if err := computeRow(src, order, out, r, scratch); err != nil {
					return err
				}
			}
		})
	}

	return g.Wait()
}

// computeRow runs the recursion for lane r, writing its three output slices.
func computeRow(src *ndarray.Array, order int, out *outputs, r int, scratch []float64) error {
	in, err := src.Row(r)
	if err != nil {
		return err
	}
	a, err := out.ar.Row(r)
	if err != nil {
		return err
	}
	k, err := out.refl.Row(r)
	if err != nil {
		return err
	}

	perr, step, err := levinson(in, order, a, k, scratch)
	if err != nil {
		return &StepError{Row: r, Step: step, Err: err}
	}

	return out.perr.SetFlat(r, perr)
}
