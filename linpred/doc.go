// Package linpred computes linear-prediction (autoregressive) coefficients
// from autocorrelation sequences with the Levinson-Durbin recursion.
//
// 🚀 What is Levinson-Durbin?
//
//	Given the autocorrelation r[0..p] of a signal, the order-p linear
//	predictor a (a[0] = 1) solves the symmetric Toeplitz system
//
//	  -r[m] = Σ_{j=1}^{p} a[j]·r[|m-j|],  m = 1..p
//
//	The recursion solves it order by order in O(p²) instead of O(p³),
//	producing along the way the reflection (PARCOR) coefficients k and the
//	prediction error of each order.
//
// ✨ Key features:
//   - Levinson1D: one sequence in, (a, err, k) out.
//   - Levinson: any-rank ndarray.Array; every lane of the lag axis is an
//     independent problem; outputs mirror the batch axes.
//   - WithWorkers: rows are independent, so they can be spread over a worker
//     pool; each worker owns its scratch buffer and writes disjoint rows.
//   - WithContext: row-granular cancellation and deadlines.
//   - WithAllocator: outputs come from an ndarray.Allocator and are released
//     on every failing exit (all-or-nothing).
//   - StepUp / StepDown / Stable: conversions between reflection and AR
//     coefficients and a stability test.
//
// ⚙️ Usage:
//
//	r, _ := ndarray.FromSlice([]float64{4, 2, 1, 5, 1, 0}, 2, 3)
//	ar, perr, refl, err := linpred.Levinson(r, 2, linpred.WithWorkers(0))
//
// Errors are typed sentinels (ErrInvalidArgument, ErrSingularSystem,
// ErrNumericalInstability, ErrResourceExhausted); recursion failures carry
// the failing row and step in *StepError.
//
// Performance:
//
//   - Time:   O(rows·p²)
//   - Memory: O(outputs) + O(workers·p) scratch
package linpred
