// SPDX-License-Identifier: MIT

package linpred

import "math"

// levinson — Levinson-Durbin recursion on one autocorrelation lane.
//
// Description:
//
//	Solves the symmetric Toeplitz system
//
//	  -r[1..p] = T(r[0..p-1]) · a[1..p]
//
//	incrementally by order, producing the AR coefficients a (a[0] = 1), the
//	reflection coefficients k and the final prediction error.
//
// Algorithm Outline:
//  1. a[0] = 1, err = r[0].
//  2. For i = 1..order:
//     acc  = r[i] + Σ_{j=1}^{i-1} a[j]·r[i-j]
//     k_i  = -acc / err;  k[i-1] = a[i] = k_i
//     tmp  = a[0..i-1]                (snapshot; the update reads old values)
//     a[j] += k_i · tmp[i-j]          for j = 1..i-1
//     err *= 1 - k_i²
//  3. Return err.
//
// Failure policy (checked at every step so it is attributable):
//   - err == 0 before the division of step i → ErrSingularSystem.
//   - non-finite k_i, a[1..i] or err          → ErrNumericalInstability.
//   - non-finite r[0]                         → ErrNumericalInstability at step 0.
//
// Buffers:
//   - in must hold at least order+1 values; acoeff exactly order+1;
//     kcoeff at least order; scratch at least order. The caller owns all of
//     them; scratch content on entry is irrelevant.
//
// Complexity:
//
//	Time   = O(order²)
//	Memory = O(1) beyond the caller's buffers
func levinson(in []float64, order int, acoeff, kcoeff, scratch []float64) (perr float64, step int, err error) {
	acoeff[0] = 1
	perr = in[0]
	if !isFinite(perr) {
		return 0, 0, ErrNumericalInstability
	}

	var (
		i, j int
		acc  float64
		k    float64
	)
	for i = 1; i <= order; i++ {
		acc = in[i]
		for j = 1; j < i; j++ {
			acc += acoeff[j] * in[i-j]
		}
		if perr == 0 {
			return 0, i, ErrSingularSystem
		}
		k = -acc / perr
		kcoeff[i-1] = k
		acoeff[i] = k

		// Snapshot the order-(i-1) predictor before updating it in place.
		copy(scratch[:i], acoeff[:i])
		for j = 1; j < i; j++ {
			acoeff[j] += k * scratch[i-j]
		}
		perr *= 1 - k*k

		if !isFinite(k) || !isFinite(perr) || !allFinite(acoeff[1:i]) {
			return 0, i, ErrNumericalInstability
		}
	}

	return perr, order, nil
}

// Levinson1D runs the recursion on a single autocorrelation sequence r.
// It returns the order+1 AR coefficients (a[0] == 1), the prediction error
// and the order reflection coefficients.
//
// Errors:
//   - ErrInvalidArgument when r is empty, order < 0 or order >= len(r).
//   - ErrSingularSystem / ErrNumericalInstability wrapped in *StepError.
//
// Example:
//
//	a, perr, k, err := Levinson1D([]float64{4, 2, 1}, 2)
//	// a = [1 -0.5 0], perr = 3, k = [-0.5 0]
func Levinson1D(r []float64, order int) (a []float64, perr float64, k []float64, err error) {
	if err = validateLane(len(r), order); err != nil {
		return nil, 0, nil, err
	}

	a = make([]float64, order+1)
	k = make([]float64, order)
	scratch := make([]float64, order)

	perr, step, err := levinson(r, order, a, k, scratch)
	if err != nil {
		return nil, 0, nil, &StepError{Row: 0, Step: step, Err: err}
	}

	return a, perr, k, nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// allFinite reports whether every value in vs is finite.
func allFinite(vs []float64) bool {
	for _, v := range vs {
		if !isFinite(v) {
			return false
		}
	}

	return true
}
