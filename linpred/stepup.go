// SPDX-License-Identifier: MIT

package linpred

import (
	"fmt"
	"math"
)

// StepUp rebuilds the AR coefficients (a[0] == 1) from reflection
// coefficients by replaying the order update of the recursion:
//
//	a^(i)[j] = a^(i-1)[j] + k_i · a^(i-1)[i-j],  a^(i)[i] = k_i
//
// For the k returned by Levinson, StepUp(k) reproduces ar up to rounding.
// Errors: ErrInvalidArgument when a k_i is NaN or ±Inf.
// Complexity: O(p²) time, O(p) space.
func StepUp(k []float64) ([]float64, error) {
	p := len(k)
	a := make([]float64, p+1)
	tmp := make([]float64, p)
	a[0] = 1
	for i := 1; i <= p; i++ {
		ki := k[i-1]
		if !isFinite(ki) {
			return nil, invalidf("reflection coefficient %d is not finite", i-1)
		}
		copy(tmp[:i], a[:i])
		for j := 1; j < i; j++ {
			a[j] += ki * tmp[i-j]
		}
		a[i] = ki
	}

	return a, nil
}

// StepDown recovers the reflection coefficients from AR coefficients
// (a[0] must be 1) by running the order update backwards:
//
//	k_i = a^(i)[i]
//	a^(i-1)[j] = (a^(i)[j] - k_i · a^(i)[i-j]) / (1 - k_i²)
//
// Errors:
//   - ErrInvalidArgument when a is empty or a[0] != 1.
//   - ErrSingularSystem when some |k_i| == 1 (the update is not invertible).
//   - ErrNumericalInstability when a value becomes non-finite.
//
// Complexity: O(p²) time, O(p) space.
func StepDown(a []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, invalidf("cannot operate on empty array")
	}
	if a[0] != 1 {
		return nil, invalidf("a[0] must be 1, got %g", a[0])
	}
	p := len(a) - 1
	k := make([]float64, p)
	cur := append([]float64(nil), a...)
	prev := make([]float64, p+1)

	for i := p; i >= 1; i-- {
		ki := cur[i]
		k[i-1] = ki
		den := 1 - ki*ki
		if den == 0 {
			return nil, &StepError{Step: i, Err: ErrSingularSystem}
		}
		for j := 1; j < i; j++ {
			prev[j] = (cur[j] - ki*cur[i-j]) / den
		}
		copy(cur[1:i], prev[1:i])
		if !isFinite(ki) || !allFinite(cur[1:i]) {
			return nil, &StepError{Step: i, Err: fmt.Errorf("%w: %g", ErrNumericalInstability, ki)}
		}
	}

	return k, nil
}

// Stable reports whether every reflection coefficient satisfies |k_i| < 1,
// i.e. the all-pole filter 1/A(z) is stable (A is minimum phase). Inputs that
// are valid positive-definite autocorrelations give |k_i| <= 1; equality
// marks a singular (perfectly predictable) process.
func Stable(k []float64) bool {
	for _, v := range k {
		if !(math.Abs(v) < 1) {
			return false
		}
	}

	return true
}
