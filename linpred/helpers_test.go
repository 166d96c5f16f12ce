// SPDX-License-Identifier: MIT
// Package linpred_test contains test helpers.
//
// Purpose:
//   - Deterministic fixtures: ramps from the reference suite and
//     positive-definite autocorrelations built from sinusoids plus noise.

package linpred_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cournape/talkbox/ndarray"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance used against pinned reference values.
const tol = 1e-8

// linspace returns n evenly spaced values from lo to hi inclusive.
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}

	return out
}

// pdAutocorr returns n lags of a positive-definite autocorrelation:
// white noise of variance noise plus a few random sinusoids.
func pdAutocorr(rng *rand.Rand, n int, noise float64) []float64 {
	const tones = 3
	r := make([]float64, n)
	r[0] = noise
	for t := 0; t < tones; t++ {
		amp := 0.5 + rng.Float64()
		w := math.Pi * rng.Float64()
		for m := 0; m < n; m++ {
			r[m] += amp * math.Cos(w*float64(m))
		}
	}

	return r
}

// pdBatch stacks rows pdAutocorr lanes into a rows×n array.
func pdBatch(t *testing.T, seed int64, rows, n int) *ndarray.Array {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, 0, rows*n)
	for i := 0; i < rows; i++ {
		data = append(data, pdAutocorr(rng, n, 0.1+rng.Float64())...)
	}
	a, err := ndarray.Wrap(data, rows, n)
	require.NoError(t, err)

	return a
}

// mustRow fetches row i or fails the test.
func mustRow(t *testing.T, a *ndarray.Array, i int) []float64 {
	t.Helper()
	row, err := a.Row(i)
	require.NoError(t, err)

	return row
}
