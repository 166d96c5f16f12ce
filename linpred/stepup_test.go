// SPDX-License-Identifier: MIT
package linpred_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cournape/talkbox/linpred"
	"github.com/stretchr/testify/require"
)

// TestStepUp_RoundTrip rebuilds ar from refl and refl back from ar.
func TestStepUp_RoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 10; trial++ {
		r := pdAutocorr(rng, 12, 0.5)
		a, _, k, err := linpred.Levinson1D(r, 11)
		require.NoError(t, err)

		up, err := linpred.StepUp(k)
		require.NoError(t, err)
		require.InDeltaSlice(t, a, up, 1e-9)

		down, err := linpred.StepDown(a)
		require.NoError(t, err)
		require.InDeltaSlice(t, k, down, 1e-7)
		require.True(t, linpred.Stable(k))
	}
}

// TestStepUp_Edges covers empty input and non-finite coefficients.
func TestStepUp_Edges(t *testing.T) {
	t.Parallel()

	a, err := linpred.StepUp(nil)
	require.NoError(t, err)
	require.Equal(t, []float64{1}, a)

	_, err = linpred.StepUp([]float64{0.5, math.NaN()})
	require.ErrorIs(t, err, linpred.ErrInvalidArgument)
}

// TestStepDown_Edges covers malformed and non-invertible inputs.
func TestStepDown_Edges(t *testing.T) {
	t.Parallel()

	k, err := linpred.StepDown([]float64{1})
	require.NoError(t, err)
	require.Empty(t, k)

	_, err = linpred.StepDown(nil)
	require.ErrorIs(t, err, linpred.ErrInvalidArgument)
	_, err = linpred.StepDown([]float64{2, 0.1})
	require.ErrorIs(t, err, linpred.ErrInvalidArgument)
	_, err = linpred.StepDown([]float64{1, 0.3, -1})
	require.ErrorIs(t, err, linpred.ErrSingularSystem)
}

// TestStable checks the strict unit bound.
func TestStable(t *testing.T) {
	t.Parallel()

	require.True(t, linpred.Stable(nil))
	require.True(t, linpred.Stable([]float64{-0.9, 0.99}))
	require.False(t, linpred.Stable([]float64{0.1, 1}))
	require.False(t, linpred.Stable([]float64{-2}))
	require.False(t, linpred.Stable([]float64{math.NaN()}))
}
