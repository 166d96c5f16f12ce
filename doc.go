// Package talkbox is a small signal-processing toolkit centred on linear
// prediction: from autocorrelation sequences to AR (all-pole) models.
//
// 🚀 What is talkbox?
//
//	A pure-Go library that brings together:
//		• N-d arrays: row-major float64 arrays with lane views, axis moves
//		  and pluggable output allocation
//		• Linear prediction: batched Levinson-Durbin recursion producing AR
//		  coefficients, prediction errors and reflection coefficients
//		• Lattice helpers: step-up / step-down conversions and a stability test
//
// ✨ Why choose talkbox?
//
//   - Batch-first – any-rank input, every lane is an independent problem
//   - Predictable failures – typed sentinel errors, failing row and step attributed
//   - All-or-nothing – no partial outputs, every allocation handed back on error
//   - Parallel when asked – worker pool with per-worker scratch and ctx cancellation
//
// Under the hood, everything is organized under two subpackages:
//
//	ndarray/ — Array type, lanes (Row), Transpose/MoveAxis, Allocator, validators
//	linpred/ — Levinson, Levinson1D, StepUp, StepDown, Stable, options, errors
//
// Quick example:
//
//	r, _ := ndarray.FromSlice([]float64{8, 4, 5}, 3)
//	ar, perr, refl, _ := linpred.Levinson(r, 2)
//	// ar = [1, -0.25, -0.5], perr = 4.5, refl = [-0.5, -0.5]
//
//	go get github.com/cournape/talkbox/linpred
package talkbox
