// SPDX-License-Identifier: MIT
package linpred_test

import (
	"fmt"

	"github.com/cournape/talkbox/linpred"
	"github.com/cournape/talkbox/ndarray"
)

func ExampleLevinson1D() {
	a, perr, k, err := linpred.Levinson1D([]float64{8, 4, 5}, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(a, perr, k)
	// Output: [1 -0.25 -0.5] 4.5 [-0.5 -0.5]
}

func ExampleLevinson() {
	r, _ := ndarray.FromSlice([]float64{
		8, 4, 5,
		2, 1, 2, // perfectly predictable: the error reaches zero at the last step
	}, 2, 3)
	ar, perr, refl, err := linpred.Levinson(r, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ar)
	fmt.Println(perr)
	fmt.Println(refl)
	// Output:
	// [[1, -0.25, -0.5], [1, 0, -1]]
	// [4.5, 0]
	// [[-0.5, -0.5], [-0.5, -1]]
}

func ExampleLevinson_singular() {
	r, _ := ndarray.FromSlice([]float64{
		4, 2, 1,
		1, 1, 1,
	}, 2, 3)
	_, _, _, err := linpred.Levinson(r, 2)
	fmt.Println(err)
	// Output: linpred: row 1, step 2: linpred: singular system, zero prediction error
}

func ExampleStepUp() {
	a, _ := linpred.StepUp([]float64{-0.5, 0})
	fmt.Println(a, linpred.Stable([]float64{-0.5, 0}))
	// Output: [1 -0.5 0] true
}
