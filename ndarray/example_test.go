package ndarray_test

import (
	"fmt"

	"github.com/cournape/talkbox/ndarray"
)

// ExampleArray_Row walks the lanes of the last axis.
func ExampleArray_Row() {
	a, err := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < a.RowCount(); i++ {
		row, _ := a.Row(i)
		fmt.Println(i, row)
	}
	// Output:
	// 0 [1 2]
	// 1 [3 4]
	// 2 [5 6]
}

// ExampleArray_MoveAxis moves the first axis to the end.
func ExampleArray_MoveAxis() {
	a, _ := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	m, _ := a.MoveAxis(0, -1)
	fmt.Println(m.Shape(), m)
	// Output:
	// [3 2] [[1, 4], [2, 5], [3, 6]]
}
