// SPDX-License-Identifier: MIT

package kernel_test

import (
	"fmt"

	"github.com/katalvlaran/vptk/kernel"
)

// ExampleLinspace shows the inclusive spacing.
func ExampleLinspace() {
	fmt.Println(kernel.Linspace[float64](0, 1, 5))
	fmt.Println(kernel.Linspace[float64](3, 9, 1))
	// Output:
	// [0 0.25 0.5 0.75 1]
	// [3]
}

// ExampleStack pairs two columns, zero-filling the shorter one.
func ExampleStack() {
	x := kernel.Vector[float64]{1, 2, 3}
	y := kernel.Vector[float64]{4, 5}

	xy, err := kernel.Stack[float64](x, y)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(xy)
	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 0]
}
