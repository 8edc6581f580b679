// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/matfixture/matrix"
)

// ExampleMul multiplies two 2×2 matrices with the reference kernel.
func ExampleMul() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})

	c, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)

	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleMul_mismatch shows that incompatible shapes are rejected up front.
func ExampleMul_mismatch() {
	a, _ := matrix.NewDense(4, 3)
	b, _ := matrix.NewDense(2, 5)

	_, err := matrix.Mul(a, b)
	fmt.Println(err)

	// Output:
	// Mul: ValidateMulCompatible: (4x3)·(2x5): matrix: dimension mismatch
}
