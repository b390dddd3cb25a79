// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
)

func ExampleDeterminant() {
	m, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	d, _ := matrix.Determinant(m)
	fmt.Println(matrix.FormatValue(d))
	// Output: -2.000
}

func ExampleMul() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2, 3}})
	b, _ := matrix.NewDenseFromRows([][]float64{{1}, {0}, {-1}})
	c, _ := matrix.Mul(b, a)
	for row := range matrix.Format(c, matrix.WithPrecision(1)) {
		fmt.Println(row)
	}
	// Output:
	// 1.0 2.0 3.0
	// 0.0 0.0 0.0
	// -1.0 -2.0 -3.0
}

func ExampleDense_TransposeInPlace() {
	m, _ := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	m.TransposeInPlace()
	fmt.Println(m)
	// Output:
	// 1.000 4.000
	// 2.000 5.000
	// 3.000 6.000
}
