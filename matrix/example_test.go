package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/utmatrix/matrix"
)

// ExampleMatrix_Add adds two 3×3 upper-triangular matrices.
func ExampleMatrix_Add() {
	a, _ := matrix.New[int](3)
	b, _ := matrix.New[int](3)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			_ = a.Set(i, j, i+j)
			_ = b.Set(i, j, 10)
		}
	}
	sum, _ := a.Add(b)
	fmt.Print(sum)
	// Output:
	// [10, 11, 12]
	// [12, 13]
	// [14]
}

// ExampleMatrix_Row shows chained row/column access.
func ExampleMatrix_Row() {
	m, _ := matrix.New[float64](2)
	row, _ := m.Row(1)
	p, _ := row.Index(1) // row 1 starts at column 1
	*p = 2.5
	fmt.Print(m)
	// Output:
	// [0, 0]
	// [2.5]
}
