package matrix_test

import (
	"fmt"
	"strings"

	"github.com/LoKe112/Paral-1/matrix"
)

// ExampleCompare recomputes a product and checks a candidate against it.
func ExampleCompare() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewFromRows([][]float64{{5, 6}, {7, 8}})
	ref, _ := matrix.Mul(a, b)

	candidate, _ := matrix.Decode(strings.NewReader("19 22 \n43 50.5 \n"), 2, 2, matrix.KindFloat)
	ok, diff, _ := matrix.Compare(ref, candidate, matrix.DefaultTolerance)
	fmt.Println(ok, diff)

	ok, diff, _ = matrix.Compare(ref, candidate, 1)
	fmt.Println(ok, diff)

	// Output:
	// false 0.5
	// true 0.5
}

// ExampleDecode shows a shape violation surfacing as ErrDimensionMismatch.
func ExampleDecode() {
	_, err := matrix.Decode(strings.NewReader("1 2\n3\n"), 2, 2, matrix.KindInteger)
	fmt.Println(err)

	// Output:
	// Decode: line 2: 1 columns, want 2: matrix: dimension mismatch
}
