package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/numat/matrix"
	"github.com/katalvlaran/numat/numeric"
)

// ExampleMatrix_Determinant demonstrates elimination on a real 2×2 grid.
func ExampleMatrix_Determinant() {
	// 1) Build [[1,2],[3,4]]
	m, _ := matrix.FromRows([][]numeric.Value{
		{numeric.Real(1), numeric.Real(2)},
		{numeric.Real(3), numeric.Real(4)},
	})

	// 2) Determinant, inverse and classification
	det, _ := m.Determinant()
	fmt.Println("det =", det)
	fmt.Println("type =", m.Type())

	inv, _ := m.Inverse()
	fmt.Print(inv)

	// Output:
	// det = -2
	// type = Square Matrix
	// [-2, 1]
	// [1.5, -0.5]
}

// ExampleMatrix_Mode shows lazy mode promotion when entries mix.
func ExampleMatrix_Mode() {
	// 1) A real grid...
	m, _ := matrix.FromRows([][]numeric.Value{
		{numeric.Real(1), numeric.Real(2)},
		{numeric.Real(3), numeric.Real(4)},
	})
	fmt.Println("before:", m.Mode())

	// 2) ...promotes to Complex once a complex entry lands.
	_ = m.Set(0, 1, numeric.Complex(2, 1))
	fmt.Println("after: ", m.Mode())

	// Output:
	// before: Real
	// after:  Complex
}

// ExampleMatrix_Type classifies a Hermitian grid.
func ExampleMatrix_Type() {
	c, _ := matrix.FromRows([][]numeric.Value{
		{numeric.Complex(1, 0), numeric.Complex(2, 1)},
		{numeric.Complex(2, -1), numeric.Complex(3, 0)},
	})
	fmt.Println(c.Type())

	// Output:
	// Hermitian Matrix
}
