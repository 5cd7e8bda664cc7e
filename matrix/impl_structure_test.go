// Package matrix_test contains unit tests for the structural predicate
// family.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/numat/matrix"
	"github.com/katalvlaran/numat/numeric"
	"github.com/stretchr/testify/require"
)

// TestShapePredicates covers the O(1) shape checks.
func TestShapePredicates(t *testing.T) {
	row := mustReal(t, [][]float64{{1, 2, 3}})
	require.True(t, row.IsRowMatrix())
	require.False(t, row.IsColumnMatrix())
	require.False(t, row.IsSquare())

	col := mustReal(t, [][]float64{{1}, {2}})
	require.True(t, col.IsColumnMatrix())
	require.False(t, col.IsRowMatrix())

	sq := mustReal(t, [][]float64{{1, 2}, {3, 4}})
	require.True(t, sq.IsSquare())
}

// TestIsZeroMatrix covers the zero scan under tolerance.
func TestIsZeroMatrix(t *testing.T) {
	z, err := matrix.New(2, 3) // Real zeros
	require.NoError(t, err)
	require.True(t, z.IsZeroMatrix())

	near := mustReal(t, [][]float64{{1e-12, 0}, {0, -1e-12}})
	require.True(t, near.IsZeroMatrix()) // within DefaultEpsilon

	not := mustReal(t, [][]float64{{1e-3, 0}, {0, 0}})
	require.False(t, not.IsZeroMatrix())
	require.True(t, not.IsZeroMatrix(matrix.WithEpsilon(0.01))) // widened eps
}

// TestIsIdentityAndDiagonal covers identity, diagonal and scalar checks.
func TestIsIdentityAndDiagonal(t *testing.T) {
	id, err := matrix.Identity(3, numeric.ModeReal)
	require.NoError(t, err)
	require.True(t, id.IsIdentity())
	require.True(t, id.IsDiagonal())
	require.True(t, id.IsScalarMatrix()) // identity is scalar with value 1

	diag := mustReal(t, [][]float64{{2, 0}, {0, 3}})
	require.False(t, diag.IsIdentity())
	require.True(t, diag.IsDiagonal())
	require.False(t, diag.IsScalarMatrix()) // unequal diagonal

	scalar := mustReal(t, [][]float64{{5, 0}, {0, 5}})
	require.True(t, scalar.IsScalarMatrix())

	full := mustReal(t, [][]float64{{1, 1}, {0, 1}})
	require.False(t, full.IsDiagonal())

	rect := mustReal(t, [][]float64{{1, 0, 0}, {0, 1, 0}})
	require.False(t, rect.IsIdentity()) // non-square is never identity
}

// TestIsSymmetricAndHermitian covers the two mirror predicates across modes.
func TestIsSymmetricAndHermitian(t *testing.T) {
	sym := mustReal(t, [][]float64{{1, 2}, {2, 3}})
	require.True(t, sym.IsSymmetric())
	require.True(t, sym.IsHermitian()) // real symmetric is Hermitian

	asym := mustReal(t, [][]float64{{1, 2}, {3, 4}})
	require.False(t, asym.IsSymmetric())

	// Classic Hermitian fixture: [[1, 2+i],[2−i, 3]].
	herm, err := matrix.FromRows([][]numeric.Value{
		{numeric.Complex(1, 0), numeric.Complex(2, 1)},
		{numeric.Complex(2, -1), numeric.Complex(3, 0)},
	})
	require.NoError(t, err)
	require.True(t, herm.IsHermitian())
	require.False(t, herm.IsSymmetric()) // mirror without conjugation fails

	// Nonzero imaginary on the diagonal breaks Hermitian symmetry.
	badDiag, err := matrix.FromRows([][]numeric.Value{
		{numeric.Complex(1, 1), numeric.Complex(0, 0)},
		{numeric.Complex(0, 0), numeric.Complex(2, 0)},
	})
	require.NoError(t, err)
	require.False(t, badDiag.IsHermitian())
}

// TestTriangularPredicates covers upper/lower scans.
func TestTriangularPredicates(t *testing.T) {
	up := mustReal(t, [][]float64{{1, 2}, {0, 3}})
	require.True(t, up.IsUpperTriangular())
	require.False(t, up.IsLowerTriangular())

	low := mustReal(t, [][]float64{{1, 0}, {2, 3}})
	require.True(t, low.IsLowerTriangular())
	require.False(t, low.IsUpperTriangular())

	diag := mustReal(t, [][]float64{{1, 0}, {0, 2}})
	require.True(t, diag.IsUpperTriangular()) // diagonal is both
	require.True(t, diag.IsLowerTriangular())
}

// TestIsOrthogonal covers rotations, unitarity and the Int-mode rule.
func TestIsOrthogonal(t *testing.T) {
	id, err := matrix.Identity(3, numeric.ModeReal)
	require.NoError(t, err)
	ok, err := id.IsOrthogonal()
	require.NoError(t, err)
	require.True(t, ok)

	// A 90° rotation is orthogonal.
	rot := mustReal(t, [][]float64{{0, -1}, {1, 0}})
	ok, err = rot.IsOrthogonal()
	require.NoError(t, err)
	require.True(t, ok)

	// A shear is not.
	shear := mustReal(t, [][]float64{{1, 1}, {0, 1}})
	ok, err = shear.IsOrthogonal()
	require.NoError(t, err)
	require.False(t, ok)

	// Unitary check in Complex mode: diag(i, -i) · its conjugate transpose = I.
	unit, err := matrix.FromRows([][]numeric.Value{
		{numeric.Complex(0, 1), numeric.Complex(0, 0)},
		{numeric.Complex(0, 0), numeric.Complex(0, -1)},
	})
	require.NoError(t, err)
	ok, err = unit.IsOrthogonal()
	require.NoError(t, err)
	require.True(t, ok)

	// Int mode is unsupported.
	ints := mustInt(t, [][]int64{{1, 0}, {0, 1}})
	_, err = ints.IsOrthogonal()
	require.ErrorIs(t, err, matrix.ErrUnsupportedOperation)

	// Non-square reports false without error.
	rect := mustReal(t, [][]float64{{1, 0, 0}, {0, 1, 0}})
	ok, err = rect.IsOrthogonal()
	require.NoError(t, err)
	require.False(t, ok)
}
