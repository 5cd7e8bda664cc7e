// SPDX-License-Identifier: MIT
// Package matrix: structural predicates.
// Each predicate is a pure read-only scan over the resolved grid, reusable
// independently and by the Type classifier. Tolerance-sensitive predicates
// accept the epsilon option; Int matrices always compare exactly.

package matrix

import "github.com/katalvlaran/numat/numeric"

// IsZeroMatrix reports whether every entry is the additive identity within
// the epsilon policy.
// Complexity: O(r*c).
func (m *Matrix) IsZeroMatrix(opts ...Option) bool {
	o := gatherOptions(opts...)
	ops := m.ops()
	for i := range m.cells {
		if !ops.IsZero(m.cells[i], o.eps) {
			return false
		}
	}

	return true
}

// IsSquare reports whether the matrix has as many rows as columns.
// Complexity: O(1).
func (m *Matrix) IsSquare() bool {
	return m.r == m.c
}

// IsRowMatrix reports whether the matrix has exactly one row.
// Complexity: O(1).
func (m *Matrix) IsRowMatrix() bool {
	return m.r == 1
}

// IsColumnMatrix reports whether the matrix has exactly one column.
// Complexity: O(1).
func (m *Matrix) IsColumnMatrix() bool {
	return m.c == 1
}

// IsIdentity reports whether the matrix is square with the multiplicative
// identity on the diagonal and the additive identity elsewhere.
// Complexity: O(r*c).
func (m *Matrix) IsIdentity(opts ...Option) bool {
	if !m.IsSquare() {
		return false
	}
	o := gatherOptions(opts...)
	ops := m.ops()
	one := ops.One()

	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if i == j {
				if !ops.Eq(m.cells[i*m.c+j], one, o.eps) {
					return false
				}
			} else if !ops.IsZero(m.cells[i*m.c+j], o.eps) {
				return false
			}
		}
	}

	return true
}

// IsDiagonal reports whether the matrix is square with every off-diagonal
// entry zero within the epsilon policy.
// Complexity: O(r*c).
func (m *Matrix) IsDiagonal(opts ...Option) bool {
	if !m.IsSquare() {
		return false
	}
	o := gatherOptions(opts...)
	ops := m.ops()

	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if i != j && !ops.IsZero(m.cells[i*m.c+j], o.eps) {
				return false
			}
		}
	}

	return true
}

// IsScalarMatrix reports whether the matrix is diagonal with all diagonal
// entries equal to each other.
// Complexity: O(r*c).
func (m *Matrix) IsScalarMatrix(opts ...Option) bool {
	if !m.IsDiagonal(opts...) {
		return false
	}
	o := gatherOptions(opts...)
	ops := m.ops()

	first := m.cells[0]
	for i := 1; i < m.r; i++ {
		if !ops.Eq(m.cells[i*m.c+i], first, o.eps) {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether entry[i][j] equals entry[j][i] for every
// strictly-lower pair (i > j). Non-square matrices are never symmetric.
// Complexity: O(r*c) on the lower triangle only.
func (m *Matrix) IsSymmetric(opts ...Option) bool {
	if !m.IsSquare() {
		return false
	}
	o := gatherOptions(opts...)
	ops := m.ops()

	var i, j int
	for i = 1; i < m.r; i++ {
		for j = 0; j < i; j++ {
			if !ops.Eq(m.cells[i*m.c+j], m.cells[j*m.c+i], o.eps) {
				return false
			}
		}
	}

	return true
}

// IsHermitian reports whether the matrix equals its own conjugate
// transpose: entry[i][j] == conj(entry[j][i]). The diagonal is included —
// a Hermitian diagonal must have zero imaginary components. For Real and
// Int matrices this degenerates to IsSymmetric.
// Complexity: O(r*c) on the lower triangle plus diagonal.
func (m *Matrix) IsHermitian(opts ...Option) bool {
	if !m.IsSquare() {
		return false
	}
	o := gatherOptions(opts...)
	ops := m.ops()

	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j <= i; j++ {
			if !ops.Eq(m.cells[i*m.c+j], ops.Conj(m.cells[j*m.c+i]), o.eps) {
				return false
			}
		}
	}

	return true
}

// IsUpperTriangular reports whether every entry strictly below the diagonal
// is zero within the epsilon policy. Non-square matrices are never
// triangular.
// Complexity: O(r*c) on the lower triangle.
func (m *Matrix) IsUpperTriangular(opts ...Option) bool {
	if !m.IsSquare() {
		return false
	}
	o := gatherOptions(opts...)
	ops := m.ops()

	var i, j int
	for i = 1; i < m.r; i++ {
		for j = 0; j < i; j++ {
			if !ops.IsZero(m.cells[i*m.c+j], o.eps) {
				return false
			}
		}
	}

	return true
}

// IsLowerTriangular reports whether every entry strictly above the diagonal
// is zero within the epsilon policy. Non-square matrices are never
// triangular.
// Complexity: O(r*c) on the upper triangle.
func (m *Matrix) IsLowerTriangular(opts ...Option) bool {
	if !m.IsSquare() {
		return false
	}
	o := gatherOptions(opts...)
	ops := m.ops()

	var i, j int
	for i = 0; i < m.r; i++ {
		for j = i + 1; j < m.c; j++ {
			if !ops.IsZero(m.cells[i*m.c+j], o.eps) {
				return false
			}
		}
	}

	return true
}

// IsOrthogonal reports whether A·Aᵗ (A·Aᴴ in Complex mode, i.e. unitarity)
// equals the identity within the epsilon policy.
//
// Behavior highlights:
//   - Non-square matrices report false without error.
//   - Int matrices fail with ErrUnsupportedOperation: the check requires a
//     tolerance-based field, which exact integers do not form.
//
// Errors:
//   - ErrUnsupportedOperation (Int mode).
//
// Complexity:
//   - Time O(n³) (dominated by the product).
func (m *Matrix) IsOrthogonal(opts ...Option) (bool, error) {
	if m.Mode() == numeric.ModeInt {
		return false, matrixErrorf(opOrthogonal, ErrUnsupportedOperation)
	}
	if !m.IsSquare() {
		return false, nil
	}

	t := m.Transpose()
	if m.Mode() == numeric.ModeComplex {
		t = m.ConjugateTranspose()
	}
	prod, err := m.Mul(t)
	if err != nil {
		return false, matrixErrorf(opOrthogonal, err)
	}

	return prod.IsIdentity(opts...), nil
}
