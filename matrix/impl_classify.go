// SPDX-License-Identifier: MIT
// Package matrix: structural classifier.
// Type runs an ordered, first-match-wins predicate chain; the ordering
// encodes priority when multiple classifications apply (the zero matrix is
// also diagonal; identity-adjacent labels take precedence over the generic
// "square").

package matrix

// Structural labels produced by Type (no magic strings at call sites).
const (
	TypeZero            = "Zero Matrix"
	TypeIdentity        = "Identity Matrix"
	TypeDiagonal        = "Diagonal Matrix"
	TypeScalar          = "Scalar Matrix"
	TypeHermitian       = "Hermitian Matrix"
	TypeSymmetric       = "Symmetric Matrix"
	TypeUpperTriangular = "Upper Triangular Matrix"
	TypeLowerTriangular = "Lower Triangular Matrix"
	TypeRow             = "Row Matrix"
	TypeColumn          = "Column Matrix"
	TypeSquare          = "Square Matrix"
	TypeRectangular     = "Rectangular Matrix"
)

// Type returns the human-readable structural label of the matrix.
//
// The chain is evaluated in a fixed order and the first matching predicate
// wins:
//
//	Zero → Identity → Diagonal → Scalar → Hermitian → Symmetric →
//	Upper Triangular → Lower Triangular → Row → Column → Square →
//	Rectangular (fallback)
//
// Each predicate is independently reusable (see impl_structure.go); the
// epsilon option applies to every tolerance-sensitive arm.
//
// Complexity: O(r*c) per evaluated predicate.
func (m *Matrix) Type(opts ...Option) string {
	switch {
	case m.IsZeroMatrix(opts...):
		return TypeZero
	case m.IsIdentity(opts...):
		return TypeIdentity
	case m.IsDiagonal(opts...):
		return TypeDiagonal
	case m.IsScalarMatrix(opts...):
		return TypeScalar
	case m.IsHermitian(opts...):
		return TypeHermitian
	case m.IsSymmetric(opts...):
		return TypeSymmetric
	case m.IsUpperTriangular(opts...):
		return TypeUpperTriangular
	case m.IsLowerTriangular(opts...):
		return TypeLowerTriangular
	case m.IsRowMatrix():
		return TypeRow
	case m.IsColumnMatrix():
		return TypeColumn
	case m.IsSquare():
		return TypeSquare
	default:
		return TypeRectangular
	}
}
