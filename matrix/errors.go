// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check
// them via errors.Is. No algorithm should panic on user-triggered error
// conditions. Panics are reserved for programmer errors in option
// constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// Division and coercion failures originate in the numeric package
// (numeric.ErrDivisionByZero, numeric.ErrNonExactDivision,
// numeric.ErrUnsupportedCoercion) and propagate through elimination kernels
// wrapped with the operation tag; match them with errors.Is as well.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrShapeMismatch indicates a jagged input grid: FromRows requires
	// every row to have the same length.
	ErrShapeMismatch = errors.New("matrix: jagged input rows")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (determinant, inverse).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrUnsupportedOperation marks an operation the resolved mode cannot
	// support: Inverse and IsOrthogonal on Int matrices (exact integers have
	// no division-closed field to work in).
	ErrUnsupportedOperation = errors.New("matrix: operation unsupported for mode")

	// ErrSingular is returned by Inverse when no nonzero pivot exists for
	// some column, i.e. the matrix is not invertible.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was
	// used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
