// SPDX-License-Identifier: MIT
// Package matrix: structural transforms, multiplication and equality.
// All functions perform strict fail-fast validation, operate through the
// operation set of the relevant mode (selected once, threaded through the
// loops) and allocate fresh results — operands are never mutated.

package matrix

import (
	"github.com/katalvlaran/numat/numeric"
)

// Operation name constants for unified error wrapping and reducing magic
// strings.
const (
	opMul         = "Mul"
	opEquals      = "Equals"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opRank        = "Rank"
	opOrthogonal  = "IsOrthogonal"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w. The wrapper keeps a stable "Op: underlying" shape for
// uniform reporting across facades. Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return validatorErrorf(tag, err)
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated; the mode cache is carried over
// (transposition cannot change the dominant mode).
//
// Determinism:
//   - Fixed i→j traversal.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func (m *Matrix) Transpose() *Matrix {
	out := &Matrix{r: m.c, c: m.r, cells: make([]numeric.Value, len(m.cells))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.cells[j*m.r+i] = m.cells[i*m.c+j].Clone()
		}
	}
	if m.mode != nil {
		mode := *m.mode
		out.mode = &mode
	}

	return out
}

// ConjugateTranspose returns the conjugate transpose mᴴ: entries are
// transposed and, in Complex mode, their imaginary components negated.
// For Real and Int matrices the result equals Transpose().
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) ConjugateTranspose() *Matrix {
	ops := m.ops() // resolves and normalizes the grid first

	out := &Matrix{r: m.c, c: m.r, cells: make([]numeric.Value, len(m.cells))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.cells[j*m.r+i] = ops.Conj(m.cells[i*m.c+j])
		}
	}
	mode := ops.Mode()
	out.mode = &mode

	return out
}

// Mul performs standard matrix multiplication C = A × B over the combined
// mode of both operands.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: resolve both modes; combined = Combine(a.Mode(), b.Mode());
//     coerce every operand entry into the combined mode up front.
//   - Stage 3: fixed i→j→k triple loop accumulating with the combined
//     operation set; result mode preset to the combined mode.
//
// Behavior highlights:
//   - Combining always widens (precedence max), so coercion cannot fail on
//     this path; errors still propagate wrapped for uniformity.
//   - Deterministic loop order; one allocation for C.
//
// Inputs:
//   - other: right operand with other.Rows() == m.Cols().
//
// Returns:
//   - *Matrix: new (m.Rows × other.Cols) matrix in the combined mode.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	combined := numeric.Combine(m.Mode(), other.Mode())
	ops := numeric.OpsFor(combined)

	wa, err := coerceCells(m.cells, combined)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	wb, err := coerceCells(other.cells, combined)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := m.r, m.c, other.c
	out := &Matrix{r: aRows, c: bCols, cells: make([]numeric.Value, aRows*bCols)}

	var i, j, k int
	var acc numeric.Value
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = ops.Zero()
			for k = 0; k < aCols; k++ {
				acc = ops.Add(acc, ops.Mul(wa[i*aCols+k], wb[k*bCols+j]))
			}
			out.cells[i*bCols+j] = acc
		}
	}
	out.mode = &combined

	return out, nil
}

// Equals reports element-wise equality under the epsilon policy.
// Both matrices must have identical dimensions AND identical resolved
// modes; otherwise the result is false without error. Comparison then
// delegates to the mode's Eq primitive (exact for Int, per-component
// tolerance for Real/Complex).
//
// Errors:
//   - ErrNilMatrix when other is nil.
//
// Complexity:
//   - Time O(r*c).
func (m *Matrix) Equals(other *Matrix, opts ...Option) (bool, error) {
	if err := ValidateNotNil(other); err != nil {
		return false, matrixErrorf(opEquals, err)
	}
	if m.r != other.r || m.c != other.c {
		return false, nil
	}
	if m.Mode() != other.Mode() {
		return false, nil
	}

	o := gatherOptions(opts...)
	ops := m.ops()
	for i := range m.cells {
		if !ops.Eq(m.cells[i], other.cells[i], o.eps) {
			return false, nil
		}
	}

	return true, nil
}

// coerceCells converts a flat cell slice into the target mode, cloning
// entries already in that mode. Shared by Mul and the elimination kernels.
func coerceCells(cells []numeric.Value, target numeric.Mode) ([]numeric.Value, error) {
	out := make([]numeric.Value, len(cells))
	var err error
	for i := range cells {
		if out[i], err = numeric.Coerce(cells[i], target); err != nil {
			return nil, err
		}
	}

	return out, nil
}
