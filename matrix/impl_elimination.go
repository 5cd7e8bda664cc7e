// SPDX-License-Identifier: MIT
// Package matrix: elimination kernels (determinant, inverse, rank).
//
// Purpose:
//   - Implement the shared row-reduction core used by the three operations,
//     parameterized by the operation set of the working mode (selected once,
//     threaded through the loops — no per-element mode branching).
//
// Shared discipline:
//   - Every kernel works on a PRIVATE flat copy of the grid; the receiver is
//     never mutated, so any failure leaves it untouched.
//   - Pivot selection is "first nonzero" from the current row down (not by
//     magnitude), with zero-ness decided by the mode's IsZero under the
//     epsilon policy (exact for Int). A swap into position flips the
//     determinant's sign accumulator.
//   - Division failures from the numeric layer (zero divisor, non-exact
//     integer division) propagate wrapped with the operation tag; the
//     determinant of an Int matrix can therefore fail even when the true
//     determinant is well-defined. This is documented, intentional behavior.

package matrix

import "github.com/katalvlaran/numat/numeric"

// Determinant computes det(A) by Gaussian elimination with first-nonzero
// partial pivoting.
//
// Implementation:
//   - Stage 1: ValidateSquare; clone the grid in its resolved mode.
//   - Stage 2: for each column, scan rows col..n-1 for the first nonzero
//     entry; none found ⇒ the matrix is singular ⇒ return the additive
//     identity (early exit, no error). Swap the pivot row into place
//     (flipping the sign accumulator), multiply the running determinant by
//     the pivot, then eliminate entries below it: mult = A[r][col]/pivot,
//     A[r][j] -= mult·A[col][j] for j ≥ col.
//   - Stage 3: negate the accumulated product if an odd number of swaps
//     occurred.
//
// Returns:
//   - numeric.Value: the determinant in the matrix's resolved mode.
//
// Errors:
//   - ErrNonSquare; numeric.ErrNonExactDivision / numeric.ErrDivisionByZero
//     propagated from Int-mode elimination steps.
//
// Determinism:
//   - Fixed column sweep and first-nonzero pivot scan.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy.
func (m *Matrix) Determinant(opts ...Option) (numeric.Value, error) {
	if err := ValidateSquare(m); err != nil {
		return numeric.Value{}, matrixErrorf(opDeterminant, err)
	}

	o := gatherOptions(opts...)
	ops := m.ops() // resolves the mode and normalizes the grid
	n := m.r
	w := cloneCells(m.cells) // private working copy

	det := ops.One()
	negate := false // sign accumulator: odd number of row swaps

	var col, r, j int
	var mult numeric.Value
	var err error
	for col = 0; col < n; col++ {
		// Pivot scan: first row at or below col with a nonzero column entry.
		pivotRow := -1
		for r = col; r < n; r++ {
			if !ops.IsZero(w[r*n+col], o.eps) {
				pivotRow = r
				break
			}
		}
		if pivotRow == -1 {
			// Entire column is zero: singular, determinant is zero.
			return ops.Zero(), nil
		}
		if pivotRow != col {
			swapRows(w, n, pivotRow, col)
			negate = !negate
		}

		pivot := w[col*n+col]
		det = ops.Mul(det, pivot)

		// Eliminate below the pivot.
		for r = col + 1; r < n; r++ {
			if ops.IsZero(w[r*n+col], o.eps) {
				continue
			}
			if mult, err = ops.Div(w[r*n+col], pivot); err != nil {
				return numeric.Value{}, matrixErrorf(opDeterminant, err)
			}
			for j = col; j < n; j++ {
				w[r*n+j] = ops.Sub(w[r*n+j], ops.Mul(mult, w[col*n+j]))
			}
		}
	}

	if negate {
		det = ops.Sub(ops.Zero(), det)
	}

	return det, nil
}

// Inverse computes A⁻¹ by Gauss–Jordan reduction of the augmented grid
// [A | I].
//
// Implementation:
//   - Stage 1: ValidateSquare; reject Int mode with ErrUnsupportedOperation
//     (exact integers admit no rational fallback). Build the width-2n
//     augmented grid with the identity on the right.
//   - Stage 2: for each column, locate the first nonzero pivot at or below
//     the current row (ErrSingular if none), swap it into place, normalize
//     the pivot row by dividing every entry by the pivot, then eliminate
//     the column from every OTHER row (above and below).
//   - Stage 3: the right half of the fully reduced grid is the inverse.
//
// Returns:
//   - *Matrix: a fresh n×n inverse in the resolved mode.
//
// Errors:
//   - ErrNonSquare, ErrUnsupportedOperation (Int mode), ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the augmented grid.
func (m *Matrix) Inverse(opts ...Option) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	mode := m.Mode()
	if mode == numeric.ModeInt {
		return nil, matrixErrorf(opInverse, ErrUnsupportedOperation)
	}

	o := gatherOptions(opts...)
	ops := m.ops()
	n := m.r
	width := 2 * n

	// Build the augmented grid [A | I].
	aug := make([]numeric.Value, n*width)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			aug[i*width+j] = m.cells[i*n+j].Clone()
			if i == j {
				aug[i*width+n+j] = ops.One()
			} else {
				aug[i*width+n+j] = ops.Zero()
			}
		}
	}

	var col, r int
	var pivot, factor, v numeric.Value
	var err error
	for col = 0; col < n; col++ {
		// Pivot scan at or below the current row.
		pivotRow := -1
		for r = col; r < n; r++ {
			if !ops.IsZero(aug[r*width+col], o.eps) {
				pivotRow = r
				break
			}
		}
		if pivotRow == -1 {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		if pivotRow != col {
			swapRows(aug, width, pivotRow, col)
		}

		// Normalize the pivot row: divide every entry by the pivot.
		pivot = aug[col*width+col]
		for j = 0; j < width; j++ {
			if v, err = ops.Div(aug[col*width+j], pivot); err != nil {
				return nil, matrixErrorf(opInverse, err)
			}
			aug[col*width+j] = v
		}

		// Eliminate the column from every other row (above and below).
		for r = 0; r < n; r++ {
			if r == col {
				continue
			}
			factor = aug[r*width+col]
			if ops.IsZero(factor, o.eps) {
				continue
			}
			for j = 0; j < width; j++ {
				aug[r*width+j] = ops.Sub(aug[r*width+j], ops.Mul(factor, aug[col*width+j]))
			}
		}
	}

	// Extract the right half.
	out := &Matrix{r: n, c: n, cells: make([]numeric.Value, n*n)}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.cells[i*n+j] = aug[i*width+n+j]
		}
	}
	out.mode = &mode

	return out, nil
}

// Rank computes the rank by full row-echelon reduction on a floating
// working copy.
//
// Implementation:
//   - Stage 1: pick the working mode — Complex when the matrix is Complex,
//     Real otherwise (Int entries convert losslessly in range). Working in
//     a division-closed field keeps the count mode-independent and avoids
//     spurious non-exact-division failures that say nothing about rank.
//   - Stage 2: sweep columns left to right; in each, scan for the first
//     nonzero pivot at or below the current row. If none, move to the next
//     column without advancing. Otherwise swap the pivot row up,
//     scale-and-subtract it from every row below, and advance both the row
//     cursor and the rank counter.
//
// Returns:
//   - int: the number of pivots found (the rank).
//
// Errors:
//   - Only propagated division failures, which cannot occur on this path
//     (pivots are nonzero by selection); the signature stays uniform with
//     the other kernels.
//
// Complexity:
//   - Time O(min(r,c)·r·c), Space O(r*c).
func (m *Matrix) Rank(opts ...Option) (int, error) {
	o := gatherOptions(opts...)

	// Floating working mode: Complex stays Complex, Real/Int go Real.
	work := numeric.ModeReal
	if m.Mode() == numeric.ModeComplex {
		work = numeric.ModeComplex
	}
	ops := numeric.OpsFor(work)

	w, err := coerceCells(m.cells, work)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	rows, cols := m.r, m.c
	rank := 0
	row := 0

	var col, r, j int
	var mult numeric.Value
	for col = 0; col < cols && row < rows; col++ {
		// Pivot scan at or below the current row.
		pivotRow := -1
		for r = row; r < rows; r++ {
			if !ops.IsZero(w[r*cols+col], o.eps) {
				pivotRow = r
				break
			}
		}
		if pivotRow == -1 {
			continue // no pivot in this column; rank does not advance
		}
		if pivotRow != row {
			swapRows(w, cols, pivotRow, row)
		}

		// Eliminate below the pivot.
		pivot := w[row*cols+col]
		for r = row + 1; r < rows; r++ {
			if ops.IsZero(w[r*cols+col], o.eps) {
				continue
			}
			if mult, err = ops.Div(w[r*cols+col], pivot); err != nil {
				return 0, matrixErrorf(opRank, err)
			}
			for j = col; j < cols; j++ {
				w[r*cols+j] = ops.Sub(w[r*cols+j], ops.Mul(mult, w[row*cols+j]))
			}
		}

		row++
		rank++
	}

	return rank, nil
}

// swapRows exchanges rows r1 and r2 of a flat row-major grid of the given
// width.
func swapRows(cells []numeric.Value, width, r1, r2 int) {
	for j := 0; j < width; j++ {
		cells[r1*width+j], cells[r2*width+j] = cells[r2*width+j], cells[r1*width+j]
	}
}
