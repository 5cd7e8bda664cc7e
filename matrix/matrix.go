// Package matrix: Matrix is the dense, row-major container of hybrid
// numeric entries. Storage is a flat slice for cache friendliness; every
// read and write clones the value so the grid never aliases caller data.
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/numat/numeric"
)

// Matrix is a rectangular grid of numeric.Value entries.
// r is rows, c is columns, and cells holds r*c entries in row-major order.
// mode caches the lazily resolved numeric mode; nil means "not resolved
// yet" (either never computed, or invalidated by a Set).
type Matrix struct {
	r, c  int             // number of rows and columns (fixed at construction)
	cells []numeric.Value // flat backing storage, length == r*c
	mode  *numeric.Mode   // resolved mode cache; nil until first use
}

// cellErrorf wraps an underlying error with Matrix method context.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// New creates an r×c matrix filled with Real zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice (numeric.Value zero value
// is Real 0 by construction).
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix{r: rows, c: cols, cells: make([]numeric.Value, rows*cols)}, nil
}

// NewFilled creates an r×c matrix with every entry set to a clone of fill.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Execute): clone fill into every cell (value semantics).
// Complexity: O(r*c).
func NewFilled(rows, cols int, fill numeric.Value) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.cells {
		m.cells[i] = fill.Clone()
	}

	return m, nil
}

// FromRows builds a matrix from a pre-existing rectangular grid of entries.
// Stage 1 (Validate): reject empty grids and jagged rows.
// Stage 2 (Execute): deep-copy every entry into flat storage.
// Errors: ErrInvalidDimensions on empty input, ErrShapeMismatch on jagged
// rows.
// Complexity: O(r*c).
func FromRows(rows [][]numeric.Value) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, ErrShapeMismatch
		}
	}

	m := &Matrix{r: len(rows), c: cols, cells: make([]numeric.Value, len(rows)*cols)}
	for i, row := range rows {
		for j, v := range row {
			m.cells[i*cols+j] = v.Clone() // never alias caller-supplied values
		}
	}

	return m, nil
}

// Identity creates the n×n identity matrix in the given mode: the mode's
// multiplicative identity on the diagonal, its additive identity elsewhere.
// The resolved mode is preset (no detection pass needed).
// Complexity: O(n²).
func Identity(n int, mode numeric.Mode) (*Matrix, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	ops := numeric.OpsFor(mode)

	m := &Matrix{r: n, c: n, cells: make([]numeric.Value, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				m.cells[i*n+j] = ops.One()
			} else {
				m.cells[i*n+j] = ops.Zero()
			}
		}
	}
	m.mode = &mode

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, cellErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, cellErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves a copy of the element at (row, col).
// The returned Value is a clone; mutating its payload never touches the
// grid.
// Complexity: O(1) plus payload copy.
func (m *Matrix) At(row, col int) (numeric.Value, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return numeric.Value{}, err
	}

	return m.cells[idx].Clone(), nil
}

// Set assigns a clone of v at (row, col) and invalidates the cached mode:
// a new entry can change the dominant mode (e.g. inserting a complex value
// into a previously real-valued matrix promotes it to Complex on next use).
// Complexity: O(1) plus payload copy.
func (m *Matrix) Set(row, col int, v numeric.Value) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.cells[idx] = v.Clone()
	m.mode = nil // force re-detection on next use

	return nil
}

// Clone returns a deep copy of the matrix, including the mode cache.
// Complexity: O(r*c) plus payload copies.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{r: m.r, c: m.c, cells: cloneCells(m.cells)}
	if m.mode != nil {
		mode := *m.mode
		out.mode = &mode
	}

	return out
}

// ToRows exports the grid as a fresh [][]numeric.Value (deep copy).
// Complexity: O(r*c).
func (m *Matrix) ToRows() [][]numeric.Value {
	out := make([][]numeric.Value, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]numeric.Value, m.c)
		for j := 0; j < m.c; j++ {
			row[j] = m.cells[i*m.c+j].Clone()
		}
		out[i] = row
	}

	return out
}

// String implements fmt.Stringer for easy debugging, rendering each row as
// "[a, b, c]" using the canonical per-mode display form.
// Complexity: O(r*c) for string construction.
func (m *Matrix) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		b.WriteString("[")
		for j = 0; j < m.c; j++ { // iterate over columns
			b.WriteString(m.cells[i*m.c+j].String())
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// cloneCells deep-copies a flat cell slice.
func cloneCells(cells []numeric.Value) []numeric.Value {
	out := make([]numeric.Value, len(cells))
	for i := range cells {
		out[i] = cells[i].Clone()
	}

	return out
}
