// Package matrix_test: shared helpers for building fixture matrices.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/numat/matrix"
	"github.com/katalvlaran/numat/numeric"
	"github.com/stretchr/testify/require"
)

// realRows converts a float64 grid into numeric.Value rows.
func realRows(rows [][]float64) [][]numeric.Value {
	out := make([][]numeric.Value, len(rows))
	for i, row := range rows {
		out[i] = make([]numeric.Value, len(row))
		for j, v := range row {
			out[i][j] = numeric.Real(v)
		}
	}

	return out
}

// intRows converts an int64 grid into numeric.Value rows.
func intRows(rows [][]int64) [][]numeric.Value {
	out := make([][]numeric.Value, len(rows))
	for i, row := range rows {
		out[i] = make([]numeric.Value, len(row))
		for j, v := range row {
			out[i][j] = numeric.Int64(v)
		}
	}

	return out
}

// mustReal builds a Real-mode matrix from a float64 grid, failing the test
// on construction errors.
func mustReal(t *testing.T, rows [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(realRows(rows))
	require.NoError(t, err)

	return m
}

// mustInt builds an Int-mode matrix from an int64 grid.
func mustInt(t *testing.T, rows [][]int64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(intRows(rows))
	require.NoError(t, err)

	return m
}

// requireValueInDelta asserts both floating components of got are within
// delta of (re, im).
func requireValueInDelta(t *testing.T, re, im float64, got numeric.Value, delta float64) {
	t.Helper()
	gre, gim := got.Components()
	require.InDelta(t, re, gre, delta)
	require.InDelta(t, im, gim, delta)
}
