// Package matrix_test contains unit tests for lazy mode resolution:
// detection precedence, integer truncation and cache invalidation.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/numat/matrix"
	"github.com/katalvlaran/numat/numeric"
	"github.com/stretchr/testify/require"
)

// TestModeDetectionPrecedence verifies the Complex > Int > Real rule.
func TestModeDetectionPrecedence(t *testing.T) {
	// Pure reals stay Real.
	m := mustReal(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, numeric.ModeReal, m.Mode())

	// One integer promotes the grid to Int.
	mixed, err := matrix.FromRows([][]numeric.Value{
		{numeric.Real(1.0), numeric.Int64(2)},
	})
	require.NoError(t, err)
	require.Equal(t, numeric.ModeInt, mixed.Mode())

	// One complex dominates everything.
	withComplex, err := matrix.FromRows([][]numeric.Value{
		{numeric.Real(1.0), numeric.Int64(2), numeric.Complex(0, 1)},
	})
	require.NoError(t, err)
	require.Equal(t, numeric.ModeComplex, withComplex.Mode())
}

// TestModeResolutionTruncatesReals verifies the documented lossy
// normalization: Real entries in an Int-dominant grid truncate toward zero.
func TestModeResolutionTruncatesReals(t *testing.T) {
	m, err := matrix.FromRows([][]numeric.Value{
		{numeric.Real(1.9), numeric.Int64(5)},
	})
	require.NoError(t, err)
	require.Equal(t, numeric.ModeInt, m.Mode()) // resolution normalizes the grid

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, numeric.ModeInt, v.Kind())
	require.Equal(t, int64(1), v.BigInt().Int64()) // 1.9 truncated toward zero
}

// TestModeResolutionIdempotent ensures repeated resolution is stable.
func TestModeResolutionIdempotent(t *testing.T) {
	m := mustInt(t, [][]int64{{1, 2}, {3, 4}})
	require.Equal(t, numeric.ModeInt, m.Mode())
	require.Equal(t, numeric.ModeInt, m.Mode()) // cached path
}

// TestSetInvalidatesModeCache ensures a write forces re-detection: inserting
// a complex value into a real matrix promotes it on next use.
func TestSetInvalidatesModeCache(t *testing.T) {
	m := mustReal(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, numeric.ModeReal, m.Mode()) // resolve and cache

	require.NoError(t, m.Set(0, 1, numeric.Complex(0, 1))) // mutate one entry

	require.Equal(t, numeric.ModeComplex, m.Mode()) // cache was invalidated

	// Every entry is normalized into the new mode.
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, numeric.ModeComplex, v.Kind())
	re, im := v.Components()
	require.Equal(t, 4.0, re)
	require.Equal(t, 0.0, im)
}
