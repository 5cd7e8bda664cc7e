// Package numeric_test contains unit tests for Mode and its promotion
// precedence in the numeric package.
package numeric_test

import (
	"testing"

	"github.com/katalvlaran/numat/numeric"
	"github.com/stretchr/testify/require"
)

// TestCombinePrecedence verifies the promotion order Complex > Int > Real.
func TestCombinePrecedence(t *testing.T) {
	require.Equal(t, numeric.ModeReal, numeric.Combine(numeric.ModeReal, numeric.ModeReal))       // Real stays Real
	require.Equal(t, numeric.ModeInt, numeric.Combine(numeric.ModeReal, numeric.ModeInt))         // Int dominates Real
	require.Equal(t, numeric.ModeInt, numeric.Combine(numeric.ModeInt, numeric.ModeReal))         // commutative
	require.Equal(t, numeric.ModeComplex, numeric.Combine(numeric.ModeInt, numeric.ModeComplex))  // Complex dominates Int
	require.Equal(t, numeric.ModeComplex, numeric.Combine(numeric.ModeComplex, numeric.ModeReal)) // Complex dominates Real
}

// TestModeString verifies the diagnostic names of all modes.
func TestModeString(t *testing.T) {
	require.Equal(t, "Real", numeric.ModeReal.String())
	require.Equal(t, "Int", numeric.ModeInt.String())
	require.Equal(t, "Complex", numeric.ModeComplex.String())
	require.Equal(t, "Unknown", numeric.Mode(42).String()) // out-of-range tag
}
