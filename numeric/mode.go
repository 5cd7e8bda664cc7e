// SPDX-License-Identifier: MIT

// Package numeric: representation tags and their promotion precedence.
package numeric

// Mode identifies the active numeric representation of a Value or of a
// whole matrix. The declaration order encodes promotion precedence:
// Complex > Int > Real, so combining two modes is a numeric max.
type Mode uint8

const (
	// ModeReal is the floating-point representation (float64).
	ModeReal Mode = iota

	// ModeInt is the arbitrary-precision integer representation (math/big).
	ModeInt

	// ModeComplex is the complex representation (two float64 components).
	ModeComplex
)

// Combine returns the wider of two modes under promotion precedence.
// Used for mode detection folds and for combining two matrix operands.
// Complexity: O(1).
func Combine(a, b Mode) Mode {
	if a >= b {
		return a
	}

	return b
}

// String implements fmt.Stringer for diagnostics and error messages.
// Complexity: O(1).
func (m Mode) String() string {
	switch m {
	case ModeReal:
		return "Real"
	case ModeInt:
		return "Int"
	case ModeComplex:
		return "Complex"
	default:
		return "Unknown"
	}
}
