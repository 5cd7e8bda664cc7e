// SPDX-License-Identifier: MIT
// Package numeric: the single conversion point between modes.
//
// Purpose:
//   - Convert one Value into a target Mode under the documented rules, with
//     typed failures (ErrUnsupportedCoercion) instead of silent corruption.
//   - Keep ALL narrowing policy in one function so the matrix layer never
//     invents ad-hoc conversions.

package numeric

// Coerce converts v into the target mode.
//
// Implementation:
//   - Stage 1: same-mode requests return a fresh clone (value semantics).
//   - Stage 2: widening into Complex is always lossless (im = 0).
//   - Stage 3: narrowing applies the documented rules below.
//
// Behavior highlights:
//   - Real→Int truncates toward zero. This is the ONE documented lossy
//     conversion; it backs mode detection when integer entries dominate.
//   - Complex→Int always fails: there is no meaningful integer projection.
//   - Complex→Real requires an exactly-zero imaginary component (no
//     tolerance); anything else fails.
//   - Int→Real converts via float64 (lossless within the 53-bit mantissa).
//
// Inputs:
//   - v: the value to convert.
//   - target: the requested mode.
//
// Returns:
//   - Value: the converted value (fresh; never aliases v's payload).
//   - error: ErrUnsupportedCoercion on the rejected narrowing arms.
//
// Complexity:
//   - Time O(n) in big.Int payload words, Space O(n).
//
// Notes:
//   - Combining two matrices always widens (Combine picks the max), so the
//     failing arms are reachable only through direct Coerce calls.
func Coerce(v Value, target Mode) (Value, error) {
	if v.kind == target {
		return v.Clone(), nil
	}

	switch target {
	case ModeComplex:
		// Any mode widens losslessly.
		re, im := v.Components()
		return Complex(re, im), nil

	case ModeInt:
		if v.kind == ModeComplex {
			return Value{}, ErrUnsupportedCoercion
		}
		// Real→Int: truncate toward zero (documented lossy rule).
		return Value{kind: ModeInt, big: truncToInt(v.re)}, nil

	default: // ModeReal
		if v.kind == ModeComplex {
			if v.im != 0 {
				return Value{}, ErrUnsupportedCoercion
			}
			return Real(v.re), nil
		}
		// Int→Real: lossless in range.
		return Real(v.Float()), nil
	}
}
