// SPDX-License-Identifier: MIT
// Package numeric: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// numeric package. All primitives MUST return these sentinels and tests MUST
// check them via errors.Is. No primitive panics on user-triggered error
// conditions.

package numeric

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "numeric: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrDivisionByZero is returned by OpSet.Div when the divisor is the
	// additive identity of its mode. The test is exact, never tolerance-based,
	// so a tiny-but-meaningful divisor is never silently treated as zero.
	ErrDivisionByZero = errors.New("numeric: division by zero")

	// ErrNonExactDivision is returned by the Int operation set when the
	// dividend is not an exact multiple of the divisor. Arbitrary-precision
	// integers support only exact division; there is no rational fallback.
	ErrNonExactDivision = errors.New("numeric: non-exact integer division")

	// ErrUnsupportedCoercion is returned by Coerce when the requested
	// conversion would be lossy beyond the documented rules: Complex→Int
	// always, and Complex→Real when the imaginary component is nonzero.
	ErrUnsupportedCoercion = errors.New("numeric: unsupported coercion")
)
