// Package numeric: Value is the tagged-union entry type shared by all
// matrix cells. A Value carries its Mode plus exactly one active payload:
// re for Real, big for Int, (re, im) for Complex. The zero Value is Real 0.
package numeric

import "math/big"

// Value is a single hybrid-numeric entry.
// Values behave like immutable scalars: constructors and Clone copy the
// big.Int payload, so no two Values ever share mutable state.
type Value struct {
	kind Mode     // active representation tag
	re   float64  // real component (Real, Complex)
	im   float64  // imaginary component (Complex only)
	big  *big.Int // exact payload (Int only; nil means 0)
}

// Real constructs a floating-point Value.
// Complexity: O(1).
func Real(v float64) Value {
	return Value{kind: ModeReal, re: v}
}

// Int64 constructs an arbitrary-precision integer Value from an int64.
// Complexity: O(1).
func Int64(v int64) Value {
	return Value{kind: ModeInt, big: big.NewInt(v)}
}

// Int constructs an arbitrary-precision integer Value from a big.Int.
// The payload is copied defensively; nil is treated as 0.
// Complexity: O(n) in the number of words of v.
func Int(v *big.Int) Value {
	if v == nil {
		return Value{kind: ModeInt, big: new(big.Int)}
	}

	return Value{kind: ModeInt, big: new(big.Int).Set(v)}
}

// Complex constructs a complex Value from its two floating components.
// Complexity: O(1).
func Complex(re, im float64) Value {
	return Value{kind: ModeComplex, re: re, im: im}
}

// Kind returns the active representation tag.
// Complexity: O(1).
func (v Value) Kind() Mode {
	return v.kind
}

// Float returns the floating view of the value: the stored float for Real,
// the (possibly rounded) float64 conversion for Int, and the real component
// for Complex. Use Coerce for the checked, typed conversion.
// Complexity: O(1) for Real/Complex, O(n) for Int.
func (v Value) Float() float64 {
	if v.kind == ModeInt {
		f, _ := new(big.Float).SetInt(v.intRef()).Float64()
		return f
	}

	return v.re
}

// Components returns the (re, im) floating components. Real and Int values
// report a zero imaginary component; Int reports its float64 conversion.
// Complexity: O(1) for Real/Complex, O(n) for Int.
func (v Value) Components() (float64, float64) {
	if v.kind == ModeInt {
		return v.Float(), 0
	}

	return v.re, v.im
}

// BigInt returns a copy of the exact integer payload for Int values.
// For Real and Complex values it returns the real component truncated
// toward zero, mirroring the documented Real→Int coercion rule.
// Complexity: O(n).
func (v Value) BigInt() *big.Int {
	if v.kind == ModeInt {
		return new(big.Int).Set(v.intRef())
	}

	return truncToInt(v.re)
}

// Clone returns a deep copy of the value.
// The big.Int payload, when present, is duplicated.
// Complexity: O(n) for Int, O(1) otherwise.
func (v Value) Clone() Value {
	if v.kind == ModeInt {
		return Value{kind: ModeInt, big: new(big.Int).Set(v.intRef())}
	}

	return v
}

// String implements fmt.Stringer via the value's own operation set,
// yielding the canonical display form (`re+imi` for Complex, decimal
// otherwise).
func (v Value) String() string {
	return OpsFor(v.kind).Format(v)
}

// intRef returns the integer payload without copying, substituting a fresh
// zero for the nil (zero-value) case. Internal use only: callers must not
// mutate the result when it aliases v.big.
func (v Value) intRef() *big.Int {
	if v.big == nil {
		return new(big.Int)
	}

	return v.big
}

// truncToInt converts a float toward zero into a fresh big.Int.
// Shared by BigInt and the Real→Int coercion path.
func truncToInt(f float64) *big.Int {
	i, _ := big.NewFloat(f).Int(nil) // big.Float.Int truncates toward zero
	if i == nil {
		i = new(big.Int)
	}

	return i
}

// inMode normalizes v into mode m without error reporting. It is the
// forgiving internal counterpart of Coerce used by operation sets to stay
// total: matrix-level code always coerces first, so the lossy arms
// (Complex→Real/Int dropping im) are defensive, never a supported path.
func (v Value) inMode(m Mode) Value {
	if v.kind == m {
		return v
	}
	switch m {
	case ModeComplex:
		re, im := v.Components()
		return Complex(re, im)
	case ModeInt:
		return Value{kind: ModeInt, big: v.BigInt()}
	default:
		return Real(v.Float())
	}
}
