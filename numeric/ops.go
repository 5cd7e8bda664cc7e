// SPDX-License-Identifier: MIT
// Package numeric: per-mode operation sets (the dispatch layer).
//
// Purpose:
//   - Bundle the zero/one/add/sub/mul/div/eq/isZero/conj/format primitives
//     of one Mode behind a single stateless OpSet value.
//   - Let callers (the matrix container and its elimination kernels) select
//     the bundle ONCE per operation and thread it explicitly through hot
//     loops, instead of re-branching on a runtime tag per element.
//
// Determinism & Performance:
//   - All primitives are pure functions; OpSet values carry no state and are
//     safe for concurrent use.
//   - Int arithmetic is exact (math/big); Real and Complex use float64 with
//     standard component formulas.
//
// Notes:
//   - Operands are normalized into the set's mode on entry (inMode). The
//     matrix layer coerces before dispatch, so normalization is a cheap
//     same-mode identity on every supported path.

package numeric

import (
	"fmt"
	"math"
	"math/big"
)

// OpSet is the stateless bundle of numeric primitives for one Mode.
//
// Contract: Add/Sub/Mul/Conj are total; Div reports ErrDivisionByZero when
// the divisor is the additive identity (exact test) and, for ModeInt,
// ErrNonExactDivision when the quotient is not exact. Eq and IsZero apply
// tolerance eps per floating component and compare exactly for ModeInt.
type OpSet interface {
	// Mode returns the representation this set operates in.
	Mode() Mode

	// Zero returns the additive identity of the mode.
	Zero() Value

	// One returns the multiplicative identity of the mode.
	One() Value

	// Add returns a + b.
	Add(a, b Value) Value

	// Sub returns a - b.
	Sub(a, b Value) Value

	// Mul returns a * b.
	Mul(a, b Value) Value

	// Div returns a / b, or ErrDivisionByZero / ErrNonExactDivision.
	Div(a, b Value) (Value, error)

	// Eq reports whether a and b are equal within eps (exact for ModeInt).
	Eq(a, b Value, eps float64) bool

	// IsZero reports whether a is the additive identity within eps.
	IsZero(a Value, eps float64) bool

	// Conj returns the complex conjugate (identity for Real and Int).
	Conj(a Value) Value

	// Format returns the canonical display form of a.
	Format(a Value) string
}

// OpsFor returns the operation set bound to mode m.
//
// Implementation:
//   - Stage 1: switch on the tag; each arm returns a shared zero-size value.
//
// Behavior highlights:
//   - No allocation; the three sets are singletons by construction.
//
// Complexity:
//   - Time O(1), Space O(1).
func OpsFor(m Mode) OpSet {
	switch m {
	case ModeInt:
		return intOps{}
	case ModeComplex:
		return complexOps{}
	default:
		return realOps{}
	}
}

// ---------------------------------------------------------------- Real ----

// realOps implements OpSet over float64.
type realOps struct{}

func (realOps) Mode() Mode  { return ModeReal }
func (realOps) Zero() Value { return Real(0) }
func (realOps) One() Value  { return Real(1) }

func (realOps) Add(a, b Value) Value {
	return Real(a.inMode(ModeReal).re + b.inMode(ModeReal).re)
}

func (realOps) Sub(a, b Value) Value {
	return Real(a.inMode(ModeReal).re - b.inMode(ModeReal).re)
}

func (realOps) Mul(a, b Value) Value {
	return Real(a.inMode(ModeReal).re * b.inMode(ModeReal).re)
}

// Div divides two reals. The zero test is exact: only a divisor equal to
// the additive identity is rejected.
func (realOps) Div(a, b Value) (Value, error) {
	bv := b.inMode(ModeReal).re
	if bv == 0 {
		return Value{}, ErrDivisionByZero
	}

	return Real(a.inMode(ModeReal).re / bv), nil
}

func (realOps) Eq(a, b Value, eps float64) bool {
	return math.Abs(a.inMode(ModeReal).re-b.inMode(ModeReal).re) <= eps
}

func (realOps) IsZero(a Value, eps float64) bool {
	return math.Abs(a.inMode(ModeReal).re) <= eps
}

func (realOps) Conj(a Value) Value { return a.inMode(ModeReal) }

func (realOps) Format(a Value) string {
	return fmt.Sprintf("%g", a.inMode(ModeReal).re)
}

// ----------------------------------------------------------------- Int ----

// intOps implements OpSet over arbitrary-precision integers.
// Every result holds a fresh big.Int; operands are never aliased.
type intOps struct{}

func (intOps) Mode() Mode  { return ModeInt }
func (intOps) Zero() Value { return Value{kind: ModeInt, big: new(big.Int)} }
func (intOps) One() Value  { return Int64(1) }

func (intOps) Add(a, b Value) Value {
	return Value{kind: ModeInt, big: new(big.Int).Add(a.inMode(ModeInt).intRef(), b.inMode(ModeInt).intRef())}
}

func (intOps) Sub(a, b Value) Value {
	return Value{kind: ModeInt, big: new(big.Int).Sub(a.inMode(ModeInt).intRef(), b.inMode(ModeInt).intRef())}
}

func (intOps) Mul(a, b Value) Value {
	return Value{kind: ModeInt, big: new(big.Int).Mul(a.inMode(ModeInt).intRef(), b.inMode(ModeInt).intRef())}
}

// Div performs exact integer division.
//
// Implementation:
//   - Stage 1: reject a zero divisor (Sign test) with ErrDivisionByZero.
//   - Stage 2: QuoRem; a nonzero remainder fails with ErrNonExactDivision.
//
// Behavior highlights:
//   - Truncated division (QuoRem) — irrelevant here since only exact
//     quotients are accepted.
//
// Complexity:
//   - Time O(n²) in payload words (big.Int division), Space O(n).
func (intOps) Div(a, b Value) (Value, error) {
	bi := b.inMode(ModeInt).intRef()
	if bi.Sign() == 0 {
		return Value{}, ErrDivisionByZero
	}
	quo, rem := new(big.Int).QuoRem(a.inMode(ModeInt).intRef(), bi, new(big.Int))
	if rem.Sign() != 0 {
		return Value{}, ErrNonExactDivision
	}

	return Value{kind: ModeInt, big: quo}, nil
}

// Eq compares exactly; eps is ignored by design for integers.
func (intOps) Eq(a, b Value, _ float64) bool {
	return a.inMode(ModeInt).intRef().Cmp(b.inMode(ModeInt).intRef()) == 0
}

// IsZero tests the sign bit exactly; eps is ignored by design for integers.
func (intOps) IsZero(a Value, _ float64) bool {
	return a.inMode(ModeInt).intRef().Sign() == 0
}

func (intOps) Conj(a Value) Value { return a.inMode(ModeInt).Clone() }

func (intOps) Format(a Value) string {
	return a.inMode(ModeInt).intRef().String()
}

// ------------------------------------------------------------- Complex ----

// complexOps implements OpSet over (re, im) float64 pairs using the
// standard component formulas. complex128 is intentionally not used: the
// tolerance discipline compares per component, so the components stay
// first-class.
type complexOps struct{}

func (complexOps) Mode() Mode  { return ModeComplex }
func (complexOps) Zero() Value { return Complex(0, 0) }
func (complexOps) One() Value  { return Complex(1, 0) }

func (complexOps) Add(a, b Value) Value {
	av, bv := a.inMode(ModeComplex), b.inMode(ModeComplex)
	return Complex(av.re+bv.re, av.im+bv.im)
}

func (complexOps) Sub(a, b Value) Value {
	av, bv := a.inMode(ModeComplex), b.inMode(ModeComplex)
	return Complex(av.re-bv.re, av.im-bv.im)
}

// Mul applies (ac−bd) + (ad+bc)i.
func (complexOps) Mul(a, b Value) Value {
	av, bv := a.inMode(ModeComplex), b.inMode(ModeComplex)
	return Complex(av.re*bv.re-av.im*bv.im, av.re*bv.im+av.im*bv.re)
}

// Div applies the conjugate-over-magnitude formula:
// (a·conj(b)) / (br² + bi²). The zero test is exact on both components.
func (complexOps) Div(a, b Value) (Value, error) {
	av, bv := a.inMode(ModeComplex), b.inMode(ModeComplex)
	if bv.re == 0 && bv.im == 0 {
		return Value{}, ErrDivisionByZero
	}
	denom := bv.re*bv.re + bv.im*bv.im

	return Complex(
		(av.re*bv.re+av.im*bv.im)/denom,
		(av.im*bv.re-av.re*bv.im)/denom,
	), nil
}

// Eq compares both components within eps.
func (complexOps) Eq(a, b Value, eps float64) bool {
	av, bv := a.inMode(ModeComplex), b.inMode(ModeComplex)
	return math.Abs(av.re-bv.re) <= eps && math.Abs(av.im-bv.im) <= eps
}

func (complexOps) IsZero(a Value, eps float64) bool {
	av := a.inMode(ModeComplex)
	return math.Abs(av.re) <= eps && math.Abs(av.im) <= eps
}

// Conj negates the imaginary component.
func (complexOps) Conj(a Value) Value {
	av := a.inMode(ModeComplex)
	return Complex(av.re, -av.im)
}

// Format renders the canonical `re±imi` form, e.g. "1+2i", "3-0.5i".
func (complexOps) Format(a Value) string {
	av := a.inMode(ModeComplex)
	return fmt.Sprintf("%g%+gi", av.re, av.im)
}
