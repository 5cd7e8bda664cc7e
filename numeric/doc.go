// Package numeric provides the entry-level building blocks of numat:
//
//   - Value, a tagged union over the three supported representations
//     (Real float64, arbitrary-precision Int, Complex pair),
//   - Mode, the representation tag with its promotion precedence
//     (Complex > Int > Real),
//   - OpSet, the per-mode bundle of arithmetic and comparison primitives
//     selected once and threaded through hot loops,
//   - Coerce, the single conversion point between modes with typed
//     failures instead of silent corruption.
//
// Values are immutable by convention: every operation allocates a fresh
// result and never aliases an operand's big.Int payload.
//
// See the matrix package for the dense container built on these
// primitives.
package numeric
