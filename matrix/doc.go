// Package matrix offers a dense, hybrid-numeric matrix container and the
// classical linear-algebra operations over it.
//
// The matrix package provides:
//
//   - Matrix, a rectangular grid of numeric.Value entries with value
//     semantics (every read and write clones) and a lazily resolved,
//     cached numeric mode (Real, Int or Complex).
//   - Structural queries: transpose, conjugate transpose, equality and a
//     family of predicates (zero, identity, diagonal, scalar, symmetric,
//     Hermitian, triangular, orthogonal/unitary).
//   - Elimination kernels: determinant (Gaussian elimination with
//     first-nonzero pivoting), inverse (Gauss–Jordan on an augmented
//     grid) and rank (row-echelon reduction).
//   - Type, an ordered first-match classifier producing a human-readable
//     structural label.
//
// Mixed-mode operands are combined under the promotion precedence
// Complex > Int > Real and coerced entry-by-entry before arithmetic.
// Integer matrices compute exactly via math/big; exact division is the
// only division they support, so elimination may fail on them even when
// the true result is well-defined (documented behavior).
//
// Matrices are not safe for concurrent mutation: Set and the first mode
// resolution mutate internal state without synchronization. Read-only
// operations may run concurrently on an instance nobody mutates.
//
// See the examples in this package for usage patterns.
package matrix
