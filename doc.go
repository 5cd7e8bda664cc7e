// Package numat is your in-memory toolkit for dense matrix algebra over
// mixed numeric representations — real floats, exact big integers and
// complex values behind one container and one dispatch layer.
//
// 🚀 What is numat?
//
//	A modern, deterministic, dependency-light library that brings together:
//		• Hybrid entries: Real, arbitrary-precision Int and Complex values
//		• One container: a dense row-major Matrix with lazy mode detection
//		• Mode coercion: explicit, typed widening/narrowing between modes
//		• Classical algorithms: transpose, multiplication, determinant,
//		  Gauss–Jordan inversion and row-echelon rank
//		• Structural analysis: identity/diagonal/Hermitian/triangular
//		  predicates and a first-match type classifier
//
// ✨ Why choose numat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, fail-fast validation,
//     value-semantics storage (no aliasing of caller data)
//   - Pure Go – no cgo, exact integer arithmetic via math/big
//   - Deterministic – fixed loop orders, first-nonzero pivoting,
//     documented tolerances (DefaultEpsilon = 1e-9)
//
// Under the hood, everything is organized under two subpackages:
//
//	numeric/ — entry values (tagged union), modes, per-mode operation
//	           sets and the coercion rules between modes
//	matrix/  — the Matrix container, structural predicates,
//	           multiplication, elimination kernels and the classifier
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]numeric.Value{
//	    {numeric.Real(1), numeric.Real(2)},
//	    {numeric.Real(3), numeric.Real(4)},
//	})
//	det, _ := m.Determinant() // Real(-2)
//
// Dive into the matrix examples for determinants, inversion, rank and
// structural classification across all three numeric modes.
//
//	go get github.com/katalvlaran/numat
package numat
