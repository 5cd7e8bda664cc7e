// SPDX-License-Identifier: MIT
// Package matrix: numeric-mode classifier (lazy, cached, invalidated).
//
// Purpose:
//   - Resolve the dominant numeric mode of the grid on first use and cache
//     it until a Set invalidates it (explicit memoized derived field, not
//     implicit staleness).
//   - Normalize every entry into the resolved mode so downstream kernels
//     can select one operation set and never re-branch per element.

package matrix

import "github.com/katalvlaran/numat/numeric"

// Mode returns the matrix's resolved numeric mode, computing and caching it
// on first use.
//
// Implementation:
//   - Stage 1: fold numeric.Combine over every entry's kind, seeded with
//     Real (an all-default grid is Real by convention).
//   - Stage 2: normalize every entry into the resolved mode via
//     numeric.Coerce and cache the result.
//
// Behavior highlights:
//   - Any Complex entry promotes the whole grid to Complex; otherwise any
//     Int entry promotes it to Int, silently truncating Real entries toward
//     zero (the one documented lossy step); otherwise the grid is Real.
//   - Resolution is idempotent and never fails: promotion always widens,
//     and the only narrowing arm (Real→Int) is total.
//
// Complexity:
//   - Time O(r*c) on a cache miss, O(1) afterwards.
//
// Notes:
//   - Resolution mutates internal storage (normalization) without
//     synchronization; see the package comment on concurrency.
func (m *Matrix) Mode() numeric.Mode {
	if m.mode != nil {
		return *m.mode
	}

	// Stage 1: detect the widest mode present.
	resolved := numeric.ModeReal
	for i := range m.cells {
		resolved = numeric.Combine(resolved, m.cells[i].Kind())
	}

	// Stage 2: normalize every entry into the resolved mode.
	for i := range m.cells {
		if m.cells[i].Kind() == resolved {
			continue
		}
		// Cannot fail: detection guarantees the target is at least as wide
		// as every entry, except the total Real→Int truncation arm.
		cv, _ := numeric.Coerce(m.cells[i], resolved)
		m.cells[i] = cv
	}

	m.mode = &resolved

	return resolved
}

// ops returns the operation set bound to the matrix's resolved mode,
// resolving the mode first if needed.
func (m *Matrix) ops() numeric.OpSet {
	return numeric.OpsFor(m.Mode())
}
