// SPDX-License-Identifier: MIT

// Package simplex implements a two-phase revised simplex method over exact
// rationals, following Bland's rule whenever degeneracy is detected (any
// basic variable's value is exactly zero). It is a faithful port of the
// LattiCG Optimize class: artificial variables absorb rows whose basic
// variable cannot be read off the identity columns directly, Phase 1
// drives them to zero (or panics — a Phase-1 objective that fails to
// reach zero means the table was constructed infeasible, a programming
// error, not a user-facing one), and Phase 2 optimizes the user's
// objective inside the resulting feasible tableau.
//
// Optimize is built once via OptimizeBuilder and then narrowed
// incrementally with WithStrictBound, which appends one additional
// half-space `⟨g, x⟩ < r` without re-deriving the whole tableau.
package simplex
