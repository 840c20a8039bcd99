// SPDX-License-Identifier: MIT
// Package simplex: sentinel error set.

package simplex

import "errors"

var (
	// ErrCycling is returned when the pivot cap (Options.MaxPivots) is
	// exceeded before a solve converges. The returned solution is a
	// best-effort, possibly-incorrect bound; callers that need a hard
	// guarantee should treat this as a likely-bug diagnostic.
	ErrCycling = errors.New("simplex: pivot limit exceeded, likely cycling")

	// errInfeasible and errUnbounded are never returned to callers: both
	// indicate the tableau was constructed in a state the algorithm's own
	// invariants rule out for valid input, so they are raised as panics
	// rather than errors (spec's ProgrammingError class).
	errInfeasible  = errors.New("simplex: table has no basic feasible solution")
	errUnbounded   = errors.New("simplex: unbounded linear program")
	errCantReduce  = errors.New("simplex: could not remove a bound column from the table")
)
