// SPDX-License-Identifier: MIT
// Package latticeenum: sentinel error set.

package latticeenum

import "errors"

// ErrCycling is returned (never fatally: the enumeration still completes)
// when at least one of the LP probes used to measure a dimension's width
// hit the simplex pivot cap. The corresponding bound was conservative, so
// the returned point set may be a superset of the true feasible points.
var ErrCycling = errors.New("latticeenum: at least one width probe hit the simplex pivot cap")
