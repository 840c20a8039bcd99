// SPDX-License-Identifier: MIT
// Package lcg: sentinel error set.

package lcg

import "errors"

// errBoundNotPositive backs a panic, never a returned error: NextInt is
// always called with a bound derived from the generator's own domain
// (e.g. a chunk-local coordinate spread), so a non-positive bound means
// the caller mis-derived it, not that the generator hit bad input.
var errBoundNotPositive = errors.New("lcg: NextInt bound must be positive")
