// SPDX-License-Identifier: MIT
// Package reverser: sentinel error set.

package reverser

import "errors"

// errBoundNotPositive backs a panic raised by AddNextIntCall: a nextInt
// bound is always a structural constant of the call being modeled
// (4, 16, 256, ...), so a non-positive one is a caller bug.
var errBoundNotPositive = errors.New("reverser: nextInt bound must be positive")
