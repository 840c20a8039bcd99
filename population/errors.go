// SPDX-License-Identifier: MIT
// Package population: sentinel error set.

package population

import "errors"

// errNotCoprime backs a panic raised by modInverse16: it is only ever
// called on the odd factor left after stripping a multiplier's trailing
// zero bits, so an even argument is a caller bug.
var errNotCoprime = errors.New("population: value is not coprime with 2^16")
