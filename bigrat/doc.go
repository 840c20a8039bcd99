// SPDX-License-Identifier: MIT

// Package bigrat implements exact rational arithmetic with no rounding.
//
// A Rat pairs an arbitrary-precision numerator and denominator under the
// invariant that the denominator is always positive, the pair is always
// reduced to lowest terms, and zero is always canonicalized to 0/1. Every
// operation returns a fresh, already-reduced value; Rat is otherwise
// immutable from the caller's perspective.
package bigrat
