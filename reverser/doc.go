// SPDX-License-Identifier: MIT

// Package reverser builds a lattice-enumeration problem from a sequence
// of observed java.util.Random call outcomes and solves it for every
// 48-bit internal seed consistent with those observations. It is the Go
// port of Kludwisz's combined RandomReverser / JavaRandomReverser: each
// AddMeasuredSeed-family call appends one column to a growing lattice
// matrix (AddModuloMeasuredSeed appends two when its modulus does not
// divide 2^48), AddNextIntCall maps a
// nextInt(n) observation onto the appropriate measured- or
// modulo-measured-seed encoding, and FindAllValidSeeds (or its
// branch-partitioned sibling) scales the lattice to equal-sized box
// constraints, LLL-reduces it, enumerates every integer point in the
// box, and reverses each hit back to the seed at the first observed
// call before running it through any FilteredSkip post-filters.
package reverser
