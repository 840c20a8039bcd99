// SPDX-License-Identifier: MIT

// Package nextlong reverses a 48-bit structure seed — the value a
// feature's placement check derives from a single java.util.Random
// nextLong() call — back to the 64-bit world seeds that produce it.
// Reverse yields the internal generator states whose nextLong() matches;
// Equivalents yields the nextLong() values themselves, i.e. the world
// seeds.
//
// nextLong() is two 32-bit draws concatenated, so a structure seed fixes
// the low 16 bits of the world seed's first draw exactly and constrains
// a narrow range of its second; the reversal solves a small linear
// system over that range directly rather than enumerating it, yielding
// at most three candidate world seeds per structure seed.
package nextlong
