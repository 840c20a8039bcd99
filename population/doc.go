// SPDX-License-Identifier: MIT

// Package population reverses a Minecraft population seed (the per-chunk
// seed a dungeon's floor is generated from) back to the 48-bit structure
// seeds (the low 48 bits of a world seed) that could have produced it,
// given the chunk's negative-most corner coordinates and the game version.
//
// The search exploits the structure of java.util.Random's LCG: a
// structure seed's lowest 16, middle 16, and top 16 bits can each be solved for
// independently once the others are fixed, by inverting the per-bit
// linear relationship a population seed has to its world seed modulo
// 2^16, 2^32, and 2^48 in turn. When the coordinate-derived multiplier is
// itself divisible by 2^16, that bit-by-bit inversion degenerates and the
// search instead falls back to Hensel lifting, trying both extensions of
// each partial match at every bit.
//
// Pre-1.13 and 1.13+ worlds round the two per-axis decoration offsets to
// odd numbers differently (n/2*2+1 versus n|1), so the two eras are
// reversed along separate code paths that happen to share everything but
// that one step.
package population
