// SPDX-License-Identifier: MIT

package nextlong

import "github.com/katalvlaran/dungeoncrack/lcg"

const mask48 = int64(1)<<48 - 1

// Reverse returns every 48-bit internal java.util.Random state whose next
// nextLong() call equals structureSeed modulo 2^48. Equivalents turns
// these states into the 64-bit world seeds themselves.
func Reverse(structureSeed int64) []int64 {
	var seeds []int64
	addSeeds(structureSeed, &seeds)
	return seeds
}

// Equivalents returns the nextLong() value produced by each internal
// state Reverse finds: the 64-bit world seeds whose low 48 bits equal
// structureSeed.
func Equivalents(structureSeed int64) []int64 {
	seeds := Reverse(structureSeed)
	longs := make([]int64, 0, len(seeds))
	for _, seed := range seeds {
		r := lcg.FromInternalSeed(lcg.Java, seed)
		longs = append(longs, r.NextLong())
	}
	return longs
}

// floorDiv is Java's Math.floorDiv: integer division rounded toward
// negative infinity rather than toward zero.
func floorDiv(x, y int64) int64 {
	r := x / y
	if (x^y) < 0 && r*y != x {
		return r - 1
	}
	return r
}

// addSeeds solves for the world seed's top 32 bits given the bottom 32
// (the structure seed itself), trying the at-most-three lattice points
// the rounding in the bound derivation can leave ambiguous.
func addSeeds(structureSeed int64, seedList *[]int64) {
	lowerBits := structureSeed & 0xffffffff
	upperBits := int64(uint64(structureSeed) >> 32)

	if lowerBits&0x80000000 != 0 {
		upperBits++
	}

	const bitsOfDanger = 1

	lowMin := lowerBits << (16 - bitsOfDanger)
	lowMax := ((lowerBits + 1) << (16 - bitsOfDanger)) - 1
	upperMin := ((upperBits << 16) - 107048004364969) >> bitsOfDanger

	m1lv := floorDiv(lowMax*(-33441)+upperMin*17549, int64(1)<<(31-bitsOfDanger)) + 1
	m2lv := floorDiv(lowMin*46603+upperMin*39761, int64(1)<<(32-bitsOfDanger)) + 1

	tryCandidate(m1lv, m2lv, upperBits, lowerBits, seedList)
	tryCandidate(m1lv+1, m2lv, upperBits, lowerBits, seedList)
	tryCandidate(m1lv, m2lv+1, upperBits, lowerBits, seedList)
}

func tryCandidate(m1lv, m2lv, upperBits, lowerBits int64, seedList *[]int64) {
	seed := (-39761)*m1lv + 35098*m2lv
	check := 46603*m1lv + 66882*m2lv + 107048004364969

	if int64(uint64(check)>>16) != upperBits {
		return
	}
	if int64(uint64(seed)>>16) != lowerBits {
		return
	}

	*seedList = append(*seedList, (254681119335897*seed+120305458776662)&mask48)
}
