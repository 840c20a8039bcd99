// SPDX-License-Identifier: MIT

package population

import "github.com/katalvlaran/dungeoncrack/mcversion"

// Reverse returns every 48-bit structure seed whose population seed at
// chunk corner (x, z) equals populationSeed, for the given game version.
func Reverse(populationSeed int64, x, z int32, version mcversion.Version) []int64 {
	popSeed := populationSeed & mask48

	if version.Before(mcversion.V1_13) {
		return reversePre13(popSeed, x, z)
	}
	return reverseModern(popSeed, x, z, version)
}

func reverseModern(populationSeed int64, x, z int32, version mcversion.Version) []int64 {
	m2, a2, m4, a4 := lcgParams()

	var worldSeeds []int64

	e := populationSeed & mask32
	f := populationSeed & mask16

	freeBits := trailingZeros(int64(x) | int64(z))
	c := maskBits(populationSeed, freeBits)
	var nextBit int64
	if freeBits != 64 {
		nextBit = (int64(x) ^ int64(z) ^ populationSeed) & getPow2(freeBits)
	}
	c |= nextBit
	freeBits++
	increment := getPow2(freeBits)

	firstMultiplier := (m2*int64(x) + m4*int64(z)) & mask16
	multTrailingZeroes := trailingZeros(firstMultiplier)

	if multTrailingZeroes >= 16 {
		popHash := func(value int64) int64 {
			return SetPopulationSeed(value, x, z, version)
		}

		if freeBits >= 16 {
			hensel(c, int(freeBits)-16, 32, 16, populationSeed, popHash, &worldSeeds)
		} else {
			for cIter := c; cIter < int64(1)<<16; cIter += increment {
				hensel(cIter, 0, 32, 16, populationSeed, popHash, &worldSeeds)
			}
		}
		return worldSeeds
	}

	firstMultInv := modInverse16(firstMultiplier >> multTrailingZeroes)
	offsets := getOffsets(x, z, version)

	for ; c < int64(1)<<16; c += increment {
		target := (c ^ f) & mask16
		xTerm := logicalShiftRight64(m2*((c^m1)&mask16)+a2, 16)
		zTerm := logicalShiftRight64(m4*((c^m1)&mask16)+a4, 16)
		magic := int64(x)*xTerm + int64(z)*zTerm

		for offset := range offsets {
			firstAddend := target - ((magic + offset) & mask16)
			addWorldSeeds(firstAddend, multTrailingZeroes, firstMultInv, c, e, x, z, populationSeed, version, &worldSeeds)
		}
	}

	return worldSeeds
}

func addWorldSeeds(firstAddend int64, multTrailingZeroes uint, firstMultInv, c, e int64, x, z int32, populationSeed int64, version mcversion.Version, worldSeeds *[]int64) {
	if trailingZeros(firstAddend) < multTrailingZeroes {
		return
	}

	maskN := getMask(16 - multTrailingZeroes)
	increment := getPow2(16 - multTrailingZeroes)

	b := ((firstMultInv*firstAddend)>>multTrailingZeroes ^ (m1 >> 16)) & maskN

	for ; b < int64(1)<<16; b += increment {
		k := (b << 16) + c
		target2 := (k ^ e) >> 16
		secondAddend := getPartialAddend(k, x, z, 32, version) & mask16

		if trailingZeros(target2-secondAddend) < multTrailingZeroes {
			continue
		}

		a := ((firstMultInv*(target2-secondAddend))>>multTrailingZeroes ^ (m1 >> 32)) & maskN

		for ; a < int64(1)<<16; a += increment {
			ws := (a << 32) + k
			if SetPopulationSeed(ws, x, z, version) == populationSeed {
				*worldSeeds = append(*worldSeeds, ws)
			}
		}
	}
}

func getPartialAddend(partialSeed int64, x, z int32, bitsN uint, version mcversion.Version) int64 {
	m2, a2, m4, a4 := lcgParams()
	maskN := getMask(bitsN)

	a := ((m2*((partialSeed^m1)&maskN) + a2) & mask48) >> 16
	b := ((m4*((partialSeed^m1)&maskN) + a4) & mask48) >> 16

	if version.Before(mcversion.V1_13) {
		return int64(x)*(a/2*2+1) + int64(z)*(b/2*2+1)
	}
	return (int64(x)*(a|1) + int64(z)*(b|1)) >> 16
}

func getOffsets(x, z int32, version mcversion.Version) map[int64]struct{} {
	n := int64(2)
	if version.Before(mcversion.V1_13) {
		n = 3
	}

	offsets := make(map[int64]struct{}, n*n)
	for i := int64(0); i < n; i++ {
		for j := int64(0); j < n; j++ {
			offsets[int64(x)*i+int64(z)*j] = struct{}{}
		}
	}
	return offsets
}
