// SPDX-License-Identifier: MIT

package population

import "github.com/katalvlaran/dungeoncrack/mcversion"

// getChunkSeedPre13 runs the pre-1.13 chunk seed formula forward: it is
// SetPopulationSeed's old-rounding branch, kept standalone here because
// the pre-1.13 search path was ported from a dedicated reversal routine
// in the source rather than reusing the general chunk-rand seeding call.
func getChunkSeedPre13(seed int64, x, z int32) int64 {
	return SetPopulationSeed(seed, x, z, mcversion.V1_8)
}

func getPartialAddendPre13(partialSeed int64, x, z int32, bitsN uint) int64 {
	m2, a2, m4, a4 := lcgParams()
	maskN := getMask(bitsN)

	av := ((m2*((partialSeed^m1)&maskN) + a2) & mask48) >> 16
	bv := ((m4*((partialSeed^m1)&maskN) + a4) & mask48) >> 16

	// Reinterpret the low 32 bits as signed before rounding: a value
	// whose top bit is set must floor-divide as a negative number, not
	// as the large positive one the raw 48-bit mask would otherwise
	// produce.
	avSigned := int64(int32(av))
	bvSigned := int64(int32(bv))

	return int64(x)*(avSigned/2*2+1) + int64(z)*(bvSigned/2*2+1)
}

func addWorldSeedPre13(firstAddend int64, multTrailingZeroes uint, firstMultInv, c int64, x, z int32, chunkSeed int64, worldSeeds *[]int64) {
	if trailingZeros(firstAddend) < multTrailingZeroes {
		return
	}

	bottom32 := chunkSeed & mask32
	b := ((firstMultInv*firstAddend)>>multTrailingZeroes ^ (m1 >> 16)) & getMask(16-multTrailingZeroes)

	if multTrailingZeroes != 0 {
		smallMask := getMask(multTrailingZeroes)
		smallMultInverse := smallMask & firstMultInv
		target := (((b ^ (bottom32 >> 16)) & smallMask) - (getPartialAddendPre13((b<<16)+c, x, z, 32-multTrailingZeroes) >> 16)) & smallMask
		b += ((target*smallMultInverse ^ (m1 >> (32 - multTrailingZeroes))) & smallMask) << (16 - multTrailingZeroes)
	}

	bottom32Seed := (b << 16) + c
	target2 := (bottom32Seed ^ bottom32) >> 16
	secondAddend := (getPartialAddendPre13(bottom32Seed, x, z, 32) >> 16) & mask16

	topBits := ((firstMultInv*(target2-secondAddend))>>multTrailingZeroes ^ (m1 >> 32)) & getMask(16-multTrailingZeroes)
	step := int64(1) << (16 - multTrailingZeroes)

	for ; topBits < int64(1)<<16; topBits += step {
		ws := (topBits << 32) + bottom32Seed
		if getChunkSeedPre13(ws, x, z) == chunkSeed {
			*worldSeeds = append(*worldSeeds, ws)
		}
	}
}

func reversePre13(chunkSeed int64, x, z int32) []int64 {
	if x == 0 && z == 0 {
		return []int64{chunkSeed}
	}

	var worldSeeds []int64

	f := chunkSeed & mask16
	m2, a2, m4, a4 := lcgParams()

	firstMultiplier := (m2*int64(x) + m4*int64(z)) & mask16
	multTrailingZeroes := trailingZeros(firstMultiplier)
	firstMultInv := modInverse16(firstMultiplier >> multTrailingZeroes)

	xCount := trailingZeros(int64(x))
	zCount := trailingZeros(int64(z))
	totalCount := trailingZeros(int64(x) | int64(z))

	possibleOffsets := make(map[int64]struct{}, 9)
	for i := int64(0); i < 3; i++ {
		for j := int64(0); j < 3; j++ {
			possibleOffsets[int64(x)*i+j*int64(z)] = struct{}{}
		}
	}

	var c int64
	if xCount == zCount {
		c = chunkSeed & (int64(1)<<(xCount+1) - 1)
	} else {
		c = (chunkSeed & (int64(1)<<(totalCount+1) - 1)) ^ (int64(1) << totalCount)
	}

	step := int64(1) << (totalCount + 1)
	for ; c < int64(1)<<16; c += step {
		target := (c ^ f) & mask16
		xTerm := logicalShiftRight64(m2*((c^m1)&mask16)+a2, 16)
		zTerm := logicalShiftRight64(m4*((c^m1)&mask16)+a4, 16)
		magic := int64(x)*xTerm + int64(z)*zTerm

		for offset := range possibleOffsets {
			firstAddend := target - ((magic + offset) & mask16)
			addWorldSeedPre13(firstAddend, multTrailingZeroes, firstMultInv, c, x, z, chunkSeed, &worldSeeds)
		}
	}

	return worldSeeds
}
