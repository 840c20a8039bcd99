// SPDX-License-Identifier: MIT

package population

import (
	"github.com/katalvlaran/dungeoncrack/lcg"
	"github.com/katalvlaran/dungeoncrack/mcversion"
)

// SetPopulationSeed runs java.util.Random's chunk-decoration seeding
// routine forward: given a world seed and the chunk's negative-most
// corner (x, z), it returns the resulting population seed. Pre-1.13
// worlds round each axis's random multiplier to the nearest odd number
// below it (n/2*2+1); 1.13+ worlds round up instead (n|1).
func SetPopulationSeed(worldSeed int64, x, z int32, version mcversion.Version) int64 {
	r := lcg.FromScrambledSeed(lcg.Java, worldSeed)

	var a, b int64
	if version.Before(mcversion.V1_13) {
		a = r.NextLong()/2*2 + 1
		b = r.NextLong()/2*2 + 1
	} else {
		a = r.NextLong() | 1
		b = r.NextLong() | 1
	}

	seed := (int64(x)*a + int64(z)*b) ^ worldSeed
	return seed & mask48
}

// SetDecoratorSeed derives the decorator seed a structure's feature
// placement (including a dungeon's floor) is generated from, given the
// chunk's population seed and the feature's salt.
func SetDecoratorSeed(populationSeed int64, salt int32) int64 {
	return (populationSeed + int64(salt)) & mask48
}
