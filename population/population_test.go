// SPDX-License-Identifier: MIT

package population_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeoncrack/mcversion"
	"github.com/katalvlaran/dungeoncrack/population"
)

const mask48 = int64(1)<<48 - 1

func TestReverseModernRecoversWorldSeed(t *testing.T) {
	worldSeed := int64(8645234723) & mask48
	x, z := int32(1), int32(0)

	popSeed := population.SetPopulationSeed(worldSeed, x, z, mcversion.V1_13)

	seeds := population.Reverse(popSeed, x, z, mcversion.V1_13)
	require.Contains(t, seeds, worldSeed)

	for _, ws := range seeds {
		require.Equal(t, popSeed, population.SetPopulationSeed(ws, x, z, mcversion.V1_13))
	}
}

func TestReversePre13RecoversWorldSeed(t *testing.T) {
	worldSeed := int64(192837465) & mask48
	x, z := int32(1), int32(0)

	popSeed := population.SetPopulationSeed(worldSeed, x, z, mcversion.V1_12)

	seeds := population.Reverse(popSeed, x, z, mcversion.V1_12)
	require.Contains(t, seeds, worldSeed)
}

func TestReversePre13ZeroCoordinatesIsIdentity(t *testing.T) {
	chunkSeed := int64(555) & mask48

	seeds := population.Reverse(chunkSeed, 0, 0, mcversion.V1_8)
	require.Equal(t, []int64{chunkSeed}, seeds)
}

func TestSetDecoratorSeedAddsSalt(t *testing.T) {
	pop := int64(123)
	require.Equal(t, int64(123+20003), population.SetDecoratorSeed(pop, 20003))
}
