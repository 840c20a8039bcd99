// SPDX-License-Identifier: MIT

package mcversion_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeoncrack/mcversion"
)

func TestVersionOrdering(t *testing.T) {
	require.True(t, mcversion.V1_13.AtLeast(mcversion.V1_8))
	require.True(t, mcversion.V1_8.Before(mcversion.V1_13))
	require.False(t, mcversion.V1_12.AtLeast(mcversion.V1_13))
	require.True(t, mcversion.V1_15.AtLeast(mcversion.V1_15))
}

func TestVersionString(t *testing.T) {
	require.Equal(t, "1.13", mcversion.V1_13.String())
	require.Equal(t, "1.8", mcversion.V1_8.String())
}

func TestBiomeString(t *testing.T) {
	require.Equal(t, "desert", mcversion.Desert.String())
	require.Equal(t, "not-desert", mcversion.NotDesert.String())
	require.Equal(t, "unknown", mcversion.UnknownBiome.String())
}
