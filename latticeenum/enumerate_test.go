// SPDX-License-Identifier: MIT

package latticeenum_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeoncrack/bigmatrix"
	"github.com/katalvlaran/dungeoncrack/bigrat"
	"github.com/katalvlaran/dungeoncrack/latticeenum"
	"github.com/katalvlaran/dungeoncrack/simplex"
)

func vec(vals ...int64) bigmatrix.Vector {
	data := make([]bigrat.Rat, len(vals))
	for i, v := range vals {
		data[i] = bigrat.FromInt64(v)
	}
	return bigmatrix.VectorFromData(data)
}

func key(v bigmatrix.Vector) string {
	s := ""
	for i := 0; i < v.Dimension(); i++ {
		s += fmt.Sprintf("%s,", v.At(i).String())
	}
	return s
}

func TestEnumerateBoundsSmallBox(t *testing.T) {
	basis := bigmatrix.Identity(2)
	lower := vec(0, 0)
	upper := vec(1, 1)
	origin := vec(0, 0)

	results, err := latticeenum.EnumerateBounds(basis, lower, upper, origin, simplex.Options{})
	require.NoError(t, err)
	require.Len(t, results, 4)

	seen := make(map[string]bool)
	for _, r := range results {
		seen[key(r)] = true
		for i := 0; i < 2; i++ {
			require.True(t, r.At(i).Cmp(lower.At(i)) >= 0)
			require.True(t, r.At(i).Cmp(upper.At(i)) <= 0)
		}
	}
	require.Len(t, seen, 4)
}

func TestPartitionedEnumerationParity(t *testing.T) {
	basis := bigmatrix.Identity(4)
	lower := vec(-2, -2, -2, -2)
	upper := vec(2, 2, 2, 2)
	origin := vec(0, 0, 0, 0)

	full, err := latticeenum.EnumerateBounds(basis, lower, upper, origin, simplex.Options{})
	require.NoError(t, err)

	branches := latticeenum.BranchCount(basis, lower, upper, origin, simplex.Options{})
	require.GreaterOrEqual(t, branches, int64(4))

	var partitioned []bigmatrix.Vector
	var step int64 = 2
	for start := int64(0); start < branches; start += step {
		end := start + step
		if end > branches {
			end = branches
		}
		part, err := latticeenum.EnumerateBranches(basis, lower, upper, origin, simplex.Options{}, start, end)
		require.NoError(t, err)
		partitioned = append(partitioned, part...)
	}

	fullKeys := make([]string, len(full))
	for i, v := range full {
		fullKeys[i] = key(v)
	}
	partKeys := make([]string, len(partitioned))
	for i, v := range partitioned {
		partKeys[i] = key(v)
	}
	sort.Strings(fullKeys)
	sort.Strings(partKeys)
	require.Equal(t, fullKeys, partKeys)
}
