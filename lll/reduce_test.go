// SPDX-License-Identifier: MIT

package lll_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeoncrack/bigmatrix"
	"github.com/katalvlaran/dungeoncrack/bigrat"
	"github.com/katalvlaran/dungeoncrack/lll"
)

func rowsOf(vals [][]int64) bigmatrix.Matrix {
	rows := len(vals)
	cols := len(vals[0])
	m := bigmatrix.NewMatrix(rows, cols)
	for r, row := range vals {
		for c, v := range row {
			m.Set(r, c, bigrat.FromInt64(v))
		}
	}
	return m
}

// spansSameLattice checks that the transformation matrix correctly maps
// the reduced basis rows back to integer combinations of the input rows.
func spansSameLattice(t *testing.T, input, reduced, transform bigmatrix.Matrix) {
	t.Helper()
	for r := 0; r < reduced.RowCount(); r++ {
		recombined := bigmatrix.NewVector(input.ColCount())
		for c := 0; c < transform.ColCount(); c++ {
			coeff := transform.At(r, c)
			recombined = recombined.Add(input.Row(c).MulScalar(coeff))
		}
		for c := 0; c < input.ColCount(); c++ {
			require.True(t, recombined.At(c).Equal(reduced.At(r, c)),
				"row %d col %d: recombination mismatch", r, c)
		}
	}
}

func TestReduceKnownBasis(t *testing.T) {
	input := rowsOf([][]int64{{1, 1, 1}, {-1, 0, 2}, {3, 5, 6}})
	result := lll.ReduceDefault(input)

	require.Equal(t, 0, result.NumDependentVectors)
	spansSameLattice(t, input, result.ReducedBasis, result.Transformations)

	delta := bigrat.New(99, 100)
	for i := 1; i < result.ReducedBasis.RowCount(); i++ {
		prevSq := result.ReducedBasis.Row(i - 1).MagnitudeSq()
		curSq := result.ReducedBasis.Row(i).MagnitudeSq()
		require.True(t, curSq.Cmp(prevSq.Mul(delta)) >= 0 || curSq.Cmp(prevSq) >= 0,
			"rows should be roughly size-reduced after LLL")
	}
}

func TestReduceStripsDependentRows(t *testing.T) {
	input := rowsOf([][]int64{{1, 0, 0}, {2, 0, 0}, {0, 1, 0}})
	result := lll.ReduceDefault(input)
	require.Equal(t, 1, result.NumDependentVectors)
	require.Equal(t, 2, result.ReducedBasis.RowCount())
}

func TestReduceIdentity(t *testing.T) {
	input := bigmatrix.Identity(4)
	result := lll.ReduceDefault(input)
	require.Equal(t, 0, result.NumDependentVectors)
	require.Equal(t, 4, result.ReducedBasis.RowCount())
}
