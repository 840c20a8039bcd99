// SPDX-License-Identifier: MIT

package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeoncrack/bigmatrix"
	"github.com/katalvlaran/dungeoncrack/bigrat"
	"github.com/katalvlaran/dungeoncrack/simplex"
)

func box2D(lo0, hi0, lo1, hi1 int64) *simplex.Optimize {
	b := simplex.NewOptimizeBuilder(2, simplex.Options{})
	b.WithLowerBound(0, bigrat.FromInt64(lo0))
	b.WithUpperBound(0, bigrat.FromInt64(hi0))
	b.WithLowerBound(1, bigrat.FromInt64(lo1))
	b.WithUpperBound(1, bigrat.FromInt64(hi1))
	return b.Build()
}

func TestMinimizeBoxCorner(t *testing.T) {
	opt := box2D(0, 10, 0, 10)
	gradient := bigmatrix.VectorFromData([]bigrat.Rat{bigrat.One(), bigrat.One()})
	result, val, err := opt.Minimize(gradient)
	require.NoError(t, err)
	require.True(t, val.Equal(bigrat.Zero()))
	require.True(t, result.At(0).Equal(bigrat.Zero()))
	require.True(t, result.At(1).Equal(bigrat.Zero()))
}

func TestMaximizeBoxCorner(t *testing.T) {
	opt := box2D(0, 10, 0, 7)
	gradient := bigmatrix.VectorFromData([]bigrat.Rat{bigrat.One(), bigrat.One()})
	result, val, err := opt.Maximize(gradient)
	require.NoError(t, err)
	require.True(t, val.Equal(bigrat.FromInt64(17)))
	require.True(t, result.At(0).Equal(bigrat.FromInt64(10)))
	require.True(t, result.At(1).Equal(bigrat.FromInt64(7)))
}

func TestWithStrictBoundNarrows(t *testing.T) {
	opt := box2D(0, 10, 0, 10)
	lhs := bigmatrix.VectorFromData([]bigrat.Rat{bigrat.One(), bigrat.Zero()})
	narrowed := opt.WithStrictBound(lhs, bigrat.FromInt64(5))

	gradient := bigmatrix.VectorFromData([]bigrat.Rat{bigrat.One(), bigrat.Zero()})
	_, val, err := narrowed.Maximize(gradient)
	require.NoError(t, err)
	require.True(t, val.Cmp(bigrat.FromInt64(5)) < 0, "strict bound must exclude x[0]==5, got %s", val)
}

func TestSingleVariableBounds(t *testing.T) {
	b := simplex.NewOptimizeBuilder(1, simplex.Options{})
	b.WithLowerBound(0, bigrat.FromInt64(-3))
	b.WithUpperBound(0, bigrat.FromInt64(4))
	opt := b.Build()

	gradient := bigmatrix.VectorFromData([]bigrat.Rat{bigrat.MinusOne()})
	result, val, err := opt.Minimize(gradient)
	require.NoError(t, err)
	require.True(t, result.At(0).Equal(bigrat.FromInt64(4)))
	require.True(t, val.Equal(bigrat.FromInt64(-4)))
}
