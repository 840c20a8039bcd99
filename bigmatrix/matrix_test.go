// SPDX-License-Identifier: MIT

package bigmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeoncrack/bigmatrix"
	"github.com/katalvlaran/dungeoncrack/bigrat"
)

func TestVectorArithmetic(t *testing.T) {
	a := bigmatrix.VectorFromData([]bigrat.Rat{bigrat.FromInt64(1), bigrat.FromInt64(2)})
	b := bigmatrix.VectorFromData([]bigrat.Rat{bigrat.FromInt64(3), bigrat.FromInt64(4)})
	sum := a.Add(b)
	require.True(t, sum.At(0).Equal(bigrat.FromInt64(4)))
	require.True(t, sum.At(1).Equal(bigrat.FromInt64(6)))
	require.True(t, a.Dot(b).Equal(bigrat.FromInt64(11)))
}

func TestVectorDimensionMismatchPanics(t *testing.T) {
	a := bigmatrix.NewVector(2)
	b := bigmatrix.NewVector(3)
	require.Panics(t, func() { a.Add(b) })
}

func TestMatrixIdentity(t *testing.T) {
	id := bigmatrix.Identity(3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if r == c {
				require.True(t, id.At(r, c).Equal(bigrat.One()))
			} else {
				require.True(t, id.At(r, c).IsZero())
			}
		}
	}
}

func TestMatrixMul(t *testing.T) {
	a := bigmatrix.NewMatrix(2, 2)
	a.Set(0, 0, bigrat.FromInt64(1))
	a.Set(0, 1, bigrat.FromInt64(2))
	a.Set(1, 0, bigrat.FromInt64(3))
	a.Set(1, 1, bigrat.FromInt64(4))
	prod := a.MulMatrix(bigmatrix.Identity(2))
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			require.True(t, prod.At(r, c).Equal(a.At(r, c)))
		}
	}
}

func TestRowOps(t *testing.T) {
	m := bigmatrix.NewMatrix(2, 2)
	m.Set(0, 0, bigrat.FromInt64(1))
	m.Set(0, 1, bigrat.FromInt64(2))
	m.Set(1, 0, bigrat.FromInt64(3))
	m.Set(1, 1, bigrat.FromInt64(4))
	m.SwapRows(0, 1)
	require.True(t, m.At(0, 0).Equal(bigrat.FromInt64(3)))
	m.RowSubtractScaled(1, 0, bigrat.FromInt64(1))
	require.True(t, m.At(1, 0).Equal(bigrat.Zero()))
}

func TestOutOfRangePanics(t *testing.T) {
	m := bigmatrix.NewMatrix(2, 2)
	require.Panics(t, func() { m.At(5, 0) })
}
