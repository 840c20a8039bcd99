// SPDX-License-Identifier: MIT

package ops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeoncrack/bigmatrix"
	"github.com/katalvlaran/dungeoncrack/bigmatrix/ops"
	"github.com/katalvlaran/dungeoncrack/bigrat"
)

func TestInverseIdentity(t *testing.T) {
	inv, err := ops.Inverse(bigmatrix.Identity(4))
	require.NoError(t, err)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if r == c {
				require.True(t, inv.At(r, c).Equal(bigrat.One()))
			} else {
				require.True(t, inv.At(r, c).IsZero())
			}
		}
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := bigmatrix.NewMatrix(3, 3)
	vals := [][]int64{{2, 1, 1}, {1, 3, 2}, {1, 0, 0}}
	for r, row := range vals {
		for c, v := range row {
			m.Set(r, c, bigrat.FromInt64(v))
		}
	}
	inv, err := ops.Inverse(m)
	require.NoError(t, err)

	product := m.MulMatrix(inv)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			want := bigrat.Zero()
			if r == c {
				want = bigrat.One()
			}
			require.True(t, product.At(r, c).Equal(want), "A*inv(A) not identity at (%d,%d)", r, c)
		}
	}
}

func TestInverseSingular(t *testing.T) {
	m := bigmatrix.NewMatrix(2, 2)
	m.Set(0, 0, bigrat.FromInt64(1))
	m.Set(0, 1, bigrat.FromInt64(2))
	m.Set(1, 0, bigrat.FromInt64(2))
	m.Set(1, 1, bigrat.FromInt64(4))
	_, err := ops.Inverse(m)
	require.ErrorIs(t, err, ops.ErrSingular)
}

func TestInverseNonSquare(t *testing.T) {
	m := bigmatrix.NewMatrix(2, 3)
	_, err := ops.Inverse(m)
	require.ErrorIs(t, err, bigmatrix.ErrNonSquare)
}
