// SPDX-License-Identifier: MIT

package bigrat_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeoncrack/bigrat"
)

func TestInvariants(t *testing.T) {
	cases := []bigrat.Rat{
		bigrat.New(4, 8),
		bigrat.New(-4, 8),
		bigrat.New(0, 5),
		bigrat.FromInt64(7),
		bigrat.Zero(),
	}
	for _, r := range cases {
		d := r.Denominator()
		require.True(t, d.Sign() > 0, "denominator must be positive, got %s", d)
		g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(r.Numerator()), d)
		if r.Numerator().Sign() != 0 {
			require.Equal(t, 0, g.Cmp(big.NewInt(1)), "numerator/denominator must be coprime")
		} else {
			require.Equal(t, 0, d.Cmp(big.NewInt(1)), "zero must reduce to 0/1")
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := bigrat.New(1, 2)
	b := bigrat.New(1, 3)
	require.True(t, a.Add(b).Equal(bigrat.New(5, 6)))
	require.True(t, a.Sub(b).Equal(bigrat.New(1, 6)))
	require.True(t, a.Mul(b).Equal(bigrat.New(1, 6)))
	require.True(t, a.Div(b).Equal(bigrat.New(3, 2)))
	require.True(t, a.Neg().Equal(bigrat.New(-1, 2)))
	require.True(t, a.Inv().Equal(bigrat.New(2, 1)))
	require.True(t, bigrat.New(-3, 4).Abs().Equal(bigrat.New(3, 4)))
}

func TestDivByZeroPanics(t *testing.T) {
	require.Panics(t, func() { _ = bigrat.One().Div(bigrat.Zero()) })
	require.Panics(t, func() { _ = bigrat.Zero().Inv() })
	require.Panics(t, func() { bigrat.New(1, 0) })
}

func TestFloorCeilRound(t *testing.T) {
	require.Equal(t, big.NewInt(1), bigrat.New(3, 2).Floor())
	require.Equal(t, big.NewInt(-2), bigrat.New(-3, 2).Floor())
	require.Equal(t, big.NewInt(2), bigrat.New(3, 2).Ceil())
	require.Equal(t, big.NewInt(-1), bigrat.New(-3, 2).Ceil())
	require.Equal(t, big.NewInt(2), bigrat.New(3, 2).Round())
	require.Equal(t, big.NewInt(-1), bigrat.New(-3, 2).Round())
	require.Equal(t, big.NewInt(3), bigrat.FromInt64(3).Floor())
	require.Equal(t, big.NewInt(3), bigrat.FromInt64(3).Ceil())
}

func TestCmp(t *testing.T) {
	require.True(t, bigrat.New(1, 2).Less(bigrat.New(2, 3)))
	require.False(t, bigrat.New(2, 3).Less(bigrat.New(1, 2)))
	require.Equal(t, 0, bigrat.New(2, 4).Cmp(bigrat.New(1, 2)))
}

func TestInt64Low(t *testing.T) {
	require.Equal(t, int64(0), bigrat.FromInt64(0).Int64Low())
	require.Equal(t, int64(-1), bigrat.FromInt64(-1).Int64Low())
	require.Equal(t, int64(1<<40), bigrat.FromInt64(1<<40).Int64Low())
}

func TestString(t *testing.T) {
	require.Equal(t, "3", bigrat.FromInt64(3).String())
	require.Equal(t, "1/2", bigrat.New(1, 2).String())
}
