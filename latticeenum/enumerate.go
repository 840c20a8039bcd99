// SPDX-License-Identifier: MIT

package latticeenum

import (
	"math/big"
	"sort"

	"github.com/katalvlaran/dungeoncrack/bigmatrix"
	"github.com/katalvlaran/dungeoncrack/bigmatrix/ops"
	"github.com/katalvlaran/dungeoncrack/bigrat"
	"github.com/katalvlaran/dungeoncrack/simplex"
)

func buildBoxConstraints(lower, upper bigmatrix.Vector, opts simplex.Options) *simplex.Optimize {
	size := lower.Dimension()
	b := simplex.NewOptimizeBuilder(size, opts)
	for i := 0; i < size; i++ {
		b.WithLowerBound(i, lower.At(i))
		b.WithUpperBound(i, upper.At(i))
	}
	return b.Build()
}

// rootInverse computes the basis inverse and transformed origin. A
// singular basis is a programming error — the reverser builder never
// constructs one for valid input — so it panics rather than returning an
// error.
func rootInverse(basis bigmatrix.Matrix, origin bigmatrix.Vector) (bigmatrix.Matrix, bigmatrix.Vector) {
	inv, err := ops.Inverse(basis)
	if err != nil {
		panic(err)
	}
	return inv, inv.MulVector(origin)
}

func dimensionOrder(inverse bigmatrix.Matrix, constraints *simplex.Optimize) ([]int, *bool) {
	size := inverse.RowCount()
	widths := make([]bigrat.Rat, size)
	order := make([]int, size)
	cycled := false

	for i := 0; i < size; i++ {
		gradient := inverse.Row(i)
		_, minVal, err1 := constraints.Clone().Minimize(gradient)
		_, maxVal, err2 := constraints.Clone().Maximize(gradient)
		if err1 != nil || err2 != nil {
			cycled = true
		}
		widths[i] = maxVal.Sub(minVal)
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return widths[order[a]].Cmp(widths[order[b]]) < 0
	})

	return order, &cycled
}

// EnumerateBounds returns every integer lattice point v = basis·f + origin
// with lower <= v <= upper coordinate-wise, using an LP relaxation to
// prune the search per dimension.
func EnumerateBounds(basis bigmatrix.Matrix, lower, upper, origin bigmatrix.Vector, opts simplex.Options) ([]bigmatrix.Vector, error) {
	constraints := buildBoxConstraints(lower, upper, opts)
	return Enumerate(basis, origin, constraints)
}

// Enumerate enumerates every integer lattice point within the feasible
// region described by constraints.
func Enumerate(basis bigmatrix.Matrix, origin bigmatrix.Vector, constraints *simplex.Optimize) ([]bigmatrix.Vector, error) {
	inv, rOrigin := rootInverse(basis, origin)
	return enumerateRt(basis, origin, constraints, inv, rOrigin)
}

func enumerateRt(basis bigmatrix.Matrix, origin bigmatrix.Vector, constraints *simplex.Optimize, inverse bigmatrix.Matrix, rootOrigin bigmatrix.Vector) ([]bigmatrix.Vector, error) {
	rootSize := basis.RowCount()
	order, cycled := dimensionOrder(inverse, constraints)

	root := &searchNode{
		size:        rootSize,
		depth:       0,
		inverse:     inverse,
		origin:      rootOrigin,
		fixed:       bigmatrix.NewVector(rootSize),
		constraints: constraints,
		order:       order,
	}

	var results []bigmatrix.Vector
	collectSolutions(root, &results, cycled)

	out := make([]bigmatrix.Vector, len(results))
	for i, fixed := range results {
		out[i] = origin.Add(basis.MulVector(fixed))
	}
	if *cycled {
		return out, ErrCycling
	}
	return out, nil
}

func collectSolutions(node *searchNode, results *[]bigmatrix.Vector, cycled *bool) {
	if node.depth == node.size {
		*results = append(*results, node.fixed.Clone())
		return
	}

	index := node.order[node.depth]
	gradient := node.inverse.Row(index)
	offset := node.origin.At(index)

	_, minVal, err1 := node.constraints.Clone().Minimize(gradient)
	_, maxVal, err2 := node.constraints.Clone().Maximize(gradient)
	if err1 != nil || err2 != nil {
		*cycled = true
	}

	minInt := minVal.Sub(offset).Ceil()
	maxInt := maxVal.Sub(offset).Floor()
	if minInt.Cmp(maxInt) > 0 {
		return
	}

	one := big.NewInt(1)
	lowerStart := new(big.Int).Rsh(new(big.Int).Add(minInt, maxInt), 1)
	upperStart := new(big.Int).Add(lowerStart, one)

	lower := new(big.Int).Set(lowerStart)
	upper := new(big.Int).Set(upperStart)
	either := true
	for either {
		either = false
		if lower.Cmp(minInt) >= 0 {
			child := createChild(node, index, lower)
			collectSolutions(child, results, cycled)
			lower = new(big.Int).Sub(lower, one)
			either = true
		}
		if upper.Cmp(maxInt) <= 0 {
			child := createChild(node, index, upper)
			collectSolutions(child, results, cycled)
			upper = new(big.Int).Add(upper, one)
			either = true
		}
	}
}
