// SPDX-License-Identifier: MIT

package latticeenum

import (
	"math"
	"math/big"

	"github.com/katalvlaran/dungeoncrack/bigmatrix"
	"github.com/katalvlaran/dungeoncrack/simplex"
)

// BranchCount returns the number of depth-0 branches the enumeration tree
// has for this box, i.e. the number of integer values the narrowest
// dimension (by LP-measured width) can take. Driver code uses this to
// size a parallel partition passed to EnumerateBranches.
func BranchCount(basis bigmatrix.Matrix, lower, upper, origin bigmatrix.Vector, opts simplex.Options) int64 {
	constraints := buildBoxConstraints(lower, upper, opts)
	return branchCount(basis, origin, constraints)
}

func branchCount(basis bigmatrix.Matrix, origin bigmatrix.Vector, constraints *simplex.Optimize) int64 {
	inverse, rootOrigin := rootInverse(basis, origin)
	order, _ := dimensionOrder(inverse, constraints)

	index := order[0]
	gradient := inverse.Row(index)
	offset := rootOrigin.At(index)

	_, minVal, _ := constraints.Clone().Minimize(gradient)
	_, maxVal, _ := constraints.Clone().Maximize(gradient)

	minInt := minVal.Sub(offset).Ceil()
	maxInt := maxVal.Sub(offset).Floor()
	if minInt.Cmp(maxInt) > 0 {
		return 0
	}

	count := new(big.Int).Sub(maxInt, minInt)
	count.Add(count, big.NewInt(1))
	if !count.IsInt64() {
		return math.MaxInt64
	}
	return count.Int64()
}

// EnumerateBranches explores only the depth-0 branches in
// [branchStart, branchEnd). Branch index 0 is the center value of the
// narrowest dimension; subsequent indices alternate outward, matching the
// order BranchCount/Enumerate use — this is required for the partition
// property: the union of EnumerateBranches over any partition of
// [0, BranchCount()) equals Enumerate().
func EnumerateBranches(basis bigmatrix.Matrix, lower, upper, origin bigmatrix.Vector, opts simplex.Options, branchStart, branchEnd int64) ([]bigmatrix.Vector, error) {
	constraints := buildBoxConstraints(lower, upper, opts)
	inverse, rootOrigin := rootInverse(basis, origin)
	return enumerateRtPartial(basis, origin, constraints, inverse, rootOrigin, branchStart, branchEnd)
}

func enumerateRtPartial(basis bigmatrix.Matrix, origin bigmatrix.Vector, constraints *simplex.Optimize, inverse bigmatrix.Matrix, rootOrigin bigmatrix.Vector, branchStart, branchEnd int64) ([]bigmatrix.Vector, error) {
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
	collectSolutionsDepth0Partial(root, &results, branchStart, branchEnd, cycled)

	out := make([]bigmatrix.Vector, len(results))
	for i, fixed := range results {
		out[i] = origin.Add(basis.MulVector(fixed))
	}
	if *cycled {
		return out, ErrCycling
	}
	return out, nil
}

func collectSolutionsDepth0Partial(node *searchNode, results *[]bigmatrix.Vector, branchStart, branchEnd int64, cycled *bool) {
	index := node.order[0]
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
	center := new(big.Int).Rsh(new(big.Int).Add(minInt, maxInt), 1)

	var allValues []*big.Int
	lower := new(big.Int).Set(center)
	upper := new(big.Int).Add(center, one)
	either := true
	for either {
		either = false
		if lower.Cmp(minInt) >= 0 {
			allValues = append(allValues, new(big.Int).Set(lower))
			lower = new(big.Int).Sub(lower, one)
			either = true
		}
		if upper.Cmp(maxInt) <= 0 {
			allValues = append(allValues, new(big.Int).Set(upper))
			upper = new(big.Int).Add(upper, one)
			either = true
		}
	}

	total := int64(len(allValues))
	start := branchStart
	if start < 0 {
		start = 0
	}
	end := branchEnd
	if end > total {
		end = total
	}
	if end > int64(len(allValues)) {
		end = int64(len(allValues))
	}

	for idx := start; idx < end; idx++ {
		child := createChild(node, index, allValues[idx])
		collectSolutions(child, results, cycled)
	}
}
