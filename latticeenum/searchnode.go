// SPDX-License-Identifier: MIT

package latticeenum

import (
	"math/big"

	"github.com/katalvlaran/dungeoncrack/bigmatrix"
	"github.com/katalvlaran/dungeoncrack/bigrat"
	"github.com/katalvlaran/dungeoncrack/simplex"
)

// searchNode is one frontier record in the recursive descent: the working
// dimension count, the current depth, the (shared, read-only) basis
// inverse and transformed origin, the integer coordinates fixed so far,
// the Optimize narrowed by one equality constraint per ancestor, and the
// exploration order of dimensions (narrow-first).
type searchNode struct {
	size        int
	depth       int
	inverse     bigmatrix.Matrix
	origin      bigmatrix.Vector
	fixed       bigmatrix.Vector
	constraints *simplex.Optimize
	order       []int
}

func createChild(parent *searchNode, index int, value *big.Int) *searchNode {
	gradient := parent.inverse.Row(index)
	offset := parent.origin.At(index)
	v := bigrat.FromBigInt(value)

	nextConstraints := parent.constraints.WithStrictBound(gradient, v.Add(offset))
	basisVec := bigmatrix.Basis(parent.size, index, v)
	nextFixed := parent.fixed.Add(basisVec)

	return &searchNode{
		size:        parent.size,
		depth:       parent.depth + 1,
		inverse:     parent.inverse,
		origin:      parent.origin,
		fixed:       nextFixed,
		constraints: nextConstraints,
		order:       parent.order,
	}
}
