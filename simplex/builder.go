// SPDX-License-Identifier: MIT

package simplex

import (
	"github.com/katalvlaran/dungeoncrack/bigmatrix"
	"github.com/katalvlaran/dungeoncrack/bigrat"
)

// OptimizeBuilder accumulates per-coordinate lower/upper bound constraints
// and produces a feasible Optimize.
type OptimizeBuilder struct {
	size   int
	slacks []int
	lefts  []bigmatrix.Vector
	rights []bigrat.Rat
	opts   Options
}

// NewOptimizeBuilder returns a builder for an LP over `size` original
// coordinates.
func NewOptimizeBuilder(size int, opts Options) *OptimizeBuilder {
	return &OptimizeBuilder{size: size, opts: opts}
}

// WithLowerBound adds the constraint x[idx] >= rhs.
func (b *OptimizeBuilder) WithLowerBound(idx int, rhs bigrat.Rat) *OptimizeBuilder {
	b.slacks = append(b.slacks, -1)
	b.lefts = append(b.lefts, bigmatrix.BasisOne(b.size, idx))
	b.rights = append(b.rights, rhs)
	return b
}

// WithUpperBound adds the constraint x[idx] <= rhs.
func (b *OptimizeBuilder) WithUpperBound(idx int, rhs bigrat.Rat) *OptimizeBuilder {
	b.slacks = append(b.slacks, 1)
	b.lefts = append(b.lefts, bigmatrix.BasisOne(b.size, idx))
	b.rights = append(b.rights, rhs)
	return b
}

// Build assembles the accumulated bounds into a feasible Optimize.
func (b *OptimizeBuilder) Build() *Optimize {
	size := b.size
	variables := size + len(b.slacks)
	constraint := 0
	slack := size

	maxRows := len(b.slacks) + size
	maxCols := variables + 2*size + 1
	table := bigmatrix.NewMatrix(maxRows, maxCols)

	for i := range b.slacks {
		for col := 0; col < size; col++ {
			table.Set(constraint, col, b.lefts[i].At(col))
		}
		table.Set(constraint, variables+2*size, b.rights[i])

		if b.slacks[i] != 0 {
			table.Set(constraint, slack, bigrat.FromInt64(int64(b.slacks[i])))
			slack++
		}
		constraint++
	}

	pivotRows := gaussJordanReduce(table, func(col int, _ []int) bool { return col < size })

	for col := 0; col < size; col++ {
		if pivotRows[col] != -1 {
			continue
		}
		table.Set(constraint, col, bigrat.One())
		table.Set(constraint, slack, bigrat.One())
		table.Set(constraint, slack+1, bigrat.MinusOne())
		constraint++
		slack += 2
	}

	pivotRows = gaussJordanReduceAll(table)

	for col := 0; col < size; col++ {
		if pivotRows[col] == -1 {
			panic(errCantReduce)
		}
	}

	maxPivot := -1
	for _, p := range pivotRows {
		if p > maxPivot {
			maxPivot = p
		}
	}
	constraint = 1 + maxPivot

	slackCount := slack - size
	transform := bigmatrix.NewMatrix(size, slackCount+1)
	innerRows := 0
	if constraint > size {
		innerRows = constraint - size
	}
	innerTableRows := innerRows
	if innerTableRows < 1 {
		innerTableRows = 1
	}
	innerTable := bigmatrix.NewMatrix(innerTableRows, slackCount+1)

	for row := 0; row < size; row++ {
		for col := 0; col < slackCount; col++ {
			transform.Set(row, col, table.At(row, size+col))
		}
		transform.Set(row, slackCount, table.At(row, variables+2*size))
	}

	for row := 0; row < innerRows; row++ {
		for col := 0; col < slackCount; col++ {
			innerTable.Set(row, col, table.At(size+row, size+col))
		}
		innerTable.Set(row, slackCount, table.At(size+row, variables+2*size))
	}

	return fromInnerTable(innerTable, transform, b.opts)
}

// fromInnerTable locates an initial basic feasible-ish starting tableau
// (identity columns where available, artificial variables elsewhere) and
// hands off to fromTable to drive the artificials out via Phase 1.
func fromInnerTable(innerTable, transform bigmatrix.Matrix, opts Options) *Optimize {
	constraints := innerTable.RowCount()
	variables := innerTable.ColCount() - 1

	inner := innerTable.Clone()
	basics := make([]int, constraints)
	for i := range basics {
		basics[i] = -1
	}
	var nonbasicList []int

	for row := 0; row < constraints; row++ {
		if inner.At(row, variables).Sign() < 0 {
			inner.RowMultiply(row, bigrat.MinusOne())
		}
	}

	for col := 0; col < variables; col++ {
		count := 0
		index := 0
		for row := 0; row < constraints; row++ {
			if inner.At(row, col).Sign() != 0 {
				count++
				index = row
			}
		}
		if count == 1 && basics[index] == -1 && inner.At(index, col).Sign() > 0 {
			pivot := inner.At(index, col)
			inner.RowDivide(index, pivot)
			basics[index] = col
		} else {
			nonbasicList = append(nonbasicList, col)
		}
	}

	artificials := 0
	for row := 0; row < constraints; row++ {
		if basics[row] == -1 {
			basics[row] = variables + artificials
			artificials++
		}
	}

	nonbasicCount := variables - constraints + artificials
	table := bigmatrix.NewMatrix(constraints+1, nonbasicCount+1)

	for row := 0; row < constraints; row++ {
		for basicRow := 0; basicRow < constraints; basicRow++ {
			if basicRow == row || basics[basicRow] >= variables {
				continue
			}
			scale := inner.At(row, basics[basicRow])
			if !scale.IsZero() {
				inner.RowSubtractScaled(row, basicRow, scale)
			}
		}

		for col := 0; col < nonbasicCount; col++ {
			if col < len(nonbasicList) {
				table.Set(row, col, inner.At(row, nonbasicList[col]))
			}
		}
		table.Set(row, nonbasicCount, inner.At(row, variables))
	}

	finalNonbasics := make([]int, nonbasicCount)
	for i := 0; i < len(nonbasicList) && i < nonbasicCount; i++ {
		finalNonbasics[i] = nonbasicList[i]
	}

	return fromTable(table, basics, finalNonbasics, artificials, transform, opts)
}
