// SPDX-License-Identifier: MIT

package simplex

import (
	"log"

	"github.com/katalvlaran/dungeoncrack/bigmatrix"
	"github.com/katalvlaran/dungeoncrack/bigrat"
)

// Logger receives cycling and long-solve diagnostics. Replace it (or set it
// to log.New(io.Discard, "", 0)) to silence or redirect output.
var Logger = log.New(log.Writer(), "[simplex] ", log.LstdFlags)

// Optimize holds a feasible simplex tableau together with the transform
// that maps its internal slack-space solution back to the caller's
// original coordinates. It is produced by OptimizeBuilder and narrowed
// incrementally via WithStrictBound.
type Optimize struct {
	table     bigmatrix.Matrix
	basics    []int
	nonbasics []int
	transform bigmatrix.Matrix
	rows      int
	cols      int
	opts      Options
}

func newOptimize(table bigmatrix.Matrix, basics, nonbasics []int, transform bigmatrix.Matrix, opts Options) *Optimize {
	return &Optimize{
		table:     table,
		basics:    basics,
		nonbasics: nonbasics,
		transform: transform,
		rows:      table.RowCount(),
		cols:      table.ColCount(),
		opts:      opts,
	}
}

// TableSize returns the tableau's (rows, cols), including the objective
// row and the RHS column.
func (o *Optimize) TableSize() (int, int) { return o.rows, o.cols }

// Clone returns a deep copy of o. Minimize/Maximize mutate the receiver's
// objective row in place, so callers that need to probe several gradients
// against the same feasible region (as the enumerator does for every
// dimension's width) must clone before each probe.
func (o *Optimize) Clone() *Optimize {
	return &Optimize{
		table:     o.table.Clone(),
		basics:    append([]int(nil), o.basics...),
		nonbasics: append([]int(nil), o.nonbasics...),
		transform: o.transform,
		rows:      o.rows,
		cols:      o.cols,
		opts:      o.opts,
	}
}

func (o *Optimize) transformForTable(lhs bigmatrix.Vector, rhs bigrat.Rat) bigmatrix.Vector {
	tcols := o.transform.ColCount()
	transformed := bigmatrix.NewVector(tcols)
	transformed.Set(tcols-1, rhs)

	for row := 0; row < o.transform.RowCount(); row++ {
		x := lhs.At(row)
		trRow := o.transform.Row(row)
		transformed.SubAssign(trRow.MulScalar(x))
	}

	eliminated := bigmatrix.NewVector(o.cols)
	for col := 0; col < o.cols-1; col++ {
		eliminated.Set(col, transformed.At(o.nonbasics[col]))
	}
	eliminated.Set(o.cols-1, transformed.At(tcols-1))

	for row := 0; row < o.rows-1; row++ {
		x := transformed.At(o.basics[row])
		tRow := o.table.Row(row)
		eliminated.SubAssign(tRow.MulScalar(x))
	}

	return eliminated
}

// Maximize returns (argmax, max) for ⟨gradient, x⟩ over the feasible
// region, with argmax expressed in the caller's original coordinates.
func (o *Optimize) Maximize(gradient bigmatrix.Vector) (bigmatrix.Vector, bigrat.Rat, error) {
	neg := bigmatrix.NewVector(gradient.Dimension())
	for i := 0; i < gradient.Dimension(); i++ {
		neg.Set(i, gradient.At(i).Neg())
	}
	result, val, err := o.Minimize(neg)
	return result, val.Neg(), err
}

// Minimize returns (argmin, min) for ⟨gradient, x⟩ over the feasible
// region, with argmin expressed in the caller's original coordinates. If
// the solve aborts on the pivot cap, the returned error wraps ErrCycling
// and the returned values are a best-effort, possibly-incorrect bound.
func (o *Optimize) Minimize(gradient bigmatrix.Vector) (bigmatrix.Vector, bigrat.Rat, error) {
	if gradient.Dimension() != o.transform.RowCount() {
		panic(bigmatrix.ErrDimensionMismatch)
	}

	o.table.SetRow(o.rows-1, bigmatrix.NewVector(o.cols))
	negTransformed := o.transformForTable(gradient, bigrat.Zero())
	for c := 0; c < o.cols; c++ {
		o.table.Set(o.rows-1, c, o.table.At(o.rows-1, c).Sub(negTransformed.At(c)))
	}

	cycled := o.solve()

	tcols := o.transform.ColCount()
	result := o.transform.Col(tcols - 1)

	for row := 0; row < o.rows-1; row++ {
		v0 := o.basics[row]
		scale := o.table.At(row, o.cols-1)
		colVec := o.transform.Col(v0)
		result.SubAssign(colVec.MulScalar(scale))
	}

	objVal := o.table.At(o.rows-1, o.cols-1)
	if cycled {
		return result, objVal, ErrCycling
	}
	return result, objVal, nil
}

// solve repeatedly pivots until no entering column improves the objective,
// or the pivot cap is hit. It returns true if it gave up due to the cap.
func (o *Optimize) solve() bool {
	iters := 0
	for o.step() {
		iters++
		if iters%10000 == 0 {
			Logger.Printf("solve iteration %d, table %dx%d", iters, o.rows, o.cols)
		}
		if iters > o.opts.maxPivots() {
			Logger.Printf("WARNING: over %d iterations, likely cycling. Aborting.", o.opts.maxPivots())
			return true
		}
	}
	return false
}

func (o *Optimize) step() bool {
	bland := false
	for row := 0; row < o.rows-1; row++ {
		if o.table.At(row, o.cols-1).Sign() == 0 {
			bland = true
			break
		}
	}

	entering := -1
	candidate := bigrat.Zero()
	for col := 0; col < o.cols-1; col++ {
		x := o.table.At(o.rows-1, col)
		if x.Sign() <= 0 {
			continue
		}
		if entering != -1 && x.Cmp(candidate) <= 0 {
			continue
		}
		entering = col
		candidate = x
		if bland {
			break
		}
	}
	if entering == -1 {
		return false
	}

	exiting := -1
	candidate = bigrat.Zero()
	for row := 0; row < o.rows-1; row++ {
		x := o.table.At(row, entering)
		if x.Sign() <= 0 {
			continue
		}
		y := o.table.At(row, o.cols-1).Div(x)
		if exiting != -1 && y.Cmp(candidate) >= 0 {
			continue
		}
		exiting = row
		candidate = y
	}
	if exiting == -1 {
		panic(errUnbounded)
	}

	o.pivot(entering, exiting)
	return true
}

func (o *Optimize) pivot(entering, exiting int) {
	pivotVal := o.table.At(exiting, entering)

	for col := 0; col < o.cols; col++ {
		if col == entering {
			continue
		}
		o.table.Set(exiting, col, o.table.At(exiting, col).Div(pivotVal))
	}

	for row := 0; row < o.rows; row++ {
		if row == exiting {
			continue
		}
		x := o.table.At(row, entering)
		for col := 0; col < o.cols; col++ {
			if col == entering {
				continue
			}
			y := o.table.At(exiting, col)
			o.table.Set(row, col, o.table.At(row, col).Sub(x.Mul(y)))
		}
		o.table.Set(row, entering, x.Div(pivotVal).Neg())
	}

	o.table.Set(exiting, entering, pivotVal.Inv())

	o.nonbasics[entering], o.basics[exiting] = o.basics[exiting], o.nonbasics[entering]
}

// WithStrictBound returns a new Optimize narrowed by the additional
// half-space ⟨lhs, x⟩ < rhs, without rebuilding the whole tableau.
func (o *Optimize) WithStrictBound(lhs bigmatrix.Vector, rhs bigrat.Rat) *Optimize {
	newTable := bigmatrix.NewMatrix(o.rows+1, o.cols)
	for row := 0; row < o.rows-1; row++ {
		for col := 0; col < o.cols; col++ {
			newTable.Set(row, col, o.table.At(row, col))
		}
	}

	boundRow := o.transformForTable(lhs, rhs)
	for col := 0; col < o.cols; col++ {
		newTable.Set(o.rows-1, col, boundRow.At(col))
	}

	if newTable.At(o.rows-1, o.cols-1).Sign() < 0 {
		newTable.RowMultiply(o.rows-1, bigrat.MinusOne())
	}

	newBasics := append(append([]int(nil), o.basics...), (o.rows-1)+(o.cols-1))
	newNonbasics := append([]int(nil), o.nonbasics...)

	return fromTable(newTable, newBasics, newNonbasics, 1, o.transform, o.opts)
}

// fromTable drives out the given number of trailing artificial variables
// (columns >= realVariables) via Phase 1, then strips the artificial
// columns from the returned tableau. Panics with errInfeasible if Phase 1
// fails to reach a zero objective — this indicates the caller constructed
// an infeasible tableau, which never happens for valid input.
func fromTable(table bigmatrix.Matrix, basics, nonbasics []int, artificials int, transform bigmatrix.Matrix, opts Options) *Optimize {
	rows := table.RowCount()
	cols := table.ColCount()
	realVariables := (rows - 1) + (cols - 1) - artificials

	for basicRow := 0; basicRow < rows-1; basicRow++ {
		if basics[basicRow] < realVariables {
			continue
		}
		for col := 0; col < cols; col++ {
			table.Set(rows-1, col, table.At(rows-1, col).Add(table.At(basicRow, col)))
		}
	}

	opt := newOptimize(table, append([]int(nil), basics...), append([]int(nil), nonbasics...), bigmatrix.NewMatrix(1, 1), opts)
	opt.solve()

	if opt.table.At(opt.rows-1, opt.cols-1).Sign() != 0 {
		panic(errInfeasible)
	}

	for row := 0; row < opt.rows-1; row++ {
		if opt.basics[row] >= realVariables {
			for col := 0; col < opt.cols-1; col++ {
				if opt.nonbasics[col] >= realVariables || opt.table.At(row, col).Sign() == 0 {
					continue
				}
				opt.pivot(col, row)
				break
			}
		}
	}

	finalCols := cols - artificials
	finalTable := bigmatrix.NewMatrix(rows, finalCols)

	c0, c1 := 0, 0
	finalNonbasics := make([]int, finalCols-1)
	for c0 < finalCols-1 {
		for c1 < cols-1 && opt.nonbasics[c1] >= realVariables {
			c1++
		}
		if c1 >= cols-1 {
			break
		}
		for row := 0; row < rows-1; row++ {
			finalTable.Set(row, c0, opt.table.At(row, c1))
		}
		finalNonbasics[c0] = opt.nonbasics[c1]
		c0++
		c1++
	}
	for row := 0; row < rows-1; row++ {
		finalTable.Set(row, finalCols-1, opt.table.At(row, cols-1))
	}

	return newOptimize(finalTable, append([]int(nil), opt.basics...), finalNonbasics, transform, opts)
}
