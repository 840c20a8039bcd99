// SPDX-License-Identifier: MIT

package simplex

import "github.com/katalvlaran/dungeoncrack/bigmatrix"

// gaussJordanReduce row-reduces m in place, advancing the pivot column only
// while keep(col, pivotRows) holds. It returns pivotRows, where
// pivotRows[col] is the row holding that column's pivot, or -1 if the
// column was never reduced.
func gaussJordanReduce(m bigmatrix.Matrix, keep func(col int, pivotRows []int) bool) []int {
	rows := m.RowCount()
	cols := m.ColCount()
	pivotRows := make([]int, cols)
	for i := range pivotRows {
		pivotRows[i] = -1
	}

	row := 0
	pivotCol := 0

	for row < rows && pivotCol < cols {
		pivotRow := -1
		for pr := row; pr < rows; pr++ {
			if !m.At(pr, pivotCol).IsZero() {
				pivotRow = pr
				break
			}
		}

		if pivotRow != -1 {
			pivot := m.At(pivotRow, pivotCol)
			m.RowDivide(pivotRow, pivot)

			for i := 0; i < rows; i++ {
				if i == pivotRow {
					continue
				}
				scale := m.At(i, pivotCol)
				if !scale.IsZero() {
					m.RowSubtractScaled(i, pivotRow, scale)
				}
			}

			if pivotRow != row {
				m.SwapRows(row, pivotRow)
			}

			pivotRows[pivotCol] = row
			row++
		}

		for {
			pivotCol++
			if pivotCol >= cols || keep(pivotCol, pivotRows) {
				break
			}
		}
	}

	return pivotRows
}

// gaussJordanReduceAll row-reduces every column of m.
func gaussJordanReduceAll(m bigmatrix.Matrix) []int {
	return gaussJordanReduce(m, func(int, []int) bool { return true })
}
