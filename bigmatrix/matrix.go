// SPDX-License-Identifier: MIT

package bigmatrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dungeoncrack/bigrat"
)

// Matrix is a fixed-shape, dense, row-major matrix of exact rationals.
type Matrix struct {
	data []bigrat.Rat
	rows int
	cols int
}

// NewMatrix returns a zero matrix of the given shape. Panics with
// ErrBadShape if rows <= 0 or cols <= 0.
func NewMatrix(rows, cols int) Matrix {
	if rows <= 0 || cols <= 0 {
		panic(ErrBadShape)
	}
	data := make([]bigrat.Rat, rows*cols)
	for i := range data {
		data[i] = bigrat.Zero()
	}
	return Matrix{data: data, rows: rows, cols: cols}
}

// Identity returns the size x size identity matrix.
func Identity(size int) Matrix {
	m := NewMatrix(size, size)
	for i := 0; i < size; i++ {
		m.Set(i, i, bigrat.One())
	}
	return m
}

// RowCount returns the number of rows.
func (m Matrix) RowCount() int { return m.rows }

// ColCount returns the number of columns.
func (m Matrix) ColCount() int { return m.cols }

// IsSquare reports whether rows == cols.
func (m Matrix) IsSquare() bool { return m.rows == m.cols }

func (m Matrix) indexOf(row, col int) int {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(matrixErrorf("At", row, col, ErrOutOfRange))
	}
	return row*m.cols + col
}

func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// At returns the value at (row, col). Panics with ErrOutOfRange if out of bounds.
func (m Matrix) At(row, col int) bigrat.Rat {
	return m.data[m.indexOf(row, col)]
}

// Set assigns value at (row, col) in place. Panics with ErrOutOfRange if out of bounds.
func (m Matrix) Set(row, col int, value bigrat.Rat) {
	m.data[m.indexOf(row, col)] = value
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	data := make([]bigrat.Rat, len(m.data))
	copy(data, m.data)
	return Matrix{data: data, rows: m.rows, cols: m.cols}
}

// Row returns a fresh copy of the given row as a Vector.
func (m Matrix) Row(row int) Vector {
	if row < 0 || row >= m.rows {
		panic(matrixErrorf("Row", row, 0, ErrOutOfRange))
	}
	start := row * m.cols
	data := make([]bigrat.Rat, m.cols)
	copy(data, m.data[start:start+m.cols])
	return Vector{data: data}
}

// SetRow overwrites the given row from v in place. Panics with
// ErrDimensionMismatch if v.Dimension() != m.ColCount().
func (m Matrix) SetRow(row int, v Vector) {
	if v.Dimension() != m.cols {
		panic(fmt.Errorf("Matrix.SetRow(%d): %w", row, ErrDimensionMismatch))
	}
	start := row * m.cols
	for i := 0; i < m.cols; i++ {
		m.data[start+i] = v.data[i]
	}
}

// Col returns a fresh copy of the given column as a Vector.
func (m Matrix) Col(col int) Vector {
	v := NewVector(m.rows)
	for i := 0; i < m.rows; i++ {
		v.Set(i, m.At(i, col))
	}
	return v
}

// SetCol overwrites the given column from v in place. Panics with
// ErrDimensionMismatch if v.Dimension() != m.RowCount().
func (m Matrix) SetCol(col int, v Vector) {
	if v.Dimension() != m.rows {
		panic(fmt.Errorf("Matrix.SetCol(%d): %w", col, ErrDimensionMismatch))
	}
	for i := 0; i < m.rows; i++ {
		m.Set(i, col, v.At(i))
	}
}

// SwapRows exchanges rows r1 and r2 in place.
func (m Matrix) SwapRows(r1, r2 int) {
	if r1 == r2 {
		return
	}
	for c := 0; c < m.cols; c++ {
		i1, i2 := m.indexOf(r1, c), m.indexOf(r2, c)
		m.data[i1], m.data[i2] = m.data[i2], m.data[i1]
	}
}

// Transpose returns a fresh transposed copy of m.
func (m Matrix) Transpose() Matrix {
	out := NewMatrix(m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.Set(c, r, m.At(r, c))
		}
	}
	return out
}

// MulMatrix returns m * other. Panics with ErrDimensionMismatch if
// m.ColCount() != other.RowCount().
func (m Matrix) MulMatrix(other Matrix) Matrix {
	if m.cols != other.rows {
		panic(fmt.Errorf("Matrix.MulMatrix: %w", ErrDimensionMismatch))
	}
	out := NewMatrix(m.rows, other.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < other.cols; c++ {
			sum := bigrat.Zero()
			for k := 0; k < m.cols; k++ {
				sum = sum.Add(m.At(r, k).Mul(other.At(k, c)))
			}
			out.Set(r, c, sum)
		}
	}
	return out
}

// MulVector returns m * v. Panics with ErrDimensionMismatch if
// m.ColCount() != v.Dimension().
func (m Matrix) MulVector(v Vector) Vector {
	if m.cols != v.Dimension() {
		panic(fmt.Errorf("Matrix.MulVector: %w", ErrDimensionMismatch))
	}
	out := NewVector(m.rows)
	for r := 0; r < m.rows; r++ {
		out.Set(r, m.Row(r).Dot(v))
	}
	return out
}

// MulScalar returns a fresh copy of m with every entry scaled by s.
func (m Matrix) MulScalar(s bigrat.Rat) Matrix {
	out := m.Clone()
	for i := range out.data {
		out.data[i] = out.data[i].Mul(s)
	}
	return out
}

// Submatrix returns a fresh copy of the rowCount x colCount block starting at (startRow, startCol).
func (m Matrix) Submatrix(startRow, startCol, rowCount, colCount int) Matrix {
	out := NewMatrix(rowCount, colCount)
	for r := 0; r < rowCount; r++ {
		for c := 0; c < colCount; c++ {
			out.Set(r, c, m.At(startRow+r, startCol+c))
		}
	}
	return out
}

// RowSubtractScaled sets row[target] -= scale * row[source], in place.
func (m Matrix) RowSubtractScaled(target, source int, scale bigrat.Rat) {
	for c := 0; c < m.cols; c++ {
		m.Set(target, c, m.At(target, c).Sub(m.At(source, c).Mul(scale)))
	}
}

// RowAddScaled sets row[target] += scale * row[source], in place.
func (m Matrix) RowAddScaled(target, source int, scale bigrat.Rat) {
	for c := 0; c < m.cols; c++ {
		m.Set(target, c, m.At(target, c).Add(m.At(source, c).Mul(scale)))
	}
}

// RowDivide divides row in place by divisor. Panics with ErrDivByZero if divisor is zero.
func (m Matrix) RowDivide(row int, divisor bigrat.Rat) {
	recip := divisor.Inv()
	for c := 0; c < m.cols; c++ {
		m.Set(row, c, m.At(row, c).Mul(recip))
	}
}

// RowMultiply scales row in place by scalar.
func (m Matrix) RowMultiply(row int, scalar bigrat.Rat) {
	for c := 0; c < m.cols; c++ {
		m.Set(row, c, m.At(row, c).Mul(scalar))
	}
}

// String renders m as "{row0, row1, ...}".
func (m Matrix) String() string {
	parts := make([]string, m.rows)
	for r := 0; r < m.rows; r++ {
		parts[r] = m.Row(r).String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
