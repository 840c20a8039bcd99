// SPDX-License-Identifier: MIT

package bigmatrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dungeoncrack/bigrat"
)

// Vector is a fixed-dimension dense vector of exact rationals.
type Vector struct {
	data []bigrat.Rat
}

// NewVector returns a zero vector of the given dimension. Panics with
// ErrBadShape if dimension <= 0.
func NewVector(dimension int) Vector {
	if dimension <= 0 {
		panic(ErrBadShape)
	}
	data := make([]bigrat.Rat, dimension)
	for i := range data {
		data[i] = bigrat.Zero()
	}
	return Vector{data: data}
}

// VectorFromData wraps data directly as a Vector's backing storage. The
// caller must not retain a reference to data afterwards.
func VectorFromData(data []bigrat.Rat) Vector {
	if len(data) == 0 {
		panic(ErrBadShape)
	}
	return Vector{data: data}
}

// Basis returns the size-dimensional vector scale·e_i.
func Basis(size, i int, scale bigrat.Rat) Vector {
	v := NewVector(size)
	v.Set(i, scale)
	return v
}

// BasisOne returns the standard basis vector e_i.
func BasisOne(size, i int) Vector {
	return Basis(size, i, bigrat.One())
}

// Dimension returns the vector's length.
func (v Vector) Dimension() int { return len(v.data) }

func (v Vector) checkIndex(i int) {
	if i < 0 || i >= len(v.data) {
		panic(fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange))
	}
}

// At returns the value at index i. Panics with ErrOutOfRange if i is out of bounds.
func (v Vector) At(i int) bigrat.Rat {
	v.checkIndex(i)
	return v.data[i]
}

// Set assigns value to index i in place. Panics with ErrOutOfRange if i is out of bounds.
func (v Vector) Set(i int, value bigrat.Rat) {
	v.checkIndex(i)
	v.data[i] = value
}

// Clone returns a deep copy of v.
func (v Vector) Clone() Vector {
	data := make([]bigrat.Rat, len(v.data))
	copy(data, v.data)
	return Vector{data: data}
}

// IsZero reports whether every coordinate of v is zero.
func (v Vector) IsZero() bool {
	for _, x := range v.data {
		if !x.IsZero() {
			return false
		}
	}
	return true
}

// MagnitudeSq returns the squared Euclidean norm ⟨v,v⟩.
func (v Vector) MagnitudeSq() bigrat.Rat {
	return v.Dot(v)
}

// Add returns v + other. Panics with ErrDimensionMismatch on shape mismatch.
func (v Vector) Add(other Vector) Vector {
	v.requireSameDim(other)
	out := make([]bigrat.Rat, len(v.data))
	for i := range out {
		out[i] = v.data[i].Add(other.data[i])
	}
	return Vector{data: out}
}

// Sub returns v - other. Panics with ErrDimensionMismatch on shape mismatch.
func (v Vector) Sub(other Vector) Vector {
	v.requireSameDim(other)
	out := make([]bigrat.Rat, len(v.data))
	for i := range out {
		out[i] = v.data[i].Sub(other.data[i])
	}
	return Vector{data: out}
}

// SubAssign subtracts other from v in place. Panics with ErrDimensionMismatch on shape mismatch.
func (v Vector) SubAssign(other Vector) {
	v.requireSameDim(other)
	for i := range v.data {
		v.data[i] = v.data[i].Sub(other.data[i])
	}
}

// AddAssign adds other to v in place. Panics with ErrDimensionMismatch on shape mismatch.
func (v Vector) AddAssign(other Vector) {
	v.requireSameDim(other)
	for i := range v.data {
		v.data[i] = v.data[i].Add(other.data[i])
	}
}

// MulScalar returns v scaled by s.
func (v Vector) MulScalar(s bigrat.Rat) Vector {
	out := make([]bigrat.Rat, len(v.data))
	for i := range out {
		out[i] = v.data[i].Mul(s)
	}
	return Vector{data: out}
}

// MulScalarAssign scales v by s in place.
func (v Vector) MulScalarAssign(s bigrat.Rat) {
	for i := range v.data {
		v.data[i] = v.data[i].Mul(s)
	}
}

// DivScalarAssign divides v by s in place. Panics with ErrDivByZero if s is zero.
func (v Vector) DivScalarAssign(s bigrat.Rat) {
	v.MulScalarAssign(s.Inv())
}

// Dot returns the inner product ⟨v, other⟩. Panics with ErrDimensionMismatch on shape mismatch.
func (v Vector) Dot(other Vector) bigrat.Rat {
	v.requireSameDim(other)
	sum := bigrat.Zero()
	for i := range v.data {
		sum = sum.Add(v.data[i].Mul(other.data[i]))
	}
	return sum
}

// Swap exchanges coordinates i and j in place.
func (v Vector) Swap(i, j int) {
	v.checkIndex(i)
	v.checkIndex(j)
	v.data[i], v.data[j] = v.data[j], v.data[i]
}

func (v Vector) requireSameDim(other Vector) {
	if len(v.data) != len(other.data) {
		panic(fmt.Errorf("Vector op: %w: %d vs %d", ErrDimensionMismatch, len(v.data), len(other.data)))
	}
}

// String renders v as "{a, b, c}".
func (v Vector) String() string {
	parts := make([]string, len(v.data))
	for i, x := range v.data {
		parts[i] = x.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
