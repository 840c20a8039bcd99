// SPDX-License-Identifier: MIT

package bigrat

import (
	"fmt"
	"math/big"
)

// Rat is an exact rational number. The zero value is not usable; construct
// via Zero, One, FromInt64, or FromBigInt. Rat wraps *big.Rat, which already
// maintains the invariants this package requires: denominator > 0,
// numerator/denominator coprime, and zero canonicalized to 0/1.
type Rat struct {
	v *big.Rat
}

// Zero returns the rational 0.
func Zero() Rat { return Rat{v: new(big.Rat)} }

// One returns the rational 1.
func One() Rat { return Rat{v: big.NewRat(1, 1)} }

// MinusOne returns the rational -1.
func MinusOne() Rat { return Rat{v: big.NewRat(-1, 1)} }

// Half returns the rational 1/2.
func Half() Rat { return Rat{v: big.NewRat(1, 2)} }

// FromInt64 returns the rational n/1.
func FromInt64(n int64) Rat { return Rat{v: new(big.Rat).SetInt64(n)} }

// FromBigInt returns the rational n/1.
func FromBigInt(n *big.Int) Rat { return Rat{v: new(big.Rat).SetInt(n)} }

// New returns the reduced rational n/d. Panics if d == 0, matching the
// original implementation's panic-on-construction policy.
func New(n, d int64) Rat {
	if d == 0 {
		panic(ErrDivByZero)
	}
	return Rat{v: big.NewRat(n, d)}
}

// NewFromBig returns the reduced rational n/d. Panics if d == 0.
func NewFromBig(n, d *big.Int) Rat {
	if d.Sign() == 0 {
		panic(ErrDivByZero)
	}
	r := new(big.Rat).SetFrac(n, d)
	return Rat{v: r}
}

// Numerator returns the reduced numerator.
func (r Rat) Numerator() *big.Int { return new(big.Int).Set(r.v.Num()) }

// Denominator returns the reduced, always-positive denominator.
func (r Rat) Denominator() *big.Int { return new(big.Int).Set(r.v.Denom()) }

// Add returns r + other.
func (r Rat) Add(other Rat) Rat { return Rat{v: new(big.Rat).Add(r.v, other.v)} }

// AddInt64 returns r + n.
func (r Rat) AddInt64(n int64) Rat { return r.Add(FromInt64(n)) }

// Sub returns r - other.
func (r Rat) Sub(other Rat) Rat { return Rat{v: new(big.Rat).Sub(r.v, other.v)} }

// SubInt64 returns r - n.
func (r Rat) SubInt64(n int64) Rat { return r.Sub(FromInt64(n)) }

// Mul returns r * other.
func (r Rat) Mul(other Rat) Rat { return Rat{v: new(big.Rat).Mul(r.v, other.v)} }

// MulInt64 returns r * n.
func (r Rat) MulInt64(n int64) Rat { return r.Mul(FromInt64(n)) }

// Div returns r / other. Panics with ErrDivByZero if other is zero.
func (r Rat) Div(other Rat) Rat {
	if other.IsZero() {
		panic(ErrDivByZero)
	}
	return Rat{v: new(big.Rat).Quo(r.v, other.v)}
}

// Neg returns -r.
func (r Rat) Neg() Rat { return Rat{v: new(big.Rat).Neg(r.v)} }

// Inv returns the reciprocal of r. Panics with ErrDivByZero if r is zero.
func (r Rat) Inv() Rat {
	if r.IsZero() {
		panic(ErrDivByZero)
	}
	return Rat{v: new(big.Rat).Inv(r.v)}
}

// Abs returns |r|.
func (r Rat) Abs() Rat {
	if r.Sign() < 0 {
		return r.Neg()
	}
	return r
}

// Sign returns -1, 0, or 1 according to the sign of r.
func (r Rat) Sign() int { return r.v.Sign() }

// IsZero reports whether r == 0.
func (r Rat) IsZero() bool { return r.v.Sign() == 0 }

// Floor returns the largest integer k such that k <= r.
func (r Rat) Floor() *big.Int {
	n, d := r.v.Num(), r.v.Denom()
	if d.Cmp(big.NewInt(1)) == 0 {
		return new(big.Int).Set(n)
	}
	q := new(big.Int)
	m := new(big.Int)
	q.QuoRem(n, d, m)
	if n.Sign() < 0 && m.Sign() != 0 {
		q.Sub(q, big.NewInt(1))
	}
	return q
}

// Ceil returns the smallest integer k such that k >= r.
func (r Rat) Ceil() *big.Int {
	n, d := r.v.Num(), r.v.Denom()
	if d.Cmp(big.NewInt(1)) == 0 {
		return new(big.Int).Set(n)
	}
	q := new(big.Int)
	m := new(big.Int)
	q.QuoRem(n, d, m)
	if n.Sign() > 0 && m.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}

// Round returns the closest integer to r, rounding exact halves towards +inf.
func (r Rat) Round() *big.Int {
	return r.Add(Half()).Floor()
}

// Cmp returns -1, 0, or 1 according to whether r < other, r == other, or r > other.
func (r Rat) Cmp(other Rat) int { return r.v.Cmp(other.v) }

// Equal reports whether r and other are the same rational.
func (r Rat) Equal(other Rat) bool { return r.v.Cmp(other.v) == 0 }

// Less reports whether r < other.
func (r Rat) Less(other Rat) bool { return r.Cmp(other) < 0 }

// Int64Low returns the low 64 bits of the two's-complement numerator,
// i.e. the integer value of r reduced modulo 2^64 with sign preserved.
// Callers must ensure Denominator() == 1 before relying on this (the
// enumeration's first-coordinate convention always does).
func (r Rat) Int64Low() int64 {
	n := r.v.Num()
	masked := new(big.Int).And(n, maskU64)
	u := masked.Uint64()
	return int64(u)
}

var maskU64 = new(big.Int).SetUint64(^uint64(0))

// String renders r as "n" when the denominator is 1, or "n/d" otherwise.
func (r Rat) String() string {
	if r.v.IsInt() {
		return r.v.Num().String()
	}
	return fmt.Sprintf("%s/%s", r.v.Num().String(), r.v.Denom().String())
}

// Float64 returns the nearest float64 approximation of r, for diagnostics only.
func (r Rat) Float64() float64 {
	f, _ := r.v.Float64()
	return f
}
