// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ring implements the modular integer ring ℤ/2ⁿ that the rest of
// the module is built on, for n ∈ {8, 16, 32, 64, 128} (plus odd widths
// N<=63 used by the congruence solver for didactic cases).
//
// Go has no native 128-bit integer type, so Elem is backed by math/big
// rather than by a family of fixed-width wrapping types; every operation
// reduces its result modulo 2^Width so the stored representative always
// satisfies 0 <= v < 2^Width.
package ring

import (
	"fmt"
	"math/big"
)

// Width is the bit width of a ring ℤ/2ⁿ. The engine supports the
// power-of-two widths named in the specification, plus any odd width
// N<=63 used by the congruence solver's "Bits<N>" didactic cases.
type Width uint

// Standard widths dispatched on throughout the public API.
const (
	W8   Width = 8
	W16  Width = 16
	W32  Width = 32
	W64  Width = 64
	W128 Width = 128
)

// Valid reports whether w is a supported width: one of the standard
// dispatch widths, or any width from 1 to 63 (the solver's Bits<N> cases).
func (w Width) Valid() bool {
	switch w {
	case W8, W16, W32, W64, W128:
		return true
	default:
		return w >= 1 && w <= 63 // odd "Bits<N>" widths for the solver
	}
}

// modulus returns 2^w as a fresh big.Int.
func (w Width) modulus() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(w))
}

// mask returns 2^w - 1 as a fresh big.Int.
func (w Width) mask() *big.Int {
	m := w.modulus()
	return m.Sub(m, big.NewInt(1))
}

// Elem is an element of ℤ/2ⁿ, represented by its least non-negative
// representative. The zero value of Elem is not valid; use Zero, New or
// FromBigInt to construct one.
type Elem struct {
	width Width
	v     big.Int
}

// Width returns the bit width of the ring e belongs to.
func (e Elem) Width() Width { return e.width }

func (w Width) reduce(v *big.Int) big.Int {
	var r big.Int
	r.And(v, w.mask())
	return r
}

// Zero returns the additive identity of ℤ/2^w.
func Zero(w Width) Elem {
	return Elem{width: w}
}

// One returns the multiplicative identity of ℤ/2^w.
func One(w Width) Elem {
	return Elem{width: w, v: *big.NewInt(1)}
}

// Ones returns the all-ones bit pattern of ℤ/2^w, i.e. -1 mod 2^w.
func Ones(w Width) Elem {
	return Elem{width: w, v: *w.mask()}
}

// New constructs the element of ℤ/2^w congruent to v, reducing as needed.
// Negative v wrap around, matching two's-complement semantics.
func New(w Width, v int64) Elem {
	return Elem{width: w, v: w.reduce(big.NewInt(v))}
}

// FromBigInt constructs the element of ℤ/2^w congruent to v.
func FromBigInt(w Width, v *big.Int) Elem {
	return Elem{width: w, v: w.reduce(v)}
}

// BigInt returns the least non-negative representative of e as a *big.Int.
// The caller owns the result; mutating it does not affect e.
func (e Elem) BigInt() *big.Int {
	return new(big.Int).Set(&e.v)
}

func (e Elem) checkWidth(o Elem) {
	if e.width != o.width {
		panic(fmt.Sprintf("ring: mismatched widths %d and %d", e.width, o.width))
	}
}

// Add returns e+o mod 2^w.
func (e Elem) Add(o Elem) Elem {
	e.checkWidth(o)
	var r big.Int
	r.Add(&e.v, &o.v)
	return Elem{e.width, e.width.reduce(&r)}
}

// Sub returns e-o mod 2^w.
func (e Elem) Sub(o Elem) Elem {
	e.checkWidth(o)
	var r big.Int
	r.Sub(&e.v, &o.v)
	return Elem{e.width, e.width.reduce(&r)}
}

// Mul returns e*o mod 2^w.
func (e Elem) Mul(o Elem) Elem {
	e.checkWidth(o)
	var r big.Int
	r.Mul(&e.v, &o.v)
	return Elem{e.width, e.width.reduce(&r)}
}

// Div returns the ordinary integer (truncating) division of the
// representatives of e and o; this is not a modular inverse. Div panics
// if o is zero, matching native integer division.
func (e Elem) Div(o Elem) Elem {
	e.checkWidth(o)
	if o.v.Sign() == 0 {
		panic("ring: division by zero")
	}
	var r big.Int
	r.Div(&e.v, &o.v)
	return Elem{e.width, e.width.reduce(&r)}
}

// Rem returns the remainder of the ordinary integer division of e by o.
// Rem panics if o is zero.
func (e Elem) Rem(o Elem) Elem {
	e.checkWidth(o)
	if o.v.Sign() == 0 {
		panic("ring: division by zero")
	}
	var r big.Int
	r.Mod(&e.v, &o.v)
	return Elem{e.width, e.width.reduce(&r)}
}

// Neg returns -e mod 2^w (2^w-e, or 0 when e is 0).
func (e Elem) Neg() Elem {
	var r big.Int
	r.Neg(&e.v)
	return Elem{e.width, e.width.reduce(&r)}
}

// And returns the bitwise AND of e and o.
func (e Elem) And(o Elem) Elem {
	e.checkWidth(o)
	var r big.Int
	r.And(&e.v, &o.v)
	return Elem{e.width, r}
}

// Or returns the bitwise OR of e and o.
func (e Elem) Or(o Elem) Elem {
	e.checkWidth(o)
	var r big.Int
	r.Or(&e.v, &o.v)
	return Elem{e.width, r}
}

// Xor returns the bitwise XOR of e and o.
func (e Elem) Xor(o Elem) Elem {
	e.checkWidth(o)
	var r big.Int
	r.Xor(&e.v, &o.v)
	return Elem{e.width, r}
}

// Not returns the bitwise complement of e, reduced mod 2^w.
func (e Elem) Not() Elem {
	var r big.Int
	r.Not(&e.v)
	return Elem{e.width, e.width.reduce(&r)}
}

// Shl returns e shifted left by amt bits, reduced mod 2^w.
func (e Elem) Shl(amt uint) Elem {
	var r big.Int
	r.Lsh(&e.v, amt)
	return Elem{e.width, e.width.reduce(&r)}
}

// Shr returns e shifted right (logically) by amt bits.
func (e Elem) Shr(amt uint) Elem {
	var r big.Int
	r.Rsh(&e.v, amt)
	return Elem{e.width, r}
}

// IsZero reports whether e is the additive identity.
func (e Elem) IsZero() bool { return e.v.Sign() == 0 }

// Equal reports whether e and o denote the same class in the same ring.
func (e Elem) Equal(o Elem) bool {
	return e.width == o.width && e.v.Cmp(&o.v) == 0
}

// Cmp compares the least non-negative representatives of e and o,
// returning -1, 0 or +1. It panics if e and o belong to different widths.
func (e Elem) Cmp(o Elem) int {
	e.checkWidth(o)
	return e.v.Cmp(&o.v)
}

// Less reports whether e's representative is strictly less than o's.
func (e Elem) Less(o Elem) bool { return e.Cmp(o) < 0 }

// PrintNegative reports whether e should be displayed as a negative
// number, i.e. whether its high bit is set.
func (e Elem) PrintNegative() bool {
	return e.v.Bit(int(e.width)-1) == 1
}

// String renders e as its least non-negative representative or, when
// PrintNegative holds, as a minus sign followed by the representative of
// -e (sign-aware display).
func (e Elem) String() string {
	if e.PrintNegative() {
		n := e.Neg()
		return "-" + n.v.String()
	}
	return e.v.String()
}

// FromStringRadix parses s as a base-10 (optionally signed) literal in
// ℤ/2^w, reducing the result modulo 2^w.
func FromStringRadix(w Width, s string) (Elem, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Elem{}, fmt.Errorf("ring: %q is not a base-10 integer", s)
	}
	return FromBigInt(w, v), nil
}
