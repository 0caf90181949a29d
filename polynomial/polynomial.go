// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package polynomial implements coefficient-vector polynomials over the
// ring ℤ/2ⁿ, the generators of the null ideal on that ring (the "zero
// ideal"), and simplification modulo it.
package polynomial

import (
	"fmt"
	"strings"

	"github.com/ringmba/mba/ring"
)

// Polynomial is a dense coefficient-vector polynomial Σ coeffs[i]·Xⁱ over
// ℤ/2ⁿ. Most operations below assume the polynomial is truncated (no
// trailing zero leading coefficients); construct one with Zero,
// Constant, or FromCoeffs and call Truncate after any manual coefficient
// edit to restore that invariant.
type Polynomial struct {
	width  ring.Width
	coeffs []ring.Elem
}

// Zero returns the zero polynomial over ℤ/2^w.
func Zero(w ring.Width) Polynomial {
	return Polynomial{width: w}
}

// Constant returns the degree-0 polynomial p(X)=c.
func Constant(c ring.Elem) Polynomial {
	return Polynomial{width: c.Width(), coeffs: []ring.Elem{c}}
}

// One returns the constant polynomial p(X)=1 over ℤ/2^w.
func One(w ring.Width) Polynomial {
	return Constant(ring.One(w))
}

// Identity returns the polynomial p(X)=X over ℤ/2^w.
func Identity(w ring.Width) Polynomial {
	return FromCoeffs(w, []ring.Elem{ring.Zero(w), ring.One(w)})
}

// FromCoeffs copies cs (ascending degree, cs[i] is the Xⁱ coefficient)
// into a new Polynomial over ℤ/2^w.
func FromCoeffs(w ring.Width, cs []ring.Elem) Polynomial {
	coeffs := make([]ring.Elem, len(cs))
	copy(coeffs, cs)
	return Polynomial{width: w, coeffs: coeffs}
}

// FromInts is a convenience constructor for literal coefficient lists in
// tests and callers building small fixed polynomials.
func FromInts(w ring.Width, cs ...int64) Polynomial {
	coeffs := make([]ring.Elem, len(cs))
	for i, c := range cs {
		coeffs[i] = ring.New(w, c)
	}
	return Polynomial{width: w, coeffs: coeffs}
}

// Width returns the ring width p is defined over.
func (p Polynomial) Width() ring.Width { return p.width }

// Len returns the number of coefficients (degree+1, or 0 for the zero
// polynomial).
func (p Polynomial) Len() int { return len(p.coeffs) }

// Degree returns the degree of p. The degree of the zero polynomial is
// defined to be -1.
func (p Polynomial) Degree() int { return len(p.coeffs) - 1 }

// IsZero reports whether p has no coefficients.
func (p Polynomial) IsZero() bool { return len(p.coeffs) == 0 }

// IsID reports whether p is exactly the identity polynomial X (not just
// equal to it after truncation quirks — coeffs must be precisely [0,1]).
func (p Polynomial) IsID() bool {
	return len(p.coeffs) == 2 && p.coeffs[0].IsZero() && p.coeffs[1].Equal(ring.One(p.width))
}

// Coeffs returns the backing coefficient slice. Callers must not retain
// it across mutations of p.
func (p Polynomial) Coeffs() []ring.Elem { return p.coeffs }

// Clone returns a deep copy of p.
func (p Polynomial) Clone() Polynomial {
	return FromCoeffs(p.width, p.coeffs)
}

// Truncate removes leading (high-degree) zero coefficients in place.
func (p *Polynomial) Truncate() {
	n := len(p.coeffs)
	for n > 0 && p.coeffs[n-1].IsZero() {
		n--
	}
	p.coeffs = p.coeffs[:n]
}

// Truncated returns a truncated copy of p.
func (p Polynomial) Truncated() Polynomial {
	q := p.Clone()
	q.Truncate()
	return q
}

// Eval evaluates p at x using Horner's method.
func (p Polynomial) Eval(x ring.Elem) ring.Elem {
	if len(p.coeffs) == 0 {
		return ring.Zero(p.width)
	}
	r := p.coeffs[len(p.coeffs)-1]
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		r = r.Mul(x).Add(p.coeffs[i])
	}
	return r
}

// MulLin multiplies p by (X-a) in place: p(x)*(x-a) = p(x)*x - p(x)*a.
// Shifting every coefficient up by one degree (prepending a zero)
// performs the "multiply by x", and the loop below then subtracts a
// times the pre-shift coefficient from each resulting slot.
func (p *Polynomial) MulLin(a ring.Elem) {
	p.coeffs = append([]ring.Elem{ring.Zero(p.width)}, p.coeffs...)
	for i := 0; i < len(p.coeffs)-1; i++ {
		m := a.Mul(p.coeffs[i+1])
		p.coeffs[i] = p.coeffs[i].Sub(m)
	}
}

// Derivative computes the formal derivative of p: coefficient a_i at
// degree i (i>=1) becomes i*a_i at degree i-1; a_0 is dropped.
func (p Polynomial) Derivative() Polynomial {
	if len(p.coeffs) == 0 {
		return Zero(p.width)
	}
	coeffs := make([]ring.Elem, len(p.coeffs)-1)
	d := ring.One(p.width)
	for i, c := range p.coeffs[1:] {
		coeffs[i] = c.Mul(d)
		d = d.Add(ring.One(p.width))
	}
	return Polynomial{width: p.width, coeffs: coeffs}
}

// Add returns p+o, aligning by degree so the shorter operand's missing
// high coefficients are treated as zero.
func (p Polynomial) Add(o Polynomial) Polynomial {
	minP, maxP := p, o
	if p.Len() >= o.Len() {
		minP, maxP = o, p
	}

	coeffs := make([]ring.Elem, maxP.Len())
	for i := range minP.coeffs {
		coeffs[i] = p.coeffs[i].Add(o.coeffs[i])
	}
	copy(coeffs[minP.Len():], maxP.coeffs[minP.Len():])
	return Polynomial{width: p.width, coeffs: coeffs}
}

// AddAssign adds o into p in place.
func (p *Polynomial) AddAssign(o Polynomial) {
	*p = p.Add(o)
}

// AddConstAssign adds the constant c into p's X^0 coefficient in place,
// growing p if it was the zero polynomial.
func (p *Polynomial) AddConstAssign(c ring.Elem) {
	if len(p.coeffs) == 0 {
		p.coeffs = []ring.Elem{c}
		return
	}
	p.coeffs[0] = p.coeffs[0].Add(c)
}

// Sub returns p-o, aligning by degree like Add.
func (p Polynomial) Sub(o Polynomial) Polynomial {
	n := p.Len()
	if o.Len() > n {
		n = o.Len()
	}
	coeffs := make([]ring.Elem, n)
	for i := 0; i < n; i++ {
		var l, r ring.Elem
		if i < p.Len() {
			l = p.coeffs[i]
		} else {
			l = ring.Zero(p.width)
		}
		if i < o.Len() {
			r = o.coeffs[i]
		} else {
			r = ring.Zero(p.width)
		}
		coeffs[i] = l.Sub(r)
	}
	return Polynomial{width: p.width, coeffs: coeffs}
}

// SubAssign subtracts o from p in place.
func (p *Polynomial) SubAssign(o Polynomial) {
	*p = p.Sub(o)
}

// Mul returns p*o via the schoolbook convolution of coefficients.
func (p Polynomial) Mul(o Polynomial) Polynomial {
	if p.IsZero() || o.IsZero() {
		return Zero(p.width)
	}
	coeffs := make([]ring.Elem, p.Len()+o.Len()-1)
	for i := range coeffs {
		coeffs[i] = ring.Zero(p.width)
	}
	for i, c := range o.coeffs {
		for j, d := range p.coeffs {
			coeffs[i+j] = coeffs[i+j].Add(c.Mul(d))
		}
	}
	return Polynomial{width: p.width, coeffs: coeffs}
}

// MulAssign multiplies p by o in place.
func (p *Polynomial) MulAssign(o Polynomial) {
	*p = p.Mul(o)
}

// ShlAssign shifts every coefficient of p left by m bits in place.
func (p *Polynomial) ShlAssign(m uint) {
	for i, c := range p.coeffs {
		p.coeffs[i] = c.Shl(m)
	}
}

// String renders p in descending-degree "aX^k + ... + a0" form, omitting
// zero terms. The zero polynomial prints as "0".
func (p Polynomial) String() string {
	var sb strings.Builder
	first := true
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if c.IsZero() {
			continue
		}
		if !first {
			sb.WriteString(" + ")
		}
		first = false
		if i == 0 {
			fmt.Fprintf(&sb, "%s", c.String())
		} else {
			fmt.Fprintf(&sb, "%sx^%d", c.String(), i)
		}
	}
	if first {
		sb.WriteString("0")
	}
	return sb.String()
}

// ToTex renders p as a LaTeX expression, omitting a coefficient of 1 and
// an exponent of 1.
func (p Polynomial) ToTex() string {
	var sb strings.Builder
	first := true
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if c.IsZero() {
			continue
		}
		if !first {
			sb.WriteString("+")
		}
		first = false
		writeTexTerm(&sb, i, c)
	}
	if first {
		sb.WriteString("0")
	}
	return sb.String()
}

func writeTexTerm(sb *strings.Builder, e int, c ring.Elem) {
	if e == 0 {
		sb.WriteString(c.String())
		return
	}
	if !c.Equal(ring.One(c.Width())) {
		sb.WriteString(c.String())
	}
	sb.WriteString("X")
	if e != 1 {
		fmt.Fprintf(sb, "^{%d}", e)
	}
}
