// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polynomial

import "github.com/ringmba/mba/ring"

// ZeroIdeal holds generators of the ideal of polynomial expressions over
// ℤ/2ⁿ that evaluate to 0 at every point. Every permutation polynomial on
// ℤ/2ⁿ has infinitely many representations differing by an element of
// this ideal; simplifying against it reduces a polynomial to a canonical
// representative.
type ZeroIdeal struct {
	n   int
	Gen []Polynomial
}

// N returns the bit width the ideal was built for.
func (z ZeroIdeal) N() int { return z.n }

// InitZeroIdeal builds the generators of the zero ideal over ℤ/2^w.
//
// For increasing even i, div accumulates ν2(i!) (the 2-adic valuation of
// i factorial, i.e. how many times 2 divides it), tracked incrementally
// via i's own trailing-zero count rather than refactoring i! from
// scratch each time. While the exponent e = n - div stays positive, the
// generator 2^e · ∏_{j<i} (X-j) is emitted; once div catches up to n the
// monic falling factorial itself (with no power-of-two multiplier) is
// emitted as the final, highest-degree generator and the construction
// stops.
func InitZeroIdeal(w ring.Width) ZeroIdeal {
	n := int(w)
	zi := ZeroIdeal{n: n}

	div := 0
	for i := 2; ; i += 2 {
		div += trailingZeros(i)

		if n <= div {
			p := One(w)
			j := ring.Zero(w)
			for k := 0; k < i; k++ {
				p.MulLin(j)
				j = j.Add(ring.One(w))
			}
			p.Truncate()
			zi.Gen = append(zi.Gen, p)
			break
		}

		e := n - div
		p := One(w)
		j := ring.Zero(w)
		for k := 0; k < i; k++ {
			p.MulLin(j)
			j = j.Add(ring.One(w))
		}
		p.ShlAssign(uint(e))
		p.Truncate()
		zi.Gen = append(zi.Gen, p)
	}

	return zi
}

func trailingZeros(i int) int {
	n := 0
	for i%2 == 0 {
		i /= 2
		n++
	}
	return n
}

// Simplified returns a simplified copy of p (see Simplify).
func (p Polynomial) Simplified(zi ZeroIdeal) Polynomial {
	q := p.Clone()
	q.Simplify(zi)
	return q
}

// Simplify reduces p in place by repeatedly subtracting a multiple of a
// zero-ideal generator that cancels p's current leading coefficient,
// working from the highest-degree generator down to the lowest. Each
// generator's own leading coefficient need not be a unit of ℤ/2ⁿ (it is
// an admissible zero divisor, by construction a power of two), so a
// cancellation is only applied when the ordinary integer quotient is
// non-zero.
func (p *Polynomial) Simplify(zi ZeroIdeal) {
	coeff := p.Len() - 1

	for gi := len(zi.Gen) - 1; gi >= 0; gi-- {
		gen := zi.Gen[gi]
		genLen := gen.Len() - 1

		for coeff >= genLen {
			m := p.coeffs[coeff].Div(gen.coeffs[genLen])
			if !m.IsZero() {
				for k := 0; k <= genLen; k++ {
					idx := coeff - genLen + k
					p.coeffs[idx] = p.coeffs[idx].Sub(m.Mul(gen.coeffs[k]))
				}
			}
			coeff--
		}
	}

	p.Truncate()
}

// Reduce lowers the degree of p as much as possible using only the
// highest-degree zero-ideal generator, the operation Compose needs after
// every Horner step to keep intermediate degree bounded.
func (p *Polynomial) Reduce(zi ZeroIdeal) {
	gen := zi.Gen[len(zi.Gen)-1]
	genLen := gen.Len() - 1

	for p.Len() >= gen.Len() {
		c := p.coeffs[p.Len()-1]
		p.coeffs = p.coeffs[:p.Len()-1]
		for i := 0; i < genLen; i++ {
			j := p.Len() - genLen + i
			p.coeffs[j] = p.coeffs[j].Sub(c.Mul(gen.coeffs[i]))
		}
	}

	p.Truncate()
}
