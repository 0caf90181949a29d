// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package invert implements the permutation-polynomial predicate and the
// three inversion algorithms (Newton, Fermat/order, Lagrange) used to
// find the compositional inverse of a permutation polynomial on ℤ/2ⁿ.
package invert

import (
	"errors"
	"fmt"

	"github.com/ringmba/mba/congruence"
	"github.com/ringmba/mba/linalg"
	"github.com/ringmba/mba/polynomial"
	"github.com/ringmba/mba/ring"
)

// ErrNotPermutation is returned when the input polynomial fails the
// permutation-polynomial predicate.
var ErrNotPermutation = errors.New("invert: not a permutation polynomial")

// Algorithm selects one of the three inversion strategies.
type Algorithm string

const (
	Newton   Algorithm = "Newton"
	Fermat   Algorithm = "Fermat"
	Lagrange Algorithm = "Lagrange"
)

// oddSum reports whether an odd number of coeffs[start], coeffs[start+2],
// ... are themselves odd.
func oddSum(coeffs []ring.Elem, start int) bool {
	acc := false
	for i := start; i < len(coeffs); i += 2 {
		if coeffs[i].BigInt().Bit(0) == 1 {
			acc = !acc
		}
	}
	return acc
}

// IsPermPoly reports whether f is a permutation polynomial of ℤ/2ⁿ, via
// the classic Rivest criterion: the X^1 coefficient is odd, the sum of
// even-indexed coefficients from X^2 up is even, and the sum of
// odd-indexed coefficients from X^3 up is even.
func IsPermPoly(f polynomial.Polynomial) bool {
	coeffs := f.Coeffs()
	if len(coeffs) < 2 || coeffs[1].BigInt().Bit(0) != 1 {
		return false
	}
	return !oddSum(coeffs, 2) && !oddSum(coeffs, 3)
}

// Compose computes p∘q = p(q(X)) via Horner's method, reducing against
// zi's highest-degree generator after every step to keep the
// intermediate degree bounded.
func Compose(p, q polynomial.Polynomial, zi polynomial.ZeroIdeal) polynomial.Polynomial {
	coeffs := p.Coeffs()
	if len(coeffs) == 0 {
		return polynomial.Zero(p.Width())
	}

	r := polynomial.Constant(coeffs[len(coeffs)-1])
	for i := len(coeffs) - 2; i >= 0; i-- {
		r.MulAssign(q)
		r.AddConstAssign(coeffs[i])
		r.Reduce(zi)
	}
	return r
}

// InvertNewton inverts the permutation polynomial p by Newton's method,
// starting from the initial guess Q(X)=X and iterating
// q_{k+1} = q_k - q_k' * (p(q_k) - X), simplifying by zi every step.
// Iterations are bounded by 2*zi.N() as a guard against a non-converging
// input.
func InvertNewton(p polynomial.Polynomial, zi polynomial.ZeroIdeal) (polynomial.Polynomial, error) {
	w := p.Width()
	q := polynomial.Identity(w)

	for it := 0; it <= zi.N()*2; it++ {
		comp := Compose(p, q, zi)
		comp = comp.Simplified(zi)

		if comp.IsID() {
			return q, nil
		}

		comp.SubAssign(polynomial.Identity(w))

		qd := q.Derivative()
		correction := qd.Mul(comp)
		q.SubAssign(correction)
		q.Simplify(zi)
	}

	return polynomial.Polynomial{}, fmt.Errorf("invert: Newton's method failed to converge for %s", p)
}

// InvertFermat inverts p by treating it as an element of finite order in
// the permutation group of ℤ/2ⁿ under composition: it repeatedly squares
// f_{k+1} = f_k ∘ (f_k ∘ p), accumulating p^(2^(k+1)-1), and stops as
// soon as f_k ∘ p is the identity, at which point the accumulator f_k
// itself is p^{-1}.
func InvertFermat(p polynomial.Polynomial, zi polynomial.ZeroIdeal) (polynomial.Polynomial, error) {
	f := p.Clone()
	for i := 0; i < zi.N(); i++ {
		g := Compose(f, p, zi).Simplified(zi)
		if g.IsID() {
			return f, nil
		}
		f = Compose(f, g, zi).Simplified(zi)
	}
	return polynomial.Polynomial{}, fmt.Errorf("invert: failed to invert %s by Fermat's method", p)
}

// InvertLagrange inverts p by interpolation: it builds a Vandermonde
// system A[r,c] = p(r)^c over a degree one less than the length of zi's
// highest-degree generator, with b[r] = r, solves it via the congruence
// solver, and returns the offset solution simplified against zi. Any
// kernel vector corresponds to a polynomial that should itself be in the
// zero ideal; this is not re-verified here (the caller's own
// compose-and-check step is the authoritative verification).
func InvertLagrange(p polynomial.Polynomial, zi polynomial.ZeroIdeal) polynomial.Polynomial {
	w := p.Width()
	n := zi.Gen[len(zi.Gen)-1].Len()
	rows, cols := n, n

	a := linalg.NewMatrix(w, rows, cols)
	x := ring.Zero(w)
	for r := 0; r < rows; r++ {
		j := ring.One(w)
		px := p.Eval(x)
		for c := 0; c < cols; c++ {
			a.Set(r, c, j)
			j = j.Mul(px)
		}
		x = x.Add(ring.One(w))
	}

	b := linalg.NewVector(w, rows)
	x = ring.Zero(w)
	for r := 0; r < rows; r++ {
		b.Set(r, x)
		x = x.Add(ring.One(w))
	}

	l := congruence.SolveCongruences(&a, b)
	return polynomial.FromCoeffs(w, l.Offset.Entries()).Simplified(zi)
}

// Invert dispatches to one of the three algorithms and always verifies
// the result by composing it with p and checking the composition
// simplifies to the identity.
func Invert(p polynomial.Polynomial, alg Algorithm) (polynomial.Polynomial, error) {
	if !IsPermPoly(p) {
		return polynomial.Polynomial{}, ErrNotPermutation
	}

	zi := polynomial.InitZeroIdeal(p.Width())
	p = p.Simplified(zi)

	var q polynomial.Polynomial
	var err error
	switch alg {
	case Newton:
		q, err = InvertNewton(p, zi)
	case Fermat:
		q, err = InvertFermat(p, zi)
	case Lagrange:
		q = InvertLagrange(p, zi)
	default:
		return polynomial.Polynomial{}, fmt.Errorf("invert: unknown algorithm %q", alg)
	}
	if err != nil {
		return polynomial.Polynomial{}, err
	}

	if !Compose(p, q, zi).Simplified(zi).IsID() {
		return polynomial.Polynomial{}, fmt.Errorf("invert: composed result is not the identity")
	}

	return q, nil
}
