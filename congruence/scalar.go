// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package congruence

import "github.com/ringmba/mba/ring"

// ScalarSolve solves a*x ≡ b (mod 2^w) for x. It returns the particular
// solution x and a kernel generator k such that the full solution set is
// {x + t*k : t ∈ ℤ/2^w}. ok is false when the congruence has no solution.
//
// The modulus 2^w does not fit in an Elem, so the first step of the
// extended Euclidean algorithm on (a, 2^w) is rewritten as the
// algebraically equivalent ((0-a)/a)+1, standing in for 2^w/a.
func ScalarSolve(a, b ring.Elem) (x, k ring.Elem, ok bool) {
	w := a.Width()
	if a.IsZero() {
		if b.IsZero() {
			return ring.Zero(w), ring.One(w), true
		}
		return ring.Elem{}, ring.Elem{}, false
	}

	oldR, r := ring.Zero(w), a
	oldT, t := ring.Zero(w), ring.One(w)
	q := a.Neg().Div(a).Add(ring.One(w)) // ((0-a)/a)+1, standing in for 2^w/a

	for {
		oldR, r = r, oldR.Sub(q.Mul(r))
		oldT, t = t, oldT.Sub(q.Mul(t))
		if r.IsZero() {
			break
		}
		q = oldR.Div(r)
	}

	// oldR is gcd(a, 2^w); oldT is the Bezout coefficient a*oldT = gcd (mod 2^w).
	gcd := oldR
	x = b.Div(gcd).Mul(oldT)
	if !a.Mul(x).Equal(b) {
		return ring.Elem{}, ring.Elem{}, false
	}

	// t is 2^w/gcd mod 2^w, the generator of the kernel {y : a*y ≡ 0}.
	return x, t, true
}
