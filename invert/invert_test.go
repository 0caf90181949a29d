// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invert

import (
	"math/rand/v2"
	"testing"

	"github.com/ringmba/mba/polynomial"
	"github.com/ringmba/mba/ring"
)

func TestIsPermPoly(t *testing.T) {
	// p(X) = X is the simplest permutation polynomial.
	if !IsPermPoly(polynomial.Identity(ring.W8)) {
		t.Error("Identity() should be a permutation polynomial")
	}
	// p(X) = 2X is not a permutation (a_1 even).
	if IsPermPoly(polynomial.FromInts(ring.W8, 0, 2)) {
		t.Error("2X should not be a permutation polynomial")
	}
}

func checkIsPermByBruteForce(t *testing.T, p polynomial.Polynomial) {
	t.Helper()
	seen := make(map[string]bool)
	for x := int64(0); x < 256; x++ {
		v := p.Eval(ring.New(ring.W8, x)).String()
		if seen[v] {
			t.Fatalf("polynomial %s is not a permutation: collision at value %s", p, v)
		}
		seen[v] = true
	}
}

func TestIdentityInvertsToItself(t *testing.T) {
	p := polynomial.Identity(ring.W8)
	for _, alg := range []Algorithm{Newton, Fermat, Lagrange} {
		q, err := Invert(p, alg)
		if err != nil {
			t.Fatalf("%s: %v", alg, err)
		}
		if !q.IsID() {
			t.Errorf("%s: inverse of X should be X, got %s", alg, q)
		}
	}
}

func TestInvertVerifiesAgainstBruteForce(t *testing.T) {
	// p(X) = X + 2X^2: a_1=1 (odd), single even-indexed term a_2=2 (even sum),
	// no odd-indexed terms beyond a_1. A valid permutation polynomial.
	p := polynomial.FromInts(ring.W8, 0, 1, 2)
	checkIsPermByBruteForce(t, p)

	for _, alg := range []Algorithm{Newton, Fermat, Lagrange} {
		q, err := Invert(p, alg)
		if err != nil {
			t.Fatalf("%s: %v", alg, err)
		}
		for x := int64(0); x < 256; x++ {
			xe := ring.New(ring.W8, x)
			if !q.Eval(p.Eval(xe)).Equal(xe) {
				t.Fatalf("%s: q(p(%d)) != %d", alg, x, x)
			}
		}
	}
}

func TestInvertRejectsNonPermutation(t *testing.T) {
	p := polynomial.FromInts(ring.W8, 0, 2) // a_1 even
	if _, err := Invert(p, Newton); err != ErrNotPermutation {
		t.Errorf("expected ErrNotPermutation, got %v", err)
	}
}

func TestRandPolyIsPermutation(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 5; i++ {
		p := RandPoly(ring.W8, rnd)
		if !IsPermPoly(p) {
			t.Fatalf("RandPoly produced a non-permutation polynomial: %s", p)
		}
		checkIsPermByBruteForce(t, p)
	}
}
