// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"math/rand/v2"
	"testing"

	"github.com/ringmba/mba/ring"
	"github.com/ringmba/mba/uexpr"
)

func mustParseLU(t *testing.T, w ring.Width, s string) uexpr.LUExpr {
	t.Helper()
	l, err := uexpr.ParseLUExpr(w, s)
	if err != nil {
		t.Fatalf("ParseLUExpr(%q): %v", s, err)
	}
	return l
}

// checkPointwiseEqual verifies a and b agree on every boolean valuation
// of vars, which by linearity of uniform expressions implies they agree
// over all of ℤ/2ⁿ.
func checkPointwiseEqual(t *testing.T, w ring.Width, a, b uexpr.LUExpr, vars []string) {
	t.Helper()
	val := uexpr.NewValuation(w, vars)
	rows := 1 << len(vars)
	for i := 0; i < rows; i++ {
		for j, name := range vars {
			if (i>>j)&1 == 0 {
				val.Set(name, ring.Zero(w))
			} else {
				val.Set(name, ring.Ones(w))
			}
		}
		if !a.Eval(val).Equal(b.Eval(val)) {
			t.Fatalf("mismatch at row %d: %v != %v", i, a.Eval(val), b.Eval(val))
		}
	}
}

func TestRewriteKnownIdentity(t *testing.T) {
	// x + y == (x^y) + 2*(x&y), the classic full-adder identity.
	w := ring.W8
	e := mustParseLU(t, w, "x + y")
	ops := []uexpr.LUExpr{
		mustParseLU(t, w, "x ^ y"),
		mustParseLU(t, w, "2*(x & y)"),
	}

	r, ok := Rewrite(e, ops, false, nil)
	if !ok {
		t.Fatal("expected a rewrite to be found")
	}
	checkPointwiseEqual(t, w, e, r, []string{"x", "y"})
}

func TestRewriteNoSolution(t *testing.T) {
	w := ring.W8
	e := mustParseLU(t, w, "x + 1")
	ops := []uexpr.LUExpr{
		mustParseLU(t, w, "x ^ y"),
	}
	if _, ok := Rewrite(e, ops, false, nil); ok {
		t.Error("expected no rewrite: x+1 cannot be built from x^y alone")
	}
}

func TestRewriteRandomizedStillEqual(t *testing.T) {
	w := ring.W8
	e := mustParseLU(t, w, "x + y")
	ops := []uexpr.LUExpr{
		mustParseLU(t, w, "x ^ y"),
		mustParseLU(t, w, "2*(x & y)"),
		mustParseLU(t, w, "x | y"),
	}
	rnd := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 5; i++ {
		r, ok := Rewrite(e, ops, true, rnd)
		if !ok {
			t.Fatal("expected a rewrite to be found")
		}
		checkPointwiseEqual(t, w, e, r, []string{"x", "y"})
	}
}

func TestRandomUExprRespectsDepth(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 9))
	vars := []string{"x", "y", "z"}
	for i := 0; i < 50; i++ {
		e := RandomUExpr(vars, 3, rnd)
		if depthOf(e) > 3 {
			t.Fatalf("generated UExpr exceeds max depth: %s", e)
		}
	}
}

func depthOf(e *uexpr.Expr) int {
	if e.IsUnary() && e.Kind() != uexpr.Not {
		return 0
	}
	if e.Kind() == uexpr.Not {
		return 1 + depthOf(e.Left())
	}
	if e.Left() == nil {
		return 0
	}
	l, r := depthOf(e.Left()), depthOf(e.Right())
	if l > r {
		return 1 + l
	}
	return 1 + r
}

func TestRewriteWithBankEqualOrExhausted(t *testing.T) {
	w := ring.W8
	e := mustParseLU(t, w, "x + y")
	rnd := rand.New(rand.NewPCG(3, 4))
	cfg := Config{Attempts: 64, BankSize: 16, MaxDepth: 2}

	r, err := RewriteWithBank(e, nil, false, rnd, cfg)
	if err != nil {
		// A bank of random operations over {x,y} is not guaranteed to
		// span x+y; this harness is probabilistic by design. What we do
		// require is that it either succeeds with a pointwise-equal
		// result, or reports ErrExhausted, never silently wrong output.
		if err != ErrExhausted {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}
	checkPointwiseEqual(t, w, e, r, []string{"x", "y"})
}
