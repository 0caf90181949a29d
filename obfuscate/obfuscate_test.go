// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obfuscate

import (
	"math/rand/v2"
	"testing"

	"github.com/ringmba/mba/expr"
	"github.com/ringmba/mba/ring"
)

// checkSameFunction verifies original and obfuscated agree on every
// valuation over the cartesian product of the given sample points for
// each variable.
func checkSameFunction(t *testing.T, w ring.Width, original, obfuscated *expr.Expr, vars []string, samples []int64) {
	t.Helper()
	val := expr.NewValuation(w, append(original.Vars(), obfuscated.Vars()...))
	var rec func(i int)
	rec = func(i int) {
		if i == len(vars) {
			want := original.Eval(val)
			got := obfuscated.Eval(val)
			if !want.Equal(got) {
				t.Fatalf("mismatch for %v: want %v got %v", describeVal(vars, val, w), want, got)
			}
			return
		}
		for _, s := range samples {
			val.Set(vars[i], ring.New(w, s))
			rec(i + 1)
		}
	}
	rec(0)
}

func describeVal(vars []string, val *expr.Valuation, w ring.Width) string {
	s := ""
	for _, v := range vars {
		s += v + "=" + val.Get(v).String() + " "
	}
	return s
}

func TestObfuscatePreservesSemantics(t *testing.T) {
	w := ring.W8
	original, err := expr.Parse(w, "x + y")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	e, err := expr.Parse(w, "x + y")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	rnd := rand.New(rand.NewPCG(11, 22))
	cfg := Config{AuxVarCount: 2, RewriteDepth: 2, RewriteCount: 16, Attempts: 64}
	out := Obfuscate(e, cfg, rnd)

	checkSameFunction(t, w, original, out, []string{"x", "y"}, []int64{0, 1, 2, 5, 17, 255})
}

func TestObfuscateLeavesNonLinearStructureAlone(t *testing.T) {
	w := ring.W8
	original, err := expr.Parse(w, "(x + y) * z")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	e, err := expr.Parse(w, "(x + y) * z")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	rnd := rand.New(rand.NewPCG(3, 4))
	cfg := Config{AuxVarCount: 1, RewriteDepth: 2, RewriteCount: 16, Attempts: 64}
	out := Obfuscate(e, cfg, rnd)

	if out.Kind() != expr.Mul {
		t.Fatalf("expected top-level Mul to survive obfuscation, got %v", out.Kind())
	}
	checkSameFunction(t, w, original, out, []string{"x", "y", "z"}, []int64{0, 1, 2, 5, 17})
}

func TestObfuscateSharedSubtreeRewrittenOnce(t *testing.T) {
	w := ring.W8
	shared := expr.VarExpr("x")
	original := expr.AddExpr(shared, expr.AddExpr(shared, expr.VarExpr("y")))

	sharedCopy := expr.VarExpr("x")
	e := expr.AddExpr(sharedCopy, expr.AddExpr(sharedCopy, expr.VarExpr("y")))

	rnd := rand.New(rand.NewPCG(5, 6))
	cfg := Config{AuxVarCount: 1, RewriteDepth: 2, RewriteCount: 16, Attempts: 64}
	out := Obfuscate(e, cfg, rnd)

	checkSameFunction(t, w, original, out, []string{"x", "y"}, []int64{0, 1, 3, 9, 200})
}

func TestAuxVarNames(t *testing.T) {
	names := auxVarNames(3)
	want := []string{"aux0", "aux1", "aux2"}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("auxVarNames(3)[%d] = %q, want %q", i, names[i], n)
		}
	}
}
