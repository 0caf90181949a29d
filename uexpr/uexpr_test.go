// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uexpr

import (
	"testing"

	"github.com/ringmba/mba/ring"
)

func TestParseEval(t *testing.T) {
	cases := []struct {
		in   string
		x, y int64
		want int64
	}{
		{"x & y", 6, 3, 2},
		{"x | y", 6, 3, 7},
		{"x ^ y", 6, 3, 5},
		{"~x", 6, 0, ^int64(6)},
		{"~x & y", 5, 3, (^int64(5)) & 3},
		{"(x | y) & ~(x & y)", 6, 3, (6 | 3) & ^(6 & 3)},
	}

	for _, c := range cases {
		e, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		v := NewValuation(ring.W8, []string{"x", "y"})
		v.Set("x", ring.New(ring.W8, c.x))
		v.Set("y", ring.New(ring.W8, c.y))
		got := e.Eval(v)
		want := ring.New(ring.W8, c.want)
		if !got.Equal(want) {
			t.Errorf("Parse(%q).Eval = %v, want %v", c.in, got, want)
		}
	}
}

func TestOnesLiteral(t *testing.T) {
	e, err := Parse("-1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if e.Kind() != Ones {
		t.Fatalf("got kind %v, want Ones", e.Kind())
	}
	v := NewValuation(ring.W8, nil)
	got := e.Eval(v)
	want := ring.New(ring.W8, -1)
	if !got.Equal(want) {
		t.Errorf("-1 evaluated to %v, want %v", got, want)
	}
}

func TestEqualStructural(t *testing.T) {
	a, _ := Parse("x & ~y")
	b, _ := Parse("x&~y")
	c, _ := Parse("x & ~z")
	if !a.Equal(b) {
		t.Error("expected structurally equal trees to compare equal")
	}
	if a.Equal(c) {
		t.Error("expected different variable names to compare unequal")
	}
}

func TestVarsDeduped(t *testing.T) {
	e, _ := Parse("x & y | x ^ ~y")
	got := SortedVars(e.Vars(nil))
	want := []string{"x", "y"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Vars = %v, want %v", got, want)
	}
}

func TestRenameVar(t *testing.T) {
	e, _ := Parse("x & y")
	e.RenameVar("x", "z")
	if got := e.String(); got != "z & y" {
		t.Errorf("after rename: %q, want %q", got, "z & y")
	}
}

func TestLUExprParseEval(t *testing.T) {
	l, err := ParseLUExpr(ring.W8, "2*x + 3*(x&y) - 5")
	if err != nil {
		t.Fatalf("ParseLUExpr: %v", err)
	}
	v := NewValuation(ring.W8, []string{"x", "y"})
	v.Set("x", ring.New(ring.W8, 6))
	v.Set("y", ring.New(ring.W8, 3))

	got := l.Eval(v)
	want := ring.New(ring.W8, 2*6+3*(6&3)-5)
	if !got.Equal(want) {
		t.Errorf("eval = %v, want %v", got, want)
	}
}

func TestLUExprNormalizeMergesAndDrops(t *testing.T) {
	x := VarExpr("x")
	l := LUExpr{width: ring.W8, Terms: []Term{
		{Coeff: ring.New(ring.W8, 2), Expr: x},
		{Coeff: ring.New(ring.W8, -2), Expr: VarExpr("x")},
		{Coeff: ring.New(ring.W8, 5), Expr: VarExpr("y")},
	}}
	n := l.Normalize()
	if len(n.Terms) != 1 {
		t.Fatalf("got %d terms, want 1 (x should cancel)", len(n.Terms))
	}
	if n.Terms[0].Expr.Name() != "y" {
		t.Errorf("remaining term is %q, want y", n.Terms[0].Expr.Name())
	}
}

func TestLUExprBareConstant(t *testing.T) {
	l, err := ParseLUExpr(ring.W8, "7")
	if err != nil {
		t.Fatalf("ParseLUExpr: %v", err)
	}
	v := NewValuation(ring.W8, nil)
	got := l.Eval(v)
	if want := ring.New(ring.W8, 7); !got.Equal(want) {
		t.Errorf("eval = %v, want %v", got, want)
	}
}
