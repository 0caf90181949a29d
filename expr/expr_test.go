// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"testing"

	"github.com/ringmba/mba/ring"
)

func eval1(t *testing.T, src string, x, y int64) ring.Elem {
	t.Helper()
	e, err := Parse(ring.W8, src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	v := NewValuation(ring.W8, []string{"x", "y"})
	v.Set("x", ring.New(ring.W8, x))
	v.Set("y", ring.New(ring.W8, y))
	return e.Eval(v)
}

func TestParseEval(t *testing.T) {
	cases := []struct {
		src  string
		want int64
	}{
		{"x + y", 6 + 3},
		{"x - y * 2", 6 - 3*2},
		{"(x + y) * 2", (6 + 3) * 2},
		{"x & y | ~x", (6 & 3) | int64(^int8(6))},
		{"x << 1", 6 << 1},
		{"x >> 1", 6 >> 1},
		{"-x", -6},
		{"x % y", 6 % 3},
		{"x / y", 6 / 3},
	}
	for _, c := range cases {
		got := eval1(t, c.src, 6, 3)
		want := ring.New(ring.W8, c.want)
		if !got.Equal(want) {
			t.Errorf("eval(%q) = %v, want %v", c.src, got, want)
		}
	}
}

func TestSharedSubtreeSubstitute(t *testing.T) {
	shared := AddExpr(VarExpr("a"), VarExpr("b"))
	root := MulExpr(shared, shared) // shared appears twice

	repl := VarExpr("c")
	root.Substitute(repl, "a")

	// Both occurrences of shared should now read c + b.
	if root.Left().Left().Name() != "c" || root.Right().Left().Name() != "c" {
		t.Errorf("substitution did not propagate to both parents: %s", root)
	}
}

func TestPrintAsFuncHoistsSharedSubtree(t *testing.T) {
	shared := AddExpr(VarExpr("a"), VarExpr("b"))
	root := MulExpr(shared, shared)

	out := root.PrintAsFunc(0) // printer.Default
	if out == "" {
		t.Fatal("empty output")
	}
	// The shared subtree should be hoisted into a single var0 binding
	// referenced twice, not printed twice.
	count := 0
	for i := 0; i+4 <= len(out); i++ {
		if out[i:i+4] == "var0" {
			count++
		}
	}
	if count < 2 {
		t.Errorf("expected shared subtree hoisted and referenced at least twice, got %d occurrences in %q", count, out)
	}
}

func TestVarsSortedAuxLast(t *testing.T) {
	e := AddExpr(VarExpr("aux0"), AddExpr(VarExpr("b"), VarExpr("a")))
	vars := e.Vars()
	want := []string{"a", "b", "aux0"}
	if len(vars) != len(want) {
		t.Fatalf("Vars = %v, want %v", vars, want)
	}
	for i := range want {
		if vars[i] != want[i] {
			t.Errorf("Vars[%d] = %q, want %q", i, vars[i], want[i])
		}
	}
}
