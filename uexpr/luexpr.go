// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uexpr

import (
	"github.com/ringmba/mba/printer"
	"github.com/ringmba/mba/ring"
)

// Term is one (coefficient, uniform expression) summand of an LUExpr.
type Term struct {
	Coeff ring.Elem
	Expr  *Expr
}

// LUExpr is an ordered linear combination Σ Coeff·Expr of uniform
// expressions. The zero value (nil slice) is the zero expression.
type LUExpr struct {
	width ring.Width
	Terms []Term
}

// New builds an LUExpr from explicit terms, in the given ring width.
func New(w ring.Width, terms ...Term) LUExpr {
	return LUExpr{width: w, Terms: terms}
}

// Constant returns an LUExpr denoting the constant c (as −c·Ones, since
// Ones evaluates to −1).
func Constant(w ring.Width, c ring.Elem) LUExpr {
	return LUExpr{width: w, Terms: []Term{{Coeff: ring.Zero(w).Sub(c), Expr: OnesExpr()}}}
}

// FromVar returns an LUExpr denoting a single variable.
func FromVar(w ring.Width, name string) LUExpr {
	return LUExpr{width: w, Terms: []Term{{Coeff: ring.One(w), Expr: VarExpr(name)}}}
}

// FromExpr lifts a bare UExpr to an LUExpr with coefficient 1.
func FromExpr(w ring.Width, e *Expr) LUExpr {
	return LUExpr{width: w, Terms: []Term{{Coeff: ring.One(w), Expr: e}}}
}

// Width reports the ring width of l.
func (l LUExpr) Width() ring.Width { return l.width }

// Vars returns every variable name occurring in l, with duplicates.
func (l LUExpr) Vars() []string {
	var out []string
	for _, t := range l.Terms {
		out = t.Expr.Vars(out)
	}
	return out
}

// Eval evaluates l under a valuation: Σ cᵢ·uᵢ.eval(v).
func (l LUExpr) Eval(v *Valuation) ring.Elem {
	acc := ring.Zero(l.width)
	for _, t := range l.Terms {
		acc = acc.Add(t.Coeff.Mul(t.Expr.Eval(v)))
	}
	return acc
}

// Normalize drops zero-coefficient terms and merges terms whose UExpr is
// structurally equal by summing their coefficients, preserving the order
// of first occurrence.
func (l LUExpr) Normalize() LUExpr {
	var merged []Term
	for _, t := range l.Terms {
		found := false
		for i := range merged {
			if merged[i].Expr.Equal(t.Expr) {
				merged[i].Coeff = merged[i].Coeff.Add(t.Coeff)
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, t)
		}
	}

	out := make([]Term, 0, len(merged))
	for _, t := range merged {
		if !t.Coeff.IsZero() {
			out = append(out, t)
		}
	}
	return LUExpr{width: l.width, Terms: out}
}

// String renders l in the LUExpr grammar accepted by ParseLUExpr.
func (l LUExpr) String() string { return l.PrintAsFunc(printer.Default) }
