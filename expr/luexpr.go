// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"github.com/ringmba/mba/ring"
	"github.com/ringmba/mba/uexpr"
)

// uexprToExpr lowers a uexpr.Expr into the general Expr algebra.
func uexprToExpr(w ring.Width, e *uexpr.Expr) *Expr {
	switch e.Kind() {
	case uexpr.Ones:
		return ConstExpr(ring.Ones(w))
	case uexpr.Var:
		return VarExpr(e.Name())
	case uexpr.Not:
		return NotExpr(uexprToExpr(w, e.Left()))
	case uexpr.And:
		return AndExpr(uexprToExpr(w, e.Left()), uexprToExpr(w, e.Right()))
	case uexpr.Or:
		return OrExpr(uexprToExpr(w, e.Left()), uexprToExpr(w, e.Right()))
	case uexpr.Xor:
		return XorExpr(uexprToExpr(w, e.Left()), uexprToExpr(w, e.Right()))
	default:
		panic("expr: invalid uexpr.Kind")
	}
}

// FromLUExpr converts an LUExpr to an Expr: each term c·u becomes
// Mul(Const(c), u) (the Mul is omitted when c=1), terms joined by Add.
func FromLUExpr(l uexpr.LUExpr) *Expr {
	w := l.Width()
	terms := l.Terms
	if len(terms) == 0 {
		return Zero(w)
	}

	termExpr := func(t uexpr.Term) *Expr {
		sub := uexprToExpr(w, t.Expr)
		if t.Coeff.Equal(ring.One(w)) {
			return sub
		}
		return MulExpr(ConstExpr(t.Coeff), sub)
	}

	acc := termExpr(terms[0])
	for _, t := range terms[1:] {
		acc = AddExpr(acc, termExpr(t))
	}
	return acc
}
