// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ringmba/mba/ring"
)

// Grammar precedence (low to high): `|` < `^` < `&` < `<<`/`>>` <
// `+`/`-` < `*`/`/`/`%` < unary `-`/`~` < parens, mirroring expr.rs's
// climbing parser as one participle struct layer per level.

type orG struct {
	Operands []*xorG `parser:"@@ ( '|' @@ )*"`
}

type xorG struct {
	Operands []*andG `parser:"@@ ( '^' @@ )*"`
}

type andG struct {
	Operands []*shiftG `parser:"@@ ( '&' @@ )*"`
}

type shiftG struct {
	First *addG    `parser:"@@"`
	Ops   []string `parser:"( @('<<' | '>>')"`
	Rest  []*addG  `parser:"  @@ )*"`
}

type addG struct {
	First *mulG       `parser:"@@"`
	Ops   []string    `parser:"( @('+' | '-')"`
	Rest  []*mulG     `parser:"  @@ )*"`
}

type mulG struct {
	First *unaryG  `parser:"@@"`
	Ops   []string `parser:"( @('*' | '/' | '%')"`
	Rest  []*unaryG `parser:"  @@ )*"`
}

type unaryG struct {
	NegOp   bool     `parser:"(  @'-'"`
	NotOp   bool     `parser:" | @'~' )?"`
	Primary *primaryG `parser:"@@"`
}

type primaryG struct {
	Num   string `parser:"  @Number"`
	Ident string `parser:"| @Ident"`
	Paren *orG   `parser:"| '(' @@ ')'"`
}

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Shift", Pattern: `<<|>>`},
	{Name: "Punct", Pattern: `[()+\-*/%&^|~]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var exprParser = participle.MustBuild[orG](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

func buildOrG(w ring.Width, o *orG) *Expr {
	e := buildXorG(w, o.Operands[0])
	for _, rhs := range o.Operands[1:] {
		e = OrExpr(e, buildXorG(w, rhs))
	}
	return e
}

func buildXorG(w ring.Width, x *xorG) *Expr {
	e := buildAndG(w, x.Operands[0])
	for _, rhs := range x.Operands[1:] {
		e = XorExpr(e, buildAndG(w, rhs))
	}
	return e
}

func buildAndG(w ring.Width, a *andG) *Expr {
	e := buildShiftG(w, a.Operands[0])
	for _, rhs := range a.Operands[1:] {
		e = AndExpr(e, buildShiftG(w, rhs))
	}
	return e
}

func buildShiftG(w ring.Width, s *shiftG) *Expr {
	e := buildAddG(w, s.First)
	for i, op := range s.Ops {
		rhs := buildAddG(w, s.Rest[i])
		if op == "<<" {
			e = ShlExpr(e, rhs)
		} else {
			e = ShrExpr(e, rhs)
		}
	}
	return e
}

func buildAddG(w ring.Width, a *addG) *Expr {
	e := buildMulG(w, a.First)
	for i, op := range a.Ops {
		rhs := buildMulG(w, a.Rest[i])
		if op == "+" {
			e = AddExpr(e, rhs)
		} else {
			e = SubExpr(e, rhs)
		}
	}
	return e
}

func buildMulG(w ring.Width, m *mulG) *Expr {
	e := buildUnaryG(w, m.First)
	for i, op := range m.Ops {
		rhs := buildUnaryG(w, m.Rest[i])
		switch op {
		case "*":
			e = MulExpr(e, rhs)
		case "/":
			e = DivExpr(e, rhs)
		default:
			e = ModExpr(e, rhs)
		}
	}
	return e
}

func buildUnaryG(w ring.Width, u *unaryG) *Expr {
	e := buildPrimaryG(w, u.Primary)
	if u.NegOp {
		return NegExpr(e)
	}
	if u.NotOp {
		return NotExpr(e)
	}
	return e
}

func buildPrimaryG(w ring.Width, p *primaryG) *Expr {
	switch {
	case p.Num != "":
		v, err := ring.FromStringRadix(w, p.Num)
		if err != nil {
			panic("expr: " + err.Error())
		}
		return ConstExpr(v)
	case p.Ident != "":
		return VarExpr(p.Ident)
	case p.Paren != nil:
		return buildOrG(w, p.Paren)
	default:
		panic("expr: malformed parse tree")
	}
}

// Parse parses an Expr in the `~ - + - * / % & ^ | << >>` infix syntax
// (parentheses override precedence; unary `-`/`~` bind tightest next to
// parens), reducing integer literals modulo 2^w.
func Parse(w ring.Width, s string) (*Expr, error) {
	tree, err := exprParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return buildOrG(w, tree), nil
}
