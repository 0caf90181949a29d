// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uexpr

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Grammar precedence (low to high): `|` < `^` < `&` < unary `~`/parens,
// expressed the way participle wants it — one struct layer per
// precedence level, each deferring to the next on an empty operator
// list, mirroring uniform_expr.rs's climbing parser but declaratively.

type orExpr struct {
	Operands []*xorExpr `parser:"@@ ( '|' @@ )*"`
}

type xorExpr struct {
	Operands []*andExpr `parser:"@@ ( '^' @@ )*"`
}

type andExpr struct {
	Operands []*unary `parser:"@@ ( '&' @@ )*"`
}

type unary struct {
	Not     *unary   `parser:"  ( '~' | '!' ) @@"`
	Primary *primary `parser:"| @@"`
}

type primary struct {
	Ones  bool    `parser:"  @( '-' '1' )"`
	Ident string  `parser:"| @Ident"`
	Paren *orExpr `parser:"| '(' @@ ')'"`
}

var uexprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[()~!&^|\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var uexprParser = participle.MustBuild[orExpr](
	participle.Lexer(uexprLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

func buildOr(o *orExpr) *Expr {
	e := buildXor(o.Operands[0])
	for _, rhs := range o.Operands[1:] {
		e = OrExpr(e, buildXor(rhs))
	}
	return e
}

func buildXor(x *xorExpr) *Expr {
	e := buildAnd(x.Operands[0])
	for _, rhs := range x.Operands[1:] {
		e = XorExpr(e, buildAnd(rhs))
	}
	return e
}

func buildAnd(a *andExpr) *Expr {
	e := buildUnary(a.Operands[0])
	for _, rhs := range a.Operands[1:] {
		e = AndExpr(e, buildUnary(rhs))
	}
	return e
}

func buildUnary(u *unary) *Expr {
	if u.Not != nil {
		return NotExpr(buildUnary(u.Not))
	}
	return buildPrimary(u.Primary)
}

func buildPrimary(p *primary) *Expr {
	switch {
	case p.Ones:
		return OnesExpr()
	case p.Ident != "":
		return VarExpr(p.Ident)
	case p.Paren != nil:
		return buildOr(p.Paren)
	default:
		panic("uexpr: malformed parse tree")
	}
}

// Parse parses a UExpr in the `~ & ^ |` infix syntax (parentheses
// override precedence; unary ~/! binds tightest; -1 denotes Ones).
func Parse(s string) (*Expr, error) {
	tree, err := uexprParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return buildOr(tree), nil
}
