// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uexpr

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ringmba/mba/ring"
)

// term ::= [unsigned-int '*'] uexpr | unsigned-int, joined by '+'/'-'.
// A bare integer k is a constant term, not a coefficient times a
// variable, matching §6's grammar.

type numTerm struct {
	Num string  `parser:"@Number"`
	Mul *orExpr `parser:"( '*' @@ )?"`
}

type luTerm struct {
	NumTerm *numTerm `parser:"  @@"`
	Uexpr   *orExpr  `parser:"| @@"`
}

type signedTerm struct {
	Sign string  `parser:"@( '+' | '-' )"`
	Term *luTerm `parser:"@@"`
}

type luexprDoc struct {
	LeadingSign string        `parser:"@'-'?"`
	First       *luTerm       `parser:"@@"`
	Rest        []*signedTerm `parser:"@@*"`
}

var luexprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[()~!&^|*+\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var luexprParser = participle.MustBuild[luexprDoc](
	participle.Lexer(luexprLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// ParseLUExpr parses an LUExpr in the grammar of §6: a sum/difference of
// terms, each either a bare integer constant or `int '*' uexpr`, or a
// bare uexpr with implicit coefficient 1.
func ParseLUExpr(w ring.Width, s string) (LUExpr, error) {
	tree, err := luexprParser.ParseString("", s)
	if err != nil {
		return LUExpr{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	neg := tree.LeadingSign == "-"
	terms := []Term{termFrom(w, tree.First, neg)}
	for _, st := range tree.Rest {
		terms = append(terms, termFrom(w, st.Term, st.Sign == "-"))
	}
	return LUExpr{width: w, Terms: terms}.Normalize(), nil
}

func termFrom(w ring.Width, t *luTerm, neg bool) Term {
	sign := ring.One(w)
	if neg {
		sign = ring.Zero(w).Sub(sign)
	}

	if t.NumTerm != nil {
		n, err := ring.FromStringRadix(w, t.NumTerm.Num)
		if err != nil {
			panic("uexpr: " + err.Error())
		}
		if neg {
			n = ring.Zero(w).Sub(n)
		}
		if t.NumTerm.Mul != nil {
			return Term{Coeff: n, Expr: buildOr(t.NumTerm.Mul)}
		}
		return Term{Coeff: ring.Zero(w).Sub(n), Expr: OnesExpr()}
	}

	return Term{Coeff: sign, Expr: buildOr(t.Uexpr)}
}
