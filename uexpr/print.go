// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uexpr

import (
	"strings"

	"github.com/ringmba/mba/printer"
	"github.com/ringmba/mba/ring"
)

// Print renders e for the given target. The Default target matches
// String().
func (e *Expr) Print(p printer.Target) string {
	var sb strings.Builder
	e.print(&sb, p)
	return sb.String()
}

func (e *Expr) print(sb *strings.Builder, p printer.Target) {
	switch e.kind {
	case Ones:
		sb.WriteString("-1")
	case Var:
		sb.WriteString(e.name)
	case Not:
		op := "~"
		if p == printer.Go {
			op = "^"
		}
		if p == printer.Tex {
			sb.WriteString(`\overline{`)
			e.children[0].print(sb, p)
			sb.WriteString(`}`)
			return
		}
		if e.children[0].IsUnary() {
			sb.WriteString(op)
			e.children[0].print(sb, p)
		} else {
			sb.WriteString(op)
			sb.WriteByte('(')
			e.children[0].print(sb, p)
			sb.WriteByte(')')
		}
	case And:
		e.writeInfix(sb, p, "&", `\land`)
	case Or:
		e.writeInfix(sb, p, "|", `\lor`)
	case Xor:
		e.writeInfix(sb, p, "^", `\oplus`)
	default:
		panic("uexpr: invalid Kind")
	}
}

func (e *Expr) writeInfix(sb *strings.Builder, p printer.Target, op, texOp string) {
	useOp := op
	if p == printer.Tex {
		useOp = texOp
	}
	l, r := e.children[0], e.children[1]
	if l.IsUnary() {
		l.print(sb, p)
	} else {
		sb.WriteByte('(')
		l.print(sb, p)
		sb.WriteByte(')')
	}
	sb.WriteByte(' ')
	sb.WriteString(useOp)
	sb.WriteByte(' ')
	if r.IsUnary() {
		r.print(sb, p)
	} else {
		sb.WriteByte('(')
		r.print(sb, p)
		sb.WriteByte(')')
	}
}

// PrintAsFunc renders l as a complete function definition for C/Go
// targets, a bare Tex expression for Tex, or the Default infix form
// otherwise.
func (l LUExpr) PrintAsFunc(p printer.Target) string {
	vars := SortedVars(l.Vars())
	bits := int(l.width)

	var sb strings.Builder
	switch p {
	case printer.C:
		ty := printer.CType(bits)
		sb.WriteString(ty)
		sb.WriteString(" f(")
		for i, v := range vars {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(ty)
			sb.WriteByte(' ')
			sb.WriteString(v)
		}
		sb.WriteString(") {\n\treturn ")
		l.printBody(&sb, p)
		sb.WriteString(";\n}")
	case printer.Go:
		ty := printer.GoType(bits)
		sb.WriteString("func f(")
		for i, v := range vars {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(v)
			sb.WriteByte(' ')
			sb.WriteString(ty)
		}
		sb.WriteString(") ")
		sb.WriteString(ty)
		sb.WriteString(" {\n\treturn ")
		l.printBody(&sb, p)
		sb.WriteString("\n}")
	default:
		l.printBody(&sb, p)
	}
	return sb.String()
}

func (l LUExpr) printBody(sb *strings.Builder, p printer.Target) {
	terms := make([]Term, 0, len(l.Terms))
	for _, t := range l.Terms {
		if !t.Coeff.IsZero() {
			terms = append(terms, t)
		}
	}
	if len(terms) == 0 {
		sb.WriteString("0")
		return
	}

	first := terms[0]
	c := first.Coeff
	if c.PrintNegative() {
		sb.WriteByte('-')
		c = ring.Zero(l.width).Sub(c)
	}
	l.writeFuncTerm(sb, p, c, first.Expr)

	for _, t := range terms[1:] {
		c := t.Coeff
		if c.PrintNegative() {
			sb.WriteString(" - ")
			c = ring.Zero(l.width).Sub(c)
		} else {
			sb.WriteString(" + ")
		}
		l.writeFuncTerm(sb, p, c, t.Expr)
	}
}

func (l LUExpr) writeFuncTerm(sb *strings.Builder, p printer.Target, c ring.Elem, e *Expr) {
	unary := e.IsUnary()
	if c.Equal(ring.One(l.width)) {
		if unary {
			sb.WriteString(e.Print(p))
		} else {
			sb.WriteByte('(')
			sb.WriteString(e.Print(p))
			sb.WriteByte(')')
		}
		return
	}

	op := "*"
	if p == printer.Tex {
		op = `\cdot `
	}
	sb.WriteString(c.String())
	sb.WriteString(op)
	if unary {
		sb.WriteString(e.Print(p))
	} else {
		sb.WriteByte('(')
		sb.WriteString(e.Print(p))
		sb.WriteByte(')')
	}
}
