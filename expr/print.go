// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"strings"

	"github.com/ringmba/mba/printer"
)

// String renders e in the default infix syntax accepted by Parse,
// without factoring out shared subexpressions (see PrintAsFunc for
// that).
func (e *Expr) String() string {
	var sb strings.Builder
	e.printSimple(&sb, nil, nil, printer.Default)
	return sb.String()
}

// refCounts walks the DAG once (each node visited at most once,
// regardless of how many parents it has) and tallies, for every node,
// how many parent edges point to it. A count greater than one means the
// node is shared and should be hoisted to an auxiliary binding when
// printing as a function.
func refCounts(e *Expr, counts map[*Expr]int) {
	visited := make(map[*Expr]bool)
	var walk func(*Expr)
	walk = func(n *Expr) {
		if visited[n] {
			return
		}
		visited[n] = true
		switch n.kind {
		case Const, Var:
		case Neg, Not:
			counts[n.children[0]]++
			walk(n.children[0])
		default:
			counts[n.children[0]]++
			walk(n.children[0])
			counts[n.children[1]]++
			walk(n.children[1])
		}
	}
	walk(e)
}

// binding records a hoisted common subexpression: the pointer it was
// computed for, the auxiliary name assigned to it, and its printed
// initializer.
type binding struct {
	node *Expr
	name string
	init string
}

// PrintAsFunc renders e as a complete function definition for the C and
// Go targets (hoisting every subexpression shared by more than one
// parent into an auxiliary `varK` binding), or a flat infix expression
// for Default. Tex is not supported for general expressions (unlike
// uexpr.LUExpr, an arithmetic Expr has no direct LaTeX rendering in this
// module) and panics if requested.
func (e *Expr) PrintAsFunc(p printer.Target) string {
	if p == printer.Tex {
		panic("expr: Tex printing is not supported for general expressions")
	}

	counts := make(map[*Expr]int)
	refCounts(e, counts)

	var bindings []binding
	body := e.printHoisted(counts, &bindings, p)

	vars := e.Vars()

	var sb strings.Builder
	switch p {
	case printer.Default:
		for i := len(bindings) - 1; i >= 0; i-- {
			b := bindings[i]
			fmt.Fprintf(&sb, "%s = %s\n", b.name, b.init)
		}
		sb.WriteString(body)
	case printer.C:
		ty := printer.CType(bitsOf(e))
		sb.WriteString(ty)
		sb.WriteString(" f(")
		for i, v := range vars {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s %s", ty, v)
		}
		sb.WriteString(") {\n")
		for i := len(bindings) - 1; i >= 0; i-- {
			b := bindings[i]
			fmt.Fprintf(&sb, "\t%s %s = %s;\n", ty, b.name, b.init)
		}
		fmt.Fprintf(&sb, "\treturn %s;\n}", body)
	case printer.Go:
		ty := printer.GoType(bitsOf(e))
		sb.WriteString("func f(")
		for i, v := range vars {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s %s", v, ty)
		}
		fmt.Fprintf(&sb, ") %s {\n", ty)
		for i := len(bindings) - 1; i >= 0; i-- {
			b := bindings[i]
			fmt.Fprintf(&sb, "\tvar %s %s = %s\n", b.name, ty, b.init)
		}
		fmt.Fprintf(&sb, "\treturn %s\n}", body)
	default:
		panic("expr: unsupported printer target")
	}
	return sb.String()
}

func bitsOf(e *Expr) int {
	defer func() { recover() }()
	return int(e.Width())
}

// printHoisted prints e, replacing any node with refcount > 1 (other
// than a bare Var, which is already as cheap to print as a name) by a
// freshly assigned auxiliary name the first time it's encountered, and
// by that same name on every subsequent encounter.
func (e *Expr) printHoisted(counts map[*Expr]int, bindings *[]binding, p printer.Target) string {
	if e.kind == Var {
		return e.name
	}
	if counts[e] <= 1 {
		return e.printSimpleHoisted(counts, bindings, p)
	}

	for _, b := range *bindings {
		if b.node == e {
			return b.name
		}
	}

	name := fmt.Sprintf("var%d", len(*bindings))
	*bindings = append(*bindings, binding{node: e, name: name})
	init := e.printSimpleHoisted(counts, bindings, p)
	(*bindings)[len(*bindings)-1].init = init
	return name
}

func (e *Expr) printSimpleHoisted(counts map[*Expr]int, bindings *[]binding, p printer.Target) string {
	var sb strings.Builder
	e.printSimple(&sb, counts, func(c *Expr) string { return c.printHoisted(counts, bindings, p) }, p)
	return sb.String()
}

// printSimple prints e without hoisting, using childPrint to render each
// child (which defaults to recursive printSimple when nil, used by the
// plain String() path). counts is nil outside of PrintAsFunc, in which
// case every child is parenthesized purely by structural precedence;
// inside PrintAsFunc a child with a refcount above one is about to be
// printed as a bare auxiliary name, so it never needs parenthesizing.
func (e *Expr) printSimple(sb *strings.Builder, counts map[*Expr]int, childPrint func(*Expr) string, p printer.Target) {
	print := childPrint
	if print == nil {
		print = func(c *Expr) string {
			var cb strings.Builder
			c.printSimple(&cb, nil, nil, p)
			return cb.String()
		}
	}

	switch e.kind {
	case Const:
		if p == printer.Go {
			fmt.Fprintf(sb, "ring.New(%d, %s)", int(e.val.Width()), e.val.String())
		} else {
			sb.WriteString(e.val.String())
		}
	case Var:
		sb.WriteString(e.name)
	case Neg:
		e.unOp(sb, counts, print, "-")
	case Not:
		op := "~"
		if p == printer.Go {
			op = "^"
		}
		e.unOp(sb, counts, print, op)
	case Add:
		e.binOp(sb, counts, print, "+")
	case Sub:
		e.binOp(sb, counts, print, "-")
	case Mul:
		e.binOp(sb, counts, print, "*")
	case Div:
		e.binOp(sb, counts, print, "/")
	case Mod:
		e.binOp(sb, counts, print, "%")
	case And:
		e.binOp(sb, counts, print, "&")
	case Or:
		e.binOp(sb, counts, print, "|")
	case Xor:
		e.binOp(sb, counts, print, "^")
	case Shl:
		e.binOp(sb, counts, print, "<<")
	case Shr:
		e.binOp(sb, counts, print, ">>")
	default:
		panic("expr: invalid Kind")
	}
}

// effectivePrecedence is c's own precedence, except when printed inside
// PrintAsFunc and c is about to be hoisted to a bare auxiliary name (or
// is already a Var), in which case it never needs parenthesizing.
func effectivePrecedence(c *Expr, counts map[*Expr]int) int {
	if c.kind == Var || (counts != nil && counts[c] > 1) {
		return 256
	}
	return c.precedence()
}

func (e *Expr) unOp(sb *strings.Builder, counts map[*Expr]int, print func(*Expr) string, op string) {
	i := e.children[0]
	sb.WriteString(op)
	if e.precedence() > effectivePrecedence(i, counts) {
		sb.WriteByte('(')
		sb.WriteString(print(i))
		sb.WriteByte(')')
	} else {
		sb.WriteString(print(i))
	}
}

func (e *Expr) binOp(sb *strings.Builder, counts map[*Expr]int, print func(*Expr) string, op string) {
	l, r := e.children[0], e.children[1]
	pred := e.precedence()

	if pred > effectivePrecedence(l, counts) {
		sb.WriteByte('(')
		sb.WriteString(print(l))
		sb.WriteByte(')')
	} else {
		sb.WriteString(print(l))
	}
	sb.WriteByte(' ')
	sb.WriteString(op)
	sb.WriteByte(' ')
	if pred > effectivePrecedence(r, counts) {
		sb.WriteByte('(')
		sb.WriteString(print(r))
		sb.WriteByte(')')
	} else {
		sb.WriteString(print(r))
	}
}
