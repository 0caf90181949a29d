// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uexpr implements uniform boolean expressions and linear
// combinations of them (LUExpr), the algebraic substrate the rewriter
// operates on: every UExpr evaluates bitwise-uniformly across a valuation,
// which is what makes a linear combination of them decidable by a linear
// system over the ring.
package uexpr

import (
	"sort"

	"github.com/ringmba/mba/printer"
	"github.com/ringmba/mba/ring"
)

// Kind discriminates the variant of a UExpr node.
type Kind int

const (
	Ones Kind = iota
	Var
	Not
	And
	Or
	Xor
)

// Expr is a uniform boolean expression: Ones, a variable, or a boolean
// combination of uniform subexpressions. The zero value is not a valid
// Expr; construct one with the package-level constructors.
type Expr struct {
	kind     Kind
	name     string // Var
	children [2]*Expr
}

// OnesExpr returns the all-ones leaf (−1 mod 2ⁿ).
func OnesExpr() *Expr { return &Expr{kind: Ones} }

// VarExpr returns a variable leaf.
func VarExpr(name string) *Expr { return &Expr{kind: Var, name: name} }

// NotExpr returns ¬e.
func NotExpr(e *Expr) *Expr { return &Expr{kind: Not, children: [2]*Expr{e}} }

// AndExpr returns l & r.
func AndExpr(l, r *Expr) *Expr { return &Expr{kind: And, children: [2]*Expr{l, r}} }

// OrExpr returns l | r.
func OrExpr(l, r *Expr) *Expr { return &Expr{kind: Or, children: [2]*Expr{l, r}} }

// XorExpr returns l ^ r.
func XorExpr(l, r *Expr) *Expr { return &Expr{kind: Xor, children: [2]*Expr{l, r}} }

// Kind reports e's variant.
func (e *Expr) Kind() Kind { return e.kind }

// Name returns the variable name; valid only when Kind() == Var.
func (e *Expr) Name() string { return e.name }

// Left and Right return e's children; valid depending on Kind().
func (e *Expr) Left() *Expr  { return e.children[0] }
func (e *Expr) Right() *Expr { return e.children[1] }

// IsUnary reports whether e's top-most operator binds tighter than any
// infix operator when printed (Ones, Var, Not).
func (e *Expr) IsUnary() bool {
	switch e.kind {
	case Ones, Var, Not:
		return true
	default:
		return false
	}
}

// Vars appends every variable name occurring in e, including duplicates,
// in left-to-right evaluation order.
func (e *Expr) Vars(out []string) []string {
	switch e.kind {
	case Ones:
		return out
	case Var:
		return append(out, e.name)
	case Not:
		return e.children[0].Vars(out)
	default:
		out = e.children[0].Vars(out)
		return e.children[1].Vars(out)
	}
}

// Eval evaluates e under a valuation, pointwise on the ring.
func (e *Expr) Eval(v *Valuation) ring.Elem {
	switch e.kind {
	case Ones:
		return ring.Ones(v.Width())
	case Var:
		return v.Get(e.name)
	case Not:
		return e.children[0].Eval(v).Not()
	case And:
		return e.children[0].Eval(v).And(e.children[1].Eval(v))
	case Or:
		return e.children[0].Eval(v).Or(e.children[1].Eval(v))
	case Xor:
		return e.children[0].Eval(v).Xor(e.children[1].Eval(v))
	default:
		panic("uexpr: invalid Kind")
	}
}

// Equal reports structural equality of two UExpr trees.
func (e *Expr) Equal(o *Expr) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.kind != o.kind {
		return false
	}
	switch e.kind {
	case Ones:
		return true
	case Var:
		return e.name == o.name
	case Not:
		return e.children[0].Equal(o.children[0])
	default:
		return e.children[0].Equal(o.children[0]) && e.children[1].Equal(o.children[1])
	}
}

// RenameVar replaces every occurrence of variable old with new, in place.
func (e *Expr) RenameVar(old, new string) {
	switch e.kind {
	case Ones:
	case Var:
		if e.name == old {
			e.name = new
		}
	case Not:
		e.children[0].RenameVar(old, new)
	default:
		e.children[0].RenameVar(old, new)
		e.children[1].RenameVar(old, new)
	}
}

// String renders e in the `~ & ^ |` infix syntax accepted by Parse.
func (e *Expr) String() string { return e.Print(printer.Default) }

// SortedVars returns the deduplicated, sorted variable set of names.
func SortedVars(names []string) []string {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
