// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr implements the general arithmetic/bitwise expression DAG
// that the obfuscator driver rewrites: constants, variables, and the
// arithmetic and bitwise operators, with subtrees shared by pointer
// across multiple parents rather than duplicated.
package expr

import (
	"sort"

	"github.com/ringmba/mba/ring"
)

// Kind discriminates the variant of an Expr node.
type Kind int

const (
	Const Kind = iota
	Var
	Add
	Sub
	Mul
	Div
	Mod
	Neg
	And
	Or
	Xor
	Shl
	Shr
	Not
)

// Expr is a node in the expression DAG. Children are ordinary Go
// pointers: the same *Expr may be referenced from more than one parent,
// which is how the DAG represents a shared subexpression. The zero value
// is not valid; use the constructors below.
type Expr struct {
	kind     Kind
	val      ring.Elem
	name     string
	children [2]*Expr
}

func ConstExpr(v ring.Elem) *Expr { return &Expr{kind: Const, val: v} }
func VarExpr(name string) *Expr   { return &Expr{kind: Var, name: name} }
func AddExpr(l, r *Expr) *Expr    { return &Expr{kind: Add, children: [2]*Expr{l, r}} }
func SubExpr(l, r *Expr) *Expr    { return &Expr{kind: Sub, children: [2]*Expr{l, r}} }
func MulExpr(l, r *Expr) *Expr    { return &Expr{kind: Mul, children: [2]*Expr{l, r}} }
func DivExpr(l, r *Expr) *Expr    { return &Expr{kind: Div, children: [2]*Expr{l, r}} }
func ModExpr(l, r *Expr) *Expr    { return &Expr{kind: Mod, children: [2]*Expr{l, r}} }
func NegExpr(e *Expr) *Expr       { return &Expr{kind: Neg, children: [2]*Expr{e}} }
func AndExpr(l, r *Expr) *Expr    { return &Expr{kind: And, children: [2]*Expr{l, r}} }
func OrExpr(l, r *Expr) *Expr     { return &Expr{kind: Or, children: [2]*Expr{l, r}} }
func XorExpr(l, r *Expr) *Expr    { return &Expr{kind: Xor, children: [2]*Expr{l, r}} }
func ShlExpr(l, r *Expr) *Expr    { return &Expr{kind: Shl, children: [2]*Expr{l, r}} }
func ShrExpr(l, r *Expr) *Expr    { return &Expr{kind: Shr, children: [2]*Expr{l, r}} }
func NotExpr(e *Expr) *Expr       { return &Expr{kind: Not, children: [2]*Expr{e}} }

// Zero returns the zero constant of width w.
func Zero(w ring.Width) *Expr { return ConstExpr(ring.Zero(w)) }

// Kind reports e's variant.
func (e *Expr) Kind() Kind { return e.kind }

// Const returns e's constant value; valid only when Kind() == Const.
func (e *Expr) Const() ring.Elem { return e.val }

// Name returns e's variable name; valid only when Kind() == Var.
func (e *Expr) Name() string { return e.name }

// Left and Right return e's children; valid depending on Kind().
func (e *Expr) Left() *Expr  { return e.children[0] }
func (e *Expr) Right() *Expr { return e.children[1] }

// Vars returns every variable name occurring in e, deduplicated and
// sorted, with "aux"-prefixed names sorted after ordinary names (they
// are implementation plumbing, not logical operands).
func (e *Expr) Vars() []string {
	set := make(map[string]struct{})
	e.collectVars(set)
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		li, lj := isAux(out[i]), isAux(out[j])
		if li != lj {
			return lj // non-aux before aux
		}
		return out[i] < out[j]
	})
	return out
}

func isAux(name string) bool {
	return len(name) >= 3 && name[:3] == "aux"
}

func (e *Expr) collectVars(set map[string]struct{}) {
	switch e.kind {
	case Const:
	case Var:
		set[e.name] = struct{}{}
	case Neg, Not:
		e.children[0].collectVars(set)
	default:
		e.children[0].collectVars(set)
		e.children[1].collectVars(set)
	}
}

// Width returns the ring width of e, taken from the first Const found by
// a left-to-right walk of its subtree; panics if e contains no Const.
// Nodes other than Const carry no width of their own.
func (e *Expr) Width() ring.Width {
	if w, ok := e.findWidth(); ok {
		return w
	}
	panic("expr: cannot infer width from an expression without constants")
}

func (e *Expr) findWidth() (ring.Width, bool) {
	switch e.kind {
	case Const:
		return e.val.Width(), true
	case Var:
		return 0, false
	case Neg, Not:
		return e.children[0].findWidth()
	default:
		if w, ok := e.children[0].findWidth(); ok {
			return w, true
		}
		return e.children[1].findWidth()
	}
}

// Eval evaluates e under a valuation.
func (e *Expr) Eval(v *Valuation) ring.Elem {
	switch e.kind {
	case Const:
		return e.val
	case Var:
		return v.Get(e.name)
	case Add:
		return e.children[0].Eval(v).Add(e.children[1].Eval(v))
	case Sub:
		return e.children[0].Eval(v).Sub(e.children[1].Eval(v))
	case Mul:
		return e.children[0].Eval(v).Mul(e.children[1].Eval(v))
	case Div:
		return e.children[0].Eval(v).Div(e.children[1].Eval(v))
	case Mod:
		return e.children[0].Eval(v).Rem(e.children[1].Eval(v))
	case Neg:
		return e.children[0].Eval(v).Neg()
	case And:
		return e.children[0].Eval(v).And(e.children[1].Eval(v))
	case Or:
		return e.children[0].Eval(v).Or(e.children[1].Eval(v))
	case Xor:
		return e.children[0].Eval(v).Xor(e.children[1].Eval(v))
	case Shl:
		return e.children[0].Eval(v).Shl(shiftAmount(e.children[1].Eval(v)))
	case Shr:
		return e.children[0].Eval(v).Shr(shiftAmount(e.children[1].Eval(v)))
	case Not:
		return e.children[0].Eval(v).Not()
	default:
		panic("expr: invalid Kind")
	}
}

func shiftAmount(e ring.Elem) uint {
	return uint(e.BigInt().Uint64())
}

// precedence matches expr.rs: higher binds tighter. All operators are
// treated as left-associative.
func (e *Expr) precedence() int {
	switch e.kind {
	case Or:
		return 1
	case Xor:
		return 2
	case And:
		return 3
	case Shl, Shr:
		return 4
	case Add, Sub:
		return 5
	case Mul, Div, Mod:
		return 6
	case Neg, Not:
		return 255
	default: // Const, Var
		return 256
	}
}
