// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obfuscate

import (
	"fmt"
	"math/rand/v2"

	"github.com/ringmba/mba/expr"
	"github.com/ringmba/mba/rewrite"
	"github.com/ringmba/mba/ring"
	"github.com/ringmba/mba/uexpr"
)

// placeholder records a fresh variable substituted for a subtree that
// LUExpr coercion could not decompose further (because its operator
// falls outside {Add, Sub, Neg, Const}, or because it is shared by more
// than one parent).
type placeholder struct {
	name string
	node *expr.Expr
}

// driver carries the state threaded through one call to Obfuscate: the
// node-identity visited set (so a shared node is rewritten once, exactly
// like expr.Substitute), the original DAG's reference counts (computed
// once up front, since the recursive rewrite only ever mutates a node's
// own contents in place, never adds new edges into already-counted
// subtrees), and the run's configuration.
type driver struct {
	width   ring.Width
	cfg     Config
	rnd     *rand.Rand
	auxVars []string
	counts  map[*expr.Expr]int
	visited map[*expr.Expr]bool
}

// Obfuscate rewrites e in place, recursing over its DAG with a
// visited set keyed by node identity so a node reachable from multiple
// parents is only rewritten once, and returns e for convenience.
func Obfuscate(e *expr.Expr, cfg Config, rnd *rand.Rand) *expr.Expr {
	d := &driver{
		width:   e.Width(),
		cfg:     cfg,
		rnd:     rnd,
		auxVars: auxVarNames(cfg.AuxVarCount),
		counts:  make(map[*expr.Expr]int),
		visited: make(map[*expr.Expr]bool),
	}
	refCounts(e, d.counts)
	d.obfuscateNode(e)
	return e
}

// refCounts walks the DAG once (each node visited at most once) and
// tallies, for every node, how many parent edges point to it.
func refCounts(e *expr.Expr, counts map[*expr.Expr]int) {
	visited := make(map[*expr.Expr]bool)
	var walk func(*expr.Expr)
	walk = func(n *expr.Expr) {
		if visited[n] {
			return
		}
		visited[n] = true
		switch n.Kind() {
		case expr.Const, expr.Var:
		case expr.Neg, expr.Not:
			counts[n.Left()]++
			walk(n.Left())
		default:
			counts[n.Left()]++
			walk(n.Left())
			counts[n.Right()]++
			walk(n.Right())
		}
	}
	walk(e)
}

// obfuscateNode is the per-node recursion step of §4.7: at an
// {Mul, Div, Mod, Shl, Shr} node it recurses into both children without
// linearizing the node itself; at every other node it attempts to
// rewrite the entire subtree as a linear combination of uniform
// expressions.
func (d *driver) obfuscateNode(node *expr.Expr) {
	if d.visited[node] {
		return
	}
	d.visited[node] = true

	switch node.Kind() {
	case expr.Const, expr.Var:
		// Terminal: nothing to decompose further.
	case expr.Mul, expr.Div, expr.Mod, expr.Shl, expr.Shr:
		d.obfuscateNode(node.Left())
		d.obfuscateNode(node.Right())
	default: // Add, Sub, Neg, And, Or, Xor, Not
		d.rewriteLinear(node)
	}
}

// rewriteLinear coerces node's subtree into an LUExpr (abstracting
// whatever can't be decomposed as a fresh placeholder variable), asks
// package rewrite for an equivalent combination of randomly generated
// operations, splices the result back in, and recursively obfuscates
// every captured placeholder's original subtree before substituting it
// back into the rewritten expression.
func (d *driver) rewriteLinear(node *expr.Expr) {
	var subs []placeholder
	lu := d.coerce(node, true, &subs).Normalize()

	extra := append(append([]string(nil), d.auxVars...), placeholderNames(subs)...)
	r, err := rewrite.RewriteWithBank(lu, extra, d.cfg.Randomize, d.rnd, d.cfg.bankConfig())
	if err != nil {
		// This level couldn't be rewritten; leave its surface form
		// alone but still obfuscate whatever subtrees the (failed)
		// coercion attempt captured as placeholders.
		for _, s := range subs {
			d.obfuscateNode(s.node)
		}
		return
	}

	rewritten := expr.FromLUExpr(r)
	*node = *rewritten

	for _, s := range subs {
		d.obfuscateNode(s.node)
		node.Substitute(s.node, s.name)
	}
}

func placeholderNames(subs []placeholder) []string {
	names := make([]string, len(subs))
	for i, s := range subs {
		names[i] = s.name
	}
	return names
}

// coerce converts node's subtree to an LUExpr. isTop suppresses the
// sharing check for the node the caller itself decided to decompose;
// every recursive call below it passes isTop=false, so any
// reached-through-an-edge node that is shared (counts>1) or whose
// operator falls outside {Add, Sub, Neg, Const, Var, Not, And, Or, Xor}
// becomes a placeholder instead of being decomposed further.
func (d *driver) coerce(node *expr.Expr, isTop bool, subs *[]placeholder) uexpr.LUExpr {
	if !isTop && d.counts[node] > 1 {
		return d.placeholderTerm(node, subs)
	}

	switch node.Kind() {
	case expr.Const:
		return uexpr.Constant(d.width, node.Const())
	case expr.Add:
		l := d.coerce(node.Left(), false, subs)
		r := d.coerce(node.Right(), false, subs)
		return concatLU(d.width, l, r)
	case expr.Sub:
		l := d.coerce(node.Left(), false, subs)
		r := negateLU(d.coerce(node.Right(), false, subs))
		return concatLU(d.width, l, r)
	case expr.Neg:
		return negateLU(d.coerce(node.Left(), false, subs))
	case expr.Var, expr.Not, expr.And, expr.Or, expr.Xor:
		u, ok := exprToUExpr(node)
		if !ok {
			return d.placeholderTerm(node, subs)
		}
		return uexpr.FromExpr(d.width, u)
	default: // Mul, Div, Mod, Shl, Shr
		return d.placeholderTerm(node, subs)
	}
}

// placeholderTerm returns the LUExpr for a fresh (or previously assigned,
// if node was already captured earlier in this same coercion) placeholder
// variable standing in for node.
func (d *driver) placeholderTerm(node *expr.Expr, subs *[]placeholder) uexpr.LUExpr {
	for _, s := range *subs {
		if s.node == node {
			return uexpr.FromVar(d.width, s.name)
		}
	}
	name := fmt.Sprintf("_sub_%d", len(*subs))
	*subs = append(*subs, placeholder{name: name, node: node})
	return uexpr.FromVar(d.width, name)
}

func concatLU(w ring.Width, a, b uexpr.LUExpr) uexpr.LUExpr {
	terms := append(append([]uexpr.Term(nil), a.Terms...), b.Terms...)
	return uexpr.New(w, terms...)
}

func negateLU(a uexpr.LUExpr) uexpr.LUExpr {
	terms := make([]uexpr.Term, len(a.Terms))
	for i, t := range a.Terms {
		terms[i] = uexpr.Term{Coeff: t.Coeff.Neg(), Expr: t.Expr}
	}
	return uexpr.New(a.Width(), terms...)
}

// exprToUExpr lifts an expr.Expr node of kind {Var, Not, And, Or, Xor}
// into the uexpr vocabulary. ok is false if a descendant turns out to be
// outside that vocabulary (which should not happen given the Kind
// switch in coerce, but is checked rather than assumed).
func exprToUExpr(e *expr.Expr) (*uexpr.Expr, bool) {
	switch e.Kind() {
	case expr.Var:
		return uexpr.VarExpr(e.Name()), true
	case expr.Not:
		l, ok := exprToUExpr(e.Left())
		if !ok {
			return nil, false
		}
		return uexpr.NotExpr(l), true
	case expr.And, expr.Or, expr.Xor:
		l, ok := exprToUExpr(e.Left())
		if !ok {
			return nil, false
		}
		r, ok := exprToUExpr(e.Right())
		if !ok {
			return nil, false
		}
		switch e.Kind() {
		case expr.And:
			return uexpr.AndExpr(l, r), true
		case expr.Or:
			return uexpr.OrExpr(l, r), true
		default:
			return uexpr.XorExpr(l, r), true
		}
	default:
		return nil, false
	}
}
