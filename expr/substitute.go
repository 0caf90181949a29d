// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// Substitute replaces every occurrence of Var(name) reachable from e with
// sub, mutating the DAG in place. Because children are shared *Expr
// pointers, a node reachable from multiple parents is naturally updated
// for all of them by the single in-place write; the visited set below
// exists to ensure each shared node's subtree is walked exactly once per
// call, not to avoid re-applying the substitution (which is idempotent).
func (e *Expr) Substitute(sub *Expr, name string) {
	visited := make(map[*Expr]bool)
	e.substitute(sub, name, visited)
}

func (e *Expr) substitute(sub *Expr, name string, visited map[*Expr]bool) {
	if visited[e] {
		return
	}
	visited[e] = true

	switch e.kind {
	case Const:
	case Var:
		if e.name == name {
			*e = *sub
		}
	case Neg, Not:
		e.children[0].substitute(sub, name, visited)
	default:
		e.children[0].substitute(sub, name, visited)
		e.children[1].substitute(sub, name, visited)
	}
}
