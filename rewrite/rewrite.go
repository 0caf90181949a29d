// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"math/rand/v2"
	"sort"

	"github.com/ringmba/mba/congruence"
	"github.com/ringmba/mba/linalg"
	"github.com/ringmba/mba/ring"
	"github.com/ringmba/mba/uexpr"
)

// Rewrite attempts to express e as a linear combination of the given
// candidate operations: it collects the union of variables across e and
// ops, builds the matrix of every operation's truth table over all
// 2^|vars| boolean valuations against e's own truth table, and solves the
// resulting linear system over ℤ/2ⁿ. If the system has solutions, ok is
// true and r is an LUExpr expressing e purely in terms of ops's own
// uniform-expression vocabulary (pointwise equal to e on every boolean
// valuation, hence equal to e over all of ℤ/2ⁿ by linearity).
//
// When randomize is true, a random element of the solution lattice's
// kernel is added to the offset (via rnd) instead of always returning the
// same particular solution; rnd may be nil when randomize is false.
func Rewrite(e uexpr.LUExpr, ops []uexpr.LUExpr, randomize bool, rnd *rand.Rand) (r uexpr.LUExpr, ok bool) {
	w := e.Width()

	vars := collectVars(e, ops)
	rows := 1 << len(vars)
	cols := len(ops)

	a := linalg.NewMatrix(w, rows, cols)
	b := linalg.NewVector(w, rows)

	val := uexpr.NewValuation(w, vars)
	for i := 0; i < rows; i++ {
		for j, name := range vars {
			if (i>>j)&1 == 0 {
				val.Set(name, ring.Zero(w))
			} else {
				val.Set(name, ring.Ones(w))
			}
		}

		for j, op := range ops {
			a.Set(i, j, op.Eval(val))
		}
		b.Set(i, e.Eval(val))
	}

	lattice := congruence.SolveCongruences(&a, b)
	if lattice.IsEmpty() {
		return uexpr.LUExpr{}, false
	}

	solution := lattice.Offset.Clone()
	if randomize {
		for _, basisVec := range lattice.Basis {
			solution.AddAssign(basisVec.Scale(randElem(w, rnd)))
		}
	}

	var terms []uexpr.Term
	for j, op := range ops {
		c := solution.At(j)
		for _, t := range op.Terms {
			terms = append(terms, uexpr.Term{Coeff: c.Mul(t.Coeff), Expr: t.Expr})
		}
	}

	return uexpr.New(w, terms...).Normalize(), true
}

// collectVars returns the sorted, deduplicated union of every variable
// name occurring in e and ops.
func collectVars(e uexpr.LUExpr, ops []uexpr.LUExpr) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(names []string) {
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	add(e.Vars())
	for _, op := range ops {
		add(op.Vars())
	}
	sort.Strings(out)
	return out
}

func randElem(w ring.Width, rnd *rand.Rand) ring.Elem {
	return ring.New(w, int64(rnd.Uint64()))
}
