// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uexpr

import "github.com/ringmba/mba/ring"

// Valuation maps variable names to ring elements. Insertion-ordered;
// lookup is linear, which is fine because the variable counts the
// rewriter deals with are small (a handful of operands plus aux vars).
type Valuation struct {
	width ring.Width
	names []string
	vals  []ring.Elem
}

// NewValuation initializes a valuation over vars, each bound to zero.
func NewValuation(w ring.Width, vars []string) *Valuation {
	vals := make([]ring.Elem, len(vars))
	for i := range vals {
		vals[i] = ring.Zero(w)
	}
	names := make([]string, len(vars))
	copy(names, vars)
	return &Valuation{width: w, names: names, vals: vals}
}

// Width returns the ring width this valuation evaluates under.
func (v *Valuation) Width() ring.Width { return v.width }

// Get returns the value bound to name. Panics if name is not present.
func (v *Valuation) Get(name string) ring.Elem {
	for i, n := range v.names {
		if n == name {
			return v.vals[i]
		}
	}
	panic("uexpr: unbound variable " + name)
}

// Set rebinds name to val. Panics if name is not present.
func (v *Valuation) Set(name string, val ring.Elem) {
	for i, n := range v.names {
		if n == name {
			v.vals[i] = val
			return
		}
	}
	panic("uexpr: unbound variable " + name)
}

// Names returns the insertion-ordered variable list.
func (v *Valuation) Names() []string { return v.names }
