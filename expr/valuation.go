// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "github.com/ringmba/mba/ring"

// Valuation maps variable names to ring elements, insertion-ordered.
type Valuation struct {
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
	return &Valuation{names: names, vals: vals}
}

// Get returns the value bound to name. Panics if name is not present.
func (v *Valuation) Get(name string) ring.Elem {
	for i, n := range v.names {
		if n == name {
			return v.vals[i]
		}
	}
	panic("expr: unbound variable " + name)
}

// Set rebinds name to val. Panics if name is not present.
func (v *Valuation) Set(name string, val ring.Elem) {
	for i, n := range v.names {
		if n == name {
			v.vals[i] = val
			return
		}
	}
	panic("expr: unbound variable " + name)
}
