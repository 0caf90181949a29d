// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linalg provides dense vectors and row-major matrices over the
// modular ring ring.Elem, along with the elementary row/column operations
// the congruence solver's diagonalization needs.
package linalg

import "github.com/ringmba/mba/ring"

// Vector is a fixed-dimension mutable vector over ℤ/2ⁿ.
type Vector struct {
	width   ring.Width
	entries []ring.Elem
}

// NewVector returns the zero vector of the given dimension over ℤ/2^w.
func NewVector(w ring.Width, dim int) Vector {
	v := Vector{width: w, entries: make([]ring.Elem, dim)}
	for i := range v.entries {
		v.entries[i] = ring.Zero(w)
	}
	return v
}

// VectorFromSlice copies es into a new Vector. All elements must share
// the same width.
func VectorFromSlice(es []ring.Elem) Vector {
	v := Vector{entries: make([]ring.Elem, len(es))}
	if len(es) > 0 {
		v.width = es[0].Width()
	}
	copy(v.entries, es)
	return v
}

// Len returns the dimension of v.
func (v Vector) Len() int { return len(v.entries) }

// IsEmpty reports whether v has dimension 0; this is the distinguished
// "no solution" marker used by AffineLattice.
func (v Vector) IsEmpty() bool { return len(v.entries) == 0 }

// Width returns the ring width of v's entries.
func (v Vector) Width() ring.Width { return v.width }

// At returns the i-th entry of v.
func (v Vector) At(i int) ring.Elem { return v.entries[i] }

// Set assigns the i-th entry of v.
func (v *Vector) Set(i int, e ring.Elem) { v.entries[i] = e }

// Entries returns the backing slice of v. Callers must not retain it
// across mutations of v.
func (v Vector) Entries() []ring.Elem { return v.entries }

// Clone returns a deep copy of v.
func (v Vector) Clone() Vector {
	return VectorFromSlice(v.entries)
}

// AddAssign adds o into v in place: v <- v + o.
func (v *Vector) AddAssign(o Vector) {
	if v.Len() != o.Len() {
		panic(ErrShape)
	}
	for i := range v.entries {
		v.entries[i] = v.entries[i].Add(o.entries[i])
	}
}

// Scale returns a new vector equal to v with every entry multiplied by c.
func (v Vector) Scale(c ring.Elem) Vector {
	r := v.Clone()
	for i := range r.entries {
		r.entries[i] = r.entries[i].Mul(c)
	}
	return r
}

// IsZero reports whether every entry of v is zero.
func (v Vector) IsZero() bool {
	for _, e := range v.entries {
		if !e.IsZero() {
			return false
		}
	}
	return true
}
