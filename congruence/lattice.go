// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package congruence

import (
	"github.com/ringmba/mba/linalg"
	"github.com/ringmba/mba/ring"
)

// AffineLattice denotes the solution set {offset + Σ aᵢ*basis[i] : aᵢ ∈ ℤ/2ⁿ}
// of a linear congruence system. The distinguished empty lattice (no
// solutions) has an Offset of dimension 0.
type AffineLattice struct {
	Offset linalg.Vector
	Basis  []linalg.Vector
}

// Empty returns the distinguished "no solution" lattice.
func Empty() AffineLattice {
	return AffineLattice{}
}

// IsEmpty reports whether l denotes "no solution".
func (l AffineLattice) IsEmpty() bool {
	return l.Offset.IsEmpty()
}

// Sample returns a deterministic element of the lattice: a copy of the
// offset, with no kernel contribution.
func (l AffineLattice) Sample() linalg.Vector {
	return l.Offset.Clone()
}

// SolveCongruences solves A*x = b over ℤ/2ⁿ and returns the affine
// lattice of all solutions. a is diagonalized in place; pass a.Clone() to
// preserve the original matrix.
func SolveCongruences(a *linalg.Matrix, b linalg.Vector) AffineLattice {
	rows, cols := a.Dims()
	w := a.Width()

	s, t := Diagonalize(a)
	bPrime := s.MulVector(b)

	min := a.MinDim()
	for i := min; i < bPrime.Len(); i++ {
		if !bPrime.At(i).IsZero() {
			return Empty()
		}
	}

	offset := linalg.NewVector(w, cols)
	var basis []linalg.Vector

	for i := 0; i < min; i++ {
		x, kern, ok := ScalarSolve(a.At(i, i), bPrime.At(i))
		if !ok {
			return Empty()
		}
		offset.Set(i, x)

		if !kern.IsZero() {
			v := linalg.NewVector(w, cols)
			v.Set(i, kern)
			basis = append(basis, v)
		}
	}

	// Variables beyond the equation count are unconstrained.
	for i := rows; i < cols; i++ {
		v := linalg.NewVector(w, cols)
		v.Set(i, ring.One(w))
		basis = append(basis, v)
	}

	offset = t.MulVector(offset)
	for i := range basis {
		basis[i] = t.MulVector(basis[i])
	}

	return AffineLattice{Offset: offset, Basis: basis}
}
