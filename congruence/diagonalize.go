// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package congruence

import (
	"github.com/ringmba/mba/internal/assertx"
	"github.com/ringmba/mba/linalg"
)

// Diagonalize reduces a to a diagonal matrix D in place (up to its
// min(rows,cols) leading entries) by unimodular row and column
// operations, and returns matrices S, T such that D = S*A_original*T.
//
// This is not Gaussian elimination: ℤ/2ⁿ is not a field, so a single
// elimination pass over a column or row does not necessarily zero it out
// (the eliminated entries only shrink). The inner loop below repeats
// until both the sub-column and sub-row are genuinely zero, which is
// guaranteed to terminate because each step strictly decreases either the
// count of non-zero entries or the minimal non-zero magnitude in the
// row/column being eliminated.
func Diagonalize(a *linalg.Matrix) (s, t linalg.Matrix) {
	w := a.Width()
	rows, cols := a.Dims()
	s = linalg.Identity(w, rows)
	t = linalg.Identity(w, cols)

	min := a.MinDim()
	for i := 0; i < min; i++ {
		for {
			pivot, ok := columnPivot(a, i)
			if ok {
				a.SwapRows(i, pivot)
				s.SwapRows(i, pivot)

				for k := i + 1; k < rows; k++ {
					if !a.At(k, i).IsZero() {
						m := a.At(k, i).Div(a.At(i, i)).Neg()
						a.RowMultiplyAdd(i, k, m)
						s.RowMultiplyAdd(i, k, m)
					}
				}
				continue
			}

			pivot, ok = rowPivot(a, i)
			if !ok {
				assertx.Check(subColumnAndRowZero(a, i), "diagonalize: pivot step exited with a non-zero off-diagonal entry remaining")
				break
			}

			a.SwapColumns(i, pivot)
			t.SwapColumns(i, pivot)

			for k := i + 1; k < cols; k++ {
				if !a.At(i, k).IsZero() {
					m := a.At(i, k).Div(a.At(i, i)).Neg()
					a.ColMultiplyAdd(i, k, m)
					t.ColMultiplyAdd(i, k, m)
				}
			}
		}
	}

	return s, t
}

// subColumnAndRowZero reports whether every off-diagonal entry in column
// i and row i (from i+1 onward) is zero, the invariant the inner loop
// above is supposed to establish before moving to the next pivot.
func subColumnAndRowZero(a *linalg.Matrix, i int) bool {
	rows, cols := a.Dims()
	for r := i + 1; r < rows; r++ {
		if !a.At(r, i).IsZero() {
			return false
		}
	}
	for c := i + 1; c < cols; c++ {
		if !a.At(i, c).IsZero() {
			return false
		}
	}
	return true
}

// columnPivot finds the row r>=i with the smallest non-zero magnitude
// entry in column i among rows i..rows-1, preferring the smallest row
// index on ties. ok is false if the sub-column (rows i+1..) is all zero.
func columnPivot(a *linalg.Matrix, i int) (row int, ok bool) {
	rows, _ := a.Dims()

	colZero := true
	for r := i + 1; r < rows; r++ {
		if !a.At(r, i).IsZero() {
			colZero = false
			break
		}
	}
	if colZero {
		return 0, false
	}

	best := -1
	for r := i; r < rows; r++ {
		e := a.At(r, i)
		if e.IsZero() {
			continue
		}
		if best == -1 || e.Less(a.At(best, i)) {
			best = r
		}
	}
	return best, true
}

// rowPivot is the column-wise dual of columnPivot.
func rowPivot(a *linalg.Matrix, i int) (col int, ok bool) {
	_, cols := a.Dims()
	row := a.Row(i)

	rowZero := true
	for c := i + 1; c < cols; c++ {
		if !row[c].IsZero() {
			rowZero = false
			break
		}
	}
	if rowZero {
		return 0, false
	}

	best := -1
	for c := i; c < cols; c++ {
		e := row[c]
		if e.IsZero() {
			continue
		}
		if best == -1 || e.Less(row[best]) {
			best = c
		}
	}
	return best, true
}
