// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import "github.com/ringmba/mba/ring"

// Matrix is a dense, row-major matrix over ℤ/2ⁿ.
type Matrix struct {
	rows, cols int
	width      ring.Width
	entries    []ring.Elem
}

// NewMatrix returns the r×c zero matrix over ℤ/2^w.
func NewMatrix(w ring.Width, r, c int) Matrix {
	m := Matrix{rows: r, cols: c, width: w, entries: make([]ring.Elem, r*c)}
	for i := range m.entries {
		m.entries[i] = ring.Zero(w)
	}
	return m
}

// Identity returns the n×n identity matrix over ℤ/2^w.
func Identity(w ring.Width, n int) Matrix {
	m := NewMatrix(w, n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, ring.One(w))
	}
	return m
}

// Dims returns the row and column counts of m.
func (m Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// MinDim returns min(rows, cols), the number of entries the
// diagonalization in package congruence can produce.
func (m Matrix) MinDim() int {
	if m.rows < m.cols {
		return m.rows
	}
	return m.cols
}

// Width returns the ring width of m's entries.
func (m Matrix) Width() ring.Width { return m.width }

func (m Matrix) index(r, c int) int { return r*m.cols + c }

// At returns the (r,c) entry of m.
func (m Matrix) At(r, c int) ring.Elem { return m.entries[m.index(r, c)] }

// Set assigns the (r,c) entry of m.
func (m *Matrix) Set(r, c int, e ring.Elem) { m.entries[m.index(r, c)] = e }

// Row returns the entries of row r as a slice sharing m's storage.
func (m Matrix) Row(r int) []ring.Elem {
	i := m.index(r, 0)
	return m.entries[i : i+m.cols]
}

// Column is an iterator over a single column of a Matrix, stepping by
// the row stride (cols) rather than by 1.
type Column struct {
	m   *Matrix
	col int
	row int
}

// Col returns an iterator over column c of m.
func (m *Matrix) Col(c int) *Column {
	return &Column{m: m, col: c}
}

// Next advances the iterator and reports whether a value is available.
func (it *Column) Next() bool {
	if it.row >= it.m.rows {
		return false
	}
	it.row++
	return true
}

// At returns the current entry, valid only after a successful Next.
func (it *Column) At() ring.Elem { return it.m.At(it.row-1, it.col) }

// Index returns the row of the current entry.
func (it *Column) Index() int { return it.row - 1 }

// SwapRows exchanges rows i and j in place.
func (m *Matrix) SwapRows(i, j int) {
	if i == j {
		return
	}
	ri, rj := m.index(i, 0), m.index(j, 0)
	for k := 0; k < m.cols; k++ {
		m.entries[ri+k], m.entries[rj+k] = m.entries[rj+k], m.entries[ri+k]
	}
}

// SwapColumns exchanges columns i and j in place.
func (m *Matrix) SwapColumns(i, j int) {
	if i == j {
		return
	}
	for r := 0; r < m.rows; r++ {
		ii, jj := m.index(r, i), m.index(r, j)
		m.entries[ii], m.entries[jj] = m.entries[jj], m.entries[ii]
	}
}

// RowMultiplyAdd performs dst <- dst + c*src over the rows src and dst.
func (m *Matrix) RowMultiplyAdd(src, dst int, c ring.Elem) {
	for k := 0; k < m.cols; k++ {
		s := m.At(src, k).Mul(c)
		m.Set(dst, k, m.At(dst, k).Add(s))
	}
}

// ColMultiplyAdd performs dst <- dst + c*src over the columns src and dst.
func (m *Matrix) ColMultiplyAdd(src, dst int, c ring.Elem) {
	for r := 0; r < m.rows; r++ {
		s := m.At(r, src).Mul(c)
		m.Set(r, dst, m.At(r, dst).Add(s))
	}
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	out := Matrix{rows: m.rows, cols: m.cols, width: m.width, entries: make([]ring.Elem, len(m.entries))}
	copy(out.entries, m.entries)
	return out
}

// Mul returns the naive O(rows*cols*n) product m*o.
func (m Matrix) Mul(o Matrix) Matrix {
	if m.cols != o.rows {
		panic(ErrShape)
	}
	out := NewMatrix(m.width, m.rows, o.cols)
	for i := 0; i < out.rows; i++ {
		for j := 0; j < out.cols; j++ {
			sum := ring.Zero(m.width)
			for k := 0; k < m.cols; k++ {
				sum = sum.Add(m.At(i, k).Mul(o.At(k, j)))
			}
			out.Set(i, j, sum)
		}
	}
	return out
}

// MulVector returns the product m*v.
func (m Matrix) MulVector(v Vector) Vector {
	if m.cols != v.Len() {
		panic(ErrShape)
	}
	out := NewVector(m.width, m.rows)
	for i := 0; i < m.rows; i++ {
		sum := ring.Zero(m.width)
		row := m.Row(i)
		for k := 0; k < m.cols; k++ {
			sum = sum.Add(row[k].Mul(v.At(k)))
		}
		out.Set(i, sum)
	}
	return out
}

// Equal reports whether m and o have the same dimensions and entries.
func (m Matrix) Equal(o Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.entries {
		if !m.entries[i].Equal(o.entries[i]) {
			return false
		}
	}
	return true
}
