// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package congruence

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ringmba/mba/linalg"
	"github.com/ringmba/mba/ring"
)

// elemComparer lets cmp.Diff compare ring.Elem by value instead of
// descending into big.Int's unexported internals.
var elemComparer = cmp.Comparer(func(a, b ring.Elem) bool { return a.Equal(b) })

func TestScalarSolveKnownGood(t *testing.T) {
	// 6x ≡ 4 (mod 256): gcd(6,256)=2, kernel=256/2=128.
	a := ring.New(ring.W8, 6)
	b := ring.New(ring.W8, 4)
	x, k, ok := ScalarSolve(a, b)
	if !ok {
		t.Fatal("expected a solution")
	}
	if !a.Mul(x).Equal(b) {
		t.Errorf("a*x = %v, want %v", a.Mul(x), b)
	}
	if want := ring.New(ring.W8, 128); !k.Equal(want) {
		t.Errorf("kernel = %v, want %v", k, want)
	}
	for tt := int64(0); tt < 256; tt++ {
		y := x.Add(k.Mul(ring.New(ring.W8, tt)))
		if !a.Mul(y).Equal(b) {
			t.Fatalf("a*(x+%d*k) != b", tt)
		}
	}
}

func TestScalarSolveUnsatisfiable(t *testing.T) {
	a := ring.New(ring.W8, 4)
	b := ring.New(ring.W8, 3)
	if _, _, ok := ScalarSolve(a, b); ok {
		t.Error("expected no solution (gcd 4 does not divide 3)")
	}
}

func TestScalarSolveZeroA(t *testing.T) {
	if _, _, ok := ScalarSolve(ring.Zero(ring.W8), ring.Zero(ring.W8)); !ok {
		t.Error("0*x=0 should have a solution")
	}
	if _, _, ok := ScalarSolve(ring.Zero(ring.W8), ring.One(ring.W8)); ok {
		t.Error("0*x=1 should have no solution")
	}
}

func TestScalarSolveExhaustiveProperty(t *testing.T) {
	for av := int64(0); av < 256; av++ {
		for bv := int64(0); bv < 256; bv += 17 {
			a := ring.New(ring.W8, av)
			b := ring.New(ring.W8, bv)
			x, k, ok := ScalarSolve(a, b)
			if !ok {
				// Verify no x in 0..255 actually works.
				for xv := int64(0); xv < 256; xv++ {
					if a.Mul(ring.New(ring.W8, xv)).Equal(b) {
						t.Fatalf("ScalarSolve(%d,%d) said no solution, but x=%d works", av, bv, xv)
					}
				}
				continue
			}
			if !a.Mul(x).Equal(b) {
				t.Fatalf("ScalarSolve(%d,%d): a*x != b", av, bv)
			}
			for tv := int64(0); tv < 256; tv += 31 {
				y := x.Add(k.Mul(ring.New(ring.W8, tv)))
				if !a.Mul(y).Equal(b) {
					t.Fatalf("ScalarSolve(%d,%d): a*(x+t*k) != b for t=%d", av, bv, tv)
				}
			}
		}
	}
}

func matFromRows(rows [][]int64) linalg.Matrix {
	m := linalg.NewMatrix(ring.W8, len(rows), len(rows[0]))
	for r, row := range rows {
		for c, v := range row {
			m.Set(r, c, ring.New(ring.W8, v))
		}
	}
	return m
}

func vecFrom(vs ...int64) linalg.Vector {
	es := make([]ring.Elem, len(vs))
	for i, v := range vs {
		es[i] = ring.New(ring.W8, v)
	}
	return linalg.VectorFromSlice(es)
}

func TestDiagonalizeInvariant(t *testing.T) {
	a := matFromRows([][]int64{{2, 4}, {6, 8}})
	orig := a.Clone()
	s, tm := Diagonalize(&a)

	rows, cols := orig.Dims()
	min := orig.MinDim()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if i >= min || j >= min || i != j {
				if !a.At(i, j).IsZero() && i != j {
					// off-diagonal entries beyond min(rows,cols) may be
					// non-zero only past the diagonal block; nothing to
					// assert here beyond the reconstruction check below.
					_ = j
				}
			}
		}
	}

	// D = S * A_original * T
	recon := s.Mul(orig).Mul(tm)
	if !recon.Equal(a) {
		t.Errorf("S*A*T = %v, want diagonalized %v", recon, a)
	}
}

func TestSolveCongruencesLattice(t *testing.T) {
	a := matFromRows([][]int64{{2, 4}, {6, 8}})
	b := vecFrom(2, 6)

	l := SolveCongruences(&a, b)
	if l.IsEmpty() {
		t.Fatal("expected solutions")
	}

	aOrig := matFromRows([][]int64{{2, 4}, {6, 8}})
	check := aOrig.MulVector(l.Offset)
	for i := 0; i < check.Len(); i++ {
		if !check.At(i).Equal(b.At(i)) {
			t.Errorf("A*offset = %v, want %v", check, b)
		}
	}

	for _, basisVec := range l.Basis {
		zero := aOrig.MulVector(basisVec)
		if !zero.IsZero() {
			t.Errorf("A*basis = %v, want 0", zero)
		}
	}
}

func TestSolveCongruencesStructuralDiff(t *testing.T) {
	a := matFromRows([][]int64{{1, 0}, {0, 1}})
	b := vecFrom(5, 9)

	got := SolveCongruences(&a, b)
	want := AffineLattice{Offset: vecFrom(5, 9)}

	if diff := cmp.Diff(want, got, elemComparer, cmp.AllowUnexported(linalg.Vector{})); diff != "" {
		t.Errorf("SolveCongruences mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveCongruencesEmpty(t *testing.T) {
	// 4x = 3 has no solution mod 256, so a 1x1 system with a=4, b=3 is empty.
	a := matFromRows([][]int64{{4}})
	b := vecFrom(3)
	l := SolveCongruences(&a, b)
	if !l.IsEmpty() {
		t.Error("expected empty lattice")
	}
}
