// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring

import "testing"

func TestWrapping(t *testing.T) {
	a := New(W8, 250)
	b := New(W8, 10)
	got := a.Add(b)
	want := New(W8, 4) // 260 mod 256
	if !got.Equal(want) {
		t.Errorf("250+10 mod 256 = %v, want %v", got, want)
	}
}

func TestNegZero(t *testing.T) {
	z := Zero(W8)
	if !z.Neg().Equal(z) {
		t.Errorf("-0 = %v, want 0", z.Neg())
	}
}

func TestOnes(t *testing.T) {
	o := Ones(W8)
	if got, want := o.String(), "-1"; got != want {
		t.Errorf("Ones(8).String() = %q, want %q", got, want)
	}
	if !o.PrintNegative() {
		t.Errorf("Ones(8) should print as negative")
	}
}

func TestPrintNegative(t *testing.T) {
	cases := []struct {
		v    int64
		want bool
	}{
		{0, false},
		{127, false},
		{128, true},
		{255, true},
	}
	for _, c := range cases {
		e := New(W8, c.v)
		if got := e.PrintNegative(); got != c.want {
			t.Errorf("New(W8, %d).PrintNegative() = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestFromStringRadix(t *testing.T) {
	e, err := FromStringRadix(W8, "-1")
	if err != nil {
		t.Fatal(err)
	}
	if !e.Equal(Ones(W8)) {
		t.Errorf("FromStringRadix(-1) = %v, want -1", e)
	}

	if _, err := FromStringRadix(W8, "abc"); err == nil {
		t.Error("expected parse error for non-numeric input")
	}
}

func TestBitwise(t *testing.T) {
	a := New(W8, 0b1100)
	b := New(W8, 0b1010)
	if got, want := a.And(b), New(W8, 0b1000); !got.Equal(want) {
		t.Errorf("And = %v, want %v", got, want)
	}
	if got, want := a.Or(b), New(W8, 0b1110); !got.Equal(want) {
		t.Errorf("Or = %v, want %v", got, want)
	}
	if got, want := a.Xor(b), New(W8, 0b0110); !got.Equal(want) {
		t.Errorf("Xor = %v, want %v", got, want)
	}
	if got, want := New(W8, 0).Not(), Ones(W8); !got.Equal(want) {
		t.Errorf("Not(0) = %v, want %v", got, want)
	}
}

func TestDivRem(t *testing.T) {
	a := New(W8, 17)
	b := New(W8, 5)
	if got, want := a.Div(b), New(W8, 3); !got.Equal(want) {
		t.Errorf("17/5 = %v, want %v", got, want)
	}
	if got, want := a.Rem(b), New(W8, 2); !got.Equal(want) {
		t.Errorf("17%%5 = %v, want %v", got, want)
	}
}

func TestDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on division by zero")
		}
	}()
	New(W8, 1).Div(Zero(W8))
}

func TestMismatchedWidthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on mismatched widths")
		}
	}()
	New(W8, 1).Add(New(W16, 1))
}
