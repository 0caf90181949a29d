// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"testing"

	"github.com/ringmba/mba/printer"
	"github.com/ringmba/mba/ring"
)

func TestWidthFromBits(t *testing.T) {
	cases := []struct {
		bits int
		want ring.Width
		ok   bool
	}{
		{8, ring.W8, true},
		{128, ring.W128, true},
		{12, 0, false},
	}
	for _, c := range cases {
		got, err := widthFromBits(c.bits)
		if (err == nil) != c.ok {
			t.Errorf("widthFromBits(%d): err = %v, want ok=%v", c.bits, err, c.ok)
			continue
		}
		if c.ok && got != c.want {
			t.Errorf("widthFromBits(%d) = %v, want %v", c.bits, got, c.want)
		}
	}
}

func TestParsePrinterTarget(t *testing.T) {
	cases := []struct {
		in   string
		want printer.Target
		ok   bool
	}{
		{"default", printer.Default, true},
		{"", printer.Default, true},
		{"c", printer.C, true},
		{"go", printer.Go, true},
		{"tex", printer.Tex, true},
		{"rust", 0, false},
	}
	for _, c := range cases {
		got, err := parsePrinterTarget(c.in)
		if (err == nil) != c.ok {
			t.Errorf("parsePrinterTarget(%q): err = %v, want ok=%v", c.in, err, c.ok)
			continue
		}
		if c.ok && got != c.want {
			t.Errorf("parsePrinterTarget(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
