// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/ringmba/mba/ring"
)

func TestLoadDefaults(t *testing.T) {
	req, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if req.Width != 64 {
		t.Errorf("Width = %d, want 64", req.Width)
	}
	if req.Printer != "default" {
		t.Errorf("Printer = %q, want %q", req.Printer, "default")
	}
	if req.RewriteCount != 24 {
		t.Errorf("RewriteCount = %d, want 24", req.RewriteCount)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mba.toml")
	if err := os.WriteFile(path, []byte("width = 32\nexpr = \"x + y\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	req, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if req.Width != 32 {
		t.Errorf("Width = %d, want 32", req.Width)
	}
	if req.Expr != "x + y" {
		t.Errorf("Expr = %q, want %q", req.Expr, "x + y")
	}
	if req.RewriteDepth != 3 {
		t.Errorf("RewriteDepth = %d, want default 3", req.RewriteDepth)
	}
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mba.toml")
	if err := os.WriteFile(path, []byte("width = 32\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("width", 64, "")
	flags.Set("width", "16")

	req, err := Load(path, flags)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if req.Width != 16 {
		t.Errorf("Width = %d, want 16 (flag should win over file)", req.Width)
	}
}

func TestRingWidth(t *testing.T) {
	cases := []struct {
		in   int
		want ring.Width
		ok   bool
	}{
		{8, ring.W8, true},
		{64, ring.W64, true},
		{128, ring.W128, true},
		{24, 0, false},
	}
	for _, c := range cases {
		req := Request{Width: c.in}
		got, err := req.RingWidth()
		if (err == nil) != c.ok {
			t.Errorf("RingWidth(%d): err = %v, want ok=%v", c.in, err, c.ok)
			continue
		}
		if c.ok && got != c.want {
			t.Errorf("RingWidth(%d) = %v, want %v", c.in, got, c.want)
		}
	}
}
