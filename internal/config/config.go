// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads an obfuscation (or rewrite) request from a TOML
// config file, compiled-in defaults, and command-line flags, the
// way go-musicfox layers koanf providers on top of one another: each
// later provider's values overlay the earlier ones, with flags always
// taking precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/ringmba/mba/ring"
)

// Request is one obfuscation or rewrite run's full configuration,
// assembled from (in increasing priority) compiled-in defaults, an
// optional TOML file, and command-line flags.
type Request struct {
	// Expr is the source expression text (§6 Expr grammar).
	Expr string `koanf:"expr"`
	// Width is the bit width of the ring ℤ/2^Width the expression lives
	// in (8, 16, 32, 64, or 128).
	Width int `koanf:"width"`
	// Printer selects the output renderer: "default", "c", "go", or
	// "tex".
	Printer string `koanf:"printer"`
	// AuxVarCount is the number of auxiliary no-op variables available
	// to the rewriter at each node.
	AuxVarCount int `koanf:"aux-vars"`
	// RewriteDepth bounds the depth of each randomly generated candidate
	// operation.
	RewriteDepth int `koanf:"rewrite-depth"`
	// RewriteCount is the number of candidate operations generated per
	// attempt.
	RewriteCount int `koanf:"rewrite-count"`
	// Attempts bounds how many random banks are tried before giving up
	// on a node.
	Attempts int `koanf:"attempts"`
	// Randomize samples a random point of the rewrite's solution lattice
	// rather than always the same particular solution.
	Randomize bool `koanf:"randomize"`
	// Seed seeds the PRNG driving random-bank generation and solution
	// sampling, for reproducible runs.
	Seed uint64 `koanf:"seed"`
}

func defaults() map[string]any {
	return map[string]any{
		"width":         64,
		"printer":       "default",
		"aux-vars":      2,
		"rewrite-depth": 3,
		"rewrite-count": 24,
		"attempts":      128,
		"randomize":     false,
		"seed":          1,
	}
}

// Load assembles a Request from compiled-in defaults, the TOML file at
// path (skipped if path is empty or does not exist), and flags, in that
// priority order. flags is typically a cobra command's own *pflag.FlagSet.
func Load(path string, flags *pflag.FlagSet) (Request, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Request{}, fmt.Errorf("config: loading defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return Request{}, fmt.Errorf("config: loading %s: %w", path, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return Request{}, fmt.Errorf("config: loading %s: %w", path, err)
		}
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Request{}, fmt.Errorf("config: loading flags: %w", err)
		}
	}

	var req Request
	if err := k.Unmarshal("", &req); err != nil {
		return Request{}, fmt.Errorf("config: unmarshaling: %w", err)
	}
	return req, nil
}

// RingWidth validates req.Width and converts it to a ring.Width.
func (r Request) RingWidth() (ring.Width, error) {
	switch r.Width {
	case 8:
		return ring.W8, nil
	case 16:
		return ring.W16, nil
	case 32:
		return ring.W32, nil
	case 64:
		return ring.W64, nil
	case 128:
		return ring.W128, nil
	default:
		return 0, fmt.Errorf("config: unsupported width %d (want 8, 16, 32, 64, or 128)", r.Width)
	}
}
