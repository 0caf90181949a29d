// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"math/rand/v2"

	"github.com/ringmba/mba/ring"
	"github.com/ringmba/mba/uexpr"
)

// Config tunes the random-bank harness. The zero value is invalid; use
// DefaultConfig for the documented defaults.
type Config struct {
	// Attempts is the number of random banks tried before giving up.
	Attempts int
	// BankSize is the number of random UExprs generated per attempt.
	BankSize int
	// MaxDepth bounds the depth of each generated UExpr.
	MaxDepth int
}

// DefaultConfig returns the harness's documented defaults: 128 attempts,
// 24 candidate operations per attempt, depth at most 3.
func DefaultConfig() Config {
	return Config{Attempts: 128, BankSize: 24, MaxDepth: 3}
}

// RandomBank generates cfg.BankSize random LUExprs over vars, each lifted
// from a UExpr of depth at most cfg.MaxDepth.
func RandomBank(w ring.Width, vars []string, cfg Config, rnd *rand.Rand) []uexpr.LUExpr {
	ops := make([]uexpr.LUExpr, cfg.BankSize)
	for i := range ops {
		ops[i] = uexpr.FromExpr(w, RandomUExpr(vars, cfg.MaxDepth, rnd))
	}
	return ops
}

// RandomUExpr generates a random UExpr over vars with depth at most
// depth: at each level it picks uniformly among {Var, Not, And, Or, Xor},
// recursing with depth-1, except at depth 0 where a Var is forced. Ones
// is deliberately never emitted, since it trivially simplifies away.
func RandomUExpr(vars []string, depth int, rnd *rand.Rand) *uexpr.Expr {
	if depth <= 0 {
		return uexpr.VarExpr(vars[rnd.IntN(len(vars))])
	}

	switch rnd.IntN(5) {
	case 0:
		return uexpr.VarExpr(vars[rnd.IntN(len(vars))])
	case 1:
		return uexpr.NotExpr(RandomUExpr(vars, depth-1, rnd))
	case 2:
		return uexpr.AndExpr(RandomUExpr(vars, depth-1, rnd), RandomUExpr(vars, depth-1, rnd))
	case 3:
		return uexpr.OrExpr(RandomUExpr(vars, depth-1, rnd), RandomUExpr(vars, depth-1, rnd))
	default:
		return uexpr.XorExpr(RandomUExpr(vars, depth-1, rnd), RandomUExpr(vars, depth-1, rnd))
	}
}

// RewriteWithBank repeatedly generates a fresh random bank of candidate
// operations over the union of e's own variables and extraVars (typically
// the configured auxiliary variables), and attempts Rewrite against each,
// until one succeeds or cfg.Attempts is exhausted.
func RewriteWithBank(e uexpr.LUExpr, extraVars []string, randomize bool, rnd *rand.Rand, cfg Config) (uexpr.LUExpr, error) {
	w := e.Width()
	vars := collectVars(e, nil)
	vars = append(vars, extraVars...)

	for attempt := 0; attempt < cfg.Attempts; attempt++ {
		ops := RandomBank(w, vars, cfg, rnd)
		if r, ok := Rewrite(e, ops, randomize, rnd); ok {
			return r, nil
		}
	}

	return uexpr.LUExpr{}, ErrExhausted
}
