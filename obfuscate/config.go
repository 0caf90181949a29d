// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obfuscate implements the recursive expression-DAG obfuscation
// driver: at every node that is not itself an {Mul, Div, Mod, Shl, Shr}
// operator, the surrounding linear combination of uniform expressions is
// coerced out of the Expr tree and handed to package rewrite, and the
// rewritten result is spliced back in, recursing into whatever subtrees
// had to be abstracted as placeholders along the way.
package obfuscate

import (
	"fmt"

	"github.com/ringmba/mba/rewrite"
)

// Config controls one obfuscation run.
type Config struct {
	// AuxVarCount is the number of auxiliary variables (aux0..auxK-1)
	// made available to the rewriter at every node. They are
	// mathematical no-ops: the linear system that produces them forces
	// their net contribution to cancel on every valuation, but they
	// still appear in the obfuscated output, adding visual noise.
	AuxVarCount int

	// RewriteDepth bounds the depth of each randomly generated candidate
	// operation (rewrite.Config.MaxDepth).
	RewriteDepth int

	// RewriteCount is the number of candidate operations generated per
	// attempt (rewrite.Config.BankSize).
	RewriteCount int

	// Attempts bounds how many random banks are tried per node before
	// giving up on rewriting it (rewrite.Config.Attempts). Zero means
	// use rewrite.DefaultConfig's attempt count.
	Attempts int

	// Randomize samples a random point of the rewrite's solution lattice
	// instead of always the same particular solution.
	Randomize bool
}

func (c Config) bankConfig() rewrite.Config {
	cfg := rewrite.DefaultConfig()
	if c.RewriteDepth > 0 {
		cfg.MaxDepth = c.RewriteDepth
	}
	if c.RewriteCount > 0 {
		cfg.BankSize = c.RewriteCount
	}
	if c.Attempts > 0 {
		cfg.Attempts = c.Attempts
	}
	return cfg
}

func auxVarNames(k int) []string {
	names := make([]string, k)
	for i := range names {
		names[i] = fmt.Sprintf("aux%d", i)
	}
	return names
}
