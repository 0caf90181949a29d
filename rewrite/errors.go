// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rewrite rewrites a linear MBA expression (an LUExpr) in terms
// of a list of candidate operations by solving the linear system that
// equates their truth tables over all boolean valuations of the shared
// variable set, and provides a random-bank harness that generates its
// own candidate operations when the caller has none in mind.
package rewrite

import "errors"

// ErrExhausted is returned by the random-bank harness when no attempt
// within the configured budget produced a usable rewrite.
var ErrExhausted = errors.New("rewrite: exhausted attempts without finding a rewrite")
