// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package congruence solves linear congruences over ℤ/2ⁿ: a scalar
// extended-Euclidean solver, Smith-style diagonalization of an integer
// matrix by unimodular row/column operations, and assembly of the
// resulting affine lattice of all solutions to A*x = b.
package congruence

import "errors"

// ErrNoSolution is the error value for a congruence (scalar or matrix)
// with no solution in ℤ/2ⁿ. ScalarSolve and SolveCongruences do not
// return it: they report that case through ok=false and the empty
// lattice respectively.
var ErrNoSolution = errors.New("congruence: no solution")
