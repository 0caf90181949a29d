// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import "errors"

// ErrShape is panicked when an operation is given operands whose
// dimensions are incompatible.
var ErrShape = errors.New("linalg: dimension mismatch")

// ErrWidth is panicked when an operation is given operands over
// different ring widths.
var ErrWidth = errors.New("linalg: ring width mismatch")
