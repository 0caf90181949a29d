// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uexpr

import "errors"

// ErrParse wraps every syntax error returned by Parse and ParseLUExpr, so
// callers can test for a parse failure with errors.Is regardless of the
// underlying participle grammar's own error type.
var ErrParse = errors.New("uexpr: parse error")
