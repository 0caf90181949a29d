// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package printer names the output targets shared by uexpr.LUExpr and
// expr.Expr rendering: a default textual form, a standalone C function, a
// Go function using a wrapping-arithmetic helper type, and (for uexpr
// only) a LaTeX expression.
package printer

// Target selects how an expression is rendered.
type Target int

const (
	// Default renders a bare infix expression.
	Default Target = iota
	// C renders a standalone C function.
	C
	// Go renders a standalone Go function over a wrapping integer type.
	Go
	// Tex renders a LaTeX expression. Not supported for expr.Expr.
	Tex
)

// CType returns the C uintN_t type name for a bit width, or "" if
// unsupported.
func CType(bits int) string {
	switch bits {
	case 8:
		return "uint8_t"
	case 16:
		return "uint16_t"
	case 32:
		return "uint32_t"
	case 64:
		return "uint64_t"
	case 128:
		return "unsigned __int128"
	default:
		return ""
	}
}

// GoType returns the Go wrapping-ring type name for a bit width, or "" if
// unsupported. Widths beyond native machine integers use the module's own
// ring.Elem, named fully qualified for standalone generated snippets.
func GoType(bits int) string {
	switch bits {
	case 8:
		return "uint8"
	case 16:
		return "uint16"
	case 32:
		return "uint32"
	case 64:
		return "uint64"
	default:
		return "ring.Elem"
	}
}
