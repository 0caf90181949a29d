// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polynomial

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ringmba/mba/ring"
)

// Parse parses a polynomial over ℤ/2^w in either of two forms, chosen by
// whether the text contains an "x": a space-separated list of
// descending-degree coefficients ("4 3 2" means 4X^2+3X+2), or a
// mathematical expression ("4x^2 + 3x + 2", with an optional "*" between
// a coefficient and its variable).
func Parse(w ring.Width, s string) (Polynomial, error) {
	lower := strings.ToLower(s)
	if strings.ContainsRune(lower, 'x') {
		return parseExpr(w, lower)
	}
	return parseCoeffList(w, lower)
}

func parseCoeffList(w ring.Width, s string) (Polynomial, error) {
	fields := strings.Fields(s)
	coeffs := make([]ring.Elem, len(fields))
	for i, f := range fields {
		v, err := ring.FromStringRadix(w, f)
		if err != nil {
			return Polynomial{}, fmt.Errorf("%w: %v", ErrParse, err)
		}
		coeffs[i] = v
	}
	// Input is in descending-degree order; Polynomial stores ascending.
	for i, j := 0, len(coeffs)-1; i < j; i, j = i+1, j-1 {
		coeffs[i], coeffs[j] = coeffs[j], coeffs[i]
	}
	return FromCoeffs(w, coeffs).Truncated(), nil
}

func parseExpr(w ring.Width, s string) (Polynomial, error) {
	s = strings.ReplaceAll(s, " ", "")
	var coeffs []ring.Elem
	i := 0
	last := -1
	for i < len(s) {
		if i == last {
			return Polynomial{}, fmt.Errorf("%w: stuck parsing %q at %d", ErrParse, s, i)
		}
		last = i

		neg := false
		switch s[i] {
		case '+':
			i++
		case '-':
			neg = true
			i++
		}

		// Parse the coefficient, defaulting to 1 if absent.
		coeffStr := ""
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			coeffStr += string(s[i])
			i++
		}
		var c ring.Elem
		if coeffStr == "" {
			c = ring.One(w)
		} else {
			v, err := strconv.ParseUint(coeffStr, 10, 64)
			if err != nil {
				return Polynomial{}, fmt.Errorf("%w: bad coefficient %q", ErrParse, coeffStr)
			}
			c = ring.New(w, int64(v))
		}
		if i < len(s) && s[i] == '*' {
			i++
		}
		if neg {
			c = c.Neg()
		}

		// Parse the exponent, defaulting to 0 unless "x" is present.
		e := 0
		if i < len(s) && s[i] == 'x' {
			i++
			e = 1
			if i < len(s) && s[i] == '^' {
				i++
				start := i
				for i < len(s) && s[i] >= '0' && s[i] <= '9' {
					i++
				}
				if start == i {
					return Polynomial{}, fmt.Errorf("%w: missing exponent in %q", ErrParse, s)
				}
				v, err := strconv.Atoi(s[start:i])
				if err != nil {
					return Polynomial{}, fmt.Errorf("%w: bad exponent: %v", ErrParse, err)
				}
				e = v
			}
		}

		for e >= len(coeffs) {
			coeffs = append(coeffs, ring.Zero(w))
		}
		coeffs[e] = c
	}

	return FromCoeffs(w, coeffs).Truncated(), nil
}
