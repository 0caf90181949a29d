// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invert

import (
	"math/big"
	"math/rand/v2"

	"github.com/ringmba/mba/polynomial"
	"github.com/ringmba/mba/ring"
)

// RandPoly generates a uniformly random permutation polynomial of the
// minimum degree able to represent any polynomial permutation on ℤ/2ⁿ
// (one less than the length of the zero ideal's highest-degree
// generator), patching up the Rivest-criterion parity constraints the
// initial random fill is unlikely to satisfy on its own.
func RandPoly(w ring.Width, rnd *rand.Rand) polynomial.Polynomial {
	zi := polynomial.InitZeroIdeal(w)
	degree := zi.Gen[len(zi.Gen)-1].Len() - 1

	coeffs := make([]ring.Elem, degree+1)
	for i := range coeffs {
		coeffs[i] = randElem(w, rnd)
	}
	p := polynomial.FromCoeffs(w, coeffs)

	// a_1 has to be odd.
	if p.Coeffs()[1].BigInt().Bit(0) == 0 {
		addOneAt(&p, 1)
	}

	// a_2 + a_4 + ... has to be even.
	if oddSum(p.Coeffs(), 2) {
		i := 1 + rnd.IntN(degree/2)
		addOneAt(&p, 2*i)
	}

	// a_3 + a_5 + ... has to be even.
	if oddSum(p.Coeffs(), 3) {
		i := 1 + rnd.IntN((degree-1)/2)
		addOneAt(&p, 2*i+1)
	}

	p.Simplify(zi)
	return p
}

func addOneAt(p *polynomial.Polynomial, i int) {
	cs := p.Coeffs()
	cs[i] = cs[i].Add(ring.One(cs[i].Width()))
}

// randElem draws a uniformly random element of ℤ/2^w, combining two
// 64-bit draws via big.Int for widths beyond 64 bits (128-bit rings).
func randElem(w ring.Width, rnd *rand.Rand) ring.Elem {
	lo := rnd.Uint64()
	if w <= 64 {
		return ring.FromBigInt(w, new(big.Int).SetUint64(lo))
	}
	hi := rnd.Uint64()
	v := new(big.Int).SetUint64(hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(lo))
	return ring.FromBigInt(w, v)
}
