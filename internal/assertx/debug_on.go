// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build debug

package assertx

func check(ok bool, msg string) {
	if !ok {
		panic("mba: invariant violated: " + msg)
	}
}
