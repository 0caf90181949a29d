// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assertx guards expensive invariant checks behind the "debug"
// build tag, the way gonum's mat package guards its own internal
// consistency checks: the checked build panics loudly on a violated
// invariant, the default build pays nothing for it.
package assertx

// Check panics with msg if ok is false. In the default build it is a
// no-op; build with -tags debug to enable it.
func Check(ok bool, msg string) {
	check(ok, msg)
}
