// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mba is the command-line frontend for the mba obfuscation
// engine: a thin cobra command tree translating flags and config files
// into calls against the core packages.
package main

import (
	"os"

	"github.com/ringmba/mba/cmd/mba/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
