// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ringmba/mba/uexpr"
)

var normalizeOpCmd = &cobra.Command{
	Use:   "normalize-op <luexpr>",
	Short: "Normalize a linear combination of uniform expressions (merge like terms, drop zero coefficients)",
	Args:  cobra.ExactArgs(1),
	RunE:  runNormalizeOp,
}

func init() {
	normalizeOpCmd.Flags().Int("width", 64, "ring width in bits")
}

func runNormalizeOp(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	w, err := widthFromBits(width)
	if err != nil {
		return err
	}

	l, err := uexpr.ParseLUExpr(w, args[0])
	if err != nil {
		return fmt.Errorf("parsing: %w", err)
	}

	fmt.Println(l.Normalize().String())
	return nil
}
