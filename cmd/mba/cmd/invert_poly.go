// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ringmba/mba/invert"
	"github.com/ringmba/mba/polynomial"
)

var invertPolyCmd = &cobra.Command{
	Use:   "invert-poly <polynomial>",
	Short: "Invert a permutation polynomial over ℤ/2^width",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvertPoly,
}

func init() {
	flags := invertPolyCmd.Flags()
	flags.Int("width", 64, "ring width in bits")
	flags.String("algorithm", string(invert.Newton), "inversion algorithm: Newton, Fermat, or Lagrange")
}

func runInvertPoly(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	w, err := widthFromBits(width)
	if err != nil {
		return err
	}

	p, err := polynomial.Parse(w, args[0])
	if err != nil {
		return fmt.Errorf("parsing polynomial: %w", err)
	}

	algStr, _ := cmd.Flags().GetString("algorithm")
	alg := invert.Algorithm(algStr)
	switch alg {
	case invert.Newton, invert.Fermat, invert.Lagrange:
	default:
		return fmt.Errorf("unknown algorithm %q (want Newton, Fermat, or Lagrange)", algStr)
	}

	q, err := invert.Invert(p, alg)
	if err != nil {
		return err
	}

	fmt.Println(q.String())
	return nil
}
