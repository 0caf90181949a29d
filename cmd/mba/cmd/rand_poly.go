// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/ringmba/mba/invert"
)

var randPolyCmd = &cobra.Command{
	Use:   "rand-poly",
	Short: "Generate a random permutation polynomial over ℤ/2^width",
	Args:  cobra.NoArgs,
	RunE:  runRandPoly,
}

func init() {
	flags := randPolyCmd.Flags()
	flags.Int("width", 64, "ring width in bits")
	flags.Uint64("seed", 1, "PRNG seed")
}

func runRandPoly(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	w, err := widthFromBits(width)
	if err != nil {
		return err
	}
	seed, _ := cmd.Flags().GetUint64("seed")
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	p := invert.RandPoly(w, rnd)
	fmt.Println(p.String())
	return nil
}
