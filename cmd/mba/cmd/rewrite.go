// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ringmba/mba/ring"
	"github.com/ringmba/mba/uexpr"

	"github.com/ringmba/mba/rewrite"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite <luexpr>",
	Short: "Rewrite a linear combination of uniform expressions using a bank of candidate operations",
	Args:  cobra.ExactArgs(1),
	RunE:  runRewrite,
}

func init() {
	flags := rewriteCmd.Flags()
	flags.Int("width", 64, "ring width in bits")
	flags.StringSlice("op", nil, "candidate operation, repeatable; when omitted a random bank is generated")
	flags.Int("rewrite-depth", 3, "max depth of generated candidate operations")
	flags.Int("rewrite-count", 24, "candidate operations generated per attempt, when --op is omitted")
	flags.Int("attempts", 128, "random banks tried before giving up, when --op is omitted")
	flags.Bool("randomize", false, "sample a random point of the solution lattice")
	flags.Uint64("seed", 1, "PRNG seed")
}

func runRewrite(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	w, err := widthFromBits(width)
	if err != nil {
		return err
	}

	target, err := uexpr.ParseLUExpr(w, args[0])
	if err != nil {
		return fmt.Errorf("parsing target: %w", err)
	}

	randomize, _ := cmd.Flags().GetBool("randomize")
	seed, _ := cmd.Flags().GetUint64("seed")
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	opStrs, _ := cmd.Flags().GetStringSlice("op")
	if len(opStrs) > 0 {
		ops := make([]uexpr.LUExpr, len(opStrs))
		for i, s := range opStrs {
			op, err := uexpr.ParseLUExpr(w, strings.TrimSpace(s))
			if err != nil {
				return fmt.Errorf("parsing op %q: %w", s, err)
			}
			ops[i] = op
		}
		r, ok := rewrite.Rewrite(target, ops, randomize, rnd)
		if !ok {
			return fmt.Errorf("no rewrite found against the given candidate operations")
		}
		fmt.Println(r.String())
		return nil
	}

	depth, _ := cmd.Flags().GetInt("rewrite-depth")
	bankSize, _ := cmd.Flags().GetInt("rewrite-count")
	attempts, _ := cmd.Flags().GetInt("attempts")
	bankCfg := rewrite.Config{Attempts: attempts, BankSize: bankSize, MaxDepth: depth}

	r, err := rewrite.RewriteWithBank(target, nil, randomize, rnd, bankCfg)
	if err != nil {
		return err
	}
	fmt.Println(r.String())
	return nil
}

func widthFromBits(bits int) (ring.Width, error) {
	switch bits {
	case 8:
		return ring.W8, nil
	case 16:
		return ring.W16, nil
	case 32:
		return ring.W32, nil
	case 64:
		return ring.W64, nil
	case 128:
		return ring.W128, nil
	default:
		return 0, fmt.Errorf("unsupported width %d (want 8, 16, 32, 64, or 128)", bits)
	}
}
