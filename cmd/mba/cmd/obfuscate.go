// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/ringmba/mba/expr"
	"github.com/ringmba/mba/internal/config"
	"github.com/ringmba/mba/obfuscate"
	"github.com/ringmba/mba/printer"
)

var obfuscateCmd = &cobra.Command{
	Use:   "obfuscate <expr>",
	Short: "Rewrite an expression into an equivalent, harder-to-read form",
	Args:  cobra.ExactArgs(1),
	RunE:  runObfuscate,
}

func init() {
	flags := obfuscateCmd.Flags()
	flags.Int("width", 64, "ring width in bits (8, 16, 32, 64, 128)")
	flags.String("printer", "default", "output renderer: default, c, go (tex is not available for obfuscate)")
	flags.Int("aux-vars", 2, "number of auxiliary no-op variables")
	flags.Int("rewrite-depth", 3, "max depth of generated candidate operations")
	flags.Int("rewrite-count", 24, "candidate operations generated per attempt")
	flags.Int("attempts", 128, "random banks tried per node before giving up")
	flags.Bool("randomize", false, "sample a random point of each rewrite's solution lattice")
	flags.Uint64("seed", 1, "PRNG seed")
}

func runObfuscate(cmd *cobra.Command, args []string) error {
	req, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	req.Expr = args[0]

	w, err := req.RingWidth()
	if err != nil {
		return err
	}
	target, err := parsePrinterTarget(req.Printer)
	if err != nil {
		return err
	}
	if target == printer.Tex {
		return fmt.Errorf("printer target %q is not supported for obfuscate (want default, c, or go)", req.Printer)
	}

	e, err := expr.Parse(w, req.Expr)
	if err != nil {
		return fmt.Errorf("parsing expression: %w", err)
	}

	cfg := obfuscate.Config{
		AuxVarCount:  req.AuxVarCount,
		RewriteDepth: req.RewriteDepth,
		RewriteCount: req.RewriteCount,
		Attempts:     req.Attempts,
		Randomize:    req.Randomize,
	}
	rnd := rand.New(rand.NewPCG(req.Seed, req.Seed^0x9e3779b97f4a7c15))

	log.Debug().Str("expr", req.Expr).Int("width", req.Width).Msg("obfuscating")
	out := obfuscate.Obfuscate(e, cfg, rnd)

	fmt.Println(out.PrintAsFunc(target))
	return nil
}

func parsePrinterTarget(s string) (printer.Target, error) {
	switch s {
	case "default", "":
		return printer.Default, nil
	case "c":
		return printer.C, nil
	case "go":
		return printer.Go, nil
	case "tex":
		return printer.Tex, nil
	default:
		return 0, fmt.Errorf("unknown printer target %q (want default, c, go, or tex)", s)
	}
}
