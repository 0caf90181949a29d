// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the mba command-line tree: one subcommand per
// public operation (obfuscate, rewrite, normalize-op, invert-poly,
// rand-poly, solve-congruences), each a boundary translating flags into
// the core packages' own config structs.
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	log     = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
)

var rootCmd = &cobra.Command{
	Use:   "mba",
	Short: "mba obfuscates and analyzes mixed boolean-arithmetic expressions",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
}

// Execute runs the command tree, returning any error so main can set the
// process exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(obfuscateCmd)
	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(normalizeOpCmd)
	rootCmd.AddCommand(invertPolyCmd)
	rootCmd.AddCommand(randPolyCmd)
	rootCmd.AddCommand(solveCongruencesCmd)
}
