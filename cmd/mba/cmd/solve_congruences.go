// Copyright ©2024 The mba Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ringmba/mba/congruence"
	"github.com/ringmba/mba/linalg"
	"github.com/ringmba/mba/ring"
)

var solveCongruencesCmd = &cobra.Command{
	Use:   "solve-congruences",
	Short: "Solve A*x = b over ℤ/2^width, printing the affine solution lattice",
	Args:  cobra.NoArgs,
	RunE:  runSolveCongruences,
}

func init() {
	flags := solveCongruencesCmd.Flags()
	flags.Int("width", 64, "ring width in bits")
	flags.StringSlice("row", nil, "one matrix row, repeatable, comma-separated entries (e.g. \"1,0\")")
	flags.String("rhs", "", "the right-hand side vector, comma-separated entries")
}

func runSolveCongruences(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	w, err := widthFromBits(width)
	if err != nil {
		return err
	}

	rowStrs, _ := cmd.Flags().GetStringSlice("row")
	rhsStr, _ := cmd.Flags().GetString("rhs")
	if len(rowStrs) == 0 || rhsStr == "" {
		return fmt.Errorf("both --row (repeatable) and --rhs are required")
	}

	b, err := parseVector(w, rhsStr)
	if err != nil {
		return fmt.Errorf("parsing --rhs: %w", err)
	}
	if b.Len() != len(rowStrs) {
		return fmt.Errorf("--rhs has %d entries but %d --row flags were given", b.Len(), len(rowStrs))
	}

	rows := make([][]ring.Elem, len(rowStrs))
	cols := -1
	for i, s := range rowStrs {
		row, err := parseElems(w, s)
		if err != nil {
			return fmt.Errorf("parsing --row %q: %w", s, err)
		}
		if cols == -1 {
			cols = len(row)
		} else if len(row) != cols {
			return fmt.Errorf("--row %q has %d entries, expected %d", s, len(row), cols)
		}
		rows[i] = row
	}

	a := linalg.NewMatrix(w, len(rows), cols)
	for i, row := range rows {
		for j, e := range row {
			a.Set(i, j, e)
		}
	}

	lattice := congruence.SolveCongruences(&a, b)
	if lattice.IsEmpty() {
		fmt.Println("no solution")
		return nil
	}

	fmt.Printf("offset: %v\n", elemsString(lattice.Offset.Entries()))
	for i, basisVec := range lattice.Basis {
		fmt.Printf("basis[%d]: %v\n", i, elemsString(basisVec.Entries()))
	}
	return nil
}

func parseElems(w ring.Width, s string) ([]ring.Elem, error) {
	fields := strings.Split(s, ",")
	out := make([]ring.Elem, len(fields))
	for i, f := range fields {
		e, err := ring.FromStringRadix(w, strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func parseVector(w ring.Width, s string) (linalg.Vector, error) {
	es, err := parseElems(w, s)
	if err != nil {
		return linalg.Vector{}, err
	}
	return linalg.VectorFromSlice(es), nil
}

func elemsString(es []ring.Elem) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
