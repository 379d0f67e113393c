// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/sparseblock/sparse"
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the header, shape statistics, validity and memory footprint of a block file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, c, err := readBlock(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "file:      %s\n", args[0])
			fmt.Fprintf(out, "format:    v%d layout=%s codec=%s\n", h.Version, h.Layout, h.Codec)
			fmt.Fprintf(out, "shape:     %dx%d nnz=%d\n", c.Rows(), c.NumCols(), c.NonZeros())

			sparsity := 0.0
			if cells := float64(c.Rows()) * float64(c.NumCols()); cells > 0 {
				sparsity = float64(c.NonZeros()) / cells
			}
			fmt.Fprintf(out, "sparsity:  %.6f\n", sparsity)

			rows, err := c.NonEmptyRows(0, c.Rows())
			if err != nil {
				return err
			}
			cols, err := c.NonEmptyColumns(0, c.NumCols())
			if err != nil {
				return err
			}
			nonEmptyCols := 0
			for _, ok := cols.Next(); ok; _, ok = cols.Next() {
				nonEmptyCols++
			}
			fmt.Fprintf(out, "non-empty: rows=%d cols=%d\n", rows.Count(), nonEmptyCols)

			if err := c.Validate(); err != nil {
				fmt.Fprintf(out, "valid:     no (%v)\n", err)
				a.log.Warn("invalid block", "path", args[0], "err", err)
			} else {
				fmt.Fprintln(out, "valid:     yes")
			}

			est, err := sparse.EstimateSizeInMemory(int64(c.Rows()), int64(c.NumCols()), sparsity)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "memory:    exact=%d estimated=%d bytes\n", c.SizeInMemory(), est)

			return nil
		},
	}
}
