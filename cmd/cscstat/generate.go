// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/sparseblock/builder"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		rows, cols   int
		density      float64
		kind         string
		lower, upper int
		seed         int64
		ints         bool
		cf           codecFlags
	)
	cmd := &cobra.Command{
		Use:   "generate OUT",
		Short: "Write a generated block (random, diagonal or band) to OUT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Seed
			}
			var con builder.Constructor
			switch kind {
			case "random":
				con = builder.RandomSparse(density)
			case "diagonal":
				con = builder.Diagonal()
			case "band":
				con = builder.Band(lower, upper)
			default:
				return fmt.Errorf("--kind %q: want random, diagonal or band", kind)
			}
			opts := []builder.Option{builder.WithSeed(seed)}
			if ints {
				opts = append(opts, builder.WithValueFn(builder.IntegerValueFn(-9, 9)))
			} else {
				opts = append(opts, builder.WithValueFn(builder.UniformValueFn(-1, 1)))
			}

			c, err := builder.BuildCSC(rows, cols, opts, nil, con)
			if err != nil {
				return err
			}
			wopts, err := cf.options(a.cfg)
			if err != nil {
				return err
			}
			h, err := writeBlock(args[0], c, wopts)
			if err != nil {
				return err
			}
			a.log.Info("generated", "path", args[0], "kind", kind, "rows", h.Rows, "cols", h.Cols, "nnz", h.NonZeros)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %dx%d nnz=%d layout=%s codec=%s\n",
				args[0], h.Rows, h.Cols, h.NonZeros, h.Layout, h.Codec)

			return nil
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 1000, "row count")
	cmd.Flags().IntVar(&cols, "cols", 100, "column count")
	cmd.Flags().Float64Var(&density, "density", 0.01, "cell probability for --kind random")
	cmd.Flags().StringVar(&kind, "kind", "random", "random, diagonal or band")
	cmd.Flags().IntVar(&lower, "lower", 1, "sub-diagonals for --kind band")
	cmd.Flags().IntVar(&upper, "upper", 1, "super-diagonals for --kind band")
	cmd.Flags().Int64Var(&seed, "seed", 0, "generator seed (default from config)")
	cmd.Flags().BoolVar(&ints, "integers", false, "draw integer values in [-9,9] instead of uniform (-1,1)")
	cf.register(cmd)

	return cmd
}
