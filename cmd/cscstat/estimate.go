// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/sparseblock/estim"
	"github.com/spf13/cobra"
)

func newEstimateCmd(a *app) *cobra.Command {
	var (
		workers    int
		whole      bool
		transposed bool
	)
	cmd := &cobra.Command{
		Use:   "estimate FILE",
		Short: "Estimate compressed sizes per column (or for all columns as one group)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}
			_, c, err := readBlock(args[0])
			if err != nil {
				return err
			}
			opts, err := estimateOptions(a.cfg, a.log, transposed)
			if err != nil {
				return err
			}
			e, err := estim.New(c, opts...)
			if err != nil {
				return err
			}

			var infos []estim.GroupInfo
			if whole {
				info, err := e.EstimateAllColumns()
				if err != nil {
					return err
				}
				infos = []estim.GroupInfo{info}
			} else {
				infos = e.EstimateColumns(workers)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "group\tvalues\toffsets\tbest\tbytes")
			var total int64
			for i, info := range infos {
				label := fmt.Sprint(i)
				if whole {
					label = "all"
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%d\n", label, info.Factors.Values, info.Factors.Offsets, info.Best, info.BestSize)
				total += info.BestSize
			}
			fmt.Fprintf(tw, "total\t\t\t\t%d\n", total)

			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "k", 1, "parallel workers (default from config)")
	cmd.Flags().BoolVar(&whole, "all", false, "estimate all columns as a single group")
	cmd.Flags().BoolVar(&transposed, "transposed", false, "estimate rows instead of columns")

	return cmd
}
