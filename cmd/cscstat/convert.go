// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	var cf codecFlags
	cmd := &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Re-encode a block file with another layout or codec",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, c, err := readBlock(args[0])
			if err != nil {
				return err
			}
			opts, err := cf.options(a.cfg)
			if err != nil {
				return err
			}
			to, err := writeBlock(args[1], c, opts)
			if err != nil {
				return err
			}
			a.log.Info("converted", "in", args[0], "out", args[1], "nnz", to.NonZeros)
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s/%s) -> %s (%s/%s)\n",
				args[0], from.Layout, from.Codec, args[1], to.Layout, to.Codec)

			return nil
		},
	}
	cf.register(cmd)

	return cmd
}
