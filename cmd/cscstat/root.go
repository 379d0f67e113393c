// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/sparseblock/sparse"
	"github.com/katalvlaran/sparseblock/sparseio"
	"github.com/spf13/cobra"
)

// app is the state shared by subcommands after flag parsing.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "cscstat",
		Short:         "Generate, inspect and estimate CSC sparse block files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			log, err := newLogger(cmd.ErrOrStderr(), a.logLevel, a.logFormat)
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log
			a.log.Debug("config loaded", "path", a.configPath, "codec", cfg.Codec, "layout", cfg.Layout, "workers", cfg.Workers)

			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML file with defaults")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "debug, info, warn or error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "text or json")

	root.AddCommand(newGenerateCmd(a), newInspectCmd(a), newEstimateCmd(a), newConvertCmd(a))

	return root
}

// readBlock opens a block file and returns its header and contents.
func readBlock(path string) (sparseio.Header, *sparse.CSC, error) {
	f, err := os.Open(path)
	if err != nil {
		return sparseio.Header{}, nil, err
	}
	defer f.Close()

	h, err := sparseio.ReadHeader(f)
	if err != nil {
		return sparseio.Header{}, nil, fmt.Errorf("%s: %w", path, err)
	}
	c, err := sparseio.ReadPayload(f, h)
	if err != nil {
		return sparseio.Header{}, nil, fmt.Errorf("%s: %w", path, err)
	}

	return h, c, nil
}

// writeBlock creates path and writes c to it.
func writeBlock(path string, c *sparse.CSC, opts []sparseio.Option) (sparseio.Header, error) {
	f, err := os.Create(path)
	if err != nil {
		return sparseio.Header{}, err
	}
	h, err := sparseio.Write(f, c, opts...)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return sparseio.Header{}, fmt.Errorf("%s: %w", path, err)
	}

	return h, nil
}

// codecFlags registers --codec/--layout and resolves them against the config.
type codecFlags struct{ codec, layout string }

func (f *codecFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.codec, "codec", "", "none, lz4 or zstd (default from config)")
	cmd.Flags().StringVar(&f.layout, "layout", "", "auto, ultra or sparse (default from config)")
}

func (f *codecFlags) options(cfg Config) ([]sparseio.Option, error) {
	codec, layout := cfg.Codec, cfg.Layout
	if f.codec != "" {
		codec = f.codec
	}
	if f.layout != "" {
		layout = f.layout
	}

	return writeOptions(codec, layout, cfg.ZstdLevel)
}
