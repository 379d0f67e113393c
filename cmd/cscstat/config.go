// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/sparseblock/estim"
	"github.com/katalvlaran/sparseblock/sparseio"
	"gopkg.in/yaml.v3"
)

// Config holds the defaults that command-line flags override.
type Config struct {
	Codec     string   `yaml:"codec"`      // none | lz4 | zstd
	Layout    string   `yaml:"layout"`     // auto | ultra | sparse
	ZstdLevel int      `yaml:"zstd_level"` // 1..22
	Workers   int      `yaml:"workers"`    // estimator fan-out
	Seed      int64    `yaml:"seed"`       // generator seed
	Encodings []string `yaml:"encodings"`  // empty means all
}

// DefaultConfig is used when no --config is given.
func DefaultConfig() Config {
	return Config{
		Codec:     sparseio.DefaultCodec.String(),
		Layout:    sparseio.DefaultLayout.String(),
		ZstdLevel: sparseio.DefaultZstdLevel,
		Workers:   1,
		Seed:      1,
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Environment variables in
// the file are expanded and unknown keys are rejected. An empty path returns
// the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not read configuration file '%s': %w", path, err)
	}

	dec := yaml.NewDecoder(strings.NewReader(os.ExpandEnv(string(data))))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("YAML error in '%s': %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config '%s': %w", path, err)
	}

	return cfg, nil
}

// Validate checks every enumerated field.
func (c Config) Validate() error {
	if _, err := sparseio.ParseCodec(c.Codec); err != nil {
		return err
	}
	if _, err := sparseio.ParseLayout(c.Layout); err != nil {
		return err
	}
	if c.ZstdLevel < 1 || c.ZstdLevel > 22 {
		return fmt.Errorf("zstd_level %d not in [1,22]", c.ZstdLevel)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be ≥ 1, got %d", c.Workers)
	}
	_, err := parseEncodings(c.Encodings)

	return err
}

// writeOptions turns codec/layout names into sparseio options.
func writeOptions(codec, layout string, level int) ([]sparseio.Option, error) {
	cd, err := sparseio.ParseCodec(codec)
	if err != nil {
		return nil, err
	}
	l, err := sparseio.ParseLayout(layout)
	if err != nil {
		return nil, err
	}

	return []sparseio.Option{sparseio.WithCodec(cd), sparseio.WithLayout(l), sparseio.WithZstdLevel(level)}, nil
}

func parseEncodings(names []string) ([]estim.Encoding, error) {
	known := map[string]estim.Encoding{}
	for e := estim.Uncompressed; e <= estim.RLE; e++ {
		known[e.String()] = e
	}
	out := make([]estim.Encoding, 0, len(names))
	for _, n := range names {
		e, ok := known[strings.ToLower(n)]
		if !ok {
			return nil, fmt.Errorf("unknown encoding %q", n)
		}
		out = append(out, e)
	}

	return out, nil
}

// estimateOptions builds estimator options from the config's encodings.
func estimateOptions(cfg Config, log *slog.Logger, transposed bool) ([]estim.Option, error) {
	encs, err := parseEncodings(cfg.Encodings)
	if err != nil {
		return nil, err
	}
	opts := []estim.Option{estim.WithLogger(log)}
	if len(encs) > 0 {
		opts = append(opts, estim.WithValidEncodings(encs...))
	}
	if transposed {
		opts = append(opts, estim.WithTransposed())
	}

	return opts, nil
}
