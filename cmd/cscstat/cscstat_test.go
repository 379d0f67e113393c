package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestGenerateInspectEstimateConvert(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "band.cscb")
	out := filepath.Join(dir, "band.zst.cscb")

	stdout, _, err := run(t, "generate", in, "--kind", "band", "--rows", "50", "--cols", "40", "--lower", "1", "--upper", "0", "--integers")
	require.NoError(t, err)
	// 40 diagonal cells plus 40 sub-diagonal cells (rows 1..40).
	assert.Contains(t, stdout, "50x40 nnz=80")
	assert.Contains(t, stdout, "layout=sparse codec=none")

	stdout, _, err = run(t, "inspect", in)
	require.NoError(t, err)
	assert.Contains(t, stdout, "shape:     50x40 nnz=80")
	assert.Contains(t, stdout, "non-empty: rows=41 cols=40")
	assert.Contains(t, stdout, "valid:     yes")
	assert.Contains(t, stdout, "exact=")

	stdout, _, err = run(t, "estimate", in, "-k", "4")
	require.NoError(t, err)
	assert.Contains(t, stdout, "group")
	assert.Contains(t, stdout, "total")
	assert.Contains(t, stdout, "39 ") // last column row

	stdout, _, err = run(t, "estimate", in, "--all")
	require.NoError(t, err)
	assert.Contains(t, stdout, "all")

	stdout, _, err = run(t, "convert", in, out, "--codec", "zstd", "--layout", "ultra")
	require.NoError(t, err)
	assert.Contains(t, stdout, "(sparse/none)")
	assert.Contains(t, stdout, "(ultra/zstd)")

	stdout, _, err = run(t, "inspect", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "layout=ultra codec=zstd")
	assert.Contains(t, stdout, "nnz=80")
}

func TestGenerateRandomUsesConfigSeed(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "cscstat.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("seed: 99\ncodec: lz4\nworkers: 2\n"), 0o600))

	a, b := filepath.Join(dir, "a"), filepath.Join(dir, "b")
	_, _, err := run(t, "--config", cfg, "generate", a, "--rows", "30", "--cols", "30", "--density", "0.2")
	require.NoError(t, err)
	_, _, err = run(t, "generate", b, "--rows", "30", "--cols", "30", "--density", "0.2", "--seed", "99", "--codec", "lz4")
	require.NoError(t, err)

	ra, err := os.ReadFile(a)
	require.NoError(t, err)
	rb, err := os.ReadFile(b)
	require.NoError(t, err)
	require.Equal(t, ra, rb)
	require.Equal(t, byte(1), ra[6]) // lz4
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := run(t, "inspect", filepath.Join(dir, "missing"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad")
	require.NoError(t, os.WriteFile(bad, []byte("not a block file at all, clearly"), 0o600))
	_, _, err = run(t, "inspect", bad)
	require.ErrorContains(t, err, "bad magic")

	_, _, err = run(t, "generate", filepath.Join(dir, "x"), "--kind", "spiral")
	require.ErrorContains(t, err, "spiral")

	_, _, err = run(t, "generate", filepath.Join(dir, "x"), "--density", "2")
	require.Error(t, err)

	_, _, err = run(t, "--log-format", "xml", "inspect", bad)
	require.ErrorContains(t, err, "log-format")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)

	good := filepath.Join(dir, "good.yaml")
	t.Setenv("CSC_WORKERS", "8")
	require.NoError(t, os.WriteFile(good, []byte("codec: zstd\nzstd_level: 9\nworkers: ${CSC_WORKERS}\nencodings: [ddc, RLE]\n"), 0o600))
	cfg, err = LoadConfig(good)
	require.NoError(t, err)
	require.Equal(t, "zstd", cfg.Codec)
	require.Equal(t, 9, cfg.ZstdLevel)
	require.Equal(t, 8, cfg.Workers)
	require.Equal(t, "auto", cfg.Layout)
	encs, err := parseEncodings(cfg.Encodings)
	require.NoError(t, err)
	require.Len(t, encs, 2)

	for name, body := range map[string]string{
		"unknown-key": "codecs: lz4\n",
		"bad-codec":   "codec: brotli\n",
		"bad-layout":  "layout: coo\n",
		"bad-workers": "workers: 0\n",
		"bad-level":   "zstd_level: 40\n",
		"bad-enc":     "encodings: [sdc]\n",
	} {
		p := filepath.Join(dir, name+".yaml")
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
		_, err := LoadConfig(p)
		require.Error(t, err, name)
	}
}

func TestEstimateOptions(t *testing.T) {
	log := slog.New(slog.DiscardHandler)

	cfg := DefaultConfig()
	opts, err := estimateOptions(cfg, log, false)
	require.NoError(t, err)
	require.Len(t, opts, 1)

	cfg.Encodings = []string{"ole", "RLE"}
	opts, err = estimateOptions(cfg, log, true)
	require.NoError(t, err)
	require.Len(t, opts, 3)

	cfg.Encodings = []string{"ddc", "sdc"}
	_, err = estimateOptions(cfg, log, false)
	require.ErrorContains(t, err, "sdc")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger(&buf, "debug", "json")
	require.NoError(t, err)
	log.Debug("hello", "k", 1)
	require.Contains(t, buf.String(), `"msg":"hello"`)

	_, err = newLogger(&buf, "loud", "text")
	require.Error(t, err)
}
