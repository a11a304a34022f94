// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package txdump

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func applyConfig(t *testing.T, raw string) Options {
	t.Helper()
	config, err := ParseConfig([]byte(raw))
	require.NoError(t, err)
	opts, err := config.Options()
	require.NoError(t, err)

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

func TestConfigDefaults(t *testing.T) {
	options := applyConfig(t, "")
	require.Equal(t, defaultOptions(), options)
	require.Equal(t, 2048, options.CacheSize)
	require.Equal(t, 512000, options.ScratchSize)
	require.Equal(t, 10000, options.MaxItems)
	require.Equal(t, PrintHash, options.PrintMode)
}

func TestConfigExpressions(t *testing.T) {
	options := applyConfig(t, `
cache_size: MAX_CACHE_SIZE * 2
scratch_size: TMP_BUFFER_SIZE / 3
max_items: LIMIT + 1
print_mode: data
verbose: true
deps_data: true
compatible: true
presets:
  LIMIT: 4
`)

	require.Equal(t, 4096, options.CacheSize)
	require.Equal(t, 170667, options.ScratchSize)
	require.Equal(t, 5, options.MaxItems)
	require.Equal(t, PrintData, options.PrintMode)
	require.True(t, options.Verbose)
	require.True(t, options.DepsData)
	require.True(t, options.Compatible)
}

func TestConfigPresetOverride(t *testing.T) {
	options := applyConfig(t, `
cache_size: MAX_CACHE_SIZE
presets:
  MAX_CACHE_SIZE: 64
`)
	require.Equal(t, 64, options.CacheSize)
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"syntax", "cache_size: 2 *"},
		{"unknown name", "cache_size: NOT_A_PRESET"},
		{"not numeric", "max_items: \"'abc'\""},
		{"negative", "scratch_size: 0 - 1"},
		{"print mode", "print_mode: bytes"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config, err := ParseConfig([]byte(test.raw))
			require.NoError(t, err)
			_, err = config.Options()
			require.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "txdump.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_items: MAX_ITEMS / 100\n"), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "MAX_ITEMS / 100", config.MaxItems)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("max_items: [1"), 0o644))
	_, err = LoadConfig(path)
	require.Error(t, err)
}
