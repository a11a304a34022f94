// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package txdump

import (
	"fmt"
	"math"
	"os"

	"github.com/casbin/govaluate"
	"gopkg.in/yaml.v3"

	"github.com/pk910/ckb-txdump/molutils"
)

// Config is the file form of the dumper options. Size fields are
// expressions over the preset values, e.g. "MAX_CACHE_SIZE * 4".
type Config struct {
	CacheSize   string            `yaml:"cache_size"`
	ScratchSize string            `yaml:"scratch_size"`
	MaxItems    string            `yaml:"max_items"`
	PrintMode   string            `yaml:"print_mode"`
	Verbose     bool              `yaml:"verbose"`
	DepsData    bool              `yaml:"deps_data"`
	Compatible  bool              `yaml:"compatible"`
	Presets     map[string]uint64 `yaml:"presets"`
}

// DefaultPresets are the names available to size expressions.
func DefaultPresets() map[string]any {
	return map[string]any{
		"MAX_CACHE_SIZE":  float64(molutils.DefaultCacheSize),
		"TMP_BUFFER_SIZE": float64(DefaultScratchSize),
		"MAX_ITEMS":       float64(DefaultMaxItems),
	}
}

func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config, err := ParseConfig(raw)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

func ParseConfig(raw []byte) (*Config, error) {
	config := &Config{}
	if err := yaml.Unmarshal(raw, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Options resolves the config into dumper options.
func (c *Config) Options() ([]Option, error) {
	values := DefaultPresets()
	for name, value := range c.Presets {
		values[name] = float64(value)
	}

	opts := []Option{}
	sizes := []struct {
		name string
		expr string
		set  func(int) Option
	}{
		{"cache_size", c.CacheSize, WithCacheSize},
		{"scratch_size", c.ScratchSize, WithScratchSize},
		{"max_items", c.MaxItems, WithMaxItems},
	}
	for _, size := range sizes {
		if size.expr == "" {
			continue
		}
		value, err := evalSize(size.expr, values)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", size.name, err)
		}
		opts = append(opts, size.set(value))
	}

	if c.PrintMode != "" {
		mode, err := ParsePrintMode(c.PrintMode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithPrintMode(mode))
	}
	if c.Verbose {
		opts = append(opts, WithVerbose())
	}
	if c.DepsData {
		opts = append(opts, WithDepsData())
	}
	if c.Compatible {
		opts = append(opts, WithCompatible())
	}
	return opts, nil
}

// evalSize evaluates a size expression. Fractional results are rounded up.
func evalSize(expr string, values map[string]any) (int, error) {
	expression, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return 0, fmt.Errorf("error parsing size expression %q: %v", expr, err)
	}
	result, err := expression.Evaluate(values)
	if err != nil {
		return 0, fmt.Errorf("error evaluating size expression %q: %v", expr, err)
	}
	value, ok := result.(float64)
	if !ok {
		return 0, fmt.Errorf("size expression %q is not numeric", expr)
	}
	if value < 0 || value > math.MaxUint32 {
		return 0, fmt.Errorf("size expression %q out of range: %v", expr, value)
	}
	return int(math.Ceil(value)), nil
}
