// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package txdump

import "github.com/pk910/ckb-txdump/molutils"

const (
	// DefaultScratchSize is the page size used to stream script, cell and
	// witness payloads to the formatter.
	DefaultScratchSize = 1024 * 500

	// DefaultMaxItems bounds every per-source dump loop.
	DefaultMaxItems = 10000
)

type Option func(*Options)

type Options struct {
	Verbose     bool
	LogCb       func(format string, args ...any)
	CacheSize   int
	ScratchSize int
	MaxItems    int
	PrintMode   PrintMode
	DepsData    bool
	Compatible  bool
}

func defaultOptions() Options {
	return Options{
		CacheSize:   molutils.DefaultCacheSize,
		ScratchSize: DefaultScratchSize,
		MaxItems:    DefaultMaxItems,
		PrintMode:   PrintHash,
	}
}

func WithVerbose() Option {
	return func(opts *Options) {
		opts.Verbose = true
	}
}

func WithLogCb(logCb func(format string, args ...any)) Option {
	return func(opts *Options) {
		opts.LogCb = logCb
	}
}

// WithCacheSize sets the window size of the transaction cache.
func WithCacheSize(size int) Option {
	return func(opts *Options) {
		opts.CacheSize = size
	}
}

// WithScratchSize sets the page size used to stream payloads.
func WithScratchSize(size int) Option {
	return func(opts *Options) {
		opts.ScratchSize = size
	}
}

// WithMaxItems bounds the number of indices tried per source.
func WithMaxItems(n int) Option {
	return func(opts *Options) {
		opts.MaxItems = n
	}
}

func WithPrintMode(mode PrintMode) Option {
	return func(opts *Options) {
		opts.PrintMode = mode
	}
}

// WithDepsData adds the cell dep data loop to the source dumps.
func WithDepsData() Option {
	return func(opts *Options) {
		opts.DepsData = true
	}
}

// WithCompatible accepts tables carrying extra trailing fields when the
// transaction is verified.
func WithCompatible() Option {
	return func(opts *Options) {
		opts.Compatible = true
	}
}
