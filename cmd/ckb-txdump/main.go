// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

// Command ckb-txdump prints a mock transaction the way the dump script sees
// it when running as one of the transaction's script groups.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	txdump "github.com/pk910/ckb-txdump"
	"github.com/pk910/ckb-txdump/mocktx"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "ckb-txdump: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "ckb-txdump",
		Usage:     "dump CKB transactions from mock transaction files",
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			{
				Name:   "dump",
				Usage:  "Dump a mock transaction as seen by one script group",
				Action: dumpAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "mock",
						Aliases:  []string{"m"},
						Usage:    "mock transaction file (.json, .yaml, optionally .snappy)",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "group",
						Aliases: []string{"g"},
						Usage:   "index of the script group to run as",
					},
					&cli.StringFlag{
						Name:  "script-hash",
						Usage: "select the script group by script hash instead of index",
					},
					&cli.StringFlag{
						Name:  "mode",
						Usage: "print mode: len, hash or data",
					},
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "YAML config file",
					},
					&cli.BoolFlag{
						Name:  "deps",
						Usage: "also dump cell dep data",
					},
					&cli.BoolFlag{
						Name:  "compatible",
						Usage: "accept tables with extra trailing fields",
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "log cache and decoding details to stderr",
					},
				},
			},
			{
				Name:   "groups",
				Usage:  "List the script groups of a mock transaction",
				Action: groupsAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "mock",
						Aliases:  []string{"m"},
						Required: true,
					},
				},
			},
			{
				Name:   "convert",
				Usage:  "Convert a mock transaction between JSON, YAML and snappy",
				Action: convertAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "in",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "out",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "bin-dir",
						Usage: "Reference cell dep data by the fitting binaries in this directory",
					},
				},
			},
		},
	}
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}).Level(level).With().Timestamp().Logger()
}

func dumpAction(c *cli.Context) error {
	var opts []txdump.Option
	if path := c.String("config"); path != "" {
		config, err := txdump.LoadConfig(path)
		if err != nil {
			return err
		}
		if opts, err = config.Options(); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
	}

	if mode := c.String("mode"); mode != "" {
		printMode, err := txdump.ParsePrintMode(mode)
		if err != nil {
			return err
		}
		opts = append(opts, txdump.WithPrintMode(printMode))
	}
	if c.Bool("deps") {
		opts = append(opts, txdump.WithDepsData())
	}
	if c.Bool("compatible") {
		opts = append(opts, txdump.WithCompatible())
	}

	logger := newLogger(c.App.ErrWriter, c.Bool("verbose"))
	if c.Bool("verbose") {
		opts = append(opts, txdump.WithVerbose())
	}
	opts = append(opts, txdump.WithLogCb(func(format string, args ...any) {
		logger.Debug().Msgf(format, args...)
	}))

	mock, err := mocktx.Load(c.String("mock"))
	if err != nil {
		return err
	}

	var host *mocktx.Host
	if scriptHash := c.String("script-hash"); scriptHash != "" {
		var raw mocktx.HexBytes
		if err := raw.UnmarshalText([]byte(scriptHash)); err != nil {
			return err
		}
		hash, err := raw.Hash32()
		if err != nil {
			return err
		}
		host, err = mocktx.NewHostForScript(mock, hash)
		if err != nil {
			return err
		}
	} else {
		host, err = mocktx.NewHost(mock, c.Int("group"))
		if err != nil {
			return err
		}
	}

	group := host.Group()
	logger.Info().
		Str("kind", group.Kind.String()).
		Hex("script_hash", group.Hash[:]).
		Int("inputs", len(group.Inputs)).
		Int("outputs", len(group.Outputs)).
		Msg("running script group")

	return txdump.NewDumper(host, c.App.Writer, opts...).Run()
}

func groupsAction(c *cli.Context) error {
	mock, err := mocktx.Load(c.String("mock"))
	if err != nil {
		return err
	}
	groups, err := mock.ScriptGroups()
	if err != nil {
		return err
	}
	for i, group := range groups {
		fmt.Fprintf(c.App.Writer, "%d: %s 0x%x inputs=%v outputs=%v\n", i, group.Kind, group.Hash, group.Inputs, group.Outputs)
	}
	return nil
}

func convertAction(c *cli.Context) error {
	mock, err := mocktx.Load(c.String("in"))
	if err != nil {
		return err
	}

	out := c.String("out")
	if dir := c.String("bin-dir"); dir != "" {
		replaced, err := mocktx.ReplaceDataWithFiles(mock, dir, filepath.Dir(out))
		if err != nil {
			return fmt.Errorf("bin dir %s: %w", dir, err)
		}
		logger := newLogger(c.App.ErrWriter, false)
		logger.Info().Str("dir", dir).Int("cell_deps", replaced).Msg("referenced cell dep binaries")
	}
	return mocktx.Save(out, mock)
}
