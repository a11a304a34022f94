// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

// Package txdump prints the transaction a CKB script runs in: hashes, the
// running script, a structural walk of the serialized transaction and the
// cell and witness data of every source.
//
// The transaction is never loaded as a whole. It is read through a windowed
// cache over paginated LoadTransaction calls and decoded with lazy molecule
// cursors, so transactions larger than any local buffer can be walked.
package txdump

import (
	"errors"
	"fmt"
	"io"

	"github.com/pk910/ckb-txdump/blockchain"
	"github.com/pk910/ckb-txdump/host"
	"github.com/pk910/ckb-txdump/molutils"
)

const (
	beginBanner = "\n----------------------begin----------------------\n"
	endBanner   = "\n-----------------------end-----------------------\n"
)

// Dumper walks one transaction through a host.
// A Dumper is not safe for concurrent use.
type Dumper struct {
	sys     host.Syscalls
	out     *Formatter
	options Options
}

func NewDumper(sys host.Syscalls, w io.Writer, opts ...Option) *Dumper {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.ScratchSize <= 0 {
		options.ScratchSize = DefaultScratchSize
	}
	if options.MaxItems <= 0 {
		options.MaxItems = DefaultMaxItems
	}

	return &Dumper{
		sys:     sys,
		out:     NewFormatter(w, options.PrintMode, make([]byte, options.ScratchSize)),
		options: options,
	}
}

func (d *Dumper) logf(format string, args ...any) {
	if d.options.Verbose && d.options.LogCb != nil {
		d.options.LogCb(format, args...)
	}
}

// failureLog reports source load failures regardless of verbosity.
func (d *Dumper) failureLog() func(format string, args ...any) {
	return d.options.LogCb
}

// Run prints the full dump. Failures of single fields are printed in place
// and never stop the dump; only output write errors are returned.
func (d *Dumper) Run() error {
	d.out.Line(beginBanner)
	d.DumpTxHash()
	d.DumpScriptHash()
	d.DumpScript()
	d.DumpTransaction()
	d.DumpAllCellInfo()
	d.DumpGroupCellInfo()
	if d.options.DepsData {
		d.DumpDepsData()
	}
	d.out.Line(endBanner)
	return d.out.Err()
}

func (d *Dumper) DumpTxHash() {
	hash, err := host.LoadHash(d.sys.LoadTxHash)
	if err != nil {
		d.out.Failure("CurCell TxHash", err)
		return
	}
	d.out.Byte32("CurCell TxHash", hash)
	d.out.Line("\n")
}

func (d *Dumper) DumpScriptHash() {
	hash, err := host.LoadHash(d.sys.LoadScriptHash)
	if err != nil {
		d.out.Failure("CurCell ScriptHash", err)
		return
	}
	d.out.Byte32("CurCell ScriptHash", hash)
	d.out.Line("\n")
}

func (d *Dumper) DumpScript() {
	src, err := host.ScriptSource(d.sys, d.failureLog())
	if err != nil {
		d.out.Failure("CurCell Script", err)
		return
	}
	d.out.Source("CurCell Script", src)
	d.out.Line("\n")
}

// DumpTransaction prints the serialized transaction and walks its fields.
func (d *Dumper) DumpTransaction() {
	src, err := host.TransactionSource(d.sys, d.failureLog())
	if err != nil {
		d.out.Failure("Transaction", err)
		return
	}
	cache := molutils.NewCachedSource(src, d.options.CacheSize)
	if d.options.Verbose {
		cache.SetLogCb(d.options.LogCb)
	}

	d.out.Source("Transaction", cache)
	d.out.Line("\n")

	tx := blockchain.NewTransaction(molutils.NewCursor(cache))
	if err := tx.Verify(d.options.Compatible); err != nil {
		d.out.Failure("Transaction verify", err)
	}
	d.walkTransaction(tx)

	stats := cache.Stats()
	d.logf("transaction cache: %d hits, %d fetches, %d bypasses", stats.Hits, stats.Fetches, stats.Bypasses)
}

func (d *Dumper) walkTransaction(tx blockchain.Transaction) {
	raw := tx.Raw()
	d.out.Value("Transaction version", raw.Version())

	cellDeps := raw.CellDeps()
	d.out.Value("CellDeps count", cellDeps.Len())
	for i := uint32(0); i < d.bound(cellDeps.Len()); i++ {
		dep, _ := cellDeps.Get(i)
		label := fmt.Sprintf("CellDep[%d]", i)
		d.out.Value(label+" dep_type", dep.DepType())
		d.out.Value(label+" index", dep.OutPoint().Index())
		d.out.Byte32(label+" tx_hash", dep.OutPoint().TxHash().Array())
	}

	headerDeps := raw.HeaderDeps()
	d.out.Value("HeaderDeps count", headerDeps.Len())
	for i := uint32(0); i < d.bound(headerDeps.Len()); i++ {
		hash, _ := headerDeps.Get(i)
		d.out.Byte32(fmt.Sprintf("HeaderDep[%d]", i), hash.Array())
	}

	inputs := raw.Inputs()
	d.out.Value("Inputs count", inputs.Len())
	for i := uint32(0); i < d.bound(inputs.Len()); i++ {
		input, _ := inputs.Get(i)
		label := fmt.Sprintf("Input[%d]", i)
		d.out.Value(label+" since", input.Since())
		d.out.Byte32(label+" tx_hash", input.PreviousOutput().TxHash().Array())
		d.out.Value(label+" index", input.PreviousOutput().Index())
	}

	outputs := raw.Outputs()
	d.out.Value("Outputs count", outputs.Len())
	for i := uint32(0); i < d.bound(outputs.Len()); i++ {
		output, _ := outputs.Get(i)
		label := fmt.Sprintf("Output[%d]", i)
		d.out.Value(label+" capacity", output.Capacity())
		d.printScript(label+" lock", output.Lock())
		if typeScript := output.Type(); typeScript.IsSome() {
			d.printScript(label+" type", typeScript.Unwrap())
		} else {
			d.out.Value(label+" type", "none")
		}
	}

	outputsData := raw.OutputsData()
	d.out.Value("OutputsData count", outputsData.Len())
	for i := uint32(0); i < d.bound(outputsData.Len()); i++ {
		data, _ := outputsData.Get(i)
		d.out.Source(fmt.Sprintf("OutputsData[%d]", i), data.Raw())
	}

	witnesses := tx.Witnesses()
	d.out.Value("Witnesses count", witnesses.Len())
	for i := uint32(0); i < d.bound(witnesses.Len()); i++ {
		witness, _ := witnesses.Get(i)
		label := fmt.Sprintf("Witness[%d]", i)
		d.out.Source(label, witness.Raw())
		d.printWitnessArgs(label, witness.Raw())
	}
	d.out.Line("\n")
}

func (d *Dumper) bound(n uint32) uint32 {
	if limit := uint32(d.options.MaxItems); n > limit {
		return limit
	}
	return n
}

func (d *Dumper) printScript(label string, script blockchain.Script) {
	d.out.Byte32(label+" code_hash", script.CodeHash().Array())
	d.out.Value(label+" hash_type", script.HashType())
	d.out.Source(label+" args", script.Args().Raw())
}

// printWitnessArgs decodes a witness as WitnessArgs. Witnesses that do not
// verify as WitnessArgs are opaque and print nothing more.
func (d *Dumper) printWitnessArgs(label string, cur molutils.Cursor) {
	args := blockchain.NewWitnessArgs(cur)
	if err := args.Verify(d.options.Compatible); err != nil {
		d.logf("%s is not WitnessArgs: %v", label, err)
		return
	}
	fields := []struct {
		name  string
		value blockchain.BytesOpt
	}{
		{"lock", args.Lock()},
		{"input_type", args.InputType()},
		{"output_type", args.OutputType()},
	}
	for _, field := range fields {
		if field.value.IsNone() {
			d.out.Value(label+" "+field.name, "none")
			continue
		}
		d.out.Source(label+" "+field.name, field.value.Unwrap().Raw())
	}
}

// DumpAllCellInfo prints cell data and witnesses of the plain sources.
func (d *Dumper) DumpAllCellInfo() {
	d.dumpCellData("Input cell data", host.SourceInput)
	d.dumpCellData("Output cell data", host.SourceOutput)
	d.dumpWitnesses("Input witness data", host.SourceInput)
	d.dumpWitnesses("Output witness data", host.SourceOutput)
}

// DumpGroupCellInfo prints cell data and witnesses of the running script's
// own group.
func (d *Dumper) DumpGroupCellInfo() {
	d.dumpCellData("InputGroup cell data", host.SourceGroupInput)
	d.dumpWitnesses("InputGroup witness data", host.SourceGroupInput)
	d.dumpCellData("OutputGroup cell data", host.SourceGroupOutput)
	d.dumpWitnesses("OutputGroup witness data", host.SourceGroupOutput)
}

func (d *Dumper) DumpDepsData() {
	d.dumpCellData("Deps cell data", host.SourceCellDep)
}

func (d *Dumper) dumpCellData(label string, source host.Source) int {
	return d.dumpSource(label, func(index uint64) (molutils.DataSource, error) {
		return host.CellDataSource(d.sys, index, source, d.failureLog())
	})
}

func (d *Dumper) dumpWitnesses(label string, source host.Source) int {
	return d.dumpSource(label, func(index uint64) (molutils.DataSource, error) {
		return host.WitnessSource(d.sys, index, source, d.failureLog())
	})
}

// dumpSource prints items from index 0 until the source reports
// ErrIndexOutOfBound. Other failures are printed and the next index is
// tried. It returns the number of items printed.
func (d *Dumper) dumpSource(label string, open func(index uint64) (molutils.DataSource, error)) int {
	printed := 0
	for i := 0; i < d.options.MaxItems; i++ {
		itemLabel := fmt.Sprintf("%s[%d]", label, i)
		src, err := open(uint64(i))
		if errors.Is(err, host.ErrIndexOutOfBound) {
			break
		}
		if err != nil {
			d.out.Failure(itemLabel, err)
			continue
		}
		d.out.Source(itemLabel, src)
		d.out.Line("\n")
		printed++
	}
	d.logf("%s: %d items", label, printed)
	return printed
}
