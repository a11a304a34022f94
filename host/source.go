// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package host

import (
	"fmt"
	"math"

	"github.com/pk910/ckb-txdump/molutils"
)

// LoadFunc loads a window of one item.
type LoadFunc func(buf []byte, offset uint64) (uint64, error)

// PagedSource serves a DataSource by calling a LoadFunc with an offset for
// every window. Failed loads read as zero bytes and are reported to the log
// callback; they never abort the caller.
type PagedSource struct {
	molutils.DataSource
	name  string
	load  LoadFunc
	logCb func(format string, args ...any)
}

var _ molutils.DataSource = (*PagedSource)(nil)

// NewPagedSource queries the item length with an empty load and returns a
// source over it. That first load error is returned unchanged so callers can
// tell ErrIndexOutOfBound apart from other failures.
func NewPagedSource(name string, load LoadFunc, logCb func(format string, args ...any)) (*PagedSource, error) {
	size, err := load(nil, 0)
	if err != nil {
		return nil, err
	}
	if size > math.MaxUint32 {
		return nil, fmt.Errorf("%s: %d bytes exceed the addressable range", name, size)
	}

	s := &PagedSource{
		name:  name,
		load:  load,
		logCb: logCb,
	}
	s.DataSource = molutils.NewFuncSource(uint32(size), s.read)
	return s, nil
}

// read loads one window. Requests arrive clamped to the item length, so the
// remaining length reported by the load bounds the copied bytes.
func (s *PagedSource) read(dst []byte, offset uint32) int {
	remaining, err := s.load(dst, uint64(offset))
	if err != nil {
		if s.logCb != nil {
			s.logCb("%s: load at offset %d failed: %v", s.name, offset, err)
		}
		return 0
	}
	if remaining > uint64(len(dst)) {
		return len(dst)
	}
	return int(remaining)
}

// TransactionSource pages through the serialized transaction.
func TransactionSource(sys Syscalls, logCb func(format string, args ...any)) (*PagedSource, error) {
	return NewPagedSource("transaction", sys.LoadTransaction, logCb)
}

// ScriptSource pages through the running script.
func ScriptSource(sys Syscalls, logCb func(format string, args ...any)) (*PagedSource, error) {
	return NewPagedSource("script", sys.LoadScript, logCb)
}

// CellDataSource pages through the data of cell index in source.
func CellDataSource(sys Syscalls, index uint64, source Source, logCb func(format string, args ...any)) (*PagedSource, error) {
	return NewPagedSource(fmt.Sprintf("cell data %v[%d]", source, index), func(buf []byte, offset uint64) (uint64, error) {
		return sys.LoadCellData(buf, offset, index, source)
	}, logCb)
}

// WitnessSource pages through witness index in source.
func WitnessSource(sys Syscalls, index uint64, source Source, logCb func(format string, args ...any)) (*PagedSource, error) {
	return NewPagedSource(fmt.Sprintf("witness %v[%d]", source, index), func(buf []byte, offset uint64) (uint64, error) {
		return sys.LoadWitness(buf, offset, index, source)
	}, logCb)
}

// LoadHash loads a 32 byte hash with one of the hash syscalls.
func LoadHash(load LoadFunc) ([32]byte, error) {
	var hash [32]byte
	size, err := load(hash[:], 0)
	if err != nil {
		return hash, err
	}
	if size != uint64(len(hash)) {
		return hash, fmt.Errorf("%w: hash of %d bytes", ErrLengthNotEnough, size)
	}
	return hash, nil
}
