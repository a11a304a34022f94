// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package txdump

import (
	"github.com/pk910/ckb-txdump/host"
)

type itemKey struct {
	source host.Source
	index  uint64
}

// fakeHost serves fixed payloads and records every indexed load.
type fakeHost struct {
	txHash     [32]byte
	scriptHash [32]byte
	script     []byte
	tx         []byte
	cells      map[host.Source][][]byte
	witnesses  map[host.Source][][]byte
	errs       map[itemKey]error

	cellCalls []itemKey
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		cells:     map[host.Source][][]byte{},
		witnesses: map[host.Source][][]byte{},
		errs:      map[itemKey]error{},
	}
}

func (f *fakeHost) LoadTxHash(buf []byte, offset uint64) (uint64, error) {
	return host.StoreData(buf, offset, f.txHash[:]), nil
}

func (f *fakeHost) LoadScriptHash(buf []byte, offset uint64) (uint64, error) {
	return host.StoreData(buf, offset, f.scriptHash[:]), nil
}

func (f *fakeHost) LoadScript(buf []byte, offset uint64) (uint64, error) {
	return host.StoreData(buf, offset, f.script), nil
}

func (f *fakeHost) LoadTransaction(buf []byte, offset uint64) (uint64, error) {
	return host.StoreData(buf, offset, f.tx), nil
}

func (f *fakeHost) LoadCellData(buf []byte, offset uint64, index uint64, source host.Source) (uint64, error) {
	f.cellCalls = append(f.cellCalls, itemKey{source, index})
	return f.load(f.cells, buf, offset, index, source)
}

func (f *fakeHost) LoadWitness(buf []byte, offset uint64, index uint64, source host.Source) (uint64, error) {
	return f.load(f.witnesses, buf, offset, index, source)
}

func (f *fakeHost) load(items map[host.Source][][]byte, buf []byte, offset uint64, index uint64, source host.Source) (uint64, error) {
	if err := f.errs[itemKey{source, index}]; err != nil {
		return 0, err
	}
	list := items[source]
	if index >= uint64(len(list)) {
		return 0, host.ErrIndexOutOfBound
	}
	return host.StoreData(buf, offset, list[index]), nil
}

// requestedIndices returns the distinct indices loaded from source, in
// request order.
func (f *fakeHost) requestedIndices(source host.Source) []uint64 {
	var indices []uint64
	for _, call := range f.cellCalls {
		if call.source != source {
			continue
		}
		if n := len(indices); n > 0 && indices[n-1] == call.index {
			continue
		}
		indices = append(indices, call.index)
	}
	return indices
}
