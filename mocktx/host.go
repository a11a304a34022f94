// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package mocktx

import (
	"fmt"

	"github.com/pk910/ckb-txdump/hasher"
	"github.com/pk910/ckb-txdump/host"
)

// Host serves the syscalls of one script group of a mock transaction.
type Host struct {
	mock   *MockTransaction
	group  *ScriptGroup
	tx     []byte
	txHash [32]byte
}

var _ host.Syscalls = (*Host)(nil)

// NewHost packs the mock transaction and selects the script group at
// groupIndex as the running script.
func NewHost(mock *MockTransaction, groupIndex int) (*Host, error) {
	groups, err := mock.ScriptGroups()
	if err != nil {
		return nil, err
	}
	if groupIndex < 0 || groupIndex >= len(groups) {
		return nil, fmt.Errorf("script group %d does not exist, transaction has %d groups", groupIndex, len(groups))
	}
	return newHost(mock, groups[groupIndex])
}

// NewHostForScript selects the script group whose script hash matches.
func NewHostForScript(mock *MockTransaction, scriptHash [32]byte) (*Host, error) {
	groups, err := mock.ScriptGroups()
	if err != nil {
		return nil, err
	}
	for _, group := range groups {
		if group.Hash == scriptHash {
			return newHost(mock, group)
		}
	}
	return nil, fmt.Errorf("no script group with hash %x", scriptHash)
}

func newHost(mock *MockTransaction, group *ScriptGroup) (*Host, error) {
	tx, raw, err := PackTransaction(&mock.Tx)
	if err != nil {
		return nil, err
	}
	return &Host{
		mock:   mock,
		group:  group,
		tx:     tx,
		txHash: hasher.CkbHash(raw),
	}, nil
}

func (h *Host) Group() *ScriptGroup {
	return h.group
}

// Transaction returns the packed transaction.
func (h *Host) Transaction() []byte {
	return h.tx
}

func (h *Host) TxHash() [32]byte {
	return h.txHash
}

func (h *Host) LoadTxHash(buf []byte, offset uint64) (uint64, error) {
	return host.StoreData(buf, offset, h.txHash[:]), nil
}

func (h *Host) LoadScriptHash(buf []byte, offset uint64) (uint64, error) {
	return host.StoreData(buf, offset, h.group.Hash[:]), nil
}

func (h *Host) LoadScript(buf []byte, offset uint64) (uint64, error) {
	return host.StoreData(buf, offset, h.group.Script), nil
}

func (h *Host) LoadTransaction(buf []byte, offset uint64) (uint64, error) {
	return host.StoreData(buf, offset, h.tx), nil
}

func (h *Host) LoadCellData(buf []byte, offset uint64, index uint64, source host.Source) (uint64, error) {
	data, err := h.cellData(index, source)
	if err != nil {
		return 0, err
	}
	return host.StoreData(buf, offset, data), nil
}

func (h *Host) LoadWitness(buf []byte, offset uint64, index uint64, source host.Source) (uint64, error) {
	witness, err := h.witness(index, source)
	if err != nil {
		return 0, err
	}
	return host.StoreData(buf, offset, witness), nil
}

func (h *Host) cellData(index uint64, source host.Source) ([]byte, error) {
	switch source {
	case host.SourceInput:
		return itemAt(h.mock.MockInfo.Inputs, index, func(i MockInput) []byte { return i.Data })
	case host.SourceOutput:
		return itemAt(h.mock.Tx.OutputsData, index, func(d HexBytes) []byte { return d })
	case host.SourceCellDep:
		return itemAt(h.mock.MockInfo.CellDeps, index, func(d MockCellDep) []byte { return d.Data.HexBytes })
	case host.SourceHeaderDep:
		return nil, host.ErrIndexOutOfBound
	case host.SourceGroupInput:
		if index >= uint64(len(h.group.Inputs)) {
			return nil, host.ErrIndexOutOfBound
		}
		return h.cellData(h.group.Inputs[index], host.SourceInput)
	case host.SourceGroupOutput:
		if index >= uint64(len(h.group.Outputs)) {
			return nil, host.ErrIndexOutOfBound
		}
		return h.cellData(h.group.Outputs[index], host.SourceOutput)
	default:
		return nil, host.ErrInvalidData
	}
}

func (h *Host) witness(index uint64, source host.Source) ([]byte, error) {
	switch source {
	case host.SourceInput, host.SourceOutput:
		return itemAt(h.mock.Tx.Witnesses, index, func(w HexBytes) []byte { return w })
	case host.SourceCellDep, host.SourceHeaderDep:
		return nil, host.ErrIndexOutOfBound
	case host.SourceGroupInput:
		if index >= uint64(len(h.group.Inputs)) {
			return nil, host.ErrIndexOutOfBound
		}
		return h.witness(h.group.Inputs[index], host.SourceInput)
	case host.SourceGroupOutput:
		if index >= uint64(len(h.group.Outputs)) {
			return nil, host.ErrIndexOutOfBound
		}
		return h.witness(h.group.Outputs[index], host.SourceOutput)
	default:
		return nil, host.ErrInvalidData
	}
}

func itemAt[T any](items []T, index uint64, data func(T) []byte) ([]byte, error) {
	if index >= uint64(len(items)) {
		return nil, host.ErrIndexOutOfBound
	}
	return data(items[index]), nil
}
