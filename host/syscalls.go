// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

// Package host describes the syscalls a CKB script uses to load data about
// the transaction it runs in, and adapts them into paginated data sources.
package host

import "fmt"

// Source selects the transaction relative collection an indexed load reads.
type Source uint64

const (
	SourceInput       Source = 1
	SourceOutput      Source = 2
	SourceCellDep     Source = 3
	SourceHeaderDep   Source = 4
	SourceGroupInput  Source = 0x0100000000000001
	SourceGroupOutput Source = 0x0100000000000002
)

func (s Source) String() string {
	switch s {
	case SourceInput:
		return "input"
	case SourceOutput:
		return "output"
	case SourceCellDep:
		return "cell_dep"
	case SourceHeaderDep:
		return "header_dep"
	case SourceGroupInput:
		return "group_input"
	case SourceGroupOutput:
		return "group_output"
	default:
		return fmt.Sprintf("source(%#x)", uint64(s))
	}
}

// Status is a non-zero syscall return code.
type Status int

const (
	ErrIndexOutOfBound Status = 1
	ErrItemMissing     Status = 2
	ErrLengthNotEnough Status = 3
	ErrInvalidData     Status = 4
)

func (s Status) Error() string {
	switch s {
	case ErrIndexOutOfBound:
		return "index out of bound"
	case ErrItemMissing:
		return "item missing"
	case ErrLengthNotEnough:
		return "length not enough"
	case ErrInvalidData:
		return "invalid data"
	default:
		return fmt.Sprintf("syscall error %d", int(s))
	}
}

// Syscalls is the set of loads the dumper needs from its host.
//
// Every load copies at most len(buf) bytes of the item starting at offset
// and returns the full remaining length of the item from offset, so callers
// can query sizes with an empty buffer and page through large items.
type Syscalls interface {
	LoadTxHash(buf []byte, offset uint64) (uint64, error)
	LoadScriptHash(buf []byte, offset uint64) (uint64, error)
	LoadScript(buf []byte, offset uint64) (uint64, error)
	LoadTransaction(buf []byte, offset uint64) (uint64, error)
	LoadCellData(buf []byte, offset uint64, index uint64, source Source) (uint64, error)
	LoadWitness(buf []byte, offset uint64, index uint64, source Source) (uint64, error)
}

// StoreData implements the partial loading contract over an in-memory item.
func StoreData(buf []byte, offset uint64, data []byte) uint64 {
	if offset >= uint64(len(data)) {
		return 0
	}
	copy(buf, data[offset:])
	return uint64(len(data)) - offset
}
