// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package molutils

// Kind is the structural kind of a molecule type.
type Kind uint8

const (
	KindStruct Kind = iota // fixed size, fields at fixed offsets
	KindTable              // offset table, one entry per field
	KindFixVec             // item count followed by fixed size items
	KindDynVec             // offset table, one entry per item
	KindOption             // empty means none
)

func (k Kind) String() string {
	switch k {
	case KindStruct:
		return "struct"
	case KindTable:
		return "table"
	case KindFixVec:
		return "fixvec"
	case KindDynVec:
		return "dynvec"
	case KindOption:
		return "option"
	default:
		return "unknown"
	}
}

// View is implemented by every schema view type.
type View interface {
	Cursor() Cursor
	Verify(compatible bool) error
}
