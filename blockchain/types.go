// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package blockchain

import "fmt"

// DepType selects how a cell dep is resolved.
type DepType uint8

const (
	DepTypeCode     DepType = 0
	DepTypeDepGroup DepType = 1
)

func (t DepType) String() string {
	switch t {
	case DepTypeCode:
		return "code"
	case DepTypeDepGroup:
		return "dep_group"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// ParseDepType parses the JSON name of a dep type.
func ParseDepType(name string) (DepType, error) {
	switch name {
	case "code":
		return DepTypeCode, nil
	case "dep_group", "depGroup":
		return DepTypeDepGroup, nil
	default:
		return 0, fmt.Errorf("unknown dep type %q", name)
	}
}

// HashType selects how a script code hash is matched.
type HashType uint8

const (
	HashTypeData  HashType = 0
	HashTypeType  HashType = 1
	HashTypeData1 HashType = 2
	HashTypeData2 HashType = 4
)

func (t HashType) String() string {
	switch t {
	case HashTypeData:
		return "data"
	case HashTypeType:
		return "type"
	case HashTypeData1:
		return "data1"
	case HashTypeData2:
		return "data2"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// ParseHashType parses the JSON name of a hash type.
func ParseHashType(name string) (HashType, error) {
	switch name {
	case "data":
		return HashTypeData, nil
	case "type":
		return HashTypeType, nil
	case "data1":
		return HashTypeData1, nil
	case "data2":
		return HashTypeData2, nil
	default:
		return 0, fmt.Errorf("unknown hash type %q", name)
	}
}
