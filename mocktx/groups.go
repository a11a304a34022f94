// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package mocktx

import (
	"fmt"

	"github.com/pk910/ckb-txdump/hasher"
)

// GroupKind tells whether a script group runs as lock or type script.
type GroupKind uint8

const (
	GroupLock GroupKind = iota
	GroupType
)

func (k GroupKind) String() string {
	if k == GroupType {
		return "type"
	}
	return "lock"
}

// ScriptGroup is the set of inputs and outputs sharing one script.
type ScriptGroup struct {
	Kind    GroupKind
	Hash    [32]byte
	Script  []byte
	Inputs  []uint64
	Outputs []uint64
}

// ScriptGroups collects the script groups of the transaction in order of
// first appearance: lock and type scripts of the spent cells, then type
// scripts of the created cells.
func (m *MockTransaction) ScriptGroups() ([]*ScriptGroup, error) {
	if len(m.MockInfo.Inputs) != len(m.Tx.Inputs) {
		return nil, fmt.Errorf("mock info has %d inputs, transaction has %d", len(m.MockInfo.Inputs), len(m.Tx.Inputs))
	}

	var groups []*ScriptGroup
	index := map[string]*ScriptGroup{}

	lookup := func(kind GroupKind, s Script) (*ScriptGroup, error) {
		packed, err := PackScript(s)
		if err != nil {
			return nil, err
		}
		hash := hasher.CkbHash(packed)
		key := fmt.Sprintf("%v:%x", kind, hash)
		if group := index[key]; group != nil {
			return group, nil
		}
		group := &ScriptGroup{Kind: kind, Hash: hash, Script: packed}
		index[key] = group
		groups = append(groups, group)
		return group, nil
	}

	for i, input := range m.MockInfo.Inputs {
		group, err := lookup(GroupLock, input.Output.Lock)
		if err != nil {
			return nil, fmt.Errorf("input %d lock: %w", i, err)
		}
		group.Inputs = append(group.Inputs, uint64(i))

		if input.Output.Type != nil {
			group, err := lookup(GroupType, *input.Output.Type)
			if err != nil {
				return nil, fmt.Errorf("input %d type: %w", i, err)
			}
			group.Inputs = append(group.Inputs, uint64(i))
		}
	}

	for i, output := range m.Tx.Outputs {
		if output.Type == nil {
			continue
		}
		group, err := lookup(GroupType, *output.Type)
		if err != nil {
			return nil, fmt.Errorf("output %d type: %w", i, err)
		}
		group.Outputs = append(group.Outputs, uint64(i))
	}

	return groups, nil
}
