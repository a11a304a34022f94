// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package mocktx

import (
	"fmt"

	"github.com/pk910/ckb-txdump/blockchain"
)

// PackOutPoint encodes an out point.
func PackOutPoint(o OutPoint) ([]byte, error) {
	hash, err := o.TxHash.Hash32()
	if err != nil {
		return nil, fmt.Errorf("out point tx_hash: %w", err)
	}
	return blockchain.PackOutPoint(hash, uint32(o.Index)), nil
}

// PackScript encodes a script.
func PackScript(s Script) ([]byte, error) {
	codeHash, err := s.CodeHash.Hash32()
	if err != nil {
		return nil, fmt.Errorf("script code_hash: %w", err)
	}
	hashType, err := blockchain.ParseHashType(s.HashType)
	if err != nil {
		return nil, err
	}
	return blockchain.PackScript(codeHash, hashType, s.Args), nil
}

// PackCellOutput encodes a cell output.
func PackCellOutput(o CellOutput) ([]byte, error) {
	lock, err := PackScript(o.Lock)
	if err != nil {
		return nil, fmt.Errorf("lock: %w", err)
	}
	var typeScript []byte
	if o.Type != nil {
		if typeScript, err = PackScript(*o.Type); err != nil {
			return nil, fmt.Errorf("type: %w", err)
		}
	}
	return blockchain.PackCellOutput(uint64(o.Capacity), lock, typeScript), nil
}

// PackRawTransaction encodes the hashed part of the transaction.
func PackRawTransaction(tx *Transaction) ([]byte, error) {
	cellDeps := make([][]byte, len(tx.CellDeps))
	for i, dep := range tx.CellDeps {
		outPoint, err := PackOutPoint(dep.OutPoint)
		if err != nil {
			return nil, fmt.Errorf("cell dep %d: %w", i, err)
		}
		depType, err := blockchain.ParseDepType(dep.DepType)
		if err != nil {
			return nil, fmt.Errorf("cell dep %d: %w", i, err)
		}
		cellDeps[i] = blockchain.PackCellDep(outPoint, depType)
	}

	headerDeps := make([][]byte, len(tx.HeaderDeps))
	for i, dep := range tx.HeaderDeps {
		hash, err := dep.Hash32()
		if err != nil {
			return nil, fmt.Errorf("header dep %d: %w", i, err)
		}
		headerDeps[i] = hash[:]
	}

	inputs := make([][]byte, len(tx.Inputs))
	for i, input := range tx.Inputs {
		outPoint, err := PackOutPoint(input.PreviousOutput)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		inputs[i] = blockchain.PackCellInput(uint64(input.Since), outPoint)
	}

	outputs := make([][]byte, len(tx.Outputs))
	for i, output := range tx.Outputs {
		packed, err := PackCellOutput(output)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", i, err)
		}
		outputs[i] = packed
	}

	outputsData := make([][]byte, len(tx.OutputsData))
	for i, data := range tx.OutputsData {
		outputsData[i] = data
	}

	return blockchain.PackRawTransaction(uint32(tx.Version), cellDeps, headerDeps, inputs, outputs, outputsData), nil
}

// PackTransaction encodes the full transaction and returns it together with
// its raw part.
func PackTransaction(tx *Transaction) (full []byte, raw []byte, err error) {
	raw, err = PackRawTransaction(tx)
	if err != nil {
		return nil, nil, err
	}
	witnesses := make([][]byte, len(tx.Witnesses))
	for i, witness := range tx.Witnesses {
		witnesses[i] = witness
	}
	return blockchain.PackTransaction(raw, witnesses), raw, nil
}
