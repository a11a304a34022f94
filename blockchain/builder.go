// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package blockchain

import (
	"github.com/pk910/ckb-txdump/molutils"
)

// The Pack functions produce the molecule encoding read by the views in this
// package. Nested arguments are expected to be encoded already.

func PackOutPoint(txHash [32]byte, index uint32) []byte {
	return molutils.PackStruct(txHash[:], molutils.PackUint32(index))
}

func PackCellInput(since uint64, previousOutput []byte) []byte {
	return molutils.PackStruct(molutils.PackUint64(since), previousOutput)
}

func PackCellDep(outPoint []byte, depType DepType) []byte {
	return molutils.PackStruct(outPoint, molutils.PackUint8(uint8(depType)))
}

func PackScript(codeHash [32]byte, hashType HashType, args []byte) []byte {
	return molutils.PackTable(
		codeHash[:],
		molutils.PackUint8(uint8(hashType)),
		molutils.PackBytes(args),
	)
}

// PackCellOutput encodes a cell output; a nil typeScript means none.
func PackCellOutput(capacity uint64, lock []byte, typeScript []byte) []byte {
	return molutils.PackTable(
		molutils.PackUint64(capacity),
		lock,
		molutils.PackOption(typeScript),
	)
}

func PackRawTransaction(version uint32, cellDeps, headerDeps, inputs, outputs, outputsData [][]byte) []byte {
	packedData := make([][]byte, len(outputsData))
	for i, data := range outputsData {
		packedData[i] = molutils.PackBytes(data)
	}

	return molutils.PackTable(
		molutils.PackUint32(version),
		molutils.PackFixVec(cellDeps),
		molutils.PackFixVec(headerDeps),
		molutils.PackFixVec(inputs),
		molutils.PackDynVec(outputs),
		molutils.PackDynVec(packedData),
	)
}

func PackTransaction(raw []byte, witnesses [][]byte) []byte {
	packed := make([][]byte, len(witnesses))
	for i, witness := range witnesses {
		packed[i] = molutils.PackBytes(witness)
	}
	return molutils.PackTable(raw, molutils.PackDynVec(packed))
}

// PackWitnessArgs encodes a WitnessArgs table; nil fields are none.
func PackWitnessArgs(lock, inputType, outputType []byte) []byte {
	pack := func(v []byte) []byte {
		if v == nil {
			return molutils.PackOption(nil)
		}
		return molutils.PackBytes(v)
	}
	return molutils.PackTable(pack(lock), pack(inputType), pack(outputType))
}
