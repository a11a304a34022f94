// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package blockchain

import (
	"github.com/pk910/ckb-txdump/molutils"
)

// OutPoint references a cell by transaction hash and output index.
//
//	tx_hash Byte32 | index Uint32
type OutPoint struct {
	cur molutils.Cursor
}

func NewOutPoint(cur molutils.Cursor) OutPoint {
	return OutPoint{cur: cur}
}

func (o OutPoint) Cursor() molutils.Cursor {
	return o.cur
}

func (o OutPoint) TxHash() Byte32 {
	return NewByte32(o.cur.Slice(0, Byte32Size))
}

func (o OutPoint) Index() uint32 {
	return o.cur.Slice(Byte32Size, Uint32Size).Uint32()
}

func (o OutPoint) Verify(compatible bool) error {
	return molutils.VerifyStruct(o.cur, OutPointSize)
}

// CellInput spends a previous output.
//
//	since Uint64 | previous_output OutPoint
type CellInput struct {
	cur molutils.Cursor
}

func NewCellInput(cur molutils.Cursor) CellInput {
	return CellInput{cur: cur}
}

func (c CellInput) Cursor() molutils.Cursor {
	return c.cur
}

func (c CellInput) Since() uint64 {
	return c.cur.Slice(0, Uint64Size).Uint64()
}

func (c CellInput) PreviousOutput() OutPoint {
	return NewOutPoint(c.cur.Slice(Uint64Size, OutPointSize))
}

func (c CellInput) Verify(compatible bool) error {
	return molutils.VerifyStruct(c.cur, CellInputSize)
}

// CellDep references a cell whose data is loaded as code or as a dep group.
//
//	out_point OutPoint | dep_type byte
type CellDep struct {
	cur molutils.Cursor
}

func NewCellDep(cur molutils.Cursor) CellDep {
	return CellDep{cur: cur}
}

func (c CellDep) Cursor() molutils.Cursor {
	return c.cur
}

func (c CellDep) OutPoint() OutPoint {
	return NewOutPoint(c.cur.Slice(0, OutPointSize))
}

func (c CellDep) DepType() DepType {
	return DepType(c.cur.Slice(OutPointSize, 1).Uint8())
}

func (c CellDep) Verify(compatible bool) error {
	return molutils.VerifyStruct(c.cur, CellDepSize)
}

type (
	CellDepVec   = molutils.FixVec[CellDep]
	CellInputVec = molutils.FixVec[CellInput]
)

func NewCellDepVec(cur molutils.Cursor) CellDepVec {
	return molutils.NewFixVec(cur, CellDepSize, NewCellDep)
}

func NewCellInputVec(cur molutils.Cursor) CellInputVec {
	return molutils.NewFixVec(cur, CellInputSize, NewCellInput)
}
