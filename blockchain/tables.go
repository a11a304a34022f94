// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package blockchain

import (
	"github.com/pk910/ckb-txdump/molutils"
)

// Script is a lock or type script.
//
//	table { code_hash Byte32, hash_type byte, args Bytes }
type Script struct {
	cur molutils.Cursor
}

func NewScript(cur molutils.Cursor) Script {
	return Script{cur: cur}
}

func (s Script) Cursor() molutils.Cursor {
	return s.cur
}

func (s Script) CodeHash() Byte32 {
	return NewByte32(molutils.TableField(s.cur, 0))
}

func (s Script) HashType() HashType {
	return HashType(molutils.TableField(s.cur, 1).Uint8())
}

func (s Script) Args() Bytes {
	return NewBytes(molutils.TableField(s.cur, 2))
}

func (s Script) Verify(compatible bool) error {
	return verifyTable(s.cur, compatible,
		verifyFixed(Byte32Size),
		verifyFixed(1),
		verifyView(NewBytes),
	)
}

type ScriptOpt = molutils.Option[Script]

func NewScriptOpt(cur molutils.Cursor) ScriptOpt {
	return molutils.NewOption(cur, NewScript)
}

// CellOutput describes a created cell.
//
//	table { capacity Uint64, lock Script, type ScriptOpt }
type CellOutput struct {
	cur molutils.Cursor
}

func NewCellOutput(cur molutils.Cursor) CellOutput {
	return CellOutput{cur: cur}
}

func (c CellOutput) Cursor() molutils.Cursor {
	return c.cur
}

func (c CellOutput) Capacity() uint64 {
	return molutils.TableField(c.cur, 0).Uint64()
}

func (c CellOutput) Lock() Script {
	return NewScript(molutils.TableField(c.cur, 1))
}

func (c CellOutput) Type() ScriptOpt {
	return NewScriptOpt(molutils.TableField(c.cur, 2))
}

func (c CellOutput) Verify(compatible bool) error {
	return verifyTable(c.cur, compatible,
		verifyFixed(Uint64Size),
		verifyView(NewScript),
		verifyView(NewScriptOpt),
	)
}

type CellOutputVec = molutils.DynVec[CellOutput]

func NewCellOutputVec(cur molutils.Cursor) CellOutputVec {
	return molutils.NewDynVec(cur, NewCellOutput)
}

// RawTransaction is the hashed part of a transaction.
//
//	table {
//	    version      Uint32,
//	    cell_deps    CellDepVec,
//	    header_deps  Byte32Vec,
//	    inputs       CellInputVec,
//	    outputs      CellOutputVec,
//	    outputs_data BytesVec,
//	}
type RawTransaction struct {
	cur molutils.Cursor
}

func NewRawTransaction(cur molutils.Cursor) RawTransaction {
	return RawTransaction{cur: cur}
}

func (r RawTransaction) Cursor() molutils.Cursor {
	return r.cur
}

func (r RawTransaction) Version() uint32 {
	return molutils.TableField(r.cur, 0).Uint32()
}

func (r RawTransaction) CellDeps() CellDepVec {
	return NewCellDepVec(molutils.TableField(r.cur, 1))
}

func (r RawTransaction) HeaderDeps() Byte32Vec {
	return NewByte32Vec(molutils.TableField(r.cur, 2))
}

func (r RawTransaction) Inputs() CellInputVec {
	return NewCellInputVec(molutils.TableField(r.cur, 3))
}

func (r RawTransaction) Outputs() CellOutputVec {
	return NewCellOutputVec(molutils.TableField(r.cur, 4))
}

func (r RawTransaction) OutputsData() BytesVec {
	return NewBytesVec(molutils.TableField(r.cur, 5))
}

func (r RawTransaction) Verify(compatible bool) error {
	return verifyTable(r.cur, compatible,
		verifyFixed(Uint32Size),
		verifyView(NewCellDepVec),
		verifyView(NewByte32Vec),
		verifyView(NewCellInputVec),
		verifyView(NewCellOutputVec),
		verifyView(NewBytesVec),
	)
}

// Transaction is a raw transaction plus its witnesses.
//
//	table { raw RawTransaction, witnesses BytesVec }
type Transaction struct {
	cur molutils.Cursor
}

func NewTransaction(cur molutils.Cursor) Transaction {
	return Transaction{cur: cur}
}

func (t Transaction) Cursor() molutils.Cursor {
	return t.cur
}

func (t Transaction) Raw() RawTransaction {
	return NewRawTransaction(molutils.TableField(t.cur, 0))
}

func (t Transaction) Witnesses() BytesVec {
	return NewBytesVec(molutils.TableField(t.cur, 1))
}

func (t Transaction) Verify(compatible bool) error {
	return verifyTable(t.cur, compatible,
		verifyView(NewRawTransaction),
		verifyView(NewBytesVec),
	)
}

// WitnessArgs is the conventional witness layout.
//
//	table { lock BytesOpt, input_type BytesOpt, output_type BytesOpt }
type WitnessArgs struct {
	cur molutils.Cursor
}

func NewWitnessArgs(cur molutils.Cursor) WitnessArgs {
	return WitnessArgs{cur: cur}
}

func (w WitnessArgs) Cursor() molutils.Cursor {
	return w.cur
}

func (w WitnessArgs) Lock() BytesOpt {
	return NewBytesOpt(molutils.TableField(w.cur, 0))
}

func (w WitnessArgs) InputType() BytesOpt {
	return NewBytesOpt(molutils.TableField(w.cur, 1))
}

func (w WitnessArgs) OutputType() BytesOpt {
	return NewBytesOpt(molutils.TableField(w.cur, 2))
}

func (w WitnessArgs) Verify(compatible bool) error {
	return verifyTable(w.cur, compatible,
		verifyView(NewBytesOpt),
		verifyView(NewBytesOpt),
		verifyView(NewBytesOpt),
	)
}
