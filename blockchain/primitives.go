// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

// Package blockchain provides lazy views over molecule encoded CKB
// transactions. Views wrap a molutils.Cursor and decode fields on access;
// nothing is materialized up front.
package blockchain

import (
	"fmt"

	"github.com/pk910/ckb-txdump/molutils"
)

const (
	Byte32Size    = 32
	Uint32Size    = 4
	Uint64Size    = 8
	OutPointSize  = Byte32Size + Uint32Size
	CellInputSize = Uint64Size + OutPointSize
	CellDepSize   = OutPointSize + 1
)

// Byte32 is a fixed 32 byte array, usually a hash.
type Byte32 struct {
	cur molutils.Cursor
}

func NewByte32(cur molutils.Cursor) Byte32 {
	return Byte32{cur: cur}
}

func (b Byte32) Cursor() molutils.Cursor {
	return b.cur
}

func (b Byte32) Array() [32]byte {
	return b.cur.Array32()
}

func (b Byte32) Verify(compatible bool) error {
	return molutils.VerifyStruct(b.cur, Byte32Size)
}

// Bytes is a fixvec of bytes.
type Bytes struct {
	cur molutils.Cursor
}

func NewBytes(cur molutils.Cursor) Bytes {
	return Bytes{cur: cur}
}

func (b Bytes) Cursor() molutils.Cursor {
	return b.cur
}

// Len returns the byte count from the header.
func (b Bytes) Len() uint32 {
	return molutils.FixVecLen(b.cur)
}

// Raw returns the payload without the length header.
func (b Bytes) Raw() molutils.Cursor {
	return molutils.FixVecBody(b.cur, 1)
}

func (b Bytes) Verify(compatible bool) error {
	return molutils.VerifyFixVec(b.cur, 1)
}

type (
	BytesOpt  = molutils.Option[Bytes]
	BytesVec  = molutils.DynVec[Bytes]
	Byte32Vec = molutils.FixVec[Byte32]
)

func NewBytesOpt(cur molutils.Cursor) BytesOpt {
	return molutils.NewOption(cur, NewBytes)
}

func NewBytesVec(cur molutils.Cursor) BytesVec {
	return molutils.NewDynVec(cur, NewBytes)
}

func NewByte32Vec(cur molutils.Cursor) Byte32Vec {
	return molutils.NewFixVec(cur, Byte32Size, NewByte32)
}

// fieldVerifier checks a single table field.
type fieldVerifier func(cur molutils.Cursor, compatible bool) error

// verifyTable checks the table header and then every declared field.
func verifyTable(cur molutils.Cursor, compatible bool, fields ...fieldVerifier) error {
	offsets, err := molutils.VerifyTable(cur, uint32(len(fields)), compatible)
	if err != nil {
		return err
	}
	defer molutils.PutOffsetSlice(offsets)

	for i, verify := range fields {
		field := cur.Slice(offsets[i], offsets[i+1]-offsets[i])
		if err := verify(field, compatible); err != nil {
			return fmt.Errorf("field %d: %w", i, err)
		}
	}
	return nil
}

func verifyFixed(size uint32) fieldVerifier {
	return func(cur molutils.Cursor, compatible bool) error {
		return molutils.VerifyStruct(cur, size)
	}
}

func verifyView[T molutils.View](wrap func(molutils.Cursor) T) fieldVerifier {
	return func(cur molutils.Cursor, compatible bool) error {
		return wrap(cur).Verify(compatible)
	}
}
