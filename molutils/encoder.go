// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package molutils

import (
	"encoding/binary"
)

// BufferEncoder writes molecule primitives into a preallocated buffer.
type BufferEncoder struct {
	buffer []byte
	pos    int
}

// NewBufferEncoder creates a BufferEncoder using the provided buffer.
// The buffer must have sufficient capacity for the expected output.
func NewBufferEncoder(buffer []byte) *BufferEncoder {
	return &BufferEncoder{
		buffer: buffer[:cap(buffer)],
		pos:    len(buffer),
	}
}

func (e *BufferEncoder) GetPosition() int {
	return e.pos
}

func (e *BufferEncoder) GetBuffer() []byte {
	return e.buffer[:e.pos]
}

func (e *BufferEncoder) EncodeUint8(v uint8) {
	e.buffer[e.pos] = v
	e.pos++
}

func (e *BufferEncoder) EncodeUint32(v uint32) {
	binary.LittleEndian.PutUint32(e.buffer[e.pos:], v)
	e.pos += 4
}

func (e *BufferEncoder) EncodeUint64(v uint64) {
	binary.LittleEndian.PutUint64(e.buffer[e.pos:], v)
	e.pos += 8
}

func (e *BufferEncoder) EncodeBytes(v []byte) {
	copy(e.buffer[e.pos:], v)
	e.pos += len(v)
}

func (e *BufferEncoder) EncodeOffsetAt(pos int, v uint32) {
	binary.LittleEndian.PutUint32(e.buffer[pos:], v)
}

// PackUint8 encodes a single byte field.
func PackUint8(v uint8) []byte {
	enc := NewBufferEncoder(make([]byte, 0, 1))
	enc.EncodeUint8(v)
	return enc.GetBuffer()
}

// PackUint32 encodes a little endian Uint32.
func PackUint32(v uint32) []byte {
	enc := NewBufferEncoder(make([]byte, 0, 4))
	enc.EncodeUint32(v)
	return enc.GetBuffer()
}

// PackUint64 encodes a little endian Uint64.
func PackUint64(v uint64) []byte {
	enc := NewBufferEncoder(make([]byte, 0, 8))
	enc.EncodeUint64(v)
	return enc.GetBuffer()
}

// PackStruct concatenates fixed size fields.
func PackStruct(fields ...[]byte) []byte {
	size := 0
	for _, f := range fields {
		size += len(f)
	}
	enc := NewBufferEncoder(make([]byte, 0, size))
	for _, f := range fields {
		enc.EncodeBytes(f)
	}
	return enc.GetBuffer()
}

// PackBytes encodes a fixvec of bytes.
func PackBytes(data []byte) []byte {
	enc := NewBufferEncoder(make([]byte, 0, NumberSize+len(data)))
	enc.EncodeUint32(uint32(len(data)))
	enc.EncodeBytes(data)
	return enc.GetBuffer()
}

// PackFixVec encodes a fixvec from already encoded items of equal size.
func PackFixVec(items [][]byte) []byte {
	size := NumberSize
	for _, item := range items {
		size += len(item)
	}
	enc := NewBufferEncoder(make([]byte, 0, size))
	enc.EncodeUint32(uint32(len(items)))
	for _, item := range items {
		enc.EncodeBytes(item)
	}
	return enc.GetBuffer()
}

// PackTable encodes a table from already encoded fields.
func PackTable(fields ...[]byte) []byte {
	return packOffsetTable(fields)
}

// PackDynVec encodes a dynvec from already encoded items.
func PackDynVec(items [][]byte) []byte {
	return packOffsetTable(items)
}

// PackOption encodes an optional value; nil means none.
func PackOption(value []byte) []byte {
	if value == nil {
		return []byte{}
	}
	return value
}

func packOffsetTable(entries [][]byte) []byte {
	headerSize := NumberSize * (len(entries) + 1)
	size := headerSize
	for _, e := range entries {
		size += len(e)
	}

	enc := NewBufferEncoder(make([]byte, 0, size))
	enc.EncodeUint32(uint32(size))

	// reserve the offset table and back-patch it while writing the body
	tablePos := enc.GetPosition()
	enc.EncodeBytes(make([]byte, headerSize-NumberSize))
	for i, e := range entries {
		enc.EncodeOffsetAt(tablePos+i*NumberSize, uint32(enc.GetPosition()))
		enc.EncodeBytes(e)
	}
	return enc.GetBuffer()
}
