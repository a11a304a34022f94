// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package molutils

import (
	"encoding/binary"
)

// NumberSize is the width of every molecule header, count and offset.
const NumberSize = 4

// Cursor is a view of size bytes starting at offset in a DataSource.
// It never owns or copies data; bytes are fetched when read.
type Cursor struct {
	offset uint32
	size   uint32
	source DataSource
}

var _ DataSource = Cursor{}

// NewCursor returns a cursor spanning the whole source.
func NewCursor(source DataSource) Cursor {
	return Cursor{
		offset: 0,
		size:   source.TotalSize(),
		source: source,
	}
}

func (c Cursor) Offset() uint32 {
	return c.offset
}

func (c Cursor) Size() uint32 {
	return c.size
}

func (c Cursor) IsEmpty() bool {
	return c.size == 0
}

func (c Cursor) Source() DataSource {
	return c.source
}

// TotalSize returns the cursor size, so a cursor can back a formatter or
// another cursor like any other DataSource.
func (c Cursor) TotalSize() uint32 {
	return c.size
}

// Slice returns the sub-range [rel, rel+n) of the cursor.
// A range that does not fit inside the cursor yields an empty cursor at the
// end of the parent span.
func (c Cursor) Slice(rel uint32, n uint32) Cursor {
	if uint64(rel)+uint64(n) > uint64(c.size) {
		return c.empty()
	}
	return Cursor{
		offset: c.offset + rel,
		size:   n,
		source: c.source,
	}
}

// SliceFrom returns everything from rel to the end of the cursor.
func (c Cursor) SliceFrom(rel uint32) Cursor {
	if rel > c.size {
		return c.empty()
	}
	return c.Slice(rel, c.size-rel)
}

func (c Cursor) empty() Cursor {
	return Cursor{
		offset: c.offset + c.size,
		size:   0,
		source: c.source,
	}
}

// ReadAt reads from the cursor at the relative offset, bounded by the
// cursor span.
func (c Cursor) ReadAt(dst []byte, rel uint32) int {
	if c.source == nil || rel >= c.size || len(dst) == 0 {
		return 0
	}
	if remaining := c.size - rel; uint64(len(dst)) > uint64(remaining) {
		dst = dst[:remaining]
	}
	return c.source.ReadAt(dst, c.offset+rel)
}

// Read fills dst from the start of the cursor and returns the number of bytes read.
func (c Cursor) Read(dst []byte) int {
	return c.ReadAt(dst, 0)
}

// Bytes materializes the cursor. The result is shorter than Size() when the
// source cannot supply the whole span; ErrUnexpectedEOF is returned with it.
func (c Cursor) Bytes() ([]byte, error) {
	buf := make([]byte, c.size)
	n := c.Read(buf)
	if uint32(n) < c.size {
		return buf[:n], ErrUnexpectedEOF
	}
	return buf, nil
}

// Array32 reads a 32 byte fixed array. Missing bytes stay zero.
func (c Cursor) Array32() [32]byte {
	var arr [32]byte
	c.Read(arr[:])
	return arr
}

// Uint8 reads the first byte, 0 for an empty cursor.
func (c Cursor) Uint8() uint8 {
	var buf [1]byte
	c.Read(buf[:])
	return buf[0]
}

// Uint32 decodes a little endian uint32. A cursor shorter than 4 bytes is
// zero extended.
func (c Cursor) Uint32() uint32 {
	var buf [4]byte
	c.Read(buf[:])
	return binary.LittleEndian.Uint32(buf[:])
}

// Uint64 decodes a little endian uint64. A cursor shorter than 8 bytes is
// zero extended.
func (c Cursor) Uint64() uint64 {
	var buf [8]byte
	c.Read(buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

// uint32At decodes the little endian number at rel, reporting whether all
// four bytes were available.
func (c Cursor) uint32At(rel uint32) (uint32, bool) {
	var buf [NumberSize]byte
	n := c.ReadAt(buf[:], rel)
	return binary.LittleEndian.Uint32(buf[:]), n == NumberSize
}
