// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package molutils

import (
	"fmt"
)

// Tables and dynvecs share one layout:
//
//	u32 total_size | u32 offset[n] | body
//
// where entry i spans [offset[i], offset[i+1]) and the last one ends at
// total_size. The entry count is offset[0]/4 - 1.

// offsetTableLen returns the number of entries without touching the body.
// Only the first 8 bytes of the cursor are read.
func offsetTableLen(cur Cursor) uint32 {
	if cur.size <= NumberSize {
		return 0
	}
	first, ok := cur.uint32At(NumberSize)
	if !ok || first < 2*NumberSize {
		return 0
	}
	count := first/NumberSize - 1
	if maxCount := cur.size/NumberSize - 1; count > maxCount {
		count = maxCount
	}
	return count
}

// offsetTableEntry slices entry index out of the cursor. Entries with
// inverted or out of range offsets come back empty.
func offsetTableEntry(cur Cursor, index uint32, count uint32) Cursor {
	if index >= count {
		return cur.empty()
	}
	start, ok := cur.uint32At(NumberSize * (index + 1))
	if !ok {
		return cur.empty()
	}
	end := cur.size
	if index+1 < count {
		if end, ok = cur.uint32At(NumberSize * (index + 2)); !ok {
			return cur.empty()
		}
	}
	if end < start {
		return cur.empty()
	}
	return cur.Slice(start, end-start)
}

// TableFieldCount returns the number of fields actually present in a table.
func TableFieldCount(cur Cursor) uint32 {
	return offsetTableLen(cur)
}

// TableField returns field index of a table. Fields beyond the actual field
// count are empty, which lets older encodings be read with a newer schema.
func TableField(cur Cursor, index uint32) Cursor {
	return offsetTableEntry(cur, index, offsetTableLen(cur))
}

// VerifyStruct checks that a struct cursor has exactly the declared size.
func VerifyStruct(cur Cursor, size uint32) error {
	if cur.size != size {
		return fmt.Errorf("%w: %v expects %d bytes, got %d", ErrTotalSize, KindStruct, size, cur.size)
	}
	return nil
}

// VerifyTable checks a table header against the expected field count. In
// compatible mode extra trailing fields are accepted. The decoded offsets are
// returned (including the trailing total size) and must be released with
// PutOffsetSlice.
func VerifyTable(cur Cursor, fieldCount uint32, compatible bool) ([]uint32, error) {
	offsets, err := readOffsetTable(cur, KindTable)
	if err != nil {
		return nil, err
	}
	count := uint32(len(offsets) - 1)
	if count < fieldCount || (!compatible && count > fieldCount) {
		PutOffsetSlice(offsets)
		return nil, fmt.Errorf("%w: %v expects %d fields, got %d", ErrFieldCount, KindTable, fieldCount, count)
	}
	return offsets, nil
}

// VerifyDynVec checks a dynvec header and returns its offsets like VerifyTable.
func VerifyDynVec(cur Cursor) ([]uint32, error) {
	return readOffsetTable(cur, KindDynVec)
}

// readOffsetTable decodes and validates the header of a table or dynvec.
// The result holds one entry per item followed by the total size.
func readOffsetTable(cur Cursor, kind Kind) ([]uint32, error) {
	if cur.size < NumberSize {
		return nil, fmt.Errorf("%w: %v header needs %d bytes, got %d", ErrTotalSize, kind, NumberSize, cur.size)
	}
	total, ok := cur.uint32At(0)
	if !ok {
		return nil, ErrUnexpectedEOF
	}
	if total != cur.size {
		return nil, fmt.Errorf("%w: %v declares %d bytes, span is %d", ErrTotalSize, kind, total, cur.size)
	}
	if total == NumberSize {
		offsets := GetOffsetSlice(1)
		offsets[0] = total
		return offsets, nil
	}
	if total < 2*NumberSize {
		return nil, fmt.Errorf("%w: %v of %d bytes has no room for offsets", ErrOffset, kind, total)
	}

	first, ok := cur.uint32At(NumberSize)
	if !ok {
		return nil, ErrUnexpectedEOF
	}
	if first%NumberSize != 0 || first < 2*NumberSize || first > total {
		return nil, fmt.Errorf("%w: %v first offset %d", ErrOffset, kind, first)
	}

	// The header must be backed by real bytes before it is sized in memory.
	if _, ok := cur.uint32At(first - NumberSize); !ok {
		return nil, ErrUnexpectedEOF
	}

	count := int(first/NumberSize - 1)
	offsets := GetOffsetSlice(count + 1)
	offsets[0] = first
	for i := 1; i < count; i++ {
		offset, ok := cur.uint32At(uint32(i+1) * NumberSize)
		if !ok {
			PutOffsetSlice(offsets)
			return nil, ErrUnexpectedEOF
		}
		offsets[i] = offset
	}
	offsets[count] = total

	for i := 0; i < count; i++ {
		if offsets[i] > offsets[i+1] {
			PutOffsetSlice(offsets)
			return nil, fmt.Errorf("%w: %v offset %d (%d) exceeds next offset (%d)", ErrOffset, kind, i, offsets[i], offsets[i+1])
		}
	}
	return offsets, nil
}
