// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package molutils

import (
	"fmt"
)

// FixVecLen reads the item count of a fixvec. Only the 4 byte header is read.
func FixVecLen(cur Cursor) uint32 {
	count, _ := cur.uint32At(0)
	return count
}

// FixVecItem slices item index of a fixvec with itemSize byte items.
func FixVecItem(cur Cursor, itemSize uint32, index uint32) (Cursor, bool) {
	if index >= FixVecLen(cur) {
		return cur.empty(), false
	}
	start := uint64(NumberSize) + uint64(index)*uint64(itemSize)
	if start+uint64(itemSize) > uint64(cur.size) {
		return cur.empty(), true
	}
	return cur.Slice(uint32(start), itemSize), true
}

// FixVecBody returns the item area of a fixvec, clamped to the cursor.
func FixVecBody(cur Cursor, itemSize uint32) Cursor {
	bodyLen := uint64(FixVecLen(cur)) * uint64(itemSize)
	if avail := uint64(cur.SliceFrom(NumberSize).size); bodyLen > avail {
		bodyLen = avail
	}
	return cur.Slice(NumberSize, uint32(bodyLen))
}

// VerifyFixVec checks that the declared count matches the span.
func VerifyFixVec(cur Cursor, itemSize uint32) error {
	if cur.size < NumberSize {
		return fmt.Errorf("%w: %v header needs %d bytes, got %d", ErrTotalSize, KindFixVec, NumberSize, cur.size)
	}
	count, ok := cur.uint32At(0)
	if !ok {
		return ErrUnexpectedEOF
	}
	if expected := uint64(NumberSize) + uint64(count)*uint64(itemSize); expected != uint64(cur.size) {
		return fmt.Errorf("%w: %v of %d items expects %d bytes, got %d", ErrItemSize, KindFixVec, count, expected, cur.size)
	}
	return nil
}

// FixVec is a vector of fixed size items.
type FixVec[T any] struct {
	cur      Cursor
	itemSize uint32
	wrap     func(Cursor) T
}

// NewFixVec wraps cur as a fixvec whose items are built by wrap.
func NewFixVec[T any](cur Cursor, itemSize uint32, wrap func(Cursor) T) FixVec[T] {
	return FixVec[T]{
		cur:      cur,
		itemSize: itemSize,
		wrap:     wrap,
	}
}

func (v FixVec[T]) Cursor() Cursor {
	return v.cur
}

func (v FixVec[T]) Kind() Kind {
	return KindFixVec
}

// Len returns the item count from the header.
func (v FixVec[T]) Len() uint32 {
	return FixVecLen(v.cur)
}

// Get returns item index. Out of range indexes return the zero view and false.
func (v FixVec[T]) Get(index uint32) (T, bool) {
	item, ok := FixVecItem(v.cur, v.itemSize, index)
	if !ok {
		var zero T
		return zero, false
	}
	return v.wrap(item), true
}

func (v FixVec[T]) Verify(compatible bool) error {
	return VerifyFixVec(v.cur, v.itemSize)
}

// DynVec is a vector of variable size items located by an offset table.
type DynVec[T View] struct {
	cur  Cursor
	wrap func(Cursor) T
}

// NewDynVec wraps cur as a dynvec whose items are built by wrap.
func NewDynVec[T View](cur Cursor, wrap func(Cursor) T) DynVec[T] {
	return DynVec[T]{
		cur:  cur,
		wrap: wrap,
	}
}

func (v DynVec[T]) Cursor() Cursor {
	return v.cur
}

func (v DynVec[T]) Kind() Kind {
	return KindDynVec
}

// Len derives the item count from the first offset. Item bodies are not read.
func (v DynVec[T]) Len() uint32 {
	return offsetTableLen(v.cur)
}

// Get returns item index. Out of range indexes return the zero view and false.
func (v DynVec[T]) Get(index uint32) (T, bool) {
	count := offsetTableLen(v.cur)
	if index >= count {
		var zero T
		return zero, false
	}
	return v.wrap(offsetTableEntry(v.cur, index, count)), true
}

// Verify checks the offset table and every item.
func (v DynVec[T]) Verify(compatible bool) error {
	offsets, err := VerifyDynVec(v.cur)
	if err != nil {
		return err
	}
	defer PutOffsetSlice(offsets)

	for i := 0; i < len(offsets)-1; i++ {
		item := v.cur.Slice(offsets[i], offsets[i+1]-offsets[i])
		if err := v.wrap(item).Verify(compatible); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}
