// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package molutils

import (
	"bytes"
	"testing"
)

func TestCursorSlice(t *testing.T) {
	root := NewCursor(newSliceSource(patternBytes(64)))

	tests := []struct {
		name       string
		rel, n     uint32
		wantOffset uint32
		wantSize   uint32
	}{
		{"inside", 4, 8, 4, 8},
		{"whole", 0, 64, 0, 64},
		{"empty at end", 64, 0, 64, 0},
		{"past end", 60, 8, 64, 0},
		{"offset beyond", 100, 1, 64, 0},
		{"overflow", 0xFFFFFFFF, 2, 64, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sub := root.Slice(test.rel, test.n)
			if sub.Offset() != test.wantOffset || sub.Size() != test.wantSize {
				t.Errorf("got [%d,+%d), expected [%d,+%d)", sub.Offset(), sub.Size(), test.wantOffset, test.wantSize)
			}
		})
	}

	nested := root.Slice(8, 16).Slice(4, 4)
	if nested.Offset() != 12 || nested.Size() != 4 {
		t.Errorf("nested slice got [%d,+%d)", nested.Offset(), nested.Size())
	}
	if clamped := root.Slice(8, 16).Slice(12, 8); clamped.Size() != 0 || clamped.Offset() != 24 {
		t.Errorf("child slice escaped its parent: [%d,+%d)", clamped.Offset(), clamped.Size())
	}
}

func TestCursorSliceDoesNoIO(t *testing.T) {
	src := newSliceSource(patternBytes(32))
	cur := NewCursor(src)
	cur.Slice(0, 16).Slice(4, 4).SliceFrom(2)
	if len(src.fetches) != 0 {
		t.Errorf("slicing fetched %d times", len(src.fetches))
	}
}

func TestCursorScalars(t *testing.T) {
	data := []byte{0x07, 0x00, 0x00, 0x00, 0x64, 0, 0, 0, 0, 0, 0, 0x01}
	cur := NewCursor(newSliceSource(data))

	if v := cur.Slice(0, 4).Uint32(); v != 7 {
		t.Errorf("expected 7, got %d", v)
	}
	if v := cur.Slice(4, 8).Uint64(); v != 0x0100000000000064 {
		t.Errorf("unexpected uint64 %x", v)
	}
	if v := cur.Slice(11, 1).Uint8(); v != 1 {
		t.Errorf("expected 1, got %d", v)
	}

	// short and empty cursors zero extend
	if v := cur.Slice(0, 2).Uint32(); v != 7 {
		t.Errorf("expected zero extended 7, got %d", v)
	}
	empty := cur.Slice(12, 0)
	if empty.Uint32() != 0 || empty.Uint64() != 0 || empty.Uint8() != 0 {
		t.Errorf("expected zero scalars from an empty cursor")
	}
	if (Cursor{}).Uint32() != 0 {
		t.Errorf("expected zero from a cursor without source")
	}
}

func TestCursorBytes(t *testing.T) {
	data := patternBytes(40)
	cur := NewCursor(newSliceSource(data))

	got, err := cur.Slice(8, 16).Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if !bytes.Equal(got, data[8:24]) {
		t.Errorf("content differs")
	}

	// a cursor declared larger than its source reports the short read
	oversized := Cursor{offset: 30, size: 20, source: newSliceSource(data)}
	got, err = oversized.Bytes()
	if err != ErrUnexpectedEOF {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
	if len(got) != 10 {
		t.Errorf("expected 10 available bytes, got %d", len(got))
	}

	arr := cur.Slice(0, 32).Array32()
	if !bytes.Equal(arr[:], data[:32]) {
		t.Errorf("Array32 content differs")
	}
}

func TestCursorReadAtBounds(t *testing.T) {
	cur := NewCursor(newSliceSource(patternBytes(32))).Slice(8, 8)
	buf := make([]byte, 16)

	if n := cur.ReadAt(buf, 4); n != 4 {
		t.Errorf("expected read bounded to 4 bytes, got %d", n)
	}
	if n := cur.ReadAt(buf, 8); n != 0 {
		t.Errorf("expected 0 bytes at the end, got %d", n)
	}
	if cur.TotalSize() != 8 {
		t.Errorf("expected TotalSize 8, got %d", cur.TotalSize())
	}
}
