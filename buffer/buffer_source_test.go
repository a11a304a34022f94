// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package buffer

import (
	"bytes"
	"testing"

	"github.com/pk910/ckb-txdump/molutils"
)

func TestBufferSource(t *testing.T) {
	src := NewBufferSource([]byte{1, 2, 3, 4, 5})
	if src.TotalSize() != 5 {
		t.Fatalf("expected total size 5, got %d", src.TotalSize())
	}

	tests := []struct {
		offset   uint32
		size     int
		expected []byte
	}{
		{0, 2, []byte{1, 2}},
		{3, 4, []byte{4, 5}},
		{5, 1, []byte{}},
		{100, 1, []byte{}},
	}

	for _, test := range tests {
		dst := make([]byte, test.size)
		n := src.ReadAt(dst, test.offset)
		if !bytes.Equal(dst[:n], test.expected) {
			t.Errorf("read at %d: expected %x, got %x", test.offset, test.expected, dst[:n])
		}
	}
	if src.Reads() != len(tests) {
		t.Errorf("expected %d reads, got %d", len(tests), src.Reads())
	}
}

func TestBufferSourceBehindCache(t *testing.T) {
	data := bytes.Repeat([]byte{0xAA, 0xBB}, 64)
	src := NewBufferSource(data)
	cache := molutils.NewCachedSource(src, 32)
	cur := molutils.NewCursor(cache)

	for i := uint32(0); i < 32; i++ {
		if b := cur.Slice(i, 1).Uint8(); b != data[i] {
			t.Fatalf("byte %d: expected %x, got %x", i, data[i], b)
		}
	}
	if src.Reads() != 1 {
		t.Errorf("expected one backing fetch for the first window, got %d", src.Reads())
	}
}
