// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package molutils

import (
	"bytes"
	"testing"
)

func TestPackScalars(t *testing.T) {
	tests := []struct {
		name     string
		packed   []byte
		expected []byte
	}{
		{"uint8", PackUint8(0xab), []byte{0xab}},
		{"uint32", PackUint32(0x01020304), []byte{0x04, 0x03, 0x02, 0x01}},
		{"uint64", PackUint64(0x0102030405060708), []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if !bytes.Equal(test.packed, test.expected) {
				t.Errorf("expected %x, got %x", test.expected, test.packed)
			}
			if cap(test.packed) != len(test.expected) {
				t.Errorf("expected capacity %d, got %d", len(test.expected), cap(test.packed))
			}
		})
	}
}

func TestBufferEncoderAppends(t *testing.T) {
	enc := NewBufferEncoder(append(make([]byte, 0, 16), 0xff))
	enc.EncodeUint32(1)
	enc.EncodeUint8(2)
	enc.EncodeOffsetAt(1, 7)

	if enc.GetPosition() != 6 {
		t.Errorf("expected position 6, got %d", enc.GetPosition())
	}
	if got := enc.GetBuffer(); !bytes.Equal(got, []byte{0xff, 7, 0, 0, 0, 2}) {
		t.Errorf("unexpected buffer %x", got)
	}
}
