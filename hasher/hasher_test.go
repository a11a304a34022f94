// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package hasher

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/pk910/ckb-txdump/buffer"
)

func TestKnownDigests(t *testing.T) {
	tests := []struct {
		name string
		fn   func([]byte) [HashSize]byte
		want string
	}{
		{"ckb blank hash", CkbHash, "44f4c69744d5f8c55d642062949dcae49bc4e7ef43d388c5a12f42b5633d163e"},
		{"plain blank hash", PlainHash, "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.fn(nil)
			if hex.EncodeToString(got[:]) != test.want {
				t.Errorf("got %x, expected %s", got, test.want)
			}
		})
	}
}

func TestPersonalizationDiffers(t *testing.T) {
	data := []byte("ckb-txdump")
	if CkbHash(data) == PlainHash(data) {
		t.Errorf("expected personalized and plain digests to differ")
	}
}

func TestWriteSourceMatchesDirectHash(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 1000)

	h := PlainHasherPool.Get()
	defer PlainHasherPool.Put(h)

	n := h.WriteSource(buffer.NewBufferSource(data), make([]byte, 333))
	if n != uint32(len(data)) {
		t.Fatalf("expected %d bytes hashed, got %d", len(data), n)
	}
	if h.Sum() != PlainHash(data) {
		t.Errorf("streamed digest differs from direct digest")
	}
}

func TestPoolResetsHashers(t *testing.T) {
	h := CkbHasherPool.Get()
	h.Write([]byte("garbage"))
	CkbHasherPool.Put(h)

	if CkbHash(nil) != CkbHash([]byte{}) {
		t.Errorf("expected pooled hasher to start clean")
	}
}
