// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

// Package hasher computes the blake2b-256 digests used by CKB: the
// personalized "ckb-default-hash" variant for transaction and script hashes
// and the plain variant used to fingerprint dumped payloads.
package hasher

import (
	"hash"
	"sync"

	blake2bsimd "github.com/minio/blake2b-simd"
	"golang.org/x/crypto/blake2b"

	"github.com/pk910/ckb-txdump/molutils"
)

const HashSize = 32

// CkbPersonalization is the blake2b personalization of CKB hashes.
var CkbPersonalization = []byte("ckb-default-hash")

// NewFn creates a fresh blake2b-256 state.
type NewFn func() hash.Hash

func newCkbHash() hash.Hash {
	h, err := blake2bsimd.New(&blake2bsimd.Config{
		Size:   HashSize,
		Person: CkbPersonalization,
	})
	if err != nil {
		// only reachable with an invalid static config
		panic(err)
	}
	return h
}

// CkbHasherPool pools personalized hashers.
var CkbHasherPool = HasherPool{NewFn: newCkbHash}

func newPlainHash() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		// unkeyed construction cannot fail
		panic(err)
	}
	return h
}

// PlainHasherPool pools hashers without personalization.
var PlainHasherPool = HasherPool{NewFn: newPlainHash}

// HasherPool may be used for pooling Hashers of one flavor.
type HasherPool struct {
	NewFn NewFn
	pool  sync.Pool
}

// Get acquires a Hasher from the pool.
func (hh *HasherPool) Get() *Hasher {
	h := hh.pool.Get()
	if h == nil {
		return &Hasher{hash: hh.NewFn()}
	}
	return h.(*Hasher)
}

// Put releases the Hasher to the pool.
func (hh *HasherPool) Put(h *Hasher) {
	h.Reset()
	hh.pool.Put(h)
}

// Hasher accumulates data and produces a 32 byte digest.
type Hasher struct {
	hash hash.Hash
}

func (h *Hasher) Reset() {
	h.hash.Reset()
}

func (h *Hasher) Write(p []byte) {
	h.hash.Write(p)
}

// WriteSource streams a DataSource into the hasher through buf and returns
// the number of bytes hashed. Hashing stops at the first short read.
func (h *Hasher) WriteSource(src molutils.DataSource, buf []byte) uint32 {
	if len(buf) == 0 {
		buf = make([]byte, 1024)
	}
	total := src.TotalSize()
	var offset uint32
	for offset < total {
		n := src.ReadAt(buf, offset)
		if n <= 0 {
			break
		}
		h.hash.Write(buf[:n])
		offset += uint32(n)
	}
	return offset
}

func (h *Hasher) Sum() [HashSize]byte {
	var out [HashSize]byte
	h.hash.Sum(out[:0])
	return out
}

// CkbHash returns the personalized blake2b-256 digest of data.
func CkbHash(data []byte) [HashSize]byte {
	h := CkbHasherPool.Get()
	defer CkbHasherPool.Put(h)
	h.Write(data)
	return h.Sum()
}

// PlainHash returns the blake2b-256 digest of data.
func PlainHash(data []byte) [HashSize]byte {
	h := PlainHasherPool.Get()
	defer PlainHasherPool.Put(h)
	h.Write(data)
	return h.Sum()
}
