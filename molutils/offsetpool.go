// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package molutils

import (
	"sync"
)

// offsetSlicePool recycles offset tables decoded during verification.
type offsetSlicePool struct {
	pool sync.Pool
}

var defaultOffsetSlicePool = &offsetSlicePool{
	pool: sync.Pool{
		New: func() interface{} {
			slice := make([]uint32, 0, 32)
			return &slice
		},
	},
}

func (p *offsetSlicePool) Get() []uint32 {
	return (*p.pool.Get().(*[]uint32))[:0]
}

func (p *offsetSlicePool) Put(slice []uint32) {
	if cap(slice) > 0 {
		p.pool.Put(&slice)
	}
}

// GetOffsetSlice returns a pooled slice of length size.
func GetOffsetSlice(size int) []uint32 {
	buf := defaultOffsetSlicePool.Get()
	if cap(buf) < size {
		return make([]uint32, size)
	}
	return buf[:size]
}

// PutOffsetSlice hands a slice obtained from GetOffsetSlice back to the pool.
func PutOffsetSlice(slice []uint32) {
	defaultOffsetSlicePool.Put(slice)
}
