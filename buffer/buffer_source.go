// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package buffer

import (
	"github.com/pk910/ckb-txdump/molutils"
)

// BufferSource serves a DataSource from an in-memory byte slice and counts
// the fetches it answers.
type BufferSource struct {
	buffer []byte
	reads  int
}

var _ molutils.DataSource = (*BufferSource)(nil)

func NewBufferSource(buffer []byte) *BufferSource {
	return &BufferSource{
		buffer: buffer,
	}
}

func (s *BufferSource) TotalSize() uint32 {
	return uint32(len(s.buffer))
}

// Reads returns the number of ReadAt calls served so far.
func (s *BufferSource) Reads() int {
	return s.reads
}

func (s *BufferSource) ReadAt(dst []byte, offset uint32) int {
	s.reads++
	if uint64(offset) >= uint64(len(s.buffer)) {
		return 0
	}
	return copy(dst, s.buffer[offset:])
}
