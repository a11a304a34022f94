// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package molutils

// DataSource is a read-only byte stream with a known total size whose bytes
// are fetched on demand.
//
// ReadAt copies up to len(dst) bytes starting at offset and returns the number
// of bytes copied. A short count is only returned at the end of the stream or
// when the underlying fetch failed; callers treat it as "no more data".
type DataSource interface {
	TotalSize() uint32
	ReadAt(dst []byte, offset uint32) int
}

// ReadFunc fetches a window of the underlying stream into dst.
type ReadFunc func(dst []byte, offset uint32) int

type funcSource struct {
	total uint32
	read  ReadFunc
}

var _ DataSource = (*funcSource)(nil)

// NewFuncSource adapts a paginated fetch callback into a DataSource.
// Requests are clamped to the declared total size before the callback runs.
func NewFuncSource(total uint32, read ReadFunc) DataSource {
	return &funcSource{
		total: total,
		read:  read,
	}
}

func (s *funcSource) TotalSize() uint32 {
	return s.total
}

func (s *funcSource) ReadAt(dst []byte, offset uint32) int {
	if offset >= s.total || len(dst) == 0 {
		return 0
	}
	if remaining := s.total - offset; uint32(len(dst)) > remaining {
		dst = dst[:remaining]
	}
	n := s.read(dst, offset)
	if n < 0 {
		return 0
	}
	if n > len(dst) {
		return len(dst)
	}
	return n
}
