// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package molutils

import "fmt"

// sliceSource is an in-memory DataSource recording every fetch.
type sliceSource struct {
	data    []byte
	fetches []fetchRecord
}

type fetchRecord struct {
	offset uint32
	length int
}

func newSliceSource(data []byte) *sliceSource {
	return &sliceSource{data: data}
}

func (s *sliceSource) TotalSize() uint32 {
	return uint32(len(s.data))
}

func (s *sliceSource) ReadAt(dst []byte, offset uint32) int {
	s.fetches = append(s.fetches, fetchRecord{offset: offset, length: len(dst)})
	if uint64(offset) >= uint64(len(s.data)) {
		return 0
	}
	return copy(dst, s.data[offset:])
}

// poisonedSource panics when any byte at or beyond limit is requested.
type poisonedSource struct {
	data  []byte
	limit uint32
}

func (s *poisonedSource) TotalSize() uint32 {
	return uint32(len(s.data))
}

func (s *poisonedSource) ReadAt(dst []byte, offset uint32) int {
	if uint64(offset)+uint64(len(dst)) > uint64(s.limit) {
		panic(fmt.Sprintf("poisoned read at %d (+%d), limit %d", offset, len(dst), s.limit))
	}
	return copy(dst, s.data[offset:])
}

func patternBytes(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i*7 + 3)
	}
	return buf
}
