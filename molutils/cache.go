// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package molutils

const (
	// DefaultCacheSize is the window size used when no capacity is configured.
	DefaultCacheSize = 2048

	// minCacheSize keeps the window large enough to hold any scalar field.
	minCacheSize = 8
)

// CacheStats counts how read requests were served.
type CacheStats struct {
	Hits     uint64 // served from the current window
	Fetches  uint64 // window refreshed from the backing source
	Bypasses uint64 // oversized reads passed straight through
}

// CachedSource keeps the most recently fetched contiguous window of a
// DataSource in a fixed buffer.
//
// The window always holds exactly the backing bytes in
// [start, start+length). A miss discards the window and fetches up to
// capacity bytes starting at the requested offset. Reads larger than the
// capacity bypass the window entirely.
type CachedSource struct {
	backing DataSource
	buffer  []byte
	start   uint32
	length  uint32
	stats   CacheStats
	logCb   func(format string, args ...any)
}

var _ DataSource = (*CachedSource)(nil)

// NewCachedSource wraps backing with a window of the given capacity.
// A capacity of 0 selects DefaultCacheSize.
func NewCachedSource(backing DataSource, capacity int) *CachedSource {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	if capacity < minCacheSize {
		capacity = minCacheSize
	}

	return &CachedSource{
		backing: backing,
		buffer:  make([]byte, capacity),
	}
}

// SetLogCb installs a callback that receives a line for every window refresh.
func (c *CachedSource) SetLogCb(logCb func(format string, args ...any)) {
	c.logCb = logCb
}

func (c *CachedSource) TotalSize() uint32 {
	return c.backing.TotalSize()
}

func (c *CachedSource) Capacity() int {
	return len(c.buffer)
}

func (c *CachedSource) Stats() CacheStats {
	return c.stats
}

// Window returns the offset and length of the currently cached range.
func (c *CachedSource) Window() (uint32, uint32) {
	return c.start, c.length
}

// contains reports whether [offset, offset+n) lies inside the window.
func (c *CachedSource) contains(offset uint32, n uint32) bool {
	if offset < c.start {
		return false
	}
	rel := uint64(offset - c.start)
	return rel+uint64(n) <= uint64(c.length)
}

func (c *CachedSource) ReadAt(dst []byte, offset uint32) int {
	total := c.backing.TotalSize()
	if offset >= total || len(dst) == 0 {
		return 0
	}
	if remaining := total - offset; uint64(len(dst)) > uint64(remaining) {
		dst = dst[:remaining]
	}
	n := uint32(len(dst))

	if c.contains(offset, n) {
		c.stats.Hits++
		rel := offset - c.start
		return copy(dst, c.buffer[rel:rel+n])
	}

	if len(dst) > len(c.buffer) {
		c.stats.Bypasses++
		if c.logCb != nil {
			c.logCb("cache bypass: offset %d, length %d", offset, n)
		}
		return c.backing.ReadAt(dst, offset)
	}

	c.refill(offset)

	if !c.contains(offset, n) {
		// short fetch, hand out whatever the window got
		if offset >= c.start+c.length {
			return 0
		}
		return copy(dst, c.buffer[offset-c.start:c.length])
	}
	rel := offset - c.start
	return copy(dst, c.buffer[rel:rel+n])
}

// refill replaces the window with a fresh fetch starting at offset.
func (c *CachedSource) refill(offset uint32) {
	c.stats.Fetches++
	read := c.backing.ReadAt(c.buffer, offset)
	if read < 0 {
		read = 0
	}
	c.start = offset
	c.length = uint32(read)

	if c.logCb != nil {
		c.logCb("cache refill: offset %d, got %d of %d bytes", offset, read, len(c.buffer))
	}
}
