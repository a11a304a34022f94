// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package molutils

import (
	"bytes"
	"testing"
)

func TestCachedSourceTransparency(t *testing.T) {
	data := patternBytes(5000)

	requests := []struct {
		offset uint32
		length int
	}{
		{0, 4},
		{4, 4},
		{100, 32},
		{2040, 16}, // crosses the first window
		{10, 8},    // back into an evicted range
		{0, 3000},  // larger than the window
		{4990, 64}, // runs past the end
		{5000, 4},  // at the end
		{6000, 4},  // beyond the end
		{1024, 2048},
		{1500, 1},
	}

	for _, capacity := range []int{8, 64, 2048} {
		plain := newSliceSource(data)
		cached := NewCachedSource(newSliceSource(data), capacity)

		for _, req := range requests {
			want := make([]byte, req.length)
			got := make([]byte, req.length)
			wantN := plain.ReadAt(want, req.offset)
			gotN := cached.ReadAt(got, req.offset)

			if wantN != gotN {
				t.Fatalf("capacity %d, read(%d,%d): got %d bytes, expected %d", capacity, req.offset, req.length, gotN, wantN)
			}
			if !bytes.Equal(want[:wantN], got[:gotN]) {
				t.Fatalf("capacity %d, read(%d,%d): content differs", capacity, req.offset, req.length)
			}
		}
	}
}

func TestCachedSourceWindow(t *testing.T) {
	backing := newSliceSource(patternBytes(10000))
	cache := NewCachedSource(backing, 1024)
	buf := make([]byte, 16)

	cache.ReadAt(buf, 100)
	if len(backing.fetches) != 1 {
		t.Fatalf("expected 1 fetch, got %d", len(backing.fetches))
	}
	if f := backing.fetches[0]; f.offset != 100 || f.length != 1024 {
		t.Errorf("expected a full window fetch at 100, got %+v", f)
	}

	// nearby reads are served from the window
	cache.ReadAt(buf, 200)
	cache.ReadAt(buf[:4], 1120)
	if len(backing.fetches) != 1 {
		t.Errorf("expected reads inside the window to hit, got %d fetches", len(backing.fetches))
	}

	// a read straddling the window end refreshes it
	cache.ReadAt(buf, 1120)
	if len(backing.fetches) != 2 {
		t.Fatalf("expected a refresh, got %d fetches", len(backing.fetches))
	}
	start, length := cache.Window()
	if start != 1120 || length != 1024 {
		t.Errorf("unexpected window [%d,+%d)", start, length)
	}

	// oversized reads bypass and leave the window alone
	big := make([]byte, 4096)
	if n := cache.ReadAt(big, 0); n != 4096 {
		t.Errorf("expected 4096 bytes, got %d", n)
	}
	if s, l := cache.Window(); s != 1120 || l != 1024 {
		t.Errorf("bypass changed the window to [%d,+%d)", s, l)
	}

	stats := cache.Stats()
	if stats.Hits != 2 || stats.Fetches != 2 || stats.Bypasses != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestCachedSourceShortWindow(t *testing.T) {
	backing := newSliceSource(patternBytes(100))
	cache := NewCachedSource(backing, 2048)

	buf := make([]byte, 8)
	if n := cache.ReadAt(buf, 96); n != 4 {
		t.Errorf("expected 4 bytes at the tail, got %d", n)
	}
	if start, length := cache.Window(); start != 96 || length != 4 {
		t.Errorf("unexpected window [%d,+%d)", start, length)
	}
	if n := cache.ReadAt(buf, 0); n != 8 {
		t.Errorf("expected 8 bytes, got %d", n)
	}
}

func TestCachedSourceMinimumCapacity(t *testing.T) {
	cache := NewCachedSource(newSliceSource(patternBytes(64)), 1)
	if cache.Capacity() != minCacheSize {
		t.Errorf("expected capacity %d, got %d", minCacheSize, cache.Capacity())
	}
	if NewCachedSource(newSliceSource(nil), 0).Capacity() != DefaultCacheSize {
		t.Errorf("expected default capacity")
	}
}

func TestFuncSourceClampsRequests(t *testing.T) {
	data := patternBytes(10)
	var requested []int
	src := NewFuncSource(10, func(dst []byte, offset uint32) int {
		requested = append(requested, len(dst))
		return copy(dst, data[offset:])
	})

	buf := make([]byte, 8)
	if n := src.ReadAt(buf, 6); n != 4 {
		t.Errorf("expected 4 bytes, got %d", n)
	}
	if n := src.ReadAt(buf, 10); n != 0 {
		t.Errorf("expected 0 bytes at the end, got %d", n)
	}
	if len(requested) != 1 || requested[0] != 4 {
		t.Errorf("expected one clamped request of 4 bytes, got %v", requested)
	}

	failing := NewFuncSource(10, func(dst []byte, offset uint32) int { return 0 })
	if n := failing.ReadAt(buf, 0); n != 0 {
		t.Errorf("expected failed fetch to read 0 bytes, got %d", n)
	}
}
