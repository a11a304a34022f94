// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package txdump

import (
	"fmt"
	"io"
	"strings"

	"github.com/pk910/ckb-txdump/buffer"
	"github.com/pk910/ckb-txdump/hasher"
	"github.com/pk910/ckb-txdump/molutils"
)

// PrintMode selects how byte ranges are rendered.
type PrintMode uint8

const (
	// PrintLen prints only the size.
	PrintLen PrintMode = iota
	// PrintHash prints the size and the blake2b-256 digest of the content.
	PrintHash
	// PrintData prints the size and a hex dump, 32 bytes per line.
	PrintData
)

const dataLineWidth = 32

func (m PrintMode) String() string {
	switch m {
	case PrintLen:
		return "len"
	case PrintHash:
		return "hash"
	case PrintData:
		return "data"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

func ParsePrintMode(name string) (PrintMode, error) {
	switch strings.ToLower(name) {
	case "len":
		return PrintLen, nil
	case "hash", "":
		return PrintHash, nil
	case "data":
		return PrintData, nil
	default:
		return 0, fmt.Errorf("unknown print mode %q", name)
	}
}

// Formatter renders labeled values and byte ranges as text. Byte ranges are
// streamed page by page through a scratch buffer, so payloads of any size
// are printed with bounded memory.
//
// The first write error is kept and returned by Err; later output is
// dropped.
type Formatter struct {
	w       io.Writer
	mode    PrintMode
	scratch []byte
	err     error
}

func NewFormatter(w io.Writer, mode PrintMode, scratch []byte) *Formatter {
	if len(scratch) == 0 {
		scratch = make([]byte, DefaultScratchSize)
	}
	return &Formatter{
		w:       w,
		mode:    mode,
		scratch: scratch,
	}
}

func (f *Formatter) Err() error {
	return f.err
}

func (f *Formatter) printf(format string, args ...any) {
	if f.err != nil {
		return
	}
	_, f.err = fmt.Fprintf(f.w, format, args...)
}

// Line writes raw text.
func (f *Formatter) Line(text string) {
	f.printf("%s", text)
}

// Value prints a scalar.
func (f *Formatter) Value(label string, value any) {
	f.printf("%s--%v\n", label, value)
}

// Failure reports a field that could not be loaded.
func (f *Formatter) Failure(label string, err error) {
	f.printf("%s--failed: %v\n", label, err)
}

// Byte32 prints a 32 byte value as hex, whatever the print mode.
func (f *Formatter) Byte32(label string, value [32]byte) {
	f.printf("%s--size is: %d\n%X\n", label, len(value), value[:])
}

// Bytes prints an in-memory byte range.
func (f *Formatter) Bytes(label string, data []byte) {
	f.Source(label, buffer.NewBufferSource(data))
}

// Source prints the whole content of src in the current print mode.
func (f *Formatter) Source(label string, src molutils.DataSource) {
	size := src.TotalSize()
	f.printf("%s--size is: %d\n", label, size)

	switch f.mode {
	case PrintHash:
		h := hasher.PlainHasherPool.Get()
		defer hasher.PlainHasherPool.Put(h)
		if n := h.WriteSource(src, f.scratch); n < size {
			f.printf("short read: %d of %d bytes\n", n, size)
			return
		}
		sum := h.Sum()
		f.printf("%X\n", sum[:])
	case PrintData:
		f.hexDump(src, size)
	}
}

func (f *Formatter) hexDump(src molutils.DataSource, size uint32) {
	var sb strings.Builder
	var offset uint32
	for offset < size && f.err == nil {
		n := src.ReadAt(f.scratch, offset)
		if n <= 0 {
			break
		}
		sb.Reset()
		for i, b := range f.scratch[:n] {
			fmt.Fprintf(&sb, "%02X ", b)
			if (offset+uint32(i))%dataLineWidth == dataLineWidth-1 {
				sb.WriteByte('\n')
			}
		}
		f.printf("%s", sb.String())
		offset += uint32(n)
	}
	if offset%dataLineWidth != 0 || offset == 0 {
		f.printf("\n")
	}
	if offset < size {
		f.printf("short read: %d of %d bytes\n", offset, size)
	}
}
