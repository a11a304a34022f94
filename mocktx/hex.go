// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package mocktx

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// HexBytes is a byte string encoded as "0x" prefixed hex.
type HexBytes []byte

func (b HexBytes) String() string {
	return "0x" + hex.EncodeToString(b)
}

func (b HexBytes) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *HexBytes) UnmarshalText(text []byte) error {
	s := string(text)
	if !strings.HasPrefix(s, "0x") {
		return fmt.Errorf("hex string %q lacks 0x prefix", s)
	}
	data, err := hex.DecodeString(s[2:])
	if err != nil {
		return fmt.Errorf("invalid hex string %q: %w", s, err)
	}
	*b = data
	return nil
}

func (b HexBytes) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

func (b *HexBytes) UnmarshalYAML(value *yaml.Node) error {
	return b.UnmarshalText([]byte(value.Value))
}

// Hash32 returns the value as a 32 byte hash.
func (b HexBytes) Hash32() ([32]byte, error) {
	var h [32]byte
	if len(b) != len(h) {
		return h, fmt.Errorf("expected a 32 byte hash, got %d bytes", len(b))
	}
	copy(h[:], b)
	return h, nil
}

// HexUint64 is a number encoded as "0x" prefixed hex.
type HexUint64 uint64

func (n HexUint64) MarshalText() ([]byte, error) {
	return []byte("0x" + strconv.FormatUint(uint64(n), 16)), nil
}

func (n *HexUint64) UnmarshalText(text []byte) error {
	v, err := parseHexUint(string(text), 64)
	if err != nil {
		return err
	}
	*n = HexUint64(v)
	return nil
}

func (n HexUint64) MarshalYAML() (interface{}, error) {
	text, _ := n.MarshalText()
	return string(text), nil
}

func (n *HexUint64) UnmarshalYAML(value *yaml.Node) error {
	return n.UnmarshalText([]byte(value.Value))
}

// HexUint32 is a 32 bit number encoded as "0x" prefixed hex.
type HexUint32 uint32

func (n HexUint32) MarshalText() ([]byte, error) {
	return []byte("0x" + strconv.FormatUint(uint64(n), 16)), nil
}

func (n *HexUint32) UnmarshalText(text []byte) error {
	v, err := parseHexUint(string(text), 32)
	if err != nil {
		return err
	}
	*n = HexUint32(v)
	return nil
}

func (n HexUint32) MarshalYAML() (interface{}, error) {
	text, _ := n.MarshalText()
	return string(text), nil
}

func (n *HexUint32) UnmarshalYAML(value *yaml.Node) error {
	return n.UnmarshalText([]byte(value.Value))
}

func parseHexUint(s string, bits int) (uint64, error) {
	if !strings.HasPrefix(s, "0x") {
		return 0, fmt.Errorf("hex number %q lacks 0x prefix", s)
	}
	v, err := strconv.ParseUint(s[2:], 16, bits)
	if err != nil {
		return 0, fmt.Errorf("invalid hex number %q: %w", s, err)
	}
	return v, nil
}

// HexNumber is a "0x" prefixed hex number of arbitrary width, such as a
// 128 bit header nonce. The text is kept as written.
type HexNumber string

func (n HexNumber) MarshalText() ([]byte, error) {
	if n == "" {
		return []byte("0x0"), nil
	}
	return []byte(n), nil
}

func (n *HexNumber) UnmarshalText(text []byte) error {
	s := string(text)
	if !strings.HasPrefix(s, "0x") || len(s) == 2 {
		return fmt.Errorf("hex number %q lacks 0x prefix or digits", s)
	}
	for _, c := range s[2:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return fmt.Errorf("invalid hex number %q", s)
		}
	}
	*n = HexNumber(s)
	return nil
}

func (n HexNumber) MarshalYAML() (interface{}, error) {
	text, _ := n.MarshalText()
	return string(text), nil
}

func (n *HexNumber) UnmarshalYAML(value *yaml.Node) error {
	return n.UnmarshalText([]byte(value.Value))
}

// CellData is cell data that is written as a data placeholder referencing
// File instead of inline hex when File is set.
type CellData struct {
	HexBytes
	File string
}

func (d CellData) MarshalText() ([]byte, error) {
	if d.File != "" {
		return []byte("0x{{ data " + d.File + " }}"), nil
	}
	return d.HexBytes.MarshalText()
}

func (d *CellData) UnmarshalText(text []byte) error {
	d.File = ""
	return d.HexBytes.UnmarshalText(text)
}

func (d CellData) MarshalYAML() (interface{}, error) {
	text, err := d.MarshalText()
	return string(text), err
}

func (d *CellData) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Extension is a mock info extension entry, encoded as a [hash, data] pair.
type Extension struct {
	Hash HexBytes
	Data HexBytes
}

func (e Extension) MarshalJSON() ([]byte, error) {
	return json.Marshal([]HexBytes{e.Hash, e.Data})
}

func (e *Extension) UnmarshalJSON(raw []byte) error {
	var pair []HexBytes
	if err := json.Unmarshal(raw, &pair); err != nil {
		return err
	}
	return e.fromPair(pair)
}

func (e Extension) MarshalYAML() (interface{}, error) {
	return []HexBytes{e.Hash, e.Data}, nil
}

func (e *Extension) UnmarshalYAML(value *yaml.Node) error {
	var pair []HexBytes
	if err := value.Decode(&pair); err != nil {
		return err
	}
	return e.fromPair(pair)
}

func (e *Extension) fromPair(pair []HexBytes) error {
	if len(pair) != 2 {
		return fmt.Errorf("extension needs a [hash, data] pair, got %d items", len(pair))
	}
	e.Hash, e.Data = pair[0], pair[1]
	return nil
}
