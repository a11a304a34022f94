// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package mocktx

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/golang/snappy"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// Format is the text encoding of a mock transaction file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

const snappySuffix = ".snappy"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// dataTemplate matches "0x{{ data <path> }}" placeholders, which reference a
// binary file holding the cell data.
var dataTemplate = regexp.MustCompile(`0x\{\{\s*data\s+([^\s}]+)\s*\}\}`)

// FormatFromPath picks the format by file extension, ignoring a trailing
// ".snappy".
func FormatFromPath(path string) Format {
	path = strings.TrimSuffix(path, snappySuffix)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads a mock transaction file. Files ending in ".snappy" are snappy
// compressed; data placeholders are resolved relative to the file.
func Load(path string) (*MockTransaction, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, snappySuffix) {
		if raw, err = snappy.Decode(nil, raw); err != nil {
			return nil, fmt.Errorf("decompress %s: %w", path, err)
		}
	}

	mock, err := Parse(raw, FormatFromPath(path), filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return mock, nil
}

// Parse decodes a mock transaction. baseDir resolves data placeholders.
func Parse(raw []byte, format Format, baseDir string) (*MockTransaction, error) {
	expanded, err := expandDataTemplates(raw, baseDir)
	if err != nil {
		return nil, err
	}

	mock := &MockTransaction{}
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(expanded, mock)
	default:
		err = json.Unmarshal(expanded, mock)
	}
	if err != nil {
		return nil, err
	}
	return mock, nil
}

// Marshal encodes a mock transaction.
func Marshal(mock *MockTransaction, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(mock)
	default:
		return json.MarshalIndent(mock, "", "  ")
	}
}

// Save writes a mock transaction in the format implied by path.
func Save(path string, mock *MockTransaction) error {
	out, err := Marshal(mock, FormatFromPath(path))
	if err != nil {
		return err
	}
	if strings.HasSuffix(path, snappySuffix) {
		out = snappy.Encode(nil, out)
	}
	return os.WriteFile(path, out, 0o644)
}

func expandDataTemplates(raw []byte, baseDir string) ([]byte, error) {
	var loadErr error
	expanded := dataTemplate.ReplaceAllFunc(raw, func(match []byte) []byte {
		if loadErr != nil {
			return match
		}
		path := string(dataTemplate.FindSubmatch(match)[1])
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("data placeholder: %w", err)
			return match
		}
		return []byte("0x" + hex.EncodeToString(data))
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return expanded, nil
}
