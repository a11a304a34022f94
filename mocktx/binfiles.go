// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package mocktx

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// dataSizeSlack is how much larger than a binary file the cell data may be
// and still be considered built from it.
const dataSizeSlack = 1.1

type binFile struct {
	path string
	size int
}

// ReplaceDataWithFiles points cell dep data at the regular files of dir, so
// a saved mock references the binaries instead of inlining them. Empty files
// are ignored. A file fits a cell dep when the data is at least as long as the file and
// at most 10% longer. A file holding exactly the data is preferred over the
// first fitting file in name order. Placeholder paths are written relative to
// baseDir where possible. It returns the number of cell deps replaced.
func ReplaceDataWithFiles(mock *MockTransaction, dir string, baseDir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	files := make([]binFile, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return 0, err
		}
		if info.Size() == 0 {
			continue
		}
		path := placeholderPath(filepath.Join(dir, entry.Name()), baseDir)
		if strings.ContainsAny(path, " \t\r\n}") {
			continue
		}
		files = append(files, binFile{path: filepath.Join(dir, entry.Name()), size: int(info.Size())})
	}

	replaced := 0
	for i := range mock.MockInfo.CellDeps {
		data := &mock.MockInfo.CellDeps[i].Data
		match, err := matchBinFile(files, data.HexBytes)
		if err != nil {
			return replaced, err
		}
		if match == "" {
			continue
		}
		data.File = placeholderPath(match, baseDir)
		replaced++
	}
	return replaced, nil
}

func fitsBinFile(dataLen int, fileSize int) bool {
	return dataLen >= fileSize && float64(dataLen) <= float64(fileSize)*dataSizeSlack
}

func matchBinFile(files []binFile, data []byte) (string, error) {
	first := ""
	for _, file := range files {
		if !fitsBinFile(len(data), file.size) {
			continue
		}
		if len(data) == file.size {
			content, err := os.ReadFile(file.path)
			if err != nil {
				return "", fmt.Errorf("read %s: %w", file.path, err)
			}
			if bytes.Equal(content, data) {
				return file.path, nil
			}
		}
		if first == "" {
			first = file.path
		}
	}
	return first, nil
}

func placeholderPath(path string, baseDir string) string {
	if baseDir != "" {
		if rel, err := filepath.Rel(baseDir, path); err == nil {
			return rel
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
