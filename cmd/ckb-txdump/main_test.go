// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pk910/ckb-txdump/mocktx"
)

var simpleMock = filepath.Join("..", "..", "mocktx", "testdata", "simple.json")

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run(append([]string{"ckb-txdump"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestDumpCommand(t *testing.T) {
	stdout, stderr, err := runApp(t, "dump", "--mock", simpleMock, "--mode", "len")
	require.NoError(t, err)
	require.Contains(t, stdout, "----------------------begin----------------------")
	require.Contains(t, stdout, "Transaction version--0\n")
	require.Contains(t, stdout, "InputGroup cell data[1]--size is: 3\n")
	require.Contains(t, stderr, "running script group")
	require.NotContains(t, stderr, "transaction cache")
}

func TestDumpCommandByScriptHash(t *testing.T) {
	mock, err := mocktx.Load(simpleMock)
	require.NoError(t, err)
	groups, err := mock.ScriptGroups()
	require.NoError(t, err)

	hash := fmt.Sprintf("0x%x", groups[1].Hash)
	stdout, stderr, err := runApp(t, "dump", "--mock", simpleMock, "--script-hash", hash, "--deps", "--verbose")
	require.NoError(t, err)
	require.Contains(t, stdout, "OutputGroup cell data[0]--size is: 5\n")
	require.Contains(t, stdout, "Deps cell data[0]--size is: 12\n")
	require.Contains(t, stderr, "transaction cache")
}

func TestDumpCommandWithConfig(t *testing.T) {
	config := filepath.Join(t.TempDir(), "txdump.yaml")
	require.NoError(t, os.WriteFile(config, []byte("print_mode: data\nmax_items: 1\n"), 0o644))

	stdout, _, err := runApp(t, "dump", "-m", simpleMock, "-c", config)
	require.NoError(t, err)
	require.Contains(t, stdout, "Input cell data[0]--size is: 0\n")
	require.NotContains(t, stdout, "Input cell data[1]")
	require.Contains(t, stdout, "OutputsData[0]--size is: 5\n01 02 03 04 05 \n")
}

func TestDumpCommandErrors(t *testing.T) {
	_, _, err := runApp(t, "dump", "--mock", simpleMock, "--group", "9")
	require.Error(t, err)

	_, _, err = runApp(t, "dump", "--mock", simpleMock, "--mode", "bytes")
	require.Error(t, err)

	_, _, err = runApp(t, "dump", "--mock", simpleMock, "--script-hash", "0x1234")
	require.Error(t, err)

	_, _, err = runApp(t, "dump", "--mock", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestGroupsCommand(t *testing.T) {
	stdout, _, err := runApp(t, "groups", "--mock", simpleMock)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "0: lock 0x"))
	require.True(t, strings.HasSuffix(lines[1], "inputs=[1] outputs=[0]"))
}

func TestConvertCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "simple.yaml.snappy")
	_, _, err := runApp(t, "convert", "--in", simpleMock, "--out", out)
	require.NoError(t, err)

	original, err := mocktx.Load(simpleMock)
	require.NoError(t, err)
	converted, err := mocktx.Load(out)
	require.NoError(t, err)
	require.Equal(t, original, converted)
}

func TestConvertCommandWithBinDir(t *testing.T) {
	bins := filepath.Join("..", "..", "mocktx", "testdata")
	out := filepath.Join(t.TempDir(), "simple.json")
	_, stderr, err := runApp(t, "convert", "--in", simpleMock, "--out", out, "--bin-dir", bins)
	require.NoError(t, err)
	require.Contains(t, stderr, "referenced cell dep binaries")

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(raw), "always_success.bin }}")

	original, err := mocktx.Load(simpleMock)
	require.NoError(t, err)
	converted, err := mocktx.Load(out)
	require.NoError(t, err)
	require.Equal(t, original, converted)

	_, _, err = runApp(t, "convert", "--in", simpleMock, "--out", out, "--bin-dir", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
