// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

// Package mocktx reads and writes mock transactions (the ckb-debugger mock
// format) and serves them through host.Syscalls, so a dump can run outside a
// script VM.
package mocktx

// MockTransaction is a transaction together with the resolved cells it
// references.
type MockTransaction struct {
	MockInfo MockInfo    `json:"mock_info" yaml:"mock_info"`
	Tx       Transaction `json:"tx" yaml:"tx"`
}

type MockInfo struct {
	Inputs     []MockInput   `json:"inputs" yaml:"inputs"`
	CellDeps   []MockCellDep `json:"cell_deps" yaml:"cell_deps"`
	HeaderDeps []Header      `json:"header_deps" yaml:"header_deps"`
	Extensions []Extension   `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

type MockInput struct {
	Input  CellInput  `json:"input" yaml:"input"`
	Output CellOutput `json:"output" yaml:"output"`
	Data   HexBytes   `json:"data" yaml:"data"`
	Header *HexBytes  `json:"header" yaml:"header"`
}

type MockCellDep struct {
	CellDep CellDep    `json:"cell_dep" yaml:"cell_dep"`
	Output  CellOutput `json:"output" yaml:"output"`
	Data    CellData   `json:"data" yaml:"data"`
	Header  *HexBytes  `json:"header" yaml:"header"`
}

// Header is a header dep as a block header view.
type Header struct {
	CompactTarget    HexUint32 `json:"compact_target" yaml:"compact_target"`
	Dao              HexBytes  `json:"dao" yaml:"dao"`
	Epoch            HexUint64 `json:"epoch" yaml:"epoch"`
	ExtraHash        HexBytes  `json:"extra_hash" yaml:"extra_hash"`
	Hash             HexBytes  `json:"hash" yaml:"hash"`
	Nonce            HexNumber `json:"nonce" yaml:"nonce"`
	Number           HexUint64 `json:"number" yaml:"number"`
	ParentHash       HexBytes  `json:"parent_hash" yaml:"parent_hash"`
	ProposalsHash    HexBytes  `json:"proposals_hash" yaml:"proposals_hash"`
	Timestamp        HexUint64 `json:"timestamp" yaml:"timestamp"`
	TransactionsRoot HexBytes  `json:"transactions_root" yaml:"transactions_root"`
	Version          HexUint32 `json:"version" yaml:"version"`
}

type Transaction struct {
	Version     HexUint32    `json:"version" yaml:"version"`
	CellDeps    []CellDep    `json:"cell_deps" yaml:"cell_deps"`
	HeaderDeps  []HexBytes   `json:"header_deps" yaml:"header_deps"`
	Inputs      []CellInput  `json:"inputs" yaml:"inputs"`
	Outputs     []CellOutput `json:"outputs" yaml:"outputs"`
	OutputsData []HexBytes   `json:"outputs_data" yaml:"outputs_data"`
	Witnesses   []HexBytes   `json:"witnesses" yaml:"witnesses"`
}

type OutPoint struct {
	TxHash HexBytes  `json:"tx_hash" yaml:"tx_hash"`
	Index  HexUint32 `json:"index" yaml:"index"`
}

type CellDep struct {
	OutPoint OutPoint `json:"out_point" yaml:"out_point"`
	DepType  string   `json:"dep_type" yaml:"dep_type"`
}

type CellInput struct {
	Since          HexUint64 `json:"since" yaml:"since"`
	PreviousOutput OutPoint  `json:"previous_output" yaml:"previous_output"`
}

type CellOutput struct {
	Capacity HexUint64 `json:"capacity" yaml:"capacity"`
	Lock     Script    `json:"lock" yaml:"lock"`
	Type     *Script   `json:"type" yaml:"type"`
}

type Script struct {
	CodeHash HexBytes `json:"code_hash" yaml:"code_hash"`
	HashType string   `json:"hash_type" yaml:"hash_type"`
	Args     HexBytes `json:"args" yaml:"args"`
}
