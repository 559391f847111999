// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainconfig

import (
	"encoding/json"

	"github.com/bitmark-inc/localnode/coin"
)

// fixed document values
// the node rejects documents whose shape differs from this
const (
	ChainName         = "local_testnet"
	BlockProduction   = "Instant"
	ParentNetworkType = "LocalTest"
)

// ParentNetwork - descriptor of the network this chain anchors to
type ParentNetwork struct {
	Type string `json:"type"`
}

// InitialState - the genesis state block of the document
type InitialState struct {
	Coins []CoinConfig `json:"coins"`
}

// ChainConfig - the whole assembled document
//
// the five top level keys are fixed, nothing else is ever present
type ChainConfig struct {
	ChainName             string          `json:"chain_name"`
	BlockProduction       string          `json:"block_production"`
	ParentNetwork         ParentNetwork   `json:"parent_network"`
	InitialState          InitialState    `json:"initial_state"`
	TransactionParameters ChainParameters `json:"transaction_parameters"`
}

// Entry - one coin together with its optional utxo reference
//
// a nil UtxoID leaves tx_id and output_index out of the rendered
// record
type Entry struct {
	UtxoID *coin.UtxoID
	Coin   coin.Coin
}

// New - assemble the canonical document from an ordered list of coins
//
// output coin order matches input order exactly; a nil parameter set
// selects the defaults; assembly cannot fail
func New(entries []Entry, parameters *ChainParameters) *ChainConfig {
	coins := make([]CoinConfig, len(entries))
	for i, entry := range entries {
		coins[i] = renderCoin(entry)
	}

	if nil == parameters {
		parameters = DefaultChainParameters()
	}

	return &ChainConfig{
		ChainName:       ChainName,
		BlockProduction: BlockProduction,
		ParentNetwork: ParentNetwork{
			Type: ParentNetworkType,
		},
		InitialState: InitialState{
			Coins: coins,
		},
		TransactionParameters: *parameters,
	}
}

// produce one rendered record, copying values so the document is
// independent of the caller's data
func renderCoin(entry Entry) CoinConfig {
	config := CoinConfig{
		Owner:   entry.Coin.Owner,
		Amount:  entry.Coin.Amount,
		AssetID: entry.Coin.AssetID,
	}

	if utxo := entry.UtxoID; nil != utxo {
		txId := utxo.TxID
		config.TxID = &txId
		outputIndex := utxo.OutputIndex
		config.OutputIndex = &outputIndex
	}

	if height := entry.Coin.BlockCreated; nil != height {
		blockCreated := *height
		config.BlockCreated = &blockCreated
	}

	if height := entry.Coin.Maturity; nil != height {
		maturity := *height
		config.Maturity = &maturity
	}

	return config
}

// JSON - serialise the document
//
// equal documents always serialise to byte identical text, field
// order is the fixed struct order
func (config *ChainConfig) JSON() ([]byte, error) {
	return json.Marshal(config)
}

// FromJSON - parse a document back into typed records
//
// absent transaction parameters keep their default values; any codec
// failure in a coin record aborts the whole parse
func FromJSON(data []byte) (*ChainConfig, error) {
	config := &ChainConfig{
		TransactionParameters: *DefaultChainParameters(),
	}
	if err := json.Unmarshal(data, config); nil != err {
		return nil, err
	}
	return config, nil
}
