// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainconfig

// default transaction parameters
// these mirror the node's own built in values and must stay byte
// identical to them, the node compares some of these against the
// documents it loads
const (
	defaultContractMaxSize        = 16 * 1024 * 1024
	defaultMaxInputs              = 255
	defaultMaxOutputs             = 255
	defaultMaxWitnesses           = 255
	defaultMaxGasPerTx            = 100000000
	defaultMaxScriptLength        = 1024 * 1024
	defaultMaxScriptDataLength    = 1024 * 1024
	defaultMaxStorageSlots        = 255
	defaultMaxPredicateLength     = 1024 * 1024
	defaultMaxPredicateDataLength = 1024 * 1024
	defaultGasPriceFactor         = 1000000000
	defaultGasPerByte             = 4
)

// ChainParameters - protocol level tuning values
//
// these are not converted to hex text, they pass straight through to
// the document as plain JSON numbers and the node applies them as is
type ChainParameters struct {
	ContractMaxSize        uint64 `json:"contract_max_size"`
	MaxInputs              uint64 `json:"max_inputs"`
	MaxOutputs             uint64 `json:"max_outputs"`
	MaxWitnesses           uint64 `json:"max_witnesses"`
	MaxGasPerTx            uint64 `json:"max_gas_per_tx"`
	MaxScriptLength        uint64 `json:"max_script_length"`
	MaxScriptDataLength    uint64 `json:"max_script_data_length"`
	MaxStorageSlots        uint64 `json:"max_storage_slots"`
	MaxPredicateLength     uint64 `json:"max_predicate_length"`
	MaxPredicateDataLength uint64 `json:"max_predicate_data_length"`
	GasPriceFactor         uint64 `json:"gas_price_factor"`
	GasPerByte             uint64 `json:"gas_per_byte"`
}

// DefaultChainParameters - the parameter set used when the caller
// supplies none
func DefaultChainParameters() *ChainParameters {
	return &ChainParameters{
		ContractMaxSize:        defaultContractMaxSize,
		MaxInputs:              defaultMaxInputs,
		MaxOutputs:             defaultMaxOutputs,
		MaxWitnesses:           defaultMaxWitnesses,
		MaxGasPerTx:            defaultMaxGasPerTx,
		MaxScriptLength:        defaultMaxScriptLength,
		MaxScriptDataLength:    defaultMaxScriptDataLength,
		MaxStorageSlots:        defaultMaxStorageSlots,
		MaxPredicateLength:     defaultMaxPredicateLength,
		MaxPredicateDataLength: defaultMaxPredicateDataLength,
		GasPriceFactor:         defaultGasPriceFactor,
		GasPerByte:             defaultGasPerByte,
	}
}
