// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainconfig

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/localnode/coin"
	"github.com/bitmark-inc/localnode/fault"
)

// CoinConfig - one rendered coin record
//
// optional fields are pointers and are left out of the document
// entirely when nil; the node treats an absent field and a zero field
// differently so a null key must never be emitted
type CoinConfig struct {
	TxID         *coin.TxID        `json:"tx_id,omitempty"`
	OutputIndex  *coin.Word        `json:"output_index,omitempty"`
	BlockCreated *coin.BlockHeight `json:"block_created,omitempty"`
	Maturity     *coin.BlockHeight `json:"maturity,omitempty"`
	Owner        coin.Address      `json:"owner"`
	Amount       coin.Word         `json:"amount"`
	AssetID      coin.AssetID      `json:"asset_id"`
}

// shadow record for decoding so that every field conversion can be
// attributed by name
type rawCoinConfig struct {
	TxID         *string `json:"tx_id"`
	OutputIndex  *string `json:"output_index"`
	BlockCreated *string `json:"block_created"`
	Maturity     *string `json:"maturity"`
	Owner        *string `json:"owner"`
	Amount       *string `json:"amount"`
	AssetID      *string `json:"asset_id"`
}

// UnmarshalJSON - decode one coin record
//
// either the whole record decodes or the call fails naming the field
// and carrying the fault instance; there is no partial result
func (config *CoinConfig) UnmarshalJSON(data []byte) error {
	raw := rawCoinConfig{}
	if err := json.Unmarshal(data, &raw); nil != err {
		return err
	}

	if nil != raw.TxID {
		txId := new(coin.TxID)
		if err := txId.UnmarshalText([]byte(*raw.TxID)); nil != err {
			return fmt.Errorf("tx_id: %w", err)
		}
		config.TxID = txId
	}

	if nil != raw.OutputIndex {
		outputIndex := new(coin.Word)
		if err := outputIndex.UnmarshalText([]byte(*raw.OutputIndex)); nil != err {
			return fmt.Errorf("output_index: %w", err)
		}
		config.OutputIndex = outputIndex
	}

	if nil != raw.BlockCreated {
		height := new(coin.BlockHeight)
		if err := height.UnmarshalText([]byte(*raw.BlockCreated)); nil != err {
			return fmt.Errorf("block_created: %w", err)
		}
		config.BlockCreated = height
	}

	if nil != raw.Maturity {
		height := new(coin.BlockHeight)
		if err := height.UnmarshalText([]byte(*raw.Maturity)); nil != err {
			return fmt.Errorf("maturity: %w", err)
		}
		config.Maturity = height
	}

	if nil == raw.Owner {
		return fmt.Errorf("owner: %w", fault.ErrMissingRequiredField)
	}
	if err := config.Owner.UnmarshalText([]byte(*raw.Owner)); nil != err {
		return fmt.Errorf("owner: %w", err)
	}

	if nil == raw.Amount {
		return fmt.Errorf("amount: %w", fault.ErrMissingRequiredField)
	}
	if err := config.Amount.UnmarshalText([]byte(*raw.Amount)); nil != err {
		return fmt.Errorf("amount: %w", err)
	}

	if nil == raw.AssetID {
		return fmt.Errorf("asset_id: %w", fault.ErrMissingRequiredField)
	}
	if err := config.AssetID.UnmarshalText([]byte(*raw.AssetID)); nil != err {
		return fmt.Errorf("asset_id: %w", err)
	}

	return nil
}
