// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/localnode/chainconfig"
	"github.com/bitmark-inc/localnode/coin"
	"github.com/bitmark-inc/localnode/fault"
	"github.com/bitmark-inc/localnode/node"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file

	defaultIP             = "127.0.0.1"
	defaultPort           = 4000
	defaultHealthAttempts = 5

	defaultLogDirectory = "log"
	defaultLogFile      = "localnode.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// CoinSettings - one initial coin as written in the configuration
// file
//
// all values are canonical hex text; the optional ones are simply
// left out of the file when not wanted
type CoinSettings struct {
	TxID         string `gluamapper:"tx_id" json:"tx_id"`
	OutputIndex  string `gluamapper:"output_index" json:"output_index"`
	BlockCreated string `gluamapper:"block_created" json:"block_created"`
	Maturity     string `gluamapper:"maturity" json:"maturity"`
	Owner        string `gluamapper:"owner" json:"owner"`
	Amount       string `gluamapper:"amount" json:"amount"`
	AssetID      string `gluamapper:"asset_id" json:"asset_id"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	Node          node.Configuration   `gluamapper:"node" json:"node"`
	Coins         []CoinSettings       `gluamapper:"coins" json:"coins"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read and verify the configuration file
func GetConfiguration(fileName string) (*Configuration, error) {

	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Node: node.Configuration{
			IP:             defaultIP,
			Port:           defaultPort,
			HealthAttempts: defaultHealthAttempts,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := ParseConfigurationFile(fileName, options); nil != err {
		return nil, err
	}

	if "" == options.Node.Command {
		return nil, fault.ErrRequiredNodeCommand
	}

	return options, nil
}

// Entries - convert the configured coins to assembler entries
//
// conversion goes through the canonical decode path so any mistake in
// the file surfaces as the usual fault, named with the coin index and
// field
func (configuration *Configuration) Entries() ([]chainconfig.Entry, error) {
	entries := make([]chainconfig.Entry, len(configuration.Coins))
	for i, settings := range configuration.Coins {
		entry, err := settings.Entry()
		if nil != err {
			return nil, fmt.Errorf("coin %d: %w", i, err)
		}
		entries[i] = entry
	}
	return entries, nil
}

// Entry - convert one coin description to an assembler entry
func (settings *CoinSettings) Entry() (chainconfig.Entry, error) {
	entry := chainconfig.Entry{}

	if err := entry.Coin.Owner.UnmarshalText([]byte(settings.Owner)); nil != err {
		return entry, fmt.Errorf("owner: %w", err)
	}
	if err := entry.Coin.Amount.UnmarshalText([]byte(settings.Amount)); nil != err {
		return entry, fmt.Errorf("amount: %w", err)
	}
	if err := entry.Coin.AssetID.UnmarshalText([]byte(settings.AssetID)); nil != err {
		return entry, fmt.Errorf("asset_id: %w", err)
	}

	if "" != settings.TxID {
		utxo := &coin.UtxoID{}
		if err := utxo.TxID.UnmarshalText([]byte(settings.TxID)); nil != err {
			return entry, fmt.Errorf("tx_id: %w", err)
		}
		if "" != settings.OutputIndex {
			if err := utxo.OutputIndex.UnmarshalText([]byte(settings.OutputIndex)); nil != err {
				return entry, fmt.Errorf("output_index: %w", err)
			}
		}
		entry.UtxoID = utxo
	}

	if "" != settings.BlockCreated {
		height := new(coin.BlockHeight)
		if err := height.UnmarshalText([]byte(settings.BlockCreated)); nil != err {
			return entry, fmt.Errorf("block_created: %w", err)
		}
		entry.Coin.BlockCreated = height
	}

	if "" != settings.Maturity {
		height := new(coin.BlockHeight)
		if err := height.UnmarshalText([]byte(settings.Maturity)); nil != err {
			return entry, fmt.Errorf("maturity: %w", err)
		}
		entry.Coin.Maturity = height
	}

	return entry, nil
}
