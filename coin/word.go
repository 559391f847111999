// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coin

import (
	"github.com/bitmark-inc/localnode/hexutil"
)

// Word - an unsigned 64 bit value such as an amount or output index
// represented as full width canonical hex text for JSON encoding
type Word uint64

// String - canonical hex text for use by the fmt package (for %s)
func (word Word) String() string {
	return hexutil.EncodeWord(uint64(word))
}

// MarshalText - convert a word to full width canonical hex text
func (word Word) MarshalText() ([]byte, error) {
	return []byte(hexutil.EncodeWord(uint64(word))), nil
}

// UnmarshalText - convert hex text into a word
//
// compact values like "0x01" are accepted and zero padded
func (word *Word) UnmarshalText(s []byte) error {
	value, err := hexutil.DecodeWord(string(s))
	if nil != err {
		return err
	}
	*word = Word(value)
	return nil
}

// BlockHeight - position of a block in the chain
// represented the same way as a word for JSON encoding
type BlockHeight uint64

// String - canonical hex text for use by the fmt package (for %s)
func (height BlockHeight) String() string {
	return hexutil.EncodeWord(uint64(height))
}

// MarshalText - convert a block height to full width canonical hex text
func (height BlockHeight) MarshalText() ([]byte, error) {
	return []byte(hexutil.EncodeWord(uint64(height))), nil
}

// UnmarshalText - convert hex text into a block height
func (height *BlockHeight) UnmarshalText(s []byte) error {
	value, err := hexutil.DecodeWord(string(s))
	if nil != err {
		return err
	}
	*height = BlockHeight(value)
	return nil
}
