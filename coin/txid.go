// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coin

import (
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/localnode/fault"
	"github.com/bitmark-inc/localnode/hexutil"
)

// TxIDLength - number of bytes in a transaction identifier
const TxIDLength = 32

// TxID - the type for a transaction identifier
// stored as a big endian byte array
// represented as canonical hex text for JSON encoding
type TxID [TxIDLength]byte

// NewTxID - derive a transaction id from packed transaction bytes
//
// SHA3-256 Hash
func NewTxID(record []byte) TxID {
	return TxID(sha3.Sum256(record))
}

// String - convert a binary tx id to canonical hex text for use by the fmt package (for %s)
func (txId TxID) String() string {
	return hexutil.EncodeBytes(txId[:])
}

// GoString - convert a binary tx id to canonical hex text for use by the fmt package (for %#v)
func (txId TxID) GoString() string {
	return "<txid:" + hexutil.EncodeBytes(txId[:]) + ">"
}

// MarshalText - convert a tx id to canonical hex text
func (txId TxID) MarshalText() ([]byte, error) {
	return []byte(hexutil.EncodeBytes(txId[:])), nil
}

// UnmarshalText - convert hex text into a tx id
func (txId *TxID) UnmarshalText(s []byte) error {
	return hexutil.DecodeBytesInto(txId[:], string(s))
}

// TxIDFromBytes - convert and validate a binary byte slice to a tx id
func TxIDFromBytes(txId *TxID, buffer []byte) error {
	if TxIDLength != len(buffer) {
		return fault.ErrByteLengthMismatch
	}
	copy(txId[:], buffer)
	return nil
}
