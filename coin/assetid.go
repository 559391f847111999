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

// AssetIDLength - number of bytes in an asset identifier
const AssetIDLength = 32

// AssetID - the type for an asset identifier
// stored as a big endian byte array
// represented as canonical hex text for JSON encoding
type AssetID [AssetIDLength]byte

// NewAssetID - derive an asset id from an arbitrary record
//
// SHA3-256 Hash
func NewAssetID(record []byte) AssetID {
	return AssetID(sha3.Sum256(record))
}

// String - convert a binary asset id to canonical hex text for use by the fmt package (for %s)
func (assetId AssetID) String() string {
	return hexutil.EncodeBytes(assetId[:])
}

// GoString - convert a binary asset id to canonical hex text for use by the fmt package (for %#v)
func (assetId AssetID) GoString() string {
	return "<asset:" + hexutil.EncodeBytes(assetId[:]) + ">"
}

// MarshalText - convert an asset id to canonical hex text
func (assetId AssetID) MarshalText() ([]byte, error) {
	return []byte(hexutil.EncodeBytes(assetId[:])), nil
}

// UnmarshalText - convert hex text into an asset id
func (assetId *AssetID) UnmarshalText(s []byte) error {
	return hexutil.DecodeBytesInto(assetId[:], string(s))
}

// AssetIDFromBytes - convert and validate a binary byte slice to an asset id
func AssetIDFromBytes(assetId *AssetID, buffer []byte) error {
	if AssetIDLength != len(buffer) {
		return fault.ErrByteLengthMismatch
	}
	copy(assetId[:], buffer)
	return nil
}
