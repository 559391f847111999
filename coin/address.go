// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coin

import (
	"github.com/bitmark-inc/localnode/fault"
	"github.com/bitmark-inc/localnode/hexutil"
)

// AddressLength - number of bytes in an address
const AddressLength = 20

// Address - the type for a coin owner
// stored as a big endian byte array
// represented as canonical hex text for JSON encoding
type Address [AddressLength]byte

// String - convert a binary address to canonical hex text for use by the fmt package (for %s)
func (address Address) String() string {
	return hexutil.EncodeBytes(address[:])
}

// GoString - convert a binary address to canonical hex text for use by the fmt package (for %#v)
func (address Address) GoString() string {
	return "<address:" + hexutil.EncodeBytes(address[:]) + ">"
}

// MarshalText - convert an address to canonical hex text
func (address Address) MarshalText() ([]byte, error) {
	return []byte(hexutil.EncodeBytes(address[:])), nil
}

// UnmarshalText - convert hex text into an address
func (address *Address) UnmarshalText(s []byte) error {
	return hexutil.DecodeBytesInto(address[:], string(s))
}

// AddressFromBytes - convert and validate a binary byte slice to an address
func AddressFromBytes(address *Address, buffer []byte) error {
	if AddressLength != len(buffer) {
		return fault.ErrByteLengthMismatch
	}
	copy(address[:], buffer)
	return nil
}
