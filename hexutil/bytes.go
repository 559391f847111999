// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hexutil

import (
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/localnode/fault"
)

// Prefix - the canonical hex text prefix
const Prefix = "0x"

// EncodeBytes - convert a byte slice to canonical hex text
//
// an empty slice encodes as just the bare prefix
func EncodeBytes(buffer []byte) string {
	return Prefix + hex.EncodeToString(buffer)
}

// DecodeBytes - convert hex text to a byte slice
//
// a single leading "0x" is stripped if present, its absence is not an
// error; upper case hex digits are accepted
func DecodeBytes(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, Prefix)
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidHexText
	}
	return buffer, nil
}

// DecodeBytesInto - convert hex text into a fixed length byte slice
//
// the decoded byte count must exactly match len(buffer)
func DecodeBytesInto(buffer []byte, s string) error {
	decoded, err := DecodeBytes(s)
	if nil != err {
		return err
	}
	if len(buffer) != len(decoded) {
		return fault.ErrByteLengthMismatch
	}
	copy(buffer, decoded)
	return nil
}
