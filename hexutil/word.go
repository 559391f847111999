// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hexutil

import (
	"encoding/binary"

	"github.com/bitmark-inc/localnode/fault"
)

// WordSize - number of bytes in a full 64 bit word
const WordSize = 8

// WordCodec - fixed width big endian hex conversion for unsigned words
//
// the width is validated once at construction so the per call encode
// and decode paths never have to re-check it
type WordCodec struct {
	width int
}

// Word - the codec for full width 64 bit words
//
// this is the width used for every numeric field in the chain
// configuration document
var Word = &WordCodec{width: WordSize}

// NewWordCodec - create a codec for a specific byte width
//
// widths outside 1..WordSize are rejected here, not per call
func NewWordCodec(widthBytes int) (*WordCodec, error) {
	if widthBytes < 1 || widthBytes > WordSize {
		return nil, fault.ErrInvalidWordWidth
	}
	return &WordCodec{width: widthBytes}, nil
}

// Width - the byte width of this codec
func (codec *WordCodec) Width() int {
	return codec.width
}

// Encode - convert a word to canonical hex text
//
// always emits the full declared width so equal values always produce
// byte identical text
func (codec *WordCodec) Encode(value uint64) string {
	buffer := make([]byte, WordSize)
	binary.BigEndian.PutUint64(buffer, value)
	return EncodeBytes(buffer[WordSize-codec.width:])
}

// Decode - convert hex text to a word
//
// shorter payloads are zero padded on the most significant side,
// longer payloads are an overflow; "0x" decodes to zero
func (codec *WordCodec) Decode(s string) (uint64, error) {
	decoded, err := DecodeBytes(s)
	if nil != err {
		return 0, err
	}
	if len(decoded) > codec.width {
		return 0, fault.ErrWordOverflow
	}
	buffer := make([]byte, WordSize)
	copy(buffer[WordSize-len(decoded):], decoded)
	return binary.BigEndian.Uint64(buffer), nil
}

// EncodeWord - full width convenience for the common case
func EncodeWord(value uint64) string {
	return Word.Encode(value)
}

// DecodeWord - full width convenience for the common case
func DecodeWord(s string) (uint64, error) {
	return Word.Decode(s)
}
