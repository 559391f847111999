// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hexutil_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/localnode/fault"
	"github.com/bitmark-inc/localnode/hexutil"
)

func TestEncodeBytes(t *testing.T) {
	testData := []struct {
		buffer   []byte
		expected string
	}{
		{nil, "0x"},
		{[]byte{}, "0x"},
		{[]byte{0x00}, "0x00"},
		{[]byte{0xab, 0xcd, 0xef}, "0xabcdef"},
		{bytes.Repeat([]byte{0x11}, 20), "0x" + "1111111111111111111111111111111111111111"},
	}

	for i, item := range testData {
		actual := hexutil.EncodeBytes(item.buffer)
		if item.expected != actual {
			t.Errorf("%d: encode: %x  actual: %q  expected: %q", i, item.buffer, actual, item.expected)
		}
	}
}

func TestDecodeBytes(t *testing.T) {
	testData := []struct {
		text     string
		expected []byte
	}{
		{"0x", []byte{}},
		{"", []byte{}},
		{"0xabcdef", []byte{0xab, 0xcd, 0xef}},
		{"abcdef", []byte{0xab, 0xcd, 0xef}},
		{"0xAB", []byte{0xab}},
		{"AB", []byte{0xab}},
		{"0xaB", []byte{0xab}},
	}

	for i, item := range testData {
		actual, err := hexutil.DecodeBytes(item.text)
		if nil != err {
			t.Fatalf("%d: decode: %q  error: %s", i, item.text, err)
		}
		if !bytes.Equal(item.expected, actual) {
			t.Errorf("%d: decode: %q  actual: %x  expected: %x", i, item.text, actual, item.expected)
		}
	}
}

func TestDecodeBytesInvalid(t *testing.T) {
	testData := []string{
		"0xzz",    // not hex digits
		"0x123",   // odd length payload
		"0Xab",    // prefix match is case sensitive
		"0x 12",   // embedded space
		"0x0x12",  // doubled prefix
	}

	for i, text := range testData {
		_, err := hexutil.DecodeBytes(text)
		if fault.ErrInvalidHexText != err {
			t.Errorf("%d: decode: %q  error: %v  expected: %v", i, text, err, fault.ErrInvalidHexText)
		}
	}
}

func TestDecodeBytesInto(t *testing.T) {
	var buffer [4]byte
	err := hexutil.DecodeBytesInto(buffer[:], "0x01020304")
	if nil != err {
		t.Fatalf("decode into error: %s", err)
	}
	expected := [4]byte{0x01, 0x02, 0x03, 0x04}
	if buffer != expected {
		t.Errorf("decode into: actual: %x  expected: %x", buffer, expected)
	}

	err = hexutil.DecodeBytesInto(buffer[:], "0x0102")
	if fault.ErrByteLengthMismatch != err {
		t.Errorf("short decode: error: %v  expected: %v", err, fault.ErrByteLengthMismatch)
	}

	err = hexutil.DecodeBytesInto(buffer[:], "0x0102030405")
	if fault.ErrByteLengthMismatch != err {
		t.Errorf("long decode: error: %v  expected: %v", err, fault.ErrByteLengthMismatch)
	}
}

// round trip every byte pattern at a few fixed lengths
func TestRoundTrip(t *testing.T) {
	for _, length := range []int{1, 20, 32} {
		buffer := make([]byte, length)
		for i := 0; i < length; i += 1 {
			buffer[i] = byte(i * 7)
		}
		decoded, err := hexutil.DecodeBytes(hexutil.EncodeBytes(buffer))
		if nil != err {
			t.Fatalf("length %d: round trip error: %s", length, err)
		}
		if !bytes.Equal(buffer, decoded) {
			t.Errorf("length %d: round trip: actual: %x  expected: %x", length, decoded, buffer)
		}
	}
}
