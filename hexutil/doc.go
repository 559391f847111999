// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hexutil - canonical hexadecimal text conversion
//
// All values exchanged with the node process are rendered as "0x"
// prefixed lowercase hex.  Byte sequences keep their exact length;
// numeric words are big endian and zero padded on the left to their
// declared width so that encoded output is always the full canonical
// width while decode accepts compact hand written values like "0x01".
package hexutil
