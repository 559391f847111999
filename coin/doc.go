// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coin - typed values for spendable units
//
// Fixed length byte values (addresses, asset identifiers, transaction
// identifiers) and fixed width numbers (amounts, block heights) with
// their canonical hex text form for JSON encoding
package coin
