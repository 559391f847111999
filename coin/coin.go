// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coin

// UtxoID - reference to a spendable output
// a transaction identifier together with the index of the output
// inside that transaction
type UtxoID struct {
	TxID        TxID
	OutputIndex Word
}

// Coin - a spendable unit
//
// an amount of one asset owned by an address; the creation and
// maturity heights are optional, a nil height is simply unknown and
// is omitted from any document built from this record
type Coin struct {
	Owner        Address
	Amount       Word
	AssetID      AssetID
	BlockCreated *BlockHeight
	Maturity     *BlockHeight
}
