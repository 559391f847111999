// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainconfig - assembly of the node chain configuration document
//
// Builds the JSON document the node process reads on start: a fixed
// set of top level keys, the initial coin records rendered as
// canonical hex text and the transaction parameter set.  Building is
// total; only the decode direction can fail and any failure names the
// offending field
package chainconfig
