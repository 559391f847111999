// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node - run a local chain node process
//
// Writes the assembled chain configuration document to a file, starts
// the external node binary pointing at it and watches the process
// from a background task.  The node is considered started once its
// health endpoint answers; polling is a bounded number of attempts
// with a fixed delay in between
package node
