// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/localnode/chainconfig"
)

// WriteChainFile - serialise the document and write it out
//
// an empty path selects a fresh temporary file; the final path is
// returned in either case
func WriteChainFile(chain *chainconfig.ChainConfig, path string) (string, error) {
	data, err := chain.JSON()
	if nil != err {
		return "", err
	}

	if "" != path {
		err = ioutil.WriteFile(path, data, 0600)
		if nil != err {
			return "", err
		}
		return path, nil
	}

	file, err := ioutil.TempFile("", "chain-*.json")
	if nil != err {
		return "", err
	}
	path = file.Name()

	_, err = file.Write(data)
	if nil == err {
		err = file.Close()
	} else {
		file.Close()
	}
	if nil != err {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
