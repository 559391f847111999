// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"net/http"
	"time"

	"github.com/bitmark-inc/localnode/fault"
	"github.com/bitmark-inc/localnode/util"
)

// delay between health attempts
const healthDelay = 100 * time.Millisecond

// shape of the node's health endpoint reply
type healthReply struct {
	Up bool `json:"up"`
}

// IsHealthy - one probe of the node health endpoint
func IsHealthy() bool {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return false
	}
	return probe(globalData.client, globalData.healthURL)
}

// WaitUntilHealthy - poll the health endpoint until the node answers
//
// running out of attempts returns ErrNodeNotResponding which the
// caller must treat as a fatal startup condition
func WaitUntilHealthy() error {
	globalData.RLock()
	initialised := globalData.initialised
	client := globalData.client
	url := globalData.healthURL
	attempts := globalData.attempts
	log := globalData.log
	globalData.RUnlock()

	if !initialised {
		return fault.ErrNotInitialised
	}

	for i := 1; i <= attempts; i += 1 {
		if probe(client, url) {
			log.Infof("node is up after %d attempt(s)", i)
			return nil
		}
		log.Debugf("health attempt %d/%d failed", i, attempts)
		time.Sleep(healthDelay)
	}
	return fault.ErrNodeNotResponding
}

// one health request, any transport or decode failure counts as down
func probe(client *http.Client, url string) bool {
	reply := healthReply{}
	err := util.FetchJSON(client, url, &reply)
	if nil != err {
		return false
	}
	return reply.Up
}
