// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/localnode/chainconfig"
	"github.com/bitmark-inc/localnode/fault"
	"github.com/bitmark-inc/localnode/node"
)

const (
	dir         = "testing"
	logCategory = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", logCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

// a health endpoint stub and the port it listens on
func healthServer(t *testing.T, up bool) (*httptest.Server, int) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"up":%v}`, up)
	}))

	u, err := url.Parse(server.URL)
	if nil != err {
		t.Fatalf("parse server url error: %s", err)
	}
	port, err := strconv.Atoi(u.Port())
	if nil != err {
		t.Fatalf("parse server port error: %s", err)
	}
	return server, port
}

func TestWriteChainFile(t *testing.T) {
	chain := chainconfig.New(nil, nil)

	// explicit path
	path := filepath.Join(os.TempDir(), "chain-file-test.json")
	defer os.Remove(path)

	written, err := node.WriteChainFile(chain, path)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, path, written, "wrong path")

	data, err := ioutil.ReadFile(path)
	assert.Nil(t, err, "wrong error")

	parsed, err := chainconfig.FromJSON(data)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, chain, parsed, "document changed on disk")

	// transient file
	written, err = node.WriteChainFile(chain, "")
	assert.Nil(t, err, "wrong error")
	assert.NotEqual(t, "", written, "no path returned")
	defer os.Remove(written)

	_, err = os.Stat(written)
	assert.Nil(t, err, "transient file missing")
}

func TestLifecycle(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	server, port := healthServer(t, true)
	defer server.Close()

	configuration := node.Configuration{
		Command: "true", // exits immediately, health comes from the stub
		IP:      "127.0.0.1",
		Port:    port,
	}

	err := node.Initialise(&configuration, chainconfig.New(nil, nil))
	assert.Nil(t, err, "wrong error")

	err = node.WaitUntilHealthy()
	assert.Nil(t, err, "wrong error")
	assert.True(t, node.IsHealthy(), "expected healthy")

	chainFile := node.ChainFile()
	assert.NotEqual(t, "", chainFile, "missing chain file")

	data, err := ioutil.ReadFile(chainFile)
	assert.Nil(t, err, "wrong error")
	parsed, err := chainconfig.FromJSON(data)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, chainconfig.ChainName, parsed.ChainName, "wrong chain name")

	// double initialise is rejected
	err = node.Initialise(&configuration, chainconfig.New(nil, nil))
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "wrong error")

	err = node.Finalise()
	assert.Nil(t, err, "wrong error")
	assert.False(t, node.IsHealthy(), "expected unhealthy after finalise")

	// transient file is removed again
	_, err = os.Stat(chainFile)
	assert.True(t, os.IsNotExist(err), "transient chain file still present")

	err = node.Finalise()
	assert.Equal(t, fault.ErrNotInitialised, err, "wrong error")
}

func TestNotResponding(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	server, port := healthServer(t, false)
	defer server.Close()

	configuration := node.Configuration{
		Command:        "true",
		IP:             "127.0.0.1",
		Port:           port,
		HealthAttempts: 2,
	}

	err := node.Initialise(&configuration, chainconfig.New(nil, nil))
	assert.Nil(t, err, "wrong error")
	defer node.Finalise()

	err = node.WaitUntilHealthy()
	assert.Equal(t, fault.ErrNodeNotResponding, err, "wrong error")
	assert.False(t, node.IsHealthy(), "expected unhealthy")
}

func TestInitialiseErrors(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	chain := chainconfig.New(nil, nil)

	err := node.Initialise(&node.Configuration{Port: 4000}, chain)
	assert.Equal(t, fault.ErrRequiredNodeCommand, err, "wrong error")

	err = node.Initialise(&node.Configuration{Command: "true"}, chain)
	assert.Equal(t, fault.ErrInvalidPortNumber, err, "wrong error")

	err = node.Initialise(&node.Configuration{
		Command: "/no/such/binary/anywhere",
		Port:    4000,
	}, chain)
	assert.Equal(t, fault.ErrNodeStartFail, err, "wrong error")
}
