// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"strconv"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/localnode/background"
	"github.com/bitmark-inc/localnode/chainconfig"
	"github.com/bitmark-inc/localnode/fault"
)

// global constants
const (
	defaultIP             = "127.0.0.1"
	defaultHealthAttempts = 5
)

// Configuration - node process settings
// this is read from the Lua configuration file
type Configuration struct {
	Command        string `gluamapper:"command" json:"command"`
	IP             string `gluamapper:"ip" json:"ip"`
	Port           int    `gluamapper:"port" json:"port"`
	ChainFile      string `gluamapper:"chain_file" json:"chain_file"`
	HealthAttempts int    `gluamapper:"health_attempts" json:"health_attempts"`
}

// globals for background process
type nodeData struct {
	sync.RWMutex // to allow locking

	// logger
	log *logger.L

	// health endpoint
	client    *http.Client
	healthURL string
	attempts  int

	// the document file handed to the node
	chainFile       string
	removeChainFile bool

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData nodeData

// Initialise - write the chain file and start the node process
//
// an empty ChainFile in the configuration selects a fresh transient
// file that is removed again on Finalise
func Initialise(configuration *Configuration, chain *chainconfig.ChainConfig) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("node")
	if nil == globalData.log {
		return fault.ErrInvalidLoggerChannel
	}
	globalData.log.Info("starting…")

	if "" == configuration.Command {
		return fault.ErrRequiredNodeCommand
	}
	if configuration.Port < 1 || configuration.Port > 65535 {
		return fault.ErrInvalidPortNumber
	}

	ip := configuration.IP
	if "" == ip {
		ip = defaultIP
	}

	attempts := configuration.HealthAttempts
	if attempts <= 0 {
		attempts = defaultHealthAttempts
	}

	chainFile, err := WriteChainFile(chain, configuration.ChainFile)
	if nil != err {
		return err
	}
	globalData.chainFile = chainFile
	globalData.removeChainFile = "" == configuration.ChainFile
	globalData.log.Infof("chain file: %q", chainFile)

	command := exec.Command(
		configuration.Command,
		"--ip", ip,
		"--port", strconv.Itoa(configuration.Port),
		"--chain", chainFile,
		"--db-type", "in-memory",
	)

	err = command.Start()
	if nil != err {
		globalData.log.Criticalf("start: %q  error: %s", configuration.Command, err)
		if globalData.removeChainFile {
			os.Remove(chainFile)
		}
		return fault.ErrNodeStartFail
	}
	globalData.log.Infof("node: %q  pid: %d", configuration.Command, command.Process.Pid)

	globalData.client = &http.Client{}
	globalData.healthURL = fmt.Sprintf("http://%s:%d/health", ip, configuration.Port)
	globalData.attempts = attempts

	// set up background processes
	processes := background.Processes{
		&monitor{
			log:     globalData.log,
			process: command,
		},
	}
	globalData.background = background.Start(processes, nil)
	globalData.initialised = true

	return nil
}

// Finalise - stop the node process and remove any transient file
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")

	globalData.background.Stop()

	if globalData.removeChainFile {
		os.Remove(globalData.chainFile)
	}

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// ChainFile - path of the document file handed to the node
func ChainFile() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.chainFile
}
