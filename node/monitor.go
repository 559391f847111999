// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"os/exec"

	"github.com/bitmark-inc/logger"
)

// watches the running node process
// on shutdown the process is killed, if the process dies on its own
// that is only logged, restarting is the operator's decision
type monitor struct {
	log     *logger.L
	process *exec.Cmd
}

// Run - wait for either shutdown or process exit
func (m *monitor) Run(args interface{}, shutdown <-chan struct{}) {
	done := make(chan error, 1)
	go func() {
		done <- m.process.Wait()
	}()

	select {
	case <-shutdown:
		err := m.process.Process.Kill()
		if nil != err {
			m.log.Errorf("kill: error: %s", err)
		}
		<-done
		m.log.Info("node stopped")

	case err := <-done:
		if nil != err {
			m.log.Errorf("node exited: %s", err)
		} else {
			m.log.Warn("node exited")
		}
	}
}
