// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - start and stop a set of worker goroutines
package background

import (
	"sync"
)

// Process - a worker loop
// Run must return promptly after the shutdown channel closes
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - the list of processes to start
type Processes []Process

// T - handle for stopping the started set
type T struct {
	sync.WaitGroup
	s []chan struct{}
}

// Start - run each process in its own goroutine
func Start(processes Processes, args interface{}) *T {

	register := new(T)
	register.s = make([]chan struct{}, len(processes))

	for i, p := range processes {
		shutdown := make(chan struct{})
		register.s[i] = shutdown
		register.Add(1)
		go func(p Process, shutdown <-chan struct{}) {
			defer register.Done()
			p.Run(args, shutdown)
		}(p, shutdown)
	}
	return register
}

// Stop - shut down all started processes and wait for them to finish
func (t *T) Stop() {
	if nil == t {
		return
	}

	for _, shutdown := range t.s {
		close(shutdown)
	}
	t.Wait()
}
