// Copyright 2025 The go-coremark Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent pool of OS-thread-bound
// goroutines for running benchmark workers side by side.
//
// A Pool is created once per run, before the timed region, so goroutine
// start-up and thread binding are not measured. Each call to Each is a
// fork/join: it hands out indexes until every one has been processed and
// returns only when all of them are done.
//
// Usage:
//
//	pool := workerpool.New(len(workers))
//	defer pool.Close()
//
//	pool.Each(len(workers), func(i int) {
//	    workers[i].Iterate(iterations)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of goroutines, each locked to its own OS thread for
// its whole lifetime.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one slot's share of an Each call.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New starts numWorkers goroutines. If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers),
	}

	var ready sync.WaitGroup
	ready.Add(numWorkers)
	for range numWorkers {
		go p.worker(&ready)
	}
	ready.Wait()

	return p
}

// worker binds itself to an OS thread and serves work items until Close.
func (p *Pool) worker(ready *sync.WaitGroup) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	ready.Done()

	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of goroutines in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the pool once pending work has drained. Calling Close more
// than once is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Each calls fn once for every index in [0, n) and blocks until all calls
// have returned. Indexes are claimed atomically, so a slot that finishes
// early picks up the next pending index.
//
// fn must not share mutable state between indexes. On a closed pool, or
// when only one slot would be used, fn runs on the calling goroutine.
func (p *Pool) Each(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if p.closed.Load() || workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
