// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ForkJoin runs fn for every index from 0 to n-1 on a pool of up to
// GOMAXPROCS goroutines, and blocks until all of them have finished.
// It returns the first error any invocation returned.
//
// fn must only write to state owned by its own index, such as its
// slot in a results slice. WebGPU command encoders are safe to record
// concurrently, so the usual use is recording one command buffer per
// index and submitting them in index order after the join.
func ForkJoin(n int, fn func(i int) error) error {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range n {
		g.Go(func() error {
			return fn(i)
		})
	}
	return g.Wait()
}

// Sequential runs fn for every index from 0 to n-1 on the calling
// goroutine, stopping at the first error. It is the single threaded
// equivalent of [ForkJoin], for comparing results and timing.
func Sequential(n int, fn func(i int) error) error {
	for i := range n {
		if err := fn(i); err != nil {
			return err
		}
	}
	return nil
}
