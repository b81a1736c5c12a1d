// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

// Lazy manages a resource that is created on first use and dropped
// when it becomes stale, such as a render target or pipeline that
// depends on the current framebuffer size. Call [Lazy.Invalidate]
// from the driver's Resized method; the next [Lazy.Get] creates a
// fresh resource at the new size.
type Lazy[T any] struct {

	// New creates the resource. Must be set before the first Get.
	New func() T

	// Release releases the resource on Invalidate.
	// May be nil for resources without GPU-side cleanup.
	Release func(T)

	value   T
	valid   bool
	created int
	dropped int
}

// Get returns the resource, creating it first if it does not
// currently exist.
func (lz *Lazy[T]) Get() T {
	if !lz.valid {
		lz.value = lz.New()
		lz.valid = true
		lz.created++
	}
	return lz.value
}

// Invalidate releases the current resource, if any.
func (lz *Lazy[T]) Invalidate() {
	if !lz.valid {
		return
	}
	if lz.Release != nil {
		lz.Release(lz.value)
	}
	var zero T
	lz.value = zero
	lz.valid = false
	lz.dropped++
}

// Valid reports whether the resource currently exists.
func (lz *Lazy[T]) Valid() bool {
	return lz.valid
}

// Created returns the total number of times the resource
// has been created.
func (lz *Lazy[T]) Created() int {
	return lz.created
}

// Live returns the number of resources currently held, 0 or 1:
// creations minus releases. Anything else is a leak.
func (lz *Lazy[T]) Live() int {
	return lz.created - lz.dropped
}
