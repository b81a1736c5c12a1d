// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"image"

	"cogentcore.org/core/gpu"
)

// RunOffscreen runs the driver against a [gpu.RenderTexture] instead
// of a window, with no display connection. It renders -frames frames
// (at least one) with a fixed 1/60s time step, so repeated runs
// produce identical output, then releases everything.
func RunOffscreen(opts *Options, dr Driver) error {
	gp, dev, err := gpu.NoDisplayGPU()
	if err != nil {
		return err
	}
	size := image.Point{opts.Width, opts.Height}
	rt := gpu.NewRenderTexture(gp, dev, size, 4, gpu.Depth32)
	w := &Window{Opts: opts, GPU: gp, Renderer: rt, Size: size}
	if err := dr.Init(w); err != nil {
		return err
	}
	frames := opts.Frames
	if frames <= 0 {
		frames = 1
	}
	const dt = float32(1) / 60
	for range frames {
		dr.Animate(dt)
		if err := dr.Render(); err != nil {
			return err
		}
	}
	if rl, ok := dr.(Releaser); ok {
		rl.Release()
	}
	rt.Release()
	gp.Release()
	return nil
}
