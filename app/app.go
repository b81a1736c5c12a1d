// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app provides the shared scaffolding for the example
// programs in this repository: command line options, window and
// surface setup, the frame loop, and helpers for parallel command
// recording. Each example implements the [Driver] interface and
// hands it to [Main], which takes care of everything else.
package app

import (
	"fmt"
	"image"
	"os"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/gpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Driver is the interface implemented by each example program.
// All methods are called on the main OS thread.
type Driver interface {

	// Init is called once, after the GPU device and render target
	// are ready and before the first frame. The example creates its
	// pipelines, vars and values here.
	Init(w *Window) error

	// Animate advances the example state by dt seconds.
	// It is called exactly once before each Render.
	Animate(dt float32)

	// Render records and submits the rendering commands
	// for the current frame.
	Render() error

	// Resized is called after the render target has been
	// reconfigured to a new size.
	Resized(size image.Point)
}

// Releaser is an optional interface for drivers that need to release
// GPU resources before the device and window are destroyed.
type Releaser interface {
	Release()
}

// Window bundles what an example needs to render: the GPU and the
// current render target, which is the window surface, or a
// [gpu.RenderTexture] when running offscreen.
type Window struct {

	// Opts are the options the program was started with.
	Opts *Options

	// GPU is the WebGPU instance and adapter wrapper.
	GPU *gpu.GPU

	// Renderer is the frame target that [gpu.GraphicsSystem]s
	// render into.
	Renderer gpu.Renderer

	// Size is the current framebuffer size in pixels.
	Size image.Point

	// Win is the OS window, for examples that install their own
	// input callbacks. It is nil when running offscreen.
	Win *glfw.Window
}

// Main parses the standard options and runs the driver, windowed by
// default or offscreen with -offscreen. It exits the process with
// code 1 if setup or rendering fails, after logging the error.
// It must be called on the main OS thread, with it locked:
//
//	func init() { runtime.LockOSThread() }
func Main(opts *Options, dr Driver) {
	if err := opts.Parse(); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
	opts.apply()
	var err error
	if opts.Offscreen {
		err = RunOffscreen(opts, dr)
	} else {
		err = Run(opts, dr)
	}
	if err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}

// Setup parses the standard options and puts them into effect,
// without opening a window or creating a device. It is for programs
// that drive the GPU themselves, such as compute-only ones.
func Setup(opts *Options) error {
	if err := opts.Parse(); err != nil {
		return err
	}
	opts.apply()
	return nil
}

// Run opens a window per the options and drives the render loop
// until the window is closed, the -frames count is reached, or the
// driver returns a render error.
func Run(opts *Options, dr Driver) error {
	if err := gpu.Init(); err != nil {
		return err
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	var monitor *glfw.Monitor
	size := image.Point{opts.Width, opts.Height}
	if opts.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		vm := monitor.GetVideoMode()
		size = image.Point{vm.Width, vm.Height}
	}
	window, err := glfw.CreateWindow(size.X, size.Y, opts.Title, monitor, nil)
	if err != nil {
		return errors.Log(err)
	}
	sp := gpu.Instance().CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
	gp := gpu.NewGPU(sp)
	sf := gpu.NewSurface(gp, sp, size, 4, gpu.Depth32)

	w := &Window{Opts: opts, GPU: gp, Renderer: sf, Size: size, Win: window}
	window.SetSizeCallback(func(wd *glfw.Window, width, height int) {
		sz := image.Point{width, height}
		sf.SetSize(sz)
		w.Size = sz
		dr.Resized(sz)
	})
	destroy := func() {
		if rl, ok := dr.(Releaser); ok {
			rl.Release()
		}
		sf.Release()
		gp.Release()
		window.Destroy()
		gpu.Terminate()
	}
	if err := dr.Init(w); err != nil {
		destroy()
		return err
	}

	pollEvents := func() bool {
		if window.ShouldClose() {
			return false
		}
		glfw.PollEvents()
		return true
	}

	var rerr error
	frameCount := 0
	totalFrames := 0
	stTime := time.Now()
	lastTime := stTime
	renderFrame := func() bool {
		now := time.Now()
		dr.Animate(float32(now.Sub(lastTime).Seconds()))
		lastTime = now
		if err := dr.Render(); err != nil {
			rerr = err
			return false
		}
		frameCount++
		totalFrames++
		dur := float64(now.Sub(stTime)) / float64(time.Second)
		if dur > 10 {
			fmt.Printf("fps: %.0f\n", float64(frameCount)/dur)
			frameCount = 0
			stTime = now
		}
		if opts.Frames > 0 && totalFrames >= opts.Frames {
			return false
		}
		return true
	}

	if opts.NoVSync {
		for pollEvents() && renderFrame() {
		}
		destroy()
		return rerr
	}

	exitC := make(chan struct{}, 2)
	fpsDelay := time.Second / 60
	fpsTicker := time.NewTicker(fpsDelay)
	for {
		select {
		case <-exitC:
			fpsTicker.Stop()
			destroy()
			return rerr
		case <-fpsTicker.C:
			if !pollEvents() || !renderFrame() {
				exitC <- struct{}{}
				continue
			}
		}
	}
}
