// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/gpu"
	"github.com/cogentcore/gpu-examples/assets"
)

// Options are the standard command line options shared by all of the
// example programs. Values can come from three places, in increasing
// order of priority: the default struct tags, a toml file given with
// the -config flag, and explicit command line flags.
type Options struct {

	// Name is the short name of the example, used to locate its
	// shaders under shaders/Name/wgsl.
	Name string

	// Title is the window title.
	Title string

	// Width is the initial window width in pixels.
	Width int `default:"1280"`

	// Height is the initial window height in pixels.
	Height int `default:"720"`

	// Fullscreen opens the window in fullscreen mode on the
	// primary monitor, using the monitor size instead of Width
	// and Height.
	Fullscreen bool

	// Debug enables WebGPU validation and debug printing.
	Debug bool

	// NoVSync renders frames as fast as possible instead of
	// pacing them to the display refresh rate.
	NoVSync bool

	// Frames makes the program exit after rendering this many
	// frames. 0 means run until the window is closed.
	Frames int

	// Offscreen renders to a texture instead of a window,
	// without any display connection.
	Offscreen bool

	// Backend requests a specific WebGPU backend: vulkan, metal,
	// dx12, or gl. The default lets the adapter pick.
	Backend string

	// ShaderDir is a directory to load shader sources from instead
	// of the embedded copies, for editing shaders without rebuilding.
	ShaderDir string

	// Config is a toml file to load options from.
	Config string

	vk, metal, dx12, gl bool
}

// NewOptions returns Options for the named example with the
// default values set. The title is used for the window.
func NewOptions(name, title string) *Options {
	o := &Options{Name: name, Title: title}
	cli.SetFromDefaults(o)
	if o.Title == "" {
		o.Title = name
	}
	return o
}

// AddFlags registers the standard flags on the given flag set,
// bound to the current option values as defaults.
func (o *Options) AddFlags(fs *flag.FlagSet) {
	fs.IntVar(&o.Width, "width", o.Width, "window width in pixels")
	fs.IntVar(&o.Height, "height", o.Height, "window height in pixels")
	fs.BoolVar(&o.Fullscreen, "fullscreen", o.Fullscreen, "open a fullscreen window on the primary monitor")
	fs.BoolVar(&o.Debug, "debug", o.Debug, "enable WebGPU validation and debug logging")
	fs.BoolVar(&o.NoVSync, "no-vsync", o.NoVSync, "do not pace rendering to the display refresh rate")
	fs.IntVar(&o.Frames, "frames", o.Frames, "exit after rendering this many frames (0 = run until closed)")
	fs.BoolVar(&o.Offscreen, "offscreen", o.Offscreen, "render offscreen without a window")
	fs.StringVar(&o.ShaderDir, "shaderdir", o.ShaderDir, "load shaders from this directory instead of the embedded copies")
	fs.StringVar(&o.Config, "config", o.Config, "load options from this toml file (explicit flags still win)")
	fs.BoolVar(&o.vk, "vk", false, "use the Vulkan backend")
	fs.BoolVar(&o.metal, "metal", false, "use the Metal backend")
	fs.BoolVar(&o.dx12, "dx12", false, "use the DirectX 12 backend")
	fs.BoolVar(&o.gl, "gl", false, "use the OpenGL backend")
}

// Parse parses the process command line into the options.
// If -config names a toml file, it is loaded after the first parse
// and then the flags are applied again on top of it.
func (o *Options) Parse() error {
	return o.ParseArgs(flag.CommandLine, os.Args[1:])
}

// ParseArgs is [Options.Parse] with an explicit flag set and
// argument list, for testing.
func (o *Options) ParseArgs(fs *flag.FlagSet, args []string) error {
	o.AddFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if o.Config != "" {
		if err := tomlx.OpenFiles(o, o.Config); err != nil {
			return err
		}
		if err := fs.Parse(args); err != nil {
			return err
		}
	}
	nb := 0
	for _, b := range []bool{o.vk, o.metal, o.dx12, o.gl} {
		if b {
			nb++
		}
	}
	if nb > 1 {
		return fmt.Errorf("app: at most one of -vk, -metal, -dx12, -gl may be given")
	}
	switch {
	case o.vk:
		o.Backend = "vulkan"
	case o.metal:
		o.Backend = "metal"
	case o.dx12:
		o.Backend = "dx12"
	case o.gl:
		o.Backend = "gl"
	}
	return nil
}

// apply puts the parsed options into effect: debug levels and
// the backend request, which wgpu reads from the environment
// when the instance is first created.
func (o *Options) apply() {
	if o.Debug {
		gpu.Debug = true
		logx.UserLevel = slog.LevelDebug
	}
	if o.Backend != "" {
		os.Setenv("WGPU_BACKEND", o.Backend)
		logx.PrintfDebug("requested WebGPU backend: %s\n", o.Backend)
	}
}

// Shaders returns the shader filesystem for this example, seeded
// from the given embedded sources. If -shaderdir was given, sources
// found there shadow the embedded ones.
func (o *Options) Shaders(embedded fs.FS) (*assets.ShaderFS, error) {
	sfs, err := assets.NewShaderFS(o.Name, embedded)
	if err != nil {
		return nil, err
	}
	if o.ShaderDir != "" {
		sfs.Shadow(o.ShaderDir)
	}
	return sfs, nil
}
