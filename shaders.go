// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpuexamples holds the embedded shader sources for the
// example programs in this repository, so that each example binary
// is self contained. The sources are organized by example name, as
// shaders/<example>/wgsl/<file>.wgsl, and are mounted into a virtual
// filesystem at startup; the -shaderdir flag mounts an on-disk tree
// over them for editing shaders without rebuilding.
package gpuexamples

import "embed"

//go:embed shaders
var Shaders embed.FS
