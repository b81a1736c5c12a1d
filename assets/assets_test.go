// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShaderFS(t *testing.T) {
	sfs, err := NewShaderFS("demo", os.DirFS("testdata"))
	assert.NoError(t, err)

	src, err := sfs.Load("demo.wgsl")
	assert.NoError(t, err)
	assert.Contains(t, src, "fn vs_main")

	_, err = sfs.Load("missing.wgsl")
	assert.Error(t, err)

	_, err = sfs.Load("empty.wgsl")
	assert.Error(t, err)
}

func TestShaderFSUnknownExample(t *testing.T) {
	_, err := NewShaderFS("nope", os.DirFS("testdata"))
	assert.Error(t, err)
}

// writeShadow writes a shader into a shadow directory with the
// standard shaders/<example>/<api>/ layout.
func writeShadow(t *testing.T, dir, example, name, src string) {
	t.Helper()
	sdir := filepath.Join(dir, "shaders", example, API)
	assert.NoError(t, os.MkdirAll(sdir, 0777))
	assert.NoError(t, os.WriteFile(filepath.Join(sdir, name), []byte(src), 0666))
}

func TestShaderFSShadow(t *testing.T) {
	sfs, err := NewShaderFS("demo", os.DirFS("testdata"))
	assert.NoError(t, err)

	dir := t.TempDir()
	writeShadow(t, dir, "demo", "demo.wgsl", "// edited\n")
	sfs.Shadow(dir)

	src, err := sfs.Load("demo.wgsl")
	assert.NoError(t, err)
	assert.Equal(t, "// edited\n", src)

	// files not in the shadow directory fall back to the embedded copy
	_, err = sfs.Load("empty.wgsl")
	assert.ErrorContains(t, err, "empty")
}

func TestShaderFSWatch(t *testing.T) {
	sfs, err := NewShaderFS("demo", os.DirFS("testdata"))
	assert.NoError(t, err)

	assert.Error(t, sfs.Watch(func(string) {})) // no shadow dir yet

	dir := t.TempDir()
	writeShadow(t, dir, "demo", "demo.wgsl", "// v1\n")
	sfs.Shadow(dir)

	changed := make(chan string, 4)
	assert.NoError(t, sfs.Watch(func(name string) {
		changed <- name
	}))
	defer sfs.Close()

	writeShadow(t, dir, "demo", "demo.wgsl", "// v2\n")

	select {
	case name := <-changed:
		assert.Equal(t, "demo.wgsl", name)
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification for edited shader")
	}
}
