// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets manages the shader sources for the example programs.
// Sources live under shaders/<example>/<api>/ and are embedded into
// the binaries; at startup they are copied into an in-memory
// filesystem mounted at the same path, so every lookup goes through
// one virtual filesystem regardless of where the bytes came from.
// An on-disk directory can shadow the embedded copies for editing
// shaders without rebuilding, with change notification for reloads.
package assets

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/hack-pad/hackpadfs/mount"
)

// API is the shading language directory name under each
// example's shader directory.
const API = "wgsl"

// ShaderFS serves the shader sources for one example program.
type ShaderFS struct {

	// Example is the example name, the path element directly
	// under shaders/.
	Example string

	// FS is the root virtual filesystem, with the example's
	// sources mounted at shaders/Example.
	FS *mount.FS

	// dir is the optional on-disk shadow directory.
	dir string

	watch *watcher
}

// NewShaderFS returns a new ShaderFS for the named example, seeded
// from the given embedded sources, which must contain the
// shaders/<example>/<api>/ tree. An example with no shaders at all
// is an error.
func NewShaderFS(example string, embedded fs.FS) (*ShaderFS, error) {
	base, err := mem.NewFS()
	if err != nil {
		return nil, err
	}
	root, err := mount.NewFS(base)
	if err != nil {
		return nil, err
	}
	exfs, err := mem.NewFS()
	if err != nil {
		return nil, err
	}
	mdir := path.Join("shaders", example)
	sub, err := fs.Sub(embedded, mdir)
	if err != nil {
		return nil, err
	}
	n := 0
	err = fs.WalkDir(sub, ".", func(p string, d fs.DirEntry, werr error) error {
		if werr != nil {
			return werr
		}
		if d.IsDir() {
			if p == "." {
				return nil
			}
			return hackpadfs.MkdirAll(exfs, p, 0755)
		}
		b, err := fs.ReadFile(sub, p)
		if err != nil {
			return err
		}
		if err := writeFile(exfs, p, b); err != nil {
			return err
		}
		n++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assets: reading embedded shaders for %q: %w", example, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("assets: no embedded shaders for example %q", example)
	}
	if err := hackpadfs.MkdirAll(base, mdir, 0755); err != nil {
		return nil, err
	}
	if err := root.AddMount(mdir, exfs); err != nil {
		return nil, err
	}
	return &ShaderFS{Example: example, FS: root}, nil
}

// Shadow sets an on-disk directory whose files take priority over
// the embedded copies. It should contain the same
// shaders/<example>/<api>/ layout as the repository.
func (sfs *ShaderFS) Shadow(dir string) {
	sfs.dir = dir
}

// Load returns the source of the named shader, e.g., "cube.wgsl".
// The shadow directory is checked first if one is set. A missing or
// empty shader is an error; example programs treat it as fatal.
func (sfs *ShaderFS) Load(name string) (string, error) {
	fname := path.Join("shaders", sfs.Example, API, name)
	if sfs.dir != "" {
		b, err := os.ReadFile(filepath.Join(sfs.dir, filepath.FromSlash(fname)))
		if err == nil {
			if len(b) == 0 {
				return "", fmt.Errorf("assets: shader %q is empty", fname)
			}
			return string(b), nil
		}
	}
	f, err := hackpadfs.OpenFile(sfs.FS, fname, os.O_RDONLY, 0)
	if err != nil {
		return "", fmt.Errorf("assets: shader %q not found: %w", fname, err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", fmt.Errorf("assets: shader %q is empty", fname)
	}
	return string(b), nil
}

// writeFile creates the named file in the filesystem with the
// given contents.
func writeFile(fsys hackpadfs.FS, name string, b []byte) error {
	f, err := hackpadfs.OpenFile(fsys, name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	w, ok := f.(io.Writer)
	if !ok {
		f.Close()
		return fmt.Errorf("assets: file %q is not writable", name)
	}
	_, err = w.Write(b)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
