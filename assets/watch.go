// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/logx"
	"github.com/fsnotify/fsnotify"
)

// watcher holds the change notification state for a ShaderFS
// shadow directory.
type watcher struct {
	Watcher *fsnotify.Watcher

	// channel to close the watcher goroutine
	Done chan bool
}

// Watch starts watching the shadow directory's shader sources for
// this example and calls fn with the shader file name, e.g.,
// "cube.wgsl", whenever one changes. fn runs on the watcher
// goroutine, so it must hand the name off to the render loop rather
// than touch GPU state itself. A shadow directory must have been set
// with [ShaderFS.Shadow] first. Call [ShaderFS.Close] to stop
// watching.
func (sfs *ShaderFS) Watch(fn func(name string)) error {
	if sfs.dir == "" {
		return fmt.Errorf("assets: no shadow directory to watch for example %q", sfs.Example)
	}
	if sfs.watch != nil {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dir := filepath.Join(sfs.dir, "shaders", sfs.Example, API)
	if err := w.Add(dir); err != nil {
		w.Close()
		return err
	}
	sfs.watch = &watcher{Watcher: w, Done: make(chan bool)}
	go func() {
		watch := sfs.watch.Watcher
		done := sfs.watch.Done
		for {
			select {
			case <-done:
				return
			case event := <-watch.Events:
				switch {
				case event.Op&fsnotify.Write == fsnotify.Write ||
					event.Op&fsnotify.Create == fsnotify.Create ||
					event.Op&fsnotify.Rename == fsnotify.Rename:
					name := path.Base(filepath.ToSlash(event.Name))
					if strings.HasSuffix(name, "."+API) {
						fn(name)
					}
				}
			case err := <-watch.Errors:
				logx.PrintlnError("assets: watcher:", err)
			}
		}
	}()
	return nil
}

// Close stops watching the shadow directory, if watching.
func (sfs *ShaderFS) Close() error {
	if sfs.watch == nil {
		return nil
	}
	sfs.watch.Done <- true
	close(sfs.watch.Done)
	err := sfs.watch.Watcher.Close()
	sfs.watch = nil
	return err
}
