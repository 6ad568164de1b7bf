// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch calls fn with the scene in filename once, and again every time
// the file is written or replaced, until ctx is done. Scenes that fail to
// load are logged and skipped. The directory is watched rather than the
// file so that editors which save by renaming are seen.
func Watch(ctx context.Context, filename string, fn func(sc *Scene)) error {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	load := func() {
		sc, err := Open(abs)
		if errors.Log(err) != nil {
			return
		}
		fn(sc)
	}
	load()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				slog.Info("scene changed", "file", abs, "op", event.Op.String())
				load()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
