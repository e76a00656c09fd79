// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/controls/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch watches the file of the given settings and reopens and applies
// them whenever the file is written, calling onChange (if non-nil) after
// each successful reload. The directory is watched rather than the file,
// so that editors that replace the file on save are handled. Watch blocks
// until ctx is done, returning nil, or until the watcher fails.
func Watch(ctx context.Context, se Settings, onChange func()) error {
	fname := filepath.Clean(se.Filename())
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(fname)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fname {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if errors.Log(Open(se)) != nil {
				continue
			}
			se.Apply()
			slog.Info("settings reloaded", "settings", se.Label(), "file", fname)
			if onChange != nil {
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
