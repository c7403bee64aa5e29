// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/glboot/hii/base/errors"
	"github.com/mitchellh/go-homedir"
)

// Watch watches the given config file and calls fn with a fresh
// config, made from base overlaid with the file, every time the file
// is written or re-created. Files that fail to parse or validate are
// logged and skipped. Watch blocks until ctx is done.
//
// The parent directory is watched rather than the file itself, since
// many editors save by replacing the file.
func Watch(ctx context.Context, file string, base Config, fn func(*Config)) error {
	file, err := homedir.Expand(file)
	if err != nil {
		return errors.Wrap(err)
	}
	file = filepath.Clean(file)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Errorf("config: creating file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return errors.Errorf("config: watching %q: %w", file, err)
	}
	slog.Debug("watching config file", "file", file)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != file || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg := base
			if err := Open(&cfg, file); err != nil {
				slog.Error("error reloading config file: " + err.Error())
				continue
			}
			if err := cfg.Validate(); err != nil {
				slog.Error("error reloading config file: " + err.Error())
				continue
			}
			slog.Info("reloaded config file", "file", file)
			fn(&cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config file watcher error: " + err.Error())
		}
	}
}
