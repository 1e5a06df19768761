/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"dirpx.dev/namefx/apis"
)

// Watch reloads the profile file at path each time it is written or
// replaced and hands the result to apply. It blocks until ctx is done.
//
// The parent directory is watched rather than the file itself so that
// editors saving through a rename are still observed. A file that fails to
// load is logged and skipped; the previously applied profiles stay in
// effect. A nil logger uses slog.Default.
func Watch(ctx context.Context, path string, apply func([]apis.Config) error, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve config file %s: %w", path, err)
	}
	dir, err := filepath.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		return fmt.Errorf("failed to resolve config file %s: %w", path, err)
	}
	target := filepath.Join(dir, filepath.Base(abs))

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("failed to watch config file %s: %w", path, err)
	}
	logger.Debug("watching profiles", slog.String("path", target))

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfgs, err := LoadFile(target)
			if err != nil {
				logger.Warn("profile reload failed", slog.String("path", target), slog.Any("error", err))
				continue
			}
			if err := apply(cfgs); err != nil {
				logger.Warn("profile apply failed", slog.String("path", target), slog.Any("error", err))
				continue
			}
			logger.Info("profiles reloaded", slog.String("path", target), slog.Int("count", len(cfgs)))

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error", slog.Any("error", err))

		case <-ctx.Done():
			return nil
		}
	}
}
