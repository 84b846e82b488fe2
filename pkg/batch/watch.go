// Zaparoo Datefind
// Copyright (c) 2025 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo Datefind.
//
// Zaparoo Datefind is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo Datefind is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo Datefind.  If not, see <http://www.gnu.org/licenses/>.

package batch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ZaparooProject/datefind/pkg/datefind"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Watch rescans each path whenever it is written or recreated and passes the
// result to fn, until ctx is done. Parent directories are watched so files
// replaced by editors are still picked up. Events come from the host
// filesystem, so fs must see the same files, normally afero.NewOsFs.
func Watch(
	ctx context.Context,
	fs afero.Fs,
	m *datefind.Matcher,
	paths []string,
	fn func(FileResult),
) error {
	if m == nil {
		return ErrNoMatcher
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			log.Warn().Err(err).Msg("error closing file watcher")
		}
	}()

	wanted := make(map[string]string, len(paths))
	dirs := make(map[string]struct{})
	for _, p := range paths {
		wanted[filepath.Clean(p)] = p
		dirs[filepath.Dir(filepath.Clean(p))] = struct{}{}
	}
	for dir := range dirs {
		log.Debug().Msgf("adding watcher for directory: %s", dir)
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			source, ok := wanted[filepath.Clean(event.Name)]
			if !ok || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}

			data, err := afero.ReadFile(fs, source)
			if err != nil {
				log.Warn().Err(err).Str("source", source).Msg("failed to reread watched file")
				continue
			}
			text := string(data)
			fn(FileResult{Source: source, Text: text, Result: m.Scan(text)})
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Msgf("error in watcher: %s", watchErr)
		}
	}
}
