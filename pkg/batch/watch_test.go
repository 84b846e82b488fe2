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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ZaparooProject/datefind/pkg/datefind"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchRescansOnWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(path, []byte("nothing yet"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	results := make(chan FileResult, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, afero.NewOsFs(), newMatcher(t), []string{path}, func(res FileResult) {
			select {
			case results <- res:
			default:
			}
		})
	}()

	want := datefind.Date{Year: 2022, Month: time.November, Day: 5}
	deadline := time.After(10 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()

	var got *FileResult
	for got == nil {
		select {
		case res := <-results:
			assert.Equal(t, path, res.Source)
			if len(res.Result.Matches) > 0 {
				got = &res
			}
		case <-tick.C:
			// the watcher may not be registered yet, keep writing
			require.NoError(t, os.WriteFile(other, []byte("Nov 5 2022"), 0o600))
			require.NoError(t, os.WriteFile(path, []byte("moved to Nov 5 2022"), 0o600))
		case <-deadline:
			cancel()
			t.Fatal("no rescan within deadline")
		}
	}

	require.Len(t, got.Result.Matches, 1)
	assert.Equal(t, want, got.Result.Matches[0].Date)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatchNoMatcher(t *testing.T) {
	t.Parallel()

	err := Watch(context.Background(), afero.NewOsFs(), nil, nil, func(FileResult) {})
	require.ErrorIs(t, err, ErrNoMatcher)
}

func TestWatchMissingDirectory(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "gone", "a.txt")
	err := Watch(context.Background(), afero.NewOsFs(), newMatcher(t), []string{missing}, func(FileResult) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}
