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

package helpers

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogging(t *testing.T) {
	// Note: Cannot use t.Parallel() because InitLogging modifies global log.Logger
	orig := log.Logger
	t.Cleanup(func() { log.Logger = orig })

	t.Run("creates nested log directory", func(t *testing.T) {
		logDir := filepath.Join(t.TempDir(), "logs", "nested")

		err := InitLogging(logDir, false, nil)
		require.NoError(t, err)

		info, err := os.Stat(logDir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		if runtime.GOOS != "windows" {
			assert.Equal(t, os.FileMode(0o750), info.Mode().Perm())
		}
	})

	t.Run("writes to additional writers", func(t *testing.T) {
		var buf bytes.Buffer
		err := InitLogging(t.TempDir(), false, []io.Writer{&buf})
		require.NoError(t, err)

		log.Info().Msg("hello from datefind")
		assert.Contains(t, buf.String(), "hello from datefind")

		log.Debug().Msg("hidden debug line")
		assert.NotContains(t, buf.String(), "hidden debug line")
	})

	t.Run("debug enables debug level", func(t *testing.T) {
		var buf bytes.Buffer
		err := InitLogging(t.TempDir(), true, []io.Writer{&buf})
		require.NoError(t, err)

		assert.Equal(t, zerolog.DebugLevel, log.Logger.GetLevel())
		log.Debug().Msg("visible debug line")
		assert.Contains(t, buf.String(), "visible debug line")
	})

	t.Run("fails on invalid path", func(t *testing.T) {
		err := InitLogging("/proc/invalid\x00path", false, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create log directory")
	})
}
