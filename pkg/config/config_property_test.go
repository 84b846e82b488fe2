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

package config

import (
	"testing"
	"time"

	"github.com/ZaparooProject/datefind/pkg/datefind"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestPropertySaveLoadRoundTrip checks any valid settings survive a save and
// reload unchanged.
func TestPropertySaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		fs := afero.NewMemMapFs()
		cfg, err := NewConfig(fs, testDir, BaseDefaults)
		require.NoError(rt, err)

		cfg.SetMode(rapid.SampledFrom([]datefind.Mode{datefind.ModeUS, datefind.ModeEU}).Draw(rt, "mode"))
		cfg.SetNormalizeFormat(rapid.SampledFrom([]string{
			"%Y.%m.%d", "%d/%m/%Y", "%B %-d, %Y", "%F",
		}).Draw(rt, "format"))
		cfg.SetReplaceStrategy(rapid.SampledFrom([]datefind.ReplaceStrategy{
			datefind.ReplaceFirst, datefind.ReplaceOffsets,
		}).Draw(rt, "replace"))
		cfg.SetOutputFormat(rapid.SampledFrom([]string{
			OutputText, OutputJSON, OutputCSV, OutputYAML,
		}).Draw(rt, "output"))
		cfg.SetColor(rapid.Bool().Draw(rt, "color"))
		cfg.SetTimezone(rapid.SampledFrom([]string{
			"", "UTC", "Europe/London", "America/Chicago", "Asia/Tokyo",
		}).Draw(rt, "tz"))
		cfg.SetWindow(time.Duration(rapid.IntRange(0, 96).Draw(rt, "hours")) * time.Hour)
		cfg.SetDebugLogging(rapid.Bool().Draw(rt, "debug"))

		require.NoError(rt, cfg.Save())

		reloaded, err := NewConfig(fs, testDir, BaseDefaults)
		require.NoError(rt, err)
		require.Equal(rt, cfg.Values(), reloaded.Values())
		require.Equal(rt, cfg.Window(), reloaded.Window())
		require.Equal(rt, cfg.Mode(), reloaded.Mode())
	})
}
