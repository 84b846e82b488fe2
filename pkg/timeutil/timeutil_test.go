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

package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		want    time.Time
		name    string
		in      string
		format  string
		wantErr bool
	}{
		{
			name: "default format",
			in:   "2016-08-08 13:14:15",
			want: time.Date(2016, 8, 8, 13, 14, 15, 0, time.UTC),
		},
		{
			name: "default format accepts T separator",
			in:   "2016-08-08T13:14:15",
			want: time.Date(2016, 8, 8, 13, 14, 15, 0, time.UTC),
		},
		{
			name: "default format ignores trailing fraction and zone",
			in:   "2016-08-08T13:14:15.123456+02:00",
			want: time.Date(2016, 8, 8, 13, 14, 15, 0, time.UTC),
		},
		{
			name:   "explicit format",
			in:     "08/08/2016",
			format: "%d/%m/%Y",
			want:   time.Date(2016, 8, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			in:      "yesterday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ToTime(tt.in, tt.format)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestToUTC(t *testing.T) {
	t.Parallel()

	wall := time.Date(2016, 7, 7, 12, 0, 0, 0, time.UTC)

	got, err := ToUTC(wall, "Europe/Berlin")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2016, 7, 7, 10, 0, 0, 0, time.UTC), got)

	got, err = ToUTC(wall, "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2016, 7, 7, 16, 0, 0, 0, time.UTC), got)

	got, err = ToUTC(wall, "UTC")
	require.NoError(t, err)
	assert.Equal(t, wall, got)

	_, err = ToUTC(wall, "Mars/Olympus_Mons")
	require.Error(t, err)
}

func TestTimeRange(t *testing.T) {
	t.Parallel()

	middle := time.Date(2016, 1, 1, 12, 0, 0, 0, time.UTC)

	from, to := TimeRange(middle, 24*time.Hour)
	assert.Equal(t, time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2016, 1, 2, 0, 0, 0, 0, time.UTC), to)

	from, to = TimeRange(middle, 0)
	assert.Equal(t, middle, from)
	assert.Equal(t, middle, to)
}
