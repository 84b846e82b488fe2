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

// Package timeutil holds the small time conversions used around date
// matching: parsing strftime-formatted timestamps, moving a wall-clock time
// into UTC, windows around an instant and formatting sequences of dates.
package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // zone lookups must not depend on the host

	"github.com/ncruces/go-strftime"
)

const (
	// DefaultParseFormat is used by ToTime when no format is given.
	DefaultParseFormat = "%Y-%m-%d %H:%M:%S"
	// DefaultTimestampFormat is used by Timestamps when no format is given.
	DefaultTimestampFormat = "%Y-%m-%dT%H:%M:%S"

	defaultParseLen = 19
)

var (
	// ErrBadFormat is returned for a strftime format Go cannot express.
	ErrBadFormat = errors.New("unsupported time format")
	// ErrPairLength is returned when a Pair sequence does not hold two items.
	ErrPairLength = errors.New("pair must hold exactly two items")
)

// ToTime parses s with a strftime-style format. With an empty format, only
// the first 19 characters are read, a "T" separator is accepted in place of
// the space, and DefaultParseFormat is used.
func ToTime(s, format string) (time.Time, error) {
	if format == "" {
		format = DefaultParseFormat
		if len(s) > defaultParseLen {
			s = s[:defaultParseLen]
		}
		s = strings.ReplaceAll(s, "T", " ")
	}

	layout, err := strftime.Layout(format)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %w", ErrBadFormat, format, err)
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse time %q: %w", s, err)
	}
	return t, nil
}

// ToUTC reads the wall clock of t as a time in zone and returns that instant
// in UTC. The location t carries is ignored.
func ToUTC(t time.Time, zone string) (time.Time, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load time zone %q: %w", zone, err)
	}
	local := time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
	return local.UTC(), nil
}

// TimeRange returns the window of length span centred on middle.
func TimeRange(middle time.Time, span time.Duration) (from, to time.Time) {
	half := span / 2
	return middle.Add(-half), middle.Add(half)
}
