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

// Package output renders scan results as text, JSON, CSV or YAML.
package output

import (
	"errors"
	"fmt"
	"time"

	"github.com/ZaparooProject/datefind/pkg/datefind"
	"github.com/ZaparooProject/datefind/pkg/timeutil"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned by Write for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Options controls how matches are turned into records and rendered.
type Options struct {
	// DateFormat is the strftime format for the date column.
	DateFormat string
	// Timezone, if set, adds the UTC instant of each date's midnight in
	// that zone.
	Timezone string
	// Window, if positive, adds a from/to window centred on each date.
	Window time.Duration
	// Color enables match highlighting in text output.
	Color bool
}

// Record is one matched date, flattened for rendering.
type Record struct {
	Source string `csv:"source" json:"source,omitempty" yaml:"source,omitempty"`
	Text   string `csv:"text"   json:"text"             yaml:"text"`
	Date   string `csv:"date"   json:"date"             yaml:"date"`
	UTC    string `csv:"utc"    json:"utc,omitempty"    yaml:"utc,omitempty"`
	From   string `csv:"from"   json:"from,omitempty"   yaml:"from,omitempty"`
	To     string `csv:"to"     json:"to,omitempty"     yaml:"to,omitempty"`
	Start  int    `csv:"start"  json:"start"            yaml:"start"`
	End    int    `csv:"end"    json:"end"              yaml:"end"`
}

// Records flattens the accepted matches of a scan. Rejected candidates are
// not included.
func Records(source string, res datefind.Result, opts Options) ([]Record, error) {
	dates := make([]datefind.Date, len(res.Matches))
	for i, m := range res.Matches {
		dates[i] = m.Date
	}

	format := opts.DateFormat
	if format == "" {
		format = datefind.DefaultFormat
	}
	formatted, err := timeutil.Timestamps(timeutil.List, dates, format)
	if err != nil {
		return nil, fmt.Errorf("failed to format dates: %w", err)
	}

	records := make([]Record, len(res.Matches))
	for i, m := range res.Matches {
		rec := Record{
			Source: source,
			Start:  m.Span.Start,
			End:    m.Span.End,
			Text:   m.Text,
			Date:   formatted.Items[i],
		}

		instant := m.Date.Time()
		if opts.Timezone != "" {
			utc, err := timeutil.ToUTC(instant, opts.Timezone)
			if err != nil {
				return nil, err //nolint:wrapcheck // already carries the zone
			}
			instant = utc
			rec.UTC = utc.Format(time.RFC3339)
		}

		if opts.Window > 0 {
			from, to := timeutil.TimeRange(instant, opts.Window)
			window, err := timeutil.Timestamps(timeutil.Pair,
				[]timeutil.Instant{timeutil.Instant(from), timeutil.Instant(to)}, "")
			if err != nil {
				return nil, fmt.Errorf("failed to format window: %w", err)
			}
			rec.From, rec.To = window.Items[0], window.Items[1]
		}

		records[i] = rec
	}
	return records, nil
}
