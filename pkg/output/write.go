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

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// Write renders records to w in the named format. For text output, a
// non-empty text is printed first with every record's span highlighted.
func Write(w io.Writer, format string, records []Record, text string, opts Options) error {
	if records == nil {
		records = []Record{}
	}

	switch strings.ToLower(format) {
	case "", FormatText:
		return writeText(w, records, text, opts)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatCSV:
		if err := gocsv.Marshal(&records, w); err != nil {
			return fmt.Errorf("failed to encode csv: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, records []Record, text string, opts Options) error {
	matchColor := color.New(color.FgYellow, color.Bold)
	dateColor := color.New(color.FgGreen)
	if opts.Color {
		matchColor.EnableColor()
		dateColor.EnableColor()
	} else {
		matchColor.DisableColor()
		dateColor.DisableColor()
	}

	if text != "" {
		if _, err := fmt.Fprintln(w, Highlight(text, records, matchColor)); err != nil {
			return fmt.Errorf("failed to write text: %w", err)
		}
	}

	for _, rec := range records {
		line := fmt.Sprintf("%d-%d\t%s\t%s", rec.Start, rec.End, rec.Text, dateColor.Sprint(rec.Date))
		if rec.Source != "" {
			line = rec.Source + ":" + line
		}
		if rec.UTC != "" {
			line += "\tutc=" + rec.UTC
		}
		if rec.From != "" {
			line += "\twindow=" + rec.From + "/" + rec.To
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}

// Highlight wraps every record span of text with c. Spans are rune offsets
// and must not overlap; out of range spans are skipped.
func Highlight(text string, records []Record, c *color.Color) string {
	runes := []rune(text)
	var sb strings.Builder
	last := 0
	for _, rec := range sortedBySpan(records) {
		if rec.Start < last || rec.End > len(runes) || rec.Start > rec.End {
			continue
		}
		sb.WriteString(string(runes[last:rec.Start]))
		sb.WriteString(c.Sprint(string(runes[rec.Start:rec.End])))
		last = rec.End
	}
	sb.WriteString(string(runes[last:]))
	return sb.String()
}

func sortedBySpan(records []Record) []Record {
	out := slices.Clone(records)
	slices.SortFunc(out, func(a, b Record) int {
		return a.Start - b.Start
	})
	return out
}
