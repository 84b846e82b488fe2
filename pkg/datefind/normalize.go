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

package datefind

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultFormat renders dates as YYYY.MM.DD.
const DefaultFormat = "%Y.%m.%d"

// ReplaceStrategy selects how a normalizer puts formatted dates back into
// the text.
type ReplaceStrategy uint8

const (
	// ReplaceFirst substitutes the first literal occurrence of each match's
	// text in the progressively rewritten string, in acceptance order. If
	// the same characters appear earlier for unrelated reasons, that earlier
	// occurrence is the one rewritten.
	ReplaceFirst ReplaceStrategy = iota
	// ReplaceOffsets rewrites exactly the matched spans.
	ReplaceOffsets
)

// ParseReplaceStrategy parses "first" or "offset". Empty means ReplaceFirst.
func ParseReplaceStrategy(s string) (ReplaceStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first":
		return ReplaceFirst, nil
	case "offset", "offsets":
		return ReplaceOffsets, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
	}
}

func (r ReplaceStrategy) String() string {
	switch r {
	case ReplaceFirst:
		return "first"
	case ReplaceOffsets:
		return "offset"
	default:
		return fmt.Sprintf("ReplaceStrategy(%d)", uint8(r))
	}
}

// Normalizer rewrites every date a matcher finds into one format.
type Normalizer struct {
	matcher  *Matcher
	strategy ReplaceStrategy
}

// NewNormalizer returns a normalizer backed by m.
func NewNormalizer(m *Matcher, strategy ReplaceStrategy) *Normalizer {
	return &Normalizer{matcher: m, strategy: strategy}
}

// Rewrite scans text and replaces each accepted match with its date in
// format. Text without dates comes back unchanged.
func (n *Normalizer) Rewrite(text, format string) string {
	return n.Apply(text, n.matcher.FindDates(text), format)
}

// Apply rewrites text using matches from an earlier scan of the same text.
func (n *Normalizer) Apply(text string, matches []Match, format string) string {
	if format == "" {
		format = DefaultFormat
	}
	if len(matches) == 0 {
		return text
	}

	if n.strategy == ReplaceOffsets {
		return replaceSpans(text, matches, format)
	}

	for _, m := range matches {
		text = strings.Replace(text, m.Text, m.Date.Format(format), 1)
	}
	return text
}

// replaceSpans splices formatted dates over the exact spans. Spans are rune
// offsets and never overlap.
func replaceSpans(text string, matches []Match, format string) string {
	ordered := slices.Clone(matches)
	slices.SortFunc(ordered, func(a, b Match) int {
		return a.Span.Start - b.Span.Start
	})

	runes := []rune(text)
	var sb strings.Builder
	sb.Grow(len(text))

	pos := 0
	for _, m := range ordered {
		if m.Span.Start < pos || m.Span.End > len(runes) {
			continue
		}
		sb.WriteString(string(runes[pos:m.Span.Start]))
		sb.WriteString(m.Date.Format(format))
		pos = m.Span.End
	}
	sb.WriteString(string(runes[pos:]))

	return sb.String()
}

// NormalizeDates rewrites text with the legacy first-occurrence strategy.
// An empty format means DefaultFormat.
func (m *Matcher) NormalizeDates(text, format string) string {
	return NewNormalizer(m, ReplaceFirst).Rewrite(text, format)
}
