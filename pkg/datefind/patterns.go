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
	"strings"

	"github.com/ZaparooProject/datefind/pkg/helpers"
	"github.com/dlclark/regexp2"
)

// Capture group names shared by both orderings.
const (
	groupDay   = "day"
	groupMonth = "month"
	groupYear  = "year"
)

// Both orderings require whitespace or a string boundary on either side, so a
// date is never found inside a longer token. Separators are any single
// non-digit; month-first dates also accept ", " before the year. Digits are
// spelled [0-9] so only ASCII digits count.
const (
	dayMonthTemplate = `(?<!\S)((?<day>%s)[^0-9](?<month>%s)` +
		`([^0-9](?<year>[0-9][0-9]([0-9][0-9])?))?)(?!\S)`
	monthDayTemplate = `(?<!\S)((?<month>%s)[^0-9](?<day>%s)` +
		`(([^0-9]|,\s)(?<year>[0-9][0-9]([0-9][0-9])?))?)(?!\S)`
)

// Patterns is the compiled pair used by a matcher. Primary runs first and
// wins any span it claims.
type Patterns struct {
	Primary   *regexp2.Regexp
	Secondary *regexp2.Regexp
}

// CompilePatterns builds the primary and secondary patterns for mode. The
// locale-preferred ordering is primary and sees every month token; the other
// ordering is secondary and sees only named months, so purely numeric dates
// are only ever read the locale's way.
func CompilePatterns(c *Catalog, mode Mode) (Patterns, error) {
	days := alternation(c.days)
	all := alternation(c.months)
	named := alternation(c.months[:len(c.months)-numericMonthTokens])

	var primary, secondary string
	switch mode {
	case ModeUS:
		primary = fmt.Sprintf(monthDayTemplate, all, days)
		secondary = fmt.Sprintf(dayMonthTemplate, days, named)
	case ModeEU:
		primary = fmt.Sprintf(dayMonthTemplate, days, all)
		secondary = fmt.Sprintf(monthDayTemplate, named, days)
	default:
		return Patterns{}, fmt.Errorf("%w: %q", ErrInvalidMode, string(mode))
	}

	p, err := helpers.CachedCompile(primary, regexp2.None)
	if err != nil {
		return Patterns{}, fmt.Errorf("primary pattern: %w", err)
	}
	s, err := helpers.CachedCompile(secondary, regexp2.None)
	if err != nil {
		return Patterns{}, fmt.Errorf("secondary pattern: %w", err)
	}

	return Patterns{Primary: p, Secondary: s}, nil
}

// alternation joins tokens in order; earlier tokens are preferred.
func alternation(toks []string) string {
	quoted := make([]string, len(toks))
	for i, tok := range toks {
		quoted[i] = regexp2.Escape(tok)
	}
	return strings.Join(quoted, "|")
}
