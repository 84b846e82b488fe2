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
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// monthNames is the closed list every month token is derived from.
var monthNames = [12]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// irregularOrdinals are the day tokens whose suffix is not "th".
var irregularOrdinals = []string{"1st", "2nd", "3rd", "21st", "22nd", "23rd", "31st"}

// ordinalSuffixes are stripped from day tokens before parsing.
var ordinalSuffixes = []string{"st", "nd", "rd", "th"}

const (
	maxDay = 31

	// numericMonthTokens is the number of trailing month tokens that are
	// purely numeric ("1".."12" followed by "01".."12"). The secondary
	// pattern drops them so numeric-only dates are claimed by one pattern.
	numericMonthTokens = 24
)

// Catalog holds every recognised day and month spelling along with the
// lookup tables that map them back to numbers. Token order is significant:
// patterns are built as alternations in catalog order, and the regex engine
// prefers earlier alternatives.
type Catalog struct {
	dayNumbers   map[string]int
	monthNumbers map[string]time.Month
	days         []string
	months       []string
}

// NewCatalog builds the token catalog. It is deterministic and cannot fail.
func NewCatalog() *Catalog {
	c := &Catalog{
		days:         dayTokens(),
		months:       monthTokens(),
		dayNumbers:   make(map[string]int, 4*maxDay),
		monthNumbers: make(map[string]time.Month, 8*len(monthNames)),
	}

	for _, tok := range c.days {
		n, err := parseDayToken(tok)
		if err != nil {
			// every generated token is well formed
			panic(fmt.Sprintf("datefind: bad generated day token %q: %v", tok, err))
		}
		c.dayNumbers[tok] = n
	}

	upper := cases.Upper(language.English)
	title := cases.Title(language.English)
	for i, name := range monthNames {
		month := time.Month(i + 1)
		abbr := name[:3]
		for _, tok := range []string{
			name, upper.String(name), title.String(name),
			abbr, upper.String(abbr), title.String(abbr),
			strconv.Itoa(i + 1), fmt.Sprintf("%02d", i+1),
		} {
			c.monthNumbers[tok] = month
		}
	}

	return c
}

// dayTokens renders days 1-31 as zero-padded, "th"-suffixed, irregular
// ordinals and finally plain numbers, in that order.
func dayTokens() []string {
	toks := make([]string, 0, 3*maxDay+len(irregularOrdinals))
	for d := 1; d <= maxDay; d++ {
		toks = append(toks, fmt.Sprintf("%02d", d))
	}
	for d := 1; d <= maxDay; d++ {
		toks = append(toks, fmt.Sprintf("%dth", d))
	}
	toks = append(toks, irregularOrdinals...)
	for d := 1; d <= maxDay; d++ {
		toks = append(toks, strconv.Itoa(d))
	}
	return toks
}

// monthTokens renders the eight spellings of every month, grouped by
// rendering rather than by month. The two numeric groups come last.
func monthTokens() []string {
	upper := cases.Upper(language.English)
	title := cases.Title(language.English)

	renderings := []func(i int, name string) string{
		func(_ int, name string) string { return name },
		func(_ int, name string) string { return upper.String(name) },
		func(_ int, name string) string { return title.String(name) },
		func(_ int, name string) string { return name[:3] },
		func(_ int, name string) string { return upper.String(name[:3]) },
		func(_ int, name string) string { return title.String(name[:3]) },
		func(i int, _ string) string { return strconv.Itoa(i + 1) },
		func(i int, _ string) string { return fmt.Sprintf("%02d", i+1) },
	}

	toks := make([]string, 0, len(renderings)*len(monthNames))
	for _, render := range renderings {
		for i, name := range monthNames {
			toks = append(toks, render(i, name))
		}
	}
	return toks
}

// parseDayToken strips an ordinal suffix and leading zeros, then parses
// what is left.
func parseDayToken(tok string) (int, error) {
	s := tok
	for _, suffix := range ordinalSuffixes {
		if trimmed, ok := strings.CutSuffix(s, suffix); ok {
			s = trimmed
			break
		}
	}
	s = strings.TrimLeft(s, "0")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: day %q", ErrUnknownToken, tok)
	}
	return n, nil
}

// DayTokens returns a copy of the day tokens in pattern order.
func (c *Catalog) DayTokens() []string {
	return append([]string(nil), c.days...)
}

// MonthTokens returns a copy of all month tokens in pattern order.
func (c *Catalog) MonthTokens() []string {
	return append([]string(nil), c.months...)
}

// NamedMonthTokens returns the month tokens without the numeric renderings.
func (c *Catalog) NamedMonthTokens() []string {
	return append([]string(nil), c.months[:len(c.months)-numericMonthTokens]...)
}

// Day maps a day token to its day of month.
func (c *Catalog) Day(tok string) (int, error) {
	n, ok := c.dayNumbers[tok]
	if !ok {
		return 0, fmt.Errorf("%w: day %q", ErrUnknownToken, tok)
	}
	return n, nil
}

// Month maps a month token to its month.
func (c *Catalog) Month(tok string) (time.Month, error) {
	m, ok := c.monthNumbers[tok]
	if !ok {
		return 0, fmt.Errorf("%w: month %q", ErrUnknownToken, tok)
	}
	return m, nil
}
