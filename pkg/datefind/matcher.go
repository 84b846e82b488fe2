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

	"github.com/ZaparooProject/datefind/pkg/helpers"
	"github.com/dlclark/regexp2"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Mode is the locale convention used to read ambiguous numeric dates.
type Mode string

const (
	// ModeUS reads "5/7/2016" as May 7.
	ModeUS Mode = "us"
	// ModeEU reads "5/7/2016" as 5 July.
	ModeEU Mode = "eu"

	DefaultMode = ModeUS
)

// ParseMode parses "us" or "eu", ignoring case and surrounding space. An
// empty string yields DefaultMode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultMode, nil
	case string(ModeUS):
		return ModeUS, nil
	case string(ModeEU):
		return ModeEU, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Span is a half-open [Start, End) interval of character (rune) offsets.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Blocks reports whether an accepted span s rules out candidate c: either c
// starts inside s (end inclusive) or the two intervals intersect at all.
func (s Span) Blocks(c Span) bool {
	if s.Start <= c.Start && c.Start <= s.End {
		return true
	}
	return c.Start < s.End && s.Start < c.End
}

// Len returns the number of characters covered.
func (s Span) Len() int {
	return s.End - s.Start
}

// Match is an accepted date found in a text.
type Match struct {
	Text string `json:"text" yaml:"text"`
	Date Date   `json:"date" yaml:"date"`
	Span Span   `json:"span" yaml:"span"`
}

// Rejection is a candidate that matched a pattern but could not be resolved,
// usually because it names a day the month does not have.
type Rejection struct {
	Err  error
	Text string
	Span Span
}

// Result is the outcome of one scan. Matches are in acceptance order: every
// primary-pattern match comes before any secondary-pattern match.
type Result struct {
	Matches  []Match
	Rejected []Rejection
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithClock sets the clock that yearless dates take their year from.
func WithClock(clock clockwork.Clock) Option {
	return func(m *Matcher) {
		m.clock = clock
	}
}

// Matcher finds dates in text. Its catalog and patterns are read-only after
// construction, so one Matcher can serve concurrent callers; every scan keeps
// its own accumulator.
type Matcher struct {
	clock    clockwork.Clock
	catalog  *Catalog
	patterns Patterns
	mode     Mode
}

// NewMatcher builds a matcher for mode.
func NewMatcher(mode Mode, opts ...Option) (*Matcher, error) {
	m := &Matcher{
		mode:    mode,
		catalog: NewCatalog(),
		clock:   clockwork.NewRealClock(),
	}

	for _, opt := range opts {
		opt(m)
	}

	patterns, err := CompilePatterns(m.catalog, mode)
	if err != nil {
		return nil, err
	}
	m.patterns = patterns

	if now := m.clock.Now(); !helpers.IsClockReliable(now) {
		log.Warn().Msgf("clock reads %s, yearless dates will resolve to %d",
			now.Format("2006-01-02"), now.Year())
	}

	return m, nil
}

// Mode returns the matcher's locale mode.
func (m *Matcher) Mode() Mode {
	return m.mode
}

// Catalog returns the token catalog the patterns were built from.
func (m *Matcher) Catalog() *Catalog {
	return m.catalog
}

// FindDates returns the accepted matches in text. An empty slice means no
// dates were found.
func (m *Matcher) FindDates(text string) []Match {
	return m.Scan(text).Matches
}

// Scan runs the primary pattern over text, then the secondary. A candidate
// that starts inside or overlaps an already accepted span is dropped, so the
// first accepted reading of a span always wins. Candidates that do not form
// a calendar date are reported in Rejected and do not stop the scan.
func (m *Matcher) Scan(text string) Result {
	sc := scan{
		matcher:     m,
		defaultYear: m.clock.Now().Year(),
		result: Result{
			Matches:  []Match{},
			Rejected: []Rejection{},
		},
	}

	sc.run(m.patterns.Primary, text)
	sc.run(m.patterns.Secondary, text)

	return sc.result
}

// scan is the per-call accumulator.
type scan struct {
	matcher     *Matcher
	result      Result
	defaultYear int
}

func (sc *scan) run(re *regexp2.Regexp, text string) {
	match, err := re.FindStringMatch(text)
	for match != nil && err == nil {
		sc.consider(match)
		match, err = re.FindNextMatch(match)
	}
	if err != nil {
		log.Error().Err(err).Msg("date pattern scan aborted")
	}
}

func (sc *scan) consider(match *regexp2.Match) {
	span := Span{Start: match.Index, End: match.Index + match.Length}
	for _, accepted := range sc.result.Matches {
		if accepted.Span.Blocks(span) {
			return
		}
	}

	text := match.String()
	date, err := sc.matcher.resolve(
		groupText(match, groupDay),
		groupText(match, groupMonth),
		groupText(match, groupYear),
		sc.defaultYear,
	)
	if err != nil {
		log.Debug().Err(err).Str("text", text).Int("start", span.Start).
			Msg("skipping date candidate")
		sc.result.Rejected = append(sc.result.Rejected, Rejection{
			Span: span,
			Text: text,
			Err:  err,
		})
		return
	}

	sc.result.Matches = append(sc.result.Matches, Match{
		Span: span,
		Text: text,
		Date: date,
	})
}

// resolve turns captured tokens into a date. An empty year means
// defaultYear; years below 100 are taken as 2000-based.
func (m *Matcher) resolve(dayTok, monthTok, yearTok string, defaultYear int) (Date, error) {
	day, err := m.catalog.Day(dayTok)
	if err != nil {
		return Date{}, err
	}
	month, err := m.catalog.Month(monthTok)
	if err != nil {
		return Date{}, err
	}

	year := defaultYear
	if yearTok != "" {
		year, err = strconv.Atoi(yearTok)
		if err != nil {
			return Date{}, fmt.Errorf("%w: year %q", ErrUnknownToken, yearTok)
		}
		if year < 100 {
			year += 2000
		}
	}

	return NewDate(year, month, day)
}

// groupText returns the text of a named group, or "" if it did not
// participate in the match.
func groupText(match *regexp2.Match, name string) string {
	g := match.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}
