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
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"pgregory.net/rapid"
)

// dateFreeTextGen builds text from letters no month token starts with and no
// digits, so nothing in it can be a date.
func dateFreeTextGen() *rapid.Generator[string] {
	chars := []rune("bcghiklpqtuvwxyzBCGHIKLPQTUVWXYZ .,;:!?-/\n\t")
	return rapid.StringOfN(rapid.SampledFrom(chars), 0, 80, -1)
}

// wordyTextGen joins words that often form or nearly form dates.
func wordyTextGen() *rapid.Generator[string] {
	words := []string{
		"Jan", "JULY", "may", "Sep", "august", "1st", "2nd", "23rd", "4th", "31st",
		"5", "07", "12", "13", "2016", "16", "99", "2/2/2015", "04-04-15", "30",
		"and", "the", ",", "x", "8th,", "5/7",
	}
	seps := []string{" ", " ", " ", "/", "-", ".", ", "}
	return rapid.Custom(func(t *rapid.T) string {
		n := rapid.IntRange(0, 14).Draw(t, "n")
		var sb strings.Builder
		for i := range n {
			if i > 0 {
				sb.WriteString(rapid.SampledFrom(seps).Draw(t, "sep"))
			}
			sb.WriteString(rapid.SampledFrom(words).Draw(t, "word"))
		}
		return sb.String()
	})
}

func propertyMatcher(t *rapid.T, year int) *Matcher {
	mode := rapid.SampledFrom([]Mode{ModeUS, ModeEU}).Draw(t, "mode")
	clock := clockwork.NewFakeClockAt(time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC))
	m, err := NewMatcher(mode, WithClock(clock))
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	return m
}

// TestPropertyDateFreeTextUnchanged verifies text without date tokens yields
// no matches and normalizes to itself.
func TestPropertyDateFreeTextUnchanged(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		m := propertyMatcher(t, 2016)
		text := dateFreeTextGen().Draw(t, "text")

		if got := m.FindDates(text); len(got) != 0 {
			t.Fatalf("found dates in %q: %v", text, got)
		}
		if got := m.NormalizeDates(text, DefaultFormat); got != text {
			t.Fatalf("normalize changed %q → %q", text, got)
		}
	})
}

// TestPropertyMatchesNeverOverlap verifies accepted spans are disjoint and
// line up with the text they claim to cover.
func TestPropertyMatchesNeverOverlap(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		m := propertyMatcher(t, 2016)
		text := wordyTextGen().Draw(t, "text")
		runes := []rune(text)

		matches := m.FindDates(text)
		for i, a := range matches {
			if a.Span.Start < 0 || a.Span.End > len(runes) || a.Span.Len() <= 0 {
				t.Fatalf("span %v out of range for %q", a.Span, text)
			}
			if got := string(runes[a.Span.Start:a.Span.End]); got != a.Text {
				t.Fatalf("span %v covers %q, match text is %q", a.Span, got, a.Text)
			}
			for _, b := range matches[i+1:] {
				if a.Span.Start < b.Span.End && b.Span.Start < a.Span.End {
					t.Fatalf("overlapping matches %v and %v in %q", a, b, text)
				}
			}
		}
	})
}

// TestPropertyPrimaryOrderDecomposes builds a date in the mode's preferred
// order from catalog tokens and checks it is found whole with the right date.
func TestPropertyPrimaryOrderDecomposes(t *testing.T) {
	t.Parallel()
	c := NewCatalog()
	monthToks := c.MonthTokens()

	// days above 28 do not exist in every month
	var dayToks []string
	for _, tok := range c.DayTokens() {
		if n, _ := c.Day(tok); n <= 28 {
			dayToks = append(dayToks, tok)
		}
	}

	rapid.Check(t, func(t *rapid.T) {
		m := propertyMatcher(t, 2016)

		dayTok := rapid.SampledFrom(dayToks).Draw(t, "day")
		day, _ := c.Day(dayTok)
		monthTok := rapid.SampledFrom(monthToks).Draw(t, "month")
		month, _ := c.Month(monthTok)
		sep := rapid.SampledFrom([]string{" ", "/", "-", "."}).Draw(t, "sep")

		var text string
		if m.Mode() == ModeUS {
			text = monthTok + sep + dayTok
		} else {
			text = dayTok + sep + monthTok
		}

		wantYear := 2016
		switch rapid.IntRange(0, 2).Draw(t, "yearKind") {
		case 1:
			yy := rapid.IntRange(0, 99).Draw(t, "yy")
			text += sep + fmt.Sprintf("%02d", yy)
			wantYear = 2000 + yy
		case 2:
			yyyy := rapid.IntRange(1900, 2099).Draw(t, "yyyy")
			text += sep + fmt.Sprintf("%04d", yyyy)
			wantYear = yyyy
		}

		got := m.FindDates(text)
		if len(got) != 1 {
			t.Fatalf("%q (%s): want one match, got %v", text, m.Mode(), got)
		}
		if got[0].Text != text || got[0].Span.Start != 0 {
			t.Fatalf("%q: match %q does not cover the whole text", text, got[0].Text)
		}
		want := Date{Year: wantYear, Month: month, Day: day}
		if got[0].Date != want {
			t.Fatalf("%q: want %v, got %v", text, want, got[0].Date)
		}
	})
}

// TestPropertyTwoDigitYears verifies two digit years always land in 2000-2099.
func TestPropertyTwoDigitYears(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		m := propertyMatcher(t, 2016)
		day := rapid.IntRange(1, 12).Draw(t, "day")
		month := rapid.IntRange(1, 12).Draw(t, "month")
		yy := rapid.IntRange(0, 99).Draw(t, "yy")

		text := fmt.Sprintf("on %d/%d/%02d ok", month, day, yy)
		got := m.FindDates(text)
		if len(got) != 1 {
			t.Fatalf("%q: want one match, got %v", text, got)
		}
		if got[0].Date.Year != 2000+yy {
			t.Fatalf("%q: year %d, want %d", text, got[0].Date.Year, 2000+yy)
		}
	})
}

// TestPropertyMissingYearUsesClock verifies yearless dates take the clock's year.
func TestPropertyMissingYearUsesClock(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		year := rapid.IntRange(2000, 2200).Draw(t, "year")
		m := propertyMatcher(t, year)
		month := rapid.IntRange(0, 11).Draw(t, "month")
		day := rapid.IntRange(1, 28).Draw(t, "day")

		text := fmt.Sprintf("see %s %d please", monthNames[month], day)
		got := m.FindDates(text)
		if len(got) != 1 {
			t.Fatalf("%q: want one match, got %v", text, got)
		}
		if got[0].Date.Year != year {
			t.Fatalf("%q: year %d, want %d", text, got[0].Date.Year, year)
		}
	})
}

// TestPropertyNormalizeIdempotent verifies normalizing twice equals once.
func TestPropertyNormalizeIdempotent(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		m := propertyMatcher(t, 2016)
		text := wordyTextGen().Draw(t, "text")
		strategy := rapid.SampledFrom([]ReplaceStrategy{ReplaceFirst, ReplaceOffsets}).Draw(t, "strategy")
		n := NewNormalizer(m, strategy)

		once := n.Rewrite(text, DefaultFormat)
		if found := m.FindDates(once); len(found) != 0 {
			// canonical dates can sit next to leftovers that still parse;
			// only the canonical form itself must be stable
			return
		}
		if twice := n.Rewrite(once, DefaultFormat); twice != once {
			t.Fatalf("not idempotent: %q → %q → %q", text, once, twice)
		}
	})
}
