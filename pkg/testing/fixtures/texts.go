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

// Package fixtures holds shared sample texts and clocks for tests.
package fixtures

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Now is the reference time used by NewFakeClock.
var Now = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

// NewFakeClock returns a fake clock stopped at Now.
func NewFakeClock() *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(Now)
}

// Document is a sample text with the dates a US-mode scan should accept,
// formatted as YYYY-MM-DD, in acceptance order.
type Document struct {
	Path  string
	Text  string
	Dates []string
}

// Notes is a meeting note with a mix of spellings and one yearless date.
func Notes() Document {
	return Document{
		Path:  "/docs/notes.txt",
		Text:  "Kickoff was 03/14/2023 then review on 1st April and launch Sep 30 2023",
		Dates: []string{"2023-03-14", "2023-09-30", "2024-04-01"},
	}
}

// Invoice has two digit years and an impossible date.
func Invoice() Document {
	return Document{
		Path:  "/docs/invoice.txt",
		Text:  "Issued 7/1/24 due Feb 30 2024 and paid 7/15/24",
		Dates: []string{"2024-07-01", "2024-07-15"},
	}
}

// Plain has no dates at all.
func Plain() Document {
	return Document{
		Path:  "/docs/plain.txt",
		Text:  "Nothing to see here, version 1.2.3 released",
		Dates: []string{},
	}
}

// Documents returns every sample document.
func Documents() []Document {
	return []Document{Notes(), Invoice(), Plain()}
}
