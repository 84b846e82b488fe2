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

// Package datefind locates calendar dates written in everyday conventions
// inside free-form text and rewrites them into one canonical format.
//
// Recognised forms combine a day token ("4", "04", "4th", "31st"), a month
// token ("7", "07", "jul", "JULY", "July", ...) and an optional two or four
// digit year, joined by any single non-digit separator:
//
//	Jan 1st, 2/2/2015, 3/3/15, 04-04-2015, 5 5 2015, 7th July 2016,
//	August 8th, 2016
//
// A Matcher runs two patterns. The ordering preferred by its Mode (month
// first for ModeUS, day first for ModeEU) is tried first over all month
// tokens; the other ordering is tried second over named months only. Spans
// accepted by the first pass are never reread by the second, which is how
// "5/7/2016" becomes May 7 in US mode and 5 July in EU mode.
//
// Yearless dates take the current year from the matcher's clock, and two
// digit years are read as 20xx.
package datefind
