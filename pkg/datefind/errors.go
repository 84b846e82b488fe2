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

import "errors"

var (
	// ErrInvalidDate is returned when a matched day, month and year do not
	// form a real calendar date, such as 31 April.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrUnknownToken means a matched token is missing from the catalog.
	// Patterns are built from the catalog, so seeing this is a bug.
	ErrUnknownToken = errors.New("unknown date token")

	// ErrInvalidMode is returned for a mode string other than "us" or "eu".
	ErrInvalidMode = errors.New("invalid mode")

	// ErrInvalidStrategy is returned for an unknown replace strategy name.
	ErrInvalidStrategy = errors.New("invalid replace strategy")
)
