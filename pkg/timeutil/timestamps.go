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

package timeutil

import (
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"
)

// Kind tags the shape of a sequence so it survives formatting.
type Kind uint8

const (
	// List is an ordered sequence of any length.
	List Kind = iota
	// Pair is a fixed two-item sequence, such as a TimeRange window.
	Pair
)

func (k Kind) String() string {
	switch k {
	case List:
		return "list"
	case Pair:
		return "pair"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Seq is an ordered sequence tagged with its kind.
type Seq[T any] struct {
	Items []T
	Kind  Kind
}

// Timed is anything with a point in time, such as datefind.Date.
type Timed interface {
	Time() time.Time
}

// Instant adapts a time.Time to Timed.
type Instant time.Time

// Time returns the wrapped time.
func (i Instant) Time() time.Time {
	return time.Time(i)
}

// Timestamps formats every item with a strftime-style format and returns a
// sequence of the same kind. An empty format means DefaultTimestampFormat.
func Timestamps[T Timed](kind Kind, items []T, format string) (Seq[string], error) {
	if kind == Pair && len(items) != 2 {
		return Seq[string]{}, fmt.Errorf("%w: got %d", ErrPairLength, len(items))
	}
	if format == "" {
		format = DefaultTimestampFormat
	}

	out := make([]string, len(items))
	for i, item := range items {
		out[i] = strftime.Format(format, item.Time())
	}
	return Seq[string]{Kind: kind, Items: out}, nil
}
