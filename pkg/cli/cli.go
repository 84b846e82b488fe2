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

// Package cli implements the datefind command line.
package cli

import (
	"flag"
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Flags struct {
	set       *flag.FlagSet
	Mode      *string
	Normalize *bool
	Format    *string
	Output    *string
	Replace   *string
	Timezone  *string
	Window    *string
	Now       *string
	Files     *bool
	Watch     *bool
	Config    *string
	Verbose   *bool
	NoColor   *bool
	Version   *bool
}

// SetupFlags defines every datefind flag on a new flag set named name.
func SetupFlags(name string, stderr io.Writer) *Flags {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	set.SetOutput(stderr)

	f := &Flags{
		set: set,
		Mode: set.String(
			"mode",
			"",
			"locale mode: us (month first) or eu (day first)",
		),
		Normalize: set.Bool(
			"normalize",
			false,
			"print the text with every date rewritten instead of listing matches",
		),
		Format: set.String(
			"format",
			"",
			"strftime format for rewritten and listed dates",
		),
		Output: set.String(
			"output",
			"",
			"match listing format: text, json, csv or yaml",
		),
		Replace: set.String(
			"replace",
			"",
			"normalize strategy: first (literal substitution) or offset",
		),
		Timezone: set.String(
			"tz",
			"",
			"IANA zone dates are local to, adds a UTC column",
		),
		Window: set.String(
			"window",
			"",
			"duration of the window reported around each date, e.g. 48h",
		),
		Now: set.String(
			"now",
			"",
			"reference time for dates without a year, e.g. 2024-06-15T00:00:00",
		),
		Files: set.Bool(
			"files",
			false,
			"treat arguments as file paths to scan",
		),
		Watch: set.Bool(
			"watch",
			false,
			"with -files, keep running and rescan files when they change",
		),
		Config: set.String(
			"config",
			"",
			"directory holding config.toml",
		),
		Verbose: set.Bool(
			"verbose",
			false,
			"log debug output to stderr",
		),
		NoColor: set.Bool(
			"no-color",
			false,
			"disable match highlighting",
		),
		Version: set.Bool(
			"version",
			false,
			"print version and exit",
		),
	}

	set.Usage = func() {
		_, _ = fmt.Fprintf(set.Output(), "Usage: %s [flags] <text...>\n", name)
		_, _ = fmt.Fprintf(set.Output(), "       %s -files [flags] <path...>\n\n", name)
		set.PrintDefaults()
	}

	return f
}

// Parse reads args into the flag values.
func (f *Flags) Parse(args []string) error {
	//nolint:wrapcheck // flag errors are already printed with usage
	return f.set.Parse(args)
}

// Args returns the positional arguments left after parsing.
func (f *Flags) Args() []string {
	return f.set.Args()
}

// Usage prints the usage text to the flag set's output.
func (f *Flags) Usage() {
	f.set.Usage()
}

func (f *Flags) isFlagPassed(name string) bool {
	found := false
	f.set.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}
