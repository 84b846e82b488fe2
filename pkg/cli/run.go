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

package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ZaparooProject/datefind/pkg/batch"
	"github.com/ZaparooProject/datefind/pkg/config"
	"github.com/ZaparooProject/datefind/pkg/datefind"
	"github.com/ZaparooProject/datefind/pkg/helpers"
	"github.com/ZaparooProject/datefind/pkg/output"
	"github.com/ZaparooProject/datefind/pkg/timeutil"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const dateOnlyFormat = "%Y-%m-%d"

// Env is everything Run needs from the outside world.
type Env struct {
	Fs     afero.Fs
	Clock  clockwork.Clock
	Stdout io.Writer
	Stderr io.Writer
	// ConfigDir is used when -config is not given.
	ConfigDir string
	// LogDir enables file logging when set.
	LogDir string
}

// Run executes the command line in args and returns the process exit code.
func Run(ctx context.Context, env Env, args []string) int {
	flags := SetupFlags(config.AppName, env.Stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	if *flags.Version {
		_, _ = fmt.Fprintf(env.Stdout, "%s v%s\n", config.AppName, config.AppVersion)
		return ExitOK
	}

	if len(flags.Args()) == 0 {
		flags.Usage()
		return ExitUsage
	}

	cfg, err := setup(env, flags)
	if err != nil {
		_, _ = fmt.Fprintf(env.Stderr, "Error: %s\n", err)
		return ExitError
	}

	if *flags.Watch && !*flags.Files {
		_, _ = fmt.Fprintln(env.Stderr, "Error: -watch requires -files")
		return ExitUsage
	}

	if err := applyFlags(cfg, flags); err != nil {
		_, _ = fmt.Fprintf(env.Stderr, "Error: %s\n", err)
		return ExitUsage
	}

	if err := scan(ctx, env, cfg, flags); err != nil {
		log.Error().Err(err).Msg("scan failed")
		_, _ = fmt.Fprintf(env.Stderr, "Error: %s\n", err)
		return ExitError
	}
	return ExitOK
}

func setup(env Env, flags *Flags) (*config.Instance, error) {
	dir := *flags.Config
	if dir == "" {
		dir = env.ConfigDir
	}
	if dir == "" {
		dir = config.DefaultDir()
	}

	cfg, err := config.NewConfig(env.Fs, dir, config.BaseDefaults)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if env.LogDir != "" {
		var writers []io.Writer
		if *flags.Verbose {
			writers = []io.Writer{zerolog.ConsoleWriter{Out: env.Stderr}}
		}
		err := helpers.InitLogging(env.LogDir, cfg.DebugLogging() || *flags.Verbose, writers)
		if err != nil {
			return nil, fmt.Errorf("failed to initialise logging: %w", err)
		}
	}

	log.Debug().Str("path", cfg.Path()).Msg("loaded config")
	return cfg, nil
}

// applyFlags overlays every flag that was passed on the loaded config.
func applyFlags(cfg *config.Instance, flags *Flags) error {
	vals := cfg.Values()
	if flags.isFlagPassed("mode") {
		vals.Matcher.Mode = strings.ToLower(*flags.Mode)
	}
	if flags.isFlagPassed("format") {
		vals.Normalize.Format = *flags.Format
	}
	if flags.isFlagPassed("replace") {
		vals.Normalize.Replace = strings.ToLower(*flags.Replace)
	}
	if flags.isFlagPassed("output") {
		vals.Output.Format = strings.ToLower(*flags.Output)
	}
	if flags.isFlagPassed("tz") {
		vals.Output.Timezone = *flags.Timezone
	}
	if flags.isFlagPassed("window") {
		vals.Output.Window = *flags.Window
	}
	if *flags.NoColor {
		noColor := false
		vals.Output.Color = &noColor
	}
	if *flags.Verbose {
		vals.DebugLogging = true
	}
	//nolint:wrapcheck // validation errors list the offending fields
	return cfg.Apply(vals)
}

func scan(ctx context.Context, env Env, cfg *config.Instance, flags *Flags) error {
	clock := env.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if *flags.Now != "" {
		format := ""
		if len(*flags.Now) == len(time.DateOnly) {
			format = dateOnlyFormat
		}
		now, err := timeutil.ToTime(*flags.Now, format)
		if err != nil {
			return fmt.Errorf("invalid -now value: %w", err)
		}
		clock = clockwork.NewFakeClockAt(now)
	}

	m, err := datefind.NewMatcher(cfg.Mode(), datefind.WithClock(clock))
	if err != nil {
		return fmt.Errorf("failed to create matcher: %w", err)
	}

	var results []batch.FileResult
	if *flags.Files {
		results, err = batch.ScanFiles(ctx, env.Fs, m, flags.Args(), 0)
	} else {
		text := strings.Join(flags.Args(), " ")
		results, err = batch.ScanTexts(ctx, m, []batch.Document{{Text: text}}, 1)
	}
	if err != nil {
		return err //nolint:wrapcheck // batch errors carry their own context
	}

	for _, res := range results {
		for _, rej := range res.Result.Rejected {
			log.Info().Err(rej.Err).Str("source", res.Source).
				Int("start", rej.Span.Start).Msg("skipped invalid date")
		}
	}

	write := func(results []batch.FileResult) error {
		if *flags.Normalize {
			return writeNormalized(env.Stdout, m, cfg, results)
		}
		return writeRecords(env.Stdout, cfg, results, *flags.Files)
	}
	if err := write(results); err != nil {
		return err
	}

	if !*flags.Watch {
		return nil
	}
	log.Info().Strs("paths", flags.Args()).Msg("watching files for changes")
	//nolint:wrapcheck // watch errors name the failing path
	return batch.Watch(ctx, env.Fs, m, flags.Args(), func(res batch.FileResult) {
		if err := write([]batch.FileResult{res}); err != nil {
			log.Error().Err(err).Str("source", res.Source).Msg("failed to write rescan")
		}
	})
}

func writeNormalized(
	w io.Writer,
	m *datefind.Matcher,
	cfg *config.Instance,
	results []batch.FileResult,
) error {
	n := datefind.NewNormalizer(m, cfg.ReplaceStrategy())
	for _, res := range results {
		text := n.Apply(res.Text, res.Result.Matches, cfg.NormalizeFormat())
		if _, err := fmt.Fprintln(w, text); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func writeRecords(w io.Writer, cfg *config.Instance, results []batch.FileResult, files bool) error {
	opts := output.Options{
		DateFormat: cfg.NormalizeFormat(),
		Timezone:   cfg.Timezone(),
		Window:     cfg.Window(),
		Color:      cfg.Color(),
	}
	format := cfg.OutputFormat()

	all := make([]output.Record, 0, len(results))
	for _, res := range results {
		records, err := output.Records(res.Source, res.Result, opts)
		if err != nil {
			return fmt.Errorf("failed to build records: %w", err)
		}

		if format != output.FormatText {
			all = append(all, records...)
			continue
		}

		// whole files are not echoed back
		text := res.Text
		if files {
			text = ""
		}
		if err := output.Write(w, format, records, text, opts); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if format == output.FormatText {
		return nil
	}
	if err := output.Write(w, format, all, "", opts); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
