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

// Package batch scans many documents concurrently with one shared matcher.
package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZaparooProject/datefind/pkg/datefind"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// DefaultLimit caps concurrent scans when the caller passes a limit <= 0.
const DefaultLimit = 4

// ErrNoMatcher is returned when a scan is started without a matcher.
var ErrNoMatcher = errors.New("matcher is nil")

// Document is an in-memory text to scan. Name is only used for reporting.
type Document struct {
	Name string
	Text string
}

// FileResult is the outcome of scanning one document.
type FileResult struct {
	Source string
	Text   string
	Result datefind.Result
}

// ScanTexts scans every document with m, at most limit at a time. Results
// are returned in input order.
func ScanTexts(
	ctx context.Context,
	m *datefind.Matcher,
	docs []Document,
	limit int,
) ([]FileResult, error) {
	return scanAll(ctx, m, len(docs), limit, func(_ context.Context, i int) (string, string, error) {
		return docs[i].Name, docs[i].Text, nil
	})
}

// ScanFiles reads each path from fs and scans it with m, at most limit at a
// time. Results are returned in input order. The first read error cancels
// the remaining files and is returned.
func ScanFiles(
	ctx context.Context,
	fs afero.Fs,
	m *datefind.Matcher,
	paths []string,
	limit int,
) ([]FileResult, error) {
	return scanAll(ctx, m, len(paths), limit, func(_ context.Context, i int) (string, string, error) {
		data, err := afero.ReadFile(fs, paths[i])
		if err != nil {
			return "", "", fmt.Errorf("failed to read %s: %w", paths[i], err)
		}
		return paths[i], string(data), nil
	})
}

type loadFunc func(ctx context.Context, i int) (source, text string, err error)

func scanAll(
	ctx context.Context,
	m *datefind.Matcher,
	n int,
	limit int,
	load loadFunc,
) ([]FileResult, error) {
	if m == nil {
		return nil, ErrNoMatcher
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	results := make([]FileResult, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range n {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err //nolint:wrapcheck // context errors are returned as-is
			}

			source, text, err := load(gctx, i)
			if err != nil {
				return err
			}

			res := m.Scan(text)
			log.Debug().
				Str("source", source).
				Int("matches", len(res.Matches)).
				Int("rejected", len(res.Rejected)).
				Msg("scanned document")

			results[i] = FileResult{Source: source, Text: text, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch scan failed: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch scan cancelled: %w", err)
	}
	return results, nil
}
