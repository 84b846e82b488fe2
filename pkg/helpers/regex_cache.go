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

package helpers

import (
	"fmt"

	"github.com/ZaparooProject/datefind/pkg/helpers/syncutil"
	"github.com/dlclark/regexp2"
)

// RegexCache provides thread-safe caching of compiled regexp2 patterns. The
// date patterns are alternations over every catalog token, so compiling them
// is far more expensive than matching; matchers built for the same mode share
// the compiled objects. A compiled *regexp2.Regexp is safe for concurrent use.
type RegexCache struct {
	cache map[cacheKey]*regexp2.Regexp
	mu    syncutil.RWMutex
}

type cacheKey struct {
	pattern string
	opts    regexp2.RegexOptions
}

// GlobalRegexCache is the singleton instance used throughout the application
var GlobalRegexCache = NewRegexCache()

// NewRegexCache creates a new RegexCache instance
func NewRegexCache() *RegexCache {
	return &RegexCache{
		cache: make(map[cacheKey]*regexp2.Regexp),
	}
}

// MustCompile compiles a pattern and caches it for future use.
// Panics if the pattern cannot be compiled (same behavior as regexp2.MustCompile).
func (rc *RegexCache) MustCompile(pattern string, opts regexp2.RegexOptions) *regexp2.Regexp {
	re, err := rc.Compile(pattern, opts)
	if err != nil {
		panic(err)
	}
	return re
}

// Compile compiles a pattern and caches it for future use.
// If the pattern is already cached, returns the cached version.
func (rc *RegexCache) Compile(pattern string, opts regexp2.RegexOptions) (*regexp2.Regexp, error) {
	key := cacheKey{pattern: pattern, opts: opts}

	// Fast path: try read lock first
	rc.mu.RLock()
	if re, exists := rc.cache[key]; exists {
		rc.mu.RUnlock()
		return re, nil
	}
	rc.mu.RUnlock()

	// Slow path: compile and cache with write lock
	rc.mu.Lock()
	defer rc.mu.Unlock()

	// Double-check pattern wasn't added while waiting for lock
	if re, exists := rc.cache[key]; exists {
		return re, nil
	}

	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to compile regex pattern %q: %w", pattern, err)
	}

	rc.cache[key] = re
	return re, nil
}

// Clear removes all cached patterns (useful for testing or memory management)
func (rc *RegexCache) Clear() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.cache = make(map[cacheKey]*regexp2.Regexp)
}

// Size returns the number of cached patterns
func (rc *RegexCache) Size() int {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return len(rc.cache)
}

// CachedCompile compiles through the global cache.
func CachedCompile(pattern string, opts regexp2.RegexOptions) (*regexp2.Regexp, error) {
	return GlobalRegexCache.Compile(pattern, opts)
}
