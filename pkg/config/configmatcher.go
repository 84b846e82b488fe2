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

package config

import (
	"github.com/ZaparooProject/datefind/pkg/datefind"
)

const (
	ModeUS = string(datefind.ModeUS)
	ModeEU = string(datefind.ModeEU)

	DefaultFormat = datefind.DefaultFormat

	ReplaceFirst  = "first"
	ReplaceOffset = "offset"
)

type Matcher struct {
	Mode string `toml:"mode" validate:"omitempty,oneof=us eu"`
}

type Normalize struct {
	Format  string `toml:"format" validate:"omitempty,strftime"`
	Replace string `toml:"replace" validate:"omitempty,oneof=first offset"`
}

// Mode returns the configured locale mode.
func (c *Instance) Mode() datefind.Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	mode, err := datefind.ParseMode(c.vals.Matcher.Mode)
	if err != nil {
		return datefind.DefaultMode
	}
	return mode
}

func (c *Instance) SetMode(mode datefind.Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Matcher.Mode = string(mode)
}

// NormalizeFormat returns the strftime format dates are rewritten to.
func (c *Instance) NormalizeFormat() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Normalize.Format == "" {
		return DefaultFormat
	}
	return c.vals.Normalize.Format
}

func (c *Instance) SetNormalizeFormat(format string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Normalize.Format = format
}

// ReplaceStrategy returns how rewritten dates are put back into the text.
func (c *Instance) ReplaceStrategy() datefind.ReplaceStrategy {
	c.mu.RLock()
	defer c.mu.RUnlock()
	strategy, err := datefind.ParseReplaceStrategy(c.vals.Normalize.Replace)
	if err != nil {
		return datefind.ReplaceFirst
	}
	return strategy
}

func (c *Instance) SetReplaceStrategy(strategy datefind.ReplaceStrategy) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Normalize.Replace = strategy.String()
}
