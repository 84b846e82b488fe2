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

import "time"

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputCSV  = "csv"
	OutputYAML = "yaml"
)

type Output struct {
	Color    *bool  `toml:"color,omitempty"`
	Format   string `toml:"format" validate:"omitempty,oneof=text json csv yaml"`
	Timezone string `toml:"timezone,omitempty" validate:"omitempty,timezone"`
	Window   string `toml:"window,omitempty" validate:"omitempty,duration"`
}

// OutputFormat returns the result rendering, defaulting to text.
func (c *Instance) OutputFormat() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Output.Format == "" {
		return OutputText
	}
	return c.vals.Output.Format
}

func (c *Instance) SetOutputFormat(format string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Output.Format = format
}

// Color returns whether text output highlights matches. Unset means true.
func (c *Instance) Color() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Output.Color == nil {
		return true
	}
	return *c.vals.Output.Color
}

func (c *Instance) SetColor(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Output.Color = &enabled
}

// Timezone returns the IANA zone matched dates are converted from, or "".
func (c *Instance) Timezone() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Output.Timezone
}

func (c *Instance) SetTimezone(zone string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Output.Timezone = zone
}

// Window returns the span reported around each date, or 0 for none.
func (c *Instance) Window() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Output.Window == "" {
		return 0
	}
	d, err := time.ParseDuration(c.vals.Output.Window)
	if err != nil {
		return 0
	}
	return d
}

func (c *Instance) SetWindow(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d <= 0 {
		c.vals.Output.Window = ""
		return
	}
	c.vals.Output.Window = d.String()
}
