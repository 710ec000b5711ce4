// ScummBatch
// Copyright (c) 2026 The ScummBatch Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of ScummBatch.
//
// ScummBatch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ScummBatch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ScummBatch.  If not, see <http://www.gnu.org/licenses/>.

package config

// DefaultReportEndpoint is where diagnostic reports are sent.
const DefaultReportEndpoint = "https://errors.scummbatch.org/report"

// defaultReportKey is the public write-only key the collector expects in the
// X-Api-Key header. It grants no read access.
const defaultReportKey = "sb_pub_4f1a9c2e7d8b4036"

// Reporting controls best-effort diagnostic report transmission. Reports
// never block or fail the primary workflow.
type Reporting struct {
	Endpoint string `toml:"endpoint,omitempty"`
	APIKey   string `toml:"api_key,omitempty"`
	Enabled  bool   `toml:"enabled"`
}

func (c *Instance) ReportingEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Reporting.Enabled
}

func (c *Instance) SetReportingEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Reporting.Enabled = enabled
}

func (c *Instance) ReportEndpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Reporting.Endpoint != "" {
		return c.vals.Reporting.Endpoint
	}
	return DefaultReportEndpoint
}

func (c *Instance) SetReportEndpoint(endpoint string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Reporting.Endpoint = endpoint
}

func (c *Instance) ReportAPIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Reporting.APIKey != "" {
		return c.vals.Reporting.APIKey
	}
	return defaultReportKey
}

func (c *Instance) SetReportAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Reporting.APIKey = key
}
