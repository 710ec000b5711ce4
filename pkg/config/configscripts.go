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

import (
	"runtime"
	"strings"
)

// Scripts controls the generated launcher scripts. The defaults reproduce
// the classic output: one .bat per game folder with --auto-detect and
// --fullscreen enabled.
type Scripts struct {
	Extension  string   `toml:"extension,omitempty"`
	ExtraArgs  []string `toml:"extra_args,omitempty,multiline"`
	AutoDetect bool     `toml:"auto_detect"`
	Fullscreen bool     `toml:"fullscreen"`
}

// ScriptExtension returns the launcher script file extension without a
// leading dot. Defaults to "bat" on Windows and "sh" elsewhere.
func (c *Instance) ScriptExtension() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ext := strings.TrimPrefix(c.vals.Scripts.Extension, ".")
	if ext != "" {
		return ext
	}
	if runtime.GOOS == "windows" {
		return "bat"
	}
	return "sh"
}

func (c *Instance) SetScriptExtension(ext string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Scripts.Extension = ext
}

func (c *Instance) ScriptAutoDetect() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Scripts.AutoDetect
}

func (c *Instance) ScriptFullscreen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Scripts.Fullscreen
}

func (c *Instance) ScriptExtraArgs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	args := make([]string, len(c.vals.Scripts.ExtraArgs))
	copy(args, c.vals.Scripts.ExtraArgs)
	return args
}
