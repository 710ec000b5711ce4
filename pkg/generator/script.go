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

package generator

import (
	"errors"
	"strings"

	"github.com/ScummBatchProject/scummbatch-core/pkg/config"
)

// ErrUnquotablePath is returned when a path contains a double quote, which
// cannot be represented in the generated script line.
var ErrUnquotablePath = errors.New("path contains a double quote character")

const (
	flagPath       = "-p"
	flagAutoDetect = "--auto-detect"
	flagFullscreen = "--fullscreen"
)

// ScriptOptions controls the flags appended to a launcher line. The zero
// value plus AutoDetect and Fullscreen reproduces the classic output.
type ScriptOptions struct {
	ExtraArgs  []string
	AutoDetect bool
	Fullscreen bool
}

func scriptOptions(cfg *config.Instance) ScriptOptions {
	return ScriptOptions{
		AutoDetect: cfg.ScriptAutoDetect(),
		Fullscreen: cfg.ScriptFullscreen(),
		ExtraArgs:  cfg.ScriptExtraArgs(),
	}
}

// ComposeLine builds the single newline-terminated launcher line:
//
//	"<exePath>" -p "<gamePath>" --auto-detect --fullscreen
//
// Paths are wrapped in double quotes verbatim. Paths that themselves contain
// a double quote are rejected rather than written corrupted.
func ComposeLine(exePath, gamePath string, opts ScriptOptions) (string, error) {
	if strings.ContainsRune(exePath, '"') || strings.ContainsRune(gamePath, '"') {
		return "", ErrUnquotablePath
	}

	parts := []string{quote(exePath), flagPath, quote(gamePath)}
	if opts.AutoDetect {
		parts = append(parts, flagAutoDetect)
	}
	if opts.Fullscreen {
		parts = append(parts, flagFullscreen)
	}
	parts = append(parts, opts.ExtraArgs...)

	return strings.Join(parts, " ") + "\n", nil
}

func quote(s string) string {
	return `"` + s + `"`
}
