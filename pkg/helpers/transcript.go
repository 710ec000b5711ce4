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

package helpers

import (
	"strings"

	"github.com/ScummBatchProject/scummbatch-core/pkg/helpers/syncutil"
)

// DefaultTranscriptLines is how many recent log lines a Transcript retains.
const DefaultTranscriptLines = 100

// Transcript is an io.Writer that retains the most recent log lines so they
// can be attached to diagnostic reports. Safe for concurrent use.
type Transcript struct {
	lines   []string
	partial string
	max     int
	mu      syncutil.Mutex
}

// NewTranscript creates a Transcript keeping at most maxLines lines. A
// non-positive maxLines falls back to DefaultTranscriptLines.
func NewTranscript(maxLines int) *Transcript {
	if maxLines <= 0 {
		maxLines = DefaultTranscriptLines
	}
	return &Transcript{
		lines: make([]string, 0, maxLines),
		max:   maxLines,
	}
}

// Write appends p to the transcript, splitting on newlines. Incomplete
// trailing lines are buffered until terminated. Never returns an error.
func (t *Transcript) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.partial += string(p)
	for {
		idx := strings.IndexByte(t.partial, '\n')
		if idx < 0 {
			break
		}
		t.appendLine(t.partial[:idx])
		t.partial = t.partial[idx+1:]
	}

	return len(p), nil
}

func (t *Transcript) appendLine(line string) {
	if len(t.lines) >= t.max {
		copy(t.lines, t.lines[1:])
		t.lines = t.lines[:len(t.lines)-1]
	}
	t.lines = append(t.lines, line)
}

// Tail returns the retained log lines, oldest first, joined by newlines.
// Returns an empty string if nothing has been logged.
func (t *Transcript) Tail() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.Join(t.lines, "\n")
}

// Len returns the number of retained complete lines.
func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.lines)
}
