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

import "fmt"

// Status strings shown to the user. The current status is replaced on each
// transition, not appended.
const (
	StatusReady              = "Ready"
	StatusExecutableSelected = "ScummVM executable selected."
	StatusFolderSelected     = "Game folder selected."
	StatusCreating           = "Creating batch files..."
)

// StatusCreated returns the terminal status line for a successful run.
func StatusCreated(count int) string {
	return fmt.Sprintf("%d batch files created successfully.", count)
}

// StatusError returns an error status line.
func StatusError(reason string) string {
	return "Error: " + reason
}

// Events receives user-visible output from the generation flow: status line
// replacements and modal notices. The front-end decides how to marshal these
// onto its own rendering thread; implementations should not block.
type Events interface {
	StatusChanged(status string)
	SuccessNotice(message string)
	ErrorNotice(message string)
}

// NopEvents discards all events.
type NopEvents struct{}

func (NopEvents) StatusChanged(string) {}
func (NopEvents) SuccessNotice(string) {}
func (NopEvents) ErrorNotice(string)   {}
