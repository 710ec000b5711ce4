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

package reporter

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func TestAssembleReportFull(t *testing.T) {
	t.Parallel()

	fault := CaptureFault(fmt.Errorf("failed to open launcher: %w", errors.New("disk full")))
	report := assembleReport(
		"failed to create launcher for Monkey1",
		fault,
		"line one\nline two",
		`C:\tools\scummvm.exe`, `C:\games`,
		"device-1234",
		reportTime,
	)

	assert.Contains(t, report, "diagnostic report")
	assert.Contains(t, report, "version: ")
	assert.Contains(t, report, "runtime: go")
	assert.Contains(t, report, "time: 2026-03-14T09:26:53Z")
	assert.Contains(t, report, "device: device-1234")
	assert.Contains(t, report, "=== message ===\nfailed to create launcher for Monkey1\n")
	assert.Contains(t, report, "=== fault ===")
	assert.Contains(t, report, "message: failed to open launcher: disk full")
	assert.Contains(t, report, "--- caused by ---")
	assert.Contains(t, report, "message: disk full")
	assert.Contains(t, report, "=== recent log ===\nline one\nline two\n")
	assert.Contains(t, report, "=== request ===")
	assert.Contains(t, report, `executable: C:\tools\scummvm.exe`)
	assert.Contains(t, report, `root folder: C:\games`)
}

func TestAssembleReportOmitsEmptySections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fault    *Fault
		name     string
		message  string
		log      string
		exePath  string
		root     string
		excluded []string
	}{
		{
			name:     "no fault",
			message:  "something happened",
			excluded: []string{"=== fault ==="},
		},
		{
			name:     "no message",
			fault:    CaptureFault(errors.New("boom")),
			excluded: []string{"=== message ==="},
		},
		{
			name:     "no log transcript",
			message:  "msg",
			excluded: []string{"=== recent log ==="},
		},
		{
			name:     "request only half known",
			message:  "msg",
			exePath:  "/bin/scummvm",
			excluded: []string{"=== request ==="},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			report := assembleReport(
				tt.message, tt.fault, tt.log, tt.exePath, tt.root, "", reportTime)
			for _, s := range tt.excluded {
				assert.NotContains(t, report, s)
			}
			// identity block is always present
			assert.Contains(t, report, "diagnostic report")
		})
	}
}

func TestCaptureFault(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, CaptureFault(nil))
	})

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()

		f := CaptureFault(errors.New("boom"))
		require.NotNil(t, f)
		assert.Equal(t, "*errors.errorString", f.Type)
		assert.Equal(t, "boom", f.Message)
		assert.NotEmpty(t, f.Stack)
		assert.Nil(t, f.Inner)
	})

	t.Run("wrapped error has inner fault", func(t *testing.T) {
		t.Parallel()

		inner := errors.New("disk full")
		f := CaptureFault(fmt.Errorf("failed to write script: %w", inner))
		require.NotNil(t, f)
		assert.Equal(t, "failed to write script: disk full", f.Message)
		require.NotNil(t, f.Inner)
		assert.Equal(t, "disk full", f.Inner.Message)
		assert.Equal(t, "*errors.errorString", f.Inner.Type)
	})
}
