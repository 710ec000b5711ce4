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
	"strings"
	"testing"

	"github.com/ScummBatchProject/scummbatch-core/pkg/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowRunSuccess(t *testing.T) {
	t.Parallel()

	fsh, cfg := setupLibrary(t, []string{"A", "B", "C"})

	rep := mocks.NewMockReporter()
	events := &recordingEvents{}
	flow := NewFlow(fsh.Fs, cfg, rep, events)

	outcome, err := flow.Run("/apps/scummvm", "/games")
	require.NoError(t, err)
	assert.Equal(t, 3, outcome.Created)

	assert.Equal(t, []string{
		StatusExecutableSelected,
		StatusFolderSelected,
		StatusCreating,
		StatusCreated(3),
	}, events.statuses)
	assert.Equal(t, []string{"3 batch files created successfully."}, events.successes)
	assert.Empty(t, events.errors)

	rep.AssertCalled(t, "SetRequest", "/apps/scummvm", "/games")
}

func TestFlowRejectsMissingExecutable(t *testing.T) {
	t.Parallel()

	fsh, cfg := setupLibrary(t, []string{"A", "B"})

	rep := mocks.NewMockReporter()
	events := &recordingEvents{}
	flow := NewFlow(fsh.Fs, cfg, rep, events)

	outcome, err := flow.Run("/apps/missing.exe", "/games")
	require.ErrorIs(t, err, ErrExecutableNotFound)
	assert.Nil(t, outcome)

	assert.Equal(t, []string{StatusError("executable not found.")}, events.statuses)
	assert.Equal(t, []string{"ScummVM executable not found."}, events.errors)
	assert.Contains(t, rep.SentMessages(), "executable not found")

	// the root folder must not have been touched
	names, listErr := fsh.ListFiles("/games")
	require.NoError(t, listErr)
	for _, name := range names {
		assert.False(t, strings.HasSuffix(name, ".bat"),
			"no scripts may be written on precondition failure: %s", name)
	}
}

func TestFlowRejectsMissingRootFolder(t *testing.T) {
	t.Parallel()

	fsh, cfg := setupLibrary(t, nil)

	rep := mocks.NewMockReporter()
	events := &recordingEvents{}
	flow := NewFlow(fsh.Fs, cfg, rep, events)

	outcome, err := flow.Run("/apps/scummvm", "/nowhere")
	require.ErrorIs(t, err, ErrRootFolderNotFound)
	assert.Nil(t, outcome)

	assert.Equal(t, []string{StatusError("game folder not found.")}, events.statuses)
	assert.Equal(t, []string{"Game folder not found."}, events.errors)
	assert.Contains(t, rep.SentMessages(), "game folder not found")
}

func TestFlowRejectsEmptyPaths(t *testing.T) {
	t.Parallel()

	fsh, cfg := setupLibrary(t, nil)

	rep := mocks.NewMockReporter()
	events := &recordingEvents{}
	flow := NewFlow(fsh.Fs, cfg, rep, events)

	outcome, err := flow.Run("", "")
	require.Error(t, err)
	assert.Nil(t, outcome)
	assert.NotEmpty(t, events.errors)
}

func TestValidatorSentinels(t *testing.T) {
	t.Parallel()

	fsh, _ := setupLibrary(t, []string{"A"})
	v := NewValidator(fsh.Fs)

	tests := []struct {
		expected error
		name     string
		exePath  string
		root     string
	}{
		{
			name:     "valid request",
			exePath:  "/apps/scummvm",
			root:     "/games",
			expected: nil,
		},
		{
			name:     "missing executable",
			exePath:  "/apps/other.exe",
			root:     "/games",
			expected: ErrExecutableNotFound,
		},
		{
			name:     "missing root folder",
			exePath:  "/apps/scummvm",
			root:     "/library",
			expected: ErrRootFolderNotFound,
		},
		{
			name:     "executable is a directory",
			exePath:  "/games/A",
			root:     "/games",
			expected: ErrExecutableNotFound,
		},
		{
			name:     "root folder is a file",
			exePath:  "/apps/scummvm",
			root:     "/apps/scummvm",
			expected: ErrRootFolderNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate(&Request{
				ExecutablePath: tt.exePath,
				RootFolder:     tt.root,
			})
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}
