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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classicOptions() ScriptOptions {
	return ScriptOptions{AutoDetect: true, Fullscreen: true}
}

func TestComposeLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		exePath  string
		gamePath string
		opts     ScriptOptions
		expected string
	}{
		{
			name:     "windows paths",
			exePath:  `C:\tools\scummvm.exe`,
			gamePath: `C:\games\Monkey1`,
			opts:     classicOptions(),
			expected: `"C:\tools\scummvm.exe" -p "C:\games\Monkey1" --auto-detect --fullscreen` + "\n",
		},
		{
			name:     "unix paths",
			exePath:  "/usr/bin/scummvm",
			gamePath: "/home/games/atlantis",
			opts:     classicOptions(),
			expected: `"/usr/bin/scummvm" -p "/home/games/atlantis" --auto-detect --fullscreen` + "\n",
		},
		{
			name:     "paths with spaces",
			exePath:  `C:\Program Files\ScummVM\scummvm.exe`,
			gamePath: `C:\games\Day of the Tentacle`,
			opts:     classicOptions(),
			expected: `"C:\Program Files\ScummVM\scummvm.exe" -p "C:\games\Day of the Tentacle" --auto-detect --fullscreen` + "\n",
		},
		{
			name:     "no flags",
			exePath:  "/usr/bin/scummvm",
			gamePath: "/games/tentacle",
			opts:     ScriptOptions{},
			expected: `"/usr/bin/scummvm" -p "/games/tentacle"` + "\n",
		},
		{
			name:     "extra args appended",
			exePath:  "/usr/bin/scummvm",
			gamePath: "/games/sky",
			opts: ScriptOptions{
				AutoDetect: true,
				Fullscreen: true,
				ExtraArgs:  []string{"--no-filtering"},
			},
			expected: `"/usr/bin/scummvm" -p "/games/sky" --auto-detect --fullscreen --no-filtering` + "\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			line, err := ComposeLine(tt.exePath, tt.gamePath, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, line)
		})
	}
}

func TestComposeLineRejectsEmbeddedQuotes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		exePath  string
		gamePath string
	}{
		{
			name:     "quote in executable path",
			exePath:  `C:\tools\scumm"vm.exe`,
			gamePath: `C:\games\Monkey1`,
		},
		{
			name:     "quote in game path",
			exePath:  `C:\tools\scummvm.exe`,
			gamePath: `C:\games\Monkey"1`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			line, err := ComposeLine(tt.exePath, tt.gamePath, classicOptions())
			require.ErrorIs(t, err, ErrUnquotablePath)
			assert.Empty(t, line)
		})
	}
}
