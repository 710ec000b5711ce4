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

	"pgregory.net/rapid"
)

// ============================================================================
// ComposeLine Property Tests
// ============================================================================

// TestPropertyComposeLineDeterministic verifies same input always gives same output.
func TestPropertyComposeLineDeterministic(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		exe := rapid.StringMatching(`[a-zA-Z0-9_\- ./\\:]{1,60}`).Draw(t, "exe")
		game := rapid.StringMatching(`[a-zA-Z0-9_\- ./\\:]{1,60}`).Draw(t, "game")

		line1, err1 := ComposeLine(exe, game, classicOptions())
		line2, err2 := ComposeLine(exe, game, classicOptions())

		if err1 != nil || err2 != nil {
			t.Fatalf("Unexpected error: %v / %v", err1, err2)
		}
		if line1 != line2 {
			t.Fatalf("Non-deterministic: %q vs %q", line1, line2)
		}
	})
}

// TestPropertyComposeLineShape verifies the generated line's fixed shape.
func TestPropertyComposeLineShape(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		exe := rapid.StringMatching(`[a-zA-Z0-9_\- ./\\:]{1,60}`).Draw(t, "exe")
		game := rapid.StringMatching(`[a-zA-Z0-9_\- ./\\:]{1,60}`).Draw(t, "game")

		line, err := ComposeLine(exe, game, classicOptions())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if !strings.HasPrefix(line, `"`+exe+`" -p "`+game+`"`) {
			t.Fatalf("Bad prefix: %q", line)
		}
		if !strings.HasSuffix(line, "--auto-detect --fullscreen\n") {
			t.Fatalf("Bad suffix: %q", line)
		}
		if strings.Count(line, "\n") != 1 {
			t.Fatalf("Expected exactly one line: %q", line)
		}
	})
}

// TestPropertyComposeLineQuoteRejection verifies any quoted input is rejected.
func TestPropertyComposeLineQuoteRejection(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		prefix := rapid.StringMatching(`[a-zA-Z0-9/\\]{0,20}`).Draw(t, "prefix")
		suffix := rapid.StringMatching(`[a-zA-Z0-9/\\]{0,20}`).Draw(t, "suffix")
		bad := prefix + `"` + suffix

		if _, err := ComposeLine(bad, "/games/ok", classicOptions()); err == nil {
			t.Fatalf("Expected rejection for exe path %q", bad)
		}
		if _, err := ComposeLine("/bin/scummvm", bad, classicOptions()); err == nil {
			t.Fatalf("Expected rejection for game path %q", bad)
		}
	})
}
