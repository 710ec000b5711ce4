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
	"fmt"

	"github.com/ScummBatchProject/scummbatch-core/pkg/config"
)

// NewTestConfig creates a config instance with base defaults, persisted
// under configDir (pass t.TempDir()). The script extension is pinned to
// "bat" so generated names don't vary with the host platform.
func NewTestConfig(configDir string) (*config.Instance, error) {
	cfg, err := config.NewConfig(configDir, config.BaseDefaults)
	if err != nil {
		return nil, fmt.Errorf("failed to create test config: %w", err)
	}
	cfg.SetScriptExtension("bat")
	return cfg, nil
}
