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

// Package helpers provides filesystem fixtures for tests.
package helpers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FSHelper provides utilities for filesystem mocking in tests.
type FSHelper struct {
	Fs afero.Fs
}

// NewMemoryFS creates a new in-memory filesystem for testing.
func NewMemoryFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewMemMapFs(),
	}
}

// CreateGameLibrary creates a root folder containing one subdirectory per
// named game, each with a couple of plausible data files inside.
func (h *FSHelper) CreateGameLibrary(rootFolder string, games []string) error {
	if err := h.Fs.MkdirAll(rootFolder, 0o755); err != nil {
		return fmt.Errorf("failed to create root folder: %w", err)
	}

	for _, game := range games {
		gamePath := filepath.Join(rootFolder, game)
		if err := h.Fs.MkdirAll(gamePath, 0o755); err != nil {
			return fmt.Errorf("failed to create game folder %s: %w", gamePath, err)
		}

		for _, name := range []string{"monster.sou", "scummvm.ini"} {
			filePath := filepath.Join(gamePath, name)
			if err := afero.WriteFile(h.Fs, filePath, []byte{}, 0o644); err != nil {
				return fmt.Errorf("failed to create game file %s: %w", filePath, err)
			}
		}
	}

	return nil
}

// CreateExecutable creates an empty file standing in for the emulator
// executable.
func (h *FSHelper) CreateExecutable(path string) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create executable directory: %w", err)
	}
	if err := afero.WriteFile(h.Fs, path, []byte{}, 0o755); err != nil {
		return fmt.Errorf("failed to create executable file: %w", err)
	}
	return nil
}

// FileExists checks if a file exists.
func (h *FSHelper) FileExists(path string) bool {
	exists, err := afero.Exists(h.Fs, path)
	if err != nil {
		return false
	}
	return exists
}

// ReadFile reads a file and returns its content.
func (h *FSHelper) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(h.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

// ListFiles lists all entry names in a directory.
func (h *FSHelper) ListFiles(path string) ([]string, error) {
	entries, err := afero.ReadDir(h.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}

	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}

	return names, nil
}

// FailingFs wraps an afero.Fs and fails any file create/open for paths the
// FailPath predicate matches, for simulating per-entry write denials.
type FailingFs struct {
	afero.Fs
	FailPath func(path string) bool
}

// NewFailingFs wraps base so that opening any path matching failPath
// returns a permission error.
func NewFailingFs(base afero.Fs, failPath func(path string) bool) *FailingFs {
	return &FailingFs{Fs: base, FailPath: failPath}
}

func (f *FailingFs) Create(name string) (afero.File, error) {
	if f.FailPath(name) {
		return nil, &os.PathError{Op: "create", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.Create(name) //nolint:wrapcheck // transparent wrapper
}

func (f *FailingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&os.O_WRONLY != 0 || flag&os.O_RDWR != 0 || flag&os.O_CREATE != 0 {
		if f.FailPath(name) {
			return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
		}
	}
	return f.Fs.OpenFile(name, flag, perm) //nolint:wrapcheck // transparent wrapper
}
