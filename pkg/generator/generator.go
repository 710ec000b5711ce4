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

// Package generator creates one launcher script per game folder found under
// a root directory. Generation is sequential and deterministic: entries are
// processed in lexicographic name order and each script file is written and
// closed before the next entry starts.
package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ScummBatchProject/scummbatch-core/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Reporter forwards diagnostic reports to the remote collector. Send must
// never block on transmission or surface its outcome to the caller.
type Reporter interface {
	Send(message string, err error)
	SetRequest(executablePath, rootFolder string)
}

// GameFolder is one immediate subdirectory of the root folder, treated as
// one unit of work.
type GameFolder struct {
	Name string
	Path string
}

// EntryFailure records a single game folder whose script could not be
// written.
type EntryFailure struct {
	Err   error
	Entry GameFolder
}

// Outcome summarizes one generation run.
type Outcome struct {
	Failures []EntryFailure
	Created  int
}

// Generator writes launcher scripts for game folders. One generation call
// is active at a time by construction; the trigger is the caller's to gate.
type Generator struct {
	fs       afero.Fs
	cfg      *config.Instance
	reporter Reporter
	events   Events
}

// New creates a Generator. A nil events sink is replaced with NopEvents.
func New(fsys afero.Fs, cfg *config.Instance, reporter Reporter, events Events) *Generator {
	if events == nil {
		events = NopEvents{}
	}
	return &Generator{
		fs:       fsys,
		cfg:      cfg,
		reporter: reporter,
		events:   events,
	}
}

// Generate enumerates the immediate subdirectories of req.RootFolder and
// writes one launcher script per subdirectory into the root folder,
// overwriting silently. Only the enumeration itself is fatal; per-entry
// failures are logged, reported, and skipped. Rerunning with unchanged
// inputs produces byte-identical files.
func (g *Generator) Generate(req Request) (*Outcome, error) {
	entries, err := afero.ReadDir(g.fs, req.RootFolder)
	if err != nil {
		log.Error().Err(err).Msgf("failed to list game folders in %s", req.RootFolder)
		g.reporter.Send("failed to list game folders", err)
		return nil, fmt.Errorf("failed to list game folders: %w", err)
	}

	ext := g.cfg.ScriptExtension()
	opts := scriptOptions(g.cfg)

	outcome := &Outcome{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		folder := GameFolder{
			Name: entry.Name(),
			Path: filepath.Join(req.RootFolder, entry.Name()),
		}
		dest := filepath.Join(req.RootFolder, folder.Name+"."+ext)

		if err := g.writeScript(dest, req.ExecutablePath, folder.Path, opts); err != nil {
			log.Warn().Err(err).Msgf("failed to create launcher for %s", folder.Name)
			g.reporter.Send("failed to create launcher for "+folder.Name, err)
			outcome.Failures = append(outcome.Failures, EntryFailure{
				Entry: folder,
				Err:   err,
			})
			continue
		}

		outcome.Created++
		log.Info().Msgf("created launcher %s", dest)
	}

	if outcome.Created == 0 {
		log.Info().Msgf("no game folders found in %s", req.RootFolder)
		g.events.StatusChanged(StatusError("no game folders found."))
		g.events.ErrorNotice("No game folders found.")
		g.reporter.Send("no game folders found", nil)
		return outcome, nil
	}

	log.Info().Msgf("created %d launcher scripts in %s", outcome.Created, req.RootFolder)
	g.events.StatusChanged(StatusCreated(outcome.Created))
	g.events.SuccessNotice(fmt.Sprintf("%d batch files created successfully.", outcome.Created))
	return outcome, nil
}

// writeScript creates or truncates dest and writes the single launcher
// line. The file handle is always released before returning.
func (g *Generator) writeScript(dest, exePath, gamePath string, opts ScriptOptions) error {
	line, err := ComposeLine(exePath, gamePath, opts)
	if err != nil {
		return err
	}

	f, err := g.fs.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", dest, err)
	}

	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", dest, err)
	}
	return nil
}
