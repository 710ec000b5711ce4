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

	"github.com/ScummBatchProject/scummbatch-core/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Flow is the top-level invocation handler: it validates the two
// user-supplied paths, drives the status transitions, runs the generator,
// and surfaces any fatal failure as an error notice.
type Flow struct {
	events    Events
	reporter  Reporter
	validator *Validator
	gen       *Generator
}

// NewFlow wires a Flow, its Validator, and its Generator to the same
// filesystem and collaborators. A nil events sink is replaced with
// NopEvents.
func NewFlow(fsys afero.Fs, cfg *config.Instance, reporter Reporter, events Events) *Flow {
	if events == nil {
		events = NopEvents{}
	}
	return &Flow{
		events:    events,
		reporter:  reporter,
		validator: NewValidator(fsys),
		gen:       New(fsys, cfg, reporter, events),
	}
}

// Run performs one full generation pass. Precondition violations never
// reach the generator and never touch the root folder. The returned error
// is non-nil for precondition and enumeration failures; per-entry failures
// are recorded in the Outcome instead.
func (f *Flow) Run(executablePath, rootFolder string) (*Outcome, error) {
	req := Request{
		ExecutablePath: executablePath,
		RootFolder:     rootFolder,
	}

	if err := f.validator.Validate(&req); err != nil {
		f.reject(req, err)
		return nil, err
	}

	f.events.StatusChanged(StatusExecutableSelected)
	f.events.StatusChanged(StatusFolderSelected)
	f.events.StatusChanged(StatusCreating)

	f.reporter.SetRequest(req.ExecutablePath, req.RootFolder)
	log.Info().Msgf("generating launcher scripts in %s", req.RootFolder)

	outcome, err := f.gen.Generate(req)
	if err != nil {
		// already logged and reported by the generator
		f.events.StatusChanged(StatusError("could not read the game folder."))
		f.events.ErrorNotice("Could not read the game folder.")
		return nil, err
	}
	return outcome, nil
}

// reject surfaces a precondition failure. The not-found cases are also
// reported: the picker already confirmed these paths existed, so reaching
// here means state the collector should know about.
func (f *Flow) reject(req Request, err error) {
	switch {
	case errors.Is(err, ErrExecutableNotFound):
		log.Error().Msgf("executable not found: %s", req.ExecutablePath)
		f.events.StatusChanged(StatusError("executable not found."))
		f.events.ErrorNotice("ScummVM executable not found.")
		f.reporter.Send("executable not found", err)
	case errors.Is(err, ErrRootFolderNotFound):
		log.Error().Msgf("game folder not found: %s", req.RootFolder)
		f.events.StatusChanged(StatusError("game folder not found."))
		f.events.ErrorNotice("Game folder not found.")
		f.reporter.Send("game folder not found", err)
	default:
		log.Error().Err(err).Msg("invalid generation request")
		f.events.StatusChanged(StatusError("invalid request."))
		f.events.ErrorNotice("Invalid request.")
	}
}
