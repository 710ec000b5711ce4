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
	"fmt"

	"github.com/ScummBatchProject/scummbatch-core/pkg/helpers"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
)

// Request errors surfaced by precondition validation.
var (
	ErrExecutableNotFound = errors.New("executable not found")
	ErrRootFolderNotFound = errors.New("game folder not found")
)

// Request holds the two user-supplied inputs for one generation run. Both
// paths must exist before Generate is called; violating that is a caller
// error, not a generator concern.
type Request struct {
	ExecutablePath string `validate:"required,exe_file"`
	RootFolder     string `validate:"required,game_dir"`
}

// Validator checks generation requests with custom fs-aware validators, so
// precondition checks run against the same filesystem the generator writes
// to.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator bound to fsys.
func NewValidator(fsys afero.Fs) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("exe_file", func(fl validator.FieldLevel) bool {
		return helpers.IsFile(fsys, fl.Field().String())
	})
	_ = v.RegisterValidation("game_dir", func(fl validator.FieldLevel) bool {
		return helpers.IsDir(fsys, fl.Field().String())
	})

	return &Validator{validate: v}
}

// Validate checks req's preconditions. Missing or non-existent paths map to
// the exported sentinel errors so callers can surface distinct notices.
func (v *Validator) Validate(req *Request) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			switch fe.StructField() {
			case "ExecutablePath":
				return ErrExecutableNotFound
			case "RootFolder":
				return ErrRootFolderNotFound
			}
		}
	}
	return fmt.Errorf("failed to validate request: %w", err)
}
