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
	"io"
	"os"
	"path/filepath"

	"github.com/ScummBatchProject/scummbatch-core/pkg/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

var logWriter io.Writer

// InitLogging configures the global logger with a rotating log file in
// logDir plus any extra writers (console, transcript buffer).
func InitLogging(logDir string, writers []io.Writer) error {
	err := os.MkdirAll(logDir, 0o750)
	if err != nil {
		return err
	}

	logWriter = &lumberjack.Logger{
		Filename:   filepath.Join(logDir, config.LogFile),
		MaxSize:    1,
		MaxBackups: 2,
	}

	logWriters := []io.Writer{logWriter}
	if len(writers) > 0 {
		logWriters = append(logWriters, writers...)
	}

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	log.Logger = log.Output(io.MultiWriter(logWriters...)).
		With().Timestamp().Caller().Logger()

	return nil
}

// LogWriter returns the rotating log file writer, for callers that rebuild
// the logger output chain after init.
func LogWriter() io.Writer {
	return logWriter
}
