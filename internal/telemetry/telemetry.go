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

// Package telemetry provides opt-in crash reporting via Sentry. It only
// handles unhandled faults; routine diagnostic reports go through the
// reporter package. All PII is stripped before transmission.
package telemetry

import (
	"fmt"
	"io"
	"regexp"
	"runtime"
	"sync"
	"time"

	"github.com/ScummBatchProject/scummbatch-core/pkg/config"
	"github.com/ScummBatchProject/scummbatch-core/pkg/helpers"
	"github.com/getsentry/sentry-go"
	sentryzerolog "github.com/getsentry/sentry-go/zerolog"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	flushTimeout = 2 * time.Second
	// sentryDSN contains the public key needed for Sentry to authenticate the envelope.
	sentryDSN = "https://e91b3c55f20d41c79a6f02c684c31188@o4508112233445566.ingest.de.sentry.io/4508112239874048"
)

var (
	enabled      bool
	sentryWriter *sentryzerolog.Writer
	closeOnce    sync.Once

	// Patterns to strip usernames from file paths
	homePathRe    = regexp.MustCompile(`(?i)/home/[^/]+/`)
	usersPathRe   = regexp.MustCompile(`(?i)/Users/[^/]+/`)
	windowsUserRe = regexp.MustCompile(`(?i)[a-zA-Z]:\\Users\\[^\\]+\\`)
)

// Init initializes Sentry crash reporting with zerolog integration, hooking
// fatal and panic level log events. If reportingEnabled is false, telemetry
// remains disabled. The extra writers are the same ones passed to
// helpers.InitLogging, so the rebuilt logger keeps its full output chain.
func Init(reportingEnabled bool, deviceID string, writers []io.Writer) error {
	if !reportingEnabled {
		log.Debug().Msg("crash reporting disabled")
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              sentryDSN,
		Release:          config.AppName + "@" + config.AppVersion,
		AttachStacktrace: true,
		// Privacy: explicitly disable PII collection
		SendDefaultPII: false,
		ServerName:     "",
		MaxBreadcrumbs: 0,
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			return sanitizeEvent(event)
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize sentry: %w", err)
	}

	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetUser(sentry.User{ID: deviceID})
		scope.SetTag("os", runtime.GOOS)
		scope.SetTag("arch", runtime.GOARCH)
	})

	sentryWriter, err = sentryzerolog.NewWithHub(sentry.CurrentHub(), sentryzerolog.Options{
		Levels:          []zerolog.Level{zerolog.FatalLevel, zerolog.PanicLevel},
		FlushTimeout:    flushTimeout,
		WithBreadcrumbs: false,
	})
	if err != nil {
		return fmt.Errorf("failed to create sentry zerolog writer: %w", err)
	}

	// Add the Sentry writer alongside the existing log writers
	logWriters := make([]io.Writer, 0, len(writers)+2)
	logWriters = append(logWriters, helpers.LogWriter(), sentryWriter)
	logWriters = append(logWriters, writers...)
	log.Logger = log.Output(zerolog.MultiLevelWriter(logWriters...)).
		With().Timestamp().Caller().Logger()

	enabled = true
	log.Info().Msg("crash reporting enabled")
	return nil
}

// CapturePanic reports a recovered panic value and flushes immediately.
func CapturePanic(rec any) {
	if !enabled {
		return
	}
	sentry.CurrentHub().Recover(rec)
	sentry.Flush(flushTimeout)
}

// Close flushes pending events and shuts down Sentry.
// Safe to call multiple times.
func Close() {
	if !enabled {
		return
	}
	closeOnce.Do(func() {
		_ = sentryWriter.Close()
		sentry.Flush(flushTimeout)
	})
}

// Enabled returns whether crash reporting is enabled.
func Enabled() bool {
	return enabled
}

// sanitizeEvent removes PII from Sentry events before sending.
func sanitizeEvent(event *sentry.Event) *sentry.Event {
	// Clear server name (hostname) - SDK may populate despite ServerName: ""
	event.ServerName = ""

	for i := range event.Exception {
		if event.Exception[i].Stacktrace == nil {
			continue
		}
		for j := range event.Exception[i].Stacktrace.Frames {
			frame := &event.Exception[i].Stacktrace.Frames[j]
			frame.AbsPath = sanitizePath(frame.AbsPath)
			frame.Filename = sanitizePath(frame.Filename)
		}
	}

	event.Message = sanitizePath(event.Message)

	for k, v := range event.Extra {
		if s, ok := v.(string); ok {
			event.Extra[k] = sanitizePath(s)
		}
	}

	return event
}

// sanitizePath removes usernames from file paths.
func sanitizePath(path string) string {
	if path == "" {
		return path
	}

	result := homePathRe.ReplaceAllString(path, "/home/<user>/")
	result = usersPathRe.ReplaceAllString(result, "/Users/<user>/")
	result = windowsUserRe.ReplaceAllString(result, "C:\\Users\\<user>\\")

	return result
}
