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

package reporter

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/ScummBatchProject/scummbatch-core/pkg/config"
)

// Fault captures one failure for inclusion in a diagnostic report.
type Fault struct {
	Inner   *Fault
	Type    string
	Message string
	Source  string
	Stack   string
}

// CaptureFault builds a Fault from err, recording the capture site, the
// current stack, and one level of wrapped cause. Returns nil for a nil
// error.
func CaptureFault(err error) *Fault {
	if err == nil {
		return nil
	}

	f := &Fault{
		Type:    fmt.Sprintf("%T", err),
		Message: err.Error(),
		Source:  captureSource(3),
		Stack:   string(debug.Stack()),
	}

	if inner := errors.Unwrap(err); inner != nil {
		f.Inner = &Fault{
			Type:    fmt.Sprintf("%T", inner),
			Message: inner.Error(),
			Source:  f.Source,
		}
	}

	return f
}

// captureSource names the file:line that triggered the capture, skipping
// the reporter's own frames.
func captureSource(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", file, line)
}

// assembleReport builds the plain-text report document. Sections are
// ordered and each is emitted only when its source data is available.
func assembleReport(
	message string,
	fault *Fault,
	transcript string,
	exePath, rootFolder string,
	deviceID string,
	now time.Time,
) string {
	var b strings.Builder

	b.WriteString("=== " + config.AppName + " diagnostic report ===\n")
	b.WriteString("version: " + config.AppVersion + "\n")
	b.WriteString("os: " + config.OSDescriptor() + "\n")
	b.WriteString("runtime: " + runtime.Version() + "\n")
	b.WriteString("time: " + now.Format(time.RFC3339) + "\n")
	if deviceID != "" {
		b.WriteString("device: " + deviceID + "\n")
	}

	if message != "" {
		b.WriteString("\n=== message ===\n")
		b.WriteString(message + "\n")
	}

	if fault != nil {
		b.WriteString("\n=== fault ===\n")
		writeFault(&b, fault)
		if fault.Inner != nil {
			b.WriteString("--- caused by ---\n")
			writeFault(&b, fault.Inner)
		}
	}

	if transcript != "" {
		b.WriteString("\n=== recent log ===\n")
		b.WriteString(transcript + "\n")
	}

	if exePath != "" && rootFolder != "" {
		b.WriteString("\n=== request ===\n")
		b.WriteString("executable: " + exePath + "\n")
		b.WriteString("root folder: " + rootFolder + "\n")
	}

	return b.String()
}

func writeFault(b *strings.Builder, f *Fault) {
	b.WriteString("type: " + f.Type + "\n")
	b.WriteString("message: " + f.Message + "\n")
	if f.Source != "" {
		b.WriteString("source: " + f.Source + "\n")
	}
	if f.Stack != "" {
		b.WriteString("stack:\n" + strings.TrimRight(f.Stack, "\n") + "\n")
	}
}
