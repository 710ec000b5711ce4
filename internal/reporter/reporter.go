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

// Package reporter assembles plain-text diagnostic reports and sends them
// to the remote collector. Transmission is best-effort and fire-and-forget:
// no failure on this path is ever surfaced to the primary workflow.
package reporter

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ScummBatchProject/scummbatch-core/pkg/config"
	"github.com/ScummBatchProject/scummbatch-core/pkg/helpers"
	"github.com/ScummBatchProject/scummbatch-core/pkg/helpers/syncutil"
	"github.com/jonboulle/clockwork"
)

const (
	// FlushTimeout bounds the end-of-life wait for in-flight reports.
	FlushTimeout = 2 * time.Second

	sendTimeout  = 30 * time.Second
	apiKeyHeader = "X-Api-Key"
)

// authTransport adds the collector API key to every outgoing request.
type authTransport struct {
	inner  http.RoundTripper
	apiKey string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set(apiKeyHeader, t.apiKey)

	//nolint:wrapcheck // RoundTripper interface requires unwrapped error
	return t.inner.RoundTrip(req)
}

// Reporter sends diagnostic reports over a single shared HTTP client with
// process lifetime. Construct once at startup and inject where needed.
type Reporter struct {
	client     *http.Client
	clock      clockwork.Clock
	transcript *helpers.Transcript
	endpoint   string
	deviceID   string
	exePath    string
	rootFolder string
	enabled    bool
	mu         syncutil.RWMutex
	wg         sync.WaitGroup
}

// New creates a Reporter from the process config. A nil transcript is
// valid; reports then simply carry no log section.
func New(cfg *config.Instance, transcript *helpers.Transcript) *Reporter {
	return NewWithClock(cfg, transcript, clockwork.NewRealClock())
}

// NewWithClock is New with an injected clock, for tests.
func NewWithClock(cfg *config.Instance, transcript *helpers.Transcript, clock clockwork.Clock) *Reporter {
	return &Reporter{
		client: &http.Client{
			Transport: &authTransport{
				inner:  http.DefaultTransport,
				apiKey: cfg.ReportAPIKey(),
			},
			Timeout: sendTimeout,
		},
		clock:      clock,
		transcript: transcript,
		endpoint:   cfg.ReportEndpoint(),
		deviceID:   cfg.DeviceID(),
		enabled:    cfg.ReportingEnabled(),
	}
}

// SetRequest records the active generation request so reports can include
// the executable and root folder paths.
func (r *Reporter) SetRequest(executablePath, rootFolder string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exePath = executablePath
	r.rootFolder = rootFolder
}

// Send assembles and transmits one diagnostic report. It never returns an
// error and never panics outward: assembly runs synchronously so the report
// snapshots current state, transmission runs on a detached goroutine whose
// error result is deliberately discarded.
func (r *Reporter) Send(message string, err error) {
	if r == nil || !r.enabled {
		return
	}
	defer func() {
		// a diagnostic report must never cause a secondary failure
		_ = recover()
	}()

	transcript := ""
	if r.transcript != nil {
		transcript = r.transcript.Tail()
	}

	r.mu.RLock()
	exePath, rootFolder := r.exePath, r.rootFolder
	r.mu.RUnlock()

	body := assembleReport(
		message,
		CaptureFault(err),
		transcript,
		exePath, rootFolder,
		r.deviceID,
		r.clock.Now(),
	)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		// outcome intentionally ignored: transmission is fire-and-forget
		_ = r.post(body)
	}()
}

func (r *Reporter) post(body string) error {
	req, err := http.NewRequestWithContext(
		context.Background(), http.MethodPost, r.endpoint, strings.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

// Flush waits up to timeout for in-flight reports to finish. Best-effort:
// call before process exit, safe to skip under abrupt termination.
func (r *Reporter) Flush(timeout time.Duration) {
	if r == nil {
		return
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-r.clock.After(timeout):
	}
}
