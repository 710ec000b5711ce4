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

package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockReporter is a mock implementation of generator.Reporter for testing.
type MockReporter struct {
	mock.Mock
}

// NewMockReporter creates a mock reporter that accepts any calls.
func NewMockReporter() *MockReporter {
	m := &MockReporter{}
	m.On("Send", mock.Anything, mock.Anything).Return().Maybe()
	m.On("SetRequest", mock.Anything, mock.Anything).Return().Maybe()
	return m
}

// Send mocks forwarding a diagnostic report.
func (m *MockReporter) Send(message string, err error) {
	m.Called(message, err)
}

// SetRequest mocks recording the active generation request.
func (m *MockReporter) SetRequest(executablePath, rootFolder string) {
	m.Called(executablePath, rootFolder)
}

// SentMessages returns the messages passed to Send, in call order.
func (m *MockReporter) SentMessages() []string {
	msgs := make([]string, 0)
	for _, call := range m.Calls {
		if call.Method != "Send" {
			continue
		}
		if s, ok := call.Arguments.Get(0).(string); ok {
			msgs = append(msgs, s)
		}
	}
	return msgs
}
