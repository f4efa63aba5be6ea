// Aethon
// Copyright (c) 2026 The Aethon Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Aethon.
//
// Aethon is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aethon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Aethon.  If not, see <http://www.gnu.org/licenses/>.

package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockProcessStarter is a testify mock for helpers.ProcessStarter.
type MockProcessStarter struct {
	mock.Mock
}

// Start mocks spawning a detached process. Variadic args arrive as a slice.
//
// Example:
//
//	starter := &MockProcessStarter{}
//	starter.On("Start", "/games/launcher.exe", []string(nil)).Return(nil)
func (m *MockProcessStarter) Start(name string, args ...string) error {
	called := m.Called(name, args)
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return called.Error(0)
}
