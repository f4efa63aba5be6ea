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

package helpers

import (
	"github.com/AethonProject/aethon/pkg/testing/mocks"
	"github.com/stretchr/testify/mock"
)

// NewMockProcessStarter creates a MockProcessStarter that succeeds by default.
// Clear ExpectedCalls and set specific expectations where the exact program
// matters:
//
//	starter := helpers.NewMockProcessStarter()
//	starter.ExpectedCalls = nil
//	starter.On("Start", "/games/launcher.exe", []string(nil)).Return(errors.New("boom"))
func NewMockProcessStarter() *mocks.MockProcessStarter {
	starter := &mocks.MockProcessStarter{}
	starter.On("Start", mock.AnythingOfType("string"), mock.Anything).Return(nil).Maybe()
	return starter
}
