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
	"context"

	"github.com/AethonProject/aethon/pkg/instances"
	"github.com/AethonProject/aethon/pkg/launcher"
	"github.com/stretchr/testify/mock"
)

// MockConfigStore is a testify mock for screens.ConfigStore.
type MockConfigStore struct {
	mock.Mock
}

func (m *MockConfigStore) Load() error {
	args := m.Called()
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return args.Error(0)
}

func (m *MockConfigStore) LauncherPath() (string, bool) {
	args := m.Called()
	return args.String(0), args.Bool(1)
}

func (m *MockConfigStore) Save() error {
	args := m.Called()
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return args.Error(0)
}

func (m *MockConfigStore) SaveLauncherPath(path string) error {
	args := m.Called(path)
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return args.Error(0)
}

// MockInstanceStore is a testify mock for screens.InstanceStore.
type MockInstanceStore struct {
	mock.Mock
}

func (m *MockInstanceStore) Create(name string) (instances.Instance, error) {
	args := m.Called(name)
	inst, _ := args.Get(0).(instances.Instance)
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return inst, args.Error(1)
}

func (m *MockInstanceStore) CollectAll() ([]instances.Instance, error) {
	args := m.Called()
	list, _ := args.Get(0).([]instances.Instance)
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return list, args.Error(1)
}

// MockRunner is a testify mock for screens.Runner.
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context, launcherExe string, inst instances.Instance) error {
	args := m.Called(ctx, launcherExe, inst)
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return args.Error(0)
}

// MockDetector is a testify mock for screens.Detector.
type MockDetector struct {
	mock.Mock
}

func (m *MockDetector) Detect(ctx context.Context) launcher.Detected {
	args := m.Called(ctx)
	found, _ := args.Get(0).(launcher.Detected)
	return found
}

// MockPicker is a testify mock for screens.Picker.
type MockPicker struct {
	mock.Mock
}

func (m *MockPicker) PickLauncher(ctx context.Context) (string, bool, error) {
	args := m.Called(ctx)
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return args.String(0), args.Bool(1), args.Error(2)
}

// MockGuard is a testify mock for screens.Guard.
type MockGuard struct {
	mock.Mock
}

func (m *MockGuard) TryLock() bool {
	return m.Called().Bool(0)
}
