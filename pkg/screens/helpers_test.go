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

package screens

import (
	"context"
	"testing"

	"github.com/AethonProject/aethon/pkg/instances"
	"github.com/AethonProject/aethon/pkg/launcher"
	"github.com/AethonProject/aethon/pkg/testing/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const (
	storeExe  = "/mnt/c/XboxGames/Minecraft Launcher/Content/Minecraft.exe"
	legacyExe = "/mnt/c/Program Files (x86)/Minecraft Launcher/MinecraftLauncher.exe"
	customExe = "/home/user/launcher.exe"
)

type fixture struct {
	deps     *Deps
	cfg      *mocks.MockConfigStore
	store    *mocks.MockInstanceStore
	runner   *mocks.MockRunner
	detector *mocks.MockDetector
	picker   *mocks.MockPicker
	guard    *mocks.MockGuard
	valid    map[string]bool
	cleanErr error
	clean    bool
}

// newFixture wires mocks for a first run on a clean folder with both
// launchers installed and no instances.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		cfg:      &mocks.MockConfigStore{},
		store:    &mocks.MockInstanceStore{},
		runner:   &mocks.MockRunner{},
		detector: &mocks.MockDetector{},
		picker:   &mocks.MockPicker{},
		guard:    &mocks.MockGuard{},
		clean:    true,
		valid: map[string]bool{
			storeExe:  true,
			legacyExe: true,
			customExe: true,
		},
	}
	f.deps = &Deps{
		Config:    f.cfg,
		Instances: f.store,
		Runner:    f.runner,
		Detector:  f.detector,
		Picker:    f.picker,
		Guard:     f.guard,
		FolderClean: func() (bool, error) {
			return f.clean, f.cleanErr
		},
		ValidLauncher: func(path string) bool {
			return f.valid[path]
		},
	}
	return f
}

func (f *fixture) defaults() {
	f.guard.On("TryLock").Return(true).Maybe()
	f.cfg.On("Save").Return(nil).Maybe()
	f.cfg.On("LauncherPath").Return("", false).Maybe()
	f.detector.On("Detect", mock.Anything).
		Return(launcher.Detected{Store: storeExe, Legacy: legacyExe}).Maybe()
	f.store.On("CollectAll").Return([]instances.Instance{}, nil).Maybe()
}

// settle runs cmds, and every command their results produce, until the
// machine is idle. Returns how many commands ran.
func settle(t *testing.T, m *Machine, cmds []Cmd) int {
	t.Helper()

	ran := 0
	for len(cmds) > 0 {
		cmd := cmds[0]
		cmds = cmds[1:]
		ran++
		require.Less(t, ran, 100, "commands never settled")
		cmds = append(cmds, m.Dispatch(cmd(context.Background()))...)
	}
	return ran
}

// send dispatches msg and settles the resulting commands.
func send(t *testing.T, m *Machine, msg Msg) {
	t.Helper()
	settle(t, m, m.Dispatch(msg))
}

// machine builds the machine. Config loads succeed unless the test queued
// its own results first.
func (f *fixture) machine() *Machine {
	f.cfg.On("Load").Return(nil).Maybe()
	return NewMachine(f.deps)
}

func started(t *testing.T, f *fixture) *Machine {
	t.Helper()
	m := f.machine()
	settle(t, m, m.Start())
	return m
}

func activeAs[S Screen](t *testing.T, m *Machine) S {
	t.Helper()
	s, ok := m.Active().(S)
	require.True(t, ok, "active screen is %s (%T)", m.Active().Name(), m.Active())
	return s
}
