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
	"errors"
	"io/fs"
	"sync"
	"testing"

	"github.com/AethonProject/aethon/pkg/failure"
	"github.com/AethonProject/aethon/pkg/instances"
	"github.com/AethonProject/aethon/pkg/launcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartup_SecondInstance(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.guard.On("TryLock").Return(false)

	m := started(t, f)
	activeAs[*SingleInstanceWarn](t, m)
	f.cfg.AssertNotCalled(t, "Save")
	f.cfg.AssertNotCalled(t, "Load")

	send(t, m, SingleInstanceOk{})
	assert.True(t, m.Done())
}

func TestStartup_FolderNotEmpty(t *testing.T) {
	t.Parallel()

	t.Run("dirty folder", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.clean = false
		f.defaults()

		m := started(t, f)
		activeAs[*FolderNotEmptyWarn](t, m)
	})

	t.Run("unreadable folder", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.cleanErr = failure.FromIO(errors.New("boom"))
		f.defaults()

		m := started(t, f)
		activeAs[*FolderNotEmptyWarn](t, m)
	})
}

func TestFolderWarn_ContinueAndClose(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.clean = false
	f.defaults()

	m := started(t, f)
	send(t, m, FolderWarnContinue{})

	setup := activeAs[*Setup](t, m)
	assert.Equal(t, launcher.KindStore, setup.Selection)
	assert.Equal(t, storeExe, setup.Path)
	f.cfg.AssertCalled(t, "Save")

	m2 := started(t, f)
	send(t, m2, FolderWarnClose{})
	assert.True(t, m2.Done())
	activeAs[*FolderNotEmptyWarn](t, m2)
}

func TestFolderWarn_SetupLoadFails(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.clean = false
	f.guard.On("TryLock").Return(true)
	f.cfg.On("Save").Return(failure.FromIO(errors.New("disk full")))

	m := started(t, f)
	send(t, m, FolderWarnContinue{})

	errScreen := activeAs[*Error](t, m)
	assert.IsType(t, &FolderNotEmptyWarn{}, errScreen.Previous)

	send(t, m, ErrorContinue{})
	activeAs[*FolderNotEmptyWarn](t, m)
}

func TestStartup_BrokenConfigShowsErrorThenRetries(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	broken := failure.FromJSON(errors.New("cannot unmarshal number into launcher_path"))
	f.cfg.On("Load").Return(broken).Once()
	f.defaults()

	m := started(t, f)
	errScreen := activeAs[*Error](t, m)
	assert.Equal(t, broken, errScreen.Err)
	assert.IsType(t, &Startup{}, errScreen.Previous)
	f.cfg.AssertNotCalled(t, "Save")

	cmds := m.Dispatch(ErrorContinue{})
	activeAs[*Startup](t, m)
	require.Len(t, cmds, 1)

	settle(t, m, cmds)
	activeAs[*Setup](t, m)
	f.cfg.AssertNumberOfCalls(t, "Load", 2)
}

func TestFolderWarn_BrokenConfigKeepsFile(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.clean = false
	f.cfg.On("Load").Return(failure.FromJSON(errors.New("bad json"))).Once()
	f.defaults()

	m := started(t, f)
	f.cfg.AssertNotCalled(t, "Load")

	send(t, m, FolderWarnContinue{})
	errScreen := activeAs[*Error](t, m)
	assert.IsType(t, &FolderNotEmptyWarn{}, errScreen.Previous)
	f.cfg.AssertNotCalled(t, "Save")

	send(t, m, ErrorContinue{})
	send(t, m, FolderWarnContinue{})
	activeAs[*Setup](t, m)
}

func TestStartup_MissingConfigIsFirstRun(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.cfg.On("Load").Return(failure.FromIO(fs.ErrNotExist)).Once()
	f.defaults()

	m := started(t, f)
	activeAs[*Setup](t, m)
}

func TestStartup_ValidSavedLauncherGoesToMain(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	list := []instances.Instance{{Name: "A", Folder: "A", Path: "/app/instance/A"}}
	f.guard.On("TryLock").Return(true)
	f.cfg.On("LauncherPath").Return(customExe, true)
	f.store.On("CollectAll").Return(list, nil).Once()

	m := started(t, f)

	mainScreen := activeAs[*Main](t, m)
	assert.Equal(t, customExe, mainScreen.LauncherPath)
	assert.True(t, mainScreen.Loaded)
	assert.Equal(t, list, mainScreen.Instances)
	f.cfg.AssertNotCalled(t, "Save")
	f.detector.AssertNotCalled(t, "Detect", mock.Anything)
}

func TestStartup_StaleSavedLauncherGoesToSetup(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.guard.On("TryLock").Return(true)
	f.cfg.On("LauncherPath").Return("/gone/launcher.exe", true)
	f.cfg.On("Save").Return(nil).Once()
	f.detector.On("Detect", mock.Anything).Return(launcher.Detected{Legacy: legacyExe})

	m := started(t, f)

	setup := activeAs[*Setup](t, m)
	assert.Equal(t, launcher.KindCustom, setup.Selection)
	assert.Equal(t, "/gone/launcher.exe", setup.Path)
	assert.False(t, setup.CanContinue(f.deps))
	f.cfg.AssertExpectations(t)
}

func TestStartup_SetupLoadFailsThenRetries(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.guard.On("TryLock").Return(true)
	f.cfg.On("LauncherPath").Return("", false)
	f.cfg.On("Save").Return(failure.FromIO(errors.New("read-only"))).Once()
	f.cfg.On("Save").Return(nil).Once()
	f.detector.On("Detect", mock.Anything).Return(launcher.Detected{})

	m := started(t, f)
	errScreen := activeAs[*Error](t, m)
	assert.IsType(t, &Startup{}, errScreen.Previous)

	send(t, m, ErrorContinue{})
	setup := activeAs[*Setup](t, m)
	assert.Equal(t, launcher.KindNone, setup.Selection)
	assert.Empty(t, setup.Path)
	f.cfg.AssertExpectations(t)
}

func TestMachine_DropsMismatchedMessages(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.defaults()

	m := started(t, f)
	setup := activeAs[*Setup](t, m)
	before := *setup

	for _, msg := range []Msg{
		MainRun{Index: 0},
		MainAdd{},
		StartupLoaded{Next: NewMain(customExe)},
		ErrorContinue{},
		FolderWarnClose{},
		SingleInstanceOk{},
		struct{}{},
		nil,
	} {
		cmds := m.Dispatch(msg)
		assert.Empty(t, cmds, "%T", msg)
	}

	assert.Same(t, setup, activeAs[*Setup](t, m))
	assert.Equal(t, before, *setup)
	assert.False(t, m.Done())
}

func TestMachine_ConfigSavedSuccessIsQuiet(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.defaults()

	m := started(t, f)
	cmds := m.Dispatch(ConfigSaved{Origin: &Setup{}})
	assert.Empty(t, cmds)
	activeAs[*Setup](t, m)
}

func TestMachine_ConfigSavedWithoutOriginWrapsActive(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.defaults()

	m := started(t, f)
	setup := activeAs[*Setup](t, m)

	m.Dispatch(ConfigSaved{Err: errors.New("nope")})
	errScreen := activeAs[*Error](t, m)
	assert.Same(t, setup, errScreen.Previous)
}

// Commands run on their own goroutines in the host; results are funnelled
// back to a single dispatcher.
func TestMachine_AsyncCommands(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.defaults()
	list := []instances.Instance{{Name: "A", Folder: "A", Path: "/i/A"}}
	f.cfg.On("SaveLauncherPath", legacyExe).Return(nil).Once()
	f.store.ExpectedCalls = nil
	f.store.On("CollectAll").Return(list, nil)

	m := f.machine()
	results := make(chan Msg)
	var wg sync.WaitGroup
	run := func(cmds []Cmd) {
		for _, cmd := range cmds {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results <- cmd(context.Background())
			}()
		}
	}

	run(m.Start())
	run(m.Dispatch(<-results))
	activeAs[*Setup](t, m)

	run(m.Dispatch(SetupKindSelected{Kind: launcher.KindLegacy}))
	run(m.Dispatch(SetupContinue{}))
	activeAs[*Main](t, m)

	for range 2 {
		run(m.Dispatch(<-results))
	}
	wg.Wait()

	mainScreen := activeAs[*Main](t, m)
	assert.Equal(t, list, mainScreen.Instances)
	f.cfg.AssertExpectations(t)
	require.False(t, m.Done())
}
