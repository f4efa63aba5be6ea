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
	"testing"

	"github.com/AethonProject/aethon/pkg/failure"
	"github.com/AethonProject/aethon/pkg/launcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupMachine(t *testing.T, f *fixture) (*Machine, *Setup) {
	t.Helper()
	f.defaults()
	m := started(t, f)
	return m, activeAs[*Setup](t, m)
}

func TestSetup_PreselectsStoreOverLegacy(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, setup := setupMachine(t, f)

	assert.Equal(t, launcher.KindStore, setup.Selection)
	assert.Equal(t, storeExe, setup.Path)
	assert.False(t, setup.Editable())
	assert.True(t, setup.CanContinue(f.deps))
}

func TestSetup_KindSelection(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	m, setup := setupMachine(t, f)

	send(t, m, SetupKindSelected{Kind: launcher.KindLegacy})
	assert.Equal(t, legacyExe, setup.Path)

	send(t, m, SetupKindSelected{Kind: launcher.KindCustom})
	assert.Equal(t, legacyExe, setup.Path, "custom keeps the current path")
	assert.True(t, setup.Editable())

	send(t, m, SetupPathChanged{Path: customExe})
	assert.Equal(t, customExe, setup.Path)

	send(t, m, SetupKindSelected{Kind: launcher.KindStore})
	assert.Equal(t, storeExe, setup.Path)
}

func TestSetup_PresetNotFoundClearsPath(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.detector.On("Detect", mock.Anything).Return(launcher.Detected{Store: storeExe})
	m, setup := setupMachine(t, f)

	send(t, m, SetupKindSelected{Kind: launcher.KindLegacy})
	assert.Empty(t, setup.Path)
	assert.False(t, setup.CanContinue(f.deps))
}

func TestSetup_PathOnlyEditableInCustom(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	m, setup := setupMachine(t, f)

	send(t, m, SetupPathChanged{Path: "/typed/while/store.exe"})
	assert.Equal(t, storeExe, setup.Path)

	cmds := m.Dispatch(SetupSelect{})
	assert.Empty(t, cmds)
	f.picker.AssertNotCalled(t, "PickLauncher", mock.Anything)
}

func TestSetup_Picker(t *testing.T) {
	t.Parallel()

	t.Run("picked", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.picker.On("PickLauncher", mock.Anything).Return(customExe, true, nil).Once()
		m, setup := setupMachine(t, f)

		send(t, m, SetupKindSelected{Kind: launcher.KindCustom})
		send(t, m, SetupSelect{})
		assert.Equal(t, customExe, setup.Path)
		f.picker.AssertExpectations(t)
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.picker.On("PickLauncher", mock.Anything).Return("", false, nil).Once()
		m, setup := setupMachine(t, f)

		send(t, m, SetupKindSelected{Kind: launcher.KindCustom})
		send(t, m, SetupSelect{})
		assert.Equal(t, storeExe, setup.Path)
		assert.Same(t, setup, m.Active())
	})

	t.Run("failed", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.picker.On("PickLauncher", mock.Anything).Return("", false, errors.New("no display")).Once()
		m, setup := setupMachine(t, f)

		send(t, m, SetupKindSelected{Kind: launcher.KindCustom})
		send(t, m, SetupSelect{})

		errScreen := activeAs[*Error](t, m)
		assert.Same(t, setup, errScreen.Previous)
		assert.True(t, failure.Is(errScreen.Err, failure.KindIO))
	})
}

func TestSetup_ContinueWithInvalidPathIsNoop(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	m, setup := setupMachine(t, f)

	send(t, m, SetupKindSelected{Kind: launcher.KindCustom})
	send(t, m, SetupPathChanged{Path: "/does/not/exist.exe"})

	cmds := m.Dispatch(SetupContinue{})
	assert.Empty(t, cmds)
	assert.Same(t, setup, m.Active())
	f.cfg.AssertNotCalled(t, "SaveLauncherPath", mock.Anything)
}

func TestSetup_ContinueGoesToMainAndSavesOnce(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.cfg.On("SaveLauncherPath", storeExe).Return(nil).Once()
	m, _ := setupMachine(t, f)

	cmds := m.Dispatch(SetupContinue{})

	// the screen changes before the save has run
	mainScreen := activeAs[*Main](t, m)
	assert.Equal(t, storeExe, mainScreen.LauncherPath)
	f.cfg.AssertNotCalled(t, "SaveLauncherPath", mock.Anything)

	// one save, one instance load
	require.Len(t, cmds, 2)
	settle(t, m, cmds)

	f.cfg.AssertNumberOfCalls(t, "SaveLauncherPath", 1)
	activeAs[*Main](t, m)
}

func TestSetup_SaveFailureReturnsToSetup(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	saveErr := failure.FromIO(errors.New("access denied"))
	f.cfg.On("SaveLauncherPath", legacyExe).Return(saveErr).Once()
	m, _ := setupMachine(t, f)

	send(t, m, SetupKindSelected{Kind: launcher.KindLegacy})
	send(t, m, SetupContinue{})

	errScreen := activeAs[*Error](t, m)
	assert.Equal(t, saveErr, errScreen.Err)

	send(t, m, ErrorContinue{})
	setup := activeAs[*Setup](t, m)
	assert.Equal(t, launcher.KindLegacy, setup.Selection)
	assert.Equal(t, legacyExe, setup.Path)
}

func TestSetup_SaveSnapshotIgnoresLaterEdits(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.cfg.On("SaveLauncherPath", storeExe).Return(errors.New("late failure")).Once()
	m, setup := setupMachine(t, f)

	cmds := m.Dispatch(SetupContinue{})
	require.Len(t, cmds, 2)

	// edits to the live value after confirmation do not leak into the
	// screen restored on error
	setup.Path = "/mutated"

	saved := cmds[0](context.Background())
	m.Dispatch(saved)

	errScreen := activeAs[*Error](t, m)
	restored, ok := errScreen.Previous.(*Setup)
	require.True(t, ok)
	assert.Equal(t, storeExe, restored.Path)
}

func TestLoadSetup_SavedPathMatchesDetected(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.cfg.On("Save").Return(nil)
	f.cfg.On("LauncherPath").Return(legacyExe, true)
	f.detector.On("Detect", mock.Anything).Return(launcher.Detected{Store: storeExe, Legacy: legacyExe})

	setup, err := LoadSetup(context.Background(), f.deps)
	require.NoError(t, err)
	assert.Equal(t, launcher.KindLegacy, setup.Selection)
	assert.Equal(t, legacyExe, setup.Path)
}
