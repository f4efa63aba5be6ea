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

package config

import (
	"fmt"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// SaveLauncherPath must not call another locking method while holding the
// lock. With -tags=deadlock, go-deadlock panics on recursive locks.
func TestSaveLauncherPath_NoRecursiveLock(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(afero.NewMemMapFs(), testCfgPath)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- cfg.SaveLauncherPath("/bin/launcher")
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("SaveLauncherPath() deadlocked")
	}
}

func TestConfig_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(afero.NewMemMapFs(), testCfgPath)
	require.NoError(t, err)

	done := make(chan struct{})
	for i := range 10 {
		go func() {
			for j := range 50 {
				cfg.SetLauncherPath(fmt.Sprintf("/bin/l%d-%d", i, j))
				_, _ = cfg.LauncherPath()
				_ = cfg.Save()
			}
			done <- struct{}{}
		}()
	}

	for range 10 {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("concurrent access deadlocked")
		}
	}

	_, ok := cfg.LauncherPath()
	require.True(t, ok)
}
