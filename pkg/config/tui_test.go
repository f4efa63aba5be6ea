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
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Not parallel: the TUI config is process-wide.
func TestLoadTUIConfig(t *testing.T) {
	t.Cleanup(func() { SetTUIConfig(DefaultTUIConfig()) })

	t.Run("creates defaults when missing", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, LoadTUIConfig(fs, "/app/tui.toml"))

		assert.Equal(t, DefaultTUIConfig(), GetTUIConfig())
		data, err := afero.ReadFile(fs, "/app/tui.toml")
		require.NoError(t, err)
		assert.Contains(t, string(data), "theme")
		assert.Contains(t, string(data), "default")
	})

	t.Run("reads existing file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/app/tui.toml",
			[]byte("theme = \"dark\"\nmouse = false\n"), 0o600))

		require.NoError(t, LoadTUIConfig(fs, "/app/tui.toml"))
		assert.Equal(t, TUIConfig{Theme: "dark", Mouse: false}, GetTUIConfig())
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/app/tui.toml", []byte("theme = \"dark\"\n"), 0o600))

		require.NoError(t, LoadTUIConfig(fs, "/app/tui.toml"))
		assert.Equal(t, TUIConfig{Theme: "dark", Mouse: true}, GetTUIConfig())
	})

	t.Run("invalid toml", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/app/tui.toml", []byte("theme = = ="), 0o600))

		require.Error(t, LoadTUIConfig(fs, "/app/tui.toml"))
	})

	t.Run("save round trip", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		SetTUIConfig(TUIConfig{Theme: "light", Mouse: false})
		require.NoError(t, SaveTUIConfig(fs, "/app/tui.toml"))

		SetTUIConfig(DefaultTUIConfig())
		require.NoError(t, LoadTUIConfig(fs, "/app/tui.toml"))
		assert.Equal(t, TUIConfig{Theme: "light", Mouse: false}, GetTUIConfig())
	})
}
