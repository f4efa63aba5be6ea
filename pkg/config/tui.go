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
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync/atomic"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// TUIConfig holds UI preferences.
type TUIConfig struct {
	Theme string `toml:"theme"`
	Mouse bool   `toml:"mouse"`
}

var tuiCfg atomic.Value

// DefaultTUIConfig returns the default TUI configuration.
func DefaultTUIConfig() TUIConfig {
	return TUIConfig{
		Theme: "default",
		Mouse: true,
	}
}

// GetTUIConfig returns the current TUI configuration.
func GetTUIConfig() TUIConfig {
	val := tuiCfg.Load()
	if val == nil {
		return DefaultTUIConfig()
	}
	cfg, ok := val.(TUIConfig)
	if !ok {
		return DefaultTUIConfig()
	}
	return cfg
}

// SetTUIConfig updates the TUI configuration in memory.
func SetTUIConfig(cfg TUIConfig) {
	tuiCfg.Store(cfg)
}

// LoadTUIConfig loads the TUI configuration from tuiPath, creating the file
// with defaults if it doesn't exist.
func LoadTUIConfig(fsys afero.Fs, tuiPath string) error {
	tuiPath = filepath.Clean(tuiPath)

	data, err := afero.ReadFile(fsys, tuiPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("path", tuiPath).Msg("creating default TUI config")
		tuiCfg.Store(DefaultTUIConfig())
		if err := SaveTUIConfig(fsys, tuiPath); err != nil {
			return fmt.Errorf("failed to create TUI config: %w", err)
		}
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to read TUI config: %w", err)
	}

	cfg := DefaultTUIConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to unmarshal TUI config: %w", err)
	}

	tuiCfg.Store(cfg)
	return nil
}

// SaveTUIConfig writes the current TUI configuration to tuiPath.
func SaveTUIConfig(fsys afero.Fs, tuiPath string) error {
	data, err := toml.Marshal(GetTUIConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal TUI config: %w", err)
	}

	if err := afero.WriteFile(fsys, tuiPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write TUI config: %w", err)
	}

	return nil
}
