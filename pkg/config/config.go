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
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/AethonProject/aethon/pkg/failure"
	"github.com/AethonProject/aethon/pkg/helpers/syncutil"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Values is the persisted form of config.json.
type Values struct {
	LauncherPath *string `json:"launcher_path,omitempty"`
}

// Instance is the process-wide configuration. It is created once at startup
// and passed by pointer to whatever needs it.
type Instance struct {
	fs   afero.Fs
	path string
	vals Values
	mu   syncutil.Mutex
}

// NewConfig returns a config with default values, overwritten by the file at
// path if it exists. A missing file is not an error. Any other load error is
// returned together with the defaulted config.
func NewConfig(fsys afero.Fs, path string) (*Instance, error) {
	cfg := &Instance{
		fs:   fsys,
		path: path,
	}

	err := cfg.Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info().Str("path", path).Msg("no config file, using defaults")
			return cfg, nil
		}
		return cfg, err
	}

	return cfg, nil
}

// Path returns the location of config.json.
func (c *Instance) Path() string {
	return c.path
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.path == "" {
		return failure.FromIO(fmt.Errorf("config path not set: %w", fs.ErrInvalid))
	}

	data, err := afero.ReadFile(c.fs, c.path)
	if err != nil {
		return failure.FromIO(err)
	}

	var newVals Values
	if err := json.Unmarshal(data, &newVals); err != nil {
		return failure.FromJSON(err)
	}

	c.vals = newVals
	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveLocked()
}

func (c *Instance) saveLocked() error {
	if c.path == "" {
		return failure.FromIO(fmt.Errorf("config path not set: %w", fs.ErrInvalid))
	}

	data, err := json.MarshalIndent(c.vals, "", "  ")
	if err != nil {
		return failure.FromJSON(err)
	}

	if err := c.fs.MkdirAll(filepath.Dir(c.path), 0o750); err != nil {
		return failure.FromIO(err)
	}
	if err := afero.WriteFile(c.fs, c.path, data, 0o600); err != nil {
		return failure.FromIO(err)
	}

	log.Debug().Str("path", c.path).Msg("saved config")
	return nil
}

// LauncherPath returns the configured launcher executable, if any.
func (c *Instance) LauncherPath() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.vals.LauncherPath == nil {
		return "", false
	}
	return *c.vals.LauncherPath, true
}

func (c *Instance) SetLauncherPath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.LauncherPath = &path
}

// SaveLauncherPath sets the launcher path and writes the file while holding
// the lock once.
func (c *Instance) SaveLauncherPath(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.LauncherPath = &path
	return c.saveLocked()
}
