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
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// FSHelper provides utilities for filesystem mocking in tests
type FSHelper struct {
	Fs afero.Fs
}

// NewMemoryFS creates a new in-memory filesystem for testing
func NewMemoryFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewMemMapFs(),
	}
}

// CreateJSONFile marshals v and writes it to path, creating parent
// directories.
func (h *FSHelper) CreateJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	return h.WriteFile(path, data)
}

// CreateLauncher writes a fake launcher executable at path. Outside Windows
// the execute bits are what make it valid, so callers pick a ".exe" name when
// the test must pass on every platform.
func (h *FSHelper) CreateLauncher(path string) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create launcher directory: %w", err)
	}
	if err := afero.WriteFile(h.Fs, path, []byte("MZ"), 0o755); err != nil {
		return fmt.Errorf("failed to write launcher %s: %w", path, err)
	}
	return nil
}

// CreateInstance writes an instance folder with metadata under root.
func (h *FSHelper) CreateInstance(root, name, folder string) (string, error) {
	dir := filepath.Join(root, folder)
	err := h.CreateJSONFile(filepath.Join(dir, "instance.json"), map[string]string{
		"name":   name,
		"folder": folder,
	})
	if err != nil {
		return "", err
	}
	return dir, nil
}

// CreateDirectoryStructure creates a directory tree. String and []byte values
// are files, maps are directories, nil is an empty directory.
func (h *FSHelper) CreateDirectoryStructure(basePath string, structure map[string]any) error {
	for name, content := range structure {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := h.WriteFile(fullPath, []byte(v)); err != nil {
				return err
			}
		case []byte:
			if err := h.WriteFile(fullPath, v); err != nil {
				return err
			}
		case map[string]any:
			if err := h.Fs.MkdirAll(fullPath, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", fullPath, err)
			}
			if err := h.CreateDirectoryStructure(fullPath, v); err != nil {
				return err
			}
		case nil:
			if err := h.Fs.MkdirAll(fullPath, 0o755); err != nil {
				return fmt.Errorf("failed to create empty directory %s: %w", fullPath, err)
			}
		}
	}
	return nil
}

// FileExists checks if a file exists
func (h *FSHelper) FileExists(path string) bool {
	exists, err := afero.Exists(h.Fs, path)
	if err != nil {
		return false
	}
	return exists
}

// ReadJSON decodes the JSON file at path into dest.
func (h *FSHelper) ReadJSON(path string, dest any) error {
	data, err := afero.ReadFile(h.Fs, path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// WriteFile writes content to a file, creating parent directories.
func (h *FSHelper) WriteFile(path string, content []byte) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for file %s: %w", path, err)
	}
	if err := afero.WriteFile(h.Fs, path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// SampleProfiles returns a launcher profile document shaped like the one the
// official launcher writes.
func SampleProfiles() map[string]any {
	return map[string]any{
		"profiles": map[string]any{
			"c1f2e0a4": map[string]any{
				"name":          "",
				"type":          "latest-release",
				"lastVersionId": "latest-release",
				"icon":          "Grass",
			},
		},
		"settings": map[string]any{
			"enableSnapshots": false,
			"locale":          "en-us",
		},
		"version": 3,
	}
}
