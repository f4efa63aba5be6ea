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
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/AethonProject/aethon/pkg/failure"
	"github.com/adrg/xdg"
	"github.com/spf13/afero"
)

const (
	AppName      = "aethon"
	ConfigFile   = "config.json"
	TUIFile      = "tui.toml"
	InstancesDir = "instance"
	LogFile      = "aethon.log"
	// ProfileSuffix locates the external launcher's profile file relative to
	// the per-user config directory.
	ProfileSuffix = ".minecraft/launcher_profiles.json"
	// AppDirEnv overrides the program directory.
	AppDirEnv = "AETHON_DIR"
)

// Paths holds every location Aethon reads or writes.
type Paths struct {
	AppDir    string
	ExeName   string
	Config    string
	TUI       string
	Instances string
	Profile   string
	LogDir    string
}

// ExeDir returns the directory containing the running executable.
func ExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", failure.FromIO(err)
	}
	dir := filepath.Dir(exe)
	if dir == exe {
		return "", failure.NoParent(exe)
	}
	return dir, nil
}

// ResolvePaths builds the path set for a program living in appDir. An empty
// appDir falls back to AETHON_DIR and then to the executable's directory.
func ResolvePaths(appDir string) (Paths, error) {
	exeName := ""
	if exe, err := os.Executable(); err == nil {
		exeName = filepath.Base(exe)
	}

	if appDir == "" {
		appDir = os.Getenv(AppDirEnv)
	}
	if appDir == "" {
		dir, err := ExeDir()
		if err != nil {
			return Paths{}, err
		}
		appDir = dir
	}

	profile, err := ProfilePath()
	if err != nil {
		return Paths{}, err
	}

	return Paths{
		AppDir:    appDir,
		ExeName:   exeName,
		Config:    filepath.Join(appDir, ConfigFile),
		TUI:       filepath.Join(appDir, TUIFile),
		Instances: filepath.Join(appDir, InstancesDir),
		Profile:   profile,
		LogDir:    LogDir(),
	}, nil
}

// ProfilePath returns the external launcher's profile file.
func ProfilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", failure.FromIO(fmt.Errorf("%w: %w", fs.ErrNotExist, err))
	}
	return filepath.Join(dir, filepath.FromSlash(ProfileSuffix)), nil
}

// LogDir is the per-user state directory holding the log file.
func LogDir() string {
	return filepath.Join(xdg.StateHome, AppName)
}

var ownedEntries = []string{ConfigFile, TUIFile, InstancesDir}

// FolderIsClean reports whether dir contains nothing except the executable
// and the files Aethon itself creates there.
func FolderIsClean(fsys afero.Fs, dir, exeName string) (bool, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return false, failure.FromIO(err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if exeName != "" && sameFileName(name, exeName) {
			continue
		}
		if slices.ContainsFunc(ownedEntries, func(owned string) bool {
			return sameFileName(name, owned)
		}) {
			continue
		}
		return false, nil
	}
	return true, nil
}

func sameFileName(a, b string) bool {
	if caseInsensitiveFS {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// IsLauncherExecutable reports whether path is an existing regular file the
// platform can execute.
func IsLauncherExecutable(fsys afero.Fs, path string) bool {
	if path == "" {
		return false
	}
	info, err := fsys.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return isExecutable(path, info)
}
