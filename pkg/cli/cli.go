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

package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AethonProject/aethon/pkg/config"
	"github.com/AethonProject/aethon/pkg/helpers"
	"github.com/AethonProject/aethon/pkg/instances"
	"github.com/AethonProject/aethon/pkg/launcher"
	"github.com/AethonProject/aethon/pkg/screens"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

type Flags struct {
	Version *bool
	Debug   *bool
	Dir     *string
}

// SetupFlags defines the CLI flags on the default flag set.
func SetupFlags() *Flags {
	return &Flags{
		Version: flag.Bool(
			"version",
			false,
			"print version and exit",
		),
		Debug: flag.Bool(
			"debug",
			false,
			"enable debug logging",
		),
		Dir: flag.String(
			"dir",
			"",
			"use this directory instead of the executable's",
		),
	}
}

func isFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// Pre parses flags and handles the ones that exit before any setup.
func (f *Flags) Pre() {
	flag.Parse()

	if *f.Version {
		_, _ = fmt.Printf("Aethon v%s\n", config.AppVersion)
		os.Exit(0)
	}
}

// Env is the resolved runtime environment.
type Env struct {
	Config *config.Instance
	TUI    config.TUIConfig
	Paths  helpers.Paths
}

// Setup resolves paths, starts logging and loads both config files.
func (f *Flags) Setup(fsys afero.Fs, logWriters []io.Writer) (*Env, error) {
	dir := ""
	if isFlagPassed("dir") {
		abs, err := filepath.Abs(*f.Dir)
		if err != nil {
			return nil, fmt.Errorf("invalid directory %q: %w", *f.Dir, err)
		}
		dir = abs
	}

	paths, err := helpers.ResolvePaths(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}

	if err := helpers.InitLogging(paths.LogDir, *f.Debug, logWriters); err != nil {
		return nil, err
	}

	log.Info().
		Str("version", config.AppVersion).
		Str("dir", paths.AppDir).
		Msg("starting aethon")

	return LoadEnv(fsys, paths)
}

// LoadEnv reads config.json and tui.toml for an already resolved path set.
// Neither file can fail it; defaults stand in for unreadable files.
func LoadEnv(fsys afero.Fs, paths helpers.Paths) (*Env, error) {
	// A broken config.json is reported again by the startup screen.
	cfg, err := config.NewConfig(fsys, paths.Config)
	if err != nil {
		log.Warn().Err(err).Msg("config not loaded, using defaults")
	}

	if err := config.LoadTUIConfig(fsys, paths.TUI); err != nil {
		log.Warn().Err(err).Msg("using default TUI config")
		config.SetTUIConfig(config.DefaultTUIConfig())
	}

	return &Env{
		Paths:  paths,
		Config: cfg,
		TUI:    config.GetTUIConfig(),
	}, nil
}

// NewDeps wires the real stores and checks for env. The picker and guard
// come from the caller so the native dialog stays out of this package.
func NewDeps(
	fsys afero.Fs,
	env *Env,
	starter helpers.ProcessStarter,
	picker screens.Picker,
	guard screens.Guard,
) *screens.Deps {
	paths := env.Paths
	return &screens.Deps{
		Config:    env.Config,
		Instances: instances.NewStore(fsys, paths.Instances),
		Runner:    launcher.New(fsys, starter, paths.Profile),
		Detector:  launcher.NewDetector(fsys),
		Picker:    picker,
		Guard:     guard,
		FolderClean: func() (bool, error) {
			return helpers.FolderIsClean(fsys, paths.AppDir, paths.ExeName)
		},
		ValidLauncher: func(path string) bool {
			return helpers.IsLauncherExecutable(fsys, path)
		},
	}
}
