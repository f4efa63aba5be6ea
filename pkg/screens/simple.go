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

	"github.com/rs/zerolog/log"
)

// Startup shows a loading message while the preconditions are checked.
type Startup struct{}

// StartupLoaded carries the screen the checks decided on.
type StartupLoaded struct {
	Next Screen
}

func (*Startup) Name() string { return "startup" }

func (s *Startup) Init(d *Deps) Cmd {
	return func(ctx context.Context) Msg {
		return StartupLoaded{Next: s.load(ctx, d)}
	}
}

func (s *Startup) load(ctx context.Context, d *Deps) Screen {
	if !d.Guard.TryLock() {
		log.Warn().Msg("another instance is already running")
		return &SingleInstanceWarn{}
	}

	clean, err := d.FolderClean()
	if err != nil {
		log.Error().Err(err).Msg("failed to read program directory")
	}
	if err != nil || !clean {
		return &FolderNotEmptyWarn{}
	}

	if err := reloadConfig(d); err != nil {
		return NewError(err, s)
	}

	if path, ok := d.Config.LauncherPath(); ok && d.ValidLauncher(path) {
		return NewMain(path)
	}

	setup, err := LoadSetup(ctx, d)
	if err != nil {
		return NewError(err, s)
	}
	return setup
}

// reloadConfig reads config.json again. A missing file is the first run.
func reloadConfig(d *Deps) error {
	err := d.Config.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	log.Error().Err(err).Msg("failed to load config")
	return err
}

func (*Startup) Update(_ *Deps, msg Msg) (Cmd, Screen) {
	if loaded, ok := msg.(StartupLoaded); ok {
		return nil, loaded.Next
	}
	return nil, nil
}

// SingleInstanceWarn tells the user another copy is running.
type SingleInstanceWarn struct{}

type SingleInstanceOk struct{}

func (*SingleInstanceWarn) Name() string { return "single_instance_warn" }

func (*SingleInstanceWarn) Init(*Deps) Cmd { return nil }

func (*SingleInstanceWarn) Update(_ *Deps, msg Msg) (Cmd, Screen) {
	if _, ok := msg.(SingleInstanceOk); ok {
		return quitCmd, nil
	}
	return nil, nil
}

// FolderNotEmptyWarn asks the user to move the program to an empty folder.
type FolderNotEmptyWarn struct{}

type (
	FolderWarnContinue struct{}
	FolderWarnClose    struct{}
	FolderWarnLoaded   struct {
		Err   error
		Setup *Setup
	}
)

func (*FolderNotEmptyWarn) Name() string { return "folder_not_empty_warn" }

func (*FolderNotEmptyWarn) Init(*Deps) Cmd { return nil }

func (w *FolderNotEmptyWarn) Update(d *Deps, msg Msg) (Cmd, Screen) {
	switch msg := msg.(type) {
	case FolderWarnContinue:
		return func(ctx context.Context) Msg {
			if err := reloadConfig(d); err != nil {
				return FolderWarnLoaded{Err: err}
			}
			setup, err := LoadSetup(ctx, d)
			return FolderWarnLoaded{Setup: setup, Err: err}
		}, nil
	case FolderWarnClose:
		return quitCmd, nil
	case FolderWarnLoaded:
		if msg.Err != nil {
			log.Error().Err(msg.Err).Msg("failed to load setup")
			return nil, NewError(msg.Err, w)
		}
		return nil, msg.Setup
	}
	return nil, nil
}

// Error shows a failure and returns to the screen it interrupted.
type Error struct {
	Err      error
	Previous Screen
}

type ErrorContinue struct{}

func NewError(err error, previous Screen) *Error {
	return &Error{Err: err, Previous: previous}
}

func (*Error) Name() string { return "error" }

func (*Error) Init(*Deps) Cmd { return nil }

func (e *Error) Update(_ *Deps, msg Msg) (Cmd, Screen) {
	if _, ok := msg.(ErrorContinue); ok {
		return nil, e.Previous
	}
	return nil, nil
}
