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

// Package screens is the application state machine. Exactly one Screen is
// active; user input and async results arrive as messages, and a screen's
// Update may request a transition to another screen.
package screens

import (
	"context"

	"github.com/AethonProject/aethon/pkg/instances"
	"github.com/AethonProject/aethon/pkg/launcher"
	"github.com/rs/zerolog/log"
)

// Msg is anything fed to Machine.Dispatch.
type Msg any

// Cmd is a one-shot async task. Its result is dispatched back to the machine.
type Cmd func(ctx context.Context) Msg

// ConfigSaved is the result of the save started when Setup is confirmed. A
// failure replaces whatever screen is active with an Error wrapping Origin.
type ConfigSaved struct {
	Err    error
	Origin *Setup
}

// Quit asks the host to shut down.
type Quit struct{}

func quitCmd(context.Context) Msg {
	return Quit{}
}

// ConfigStore is the part of config.Instance the screens use.
type ConfigStore interface {
	// Load rereads the file. A missing file leaves the defaults in place
	// and reports fs.ErrNotExist.
	Load() error
	LauncherPath() (string, bool)
	SaveLauncherPath(path string) error
	Save() error
}

type InstanceStore interface {
	Create(name string) (instances.Instance, error)
	CollectAll() ([]instances.Instance, error)
}

type Runner interface {
	Run(ctx context.Context, launcherExe string, inst instances.Instance) error
}

type Detector interface {
	Detect(ctx context.Context) launcher.Detected
}

// Picker asks the user for a launcher executable. ok is false when the user
// cancelled.
type Picker interface {
	PickLauncher(ctx context.Context) (path string, ok bool, err error)
}

// Guard is the single-instance lock.
type Guard interface {
	TryLock() bool
}

// Deps is everything the screens reach outside the process for.
type Deps struct {
	Config    ConfigStore
	Instances InstanceStore
	Runner    Runner
	Detector  Detector
	Picker    Picker
	Guard     Guard
	// FolderClean reports whether the program directory holds only files
	// Aethon owns.
	FolderClean func() (bool, error)
	// ValidLauncher reports whether path can be started as the launcher.
	ValidLauncher func(path string) bool
}

// Screen is one exclusive UI mode. Update handles the screen's own messages
// and ignores everything else; a non-nil Screen return is the next screen.
type Screen interface {
	Name() string
	Init(d *Deps) Cmd
	Update(d *Deps, msg Msg) (Cmd, Screen)
}

// Machine routes messages to the active screen and applies transitions. It
// is not safe for concurrent use; the host dispatches from one goroutine.
type Machine struct {
	deps   *Deps
	active Screen
	done   bool
}

// NewMachine returns a machine on the Startup screen.
func NewMachine(deps *Deps) *Machine {
	return &Machine{
		deps:   deps,
		active: &Startup{},
	}
}

// Start returns the initial commands for the Startup screen.
func (m *Machine) Start() []Cmd {
	return appendCmd(nil, m.active.Init(m.deps))
}

// Active returns the screen to render.
func (m *Machine) Active() Screen {
	return m.active
}

// Done reports whether Quit has been dispatched.
func (m *Machine) Done() bool {
	return m.done
}

// Dispatch applies msg and returns the commands to run.
func (m *Machine) Dispatch(msg Msg) []Cmd {
	switch msg := msg.(type) {
	case nil:
		return nil
	case Quit:
		m.done = true
		return nil
	case ConfigSaved:
		if msg.Err == nil {
			log.Debug().Msg("launcher path saved")
			return nil
		}
		log.Error().Err(msg.Err).Msg("failed to save config")
		var origin Screen = m.active
		if msg.Origin != nil {
			origin = msg.Origin
		}
		return m.transition(NewError(msg.Err, origin))
	}

	cmd, next := m.active.Update(m.deps, msg)
	cmds := appendCmd(nil, cmd)
	if next != nil {
		cmds = append(cmds, m.transition(next)...)
	}
	return cmds
}

func (m *Machine) transition(next Screen) []Cmd {
	log.Debug().
		Str("from", m.active.Name()).
		Str("to", next.Name()).
		Msg("screen transition")
	m.active = next
	return appendCmd(nil, next.Init(m.deps))
}

func appendCmd(cmds []Cmd, cmd Cmd) []Cmd {
	if cmd == nil {
		return cmds
	}
	return append(cmds, cmd)
}
