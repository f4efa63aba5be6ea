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
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/AethonProject/aethon/pkg/instances"
	"github.com/rs/zerolog/log"
)

// NoHover is Main.Hovered when the pointer is over no card.
const NoHover = -1

// Main lists instances and runs the launcher against one of them.
type Main struct {
	LauncherPath string
	NewName      string
	Instances    []instances.Instance
	Hovered      int
	Loaded       bool
}

func NewMain(launcherPath string) *Main {
	return &Main{
		LauncherPath: launcherPath,
		Hovered:      NoHover,
	}
}

type (
	MainInstancesLoaded struct {
		Err       error
		Instances []instances.Instance
	}
	MainHover struct {
		Index  int
		Inside bool
	}
	MainNameChanged struct{ Name string }
	MainAdd         struct{}
	MainCreated     struct {
		Err      error
		Instance instances.Instance
	}
	MainRun         struct{ Index int }
	MainRunFinished struct {
		Err      error
		Instance instances.Instance
	}
	MainChangeLauncher struct{}
	MainSetupLoaded    struct {
		Err   error
		Setup *Setup
	}
)

func (*Main) Name() string { return "main" }

// Init loads the instance list.
func (*Main) Init(d *Deps) Cmd {
	return func(context.Context) Msg {
		list, err := d.Instances.CollectAll()
		return MainInstancesLoaded{Instances: list, Err: err}
	}
}

func (m *Main) Update(d *Deps, msg Msg) (Cmd, Screen) {
	switch msg := msg.(type) {
	case MainInstancesLoaded:
		if msg.Err != nil {
			log.Error().Err(msg.Err).Msg("failed to load instances")
			return nil, NewError(msg.Err, m)
		}
		m.Instances = msg.Instances
		m.Loaded = true
		m.Hovered = NoHover
	case MainHover:
		switch {
		case msg.Inside:
			m.Hovered = msg.Index
		case m.Hovered == msg.Index:
			m.Hovered = NoHover
		}
	case MainNameChanged:
		m.NewName = msg.Name
	case MainAdd:
		name := strings.TrimSpace(m.NewName)
		if name == "" {
			return nil, nil
		}
		return func(context.Context) Msg {
			inst, err := d.Instances.Create(name)
			return MainCreated{Instance: inst, Err: err}
		}, nil
	case MainCreated:
		if msg.Err != nil {
			log.Error().Err(msg.Err).Msg("failed to create instance")
			return nil, NewError(msg.Err, m)
		}
		m.NewName = ""
		m.Instances = append(m.Instances, msg.Instance)
		slices.SortFunc(m.Instances, func(a, b instances.Instance) int {
			return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Folder, b.Folder))
		})
	case MainRun:
		if msg.Index < 0 || msg.Index >= len(m.Instances) {
			return nil, nil
		}
		inst := m.Instances[msg.Index]
		exe := m.LauncherPath
		return func(ctx context.Context) Msg {
			return MainRunFinished{Instance: inst, Err: d.Runner.Run(ctx, exe, inst)}
		}, nil
	case MainRunFinished:
		if msg.Err != nil {
			log.Error().Err(msg.Err).Str("instance", msg.Instance.Name).Msg("failed to run launcher")
			return nil, NewError(msg.Err, m)
		}
		log.Info().Str("instance", msg.Instance.Name).Msg("launcher started")
	case MainChangeLauncher:
		return func(ctx context.Context) Msg {
			setup, err := LoadSetup(ctx, d)
			return MainSetupLoaded{Setup: setup, Err: err}
		}, nil
	case MainSetupLoaded:
		if msg.Err != nil {
			log.Error().Err(msg.Err).Msg("failed to load setup")
			return nil, NewError(msg.Err, m)
		}
		return nil, msg.Setup
	}
	return nil, nil
}
