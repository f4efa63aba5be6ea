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

	"github.com/AethonProject/aethon/pkg/failure"
	"github.com/AethonProject/aethon/pkg/launcher"
	"github.com/rs/zerolog/log"
)

// Setup lets the user choose the launcher executable.
type Setup struct {
	Detected  launcher.Detected
	Path      string
	Selection launcher.Kind
}

type (
	SetupKindSelected struct{ Kind launcher.Kind }
	SetupPathChanged  struct{ Path string }
	SetupSelect       struct{}
	SetupPicked       struct {
		Err  error
		Path string
		OK   bool
	}
	SetupContinue struct{}
)

// LoadSetup writes the current config so config.json exists, then detects
// installed launchers and preselects one. A previously saved path that
// matches no detected install is offered as Custom.
func LoadSetup(ctx context.Context, d *Deps) (*Setup, error) {
	if err := d.Config.Save(); err != nil {
		return nil, err
	}

	detected := d.Detector.Detect(ctx)
	kind, path := detected.Preferred()

	if saved, ok := d.Config.LauncherPath(); ok && saved != "" {
		switch saved {
		case detected.Store:
			kind, path = launcher.KindStore, saved
		case detected.Legacy:
			kind, path = launcher.KindLegacy, saved
		default:
			kind, path = launcher.KindCustom, saved
		}
	}

	return &Setup{
		Detected:  detected,
		Selection: kind,
		Path:      path,
	}, nil
}

func (*Setup) Name() string { return "setup" }

func (*Setup) Init(*Deps) Cmd { return nil }

// Editable reports whether the path can be typed or picked.
func (s *Setup) Editable() bool {
	return s.Selection == launcher.KindCustom
}

// CanContinue reports whether the current path is a usable launcher.
func (s *Setup) CanContinue(d *Deps) bool {
	return d.ValidLauncher(s.Path)
}

func (s *Setup) Update(d *Deps, msg Msg) (Cmd, Screen) {
	switch msg := msg.(type) {
	case SetupKindSelected:
		s.Selection = msg.Kind
		if msg.Kind != launcher.KindCustom {
			s.Path = s.Detected.PathFor(msg.Kind)
		}
	case SetupPathChanged:
		if s.Editable() {
			s.Path = msg.Path
		}
	case SetupSelect:
		if !s.Editable() {
			return nil, nil
		}
		return func(ctx context.Context) Msg {
			path, ok, err := d.Picker.PickLauncher(ctx)
			return SetupPicked{Path: path, OK: ok, Err: err}
		}, nil
	case SetupPicked:
		if msg.Err != nil {
			log.Error().Err(msg.Err).Msg("file picker failed")
			return nil, NewError(failure.FromIO(msg.Err), s)
		}
		if msg.OK {
			s.Path = msg.Path
		}
	case SetupContinue:
		return s.confirm(d)
	}
	return nil, nil
}

func (s *Setup) confirm(d *Deps) (Cmd, Screen) {
	if !s.CanContinue(d) {
		log.Debug().Str("path", s.Path).Msg("ignoring continue with invalid launcher")
		return nil, nil
	}

	snapshot := *s
	path := s.Path
	save := func(context.Context) Msg {
		return ConfigSaved{Err: d.Config.SaveLauncherPath(path), Origin: &snapshot}
	}
	return save, NewMain(path)
}
