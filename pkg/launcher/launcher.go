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

// Package launcher finds the external game launcher and starts it against an
// instance by registering a custom profile in the launcher's profile file.
package launcher

import (
	"context"
	"encoding/json"

	"github.com/AethonProject/aethon/pkg/failure"
	"github.com/AethonProject/aethon/pkg/helpers"
	"github.com/AethonProject/aethon/pkg/instances"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	// ProfileKey is the only entry under "profiles" Aethon writes.
	ProfileKey    = "aethon"
	profileName   = "Aethon"
	profileType   = "custom"
	latestRelease = "latest-release"
	profileIcon   = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAIAAAACAAQMAAAD58POIAAAABlBMVEUAAAD4APit1uGJAAAAI0lEQVRIx2P4DwUMMDAqMCowKjAqQKTAaDCMCowKjAqQKQAABpD8LlM5SL4AAAAASUVORK5CYII"
)

// Profile is the entry upserted under profiles.aethon.
type Profile struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	Icon          string `json:"icon"`
	LastVersionID string `json:"lastVersionId"`
	GameDir       string `json:"gameDir"`
}

func profileFor(inst instances.Instance) Profile {
	return Profile{
		Name:          profileName,
		Type:          profileType,
		Icon:          profileIcon,
		LastVersionID: latestRelease,
		GameDir:       inst.Path,
	}
}

// Launcher runs the external launcher for an instance.
type Launcher struct {
	fs          afero.Fs
	starter     helpers.ProcessStarter
	profilePath string
}

func New(fsys afero.Fs, starter helpers.ProcessStarter, profilePath string) *Launcher {
	return &Launcher{
		fs:          fsys,
		starter:     starter,
		profilePath: profilePath,
	}
}

// Run points the Aethon profile at inst and starts launcherExe detached. It
// stops at the first failing step; the launcher is never waited on.
func (l *Launcher) Run(ctx context.Context, launcherExe string, inst instances.Instance) error {
	if err := l.UpsertProfile(inst); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return failure.FromIO(err)
	}

	log.Info().
		Str("launcher", launcherExe).
		Str("instance", inst.Name).
		Msg("starting launcher")
	if err := l.starter.Start(launcherExe); err != nil {
		return failure.FromIO(err)
	}
	return nil
}

// UpsertProfile rewrites the profile file with profiles.aethon set for inst.
// Every other key is written back as it was read.
func (l *Launcher) UpsertProfile(inst instances.Instance) error {
	data, err := afero.ReadFile(l.fs, l.profilePath)
	if err != nil {
		return failure.FromIO(err)
	}

	updated, err := upsertProfile(data, profileFor(inst))
	if err != nil {
		return err
	}

	if err := afero.WriteFile(l.fs, l.profilePath, updated, 0o600); err != nil {
		return failure.FromIO(err)
	}

	log.Debug().Str("path", l.profilePath).Str("gameDir", inst.Path).Msg("updated launcher profile")
	return nil
}

func upsertProfile(data []byte, profile Profile) ([]byte, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, failure.FromJSON(err)
	}
	if doc == nil {
		doc = make(map[string]json.RawMessage)
	}

	var profiles map[string]json.RawMessage
	if raw, ok := doc["profiles"]; ok {
		if err := json.Unmarshal(raw, &profiles); err != nil {
			log.Warn().Err(err).Msg("profiles is not an object, replacing")
			profiles = nil
		}
	}
	if profiles == nil {
		profiles = make(map[string]json.RawMessage)
	}

	entry, err := json.Marshal(profile)
	if err != nil {
		return nil, failure.FromJSON(err)
	}
	profiles[ProfileKey] = entry

	rawProfiles, err := json.Marshal(profiles)
	if err != nil {
		return nil, failure.FromJSON(err)
	}
	doc["profiles"] = rawProfiles

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, failure.FromJSON(err)
	}
	return out, nil
}
