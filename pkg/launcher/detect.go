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

package launcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AethonProject/aethon/pkg/helpers"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/spf13/afero"
)

// Kind is which launcher install the user picked.
type Kind int

const (
	KindNone Kind = iota
	KindStore
	KindLegacy
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindStore:
		return "Store"
	case KindLegacy:
		return "Legacy"
	case KindCustom:
		return "Custom"
	default:
		return "None"
	}
}

// Detected holds the first Store and Legacy installs found. Empty means not
// found.
type Detected struct {
	Store  string
	Legacy string
}

// Preferred returns the launcher to preselect. Store wins over Legacy.
func (d Detected) Preferred() (Kind, string) {
	switch {
	case d.Store != "":
		return KindStore, d.Store
	case d.Legacy != "":
		return KindLegacy, d.Legacy
	default:
		return KindNone, ""
	}
}

// PathFor returns the detected path for a preset kind.
func (d Detected) PathFor(kind Kind) string {
	switch kind {
	case KindStore:
		return d.Store
	case KindLegacy:
		return d.Legacy
	default:
		return ""
	}
}

// MountLister returns the mount points to probe.
type MountLister func(ctx context.Context) ([]string, error)

// Detector probes every mounted disk for well-known launcher installs.
type Detector struct {
	fs     afero.Fs
	mounts MountLister
}

func NewDetector(fsys afero.Fs) *Detector {
	return &Detector{fs: fsys, mounts: SystemMounts}
}

// NewDetectorWithMounts is NewDetector with a custom mount source.
func NewDetectorWithMounts(fsys afero.Fs, mounts MountLister) *Detector {
	return &Detector{fs: fsys, mounts: mounts}
}

// Detect never fails: an unreadable partition table means nothing is found.
func (d *Detector) Detect(ctx context.Context) Detected {
	mounts, err := d.mounts(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to list partitions")
		return Detected{}
	}

	var found Detected
	for _, mount := range mounts {
		if found.Store == "" {
			found.Store = d.probe(mount, storeCandidates)
		}
		if found.Legacy == "" {
			found.Legacy = d.probe(mount, legacyCandidates)
		}
	}

	log.Debug().
		Str("store", found.Store).
		Str("legacy", found.Legacy).
		Msg("launcher detection finished")
	return found
}

func (d *Detector) probe(mount string, candidates []string) string {
	for _, rel := range candidates {
		path := filepath.Join(mount, filepath.FromSlash(rel))
		if helpers.IsLauncherExecutable(d.fs, path) {
			return path
		}
	}
	return ""
}

// SystemMounts lists mount points of physical partitions via gopsutil.
func SystemMounts(ctx context.Context) ([]string, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list partitions: %w", err)
	}

	mounts := make([]string, 0, len(parts))
	for _, p := range parts {
		mount := p.Mountpoint
		// "C:" alone is relative to the drive's working directory
		if strings.HasSuffix(mount, ":") {
			mount += string(filepath.Separator)
		}
		mounts = append(mounts, mount)
	}
	return mounts, nil
}
