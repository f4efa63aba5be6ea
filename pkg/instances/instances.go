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

// Package instances manages instance directories. Each instance is a folder
// under the instances root holding an instance.json metadata file.
package instances

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/AethonProject/aethon/pkg/failure"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// MetadataFile is the name of the metadata file inside every instance folder.
const MetadataFile = "instance.json"

// Instance is an isolated game-data directory. Path is rebuilt from the
// metadata file's location on load and never stored.
type Instance struct {
	Name   string `json:"name"`
	Folder string `json:"folder"`
	Path   string `json:"-"`
}

type createParams struct {
	Name string `validate:"required,max=200"`
}

// Store creates and enumerates instances under a root directory.
type Store struct {
	fs       afero.Fs
	validate *validator.Validate
	root     string
}

func NewStore(fsys afero.Fs, root string) *Store {
	return &Store{
		fs:       fsys,
		root:     root,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Root returns the instances root directory.
func (s *Store) Root() string {
	return s.root
}

// Create makes a new instance folder for name and writes its metadata. The
// folder is derived from the name and suffixed with " (N)" until it does not
// collide with an existing entry.
func (s *Store) Create(name string) (Instance, error) {
	name = strings.TrimSpace(name)
	if err := s.validate.Struct(createParams{Name: name}); err != nil {
		return Instance{}, failure.FromIO(fmt.Errorf("invalid instance name %q: %w: %w", name, fs.ErrInvalid, err))
	}

	if err := s.fs.MkdirAll(s.root, 0o750); err != nil {
		return Instance{}, failure.FromIO(err)
	}

	// Mkdir fails on an existing entry, so the folder is claimed atomically
	// even when creates race.
	base := FolderName(name)
	folder := base
	for n := 1; ; n++ {
		err := s.fs.Mkdir(filepath.Join(s.root, folder), 0o750)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrExist) {
			return Instance{}, failure.FromIO(err)
		}
		folder = base + " (" + strconv.Itoa(n) + ")"
	}

	inst := Instance{
		Name:   name,
		Folder: folder,
		Path:   filepath.Join(s.root, folder),
	}
	if err := s.save(inst); err != nil {
		return Instance{}, err
	}

	log.Info().Str("name", inst.Name).Str("path", inst.Path).Msg("created instance")
	return inst, nil
}

func (s *Store) save(inst Instance) error {
	data, err := json.Marshal(inst)
	if err != nil {
		return failure.FromJSON(err)
	}
	err = afero.WriteFile(s.fs, filepath.Join(inst.Path, MetadataFile), data, 0o600)
	if err != nil {
		return failure.FromIO(err)
	}
	return nil
}

// Load reads the metadata file at metadataPath. The instance's Path is the
// file's parent directory.
func (s *Store) Load(metadataPath string) (Instance, error) {
	dir := filepath.Dir(metadataPath)
	if metadataPath == "" || dir == metadataPath {
		return Instance{}, failure.NoParent(metadataPath)
	}

	data, err := afero.ReadFile(s.fs, metadataPath)
	if err != nil {
		return Instance{}, failure.FromIO(err)
	}

	var inst Instance
	if err := json.Unmarshal(data, &inst); err != nil {
		return Instance{}, failure.FromJSON(err)
	}
	inst.Path = dir

	return inst, nil
}

// CollectAll loads every instance under the root, creating the root if it is
// missing. Children without a metadata file are skipped. The first read or
// decode error aborts the scan.
func (s *Store) CollectAll() ([]Instance, error) {
	if err := s.fs.MkdirAll(s.root, 0o750); err != nil {
		return nil, failure.FromIO(err)
	}

	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		return nil, failure.FromIO(err)
	}

	found := make([]Instance, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.root, entry.Name(), MetadataFile)
		if _, err := s.fs.Stat(metaPath); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debug().Str("dir", entry.Name()).Msg("skipping non-instance directory")
				continue
			}
			return nil, failure.FromIO(err)
		}

		inst, err := s.Load(metaPath)
		if err != nil {
			return nil, err
		}
		found = append(found, inst)
	}

	slices.SortFunc(found, func(a, b Instance) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Folder, b.Folder))
	})

	return found, nil
}
