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
	"os/exec"
	"path/filepath"
)

// ProcessStarter abstracts spawning external programs so launches can be
// faked in tests.
type ProcessStarter interface {
	// Start runs name detached from this process and returns as soon as it
	// has started. The child is never waited on.
	Start(name string, args ...string) error
}

// RealProcessStarter spawns real processes.
type RealProcessStarter struct{}

func (*RealProcessStarter) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...) //nolint:gosec // launcher path is chosen by the user
	cmd.Dir = filepath.Dir(name)
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("failed to release %s: %w", name, err)
	}
	return nil
}
