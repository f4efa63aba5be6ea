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

// Package picker opens the native file chooser used to locate a launcher.
package picker

import (
	"context"
	"errors"
	"fmt"

	"github.com/AethonProject/aethon/pkg/helpers"
	"github.com/nixinwang/dialog"
	"github.com/rs/zerolog/log"
)

// Native picks files with the operating system's file dialog.
type Native struct {
	startDir string
}

func NewNative(startDir string) *Native {
	return &Native{startDir: startDir}
}

// PickLauncher blocks until the user picks a file or closes the dialog.
// Closing the dialog reports ok false with no error.
func (n *Native) PickLauncher(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, fmt.Errorf("pick launcher: %w", err)
	}

	b := dialog.File().Title("Select Minecraft Launcher")
	if helpers.ExecutableExt != "" {
		b = b.Filter("Application", helpers.ExecutableExt)
	}
	if n.startDir != "" {
		b = b.SetStartDir(n.startDir)
	}

	path, err := b.Load()
	if errors.Is(err, dialog.ErrCancelled) {
		log.Debug().Msg("launcher picker cancelled")
		return "", false, nil
	} else if err != nil {
		return "", false, fmt.Errorf("open file dialog: %w", err)
	}

	log.Info().Str("path", path).Msg("launcher picked")
	return path, true, nil
}
