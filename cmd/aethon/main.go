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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/AethonProject/aethon/pkg/cli"
	"github.com/AethonProject/aethon/pkg/helpers"
	"github.com/AethonProject/aethon/pkg/ui/picker"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := cli.SetupFlags()
	flags.Pre()

	fs := afero.NewOsFs()
	env, err := flags.Setup(fs, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", err)
			log.Fatal().Msgf("panic: %v", err)
		}
	}()

	guard := helpers.NewSingleInstance(helpers.AppID)
	defer func() {
		if err := guard.Release(); err != nil {
			log.Error().Err(err).Msg("error releasing single instance lock")
		}
	}()

	deps := cli.NewDeps(
		fs, env,
		&helpers.RealProcessStarter{},
		picker.NewNative(env.Paths.AppDir),
		guard,
	)

	return cli.RunApp(context.Background(), deps, env.TUI)
}
