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

package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/AethonProject/aethon/pkg/config"
	"github.com/AethonProject/aethon/pkg/screens"
	"github.com/AethonProject/aethon/pkg/ui/tui"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// RunApp shows the UI until the user quits or the process is signalled.
func RunApp(
	ctx context.Context,
	deps *screens.Deps,
	tuiCfg config.TUIConfig,
	opts ...tui.Option,
) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	host := tui.NewHost(deps, tuiCfg, opts...)
	finished := make(chan struct{})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(finished)
		return host.Run(gctx)
	})
	g.Go(func() error {
		select {
		case <-finished:
		case <-gctx.Done():
			log.Info().Msg("shutdown requested")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("error running UI")
		return err
	}

	log.Info().Str("screen", host.Active().Name()).Msg("exited")
	return nil
}
