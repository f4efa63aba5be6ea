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

package tui

import (
	"context"
	"fmt"

	"github.com/AethonProject/aethon/pkg/config"
	"github.com/AethonProject/aethon/pkg/screens"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

// Host runs the screen machine inside a tview application. The machine and
// the views are only touched on the tview event goroutine; commands run on
// their own goroutines and post their results back with QueueUpdateDraw.
type Host struct {
	ctx     context.Context
	app     *tview.Application
	machine *screens.Machine
	env     *env
	shown   screens.Screen
	view    view
}

type Option func(*Host)

// WithScreen draws to screen instead of the terminal.
func WithScreen(screen tcell.Screen) Option {
	return func(h *Host) {
		h.app.SetScreen(screen)
	}
}

func NewHost(deps *screens.Deps, cfg config.TUIConfig, opts ...Option) *Host {
	if !SetCurrentTheme(cfg.Theme) {
		log.Warn().Str("theme", cfg.Theme).Msg("unknown theme, using default")
		SetCurrentTheme(ThemeDefault.Name)
	}

	h := &Host{
		ctx:     context.Background(),
		app:     tview.NewApplication().EnableMouse(cfg.Mouse),
		machine: screens.NewMachine(deps),
	}
	h.env = &env{
		app:  h.app,
		deps: deps,
		send: h.dispatch,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run shows the first screen and blocks until the user quits or ctx is
// cancelled.
func (h *Host) Run(ctx context.Context) error {
	h.ctx = ctx
	stop := context.AfterFunc(ctx, h.app.Stop)
	defer stop()

	h.render()
	h.runCmds(h.machine.Start())

	if err := h.app.Run(); err != nil {
		return fmt.Errorf("failed to run application: %w", err)
	}
	return nil
}

// Active returns the active screen. Only call it from the event goroutine
// or after Run returns.
func (h *Host) Active() screens.Screen {
	return h.machine.Active()
}

func (h *Host) dispatch(msg screens.Msg) {
	cmds := h.machine.Dispatch(msg)
	if h.machine.Done() {
		log.Info().Msg("quit requested")
		h.app.Stop()
		return
	}
	h.render()
	h.runCmds(cmds)
}

func (h *Host) runCmds(cmds []screens.Cmd) {
	for _, cmd := range cmds {
		go func() {
			msg := cmd(h.ctx)
			h.app.QueueUpdateDraw(func() {
				h.dispatch(msg)
			})
		}()
	}
}

// render rebuilds the view when the active screen changed and refreshes it
// otherwise.
func (h *Host) render() {
	active := h.machine.Active()
	if h.view != nil && active == h.shown {
		h.view.Refresh()
		return
	}

	h.shown = active
	h.view = newView(h.env, active)
	h.app.SetRoot(h.view.Root(), true)
	h.app.SetFocus(h.view.FocusTarget())
}
