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
	"github.com/AethonProject/aethon/pkg/screens"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

const (
	AppTitle = "Aethon"

	textLoading        = "Loading..."
	textInstanceWarn   = "Another instance is already running."
	textFolderNotEmpty = "Current folder is not empty, please move the executable to an empty " +
		"folder (Recommended) or continue anyway (Not recommended)."
)

// env is what a view needs from the host.
type env struct {
	app  *tview.Application
	deps *screens.Deps
	send func(screens.Msg)
}

// view renders one screen. A view is built when its screen becomes active
// and refreshed in place after every message while it stays active.
type view interface {
	Root() tview.Primitive
	FocusTarget() tview.Primitive
	Refresh()
}

func newView(e *env, s screens.Screen) view {
	switch s := s.(type) {
	case *screens.Startup:
		return newMessageView(e, textLoading)
	case *screens.SingleInstanceWarn:
		return newMessageView(e, textInstanceWarn).
			addButton("Ok", "Close Aethon.", screens.SingleInstanceOk{})
	case *screens.FolderNotEmptyWarn:
		return newMessageView(e, textFolderNotEmpty).
			addButton("Continue", "Use this folder anyway.", screens.FolderWarnContinue{}).
			addButton("Close", "Close Aethon.", screens.FolderWarnClose{})
	case *screens.Error:
		return newMessageView(e, s.Err.Error(), "Error").
			addButton("Continue", "Return to the previous screen.", screens.ErrorContinue{})
	case *screens.Setup:
		return newSetupView(e, s)
	case *screens.Main:
		return newMainView(e, s)
	default:
		log.Error().Str("screen", s.Name()).Msg("no view for screen")
		return newMessageView(e, "")
	}
}

// messageView is a centered message with an optional row of buttons, each
// sending a fixed message.
type messageView struct {
	e     *env
	frame *PageFrame
	bar   *ButtonBar
}

func newMessageView(e *env, text string, title ...string) *messageView {
	frame := NewPageFrame(e.app).
		SetTitle(append([]string{AppTitle}, title...)...).
		SetContent(CenterWidget(0, 3, messageText(text)))
	return &messageView{e: e, frame: frame}
}

func (v *messageView) addButton(label, help string, msg screens.Msg) *messageView {
	if v.bar == nil {
		v.bar = NewButtonBar()
		v.frame.SetButtonBar(v.bar)
		// nothing in the content takes focus
		v.bar.SetOnUp(nil)
	}
	v.bar.AddButtonWithHelp(label, help, func() { v.e.send(msg) })
	return v
}

func (v *messageView) Root() tview.Primitive {
	return v.frame
}

func (v *messageView) FocusTarget() tview.Primitive {
	if v.bar != nil {
		return v.bar
	}
	return v.frame
}

func (*messageView) Refresh() {}
