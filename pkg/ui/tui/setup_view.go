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
	"slices"

	"github.com/AethonProject/aethon/pkg/launcher"
	"github.com/AethonProject/aethon/pkg/screens"
	"github.com/rivo/tview"
)

var kindOptions = []launcher.Kind{
	launcher.KindStore,
	launcher.KindLegacy,
	launcher.KindCustom,
}

type setupView struct {
	e       *env
	screen  *screens.Setup
	frame   *PageFrame
	form    *tview.Form
	kind    *tview.DropDown
	path    *tview.InputField
	bar     *ButtonBar
	syncing bool
}

func newSetupView(e *env, s *screens.Setup) *setupView {
	v := &setupView{e: e, screen: s}

	labels := make([]string, len(kindOptions))
	for i, k := range kindOptions {
		labels[i] = k.String()
	}

	v.kind = tview.NewDropDown().
		SetLabel("Launcher").
		SetOptions(labels, v.onKind)
	v.path = tview.NewInputField().
		SetLabel("Path").
		SetFieldWidth(0).
		SetChangedFunc(v.onPath)

	v.form = tview.NewForm().
		AddFormItem(v.kind).
		AddFormItem(v.path).
		AddButton("Select", func() { e.send(screens.SetupSelect{}) })

	v.bar = NewButtonBar().AddButtonWithHelp(
		"Continue",
		"Save the launcher and show your instances.",
		func() { e.send(screens.SetupContinue{}) },
	)

	v.frame = NewPageFrame(e.app).
		SetTitle(AppTitle, "Setup").
		SetContent(CenterWidget(0, 9, v.form)).
		SetButtonBar(v.bar)
	v.frame.LinkFormToButtonBar(v.form)

	v.Refresh()
	return v
}

func (v *setupView) onKind(_ string, index int) {
	if v.syncing || index < 0 || index >= len(kindOptions) {
		return
	}
	v.e.send(screens.SetupKindSelected{Kind: kindOptions[index]})
}

func (v *setupView) onPath(text string) {
	if v.syncing {
		return
	}
	v.e.send(screens.SetupPathChanged{Path: text})
}

func (v *setupView) Root() tview.Primitive {
	return v.frame
}

func (v *setupView) FocusTarget() tview.Primitive {
	return v.form
}

func (v *setupView) Refresh() {
	s := v.screen
	v.syncing = true
	defer func() { v.syncing = false }()

	idx := slices.Index(kindOptions, s.Selection)
	if current, _ := v.kind.GetCurrentOption(); current != idx {
		v.kind.SetCurrentOption(idx)
	}
	if v.path.GetText() != s.Path {
		v.path.SetText(s.Path)
	}

	editable := s.Editable()
	v.path.SetDisabled(!editable)
	if editable {
		v.path.SetPlaceholder("Launcher path")
	} else {
		v.path.SetPlaceholder("Not found")
	}
	v.form.GetButton(0).SetDisabled(!editable)

	valid := s.CanContinue(v.e.deps)
	v.bar.SetDisabled(0, !valid)
	switch {
	case valid:
		v.frame.SetHelpText("")
	case s.Path == "":
		v.frame.SetHelpText("Choose a launcher to continue.")
	default:
		v.frame.SetHelpText("This file is not a launcher executable.")
	}
}
