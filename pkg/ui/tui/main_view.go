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

	"github.com/AethonProject/aethon/pkg/instances"
	"github.com/AethonProject/aethon/pkg/screens"
	"github.com/AethonProject/aethon/pkg/ui/widgets"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// mainLayout stacks the name row over the card grid. Unlike a plain Flex it
// hands every mouse event to the grid, inside its bounds or not, so cards
// see the pointer leave.
type mainLayout struct {
	*tview.Flex
	header *tview.Flex
	grid   *widgets.CardGrid
}

func newMainLayout(header *tview.Flex, grid *widgets.CardGrid) *mainLayout {
	return &mainLayout{
		Flex: tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(header, 1, 0, true).
			AddItem(nil, 1, 0, false).
			AddItem(grid, 0, 1, false),
		header: header,
		grid:   grid,
	}
}

func (l *mainLayout) MouseHandler() func(
	action tview.MouseAction,
	event *tcell.EventMouse,
	setFocus func(p tview.Primitive),
) (consumed bool, capture tview.Primitive) {
	return func(
		action tview.MouseAction,
		event *tcell.EventMouse,
		setFocus func(p tview.Primitive),
	) (consumed bool, capture tview.Primitive) {
		consumed, capture = l.header.MouseHandler()(action, event, setFocus)
		gridConsumed, gridCapture := l.grid.MouseHandler()(action, event, setFocus)
		if gridCapture != nil {
			capture = gridCapture
		}
		return consumed || gridConsumed, capture
	}
}

type mainView struct {
	e      *env
	screen *screens.Main
	frame  *PageFrame
	name   *tview.InputField
	grid   *widgets.CardGrid
	bar    *ButtonBar
	shown  []instances.Instance
	loaded bool
}

func newMainView(e *env, m *screens.Main) *mainView {
	v := &mainView{e: e, screen: m}

	v.name = tview.NewInputField().
		SetLabel("New instance ").
		SetPlaceholder("Name").
		SetFieldWidth(0).
		SetChangedFunc(func(text string) {
			if text != v.screen.NewName {
				e.send(screens.MainNameChanged{Name: text})
			}
		})

	v.grid = widgets.NewCardGrid().
		SetOnHover(func(index int, hovered bool) {
			e.send(screens.MainHover{Index: index, Inside: hovered})
		}).
		SetOnRun(func(index int) {
			e.send(screens.MainRun{Index: index})
		})

	header := tview.NewFlex().AddItem(v.name, 0, 1, true)

	v.bar = NewButtonBar().
		AddButtonWithHelp("Add", "Create an instance with the name above.", func() {
			e.send(screens.MainAdd{})
		}).
		AddButtonWithHelp("Change launcher", "Pick a different launcher executable.", func() {
			e.send(screens.MainChangeLauncher{})
		})

	v.frame = NewPageFrame(e.app).
		SetTitle(AppTitle, "Instances").
		SetHints("Tab: Next | Arrows: Move | Enter: Run | Ctrl+C: Quit").
		SetContent(newMainLayout(header, v.grid)).
		SetButtonBar(v.bar)
	v.bar.SetOnWrap(func() { e.app.SetFocus(v.name) })

	v.name.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			e.send(screens.MainAdd{})
		case tcell.KeyTab:
			e.app.SetFocus(v.grid)
		case tcell.KeyBacktab:
			v.frame.FocusButtonBar()
		default:
		}
	})
	v.grid.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab:
			v.frame.FocusButtonBar()
			return nil
		case tcell.KeyBacktab:
			e.app.SetFocus(v.name)
			return nil
		default:
			return event
		}
	})
	v.bar.SetOnUp(func() { e.app.SetFocus(v.grid) })

	v.Refresh()
	return v
}

func (v *mainView) Root() tview.Primitive {
	return v.frame
}

func (v *mainView) FocusTarget() tview.Primitive {
	return v.name
}

// Grid returns the card grid.
func (v *mainView) Grid() *widgets.CardGrid {
	return v.grid
}

func (v *mainView) Refresh() {
	m := v.screen

	if v.name.GetText() != m.NewName {
		v.name.SetText(m.NewName)
	}

	if m.Loaded {
		v.grid.SetEmptyText("No instances yet. Type a name and press Add.")
	} else {
		v.grid.SetEmptyText(textLoading)
	}

	if v.loaded != m.Loaded || !slices.Equal(v.shown, m.Instances) {
		v.loaded = m.Loaded
		v.shown = slices.Clone(m.Instances)
		v.grid.SetInstances(m.Instances, m.Hovered)
		return
	}
	v.grid.SetHovered(m.Hovered)
}
