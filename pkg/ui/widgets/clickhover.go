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

// Package widgets holds tview primitives built for Aethon's screens.
package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ClickHoverArea wraps a primitive and reports clicks and hover changes on
// it. Drawing, layout, focus and keyboard input go to the child unchanged.
//
// Mouse events are first given to the child. Whatever the child does with
// the event, the area then runs its own hit test: a left button press inside
// the bounds fires the click callback, and the hover callback fires once
// each time the pointer crosses the bounds.
type ClickHoverArea[P tview.Primitive] struct {
	child         P
	onClick       func()
	onHoverChange func(hovered bool)
	hovered       bool
}

func NewClickHoverArea[P tview.Primitive](child P) *ClickHoverArea[P] {
	return &ClickHoverArea[P]{child: child}
}

// Child returns the wrapped primitive.
func (a *ClickHoverArea[P]) Child() P {
	return a.child
}

func (a *ClickHoverArea[P]) SetOnClick(fn func()) *ClickHoverArea[P] {
	a.onClick = fn
	return a
}

func (a *ClickHoverArea[P]) SetOnHoverChange(fn func(hovered bool)) *ClickHoverArea[P] {
	a.onHoverChange = fn
	return a
}

// SetHovered sets the remembered hover state without notifying. Use it when
// rebuilding an area from state that already knows where the pointer is.
func (a *ClickHoverArea[P]) SetHovered(hovered bool) *ClickHoverArea[P] {
	a.hovered = hovered
	return a
}

func (a *ClickHoverArea[P]) Hovered() bool {
	return a.hovered
}

// InRect reports whether the screen position is inside the child's bounds.
func (a *ClickHoverArea[P]) InRect(x, y int) bool {
	rx, ry, width, height := a.child.GetRect()
	return x >= rx && x < rx+width && y >= ry && y < ry+height
}

func (a *ClickHoverArea[P]) Draw(screen tcell.Screen) {
	a.child.Draw(screen)
}

func (a *ClickHoverArea[P]) GetRect() (x, y, width, height int) {
	return a.child.GetRect()
}

func (a *ClickHoverArea[P]) SetRect(x, y, width, height int) {
	a.child.SetRect(x, y, width, height)
}

func (a *ClickHoverArea[P]) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return a.child.InputHandler()
}

func (a *ClickHoverArea[P]) PasteHandler() func(text string, setFocus func(p tview.Primitive)) {
	return a.child.PasteHandler()
}

func (a *ClickHoverArea[P]) Focus(delegate func(p tview.Primitive)) {
	delegate(a.child)
}

func (a *ClickHoverArea[P]) HasFocus() bool {
	return a.child.HasFocus()
}

func (a *ClickHoverArea[P]) Blur() {
	a.child.Blur()
}

func (a *ClickHoverArea[P]) MouseHandler() func(
	action tview.MouseAction,
	event *tcell.EventMouse,
	setFocus func(p tview.Primitive),
) (consumed bool, capture tview.Primitive) {
	return func(
		action tview.MouseAction,
		event *tcell.EventMouse,
		setFocus func(p tview.Primitive),
	) (consumed bool, capture tview.Primitive) {
		if handler := a.child.MouseHandler(); handler != nil {
			consumed, capture = handler(action, event, setFocus)
		}

		inside := a.InRect(event.Position())

		if inside && action == tview.MouseLeftDown && a.onClick != nil {
			a.onClick()
			consumed = true
		}

		if inside != a.hovered {
			a.hovered = inside
			if a.onHoverChange != nil {
				a.onHoverChange(inside)
			}
		}

		return consumed, capture
	}
}
