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
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const defaultHints = "Tab: Next | Enter: Select | Ctrl+C: Quit"

// PageFrame is the shell every screen is drawn in:
// - title in the top border
// - content area
// - one line of help text
// - optional ButtonBar
// - keyboard hints in the bottom border
type PageFrame struct {
	content tview.Primitive
	*tview.Box
	helpText  *tview.TextView
	buttonBar *ButtonBar
	app       *tview.Application
	hints     string
}

func NewPageFrame(app *tview.Application) *PageFrame {
	pf := &PageFrame{
		Box:   tview.NewBox(),
		app:   app,
		hints: defaultHints,
	}
	pf.SetBorder(true)
	pf.helpText = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	return pf
}

// SetTitle sets breadcrumb-style title segments, e.g. "Aethon", "Setup"
// shows " Aethon > Setup ".
func (pf *PageFrame) SetTitle(path ...string) *PageFrame {
	pf.Box.SetTitle(" " + strings.Join(path, " > ") + " ")
	return pf
}

func (pf *PageFrame) SetContent(content tview.Primitive) *PageFrame {
	pf.content = content
	return pf
}

func (pf *PageFrame) SetHelpText(text string) *PageFrame {
	pf.helpText.SetText(text)
	return pf
}

// SetHints replaces the keyboard hints drawn in the bottom border.
func (pf *PageFrame) SetHints(hints string) *PageFrame {
	pf.hints = hints
	return pf
}

// SetButtonBar sets the bar at the bottom of the frame. Up and Down on the
// bar return focus to the content.
func (pf *PageFrame) SetButtonBar(bar *ButtonBar) *PageFrame {
	pf.buttonBar = bar
	bar.SetOnUp(pf.FocusContent)
	bar.SetHelpCallback(func(text string) { pf.SetHelpText(text) })
	return pf
}

func (pf *PageFrame) Draw(screen tcell.Screen) {
	pf.DrawForSubclass(screen, pf)

	x, y, width, height := pf.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	helpHeight := 1
	buttonHeight := 0
	if pf.buttonBar != nil {
		buttonHeight = 1
	}
	contentHeight := max(1, height-helpHeight-buttonHeight)

	if pf.content != nil {
		pf.content.SetRect(x, y, width, contentHeight)
		pf.content.Draw(screen)
	}

	pf.helpText.SetRect(x, y+contentHeight, width, helpHeight)
	pf.helpText.Draw(screen)

	if pf.buttonBar != nil {
		pf.buttonBar.SetRect(x, y+contentHeight+helpHeight, width, buttonHeight)
		pf.buttonBar.Draw(screen)
	}

	pf.drawBottomHints(screen)
}

func (pf *PageFrame) drawBottomHints(screen tcell.Screen) {
	outerX, outerY, outerWidth, outerHeight := pf.GetRect()
	if outerWidth <= 4 || outerHeight <= 2 || pf.hints == "" {
		return
	}

	bottomY := outerY + outerHeight - 1
	hints := []rune(pf.hints)
	if avail := outerWidth - 4; len(hints) > avail {
		hints = hints[:avail]
	}
	startX := outerX + (outerWidth-len(hints))/2

	t := CurrentTheme()
	style := tcell.StyleDefault.
		Foreground(t.BorderColor).
		Background(t.PrimitiveBackgroundColor)

	for i := startX - 1; i < startX+len(hints)+1; i++ {
		screen.SetContent(i, bottomY, ' ', nil, style)
	}
	for i, r := range hints {
		screen.SetContent(startX+i, bottomY, r, nil, style)
	}
}

func (pf *PageFrame) Focus(delegate func(p tview.Primitive)) {
	if pf.content != nil {
		delegate(pf.content)
	} else if pf.buttonBar != nil {
		delegate(pf.buttonBar)
	}
}

func (pf *PageFrame) HasFocus() bool {
	if pf.content != nil && pf.content.HasFocus() {
		return true
	}
	return pf.buttonBar != nil && pf.buttonBar.HasFocus()
}

func (pf *PageFrame) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return pf.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		if pf.content != nil && pf.content.HasFocus() {
			if handler := pf.content.InputHandler(); handler != nil {
				handler(event, setFocus)
			}
			return
		}
		if pf.buttonBar != nil && pf.buttonBar.HasFocus() {
			if handler := pf.buttonBar.InputHandler(); handler != nil {
				handler(event, setFocus)
			}
		}
	})
}

// MouseHandler gives the button bar first go at events over it. Everything
// the bar does not consume also reaches the content, wherever the pointer
// is, so hover state inside the content sees the pointer leave.
func (pf *PageFrame) MouseHandler() func(
	action tview.MouseAction,
	event *tcell.EventMouse,
	setFocus func(p tview.Primitive),
) (consumed bool, capture tview.Primitive) {
	return pf.WrapMouseHandler(func(
		action tview.MouseAction,
		event *tcell.EventMouse,
		setFocus func(p tview.Primitive),
	) (consumed bool, capture tview.Primitive) {
		if pf.buttonBar != nil && pf.buttonBar.InRect(event.Position()) {
			consumed, capture = pf.buttonBar.MouseHandler()(action, event, setFocus)
			if consumed {
				return consumed, capture
			}
		}

		if pf.content != nil {
			if handler := pf.content.MouseHandler(); handler != nil {
				return handler(action, event, setFocus)
			}
		}
		return false, nil
	})
}

func (pf *PageFrame) GetContent() tview.Primitive {
	return pf.content
}

func (pf *PageFrame) GetButtonBar() *ButtonBar {
	return pf.buttonBar
}

func (pf *PageFrame) FocusContent() {
	if pf.content != nil && pf.app != nil {
		pf.app.SetFocus(pf.content)
	}
}

func (pf *PageFrame) FocusButtonBar() {
	if pf.buttonBar != nil && pf.app != nil {
		pf.app.SetFocus(pf.buttonBar)
	}
}

// LinkFormToButtonBar moves focus from the last element of form to the
// button bar on Tab, and back on Up from the bar.
func (pf *PageFrame) LinkFormToButtonBar(form *tview.Form) {
	if pf.buttonBar == nil || pf.app == nil {
		return
	}

	original := form.GetInputCapture()
	form.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyTab {
			item, button := form.GetFocusedItemIndex()
			last := form.GetButtonCount() - 1
			if (last >= 0 && button == last) || (last < 0 && item == form.GetFormItemCount()-1) {
				pf.FocusButtonBar()
				return nil
			}
		}
		if original != nil {
			return original(event)
		}
		return event
	})

	pf.buttonBar.SetOnUp(pf.FocusContent)
	pf.buttonBar.SetOnWrap(pf.FocusContent)
}
