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
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ButtonBar is a horizontal row of buttons navigated with the arrow keys.
// Disabled buttons are drawn but skipped by navigation and ignore input.
type ButtonBar struct {
	*tview.Box
	onUp         func()
	onWrap       func()
	helpCallback func(string)
	buttons      []*tview.Button
	helpTexts    []string
	focusedIndex int
}

func NewButtonBar() *ButtonBar {
	return &ButtonBar{
		Box: tview.NewBox(),
	}
}

func (bb *ButtonBar) AddButton(label string, action func()) *ButtonBar {
	return bb.AddButtonWithHelp(label, "", action)
}

// AddButtonWithHelp adds a button whose help text is shown while it is
// focused.
func (bb *ButtonBar) AddButtonWithHelp(label, helpText string, action func()) *ButtonBar {
	bb.buttons = append(bb.buttons, tview.NewButton(label).SetSelectedFunc(action))
	bb.helpTexts = append(bb.helpTexts, helpText)
	return bb
}

func (bb *ButtonBar) SetHelpCallback(fn func(string)) *ButtonBar {
	bb.helpCallback = fn
	return bb
}

// SetOnUp sets the callback for Up and Down, used to return to the content.
func (bb *ButtonBar) SetOnUp(fn func()) *ButtonBar {
	bb.onUp = fn
	return bb
}

// SetOnWrap sets the callback for Tab past the last button and Backtab
// before the first.
func (bb *ButtonBar) SetOnWrap(fn func()) *ButtonBar {
	bb.onWrap = fn
	return bb
}

// SetDisabled enables or disables the button at index.
func (bb *ButtonBar) SetDisabled(index int, disabled bool) {
	if index < 0 || index >= len(bb.buttons) {
		return
	}
	bb.buttons[index].SetDisabled(disabled)
	if disabled && index == bb.focusedIndex {
		bb.move(1)
	}
}

// Button returns the button at index, or nil.
func (bb *ButtonBar) Button(index int) *tview.Button {
	if index < 0 || index >= len(bb.buttons) {
		return nil
	}
	return bb.buttons[index]
}

func (bb *ButtonBar) FocusedIndex() int {
	return bb.focusedIndex
}

func (bb *ButtonBar) triggerHelp() {
	if bb.helpCallback != nil && bb.focusedIndex < len(bb.helpTexts) {
		bb.helpCallback(bb.helpTexts[bb.focusedIndex])
	}
}

// move steps the focused index by delta, skipping disabled buttons. It
// reports false when every button is disabled.
func (bb *ButtonBar) move(delta int) bool {
	n := len(bb.buttons)
	idx := bb.focusedIndex
	for range n {
		idx = (idx + delta + n) % n
		if !bb.buttons[idx].IsDisabled() {
			bb.focusedIndex = idx
			bb.triggerHelp()
			return true
		}
	}
	return false
}

func (bb *ButtonBar) Draw(screen tcell.Screen) {
	bb.DrawForSubclass(screen, bb)

	x, y, width, _ := bb.GetInnerRect()
	if len(bb.buttons) == 0 || width <= 0 {
		return
	}

	const spacing = 2
	buttonWidth := max(6, (width-spacing*(len(bb.buttons)-1))/len(bb.buttons))
	hasFocus := bb.HasFocus()

	currentX := x
	for i, btn := range bb.buttons {
		btnWidth := min(buttonWidth, x+width-currentX)
		if btnWidth <= 0 {
			btn.SetRect(0, 0, 0, 0)
			continue
		}
		btn.SetRect(currentX, y, btnWidth, 1)

		if hasFocus && i == bb.focusedIndex {
			btn.Focus(func(tview.Primitive) {})
		} else {
			btn.Blur()
		}

		btn.Draw(screen)
		currentX += btnWidth + spacing
	}
}

func (bb *ButtonBar) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return bb.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		if len(bb.buttons) == 0 {
			return
		}

		switch event.Key() {
		case tcell.KeyLeft:
			bb.move(-1)
		case tcell.KeyRight:
			bb.move(1)
		case tcell.KeyBacktab:
			if bb.focusedIndex == 0 && bb.onWrap != nil {
				bb.onWrap()
			} else {
				bb.move(-1)
			}
		case tcell.KeyTab:
			if bb.focusedIndex == len(bb.buttons)-1 && bb.onWrap != nil {
				bb.onWrap()
			} else {
				bb.move(1)
			}
		case tcell.KeyUp, tcell.KeyDown:
			if bb.onUp != nil {
				bb.onUp()
			}
		case tcell.KeyEnter:
			btn := bb.buttons[bb.focusedIndex]
			if handler := btn.InputHandler(); handler != nil {
				handler(event, setFocus)
			}
		default:
		}
	})
}

func (bb *ButtonBar) MouseHandler() func(
	action tview.MouseAction,
	event *tcell.EventMouse,
	setFocus func(p tview.Primitive),
) (consumed bool, capture tview.Primitive) {
	return bb.WrapMouseHandler(func(
		action tview.MouseAction,
		event *tcell.EventMouse,
		setFocus func(p tview.Primitive),
	) (consumed bool, capture tview.Primitive) {
		if action != tview.MouseLeftClick {
			return false, nil
		}
		for i, btn := range bb.buttons {
			if !btn.InRect(event.Position()) {
				continue
			}
			if btn.IsDisabled() {
				return true, nil
			}
			bb.focusedIndex = i
			bb.triggerHelp()
			setFocus(bb)
			if handler := btn.MouseHandler(); handler != nil {
				return handler(action, event, setFocus)
			}
			return true, nil
		}
		return false, nil
	})
}

func (bb *ButtonBar) Focus(delegate func(p tview.Primitive)) {
	if len(bb.buttons) == 0 {
		return
	}
	if bb.buttons[bb.focusedIndex].IsDisabled() {
		bb.move(1)
	}
	bb.Box.Focus(delegate)
	bb.triggerHelp()
}
