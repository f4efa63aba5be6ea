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

package widgets

import (
	"github.com/AethonProject/aethon/pkg/instances"
	"github.com/rivo/tview"
)

// InstanceCard is a bordered box showing an instance. While hovered, the
// bottom line turns into a Run button.
type InstanceCard struct {
	*tview.Flex
	name    *tview.TextView
	folder  *tview.TextView
	run     *tview.Button
	hovered bool
}

func NewInstanceCard(inst instances.Instance, onRun func()) *InstanceCard {
	c := &InstanceCard{
		Flex: tview.NewFlex().SetDirection(tview.FlexRow),
		name: tview.NewTextView().
			SetText(inst.Name).
			SetTextAlign(tview.AlignCenter),
		folder: tview.NewTextView().
			SetText(inst.Folder).
			SetTextAlign(tview.AlignCenter).
			SetTextColor(tview.Styles.SecondaryTextColor),
		run: tview.NewButton("Run").SetSelectedFunc(onRun),
	}
	c.SetBorder(true)
	c.layout()
	return c
}

func (c *InstanceCard) Hovered() bool {
	return c.hovered
}

// SetHovered switches the bottom line between the folder name and the Run
// button.
func (c *InstanceCard) SetHovered(hovered bool) {
	if c.hovered == hovered {
		return
	}
	c.hovered = hovered
	c.layout()
}

// RunButton returns the button shown while hovered.
func (c *InstanceCard) RunButton() *tview.Button {
	return c.run
}

func (c *InstanceCard) layout() {
	c.Clear()
	c.AddItem(c.name, 1, 0, false)
	c.AddItem(nil, 0, 1, false)
	if c.hovered {
		c.AddItem(c.run, 1, 0, false)
	} else {
		c.AddItem(c.folder, 1, 0, false)
	}
}
