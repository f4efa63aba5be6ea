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
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(width, height)
	t.Cleanup(sim.Fini)
	return sim
}

func screenLine(sim tcell.SimulationScreen, y int) string {
	cells, width, height := sim.GetContents()
	if y < 0 || y >= height {
		return ""
	}
	var sb strings.Builder
	for x := range width {
		cell := cells[y*width+x]
		if len(cell.Runes) > 0 {
			sb.WriteRune(cell.Runes[0])
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

func screenText(sim tcell.SimulationScreen) string {
	_, _, height := sim.GetContents()
	lines := make([]string, height)
	for y := range height {
		lines[y] = screenLine(sim, y)
	}
	return strings.Join(lines, "\n")
}

func mouseAt(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone)
}

type focusRecorder struct {
	focused []tview.Primitive
}

func (f *focusRecorder) set(p tview.Primitive) {
	f.focused = append(f.focused, p)
}

func (f *focusRecorder) last() tview.Primitive {
	if len(f.focused) == 0 {
		return nil
	}
	return f.focused[len(f.focused)-1]
}

func TestClickHoverArea_HoverTransitions(t *testing.T) {
	t.Parallel()

	box := tview.NewBox()
	box.SetRect(2, 2, 10, 4)

	var changes []bool
	area := NewClickHoverArea(box).SetOnHoverChange(func(h bool) {
		changes = append(changes, h)
	})
	handler := area.MouseHandler()
	focus := &focusRecorder{}

	consumed, _ := handler(tview.MouseMove, mouseAt(0, 0), focus.set)
	assert.False(t, consumed)
	assert.Empty(t, changes)

	consumed, _ = handler(tview.MouseMove, mouseAt(5, 3), focus.set)
	assert.False(t, consumed, "hover changes leave the event for others")
	assert.Equal(t, []bool{true}, changes)
	assert.True(t, area.Hovered())

	handler(tview.MouseMove, mouseAt(11, 5), focus.set)
	assert.Equal(t, []bool{true}, changes, "moving inside fires nothing")

	handler(tview.MouseMove, mouseAt(12, 5), focus.set)
	assert.Equal(t, []bool{true, false}, changes)
	assert.False(t, area.Hovered())
}

func TestClickHoverArea_Click(t *testing.T) {
	t.Parallel()

	box := tview.NewBox()
	box.SetRect(0, 0, 10, 3)

	clicks := 0
	area := NewClickHoverArea(box).SetOnClick(func() { clicks++ })
	handler := area.MouseHandler()
	focus := &focusRecorder{}

	consumed, _ := handler(tview.MouseLeftDown, mouseAt(20, 1), focus.set)
	assert.False(t, consumed)
	assert.Equal(t, 0, clicks)

	consumed, _ = handler(tview.MouseLeftDown, mouseAt(3, 1), focus.set)
	assert.True(t, consumed)
	assert.Equal(t, 1, clicks)
	assert.True(t, area.Hovered(), "a press also updates the hover state")

	handler(tview.MouseLeftUp, mouseAt(3, 1), focus.set)
	handler(tview.MouseRightDown, mouseAt(3, 1), focus.set)
	assert.Equal(t, 1, clicks)
}

func TestClickHoverArea_ChildSeesEventFirst(t *testing.T) {
	t.Parallel()

	selected := 0
	button := tview.NewButton("Go").SetSelectedFunc(func() { selected++ })
	button.SetRect(0, 0, 6, 1)

	clicks := 0
	area := NewClickHoverArea(button).SetOnClick(func() { clicks++ })
	handler := area.MouseHandler()
	focus := &focusRecorder{}

	handler(tview.MouseLeftDown, mouseAt(1, 0), focus.set)
	assert.Equal(t, tview.Primitive(button), focus.last())
	assert.Equal(t, 1, clicks)

	handler(tview.MouseLeftClick, mouseAt(1, 0), focus.set)
	assert.Equal(t, 1, selected)
	assert.Equal(t, 1, clicks)
}

func TestClickHoverArea_SetHoveredIsSilent(t *testing.T) {
	t.Parallel()

	box := tview.NewBox()
	box.SetRect(0, 0, 4, 4)

	fired := false
	area := NewClickHoverArea(box).SetOnHoverChange(func(bool) { fired = true })
	area.SetHovered(true)
	assert.True(t, area.Hovered())
	assert.False(t, fired)

	area.MouseHandler()(tview.MouseMove, mouseAt(1, 1), func(tview.Primitive) {})
	assert.False(t, fired, "already hovered")

	area.MouseHandler()(tview.MouseMove, mouseAt(9, 9), func(tview.Primitive) {})
	assert.True(t, fired)
}

func TestClickHoverArea_ForwardsLayoutAndFocus(t *testing.T) {
	t.Parallel()

	box := tview.NewBox()
	area := NewClickHoverArea(box)
	area.SetRect(1, 2, 3, 4)

	x, y, w, h := box.GetRect()
	assert.Equal(t, []int{1, 2, 3, 4}, []int{x, y, w, h})
	assert.True(t, area.InRect(1, 2))
	assert.False(t, area.InRect(4, 2))
	assert.Same(t, box, area.Child())

	var delegated tview.Primitive
	area.Focus(func(p tview.Primitive) { delegated = p })
	assert.Equal(t, tview.Primitive(box), delegated)
}
