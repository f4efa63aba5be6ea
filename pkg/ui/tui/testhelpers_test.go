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
	"testing"
	"unicode/utf8"

	"github.com/AethonProject/aethon/pkg/screens"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/require"
)

// TestScreen wraps a SimulationScreen with helper methods for testing.
type TestScreen struct {
	tcell.SimulationScreen
}

func NewTestScreen(t *testing.T, width, height int) *TestScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NotNil(t, sim, "failed to create simulation screen")
	require.NoError(t, sim.Init(), "failed to initialize simulation screen")
	sim.SetSize(width, height)
	return &TestScreen{SimulationScreen: sim}
}

// Render lays p out over the whole screen and draws it.
func (s *TestScreen) Render(p tview.Primitive) {
	width, height := s.Size()
	s.Clear()
	p.SetRect(0, 0, width, height)
	p.Draw(s)
	s.Show()
}

// GetLineContent returns the text of line y without trailing spaces.
func (s *TestScreen) GetLineContent(y int) string {
	cells, width, height := s.GetContents()
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
	return strings.TrimRight(sb.String(), " ")
}

func (s *TestScreen) GetScreenText() string {
	_, _, height := s.GetContents()
	lines := make([]string, height)
	for y := range height {
		lines[y] = s.GetLineContent(y)
	}
	return strings.Join(lines, "\n")
}

func (s *TestScreen) ContainsText(text string) bool {
	return strings.Contains(s.GetScreenText(), text)
}

// FindText returns the position of the first occurrence of text, or -1, -1.
func (s *TestScreen) FindText(text string) (int, int) {
	_, _, height := s.GetContents()
	for row := range height {
		line := s.GetLineContent(row)
		if idx := strings.Index(line, text); idx >= 0 {
			return utf8.RuneCountInString(line[:idx]), row
		}
	}
	return -1, -1
}

// msgRecorder collects what views send.
type msgRecorder struct {
	msgs []screens.Msg
}

func (r *msgRecorder) send(msg screens.Msg) {
	r.msgs = append(r.msgs, msg)
}

func (r *msgRecorder) last() screens.Msg {
	if len(r.msgs) == 0 {
		return nil
	}
	return r.msgs[len(r.msgs)-1]
}

func newTestEnv(deps *screens.Deps) (*env, *msgRecorder) {
	rec := &msgRecorder{}
	if deps == nil {
		deps = &screens.Deps{}
	}
	return &env{
		app:  tview.NewApplication(),
		deps: deps,
		send: rec.send,
	}, rec
}

func keyEvent(key tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(key, 0, tcell.ModNone)
}

func mouseAt(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone)
}

func noFocus(tview.Primitive) {}
