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
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	CardWidth  = 24
	CardHeight = 5

	// NoCard is the hovered index when no card is hovered.
	NoCard = -1
)

// CardArea is an instance card with hit testing.
type CardArea = ClickHoverArea[*InstanceCard]

// CardGrid lays instance cards out in rows. Every mouse event is offered to
// every card so that a card notices the pointer leaving it even when the
// pointer lands outside the grid.
type CardGrid struct {
	*tview.Box
	onHover   func(index int, hovered bool)
	onRun     func(index int)
	emptyText string
	cards     []*CardArea
	offset    int
	current   int
	follow    bool
}

func NewCardGrid() *CardGrid {
	return &CardGrid{
		Box:       tview.NewBox(),
		current:   NoCard,
		emptyText: "No instances yet",
	}
}

// SetOnHover sets the callback for hover changes, from the pointer or from
// keyboard navigation.
func (g *CardGrid) SetOnHover(fn func(index int, hovered bool)) *CardGrid {
	g.onHover = fn
	return g
}

// SetOnRun sets the callback for a card's Run button or Enter.
func (g *CardGrid) SetOnRun(fn func(index int)) *CardGrid {
	g.onRun = fn
	return g
}

func (g *CardGrid) SetEmptyText(text string) *CardGrid {
	g.emptyText = text
	return g
}

// SetInstances replaces the cards. hovered is the index of the card the
// pointer is already over, or -1; it is applied without notification.
func (g *CardGrid) SetInstances(list []instances.Instance, hovered int) {
	g.cards = make([]*CardArea, len(list))
	for i, inst := range list {
		card := NewInstanceCard(inst, func() { g.run(i) })
		area := NewClickHoverArea(card).
			SetOnClick(func() { g.current = i }).
			SetOnHoverChange(func(h bool) {
				if g.onHover != nil {
					g.onHover(i, h)
				}
			})
		g.cards[i] = area
	}
	if g.current >= len(list) {
		g.current = len(list) - 1
	}
	g.SetHovered(hovered)
}

// SetHovered marks one card as hovered and clears the rest, without
// notifying.
func (g *CardGrid) SetHovered(index int) {
	for i, area := range g.cards {
		area.SetHovered(i == index)
		area.Child().SetHovered(i == index)
	}
}

// Cards returns the card areas in display order.
func (g *CardGrid) Cards() []*CardArea {
	return g.cards
}

func (g *CardGrid) run(index int) {
	if g.onRun != nil {
		g.onRun(index)
	}
}

func (g *CardGrid) columns(width int) int {
	return max(1, width/CardWidth)
}

func (g *CardGrid) Draw(screen tcell.Screen) {
	g.DrawForSubclass(screen, g)

	x, y, width, height := g.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	if len(g.cards) == 0 {
		g.drawEmpty(screen, x, y+height/2, width)
		return
	}

	cols := g.columns(width)
	visibleRows := max(1, height/CardHeight)
	totalRows := (len(g.cards) + cols - 1) / cols

	if g.follow && g.current >= 0 {
		g.follow = false
		row := g.current / cols
		if row < g.offset {
			g.offset = row
		} else if row >= g.offset+visibleRows {
			g.offset = row - visibleRows + 1
		}
	}
	g.offset = max(0, min(g.offset, totalRows-visibleRows))

	for i, area := range g.cards {
		row, col := i/cols, i%cols
		if row < g.offset || row >= g.offset+visibleRows {
			area.SetRect(0, 0, 0, 0)
			continue
		}
		area.SetRect(x+col*CardWidth, y+(row-g.offset)*CardHeight, CardWidth, CardHeight)
		area.Draw(screen)
	}
}

func (g *CardGrid) drawEmpty(screen tcell.Screen, x, y, width int) {
	text := []rune(g.emptyText)
	if len(text) > width {
		text = text[:width]
	}
	style := tcell.StyleDefault.
		Foreground(tview.Styles.SecondaryTextColor).
		Background(tview.Styles.PrimitiveBackgroundColor)
	startX := x + (width-len(text))/2
	for i, r := range text {
		screen.SetContent(startX+i, y, r, nil, style)
	}
}

// HasFocus also reports true while a card's Run button holds focus.
func (g *CardGrid) HasFocus() bool {
	if g.Box.HasFocus() {
		return true
	}
	for _, area := range g.cards {
		if area.HasFocus() {
			return true
		}
	}
	return false
}

func (g *CardGrid) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return g.WrapInputHandler(func(event *tcell.EventKey, _ func(p tview.Primitive)) {
		if len(g.cards) == 0 {
			return
		}

		_, _, width, _ := g.GetInnerRect()
		cols := g.columns(width)
		next := g.current

		switch event.Key() {
		case tcell.KeyRight:
			next++
		case tcell.KeyLeft:
			next--
		case tcell.KeyDown:
			next += cols
		case tcell.KeyUp:
			next -= cols
		case tcell.KeyHome:
			next = 0
		case tcell.KeyEnd:
			next = len(g.cards) - 1
		case tcell.KeyEnter:
			if g.current >= 0 {
				g.run(g.current)
			}
			return
		default:
			return
		}

		if g.current < 0 {
			next = 0
		}
		next = max(0, min(next, len(g.cards)-1))
		g.moveTo(next)
	})
}

func (g *CardGrid) moveTo(index int) {
	if index == g.current {
		return
	}
	prev := g.current
	g.current = index
	g.follow = true
	if g.onHover == nil {
		return
	}
	if prev >= 0 {
		g.onHover(prev, false)
	}
	g.onHover(index, true)
}

func (g *CardGrid) MouseHandler() func(
	action tview.MouseAction,
	event *tcell.EventMouse,
	setFocus func(p tview.Primitive),
) (consumed bool, capture tview.Primitive) {
	return g.WrapMouseHandler(func(
		action tview.MouseAction,
		event *tcell.EventMouse,
		setFocus func(p tview.Primitive),
	) (consumed bool, capture tview.Primitive) {
		for _, area := range g.cards {
			c, cp := area.MouseHandler()(action, event, setFocus)
			if c {
				consumed = true
			}
			if cp != nil {
				capture = cp
			}
		}

		if !g.InRect(event.Position()) {
			return consumed, capture
		}

		switch action {
		case tview.MouseScrollUp:
			g.offset = max(0, g.offset-1)
			consumed = true
		case tview.MouseScrollDown:
			g.offset++
			consumed = true
		case tview.MouseLeftDown:
			// the Run button keeps the focus it just took
			if !g.onRunButton(event.Position()) {
				setFocus(g)
			}
			consumed = true
		default:
		}

		return consumed, capture
	})
}

func (g *CardGrid) onRunButton(x, y int) bool {
	for _, area := range g.cards {
		card := area.Child()
		if card.Hovered() && card.RunButton().InRect(x, y) {
			return true
		}
	}
	return false
}
