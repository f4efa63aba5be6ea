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
	"github.com/AethonProject/aethon/pkg/helpers/syncutil"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Theme is the set of colors the views draw with.
type Theme struct {
	Name                     string
	DisplayName              string
	PrimitiveBackgroundColor tcell.Color
	ContrastBackgroundColor  tcell.Color
	BorderColor              tcell.Color
	PrimaryTextColor         tcell.Color
	SecondaryTextColor       tcell.Color
	InverseTextColor         tcell.Color
	FieldBackgroundColor     tcell.Color
	ErrorColor               tcell.Color
	WarningColor             tcell.Color
}

var ThemeDefault = Theme{
	Name:        "default",
	DisplayName: "Default (Dark Green)",

	PrimitiveBackgroundColor: tcell.NewHexColor(0x1B2B1B),
	ContrastBackgroundColor:  tcell.NewHexColor(0x3C6E3C),
	BorderColor:              tcell.NewHexColor(0x8BC34A),
	PrimaryTextColor:         tcell.ColorWhite,
	SecondaryTextColor:       tcell.ColorGray,
	InverseTextColor:         tcell.NewHexColor(0x1B2B1B),
	FieldBackgroundColor:     tcell.NewHexColor(0x2E452E),
	ErrorColor:               tcell.ColorRed,
	WarningColor:             tcell.ColorYellow,
}

// ThemeHighContrast is white and yellow on true black.
var ThemeHighContrast = Theme{
	Name:        "high_contrast",
	DisplayName: "High Contrast",

	PrimitiveBackgroundColor: tcell.NewHexColor(0x000000),
	ContrastBackgroundColor:  tcell.NewHexColor(0x000000),
	BorderColor:              tcell.ColorYellow,
	PrimaryTextColor:         tcell.ColorWhite,
	SecondaryTextColor:       tcell.ColorWhite,
	InverseTextColor:         tcell.NewHexColor(0x000000),
	FieldBackgroundColor:     tcell.ColorYellow,
	ErrorColor:               tcell.ColorRed,
	WarningColor:             tcell.ColorYellow,
}

var ThemeDracula = Theme{
	Name:        "dracula",
	DisplayName: "Dracula",

	PrimitiveBackgroundColor: tcell.NewHexColor(0x282A36),
	ContrastBackgroundColor:  tcell.NewHexColor(0x44475A),
	BorderColor:              tcell.NewHexColor(0xBD93F9),
	PrimaryTextColor:         tcell.NewHexColor(0xF8F8F2),
	SecondaryTextColor:       tcell.NewHexColor(0x6272A4),
	InverseTextColor:         tcell.NewHexColor(0x282A36),
	FieldBackgroundColor:     tcell.NewHexColor(0x44475A),
	ErrorColor:               tcell.NewHexColor(0xFF5555),
	WarningColor:             tcell.NewHexColor(0xF1FA8C),
}

var ThemeNord = Theme{
	Name:        "nord",
	DisplayName: "Nord",

	PrimitiveBackgroundColor: tcell.NewHexColor(0x2E3440),
	ContrastBackgroundColor:  tcell.NewHexColor(0x3B4252),
	BorderColor:              tcell.NewHexColor(0x88C0D0),
	PrimaryTextColor:         tcell.NewHexColor(0xECEFF4),
	SecondaryTextColor:       tcell.NewHexColor(0xD8DEE9),
	InverseTextColor:         tcell.NewHexColor(0x2E3440),
	FieldBackgroundColor:     tcell.NewHexColor(0x3B4252),
	ErrorColor:               tcell.NewHexColor(0xBF616A),
	WarningColor:             tcell.NewHexColor(0xEBCB8B),
}

// AvailableThemes maps the tui.toml theme names to themes.
var AvailableThemes = map[string]*Theme{
	ThemeDefault.Name:      &ThemeDefault,
	ThemeHighContrast.Name: &ThemeHighContrast,
	ThemeDracula.Name:      &ThemeDracula,
	ThemeNord.Name:         &ThemeNord,
}

var (
	currentTheme = &ThemeDefault
	themeMu      syncutil.RWMutex
)

func CurrentTheme() *Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// SetCurrentTheme switches to the named theme and applies it to tview's
// global styles. Unknown names return false and change nothing.
func SetCurrentTheme(name string) bool {
	theme, ok := AvailableThemes[name]
	if !ok {
		return false
	}
	themeMu.Lock()
	currentTheme = theme
	themeMu.Unlock()
	ApplyTheme(theme)
	return true
}

func ApplyTheme(theme *Theme) {
	tview.Styles.PrimitiveBackgroundColor = theme.PrimitiveBackgroundColor
	tview.Styles.ContrastBackgroundColor = theme.ContrastBackgroundColor
	tview.Styles.MoreContrastBackgroundColor = theme.FieldBackgroundColor
	tview.Styles.BorderColor = theme.BorderColor
	tview.Styles.TitleColor = theme.BorderColor
	tview.Styles.PrimaryTextColor = theme.PrimaryTextColor
	tview.Styles.SecondaryTextColor = theme.SecondaryTextColor
	tview.Styles.InverseTextColor = theme.InverseTextColor
}
