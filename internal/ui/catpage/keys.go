// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catpage

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the cat page.
type KeyMap struct {
	Like      key.Binding
	Dark      key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	NextSlide key.Binding
	PrevSlide key.Binding
	NextFact  key.Binding
	PrevFact  key.Binding
	Open      key.Binding
	Pick      key.Binding
	Close     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Like: key.NewBinding(
			key.WithKeys(" ", "l"),
			key.WithHelp("space/l", "like"),
		),
		Dark: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dark mode"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev tab"),
		),
		NextSlide: key.NewBinding(
			key.WithKeys("right", "]"),
			key.WithHelp("→/]", "next photo"),
		),
		PrevSlide: key.NewBinding(
			key.WithKeys("left", "["),
			key.WithHelp("←/[", "prev photo"),
		),
		NextFact: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next fact"),
		),
		PrevFact: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "prev fact"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "breed details"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "open breed"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "x", "backspace"),
			key.WithHelp("esc/x", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Like, k.Dark, k.NextTab, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Like, k.Dark, k.NextFact, k.PrevFact},
		{k.NextTab, k.PrevTab, k.NextSlide, k.PrevSlide},
		{k.Open, k.Pick, k.Close},
		{k.Help, k.Quit},
	}
}
