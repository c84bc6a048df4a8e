// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides reusable pieces of the feline page.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/feline-tui/internal/page"
	"github.com/jeranaias/feline-tui/internal/ui/styles"
	"github.com/jeranaias/feline-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT - bottom line of the page
// =============================================================================

// StatusBar summarizes the page state in one line.
type StatusBar struct {
	Likes      int
	Tab        page.Tab
	FactIndex  int
	FactCount  int
	Slide      int
	SlideCount int
	Width      int
	theme      *styles.Theme
}

// NewStatusBar creates a StatusBar drawn with theme.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Width: 80,
		theme: theme,
	}
}

// SetTheme swaps the theme, e.g. after a dark-mode toggle.
func (s *StatusBar) SetTheme(theme *styles.Theme) {
	s.theme = theme
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// Sync copies the displayed values from the page state.
func (s *StatusBar) Sync(st *page.State, slideCount int) {
	s.Likes = st.LikeCount
	s.Tab = st.Tab
	s.FactIndex = st.FactIndex
	s.FactCount = st.FactCount()
	s.Slide = st.Slide
	s.SlideCount = slideCount
}

// View renders the status bar
func (s *StatusBar) View() string {
	if s.theme.GetLayoutMode() == styles.LayoutNarrow {
		return s.viewNarrow()
	}
	return s.viewWide()
}

// viewNarrow renders: "♥ 3 | 2/5"
func (s *StatusBar) viewNarrow() string {
	t := s.theme
	sep := lipgloss.NewStyle().Foreground(t.Palette.TextMuted).Render(" | ")

	parts := []string{
		s.likes(),
		fmt.Sprintf("%d/%d", s.FactIndex+1, max(s.FactCount, 1)),
	}
	return s.frame(strings.Join(parts, sep))
}

// viewWide renders: "♥ 3 likes | Characteristics | fact 2/5 | photo 1/5 | light"
func (s *StatusBar) viewWide() string {
	t := s.theme
	sep := lipgloss.NewStyle().Foreground(t.Palette.TextMuted).Render(" | ")

	parts := []string{
		s.likes() + " " + util.Plural(s.Likes, "like", "likes"),
		lipgloss.NewStyle().Foreground(t.Palette.Purple).Render(s.Tab.String()),
		fmt.Sprintf("fact %d/%d", s.FactIndex+1, max(s.FactCount, 1)),
	}
	if s.SlideCount > 0 {
		parts = append(parts, fmt.Sprintf("photo %d/%d", s.Slide+1, s.SlideCount))
	}
	parts = append(parts, lipgloss.NewStyle().Foreground(t.Palette.TextMuted).Render(t.Palette.Name))

	return s.frame(strings.Join(parts, sep))
}

func (s *StatusBar) likes() string {
	t := s.theme
	return lipgloss.NewStyle().Foreground(t.Palette.Rose).Render(t.Glyphs.Heart + " " + util.FormatCount(s.Likes))
}

func (s *StatusBar) frame(line string) string {
	width := s.Width
	if width <= 0 {
		width = 80
	}
	return lipgloss.NewStyle().
		Foreground(s.theme.Palette.TextSecondary).
		Width(width).
		MaxWidth(width).
		Render(line)
}
