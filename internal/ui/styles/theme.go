// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for one palette.
// It is a value derived from page state; nothing global is mutated when
// the page switches between light and dark.
type Theme struct {
	Dark         bool
	ASCII        bool
	ColorProfile termenv.Profile
	Palette      Palette
	Glyphs       GlyphSet

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// PAGE STYLES
	// ==========================================================================

	App     lipgloss.Style
	Title   lipgloss.Style
	Tagline lipgloss.Style
	Sparkle lipgloss.Style
	Caption lipgloss.Style
	Link    lipgloss.Style

	// ==========================================================================
	// CARD STYLES
	// ==========================================================================

	Card            lipgloss.Style
	CardTitle       lipgloss.Style
	CardDescription lipgloss.Style
	CardBody        lipgloss.Style
	Muted           lipgloss.Style

	// ==========================================================================
	// WIDGET STYLES
	// ==========================================================================

	LikeButton      lipgloss.Style
	LikeButtonPulse lipgloss.Style
	TabActive       lipgloss.Style
	TabInactive     lipgloss.Style
	BreedName       lipgloss.Style
	Bar             lipgloss.Style
	FactIcon        lipgloss.Style
	DotActive       lipgloss.Style
	DotInactive     lipgloss.Style

	// ==========================================================================
	// MODAL STYLES
	// ==========================================================================

	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
	ModalHint  lipgloss.Style
}

// NewTheme creates a theme for the given mode using the detected color profile.
func NewTheme(dark, ascii bool) *Theme {
	return NewThemeWithProfile(dark, ascii, termenv.ColorProfile())
}

// NewThemeWithProfile creates a theme with an explicit color profile.
func NewThemeWithProfile(dark, ascii bool, profile termenv.Profile) *Theme {
	t := &Theme{
		Dark:         dark,
		ASCII:        ascii,
		ColorProfile: profile,
		Palette:      PaletteFor(dark),
		Glyphs:       GlyphsFor(ascii),
	}
	t.initStyles()
	return t
}

// DetectDarkBackground reports whether the terminal background is dark.
func DetectDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// GlamourStyle returns the glamour standard style matching the theme.
func (t *Theme) GlamourStyle() string {
	if t.ColorProfile == termenv.Ascii {
		return "notty"
	}
	if t.Dark {
		return "dark"
	}
	return "light"
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	p := t.Palette

	t.App = lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		Padding(0, 1)

	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Purple)

	t.Tagline = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Italic(true)

	t.Sparkle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Amber)

	t.Caption = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Italic(true)

	t.Link = lipgloss.NewStyle().
		Foreground(p.Blue).
		Underline(true)

	// Cards
	t.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 2)

	t.CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextPrimary)

	t.CardDescription = lipgloss.NewStyle().
		Foreground(p.TextSecondary)

	t.CardBody = lipgloss.NewStyle().
		Foreground(p.TextPrimary)

	t.Muted = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	// Widgets
	t.LikeButton = lipgloss.NewStyle().
		Foreground(p.Pink).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	t.LikeButtonPulse = t.LikeButton.
		Bold(true).
		Foreground(p.TextInverse).
		Background(p.Pink).
		BorderForeground(p.Pink)

	t.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextInverse).
		Background(p.Purple).
		Padding(0, 2)

	t.TabInactive = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Background(p.Overlay).
		Padding(0, 2)

	t.BreedName = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Purple)

	t.Bar = lipgloss.NewStyle().
		Foreground(p.Pink)

	t.FactIcon = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Blue)

	t.DotActive = lipgloss.NewStyle().
		Foreground(p.Purple)

	t.DotInactive = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	// Modal
	t.Modal = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(p.Purple).
		Padding(1, 3)

	t.ModalTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Purple)

	t.ModalHint = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Italic(true)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
