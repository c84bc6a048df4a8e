// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the feline TUI.
// Colors come in explicit light and dark palettes; the page picks one from
// its own state rather than from terminal detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PALETTE
// =============================================================================

// Palette is one complete set of page colors.
type Palette struct {
	Name string

	// Surfaces
	Background lipgloss.Color
	Surface    lipgloss.Color
	Overlay    lipgloss.Color
	Border     lipgloss.Color

	// Text
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color
	TextInverse   lipgloss.Color

	// Accents
	Purple lipgloss.Color
	Pink   lipgloss.Color
	Blue   lipgloss.Color
	Amber  lipgloss.Color
	Rose   lipgloss.Color
}

// LightPalette - purple/pink gradient page on a pale background
var LightPalette = Palette{
	Name: "light",

	Background: lipgloss.Color("#FAF5FF"), // purple-50
	Surface:    lipgloss.Color("#FFFFFF"),
	Overlay:    lipgloss.Color("#F3E8FF"), // purple-100
	Border:     lipgloss.Color("#E9D5FF"),

	TextPrimary:   lipgloss.Color("#1F2937"),
	TextSecondary: lipgloss.Color("#4B5563"),
	TextMuted:     lipgloss.Color("#9CA3AF"),
	TextInverse:   lipgloss.Color("#FFFFFF"),

	Purple: lipgloss.Color("#6B21A8"), // purple-800
	Pink:   lipgloss.Color("#DB2777"), // pink-600
	Blue:   lipgloss.Color("#3B82F6"),
	Amber:  lipgloss.Color("#D97706"),
	Rose:   lipgloss.Color("#E11D48"),
}

// DarkPalette - Catppuccin Mocha surfaces with the same accent family
var DarkPalette = Palette{
	Name: "dark",

	Background: lipgloss.Color("#1E1E2E"),
	Surface:    lipgloss.Color("#181825"),
	Overlay:    lipgloss.Color("#313244"),
	Border:     lipgloss.Color("#45475A"),

	TextPrimary:   lipgloss.Color("#CDD6F4"),
	TextSecondary: lipgloss.Color("#A6ADC8"),
	TextMuted:     lipgloss.Color("#6C7086"),
	TextInverse:   lipgloss.Color("#1E1E2E"),

	Purple: lipgloss.Color("#CBA6F7"),
	Pink:   lipgloss.Color("#F5C2E7"),
	Blue:   lipgloss.Color("#89B4FA"),
	Amber:  lipgloss.Color("#FAB387"),
	Rose:   lipgloss.Color("#F38BA8"),
}

// PaletteFor returns the palette for the given dark-mode flag.
func PaletteFor(dark bool) Palette {
	if dark {
		return DarkPalette
	}
	return LightPalette
}
