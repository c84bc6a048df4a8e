// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the feline TUI.

# Color System (colors.go)

Two explicit palettes, LightPalette and DarkPalette. The page chooses one
from its own dark-mode flag:

	p := styles.PaletteFor(state.DarkMode)

# Theme System (theme.go)

A Theme is built from the dark-mode flag and the ASCII flag and handed to
the view on every render:

	theme := styles.NewTheme(state.DarkMode, cfg.UI.ASCII)
	title := theme.Title.Render("Feline Fascination")

# Glyphs (animations.go)

UnicodeGlyphs and ASCIIGlyphs hold the decorative symbols. GlyphSet also
renders popularity bars and carousel position dots:

	bar := theme.Glyphs.RenderBar(20, breed.Popularity)
	dots := theme.Glyphs.RenderDots(state.Slide, len(breeds))
*/
package styles
