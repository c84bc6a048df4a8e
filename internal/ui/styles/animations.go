// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "strings"

// =============================================================================
// GLYPHS
// =============================================================================

// GlyphSet holds the decorative characters used by the page.
type GlyphSet struct {
	Cat        string
	Heart      string
	Info       string
	Sparkle    string
	DotOn      string
	DotOff     string
	ArrowLeft  string
	ArrowRight string
	Bullet     string
	Image      string
	NoImage    string
	BarFull    string
	BarEmpty   string
}

// UnicodeGlyphs are used on terminals that render symbols.
var UnicodeGlyphs = GlyphSet{
	Cat:        "🐱",
	Heart:      "♥",
	Info:       "ⓘ",
	Sparkle:    "✨",
	DotOn:      "●",
	DotOff:     "○",
	ArrowLeft:  "‹",
	ArrowRight: "›",
	Bullet:     "•",
	Image:      "▣",
	NoImage:    "▢",
	BarFull:    "█",
	BarEmpty:   "░",
}

// ASCIIGlyphs - ASCII-safe alternatives for limited terminals
var ASCIIGlyphs = GlyphSet{
	Cat:        "=^.^=",
	Heart:      "<3",
	Info:       "[i]",
	Sparkle:    "*",
	DotOn:      "o",
	DotOff:     ".",
	ArrowLeft:  "<",
	ArrowRight: ">",
	Bullet:     "-",
	Image:      "[img]",
	NoImage:    "[no image]",
	BarFull:    "#",
	BarEmpty:   "-",
}

// GlyphsFor returns the glyph set for the ascii flag.
func GlyphsFor(ascii bool) GlyphSet {
	if ascii {
		return ASCIIGlyphs
	}
	return UnicodeGlyphs
}

// =============================================================================
// PROGRESS INDICATORS
// =============================================================================

// RenderBar creates a fixed-width bar for a 0-100 score.
// Scores outside the range are clamped.
func (g GlyphSet) RenderBar(width int, score int) string {
	if width <= 0 {
		return ""
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	filled := width * score / 100

	var sb strings.Builder
	sb.Grow(width * 3)
	sb.WriteString(strings.Repeat(g.BarFull, filled))
	sb.WriteString(strings.Repeat(g.BarEmpty, width-filled))
	return sb.String()
}

// RenderDots renders a position indicator such as "o . . . ." for
// index within count items.
func (g GlyphSet) RenderDots(index, count int) string {
	if count <= 0 {
		return ""
	}
	dots := make([]string, count)
	for i := range dots {
		if i == index {
			dots[i] = g.DotOn
		} else {
			dots[i] = g.DotOff
		}
	}
	return strings.Join(dots, " ")
}
