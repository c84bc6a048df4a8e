// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catpage

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownRenderer caches one glamour renderer per style and wrap width.
type markdownRenderer struct {
	style string
	width int
	r     *glamour.TermRenderer
}

// Render renders md, falling back to the raw text if glamour fails.
func (mr *markdownRenderer) Render(style string, width int, md string) string {
	if width < 20 {
		width = 20
	}
	if mr.r == nil || mr.style != style || mr.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mr.r, mr.style, mr.width = r, style, width
	}

	out, err := mr.r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
