// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package catpage renders the cat page as a Bubble Tea program.
//
// The Model wires page.State, page.Scheduler and the static content
// tables together. Timer messages carry the scheduler generation they were
// armed under and are dropped once the page has been torn down, so nothing
// mutates state after Teardown.
//
// Keys:
//
//	space/l   like
//	d         toggle dark mode
//	tab       next tab
//	←/→       browse the breed gallery
//	n/p       next or previous fact
//	enter     open the gallery breed
//	1-9       open a breed by number
//	esc/x     close the breed overlay
//	q         quit
package catpage
