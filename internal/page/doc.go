// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package page holds the behaviour of the cat page, independent of how it is
drawn.

# State (state.go)

State is the single store the view renders from: like count, current fact,
dark mode, sparkle visibility, active tab and carousel slide. Every
operation is total; indices wrap modulo their table length.

# Selection (selection.go)

The breed detail overlay is a two-state machine:

	Idle --choose(b)--> Detail(b)
	Detail(b) --choose(b')--> Detail(b')
	Detail(b) --close|dismiss--> Idle

# Scheduler (scheduler.go)

Scheduler arms the fact rotation, sparkle pulse and like highlight timers
as Bubble Tea commands bound to a cancellable scope:

	sched := page.NewScheduler(ctx, clockwork.NewRealClock(), page.DefaultIntervals())
	cmd := sched.Start() // on mount
	defer sched.Stop()   // on unmount

After Stop no timer message reaches the model, and any message already
queued carries a stale generation that Current rejects.
*/
package page
