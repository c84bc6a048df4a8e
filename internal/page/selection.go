// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package page

import "github.com/jeranaias/feline-tui/internal/content"

// =============================================================================
// SELECTION STATE MACHINE
// =============================================================================

// EventKind is an input to the selection state machine.
type EventKind int

const (
	// EventChoose selects a breed. Valid from Idle and from Detail.
	EventChoose EventKind = iota
	// EventClose is the explicit close action on the detail overlay.
	EventClose
	// EventDismiss is the background-dismiss gesture.
	EventDismiss
)

// String returns the event name used in log lines.
func (k EventKind) String() string {
	switch k {
	case EventChoose:
		return "choose"
	case EventClose:
		return "close"
	case EventDismiss:
		return "dismiss"
	default:
		return "unknown"
	}
}

// Event is one transition request. Breed is only read for EventChoose.
type Event struct {
	Kind  EventKind
	Breed content.Breed
}

// Selection has two states: Idle (no breed) and Detail(breed).
// The zero value is Idle.
type Selection struct {
	breed *content.Breed
}

// Idle reports whether no breed is selected.
func (s Selection) Idle() bool {
	return s.breed == nil
}

// Breed returns the selected breed, if any.
func (s Selection) Breed() (content.Breed, bool) {
	if s.breed == nil {
		return content.Breed{}, false
	}
	return *s.breed, true
}

// Handle applies an event. Choosing while in Detail replaces the selection
// directly; close and dismiss both return to Idle and drop the reference.
func (s *Selection) Handle(ev Event) {
	switch ev.Kind {
	case EventChoose:
		b := ev.Breed
		s.breed = &b
	case EventClose, EventDismiss:
		s.breed = nil
	}
}
