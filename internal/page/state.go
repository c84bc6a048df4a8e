// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package page

import "github.com/jeranaias/feline-tui/internal/content"

// =============================================================================
// TABS
// =============================================================================

// Tab identifies one of the tabbed content panels.
type Tab int

const (
	TabCharacteristics Tab = iota
	TabBreeds
	TabCareTips
	tabCount
)

// Tabs lists every panel in display order.
func Tabs() []Tab {
	return []Tab{TabCharacteristics, TabBreeds, TabCareTips}
}

// String returns the tab label.
func (t Tab) String() string {
	switch t {
	case TabCharacteristics:
		return "Characteristics"
	case TabBreeds:
		return "Popular Breeds"
	case TabCareTips:
		return "Care Tips"
	default:
		return "Unknown"
	}
}

// ParseTab maps a config value ("characteristics", "breeds", "care") to a Tab.
func ParseTab(s string) (Tab, bool) {
	switch s {
	case "", "characteristics":
		return TabCharacteristics, true
	case "breeds":
		return TabBreeds, true
	case "care", "care_tips", "tips":
		return TabCareTips, true
	}
	return TabCharacteristics, false
}

// =============================================================================
// STATE STORE
// =============================================================================

// State is everything the page renders from. It is owned by one model and
// mutated only through the methods below, all of which are total.
type State struct {
	LikeCount      int
	FactIndex      int
	DarkMode       bool
	SparkleVisible bool
	// LikePulse is set by IncrementLikes and cleared by EndLikePulse.
	LikePulse bool
	Tab       Tab
	Slide     int

	selection  Selection
	factCount  int
	slideCount int
}

// NewState creates the initial page state for a fact table of factCount
// entries and a carousel of slideCount slides.
func NewState(factCount, slideCount int) *State {
	if factCount < 0 {
		factCount = 0
	}
	if slideCount < 0 {
		slideCount = 0
	}
	return &State{factCount: factCount, slideCount: slideCount}
}

// FactCount returns the length of the fact table the index wraps over.
func (s *State) FactCount() int {
	return s.factCount
}

// IncrementLikes adds one like. There is no upper bound.
func (s *State) IncrementLikes() {
	s.LikeCount++
	s.LikePulse = true
}

// EndLikePulse clears the like highlight.
func (s *State) EndLikePulse() {
	s.LikePulse = false
}

// ToggleDarkMode flips the theme flag.
func (s *State) ToggleDarkMode() {
	s.DarkMode = !s.DarkMode
}

// AdvanceFact moves to the next fact, wrapping at the end of the table.
func (s *State) AdvanceFact() {
	s.FactIndex = wrap(s.FactIndex+1, s.factCount)
}

// PrevFact moves to the previous fact, wrapping at the start of the table.
func (s *State) PrevFact() {
	s.FactIndex = wrap(s.FactIndex-1, s.factCount)
}

// ShowSparkle makes the sparkle visible.
func (s *State) ShowSparkle() {
	s.SparkleVisible = true
}

// HideSparkle hides the sparkle.
func (s *State) HideSparkle() {
	s.SparkleVisible = false
}

// NextTab cycles forward through the panels.
func (s *State) NextTab() {
	s.Tab = Tab(wrap(int(s.Tab)+1, int(tabCount)))
}

// PrevTab cycles backward through the panels.
func (s *State) PrevTab() {
	s.Tab = Tab(wrap(int(s.Tab)-1, int(tabCount)))
}

// SetTab selects a panel. Unknown values are ignored.
func (s *State) SetTab(t Tab) {
	if t >= 0 && t < tabCount {
		s.Tab = t
	}
}

// NextSlide advances the carousel, wrapping.
func (s *State) NextSlide() {
	s.Slide = wrap(s.Slide+1, s.slideCount)
}

// PrevSlide moves the carousel back, wrapping.
func (s *State) PrevSlide() {
	s.Slide = wrap(s.Slide-1, s.slideCount)
}

// SelectBreed opens the detail overlay for b, replacing any current selection.
func (s *State) SelectBreed(b content.Breed) {
	s.selection.Handle(Event{Kind: EventChoose, Breed: b})
}

// CloseDetail closes the overlay via its close action.
func (s *State) CloseDetail() {
	s.selection.Handle(Event{Kind: EventClose})
}

// Dismiss closes the overlay via the background-dismiss gesture.
func (s *State) Dismiss() {
	s.selection.Handle(Event{Kind: EventDismiss})
}

// Selected returns the breed shown in the overlay, if any.
func (s *State) Selected() (content.Breed, bool) {
	return s.selection.Breed()
}

// DetailOpen reports whether the overlay is showing.
func (s *State) DetailOpen() bool {
	return !s.selection.Idle()
}

// wrap returns i mod n in [0, n). n <= 0 yields 0.
func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
