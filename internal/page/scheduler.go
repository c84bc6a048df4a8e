// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package page

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
)

// =============================================================================
// INTERVALS
// =============================================================================

// Intervals configures the page timers.
type Intervals struct {
	// FactRotation is how often the fact card advances.
	FactRotation time.Duration
	// SparkleEvery is how often the sparkle is shown.
	SparkleEvery time.Duration
	// SparkleFor is how long the sparkle stays visible.
	SparkleFor time.Duration
	// LikePulse is how long the like button stays highlighted.
	LikePulse time.Duration
}

// DefaultIntervals returns the stock timer settings.
func DefaultIntervals() Intervals {
	return Intervals{
		FactRotation: 8 * time.Second,
		SparkleEvery: 5 * time.Second,
		SparkleFor:   time.Second,
		LikePulse:    300 * time.Millisecond,
	}
}

// =============================================================================
// BUBBLE TEA MESSAGES
// =============================================================================

// FactTickMsg asks the model to advance the fact card.
type FactTickMsg struct {
	Gen  uint64
	Time time.Time
}

// SparkleShowMsg asks the model to show the sparkle.
type SparkleShowMsg struct {
	Gen uint64
}

// SparkleHideMsg asks the model to hide the sparkle.
type SparkleHideMsg struct {
	Gen uint64
}

// LikePulseEndMsg asks the model to clear the like highlight.
type LikePulseEndMsg struct {
	Gen uint64
}

// =============================================================================
// SCHEDULER
// =============================================================================

// Scheduler drives the page timers for one mount. Start opens a scope and
// Stop closes it: every timer armed inside the scope is stopped and its
// command yields no message. Each scope has a generation number carried on
// its messages so the model can drop anything already queued from an older
// scope.
type Scheduler struct {
	mu sync.Mutex

	clock     clockwork.Clock
	intervals Intervals
	parent    context.Context

	gen    uint64
	ctx    context.Context
	cancel context.CancelFunc
}

// NewScheduler creates an idle scheduler. parent bounds every scope it opens.
func NewScheduler(parent context.Context, clock clockwork.Clock, iv Intervals) *Scheduler {
	if parent == nil {
		parent = context.Background()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Scheduler{
		clock:     clock,
		intervals: iv,
		parent:    parent,
	}
}

// Intervals returns the configured timer settings.
func (s *Scheduler) Intervals() Intervals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.intervals
}

// SetIntervals replaces the timer settings. Timers already armed keep their
// old duration; call Start to re-arm with the new ones.
func (s *Scheduler) SetIntervals(iv Intervals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intervals = iv
}

// Start opens a new scope, closing any previous one, and arms the fact
// rotation and sparkle timers.
func (s *Scheduler) Start() tea.Cmd {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	s.ctx, s.cancel = context.WithCancel(s.parent)
	s.mu.Unlock()

	return tea.Batch(s.NextFact(), s.NextSparkle())
}

// Stop closes the current scope. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	// Bump the generation so queued messages from the closed scope are stale.
	s.gen++
}

// Active reports whether a scope is open.
func (s *Scheduler) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil && s.ctx.Err() == nil
}

// Current reports whether gen belongs to the open scope.
func (s *Scheduler) Current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil && s.ctx.Err() == nil && gen == s.gen
}

// NextFact arms one fact-rotation tick.
func (s *Scheduler) NextFact() tea.Cmd {
	return s.after(s.Intervals().FactRotation, func(gen uint64, t time.Time) tea.Msg {
		return FactTickMsg{Gen: gen, Time: t}
	})
}

// NextSparkle arms the next sparkle show.
func (s *Scheduler) NextSparkle() tea.Cmd {
	return s.after(s.Intervals().SparkleEvery, func(gen uint64, _ time.Time) tea.Msg {
		return SparkleShowMsg{Gen: gen}
	})
}

// HideSparkle arms the delayed sparkle reset.
func (s *Scheduler) HideSparkle() tea.Cmd {
	return s.after(s.Intervals().SparkleFor, func(gen uint64, _ time.Time) tea.Msg {
		return SparkleHideMsg{Gen: gen}
	})
}

// EndLikePulse arms the like highlight reset.
func (s *Scheduler) EndLikePulse() tea.Cmd {
	return s.after(s.Intervals().LikePulse, func(gen uint64, _ time.Time) tea.Msg {
		return LikePulseEndMsg{Gen: gen}
	})
}

// after returns a command that waits d on the scheduler clock and then
// produces a message, or produces nothing if the scope closes first.
// It returns nil when no scope is open.
func (s *Scheduler) after(d time.Duration, mk func(gen uint64, t time.Time) tea.Msg) tea.Cmd {
	s.mu.Lock()
	ctx, gen := s.ctx, s.gen
	open := s.cancel != nil && ctx.Err() == nil
	s.mu.Unlock()

	if !open || d <= 0 {
		return nil
	}

	clock := s.clock
	return func() tea.Msg {
		timer := clock.NewTimer(d)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil
		case now := <-timer.Chan():
			if ctx.Err() != nil {
				return nil
			}
			return mk(gen, now)
		}
	}
}
