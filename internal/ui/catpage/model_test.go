// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catpage

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/feline-tui/internal/page"
)

// =============================================================================
// HELPERS
// =============================================================================

func newTestModel(t *testing.T) (*Model, clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	opts := DefaultOptions()
	opts.Clock = clock
	opts.ASCII = true
	m := New(opts)
	t.Cleanup(m.Teardown)
	return m, clock
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

// fire runs a timer command on its own goroutine, advances the fake clock
// by d and returns the message it produced.
func fire(t *testing.T, clock clockwork.FakeClock, cmd tea.Cmd, d time.Duration) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	out := make(chan tea.Msg, 1)
	go func() { out <- cmd() }()
	clock.BlockUntil(1)
	clock.Advance(d)
	select {
	case msg := <-out:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timer command did not return")
		return nil
	}
}

// flatten runs cmd and expands a batch into its member commands.
func flatten(cmd tea.Cmd) []tea.Cmd {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		return batch
	}
	return []tea.Cmd{func() tea.Msg { return msg }}
}

// =============================================================================
// INITIAL STATE
// =============================================================================

func TestNew_InitialState(t *testing.T) {
	m, _ := newTestModel(t)
	s := m.State()

	assert.Equal(t, 0, s.LikeCount)
	assert.Equal(t, 0, s.FactIndex)
	assert.Equal(t, 5, s.FactCount())
	assert.False(t, s.DarkMode)
	assert.False(t, s.DetailOpen())
	assert.Len(t, m.breeds, 5)
	assert.Len(t, m.facts, 5)
	assert.False(t, m.Mounted())
	assert.NotEmpty(t, m.ID())
}

func TestNew_AppliesOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.DarkMode = true
	opts.StartTab = page.TabCareTips
	m := New(opts)

	assert.True(t, m.State().DarkMode)
	assert.True(t, m.theme.Dark)
	assert.Equal(t, page.TabCareTips, m.State().Tab)
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func TestLikeKey(t *testing.T) {
	m, _ := newTestModel(t)
	m.Init()

	press(m, runes("l"), runes("l"), runes("l"))

	assert.Equal(t, 3, m.State().LikeCount)
	assert.True(t, m.State().LikePulse)
	assert.Contains(t, m.View(), "Like (3)")
}

func TestLikePulseEnds(t *testing.T) {
	m, clock := newTestModel(t)
	m.Init()

	cmd := press(m, runes("l"))
	msg := fire(t, clock, cmd, 300*time.Millisecond)
	press(m, msg)

	assert.False(t, m.State().LikePulse)
	assert.Equal(t, 1, m.State().LikeCount)
}

func TestDarkModeToggle(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runes("d"))
	assert.True(t, m.State().DarkMode)
	assert.Equal(t, "dark", m.theme.Palette.Name)

	press(m, runes("d"))
	assert.False(t, m.State().DarkMode)
	assert.Equal(t, "light", m.theme.Palette.Name)
}

func TestTabKeys(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, page.TabBreeds, m.State().Tab)
	assert.Contains(t, m.View(), "Diverse Cat Breeds")

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, m.View(), "Caring for Your Cat")

	press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, page.TabCharacteristics, m.State().Tab)
	assert.Contains(t, m.View(), "Feline Features")
}

func TestCarouselKeys(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 4, m.State().Slide)
	assert.Contains(t, m.View(), "Scottish Fold")

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.State().Slide)
}

func TestManualFactKeys(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runes("p"))
	assert.Equal(t, 4, m.State().FactIndex)
	press(m, runes("n"), runes("n"))
	assert.Equal(t, 1, m.State().FactIndex)
	words := strings.Fields(m.facts[1].Text)
	assert.Contains(t, m.View(), strings.Join(words[:2], " "))
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("?"))
	assert.True(t, m.help.ShowAll)
	press(m, runes("?"))
	assert.False(t, m.help.ShowAll)
}

func TestQuitTearsDown(t *testing.T) {
	m, _ := newTestModel(t)
	m.Init()
	require.True(t, m.Mounted())

	cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.Mounted())
	assert.False(t, m.sched.Active())
}

// =============================================================================
// DETAIL OVERLAY
// =============================================================================

func TestDetail_OpenAndClose(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runes("2"))
	b, ok := m.State().Selected()
	require.True(t, ok)
	assert.Equal(t, "Persian", b.Name)

	view := m.View()
	assert.Contains(t, view, "Persian")
	assert.Contains(t, view, "Iran")
	assert.NotContains(t, view, "Did You Know?")

	// Page keys are inert while the overlay is open.
	press(m, runes("l"))
	assert.Equal(t, 0, m.State().LikeCount)

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	_, ok = m.State().Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "Feline Fascination")
}

func TestDetail_EnterOpensCurrentSlide(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	b, ok := m.State().Selected()
	require.True(t, ok)
	assert.Equal(t, "Maine Coon", b.Name)
}

func TestDetail_SwitchBreedDirectly(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runes("1"))
	press(m, runes("3"))

	b, ok := m.State().Selected()
	require.True(t, ok)
	assert.Equal(t, "Maine Coon", b.Name)
}

func TestDetail_OutOfRangeDigitIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("9"))
	assert.False(t, m.State().DetailOpen())
}

func TestDetail_MouseDismiss(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, tea.WindowSizeMsg{Width: 100, Height: 60})

	press(m, runes("4"))
	require.True(t, m.State().DetailOpen())

	press(m, tea.MouseMsg{Type: tea.MouseLeft, X: 0, Y: 0})
	assert.False(t, m.State().DetailOpen())
}

func TestDetail_ClickInsideBoxKeepsOverlay(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, tea.WindowSizeMsg{Width: 100, Height: 60})
	press(m, runes("4"))

	box, _, _ := m.detailBox()
	bw, bh := lipgloss.Width(box), lipgloss.Height(box)
	require.Less(t, bw, 100)
	require.Less(t, bh, 60)
	left, top := centreOffset(100, bw), centreOffset(60, bh)

	for _, at := range [][2]int{
		{50, 30},
		{left, top},
		{left + bw - 1, top + bh - 1},
	} {
		press(m, tea.MouseMsg{Type: tea.MouseLeft, X: at[0], Y: at[1]})
		assert.True(t, m.State().DetailOpen(), "click at %v is on the box", at)
	}

	press(m, tea.MouseMsg{Type: tea.MouseLeft, X: left + bw, Y: top})
	assert.False(t, m.State().DetailOpen(), "click right of the box is background")
}

func TestDetail_DarkToggleAllowedLikeIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("3"))
	require.True(t, m.State().DetailOpen())

	press(m, runes("d"))
	assert.True(t, m.State().DarkMode)
	assert.True(t, m.theme.Dark)

	cmd := press(m, runes("l"))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.State().LikeCount, "the like button is behind the overlay")
	assert.True(t, m.State().DetailOpen())
}

func TestDetail_MouseDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.Mouse = false
	m := New(opts)

	press(m, runes("4"))
	press(m, tea.MouseMsg{Type: tea.MouseLeft})
	assert.True(t, m.State().DetailOpen())
}

// =============================================================================
// TIMERS
// =============================================================================

func TestFactRotationTick(t *testing.T) {
	m, clock := newTestModel(t)
	m.Init()

	msg := fire(t, clock, m.sched.NextFact(), 8*time.Second)
	cmd := press(m, msg)

	assert.Equal(t, 1, m.State().FactIndex)
	assert.NotNil(t, cmd, "rotation should re-arm")
}

func TestSparklePulse(t *testing.T) {
	m, clock := newTestModel(t)
	m.Init()

	show := fire(t, clock, m.sched.NextSparkle(), 5*time.Second)
	cmd := press(m, show)
	assert.True(t, m.State().SparkleVisible)
	assert.Contains(t, m.View(), "Feline Fascination *")

	hide := fire(t, clock, m.sched.HideSparkle(), time.Second)
	press(m, hide)
	assert.False(t, m.State().SparkleVisible)
	assert.NotNil(t, cmd)
}

func TestTeardown_StaleMessagesIgnored(t *testing.T) {
	m, clock := newTestModel(t)
	m.Init()

	tick := fire(t, clock, m.sched.NextFact(), 8*time.Second)
	show := fire(t, clock, m.sched.NextSparkle(), 5*time.Second)

	m.Teardown()

	press(m, tick, show)
	assert.Equal(t, 0, m.State().FactIndex)
	assert.False(t, m.State().SparkleVisible)
}

func TestTeardown_MidPulseCancelsReset(t *testing.T) {
	m, clock := newTestModel(t)
	m.Init()

	show := fire(t, clock, m.sched.NextSparkle(), 5*time.Second)
	cmd := press(m, show)
	require.True(t, m.State().SparkleVisible)

	m.Teardown()

	// The pending hide and the next show both resolve to nothing.
	for _, c := range flatten(cmd) {
		assert.Nil(t, c())
	}
	clock.Advance(time.Hour)
	assert.True(t, m.State().SparkleVisible)
	assert.Equal(t, 0, m.State().FactIndex)
}

func TestTeardown_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	clock := clockwork.NewFakeClock()
	opts := DefaultOptions()
	opts.Context = ctx
	opts.Clock = clock
	m := New(opts)
	m.Init()

	out := make(chan tea.Msg, 1)
	cmd := m.sched.NextFact()
	go func() { out <- cmd() }()
	clock.BlockUntil(1)
	cancel()

	assert.Nil(t, <-out)
	assert.False(t, m.sched.Active())
}

func TestTeardown_Idempotent(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = log.New(&buf, "", 0)
	m := New(opts)

	m.Teardown()
	assert.Empty(t, buf.String(), "teardown before mount should not log")

	m.Init()
	m.Teardown()
	m.Teardown()
	assert.Equal(t, 1, strings.Count(buf.String(), "PAGE_UNMOUNT"))
	assert.Contains(t, buf.String(), "PAGE_MOUNT | id="+m.ID())
}

// =============================================================================
// SETTINGS RELOAD
// =============================================================================

func TestSettings_DarkModeAndGlyphs(t *testing.T) {
	m, _ := newTestModel(t)
	m.Init()

	cmd := press(m, SettingsMsg{
		Intervals: page.DefaultIntervals(),
		DarkMode:  true,
		ASCII:     false,
		Mouse:     true,
	})

	assert.Nil(t, cmd, "unchanged intervals should not restart timers")
	assert.True(t, m.State().DarkMode)
	assert.True(t, m.theme.Dark)
	assert.False(t, m.theme.ASCII)
}

func TestSettings_KeepSessionToggleWhenFileUnchanged(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("d"))
	require.True(t, m.State().DarkMode)

	iv := page.DefaultIntervals()
	iv.SparkleEvery = 7 * time.Second
	press(m, SettingsMsg{Intervals: iv, DarkMode: false, ASCII: true, Mouse: true})
	assert.True(t, m.State().DarkMode, "file dark mode did not change")

	press(m, SettingsMsg{Intervals: iv, DarkMode: true, ASCII: true, Mouse: true})
	assert.True(t, m.State().DarkMode)

	press(m, SettingsMsg{Intervals: iv, DarkMode: false, ASCII: true, Mouse: true})
	assert.False(t, m.State().DarkMode, "file dark mode changed back")
	assert.False(t, m.theme.Dark)
}

func TestSettings_NewIntervalsRestartTimers(t *testing.T) {
	m, clock := newTestModel(t)
	m.Init()

	stale := fire(t, clock, m.sched.NextFact(), 8*time.Second)

	iv := page.DefaultIntervals()
	iv.FactRotation = 2 * time.Second
	cmd := press(m, SettingsMsg{Intervals: iv, Mouse: true, ASCII: true})
	require.NotNil(t, cmd)
	assert.Equal(t, iv, m.sched.Intervals())

	press(m, stale)
	assert.Equal(t, 0, m.State().FactIndex, "tick from before the reload is stale")

	press(m, fire(t, clock, m.sched.NextFact(), 2*time.Second))
	assert.Equal(t, 1, m.State().FactIndex)
}

func TestSettings_MouseToggle(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, SettingsMsg{Intervals: page.DefaultIntervals(), ASCII: true, Mouse: false})

	press(m, runes("1"))
	press(m, tea.MouseMsg{Type: tea.MouseLeft})
	assert.True(t, m.State().DetailOpen())
}

// =============================================================================
// SCENARIO
// =============================================================================

func TestScenario(t *testing.T) {
	m, clock := newTestModel(t)
	m.Init()

	s := m.State()
	require.Equal(t, 0, s.LikeCount)
	require.False(t, s.DarkMode)
	require.Equal(t, 0, s.FactIndex)

	press(m, fire(t, clock, m.sched.NextFact(), 8*time.Second))
	assert.Equal(t, 1, s.FactIndex)

	press(m, runes("l"), runes("l"), runes("l"))
	assert.Equal(t, 3, s.LikeCount)

	press(m, runes("2"))
	b, _ := s.Selected()
	assert.Equal(t, "Persian", b.Name)

	press(m, runes("x"))
	_, ok := s.Selected()
	assert.False(t, ok)
}

// =============================================================================
// VIEW
// =============================================================================

func TestView_Sections(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, tea.WindowSizeMsg{Width: 90, Height: 40})

	view := m.View()
	for _, want := range []string{
		"Feline Fascination",
		"Discover the charm and mystery",
		"Siamese",
		"Did You Know?",
		"Characteristics",
		"Retractable claws",
		"Like (0)",
	} {
		assert.Contains(t, view, want)
	}
}

func TestView_NarrowTerminal(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, tea.WindowSizeMsg{Width: 20, Height: 10})
	assert.NotEmpty(t, m.View())

	press(m, runes("1"))
	assert.Contains(t, m.View(), "Siamese")
}

func TestSnapshot(t *testing.T) {
	opts := DefaultOptions()
	opts.ASCII = true
	out := Snapshot(opts, 80)

	assert.Contains(t, out, "Feline Fascination")
	assert.Contains(t, out, "Feline Features")
}
