// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catpage

import (
	"context"
	"io"
	"log"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/jeranaias/feline-tui/internal/content"
	"github.com/jeranaias/feline-tui/internal/page"
	"github.com/jeranaias/feline-tui/internal/ui/components"
	"github.com/jeranaias/feline-tui/internal/ui/styles"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures a page model.
type Options struct {
	// Context bounds the timers. Cancelling it stops them.
	Context context.Context
	// Clock drives the timers; nil means the real clock.
	Clock     clockwork.Clock
	Intervals page.Intervals
	DarkMode  bool
	ASCII     bool
	StartTab  page.Tab
	// Mouse enables click-to-dismiss on the detail overlay.
	Mouse  bool
	Logger *log.Logger
}

// SettingsMsg applies reloaded settings to a running page.
type SettingsMsg struct {
	Intervals page.Intervals
	DarkMode  bool
	ASCII     bool
	Mouse     bool
}

// DefaultOptions returns options with the stock intervals.
func DefaultOptions() Options {
	return Options{
		Context:   context.Background(),
		Intervals: page.DefaultIntervals(),
		Mouse:     true,
	}
}

// =============================================================================
// MODEL
// =============================================================================

// Model owns the page state and renders it. It implements tea.Model.
type Model struct {
	state *page.State
	sched *page.Scheduler

	keys   KeyMap
	help   help.Model
	theme  *styles.Theme
	status *components.StatusBar
	md     markdownRenderer

	hero     content.Hero
	breeds   []content.Breed
	facts    []content.Fact
	features []string
	tips     []string

	width  int
	height int
	ascii  bool
	mouse  bool

	// fileDark is the dark mode last applied from settings.
	fileDark bool

	id      string
	logger  *log.Logger
	mounted bool
}

// New creates a page model. The timers do not run until Init.
func New(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	breeds := content.Breeds()
	facts := content.Facts()

	state := page.NewState(len(facts), len(breeds))
	state.DarkMode = opts.DarkMode
	state.SetTab(opts.StartTab)

	theme := styles.NewTheme(opts.DarkMode, opts.ASCII)

	return &Model{
		state:    state,
		sched:    page.NewScheduler(opts.Context, opts.Clock, opts.Intervals),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		theme:    theme,
		status:   components.NewStatusBar(theme),
		hero:     content.HeroBanner(),
		breeds:   breeds,
		facts:    facts,
		features: content.Features(),
		tips:     content.CareTips(),
		ascii:    opts.ASCII,
		mouse:    opts.Mouse,
		fileDark: opts.DarkMode,
		id:       uuid.NewString(),
		logger:   logger,
	}
}

// State exposes the page state for inspection.
func (m *Model) State() *page.State {
	return m.state
}

// ID returns the mount id used in log lines.
func (m *Model) ID() string {
	return m.id
}

// Mounted reports whether the timers are running.
func (m *Model) Mounted() bool {
	return m.mounted
}

// =============================================================================
// LIFECYCLE
// =============================================================================

// Init mounts the page and starts its timers.
func (m *Model) Init() tea.Cmd {
	m.mounted = true
	iv := m.sched.Intervals()
	m.logger.Printf("PAGE_MOUNT | id=%s fact_every=%s sparkle_every=%s", m.id, iv.FactRotation, iv.SparkleEvery)
	return m.sched.Start()
}

// Teardown unmounts the page. Every pending timer is cancelled and no
// timer message can change state afterwards. Safe to call more than once.
func (m *Model) Teardown() {
	if !m.mounted {
		return
	}
	m.mounted = false
	m.sched.Stop()
	m.logger.Printf("PAGE_UNMOUNT | id=%s likes=%d", m.id, m.state.LikeCount)
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.mouse && m.state.DetailOpen() && msg.Type == tea.MouseLeft && !m.inDetailBox(msg.X, msg.Y) {
			m.state.Dismiss()
			m.logger.Printf("DETAIL | id=%s event=%s", m.id, page.EventDismiss)
		}
		return m, nil

	case SettingsMsg:
		return m, m.applySettings(msg)

	case page.FactTickMsg:
		if !m.sched.Current(msg.Gen) {
			return m, nil
		}
		m.state.AdvanceFact()
		return m, m.sched.NextFact()

	case page.SparkleShowMsg:
		if !m.sched.Current(msg.Gen) {
			return m, nil
		}
		m.state.ShowSparkle()
		return m, tea.Batch(m.sched.HideSparkle(), m.sched.NextSparkle())

	case page.SparkleHideMsg:
		if !m.sched.Current(msg.Gen) {
			return m, nil
		}
		m.state.HideSparkle()
		return m, nil

	case page.LikePulseEndMsg:
		if !m.sched.Current(msg.Gen) {
			return m, nil
		}
		m.state.EndLikePulse()
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.Teardown()
		return m, tea.Quit
	}

	if m.state.DetailOpen() {
		switch {
		case key.Matches(msg, m.keys.Close):
			m.state.CloseDetail()
			m.logger.Printf("DETAIL | id=%s event=%s", m.id, page.EventClose)
		case key.Matches(msg, m.keys.Pick):
			m.pick(msg.String())
		case key.Matches(msg, m.keys.Dark):
			m.toggleDark()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Like):
		m.state.IncrementLikes()
		return m, m.sched.EndLikePulse()

	case key.Matches(msg, m.keys.Dark):
		m.toggleDark()

	case key.Matches(msg, m.keys.NextTab):
		m.state.NextTab()

	case key.Matches(msg, m.keys.PrevTab):
		m.state.PrevTab()

	case key.Matches(msg, m.keys.NextSlide):
		m.state.NextSlide()

	case key.Matches(msg, m.keys.PrevSlide):
		m.state.PrevSlide()

	case key.Matches(msg, m.keys.NextFact):
		m.state.AdvanceFact()

	case key.Matches(msg, m.keys.PrevFact):
		m.state.PrevFact()

	case key.Matches(msg, m.keys.Open):
		if len(m.breeds) > 0 {
			m.choose(m.breeds[m.state.Slide])
		}

	case key.Matches(msg, m.keys.Pick):
		m.pick(msg.String())

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// pick opens the breed at a 1-based digit key. Out-of-range digits are ignored.
func (m *Model) pick(digit string) {
	n, err := strconv.Atoi(digit)
	if err != nil || n < 1 || n > len(m.breeds) {
		return
	}
	m.choose(m.breeds[n-1])
}

func (m *Model) choose(b content.Breed) {
	m.state.SelectBreed(b)
	m.logger.Printf("DETAIL | id=%s event=%s breed=%q", m.id, page.EventChoose, b.Name)
}

func (m *Model) toggleDark() {
	m.state.ToggleDarkMode()
	m.rebuildTheme()
}

// applySettings adopts new settings. Changed intervals restart the timers,
// which also drops any sparkle or like pulse still in flight. Dark mode
// follows the settings only when their value changes, so an unrelated
// reload keeps a toggle made in the session.
func (m *Model) applySettings(s SettingsMsg) tea.Cmd {
	m.mouse = s.Mouse
	if s.DarkMode != m.fileDark {
		m.fileDark = s.DarkMode
		if s.DarkMode != m.state.DarkMode {
			m.state.ToggleDarkMode()
		}
	}
	m.ascii = s.ASCII
	m.rebuildTheme()

	m.logger.Printf("CONFIG_RELOAD | id=%s fact_every=%s sparkle_every=%s dark=%t",
		m.id, s.Intervals.FactRotation, s.Intervals.SparkleEvery, s.DarkMode)

	if s.Intervals == m.sched.Intervals() {
		return nil
	}
	m.sched.SetIntervals(s.Intervals)
	if !m.mounted {
		return nil
	}
	m.state.HideSparkle()
	m.state.EndLikePulse()
	return m.sched.Start()
}

// rebuildTheme derives a fresh theme from the dark-mode flag.
func (m *Model) rebuildTheme() {
	t := styles.NewThemeWithProfile(m.state.DarkMode, m.ascii, m.theme.ColorProfile)
	t.SetSize(m.width, m.height)
	m.theme = t
	m.status.SetTheme(t)
}
