// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catpage

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/feline-tui/internal/content"
	"github.com/jeranaias/feline-tui/internal/page"
	"github.com/jeranaias/feline-tui/internal/util"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	maxPageWidth  = 100
	barWidth      = 20
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the page, or the detail overlay when a breed is selected.
func (m *Model) View() string {
	if m.state.DetailOpen() {
		return m.viewDetail()
	}

	sections := []string{
		m.viewHeader(),
		m.viewHero(),
		m.viewCarousel(),
		m.viewFact(),
		m.viewTabs(),
		m.viewStatus(),
		m.help.View(m.keys),
	}
	return m.theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// pageWidth is the usable width for cards.
func (m *Model) pageWidth() int {
	w := m.width
	if w <= 0 {
		w = defaultWidth
	}
	if w > maxPageWidth {
		w = maxPageWidth
	}
	return w - 2
}

// innerWidth is the usable width inside a card.
func (m *Model) innerWidth() int {
	w := m.pageWidth() - 6
	if w < 10 {
		w = 10
	}
	return w
}

func (m *Model) card(title, description string, body ...string) string {
	t := m.theme
	parts := []string{t.CardTitle.Render(title)}
	if description != "" {
		parts = append(parts, t.CardDescription.Render(description))
	}
	parts = append(parts, "")
	parts = append(parts, body...)
	return t.Card.Width(m.pageWidth() - 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) viewHeader() string {
	t := m.theme
	g := t.Glyphs

	title := t.Title.Render(g.Cat + " " + m.hero.Title)
	if m.state.SparkleVisible {
		title += " " + t.Sparkle.Render(g.Sparkle)
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.PlaceHorizontal(m.pageWidth(), lipgloss.Center, title),
		lipgloss.PlaceHorizontal(m.pageWidth(), lipgloss.Center, t.Tagline.Render(m.hero.Tagline)),
	)
}

func (m *Model) viewHero() string {
	t := m.theme
	g := t.Glyphs

	caption := t.Caption.Render(g.Image+" "+m.hero.ImageAlt) + "  " +
		t.Link.Render(util.TruncateWidth(m.hero.Image, m.innerWidth()-len(m.hero.ImageAlt)-6))

	intro := m.md.Render(t.GlamourStyle(), m.innerWidth(), m.hero.Intro)

	return lipgloss.JoinVertical(lipgloss.Left,
		caption,
		m.card("About", "", intro, "", m.likeButton()),
	)
}

func (m *Model) likeButton() string {
	t := m.theme
	label := fmt.Sprintf("%s Like (%s)", t.Glyphs.Heart, util.FormatCount(m.state.LikeCount))
	if m.state.LikePulse {
		return t.LikeButtonPulse.Render(label)
	}
	return t.LikeButton.Render(label)
}

func (m *Model) viewCarousel() string {
	t := m.theme
	g := t.Glyphs

	if len(m.breeds) == 0 {
		return m.card("Gallery", "", t.Muted.Render(g.NoImage))
	}

	b := m.breeds[m.state.Slide]
	nav := fmt.Sprintf("%s %d/%d %s", g.ArrowLeft, m.state.Slide+1, len(m.breeds), g.ArrowRight)

	return m.card("Gallery", "Meet the breeds",
		t.BreedName.Render(b.Name)+"  "+t.Muted.Render(nav),
		m.imageLine(b),
		popularityLine(m, b),
		t.Muted.Render(g.RenderDots(m.state.Slide, len(m.breeds))),
	)
}

// imageLine shows the image reference, or a placeholder when there is none.
func (m *Model) imageLine(b content.Breed) string {
	t := m.theme
	if b.Image == "" {
		return t.Muted.Render(t.Glyphs.NoImage + " image unavailable")
	}
	return t.Caption.Render(t.Glyphs.Image+" ") + t.Link.Render(util.TruncateWidth(b.Image, m.innerWidth()-6))
}

func popularityLine(m *Model, b content.Breed) string {
	t := m.theme
	return "Popularity " + t.Bar.Render(t.Glyphs.RenderBar(barWidth, b.Popularity)) +
		fmt.Sprintf(" %d%%", b.Popularity)
}

func (m *Model) viewFact() string {
	t := m.theme
	g := t.Glyphs
	title := g.Info + " Did You Know?"

	if len(m.facts) == 0 {
		return m.card(title, "", t.Muted.Render("No facts today."))
	}

	f := m.facts[m.state.FactIndex]
	text := lipgloss.NewStyle().Width(m.innerWidth() - 4).Render(f.Text)
	return m.card(title, "",
		lipgloss.JoinHorizontal(lipgloss.Top, t.FactIcon.Render(f.Icon)+"  ", t.CardBody.Render(text)),
		"",
		t.Muted.Render(g.RenderDots(m.state.FactIndex, len(m.facts))),
	)
}

func (m *Model) viewTabs() string {
	t := m.theme

	labels := make([]string, 0, len(page.Tabs()))
	for _, tab := range page.Tabs() {
		if tab == m.state.Tab {
			labels = append(labels, t.TabActive.Render(tab.String()))
		} else {
			labels = append(labels, t.TabInactive.Render(tab.String()))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, labels...)

	var panel string
	switch m.state.Tab {
	case page.TabBreeds:
		rows := make([]string, 0, len(m.breeds))
		for i, b := range m.breeds {
			rows = append(rows, fmt.Sprintf("%d. %s %s", i+1,
				t.BreedName.Render(b.Name),
				t.CardDescription.Render(util.TruncateWidth(b.Description, m.innerWidth()-len(b.Name)-5))))
		}
		panel = m.card("Diverse Cat Breeds", "Explore some popular feline varieties", rows...)
	case page.TabCareTips:
		panel = m.card("Caring for Your Cat", "Simple habits for a happy cat", m.bullets(m.tips)...)
	default:
		panel = m.card("Feline Features", "What makes cats unique?", m.bullets(m.features)...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, bar, panel)
}

func (m *Model) viewStatus() string {
	m.status.Sync(m.state, len(m.breeds))
	m.status.SetWidth(m.pageWidth())
	return m.status.View()
}

func (m *Model) bullets(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, m.theme.Glyphs.Bullet+" "+m.theme.CardBody.Render(item))
	}
	return out
}

// =============================================================================
// DETAIL OVERLAY
// =============================================================================

func (m *Model) viewDetail() string {
	box, width, height := m.detailBox()
	if box == "" {
		return ""
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// detailBox renders the modal box and the screen size it is centred in.
func (m *Model) detailBox() (box string, width, height int) {
	b, ok := m.state.Selected()
	if !ok {
		return "", 0, 0
	}
	t := m.theme

	width = m.width
	if width <= 0 {
		width = defaultWidth
	}
	height = m.height
	if height <= 0 {
		height = defaultHeight
	}

	boxWidth := width - 8
	if boxWidth > 64 {
		boxWidth = 64
	}
	if boxWidth < 30 {
		boxWidth = 30
	}

	body := m.md.Render(t.GlamourStyle(), boxWidth-8, detailMarkdown(b))

	inner := lipgloss.JoinVertical(lipgloss.Left,
		t.ModalTitle.Render(b.Name),
		"",
		body,
		"",
		popularityLine(m, b),
		m.imageLine(b),
		"",
		t.ModalHint.Render(fmt.Sprintf("esc to close  ·  1-%d to switch breed", len(m.breeds))),
	)

	return t.Modal.Width(boxWidth).Render(inner), width, height
}

// inDetailBox reports whether a screen cell lies on the modal box.
func (m *Model) inDetailBox(x, y int) bool {
	box, width, height := m.detailBox()
	if box == "" {
		return false
	}
	left := centreOffset(width, lipgloss.Width(box))
	top := centreOffset(height, lipgloss.Height(box))
	return x >= left && x < left+lipgloss.Width(box) &&
		y >= top && y < top+lipgloss.Height(box)
}

// centreOffset matches the leading gap lipgloss.Place leaves when centring.
func centreOffset(space, size int) int {
	gap := space - size
	if gap <= 0 {
		return 0
	}
	return gap - int(math.Round(float64(gap)*0.5))
}

func detailMarkdown(b content.Breed) string {
	var sb strings.Builder
	sb.WriteString(b.Description)
	if b.Origin != "" {
		sb.WriteString("\n\n**Origin:** ")
		sb.WriteString(b.Origin)
	}
	sb.WriteString("\n")
	return sb.String()
}

// =============================================================================
// SNAPSHOT
// =============================================================================

// Snapshot renders the initial page once without starting any timer.
func Snapshot(opts Options, width int) string {
	m := New(opts)
	m.width = width
	m.theme.SetSize(width, 0)
	m.help.Width = width
	return m.View()
}
