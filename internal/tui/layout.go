package tui

import (
	"fmt"
	"strings"

	"github.com/termfolio/folio/internal/tui/components"

	"github.com/charmbracelet/lipgloss"
)

const (
	fullHeaderHeight    = 4
	compactHeaderHeight = 2
	footerHeight        = 2

	maxContentWidth = 76
)

func (m *Model) contentWidth() int {
	w := m.width - 4
	if w > maxContentWidth {
		w = maxContentWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// relayout rebuilds the page body and the geometry the scroll, reveal and
// glow layers key off: section tops/heights and card bounding boxes.
func (m *Model) relayout() {
	if m.width == 0 {
		return
	}

	sections := []string{
		m.renderHero(),
		m.renderStats(),
		m.renderSkills(),
		m.renderProjects(),
		m.renderContact(),
	}

	m.sectionTops = m.sectionTops[:0]
	m.sectionHeights = m.sectionHeights[:0]
	top := 0
	for i, s := range sections {
		h := lipgloss.Height(s)
		m.sectionTops = append(m.sectionTops, top)
		m.sectionHeights = append(m.sectionHeights, h)
		if i == int(sectionProjects) {
			for j := range m.cardBoxes {
				m.cardBoxes[j].top += top
			}
		}
		top += h
	}

	m.pageLines = strings.Split(strings.Join(sections, "\n"), "\n")
	m.clampOffset()
}

func (m *Model) renderHero() string {
	st := m.styles
	w := m.contentWidth()
	body := lipgloss.NewStyle().Width(w).Render(st.Text.Render(heroBody))
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		st.HeroTitle.Render(heroTitle),
		st.HeroSub.Render(heroSub),
		"",
		body,
		"",
		"",
	)
}

func (m *Model) renderStats() string {
	st := m.styles
	lines := []string{st.SectionTitle.Render("· Stats"), ""}
	for i, stat := range pageStats {
		value := stat.Label
		if i < len(m.counters) {
			value = m.counters[i].text()
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			st.StatValue.Render(fmt.Sprintf("%-8s", value)),
			st.StatCaption.Render(stat.Caption),
		))
	}
	lines = append(lines, "", "")
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderSkills() string {
	st := m.styles
	lines := []string{st.SectionTitle.Render("· Skills"), ""}
	for i, sk := range pageSkills {
		bar := ""
		if i < len(m.skillBars) {
			bar = m.skillBars[i].View()
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			st.SkillName.Render(sk.Name),
			bar,
		))
	}
	lines = append(lines, "", "")
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderProjects also records each card's bounding box, relative to the
// section top; relayout shifts them into page coordinates.
func (m *Model) renderProjects() string {
	st := m.styles
	w := m.contentWidth()

	m.cardBoxes = m.cardBoxes[:0]
	lines := []string{st.SectionTitle.Render("· Projects"), ""}
	top := 2

	for i, p := range m.dataset.All() {
		var glow *components.GlowPos
		if m.glowCard == i {
			g := m.glowPos
			glow = &g
		}
		card := components.RenderCard(p, i == m.cursor, glow, w)
		h := lipgloss.Height(card)
		m.cardBoxes = append(m.cardBoxes, box{top: top, left: 0, width: w, height: h})
		lines = append(lines, card, "")
		top += h + 1
	}
	if m.dataset.Len() == 0 {
		lines = append(lines, st.Muted.Render("No projects to show."), "")
	}
	lines = append(lines, "")
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderContact() string {
	st := m.styles
	lines := []string{st.SectionTitle.Render("· Contact"), ""}
	for _, l := range contactLines {
		lines = append(lines, st.Text.Render(l))
	}
	lines = append(lines,
		"",
		st.Muted.Render("r download résumé · o web version"),
		"",
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// modalWidth returns the modal box width for the current terminal.
func (m *Model) modalWidth() int {
	w := m.width - 8
	if w > 70 {
		w = 70
	}
	if w < 30 {
		w = 30
	}
	return w
}

// modalBox computes the modal's on-screen rectangle, matching the centered
// placement View uses. Needed for backdrop and close-control hit-testing.
func (m *Model) modalBox() box {
	view := components.ProjectModal{Project: m.current, Width: m.modalWidth(), CloseFocused: m.closeFocused}.View()
	h := lipgloss.Height(view)
	w := lipgloss.Width(view)
	bodyH := m.bodyHeight()
	topPad := (bodyH - h) / 2
	if topPad < 0 {
		topPad = 0
	}
	leftPad := (m.width - w) / 2
	if leftPad < 0 {
		leftPad = 0
	}
	return box{top: m.headerHeight() + topPad, left: leftPad, width: w, height: h}
}
