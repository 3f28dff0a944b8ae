package tui

import (
	"strings"

	"github.com/termfolio/folio/internal/tui/components"
	"github.com/termfolio/folio/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// View renders the whole page: sticky header, the visible slice of the body,
// any overlay (drawer or modal), and the footer.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if !m.coverHidden {
		return m.renderCover()
	}

	header := m.renderHeader()
	body := m.renderBody()
	footer := m.renderFooter()

	view := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)

	// Never exceed the terminal height.
	lines := strings.Split(view, "\n")
	if len(lines) > m.height {
		lines = lines[:m.height]
	}
	return strings.Join(lines, "\n")
}

// renderCover is the loading overlay shown until the dataset settles.
func (m Model) renderCover() string {
	msg := lipgloss.JoinHorizontal(lipgloss.Top,
		m.spinner.View(),
		" ",
		m.styles.Cover.Render("folio is loading…"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
}

func (m Model) renderHeader() string {
	st := m.styles

	themeGlyph := "☀"
	if theme.Current() == theme.Dark {
		themeGlyph = "☾"
	}
	trigger := "≡"
	if m.drawerOpenAttr {
		trigger = "✕"
	}

	tabs := components.RenderTabBar(sectionNames[:], m.currentSection(), st.ActiveTab, st.Tab)
	left := lipgloss.JoinHorizontal(lipgloss.Top,
		st.Logo.Render("folio"),
		"  ",
		tabs,
	)
	right := lipgloss.JoinHorizontal(lipgloss.Top,
		st.Trigger.Render(themeGlyph),
		" ",
		st.Trigger.Render(trigger),
	)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)

	if m.scrolled {
		return m.styles.HeaderCompact.Width(m.width).Render(row)
	}
	return m.styles.Header.Width(m.width).Render(row)
}

func (m Model) renderBody() string {
	bodyH := m.bodyHeight()
	if bodyH == 0 {
		return ""
	}

	if m.modalOpen {
		modal := components.ProjectModal{
			Project:      m.current,
			Width:        m.modalWidth(),
			CloseFocused: m.closeFocused,
		}.View()
		return lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, modal)
	}

	if m.drawerOpen {
		return components.RenderDrawer(sectionNames[:], m.drawerCursor, m.width, bodyH)
	}

	start := m.offset
	if start > len(m.pageLines) {
		start = len(m.pageLines)
	}
	end := start + bodyH
	if end > len(m.pageLines) {
		end = len(m.pageLines)
	}

	lines := make([]string, 0, bodyH)
	lines = append(lines, m.pageLines[start:end]...)
	for len(lines) < bodyH {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	helpView := m.styles.Help.Render(m.help.View(m.activeKeys()))
	if m.toast == "" {
		return "\n" + helpView
	}
	toast := m.styles.Toast.Render(m.toast)
	gap := m.width - lipgloss.Width(helpView) - lipgloss.Width(toast) - 1
	if gap < 1 {
		gap = 1
	}
	return "\n" + lipgloss.JoinHorizontal(lipgloss.Top, helpView, strings.Repeat(" ", gap), toast)
}

// activeKeys picks the keymap for the focused layer.
func (m Model) activeKeys() help.KeyMap {
	switch {
	case m.modalOpen:
		return m.keys.Modal
	case m.drawerOpen:
		return m.keys.Drawer
	default:
		return m.keys.Page
	}
}
