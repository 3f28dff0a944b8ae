package components

import (
	"github.com/termfolio/folio/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderTabBar renders the header's horizontal section tabs.
// activeIndex specifies which section is currently in view (0-indexed).
func RenderTabBar(names []string, activeIndex int, activeStyle, inactiveStyle lipgloss.Style) string {
	var rendered []string
	for i, name := range names {
		style := inactiveStyle
		if i == activeIndex {
			style = activeStyle
		}
		rendered = append(rendered, style.Render(name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// RenderDrawer renders the nav drawer panel: a vertical section list with a
// cursor. The caller places it over the page body.
func RenderDrawer(names []string, cursor int, width, height int) string {
	pal := theme.Active()

	item := lipgloss.NewStyle().Foreground(pal.Muted)
	active := lipgloss.NewStyle().Foreground(pal.Highlight).Bold(true)
	title := lipgloss.NewStyle().Foreground(pal.Accent).Bold(true)

	lines := []string{title.Render("Navigate"), ""}
	for i, name := range names {
		prefix := "  "
		style := item
		if i == cursor {
			prefix = "❯ "
			style = active
		}
		lines = append(lines, style.Render(prefix+name))
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.Highlight).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}
