package components

import (
	"strings"

	"github.com/termfolio/folio/internal/portfolio"
	"github.com/termfolio/folio/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// CardContentHeight is the number of inner rows a card always occupies, so the
// page layout stays stable while glow and focus state change.
const CardContentHeight = 4

// GlowPos is the pointer cell relative to a card's bounding box.
type GlowPos struct {
	X int
	Y int
}

// RenderCard renders one project card. focused drives the border highlight,
// glow (nil when the pointer is elsewhere) places the tracking marker.
func RenderCard(p portfolio.Project, focused bool, glow *GlowPos, width int) string {
	pal := theme.Active()

	border := pal.Border
	if focused {
		border = pal.Highlight
	}
	if glow != nil {
		border = pal.AccentAlt
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width)

	inner := width - 4 // border + padding
	title := lipgloss.NewStyle().Foreground(pal.Accent).Bold(true).Render(truncate(p.Title, inner))
	tags := lipgloss.NewStyle().Foreground(pal.Highlight).Render(truncate(strings.Join(p.Tags, " · "), inner))

	badge := lipgloss.NewStyle().
		Foreground(pal.Surface).
		Background(pal.AccentAlt).
		Padding(0, 1).
		Render(portfolio.StatusSlug(p.Status))
	meta := badge
	if p.Duration != "" {
		meta = lipgloss.JoinHorizontal(lipgloss.Top, badge, lipgloss.NewStyle().Foreground(pal.Muted).Render("  "+p.Duration))
	}

	glowLine := ""
	if glow != nil {
		col := glow.X
		if col < 0 {
			col = 0
		}
		if col > inner-1 {
			col = inner - 1
		}
		glowLine = strings.Repeat(" ", col) + lipgloss.NewStyle().Foreground(pal.AccentAlt).Render("✦")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, tags, meta, glowLine)
	return box.Render(content)
}

func truncate(s string, w int) string {
	if w <= 0 || lipgloss.Width(s) <= w {
		return s
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	return string(r[:w-1]) + "…"
}
