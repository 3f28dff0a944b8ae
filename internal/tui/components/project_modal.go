package components

import (
	"strings"

	"github.com/termfolio/folio/internal/portfolio"
	"github.com/termfolio/folio/internal/tui/theme"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// ProjectModal renders the detail view for one project. Rendering is a pure
// function of the project and the sizing fields: no state, no lookups.
type ProjectModal struct {
	Project portfolio.Project
	Width   int

	// CloseFocused highlights the close control; keyboard users land on it
	// when the modal opens.
	CloseFocused bool
}

// View renders the full modal box.
func (m ProjectModal) View() string {
	pal := theme.Active()
	inner := m.Width - 6 // double border + padding
	if inner < 20 {
		inner = 20
	}

	titleStyle := lipgloss.NewStyle().Foreground(pal.Accent).Bold(true)
	label := lipgloss.NewStyle().Foreground(pal.Highlight).Width(12)
	value := lipgloss.NewStyle().Foreground(pal.Text).Bold(true)
	muted := lipgloss.NewStyle().Foreground(pal.Muted)
	result := lipgloss.NewStyle().Foreground(pal.Success)
	badge := lipgloss.NewStyle().Foreground(pal.Surface).Background(pal.AccentAlt).Padding(0, 1).Bold(true)

	closeStyle := lipgloss.NewStyle().Foreground(pal.Danger).Bold(true)
	if m.CloseFocused {
		closeStyle = closeStyle.Reverse(true)
	}
	closeCtl := closeStyle.Render("✕")

	titleWidth := inner - lipgloss.Width(closeCtl) - 1
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(titleWidth).Render(titleStyle.Render(truncate(m.Project.Title, titleWidth))),
		" ",
		closeCtl,
	)

	var blocks []string
	blocks = append(blocks, header, "")

	if m.Project.Image != "" {
		img := "▣ " + m.Project.Image
		if m.Project.ImageKind != "" {
			img += " (" + m.Project.ImageKind + " image)"
		}
		blocks = append(blocks, muted.Render(img), "")
	}

	if len(m.Project.Tags) > 0 {
		tags := lipgloss.NewStyle().Foreground(pal.Highlight).Render(strings.Join(m.Project.Tags, " · "))
		blocks = append(blocks, tags, "")
	}

	meta := [][2]string{
		{"Duration", m.Project.Duration},
		{"Team size", m.Project.TeamSize},
		{"Budget", m.Project.Budget},
	}
	for _, kv := range meta {
		if kv[1] == "" {
			continue
		}
		blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, label.Render(kv[0]), value.Render(kv[1])))
	}
	if m.Project.Status != "" {
		blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top,
			label.Render("Status"),
			badge.Render(portfolio.StatusSlug(m.Project.Status)),
		))
	}
	blocks = append(blocks, "")

	if m.Project.Problem != "" {
		blocks = append(blocks, titleStyle.Render("Problem"), renderMarkdown(m.Project.Problem, inner), "")
	}
	if m.Project.Solution != "" {
		blocks = append(blocks, titleStyle.Render("Solution"), renderMarkdown(m.Project.Solution, inner), "")
	}

	if len(m.Project.Results) > 0 {
		blocks = append(blocks, titleStyle.Render("Results"))
		for _, r := range m.Project.Results {
			blocks = append(blocks, result.Render("✅ "+r))
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(pal.Accent).
		Padding(1, 2).
		Width(m.Width)

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

// renderMarkdown renders a free-text panel as markdown, falling back to the
// raw text when the renderer is unhappy.
func renderMarkdown(md string, width int) string {
	styleName := "light"
	if theme.Current() == theme.Dark {
		styleName = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styleName),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
