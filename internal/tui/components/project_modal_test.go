package components

import (
	"regexp"
	"testing"

	"github.com/termfolio/folio/internal/portfolio"
	"github.com/termfolio/folio/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

var ansiEscapeRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func pinProfile(t *testing.T) {
	t.Helper()
	oldProfile := lipgloss.ColorProfile()
	oldBG := lipgloss.HasDarkBackground()
	lipgloss.SetColorProfile(termenv.TrueColor)
	theme.Apply(theme.Light)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(oldProfile)
		lipgloss.SetHasDarkBackground(oldBG)
		theme.Apply(theme.Light)
	})
}

func sampleProject() portfolio.Project {
	return portfolio.Project{
		ID:        "p1",
		Title:     "Demo",
		Image:     "demo.png",
		ImageKind: "png",
		Tags:      []string{"go", "tui"},
		Duration:  "3 months",
		TeamSize:  "solo",
		Budget:    "none",
		Status:    "In Progress",
		Problem:   "Things were slow.",
		Solution:  "Made them fast.",
		Results:   []string{"ok", "shipped"},
	}
}

func TestProjectModal_RendersAllBlocks(t *testing.T) {
	pinProfile(t)

	view := ansiEscapeRE.ReplaceAllString(ProjectModal{Project: sampleProject(), Width: 60}.View(), "")

	assert.Contains(t, view, "Demo")
	assert.Contains(t, view, "demo.png (png image)")
	assert.Contains(t, view, "go · tui")
	assert.Contains(t, view, "Duration")
	assert.Contains(t, view, "3 months")
	assert.Contains(t, view, "in-progress", "status renders as a slug-cased badge")
	assert.Contains(t, view, "Problem")
	assert.Contains(t, view, "Solution")
	assert.Contains(t, view, "✅ ok")
	assert.Contains(t, view, "✅ shipped")
	assert.Contains(t, view, "✕")
}

func TestProjectModal_RenderIsPure(t *testing.T) {
	pinProfile(t)

	m := ProjectModal{Project: sampleProject(), Width: 60, CloseFocused: true}
	assert.Equal(t, m.View(), m.View())
}

func TestProjectModal_SkipsEmptyBlocks(t *testing.T) {
	pinProfile(t)

	p := portfolio.Project{ID: "bare", Title: "Bare"}
	view := ansiEscapeRE.ReplaceAllString(ProjectModal{Project: p, Width: 60}.View(), "")

	assert.Contains(t, view, "Bare")
	assert.NotContains(t, view, "Duration")
	assert.NotContains(t, view, "Problem")
	assert.NotContains(t, view, "✅")
}

func TestProjectModal_CloseFocusHighlight(t *testing.T) {
	pinProfile(t)

	plain := ProjectModal{Project: sampleProject(), Width: 60}.View()
	focused := ProjectModal{Project: sampleProject(), Width: 60, CloseFocused: true}.View()
	assert.NotEqual(t, plain, focused, "focused close control must render differently")
}
