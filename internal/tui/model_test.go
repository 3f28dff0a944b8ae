package tui

import (
	"testing"

	"github.com/termfolio/folio/internal/config"
	"github.com/termfolio/folio/internal/portfolio"
	"github.com/termfolio/folio/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProjects() []portfolio.Project {
	return []portfolio.Project{
		{ID: "p1", Title: "Demo", Tags: []string{"x"}, Status: "In Progress", Results: []string{"ok"}},
		{ID: "p2", Title: "Other", Tags: []string{"y"}, Status: "Completed", Results: []string{"fine"}},
	}
}

// newTestModel builds a page model with the dataset loaded and a fixed
// window, bypassing the real fetch.
func newTestModel(t *testing.T, projects []portfolio.Project) Model {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	oldProfile := lipgloss.ColorProfile()
	oldBG := lipgloss.HasDarkBackground()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(oldProfile)
		lipgloss.SetHasDarkBackground(oldBG)
		theme.Apply(theme.Light)
	})

	m := NewModel(config.DefaultSettings(), "unused")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	next, _ = m.Update(datasetLoadedMsg{dataset: portfolio.NewDataset(projects)})
	return next.(Model)
}

func pressKey(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.Msg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEscape}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestScrolledFlag_Boundaries(t *testing.T) {
	m := newTestModel(t, sampleProjects())

	cases := []struct {
		offset int
		want   bool
	}{
		{0, false},
		{50, false},
		{51, true},
		{1000, true},
	}
	for _, tc := range cases {
		m.offset = tc.offset
		m.syncScrolled()
		assert.Equal(t, tc.want, m.scrolled, "offset %d", tc.offset)
	}
}

func TestScrolledFlag_WritesOnlyOnBoundaryCrossing(t *testing.T) {
	m := newTestModel(t, sampleProjects())

	m.offset = 51
	assert.True(t, m.syncScrolled(), "crossing the boundary must write")
	assert.False(t, m.syncScrolled(), "same position must not rewrite")

	m.offset = 1000
	assert.False(t, m.syncScrolled(), "already scrolled, no redundant write")

	m.offset = 0
	assert.True(t, m.syncScrolled(), "crossing back must write")
}

func TestDrawer_OpenCloseRestoresState(t *testing.T) {
	m := newTestModel(t, sampleProjects())

	require.False(t, m.scrollLock)

	m.openDrawer()
	assert.True(t, m.drawerOpen)
	assert.True(t, m.drawerOpenAttr)
	assert.True(t, m.scrollLock)

	m.closeDrawer()
	assert.False(t, m.drawerOpen)
	assert.False(t, m.drawerOpenAttr)
	assert.False(t, m.scrollLock)
}

func TestDrawer_DoubleCloseIsIdempotent(t *testing.T) {
	m := newTestModel(t, sampleProjects())

	m.openDrawer()
	m.closeDrawer()
	before := m
	m.closeDrawer()
	assert.Equal(t, before.drawerOpen, m.drawerOpen)
	assert.Equal(t, before.drawerOpenAttr, m.drawerOpenAttr)
	assert.Equal(t, before.scrollLock, m.scrollLock)
}

func TestModal_UnknownIDIsNoOp(t *testing.T) {
	m := newTestModel(t, sampleProjects())

	m.openModal("nonexistent-id")
	assert.False(t, m.modalOpen)
	assert.Equal(t, -1, m.lastFocused)
}

func TestModal_OpenThenCloseRestoresFocus(t *testing.T) {
	m := newTestModel(t, sampleProjects())

	m.cursor = 1
	m.openModal("p2")
	require.True(t, m.modalOpen)
	assert.Equal(t, "Other", m.current.Title)
	assert.True(t, m.closeFocused, "focus lands on the close control")
	assert.True(t, m.scrollLock)

	m.cursor = 0 // anything that moved focus meanwhile
	m.closeModal()
	assert.False(t, m.modalOpen)
	assert.False(t, m.scrollLock)
	assert.Equal(t, 1, m.cursor, "focus returns to the card focused before open")
	assert.Equal(t, -1, m.lastFocused, "focus memo cleared after use")
}

func TestModal_OpenWhenOpenIsGuarded(t *testing.T) {
	m := newTestModel(t, sampleProjects())

	m.openModal("p1")
	m.openModal("p2")
	assert.Equal(t, "Demo", m.current.Title, "second open while open must be ignored")
}

func TestModal_EscapeWhenClosedIsNoOp(t *testing.T) {
	m := newTestModel(t, sampleProjects())

	before := stripAnsi(m.View())
	m = pressKey(t, m, "esc")
	assert.False(t, m.modalOpen)
	assert.Equal(t, before, stripAnsi(m.View()))
}

func TestModal_CloseWhenClosedIsNoOp(t *testing.T) {
	m := newTestModel(t, sampleProjects())

	m.closeModal()
	assert.False(t, m.modalOpen)
	assert.False(t, m.scrollLock)
}

func TestEndToEnd_ActivatingCardShowsProjectModal(t *testing.T) {
	m := newTestModel(t, []portfolio.Project{
		{ID: "p1", Title: "Demo", Tags: []string{"x"}, Results: []string{"ok"}},
	})

	m = pressKey(t, m, "enter")
	require.True(t, m.modalOpen)

	view := stripAnsi(m.View())
	assert.Contains(t, view, "Demo")
	assert.Contains(t, view, "✅ ok")
}

func TestEndToEnd_SpaceActivatesLikeEnter(t *testing.T) {
	m := newTestModel(t, sampleProjects())

	m = pressKey(t, m, "space")
	assert.True(t, m.modalOpen)
}

func TestThemeKey_TogglesAndPersists(t *testing.T) {
	m := newTestModel(t, sampleProjects())
	require.Equal(t, theme.Light, theme.Current())

	m = pressKey(t, m, "t")
	assert.Equal(t, theme.Dark, theme.Current())

	loaded, err := config.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "dark", loaded.Appearance.Theme)

	m = pressKey(t, m, "t")
	assert.Equal(t, theme.Light, theme.Current())
}

func TestPlaceholderActions_ShowToast(t *testing.T) {
	m := newTestModel(t, sampleProjects())

	m = pressKey(t, m, "r")
	assert.Contains(t, m.toast, "Résumé")

	m = pressKey(t, m, "o")
	assert.Contains(t, m.toast, "Web version")
}

func TestScrollLock_BlocksScrollKeys(t *testing.T) {
	m := newTestModel(t, sampleProjects())

	m.openDrawer()
	before := m.offset
	m.scrollBy(wheelStep)
	assert.Equal(t, before, m.offset)

	m.closeDrawer()
	m.scrollBy(wheelStep)
	assert.Equal(t, before+wheelStep, m.offset)
}

func TestSectionJump_ClosesDrawer(t *testing.T) {
	m := newTestModel(t, sampleProjects())

	m.openDrawer()
	m.jumpToSection(int(sectionProjects))
	assert.False(t, m.drawerOpen)
	assert.True(t, m.springActive)
	assert.Equal(t, m.sectionTops[sectionProjects]-anchorMargin, m.springTarget)
}

func TestSectionJump_UnknownTargetIgnored(t *testing.T) {
	m := newTestModel(t, sampleProjects())

	m.jumpToSection(99)
	assert.False(t, m.springActive)
}

func TestDatasetFailure_StillInitializes(t *testing.T) {
	m := newTestModel(t, nil)

	assert.False(t, m.loading)
	assert.True(t, m.coverHidden)
	assert.Equal(t, 0, m.dataset.Len())

	// Opening any project is a silent no-op on the empty dataset.
	m = pressKey(t, m, "enter")
	assert.False(t, m.modalOpen)

	view := stripAnsi(m.View())
	assert.Contains(t, view, "No projects to show.")
}

func TestHideCover_ExactlyOnce(t *testing.T) {
	m := newTestModel(t, sampleProjects())

	require.True(t, m.coverHidden)
	m.hideCover()
	assert.True(t, m.coverHidden)
}
