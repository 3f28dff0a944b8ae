package theme

import (
	"testing"

	"github.com/termfolio/folio/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pinColorProfile(t *testing.T) {
	t.Helper()
	oldProfile := lipgloss.ColorProfile()
	oldBG := lipgloss.HasDarkBackground()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(oldProfile)
		lipgloss.SetHasDarkBackground(oldBG)
		Apply(Light)
	})
}

func TestParse_UnknownFallsBackToLight(t *testing.T) {
	assert.Equal(t, Light, Parse(""))
	assert.Equal(t, Light, Parse("solarized"))
	assert.Equal(t, Light, Parse("DARK"))
	assert.Equal(t, Dark, Parse("dark"))
}

func TestToggle_IsItsOwnInverse(t *testing.T) {
	pinColorProfile(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	m := NewManager(config.DefaultSettings())
	start := m.Init()

	m.Toggle()
	m.Toggle()
	assert.Equal(t, start, Current())
}

func TestSet_PersistsAcrossReload(t *testing.T) {
	pinColorProfile(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	m := NewManager(config.DefaultSettings())
	m.Init()
	m.Set(Dark)

	// Fresh manager over reloaded settings: same theme comes back.
	reloaded, err := config.LoadSettings()
	require.NoError(t, err)
	m2 := NewManager(reloaded)
	assert.Equal(t, Dark, m2.Init())
}

func TestInit_CorruptPersistedValueFallsBackToLight(t *testing.T) {
	pinColorProfile(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	s := config.DefaultSettings()
	s.Appearance.Theme = "???garbage"
	m := NewManager(s)
	assert.Equal(t, Light, m.Init())
}

func TestApply_SwapsPalette(t *testing.T) {
	pinColorProfile(t)

	Apply(Light)
	lightText := Active().Text
	Apply(Dark)
	assert.NotEqual(t, lightText, Active().Text)
	assert.Equal(t, Dark, Current())
}
