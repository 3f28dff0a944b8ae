package tui

import (
	"github.com/termfolio/folio/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the page-level style set for one theme. Rebuilt from the active
// palette whenever the theme changes, so every visual surface flips at once.
// Components (cards, modal, drawer) derive their own styles from the same
// palette.
type Styles struct {
	Header        lipgloss.Style
	HeaderCompact lipgloss.Style
	Logo          lipgloss.Style
	Tab           lipgloss.Style
	ActiveTab     lipgloss.Style
	Trigger       lipgloss.Style

	SectionTitle lipgloss.Style
	HeroTitle    lipgloss.Style
	HeroSub      lipgloss.Style
	Text         lipgloss.Style
	Muted        lipgloss.Style

	StatValue   lipgloss.Style
	StatCaption lipgloss.Style
	SkillName   lipgloss.Style

	Help  lipgloss.Style
	Toast lipgloss.Style
	Cover lipgloss.Style
}

func NewStyles(p theme.Palette) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.Border).
			Padding(1, 2),

		// Compact variant once the page is scrolled: no breathing room.
		HeaderCompact: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.Highlight).
			Padding(0, 2),

		Logo: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),

		ActiveTab: lipgloss.NewStyle().
			Foreground(p.Highlight).
			Bold(true).
			Padding(0, 1),

		Trigger: lipgloss.NewStyle().
			Foreground(p.AccentAlt).
			Bold(true),

		SectionTitle: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		HeroTitle: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		HeroSub: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),

		Text: lipgloss.NewStyle().
			Foreground(p.Text),

		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),

		StatValue: lipgloss.NewStyle().
			Foreground(p.AccentAlt).
			Bold(true),

		StatCaption: lipgloss.NewStyle().
			Foreground(p.Muted),

		SkillName: lipgloss.NewStyle().
			Foreground(p.Text).
			Width(22),

		Help: lipgloss.NewStyle().
			Foreground(p.Muted),

		Toast: lipgloss.NewStyle().
			Foreground(p.Surface).
			Background(p.Warning).
			Padding(0, 1),

		Cover: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
	}
}
