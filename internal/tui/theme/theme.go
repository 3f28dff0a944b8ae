package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the persisted visual mode.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Parse maps a persisted theme name to a Theme. Anything unknown (including
// a corrupt preference value) falls back to Light.
func Parse(s string) Theme {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s)
	default:
		return Light
	}
}

// Flipped returns the opposite theme.
func (t Theme) Flipped() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Palette holds the concrete colors for one theme.
type Palette struct {
	Accent    lipgloss.Color // headings, logo
	AccentAlt lipgloss.Color // secondary accent (badges, glow)
	Highlight lipgloss.Color // focused borders, active tab

	Background lipgloss.Color
	Surface    lipgloss.Color // cards, modal
	Border     lipgloss.Color
	Muted      lipgloss.Color // secondary text
	Text       lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Danger  lipgloss.Color
}

var palettes = map[Theme]Palette{
	Light: {
		Accent:     lipgloss.Color("#5d40c9"),
		AccentAlt:  lipgloss.Color("#d10074"),
		Highlight:  lipgloss.Color("#0073a8"),
		Background: lipgloss.Color("#ffffff"),
		Surface:    lipgloss.Color("#f2f2f2"),
		Border:     lipgloss.Color("#d0d0d0"),
		Muted:      lipgloss.Color("#4a4a4a"),
		Text:       lipgloss.Color("#1a1a1a"),
		Success:    lipgloss.Color("#2e7d32"),
		Warning:    lipgloss.Color("#f57c00"),
		Danger:     lipgloss.Color("#d32f2f"),
	},
	Dark: {
		Accent:     lipgloss.Color("#bd93f9"),
		AccentAlt:  lipgloss.Color("#ff79c6"),
		Highlight:  lipgloss.Color("#8be9fd"),
		Background: lipgloss.Color("#282a36"),
		Surface:    lipgloss.Color("#313442"),
		Border:     lipgloss.Color("#44475a"),
		Muted:      lipgloss.Color("#a9b1d6"),
		Text:       lipgloss.Color("#f8f8f2"),
		Success:    lipgloss.Color("#50fa7b"),
		Warning:    lipgloss.Color("#ffb86c"),
		Danger:     lipgloss.Color("#ff5555"),
	},
}

var (
	mu      sync.RWMutex
	current = Light
	active  = palettes[Light]
)

// Apply makes t the active theme. The palette swap and the terminal
// background hint happen together; there is no partial application.
func Apply(t Theme) {
	mu.Lock()
	current = t
	active = palettes[t]
	mu.Unlock()

	lipgloss.SetHasDarkBackground(t == Dark)
}

// Current returns the active theme.
func Current() Theme {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Active returns the palette of the active theme.
func Active() Palette {
	mu.RLock()
	defer mu.RUnlock()
	return active
}
