package theme

import (
	"github.com/termfolio/folio/internal/config"
	"github.com/termfolio/folio/internal/logging"
)

// Manager owns the theme preference: it applies the persisted value on
// startup and writes every change back through the settings file.
type Manager struct {
	settings *config.Settings
}

func NewManager(settings *config.Settings) *Manager {
	return &Manager{settings: settings}
}

// Init applies the persisted theme (light when unset or unrecognized) and
// returns it.
func (m *Manager) Init() Theme {
	t := Parse(m.settings.Appearance.Theme)
	Apply(t)
	return t
}

// Set applies t and persists it. Storage failures are logged and otherwise
// swallowed; the in-memory theme still changes.
func (m *Manager) Set(t Theme) {
	Apply(t)
	m.settings.Appearance.Theme = string(t)
	if err := config.SaveSettings(m.settings); err != nil {
		logging.Warnf("could not persist theme preference: %v", err)
	}
}

// Toggle flips light<->dark and persists the result.
func (m *Manager) Toggle() Theme {
	next := Current().Flipped()
	m.Set(next)
	return next
}
