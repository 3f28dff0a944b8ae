package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/termfolio/folio/internal/logging"
	"github.com/termfolio/folio/internal/portfolio"
	"github.com/termfolio/folio/internal/tui/components"
	"github.com/termfolio/folio/internal/tui/theme"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case datasetLoadedMsg:
		if msg.err != nil {
			// The page still comes up; the modal just finds no projects.
			logging.Errorf("dataset load failed: %v", msg.err)
			m.dataset = portfolio.NewDataset(nil)
		} else {
			m.dataset = msg.dataset
		}
		m.loading = false
		m.hideCover()
		m.relayout()
		cmds = append(cmds, m.checkReveals())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		cmds = append(cmds, m.checkReveals())

	case progress.FrameMsg:
		for i := range m.skillBars {
			newModel, cmd := m.skillBars[i].Update(msg)
			if p, ok := newModel.(progress.Model); ok {
				m.skillBars[i] = p
			}
			cmds = append(cmds, cmd)
		}
		m.relayout()

	case counterFrameMsg:
		cmds = append(cmds, m.stepCounters(msg.at))

	case springFrameMsg:
		if m.springActive {
			cmds = append(cmds, m.stepSpring())
		}

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}

	case debounceFiredMsg:
		// No trailing-edge consumer in the page flow; stale fires drop here.
		_ = m.settleGate.current(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) stepSpring() tea.Cmd {
	pos, vel := m.spring.Update(m.springPos, m.springVel, float64(m.springTarget))
	m.springPos, m.springVel = pos, vel
	m.offset = int(math.Round(pos))
	m.clampOffset()

	if math.Abs(pos-float64(m.springTarget)) < 0.5 && math.Abs(vel) < 0.5 {
		m.offset = m.springTarget
		m.springActive = false
		m.syncScrolled()
		return m.checkReveals()
	}

	m.evalScroll(time.Now())
	return tea.Batch(m.checkReveals(), springFrameCmd())
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Force-quit works from every state.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.modalOpen:
		switch {
		case key.Matches(msg, m.keys.Modal.Close):
			m.closeModal()
			m.relayout()
		case key.Matches(msg, m.keys.Modal.Copy):
			summary := fmt.Sprintf("%s — %s", m.current.Title, m.current.Status)
			if err := clipboard.WriteAll(summary); err != nil {
				logging.Warnf("clipboard write failed: %v", err)
			} else {
				cmds = append(cmds, m.showToast("Copied to clipboard"))
			}
		}
		return m, tea.Batch(cmds...)

	case m.drawerOpen:
		switch {
		case key.Matches(msg, m.keys.Drawer.Close):
			m.closeDrawer()
		case key.Matches(msg, m.keys.Drawer.Up):
			if m.drawerCursor > 0 {
				m.drawerCursor--
			}
		case key.Matches(msg, m.keys.Drawer.Down):
			if m.drawerCursor < int(sectionCount)-1 {
				m.drawerCursor++
			}
		case key.Matches(msg, m.keys.Drawer.Select):
			m.jumpToSection(m.drawerCursor)
			cmds = append(cmds, springFrameCmd())
		}
		return m, tea.Batch(cmds...)
	}

	switch {
	case key.Matches(msg, m.keys.Page.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Page.Theme):
		m.themes.Toggle()
		m.styles = NewStyles(theme.Active())
		m.relayout()

	case key.Matches(msg, m.keys.Page.Menu):
		m.toggleDrawer()

	case key.Matches(msg, m.keys.Page.Top):
		m.jumpToSection(0)
		cmds = append(cmds, springFrameCmd())

	case key.Matches(msg, m.keys.Page.Section):
		if s := int(msg.String()[0] - '1'); s >= 0 && s < int(sectionCount) {
			m.jumpToSection(s)
			cmds = append(cmds, springFrameCmd())
		}

	case key.Matches(msg, m.keys.Page.NextCard):
		if m.cursor < m.dataset.Len()-1 {
			m.cursor++
			m.relayout()
			cmds = append(cmds, m.ensureCardVisible(m.cursor))
		}

	case key.Matches(msg, m.keys.Page.PrevCard):
		if m.cursor > 0 {
			m.cursor--
			m.relayout()
			cmds = append(cmds, m.ensureCardVisible(m.cursor))
		}

	case key.Matches(msg, m.keys.Page.Open):
		if m.cursor >= 0 && m.cursor < m.dataset.Len() {
			m.openModal(m.dataset.All()[m.cursor].ID)
			m.relayout()
		}

	case key.Matches(msg, m.keys.Page.Resume):
		cmds = append(cmds, m.showToast("Résumé download isn't wired up yet"))

	case key.Matches(msg, m.keys.Page.WebView):
		cmds = append(cmds, m.showToast("Web version isn't available yet"))

	case key.Matches(msg, m.keys.Page.Up):
		cmds = append(cmds, m.scrollBy(-1))
	case key.Matches(msg, m.keys.Page.Down):
		cmds = append(cmds, m.scrollBy(1))
	case key.Matches(msg, m.keys.Page.PageUp):
		cmds = append(cmds, m.scrollBy(-m.bodyHeight()))
	case key.Matches(msg, m.keys.Page.PageDown):
		cmds = append(cmds, m.scrollBy(m.bodyHeight()))
	}

	return m, tea.Batch(cmds...)
}

// scrollBy moves the viewport unless an overlay holds the scroll lock.
func (m *Model) scrollBy(delta int) tea.Cmd {
	if m.scrollLock || delta == 0 {
		return nil
	}
	m.springActive = false
	m.offset += delta
	m.clampOffset()
	m.evalScroll(time.Now())
	return m.checkReveals()
}

// ensureCardVisible nudges the viewport so the focused card is on screen.
func (m *Model) ensureCardVisible(i int) tea.Cmd {
	if i < 0 || i >= len(m.cardBoxes) {
		return nil
	}
	b := m.cardBoxes[i]
	bodyH := m.bodyHeight()
	moved := false
	if b.top < m.offset {
		m.offset = b.top - anchorMargin
		moved = true
	} else if b.top+b.height > m.offset+bodyH {
		m.offset = b.top + b.height - bodyH
		moved = true
	}
	if !moved {
		return nil
	}
	m.clampOffset()
	m.evalScroll(time.Now())
	return m.checkReveals()
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.Action {
	case tea.MouseActionMotion:
		m.trackGlow(msg.X, msg.Y)

	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			cmds = append(cmds, m.scrollBy(-wheelStep))
		case tea.MouseButtonWheelDown:
			cmds = append(cmds, m.scrollBy(wheelStep))
		case tea.MouseButtonLeft:
			m.handleClick(msg.X, msg.Y)
		}
	}

	return m, tea.Batch(cmds...)
}

// trackGlow publishes the pointer cell relative to the card under it, rate
// limited to one update per cooldown.
func (m *Model) trackGlow(x, y int) {
	if m.modalOpen || m.drawerOpen {
		return
	}
	i, b, ok := m.cardAt(x, y)
	if !ok {
		if m.glowCard != -1 {
			m.glowCard = -1
			m.relayout()
		}
		return
	}
	if !m.glowGate.allow(time.Now()) {
		return
	}
	pageY := y - m.headerHeight() + m.offset
	m.glowCard = i
	m.glowPos = components.GlowPos{X: x - b.left - 2, Y: pageY - b.top}
	m.relayout()
}

// cardAt maps a screen cell to the card covering it, if any.
func (m *Model) cardAt(x, y int) (int, box, bool) {
	if y < m.headerHeight() || y >= m.headerHeight()+m.bodyHeight() {
		return 0, box{}, false
	}
	pageY := y - m.headerHeight() + m.offset
	for i, b := range m.cardBoxes {
		if pageY >= b.top && pageY < b.top+b.height && x >= b.left && x < b.left+b.width {
			return i, b, true
		}
	}
	return 0, box{}, false
}

func (m *Model) handleClick(x, y int) {
	if m.modalOpen {
		mb := m.modalBox()
		inside := x >= mb.left && x < mb.left+mb.width && y >= mb.top && y < mb.top+mb.height
		if !inside {
			// Backdrop click.
			m.closeModal()
			m.relayout()
			return
		}
		// The close control sits at the top right of the content row.
		if y == mb.top+2 && x >= mb.left+mb.width-6 {
			m.closeModal()
			m.relayout()
		}
		return
	}

	if m.drawerOpen {
		m.closeDrawer()
		return
	}

	if i, _, ok := m.cardAt(x, y); ok {
		m.cursor = i
		m.openModal(m.dataset.All()[i].ID)
		m.relayout()
	}
}
