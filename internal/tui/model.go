package tui

import (
	"time"

	"github.com/termfolio/folio/internal/config"
	"github.com/termfolio/folio/internal/logging"
	"github.com/termfolio/folio/internal/portfolio"
	"github.com/termfolio/folio/internal/tui/components"
	"github.com/termfolio/folio/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	// The header collapses once the page is scrolled past this row.
	scrolledThreshold = 50

	// Minimum time between scrolled-state evaluations.
	scrollEvalInterval = 100 * time.Millisecond

	// Minimum time between card glow updates.
	glowInterval = 50 * time.Millisecond

	// Rows between the viewport top and a jumped-to section heading.
	anchorMargin = 1

	skillBarWidth = 30
	wheelStep     = 3
	toastDuration = 2500 * time.Millisecond

	springFPS       = 60
	springFrequency = 7.0
	springDamping   = 1.0
)

type box struct {
	top    int
	left   int
	width  int
	height int
}

type (
	datasetLoadedMsg struct {
		dataset portfolio.Dataset
		err     error
	}
	springFrameMsg  struct{}
	toastExpiredMsg struct {
		seq int
	}
)

// Model is the whole page: one scrollable body under a sticky header, plus
// the drawer and modal overlays. All flags live here and are mutated only by
// their own handler path.
type Model struct {
	width  int
	height int

	settings *config.Settings
	themes   *theme.Manager
	styles   Styles
	keys     KeyMap
	help     help.Model
	spinner  spinner.Model

	dataSrc string
	dataset portfolio.Dataset

	// UI flags
	loading     bool
	coverHidden bool
	scrolled    bool
	drawerOpen  bool
	modalOpen   bool
	scrollLock  bool

	// Page layout (rebuilt by relayout)
	offset         int
	pageLines      []string
	sectionTops    []int
	sectionHeights []int
	cardBoxes      []box

	scrollGate throttle
	glowGate   throttle
	settleGate debouncer

	// Smooth scroll spring
	spring       harmonica.Spring
	springPos    float64
	springVel    float64
	springTarget int
	springActive bool

	// Reveal state
	revealed        [sectionCount]bool
	counters        []counter
	countersRunning bool
	skillBars       []progress.Model

	// Projects, focus and modal
	cursor         int
	lastFocused    int // focus memo; -1 when empty
	current        portfolio.Project
	closeFocused   bool
	prevScrollLock bool

	drawerOpenAttr bool // the trigger's expanded attribute
	drawerCursor   int

	glowCard int // -1 when the pointer is off every card
	glowPos  components.GlowPos

	toast    string
	toastSeq int
}

// NewModel builds the page model. Controller state initializes in a fixed
// order: theme first (it decides every style), then navigation, reveal and
// modal state. The dataset arrives asynchronously via Init.
func NewModel(settings *config.Settings, dataSrc string) Model {
	themes := theme.NewManager(settings)
	themes.Init()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		settings: settings,
		themes:   themes,
		styles:   NewStyles(theme.Active()),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		spinner:  sp,

		dataSrc: dataSrc,
		loading: true,

		scrollGate: newThrottle(scrollEvalInterval),
		glowGate:   newThrottle(glowInterval),
		settleGate: newDebouncer(300 * time.Millisecond),

		spring: harmonica.NewSpring(harmonica.FPS(springFPS), springFrequency, springDamping),

		lastFocused: -1,
		glowCard:    -1,
	}

	for range pageSkills {
		m.skillBars = append(m.skillBars, progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(skillBarWidth),
		))
	}
	for _, st := range pageStats {
		m.counters = append(m.counters, newCounter(st.Label))
	}

	// Initial scrolled state, before any scroll event arrives.
	m.syncScrolled()

	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadDatasetCmd(m.dataSrc))
}

func loadDatasetCmd(src string) tea.Cmd {
	return func() tea.Msg {
		ds, err := portfolio.Load(src)
		return datasetLoadedMsg{dataset: ds, err: err}
	}
}

// bodyHeight is the number of page rows visible between header and footer.
func (m *Model) bodyHeight() int {
	h := m.height - m.headerHeight() - footerHeight
	if h < 0 {
		return 0
	}
	return h
}

func (m *Model) headerHeight() int {
	if m.scrolled {
		return compactHeaderHeight
	}
	return fullHeaderHeight
}

func (m *Model) maxOffset() int {
	mo := len(m.pageLines) - m.bodyHeight()
	if mo < 0 {
		return 0
	}
	return mo
}

func (m *Model) clampOffset() {
	if m.offset < 0 {
		m.offset = 0
	}
	if mo := m.maxOffset(); m.offset > mo {
		m.offset = mo
	}
}

// syncScrolled recomputes the scrolled flag from the current offset. The flag
// is written only when the boundary is actually crossed. Returns true on a
// change.
func (m *Model) syncScrolled() bool {
	s := m.offset > scrolledThreshold
	if s == m.scrolled {
		return false
	}
	m.scrolled = s
	return true
}

// evalScroll is the throttled scroll listener: at most one scrolled-state
// evaluation per cooldown, leading edge first.
func (m *Model) evalScroll(now time.Time) {
	if m.scrollGate.allow(now) {
		m.syncScrolled()
	}
}

// hideCover reveals the page exactly once.
func (m *Model) hideCover() {
	if m.coverHidden {
		return
	}
	m.coverHidden = true
}

// currentSection is the section whose heading the viewport has reached.
func (m *Model) currentSection() int {
	cur := 0
	for s := 0; s < len(m.sectionTops); s++ {
		if m.sectionTops[s] <= m.offset+anchorMargin {
			cur = s
		}
	}
	return cur
}

// openDrawer and closeDrawer are explicit and idempotent: trigger attribute,
// panel visibility and the scroll lock move together.
func (m *Model) openDrawer() {
	if m.drawerOpen {
		return
	}
	m.drawerOpen = true
	m.drawerOpenAttr = true
	m.scrollLock = true
	m.drawerCursor = m.currentSection()
}

func (m *Model) closeDrawer() {
	if !m.drawerOpen {
		return
	}
	m.drawerOpen = false
	m.drawerOpenAttr = false
	m.scrollLock = false
}

func (m *Model) toggleDrawer() {
	if m.drawerOpen {
		m.closeDrawer()
	} else {
		m.openDrawer()
	}
}

// openModal looks the project up by id; unknown ids are a silent no-op. On
// success the focused card is remembered so close can restore it.
func (m *Model) openModal(id string) {
	if m.modalOpen {
		return
	}
	p, ok := m.dataset.ByID(id)
	if !ok {
		logging.Debugf("project %q not in dataset, ignoring", id)
		return
	}
	m.lastFocused = m.cursor
	m.current = p
	m.modalOpen = true
	m.closeFocused = true
	m.prevScrollLock = m.scrollLock
	m.scrollLock = true
}

func (m *Model) closeModal() {
	if !m.modalOpen {
		return
	}
	m.modalOpen = false
	m.scrollLock = m.prevScrollLock
	if m.lastFocused >= 0 {
		m.cursor = m.lastFocused
		m.lastFocused = -1
	}
}

// jumpToSection starts the smooth scroll toward a section heading, aligning
// it just below the sticky header. Unknown targets are ignored.
func (m *Model) jumpToSection(s int) {
	if s < 0 || s >= len(m.sectionTops) {
		return
	}
	target := m.sectionTops[s] - anchorMargin
	if target < 0 {
		target = 0
	}
	if mo := m.maxOffset(); target > mo {
		target = mo
	}
	m.springTarget = target
	m.springPos = float64(m.offset)
	m.springVel = 0
	m.springActive = true
	m.closeDrawer()
}

func springFrameCmd() tea.Cmd {
	return tea.Tick(time.Second/springFPS, func(time.Time) tea.Msg {
		return springFrameMsg{}
	})
}

func (m *Model) showToast(text string) tea.Cmd {
	m.toast = text
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}
