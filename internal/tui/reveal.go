package tui

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// A section reveals once this fraction of its rows is inside the viewport.
	revealFraction = 0.10

	counterWindow = 2 * time.Second
	frameInterval = time.Second / 30
)

var leadingIntRE = regexp.MustCompile(`^(\d+)`)

// counter animates one stat figure from 0 to the integer parsed out of its
// label, keeping whatever trails the number verbatim. Labels without a
// leading integer never animate and render unchanged.
type counter struct {
	raw     string
	target  int
	suffix  string
	numeric bool

	started bool
	start   time.Time
	value   int
	done    bool
}

func newCounter(label string) counter {
	m := leadingIntRE.FindString(label)
	if m == "" {
		return counter{raw: label, done: true}
	}
	target, _ := strconv.Atoi(m)
	return counter{
		raw:     label,
		target:  target,
		suffix:  label[len(m):],
		numeric: true,
	}
}

func (c *counter) begin(now time.Time) {
	if !c.numeric || c.started {
		return
	}
	c.started = true
	c.start = now
	c.value = 0
	c.done = false
}

// step advances the animation by wall-clock time: value = floor(frac*target)
// with frac clamped to [0,1]. Returns true while more frames are needed.
func (c *counter) step(now time.Time) bool {
	if !c.started || c.done {
		return false
	}
	frac := float64(now.Sub(c.start)) / float64(counterWindow)
	if frac >= 1 {
		frac = 1
		c.done = true
	}
	if frac < 0 {
		frac = 0
	}
	c.value = int(frac * float64(c.target))
	return !c.done
}

func (c counter) text() string {
	if !c.numeric || !c.started {
		return c.raw
	}
	return fmt.Sprintf("%d%s", c.value, c.suffix)
}

type counterFrameMsg struct {
	at time.Time
}

func counterFrameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return counterFrameMsg{at: t}
	})
}

// checkReveals fires the one-shot reveal for every pending section that has
// entered the viewport. A revealed section is never considered again.
func (m *Model) checkReveals() tea.Cmd {
	if m.loading || m.height == 0 {
		return nil
	}
	var cmds []tea.Cmd
	for s := section(0); s < sectionCount; s++ {
		if m.revealed[s] {
			continue
		}
		if m.sectionVisibleFraction(s) >= revealFraction {
			cmds = append(cmds, m.reveal(s))
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) reveal(s section) tea.Cmd {
	m.revealed[s] = true

	switch s {
	case sectionSkills:
		// Each bar fills to its pre-encoded target: a direct assignment, the
		// presentation layer does the easing.
		var cmds []tea.Cmd
		for i := range m.skillBars {
			cmds = append(cmds, m.skillBars[i].SetPercent(pageSkills[i].Target))
		}
		return tea.Batch(cmds...)
	case sectionStats:
		now := time.Now()
		for i := range m.counters {
			m.counters[i].begin(now)
		}
		if !m.countersRunning {
			m.countersRunning = true
			return counterFrameCmd()
		}
	}
	return nil
}

// stepCounters advances every running counter one frame and reschedules while
// any of them still has distance to cover.
func (m *Model) stepCounters(now time.Time) tea.Cmd {
	anyActive := false
	for i := range m.counters {
		if m.counters[i].step(now) {
			anyActive = true
		}
	}
	m.relayout()
	if anyActive {
		return counterFrameCmd()
	}
	m.countersRunning = false
	return nil
}

// sectionVisibleFraction returns how much of section s overlaps the viewport.
func (m *Model) sectionVisibleFraction(s section) float64 {
	if int(s) >= len(m.sectionTops) || m.sectionHeights[s] == 0 {
		return 0
	}
	top := m.sectionTops[s]
	bottom := top + m.sectionHeights[s]
	viewTop := m.offset
	viewBottom := m.offset + m.bodyHeight()

	overlapTop := max(top, viewTop)
	overlapBottom := min(bottom, viewBottom)
	if overlapBottom <= overlapTop {
		return 0
	}
	return float64(overlapBottom-overlapTop) / float64(m.sectionHeights[s])
}
