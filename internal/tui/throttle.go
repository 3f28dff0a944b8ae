package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// throttle is a leading-edge rate limiter: the first call passes immediately,
// further calls are dropped until the cooldown elapses.
type throttle struct {
	every time.Duration
	last  time.Time
}

func newThrottle(every time.Duration) throttle {
	return throttle{every: every}
}

func (t *throttle) allow(now time.Time) bool {
	if t.last.IsZero() || now.Sub(t.last) >= t.every {
		t.last = now
		return true
	}
	return false
}

// debouncer is the trailing-edge counterpart: each trigger supersedes the
// previous one, and only the last fired message is still current. The page
// flow has no trailing-edge consumer today; it sits next to the throttle for
// the handlers that want "settle" semantics.
type debouncer struct {
	every time.Duration
	seq   int
}

type debounceFiredMsg struct {
	seq int
}

func newDebouncer(every time.Duration) debouncer {
	return debouncer{every: every}
}

func (d *debouncer) trigger() tea.Cmd {
	d.seq++
	seq := d.seq
	return tea.Tick(d.every, func(time.Time) tea.Msg {
		return debounceFiredMsg{seq: seq}
	})
}

// current reports whether a fired message is the latest trigger.
func (d *debouncer) current(msg debounceFiredMsg) bool {
	return msg.seq == d.seq
}
