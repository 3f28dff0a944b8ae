package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestThrottle_LeadingEdge(t *testing.T) {
	tr := newThrottle(100 * time.Millisecond)
	now := time.Now()

	// First trigger passes immediately.
	assert.True(t, tr.allow(now))

	// Inside the cooldown: dropped.
	assert.False(t, tr.allow(now.Add(50*time.Millisecond)))
	assert.False(t, tr.allow(now.Add(99*time.Millisecond)))

	// Cooldown elapsed: passes again.
	assert.True(t, tr.allow(now.Add(100*time.Millisecond)))
	assert.False(t, tr.allow(now.Add(150*time.Millisecond)))
}

func TestDebouncer_OnlyLastTriggerIsCurrent(t *testing.T) {
	d := newDebouncer(100 * time.Millisecond)

	d.trigger()
	first := debounceFiredMsg{seq: 1}
	d.trigger()
	second := debounceFiredMsg{seq: 2}

	assert.False(t, d.current(first), "superseded trigger should be stale")
	assert.True(t, d.current(second))
}
