// Package timer is a cancellable one-shot timer service driven by the
// simulation clock rather than wall time.
package timer

import (
	"sort"
)

// Handle identifies a scheduled callback. The zero Handle never refers to a
// timer, so an unset handle can be cleared safely.
type Handle uint64

// epsilon absorbs float drift from accumulating fixed ticks, so a timer due at
// exactly N ticks fires on tick N.
const epsilon = 1e-9

type pending struct {
	handle Handle
	due    float64
	fn     func()
}

// Manager owns all pending timers of one world.
type Manager struct {
	now     float64
	last    Handle
	pending map[Handle]*pending
}

func NewManager() *Manager {
	return &Manager{pending: make(map[Handle]*pending)}
}

// Now returns the simulated seconds elapsed since the manager was created.
func (m *Manager) Now() float64 {
	return m.now
}

// Set schedules fn to run once after delay seconds. Negative delays are
// treated as zero; the callback still waits for the next Advance.
func (m *Manager) Set(delay float64, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	m.last++
	h := m.last
	m.pending[h] = &pending{handle: h, due: m.now + delay, fn: fn}
	return h
}

// Clear cancels the timer behind h and zeroes h. Clearing a fired, cleared
// or zero handle does nothing.
func (m *Manager) Clear(h *Handle) {
	if h == nil {
		return
	}
	delete(m.pending, *h)
	*h = 0
}

// IsActive reports whether h is still waiting to fire.
func (m *Manager) IsActive(h Handle) bool {
	_, ok := m.pending[h]
	return ok
}

// Remaining returns the seconds left before h fires.
func (m *Manager) Remaining(h Handle) (float64, bool) {
	p, ok := m.pending[h]
	if !ok {
		return 0, false
	}
	return max(p.due-m.now, 0), true
}

// Len returns the number of pending timers.
func (m *Manager) Len() int {
	return len(m.pending)
}

// Advance moves the clock forward by dt seconds and runs every timer that
// became due, earliest first. Callbacks may set or clear other timers; a
// timer cleared by an earlier callback in the same Advance does not run.
func (m *Manager) Advance(dt float64) int {
	if dt > 0 {
		m.now += dt
	}

	fired := 0
	for {
		due := m.collectDue()
		if len(due) == 0 {
			return fired
		}
		for _, p := range due {
			if _, ok := m.pending[p.handle]; !ok {
				continue
			}
			delete(m.pending, p.handle)
			fired++
			if p.fn != nil {
				p.fn()
			}
		}
	}
}

func (m *Manager) collectDue() []*pending {
	var due []*pending
	for _, p := range m.pending {
		if p.due <= m.now+epsilon {
			due = append(due, p)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].handle < due[j].handle
	})
	return due
}
