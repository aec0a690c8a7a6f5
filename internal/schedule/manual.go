package schedule

import (
	"sort"
	"time"
)

type task struct {
	seq       uint64
	due       time.Duration
	fn        func()
	cancelled bool
}

// Manual is a Scheduler driven by a virtual clock. Nothing runs until Flush
// or Advance is called, which makes timing fully deterministic in tests and
// simulations.
type Manual struct {
	epoch    time.Time
	elapsed  time.Duration
	seq      uint64
	deferred []*task
	timers   []*task
}

// NewManual creates a virtual clock starting at the Unix epoch.
func NewManual() *Manual {
	return &Manual{epoch: time.Unix(0, 0).UTC()}
}

// Defer implements Scheduler.
func (m *Manual) Defer(fn func()) Cancel {
	t := m.newTask(m.elapsed, fn)
	m.deferred = append(m.deferred, t)
	return t.cancel
}

// After implements Scheduler.
func (m *Manual) After(d time.Duration, fn func()) Cancel {
	if d < 0 {
		d = 0
	}
	t := m.newTask(m.elapsed+d, fn)
	m.timers = append(m.timers, t)
	return t.cancel
}

func (m *Manual) newTask(due time.Duration, fn func()) *task {
	m.seq++
	return &task{seq: m.seq, due: due, fn: fn}
}

func (t *task) cancel() {
	t.cancelled = true
}

// Now returns the virtual wall-clock time.
func (m *Manual) Now() time.Time {
	return m.epoch.Add(m.elapsed)
}

// Elapsed returns how far the clock has advanced since creation.
func (m *Manual) Elapsed() time.Duration {
	return m.elapsed
}

// Flush runs deferred tasks until none remain, including tasks deferred by
// the tasks it runs. Timers are not touched.
func (m *Manual) Flush() {
	for len(m.deferred) > 0 {
		t := m.deferred[0]
		m.deferred = m.deferred[1:]
		if !t.cancelled {
			t.cancelled = true
			t.fn()
		}
	}
}

// Advance moves the clock forward by d, running every deferred task and every
// timer that falls due on the way, in due order. Timers scheduled while
// advancing run too if they fall inside the window.
func (m *Manual) Advance(d time.Duration) {
	target := m.elapsed + d
	m.Flush()
	for {
		t := m.nextDue(target)
		if t == nil {
			break
		}
		m.elapsed = t.due
		t.cancelled = true
		t.fn()
		m.Flush()
	}
	m.elapsed = target
}

// Settle advances the clock until no tasks remain, up to limit. It returns
// false if tasks were still pending when the limit was reached.
func (m *Manual) Settle(limit time.Duration) bool {
	deadline := m.elapsed + limit
	for m.Pending() > 0 {
		m.Flush()
		t := m.nextDue(deadline)
		if t == nil {
			break
		}
		m.elapsed = t.due
		t.cancelled = true
		t.fn()
	}
	m.Flush()
	return m.Pending() == 0
}

func (m *Manual) nextDue(limit time.Duration) *task {
	m.compact()
	if len(m.timers) == 0 {
		return nil
	}
	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].due != m.timers[j].due {
			return m.timers[i].due < m.timers[j].due
		}
		return m.timers[i].seq < m.timers[j].seq
	})
	next := m.timers[0]
	if next.due > limit {
		return nil
	}
	m.timers = m.timers[1:]
	return next
}

func (m *Manual) compact() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	m.timers = live
}

// Pending counts tasks that have neither run nor been cancelled.
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.deferred {
		if !t.cancelled {
			n++
		}
	}
	for _, t := range m.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

var _ Scheduler = (*Manual)(nil)
