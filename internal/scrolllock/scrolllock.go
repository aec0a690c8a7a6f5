// Package scrolllock keeps background scrolling disabled while any modal
// overlay is open.
//
// The lock is reference counted: a dialog opened from inside a drawer takes a
// second token, and closing it leaves the drawer's token in place. Lock state
// is derived from the count and cannot be set directly.
package scrolllock

// Release gives a token back. Calling it more than once has no effect.
type Release func()

// Manager is the shared reference count. It is not safe for concurrent use;
// acquire and release on the UI loop.
type Manager struct {
	count     int
	listeners []func(bool)
}

// New creates an unlocked manager.
func New() *Manager {
	return &Manager{}
}

// Acquire takes a token. The first outstanding token locks scrolling.
func (m *Manager) Acquire() Release {
	m.count++
	if m.count == 1 {
		m.emit(true)
	}
	released := false
	return func() {
		if released {
			return
		}
		released = true
		m.release()
	}
}

func (m *Manager) release() {
	if m.count == 0 {
		return
	}
	m.count--
	if m.count == 0 {
		m.emit(false)
	}
}

// Locked reports whether background scrolling is disabled.
func (m *Manager) Locked() bool {
	return m.count > 0
}

// Count returns the number of outstanding tokens.
func (m *Manager) Count() int {
	return m.count
}

// OnChange registers fn to run when the lock engages (true) or lifts
// (false). It is not called for acquisitions that leave the state unchanged.
func (m *Manager) OnChange(fn func(locked bool)) {
	if fn != nil {
		m.listeners = append(m.listeners, fn)
	}
}

func (m *Manager) emit(locked bool) {
	for _, fn := range m.listeners {
		fn(locked)
	}
}
