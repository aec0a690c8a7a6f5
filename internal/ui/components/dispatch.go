package components

import (
	"github.com/alexisbeaulieu97/overlay/internal/disclosure"
	"github.com/alexisbeaulieu97/overlay/internal/engine"
)

// Press delivers a primary click at (x, y): engine dismissal and click
// triggers first, then widget content, then manual triggers. Nothing behind
// an open modal sees the click. It reports whether a widget consumed it.
func (s *Set) Press(eng *engine.Engine, x, y int) bool {
	target := eng.Surface().HitTest(x, y)
	eng.PointerDown(x, y)
	if eng.Blocked(target) {
		return false
	}
	eng.Focus(target)

	for _, w := range s.All {
		if c, ok := w.(Clicker); ok && c.Click(target) {
			return true
		}
	}
	for _, w := range s.All {
		if w.Disclosure().Options().Trigger == disclosure.Manual && w.TriggerNode().Contains(target) {
			w.Activate()
			return true
		}
	}
	return false
}

// HandleKey offers a key to the widgets, newest first, and reports whether
// one consumed it.
func (s *Set) HandleKey(name string) bool {
	for i := len(s.All) - 1; i >= 0; i-- {
		if h, ok := s.All[i].(KeyHandler); ok && h.HandleKey(name) {
			return true
		}
	}
	return false
}
