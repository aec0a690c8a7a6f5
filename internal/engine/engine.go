// Package engine ties the disclosure state machine, dismissal, transitions,
// placement and the scroll lock together for one surface.
//
// Adapters create disclosures through an Engine and bind trigger and boundary
// nodes; the host feeds global input (pointer, keys, focus, scroll, resize)
// into the same Engine. Everything runs on the UI loop.
package engine

import (
	"context"

	"github.com/alexisbeaulieu97/overlay/internal/disclosure"
	"github.com/alexisbeaulieu97/overlay/internal/dismiss"
	"github.com/alexisbeaulieu97/overlay/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/overlay/internal/placement"
	"github.com/alexisbeaulieu97/overlay/internal/ports"
	"github.com/alexisbeaulieu97/overlay/internal/schedule"
	"github.com/alexisbeaulieu97/overlay/internal/scrolllock"
	"github.com/alexisbeaulieu97/overlay/internal/surface"
	"github.com/alexisbeaulieu97/overlay/internal/transition"
)

// Option customises an Engine.
type Option func(*Engine)

// WithLogger routes engine diagnostics to logger.
func WithLogger(logger ports.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithContext sets the context passed to the logger, typically one carrying a
// session id.
func WithContext(ctx context.Context) Option {
	return func(e *Engine) {
		if ctx != nil {
			e.ctx = ctx
		}
	}
}

// WithScrollLock shares an existing scroll-lock manager.
func WithScrollLock(m *scrolllock.Manager) Option {
	return func(e *Engine) {
		if m != nil {
			e.locks = m
		}
	}
}

// WithEdgeMargin overrides placement.DefaultEdgeMargin.
func WithEdgeMargin(cells int) Option {
	return func(e *Engine) {
		if cells >= 0 {
			e.resolver.EdgeMargin = cells
		}
	}
}

// Engine owns the shared registries for every disclosure on one surface.
type Engine struct {
	ctx     context.Context
	logger  ports.Logger
	surface *surface.Surface
	sched   schedule.Scheduler

	dismiss     *dismiss.Controller
	transitions *transition.Scheduler
	tracker     *placement.Tracker
	locks       *scrolllock.Manager
	resolver    placement.Resolver

	disclosures []*Disclosure
	modals      []*Disclosure
	last        map[*surface.Node]placement.Placement
	focused     *surface.Node
}

// New creates an engine drawing on s and scheduling on sched.
func New(s *surface.Surface, sched schedule.Scheduler, opts ...Option) *Engine {
	e := &Engine{
		ctx:         context.Background(),
		logger:      logging.NewNoOpLogger(),
		surface:     s,
		sched:       sched,
		dismiss:     dismiss.New(),
		transitions: transition.New(sched),
		tracker:     placement.NewTracker(),
		locks:       scrolllock.New(),
		resolver:    placement.Resolver{EdgeMargin: placement.DefaultEdgeMargin},
		last:        make(map[*surface.Node]placement.Placement),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("component", "engine")
	s.OnResize(func(surface.Rect) { e.tracker.Reflow() })
	return e
}

// Surface returns the surface the engine works on.
func (e *Engine) Surface() *surface.Surface {
	return e.surface
}

// Scheduler returns the scheduler shared by every disclosure.
func (e *Engine) Scheduler() schedule.Scheduler {
	return e.sched
}

// Len counts live disclosures.
func (e *Engine) Len() int {
	return len(e.disclosures)
}

// PointerDown dispatches a press at (x, y). Outside-click dismissal runs
// first; then click-triggered disclosures whose trigger was hit toggle. It
// reports whether anything reacted.
func (e *Engine) PointerDown(x, y int) bool {
	target := e.surface.HitTest(x, y)
	closed := e.dismiss.PointerDown(target)
	if len(closed) > 0 {
		e.logger.Debug(e.ctx, "outside click dismissed", "target", target.ID(), "closed", closed)
	}

	if e.Blocked(target) {
		return len(closed) > 0
	}

	toggled := false
	for _, d := range e.snapshot() {
		if d.inst.Trigger() != disclosure.Click || d.trigger == nil || !d.trigger.Contains(target) {
			continue
		}
		d.Toggle()
		toggled = true
	}
	return toggled || len(closed) > 0
}

// Blocked reports whether an open modal hides target from pointer input:
// clicks behind the top-most modal are swallowed. Overlays opened from
// inside the modal count as part of it.
func (e *Engine) Blocked(target *surface.Node) bool {
	top := e.topModal()
	return top != nil && top.boundary != nil && !e.within(top, target, map[*Disclosure]bool{})
}

// within reports whether target is inside d's boundary or inside a present
// overlay whose trigger lies within d.
func (e *Engine) within(d *Disclosure, target *surface.Node, seen map[*Disclosure]bool) bool {
	if seen[d] || d.boundary == nil {
		return false
	}
	seen[d] = true
	if d.boundary.Contains(target) {
		return true
	}
	for _, child := range e.snapshot() {
		if child == d || !child.Present() || !d.boundary.Contains(child.trigger) {
			continue
		}
		if e.within(child, target, seen) {
			return true
		}
	}
	return false
}

// PointerMove drives hover-triggered disclosures: entering the trigger opens,
// leaving both trigger and boundary closes.
func (e *Engine) PointerMove(x, y int) {
	target := e.surface.HitTest(x, y)
	for _, d := range e.snapshot() {
		if d.inst.Trigger() != disclosure.Hover || d.trigger == nil {
			continue
		}
		switch {
		case d.trigger.Contains(target):
			d.RequestOpen()
		case d.boundary != nil && d.boundary.Contains(target):
			// keep open while the pointer rests on the floating content
		default:
			d.RequestClose()
		}
	}
}

// Focus moves keyboard focus to node. Focus-triggered disclosures whose
// trigger contains node open; the others close unless focus went into their
// boundary.
func (e *Engine) Focus(node *surface.Node) {
	e.focused = node
	for _, d := range e.snapshot() {
		if d.inst.Trigger() != disclosure.Focus || d.trigger == nil {
			continue
		}
		switch {
		case d.trigger.Contains(node):
			d.RequestOpen()
		case d.boundary != nil && d.boundary.Contains(node):
		default:
			d.RequestClose()
		}
	}
}

// Focused returns the node last passed to Focus.
func (e *Engine) Focused() *surface.Node {
	return e.focused
}

// Key handles a named key press and reports whether it was consumed. Only
// Escape is meaningful to the engine.
func (e *Engine) Key(name string) bool {
	if name != "esc" && name != "escape" {
		return false
	}
	id, ok := e.dismiss.Escape()
	if ok {
		e.logger.Debug(e.ctx, "escape dismissed", "instance_id", id)
	}
	return ok
}

// Scroll re-resolves every open floating element after the background moved.
func (e *Engine) Scroll() {
	e.tracker.Reflow()
}

// Resize updates the viewport; tracked placements follow.
func (e *Engine) Resize(width, height int) {
	e.surface.SetViewport(width, height)
}

// AcquireScrollLock takes a scroll-lock token outside any disclosure.
func (e *Engine) AcquireScrollLock() scrolllock.Release {
	return e.locks.Acquire()
}

// ScrollLocked reports whether background scrolling is disabled.
func (e *Engine) ScrollLocked() bool {
	return e.locks.Locked()
}

// ScrollLock exposes the shared manager, e.g. to observe lock edges.
func (e *Engine) ScrollLock() *scrolllock.Manager {
	return e.locks
}

// SubscribePhases registers fn for every transition phase flip.
func (e *Engine) SubscribePhases(fn func(transition.PhaseChange)) func() {
	return e.transitions.Subscribe(fn)
}

func (e *Engine) snapshot() []*Disclosure {
	return append([]*Disclosure(nil), e.disclosures...)
}

func (e *Engine) forget(d *Disclosure) {
	for i, v := range e.disclosures {
		if v == d {
			e.disclosures = append(e.disclosures[:i], e.disclosures[i+1:]...)
			return
		}
	}
}

// topModal returns the most recently opened modal disclosure still holding
// the scroll lock.
func (e *Engine) topModal() *Disclosure {
	if len(e.modals) == 0 {
		return nil
	}
	return e.modals[len(e.modals)-1]
}

func (e *Engine) dropModal(d *Disclosure) {
	for i, m := range e.modals {
		if m == d {
			e.modals = append(e.modals[:i], e.modals[i+1:]...)
			return
		}
	}
}
