package engine

import (
	"time"

	"github.com/alexisbeaulieu97/overlay/internal/disclosure"
	"github.com/alexisbeaulieu97/overlay/internal/dismiss"
	"github.com/alexisbeaulieu97/overlay/internal/ports"
	"github.com/alexisbeaulieu97/overlay/internal/scrolllock"
	"github.com/alexisbeaulieu97/overlay/internal/surface"
	"github.com/alexisbeaulieu97/overlay/internal/transition"
)

// Options configures a disclosure created through the engine.
type Options struct {
	// ID is optional; a random id is assigned when empty.
	ID                    string
	Trigger               disclosure.Trigger
	OpenDelay             time.Duration
	CloseDelay            time.Duration
	DismissOnOutsideClick bool
	DismissOnEscape       bool
	// Modal disclosures hold a scroll-lock token from Opening until Closed.
	Modal             bool
	AnimationDuration time.Duration
}

// Disclosure is a state machine plus its engine bookkeeping.
type Disclosure struct {
	engine *Engine
	inst   *disclosure.Instance
	opts   Options
	logger ports.Logger

	trigger  *surface.Node
	boundary *surface.Node

	reposition func()
	release    scrolllock.Release
	phaseSubs  []func()
}

// CreateDisclosure registers a new closed disclosure.
func (e *Engine) CreateDisclosure(opts Options) *Disclosure {
	inst := disclosure.New(e.sched, disclosure.Options{
		ID:         opts.ID,
		Trigger:    opts.Trigger,
		OpenDelay:  opts.OpenDelay,
		CloseDelay: opts.CloseDelay,
	})
	d := &Disclosure{
		engine: e,
		inst:   inst,
		opts:   opts,
		logger: e.logger.With("instance_id", inst.ID()),
	}
	// subscribed first so engine bookkeeping precedes adapter observers
	inst.Subscribe(d.handle)
	e.disclosures = append(e.disclosures, d)
	return d
}

func (d *Disclosure) ID() string { return d.inst.ID() }

func (d *Disclosure) State() disclosure.State { return d.inst.State() }

// Phase returns the transition phase of the floating content.
func (d *Disclosure) Phase() transition.Phase { return d.engine.transitions.Phase(d.ID()) }

// Present reports whether the floating content must be rendered.
func (d *Disclosure) Present() bool { return d.engine.transitions.Present(d.ID()) }

// Options returns the options the disclosure was created with.
func (d *Disclosure) Options() Options { return d.opts }

func (d *Disclosure) RequestOpen() { d.inst.RequestOpen() }

func (d *Disclosure) RequestClose() { d.inst.RequestClose() }

func (d *Disclosure) Toggle() { d.inst.Toggle() }

// Subscribe registers fn for state changes; it runs after the engine's own
// bookkeeping for the same change.
func (d *Disclosure) Subscribe(fn func(disclosure.Change)) func() {
	return d.inst.Subscribe(fn)
}

// SubscribePhase registers fn for this disclosure's transition phase flips.
func (d *Disclosure) SubscribePhase(fn func(transition.PhaseChange)) func() {
	id := d.ID()
	unsub := d.engine.transitions.Subscribe(func(c transition.PhaseChange) {
		if c.ID == id {
			fn(c)
		}
	})
	d.phaseSubs = append(d.phaseSubs, unsub)
	return unsub
}

// Bind sets the trigger node (what the user interacts with) and the boundary
// node (the floating content). Either may be nil. A nil boundary when the
// disclosure opens leaves it non-dismissable for that open.
func (d *Disclosure) Bind(trigger, boundary *surface.Node) {
	d.trigger = trigger
	d.boundary = boundary
}

// Trigger returns the bound trigger node.
func (d *Disclosure) Trigger() *surface.Node { return d.trigger }

// Boundary returns the bound boundary node.
func (d *Disclosure) Boundary() *surface.Node { return d.boundary }

// OnReposition sets the function that positions the floating content. It runs
// on Opening and again on every resize or scroll while Open.
func (d *Disclosure) OnReposition(fn func()) {
	d.reposition = fn
}

// Destroyed reports whether Destroy has been called.
func (d *Disclosure) Destroyed() bool { return d.inst.Destroyed() }

// Destroy cancels pending work and removes the disclosure from every shared
// registry. Further requests are ignored.
func (d *Disclosure) Destroy() {
	if d.inst.Destroyed() {
		return
	}
	id := d.ID()
	d.inst.Destroy()
	d.engine.dismiss.Unregister(id)
	d.engine.tracker.Untrack(id)
	d.engine.transitions.Forget(id)
	d.releaseLock()
	for _, unsub := range d.phaseSubs {
		unsub()
	}
	d.phaseSubs = nil
	if d.boundary != nil {
		delete(d.engine.last, d.boundary)
	}
	d.engine.forget(d)
	d.logger.Debug(d.engine.ctx, "disclosure destroyed")
}

func (d *Disclosure) handle(c disclosure.Change) {
	e := d.engine
	d.logger.Debug(e.ctx, "disclosure state", "from", c.From.String(), "to", c.To.String())

	switch c.To {
	case disclosure.Opening:
		e.transitions.Begin(c.ID, d.opts.AnimationDuration)
		if d.opts.Modal && d.release == nil {
			d.release = e.locks.Acquire()
			e.modals = append(e.modals, d)
		}
		d.runReposition()
	case disclosure.Open:
		d.register()
		if d.reposition != nil {
			e.tracker.Track(c.ID, d.runReposition)
		}
	case disclosure.Closing:
		if c.From == disclosure.Open {
			e.dismiss.Unregister(c.ID)
			e.tracker.Untrack(c.ID)
		}
		e.transitions.End(c.ID, d.opts.AnimationDuration)
	case disclosure.Closed:
		d.releaseLock()
	}
}

func (d *Disclosure) register() {
	opts := dismiss.Options{OutsideClick: d.opts.DismissOnOutsideClick, Escape: d.opts.DismissOnEscape}
	if !opts.Any() {
		return
	}
	if !d.engine.dismiss.Register(d.inst, d.boundary, d.trigger, opts) {
		d.logger.Debug(d.engine.ctx, "dismissal disabled for this open", "reason", "no boundary")
	}
}

func (d *Disclosure) runReposition() {
	if d.reposition != nil {
		d.reposition()
	}
}

func (d *Disclosure) releaseLock() {
	if d.release == nil {
		return
	}
	d.release()
	d.release = nil
	d.engine.dropModal(d)
}
