// Package disclosure implements the open/closed state machine shared by every
// panel-like widget.
//
// An Instance moves Closed → Opening → Open → Closing → Closed. The moves out
// of Opening and Closing are deferred by one turn of the event loop, so every
// observer sees the transitional state rendered at least once before the
// settled one. Hover instances additionally debounce their requests.
package disclosure

import (
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/overlay/internal/schedule"
)

type subscriber struct {
	fn     func(Change)
	active bool
}

// Instance is one disclosure. It is not safe for concurrent use; all calls
// happen on the UI loop.
type Instance struct {
	id    string
	opts  Options
	sched schedule.Scheduler
	state State

	settle     schedule.Cancel
	hoverOpen  schedule.Cancel
	hoverClose schedule.Cancel

	subscribers []*subscriber
	destroyed   bool
}

// New creates a closed instance.
func New(sched schedule.Scheduler, opts Options) *Instance {
	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &Instance{id: id, opts: opts, sched: sched, state: Closed}
}

// ID returns the instance identifier.
func (d *Instance) ID() string { return d.id }

// State returns the current state.
func (d *Instance) State() State { return d.state }

// Trigger returns the configured trigger.
func (d *Instance) Trigger() Trigger { return d.opts.Trigger }

// Destroyed reports whether Destroy has been called.
func (d *Instance) Destroyed() bool { return d.destroyed }

// Pending reports whether a deferred move or a hover delay is outstanding.
func (d *Instance) Pending() bool {
	return d.settle != nil || d.hoverOpen != nil || d.hoverClose != nil
}

// RequestOpen asks the instance to open. It is a no-op when already Open or
// Opening. From Closing the pending close is cancelled and the instance
// reverses to Opening.
func (d *Instance) RequestOpen() {
	if d.destroyed {
		return
	}
	if d.opts.Trigger == Hover {
		d.cancel(&d.hoverClose)
		if d.state.Visible() || d.hoverOpen != nil {
			return
		}
		if d.state == Closed && d.opts.OpenDelay > 0 {
			d.hoverOpen = d.sched.After(d.opts.OpenDelay, func() {
				d.hoverOpen = nil
				d.open()
			})
			return
		}
	}
	d.open()
}

// RequestClose asks the instance to close. It is a no-op when already Closed
// or Closing. For Hover instances a close that arrives while the open delay
// is still running cancels the open outright.
func (d *Instance) RequestClose() {
	if d.destroyed {
		return
	}
	if d.opts.Trigger == Hover {
		if d.hoverOpen != nil {
			d.cancel(&d.hoverOpen)
			return
		}
		if !d.state.Visible() || d.hoverClose != nil {
			return
		}
		if d.opts.CloseDelay > 0 {
			d.hoverClose = d.sched.After(d.opts.CloseDelay, func() {
				d.hoverClose = nil
				d.close()
			})
			return
		}
	}
	d.close()
}

// Toggle opens a Closed or Closing instance and closes an Open or Opening one.
func (d *Instance) Toggle() {
	if d.state.Visible() {
		d.RequestClose()
		return
	}
	d.RequestOpen()
}

// Subscribe registers fn for state changes. Callbacks run synchronously in
// subscription order after the state has been updated. The returned function
// removes the subscription and may be called from inside a callback.
func (d *Instance) Subscribe(fn func(Change)) func() {
	if d.destroyed || fn == nil {
		return func() {}
	}
	sub := &subscriber{fn: fn, active: true}
	d.subscribers = append(d.subscribers, sub)
	return func() {
		sub.active = false
		for i, s := range d.subscribers {
			if s == sub {
				d.subscribers = append(d.subscribers[:i], d.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Destroy cancels every pending task and drops all subscribers. Later
// requests are ignored.
func (d *Instance) Destroy() {
	if d.destroyed {
		return
	}
	d.cancel(&d.settle)
	d.cancel(&d.hoverOpen)
	d.cancel(&d.hoverClose)
	for _, s := range d.subscribers {
		s.active = false
	}
	d.subscribers = nil
	d.destroyed = true
}

func (d *Instance) open() {
	if d.state.Visible() {
		return
	}
	d.begin(Opening, Open)
}

func (d *Instance) close() {
	if !d.state.Visible() {
		return
	}
	d.begin(Closing, Closed)
}

// begin enters a transitional state and defers the move to the settled one.
// The deferred move is armed before observers are notified so a request made
// from inside a callback cancels the right task.
func (d *Instance) begin(transitional, settled State) {
	d.cancel(&d.settle)
	from := d.state
	d.state = transitional
	d.settle = d.sched.Defer(func() {
		d.settle = nil
		if d.state != transitional {
			return
		}
		d.state = settled
		d.notify(transitional, settled)
	})
	d.notify(from, transitional)
}

func (d *Instance) cancel(slot *schedule.Cancel) {
	if *slot != nil {
		(*slot)()
		*slot = nil
	}
}

func (d *Instance) notify(from, to State) {
	change := Change{ID: d.id, From: from, To: to}
	subs := make([]*subscriber, len(d.subscribers))
	copy(subs, d.subscribers)
	for _, s := range subs {
		if s.active {
			s.fn(change)
		}
	}
}
