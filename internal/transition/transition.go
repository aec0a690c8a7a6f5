// Package transition times enter and exit animations independently of the
// logical open state.
//
// A disclosure may be logically closed while its content is still animating
// out. The Scheduler tracks one Ticket per instance and keeps the content
// present from Entering through Exiting; only Exited means the content may be
// unmounted.
package transition

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/overlay/internal/schedule"
)

// Phase is the animation phase of a ticket.
type Phase int

const (
	// Exited is the zero value: nothing is rendered.
	Exited Phase = iota
	Entering
	Entered
	Exiting
)

func (p Phase) String() string {
	switch p {
	case Exited:
		return "exited"
	case Entering:
		return "entering"
	case Entered:
		return "entered"
	case Exiting:
		return "exiting"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Present reports whether content must be in the render tree during p.
func (p Phase) Present() bool {
	return p != Exited
}

// Ticket is one open→close round for a single instance.
type Ticket struct {
	ID       string
	Phase    Phase
	Duration time.Duration
	cancel   schedule.Cancel
}

// PhaseChange describes one phase flip.
type PhaseChange struct {
	ID   string
	From Phase
	To   Phase
}

// Scheduler owns the tickets of every animated instance.
type Scheduler struct {
	sched   schedule.Scheduler
	tickets map[string]*Ticket
	subs    map[int]func(PhaseChange)
	order   []int
	nextSub int
}

// New creates a transition scheduler on top of sched.
func New(sched schedule.Scheduler) *Scheduler {
	return &Scheduler{
		sched:   sched,
		tickets: make(map[string]*Ticket),
		subs:    make(map[int]func(PhaseChange)),
	}
}

// Begin starts the enter animation. From Exiting the pending removal is
// cancelled and the phase jumps straight back to Entering; the content never
// leaves the render tree. Begin is a no-op while Entering or Entered.
func (s *Scheduler) Begin(id string, duration time.Duration) {
	t := s.ticket(id)
	if t.Phase == Entering || t.Phase == Entered {
		return
	}
	s.arm(t, Entering, Entered, duration)
}

// End starts the exit animation. The content stays present until duration
// elapses and the phase becomes Exited. End is a no-op when nothing is shown
// or already exiting.
func (s *Scheduler) End(id string, duration time.Duration) {
	t, ok := s.tickets[id]
	if !ok || t.Phase == Exiting || t.Phase == Exited {
		return
	}
	s.arm(t, Exiting, Exited, duration)
}

// Phase returns the phase for id; unknown ids are Exited.
func (s *Scheduler) Phase(id string) Phase {
	if t, ok := s.tickets[id]; ok {
		return t.Phase
	}
	return Exited
}

// Present reports whether id's content must be rendered.
func (s *Scheduler) Present(id string) bool {
	return s.Phase(id).Present()
}

// Ticket returns a copy of the live ticket for id.
func (s *Scheduler) Ticket(id string) (Ticket, bool) {
	t, ok := s.tickets[id]
	if !ok {
		return Ticket{}, false
	}
	return Ticket{ID: t.ID, Phase: t.Phase, Duration: t.Duration}, true
}

// Len counts live tickets.
func (s *Scheduler) Len() int {
	return len(s.tickets)
}

// Forget cancels any pending flip for id and drops its ticket without
// notifying subscribers. Used when an instance is destroyed.
func (s *Scheduler) Forget(id string) {
	t, ok := s.tickets[id]
	if !ok {
		return
	}
	if t.cancel != nil {
		t.cancel()
	}
	delete(s.tickets, id)
}

// Subscribe registers fn for every phase flip. The returned function removes
// the subscription.
func (s *Scheduler) Subscribe(fn func(PhaseChange)) func() {
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.order = append(s.order, id)
	return func() {
		delete(s.subs, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				return
			}
		}
	}
}

func (s *Scheduler) ticket(id string) *Ticket {
	t, ok := s.tickets[id]
	if !ok {
		t = &Ticket{ID: id, Phase: Exited}
		s.tickets[id] = t
	}
	return t
}

// arm moves t into the running phase and schedules the flip to the resting
// phase. A zero duration still flips through the scheduler so the running
// phase is always observable.
func (s *Scheduler) arm(t *Ticket, running, resting Phase, duration time.Duration) {
	if t.cancel != nil {
		t.cancel()
	}
	t.Duration = duration
	t.cancel = s.sched.After(duration, func() {
		t.cancel = nil
		if t.Phase != running {
			return
		}
		if resting == Exited {
			delete(s.tickets, t.ID)
		}
		s.set(t, resting)
	})
	s.set(t, running)
}

func (s *Scheduler) set(t *Ticket, to Phase) {
	from := t.Phase
	t.Phase = to
	change := PhaseChange{ID: t.ID, From: from, To: to}
	order := append([]int(nil), s.order...)
	for _, id := range order {
		if fn, ok := s.subs[id]; ok {
			fn(change)
		}
	}
}
