// Package schedule provides the two suspension points of the overlay engine:
// deferred tasks that run on the next turn of the event loop, and timers.
//
// Every task can be cancelled. Engine code never sleeps or spawns goroutines;
// it asks a Scheduler to call it back on the UI loop.
package schedule

import "time"

// Cancel stops a scheduled task. Calling it after the task ran, or more than
// once, has no effect.
type Cancel func()

// Scheduler runs callbacks on the UI loop.
type Scheduler interface {
	// Defer runs fn on the next turn of the loop, after the current event
	// has been handled and rendered.
	Defer(fn func()) Cancel
	// After runs fn once d has elapsed.
	After(d time.Duration, fn func()) Cancel
}

// Nop is a Cancel that does nothing. It stands in for "no pending task".
func Nop() {}
