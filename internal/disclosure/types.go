package disclosure

import (
	"fmt"
	"strings"
	"time"
)

// State is the lifecycle position of a disclosure.
type State int

const (
	Closed State = iota
	Opening
	Open
	Closing
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Settled reports whether s is Open or Closed.
func (s State) Settled() bool {
	return s == Open || s == Closed
}

// Visible reports whether s is Opening or Open, i.e. logically shown.
func (s State) Visible() bool {
	return s == Opening || s == Open
}

// Trigger selects which input events may request a state change.
type Trigger int

const (
	Click Trigger = iota
	Hover
	Focus
	Manual
)

func (t Trigger) String() string {
	switch t {
	case Click:
		return "click"
	case Hover:
		return "hover"
	case Focus:
		return "focus"
	case Manual:
		return "manual"
	default:
		return fmt.Sprintf("trigger(%d)", int(t))
	}
}

// ParseTrigger converts a configuration value into a Trigger.
func ParseTrigger(value string) (Trigger, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "click":
		return Click, nil
	case "hover":
		return Hover, nil
	case "focus":
		return Focus, nil
	case "manual":
		return Manual, nil
	default:
		return Click, fmt.Errorf("unknown trigger %q", value)
	}
}

// Options configures a disclosure instance.
type Options struct {
	// ID identifies the instance. A random UUID is used when empty.
	ID      string
	Trigger Trigger
	// OpenDelay and CloseDelay debounce requests for Hover instances.
	// They are ignored for other triggers.
	OpenDelay  time.Duration
	CloseDelay time.Duration
}

// Change describes one state transition.
type Change struct {
	ID   string
	From State
	To   State
}
