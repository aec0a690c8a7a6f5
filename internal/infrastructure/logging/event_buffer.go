package logging

import (
	"context"
	"fmt"
	"strings"
	"sync"

	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/overlay/internal/ports"
)

const defaultBufferLimit = 256

// Entry is one buffered log call.
type Entry struct {
	ctx     context.Context
	Level   cblog.Level
	Message string
	Fields  []interface{}
}

// String renders the entry on one line, e.g. "DEBU opened instance_id=abc".
func (e Entry) String() string {
	level := strings.ToUpper(e.Level.String())
	if len(level) > 4 {
		level = level[:4]
	}
	var b strings.Builder
	b.WriteString(level)
	b.WriteByte(' ')
	b.WriteString(e.Message)
	for i := 0; i+1 < len(e.Fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", e.Fields[i], e.Fields[i+1])
	}
	return b.String()
}

// EventBuffer is a bounded ring of log entries. The gallery renders its tail
// in the event pane; Flush can replay it into a real logger on exit.
type EventBuffer struct {
	mu     sync.Mutex
	limit  int
	events []Entry
}

// NewEventBuffer creates a buffer holding at most limit entries (256 when
// limit is not positive).
func NewEventBuffer(limit int) *EventBuffer {
	if limit <= 0 {
		limit = defaultBufferLimit
	}
	return &EventBuffer{
		limit:  limit,
		events: make([]Entry, 0, limit),
	}
}

func (b *EventBuffer) add(entry Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.events) == b.limit {
		copy(b.events, b.events[1:])
		b.events[len(b.events)-1] = entry
		return
	}
	b.events = append(b.events, entry)
}

// Len returns the number of buffered entries.
func (b *EventBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}

// Tail returns up to n of the most recent entries, oldest first.
func (b *EventBuffer) Tail(n int) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n <= 0 || n > len(b.events) {
		n = len(b.events)
	}
	out := make([]Entry, n)
	copy(out, b.events[len(b.events)-n:])
	return out
}

// Lines renders Tail(n) as strings.
func (b *EventBuffer) Lines(n int) []string {
	tail := b.Tail(n)
	lines := make([]string, len(tail))
	for i, e := range tail {
		lines[i] = e.String()
	}
	return lines
}

// Flush replays and clears buffered entries through delegate, preserving
// order.
func (b *EventBuffer) Flush(delegate ports.Logger) {
	if delegate == nil {
		return
	}
	b.mu.Lock()
	events := make([]Entry, len(b.events))
	copy(events, b.events)
	b.events = b.events[:0]
	b.mu.Unlock()

	for _, entry := range events {
		switch entry.Level {
		case cblog.DebugLevel:
			delegate.Debug(entry.ctx, entry.Message, entry.Fields...)
		case cblog.WarnLevel:
			delegate.Warn(entry.ctx, entry.Message, entry.Fields...)
		case cblog.ErrorLevel:
			delegate.Error(entry.ctx, entry.Message, entry.Fields...)
		default:
			delegate.Info(entry.ctx, entry.Message, entry.Fields...)
		}
	}
}
