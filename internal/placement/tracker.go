package placement

// Tracker holds the recompute callbacks of every open floating element.
// The host calls Reflow from its single resize and scroll handlers; entries
// exist only while their instance is open.
type Tracker struct {
	entries map[string]func()
	order   []string
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{entries: make(map[string]func())}
}

// Track registers recompute under id, replacing any previous entry.
func (t *Tracker) Track(id string, recompute func()) {
	if recompute == nil {
		return
	}
	if _, ok := t.entries[id]; !ok {
		t.order = append(t.order, id)
	}
	t.entries[id] = recompute
}

// Untrack removes id. Unknown ids are ignored.
func (t *Tracker) Untrack(id string) {
	if _, ok := t.entries[id]; !ok {
		return
	}
	delete(t.entries, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Tracked reports whether id is registered.
func (t *Tracker) Tracked(id string) bool {
	_, ok := t.entries[id]
	return ok
}

// Len counts registered entries.
func (t *Tracker) Len() int {
	return len(t.entries)
}

// Reflow runs every registered recompute in registration order. Entries
// removed by an earlier callback are skipped.
func (t *Tracker) Reflow() {
	ids := append([]string(nil), t.order...)
	for _, id := range ids {
		if fn, ok := t.entries[id]; ok {
			fn()
		}
	}
}
