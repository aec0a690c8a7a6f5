package schedule

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestManualRunsDeferredBeforeTimers(t *testing.T) {
	t.Parallel()

	m := NewManual()
	var order []string
	m.After(0, func() { order = append(order, "timer") })
	m.Defer(func() {
		order = append(order, "deferred")
		m.Defer(func() { order = append(order, "nested") })
	})

	m.Advance(0)
	require.Equal(t, []string{"deferred", "nested", "timer"}, order)
	require.Zero(t, m.Pending())
}

func TestManualAdvanceRunsTimersInDueOrder(t *testing.T) {
	t.Parallel()

	m := NewManual()
	var order []string
	m.After(300*time.Millisecond, func() { order = append(order, "c") })
	m.After(100*time.Millisecond, func() { order = append(order, "a") })
	m.After(100*time.Millisecond, func() { order = append(order, "b") })

	m.Advance(150 * time.Millisecond)
	require.Equal(t, []string{"a", "b"}, order)
	require.Equal(t, 150*time.Millisecond, m.Elapsed())
	require.Equal(t, 1, m.Pending())

	m.Advance(150 * time.Millisecond)
	require.Equal(t, []string{"a", "b", "c"}, order)
}

func TestManualTimersScheduledDuringAdvance(t *testing.T) {
	t.Parallel()

	m := NewManual()
	var fired []time.Duration
	m.After(10*time.Millisecond, func() {
		fired = append(fired, m.Elapsed())
		m.After(10*time.Millisecond, func() { fired = append(fired, m.Elapsed()) })
	})

	m.Advance(time.Second)
	require.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, fired)
}

func TestManualCancel(t *testing.T) {
	t.Parallel()

	m := NewManual()
	ran := false
	cancel := m.After(time.Millisecond, func() { ran = true })
	cancel()
	cancel()

	m.Advance(time.Second)
	require.False(t, ran)
	require.Zero(t, m.Pending())
}

func TestManualSettle(t *testing.T) {
	t.Parallel()

	m := NewManual()
	m.After(time.Minute, func() {})
	require.False(t, m.Settle(time.Second))
	require.True(t, m.Settle(time.Hour))
}

func TestProgramHandlesFiredTasks(t *testing.T) {
	t.Parallel()

	p := NewProgram()
	ran := 0
	p.Defer(func() { ran++ })
	cancel := p.After(time.Millisecond, func() { ran += 10 })

	require.NotNil(t, p.Commands())
	require.Nil(t, p.Commands())
	require.Equal(t, 2, p.Pending())

	cancel()
	require.True(t, p.Handle(FiredMsg{ID: 1}))
	require.False(t, p.Handle(FiredMsg{ID: 2}))
	require.False(t, p.Handle(FiredMsg{ID: 1}))
	require.Equal(t, 1, ran)
}

func TestProgramDeferredCommandResolvesToFiredMsg(t *testing.T) {
	t.Parallel()

	p := NewProgram()
	p.Defer(func() {})

	cmd := p.Commands()
	require.NotNil(t, cmd)
	msg := cmd()
	// a single command is returned as-is by tea.Batch
	if batch, ok := msg.(tea.BatchMsg); ok {
		require.Len(t, batch, 1)
		msg = batch[0]()
	}
	require.Equal(t, FiredMsg{ID: 1}, msg)
}
