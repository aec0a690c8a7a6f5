package disclosure

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/overlay/internal/schedule"
)

func record(d *Instance) *[]Change {
	changes := &[]Change{}
	d.Subscribe(func(c Change) { *changes = append(*changes, c) })
	return changes
}

func TestRequestOpenPassesThroughOpening(t *testing.T) {
	t.Parallel()

	clock := schedule.NewManual()
	d := New(clock, Options{ID: "menu"})
	changes := record(d)

	d.RequestOpen()
	require.Equal(t, Opening, d.State())

	clock.Flush()
	require.Equal(t, Open, d.State())
	require.Equal(t, []Change{
		{ID: "menu", From: Closed, To: Opening},
		{ID: "menu", From: Opening, To: Open},
	}, *changes)
}

func TestRequestOpenTwiceTransitionsOnce(t *testing.T) {
	t.Parallel()

	clock := schedule.NewManual()
	d := New(clock, Options{})
	changes := record(d)

	d.RequestOpen()
	d.RequestOpen()
	clock.Flush()
	d.RequestOpen()
	clock.Flush()

	require.Len(t, *changes, 2)
	require.Equal(t, Open, d.State())
}

func TestRequestOpenWhileClosingReverses(t *testing.T) {
	t.Parallel()

	clock := schedule.NewManual()
	d := New(clock, Options{})
	d.RequestOpen()
	clock.Flush()

	changes := record(d)
	d.RequestClose()
	require.Equal(t, Closing, d.State())
	d.RequestOpen()
	require.Equal(t, Opening, d.State())
	clock.Flush()

	require.Equal(t, Open, d.State())
	for _, c := range *changes {
		require.NotEqual(t, Closed, c.To)
	}
}

func TestRequestCloseWhileOpeningReverses(t *testing.T) {
	t.Parallel()

	clock := schedule.NewManual()
	d := New(clock, Options{})
	d.RequestOpen()
	d.RequestClose()
	require.Equal(t, Closing, d.State())
	clock.Flush()
	require.Equal(t, Closed, d.State())
}

func TestToggle(t *testing.T) {
	t.Parallel()

	clock := schedule.NewManual()
	d := New(clock, Options{})

	d.Toggle()
	clock.Flush()
	require.Equal(t, Open, d.State())

	d.Toggle()
	clock.Flush()
	require.Equal(t, Closed, d.State())
}

func TestRandomRequestSequencesAlwaysSettle(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		clock := schedule.NewManual()
		trigger := Click
		if round%2 == 1 {
			trigger = Hover
		}
		d := New(clock, Options{Trigger: trigger, OpenDelay: 30 * time.Millisecond, CloseDelay: 20 * time.Millisecond})

		for step := 0; step < 25; step++ {
			switch rng.Intn(4) {
			case 0:
				d.RequestOpen()
			case 1:
				d.RequestClose()
			case 2:
				d.Toggle()
			default:
				clock.Advance(time.Duration(rng.Intn(40)) * time.Millisecond)
			}
		}

		require.True(t, clock.Settle(time.Second))
		require.True(t, d.State().Settled(), "round %d ended in %s", round, d.State())
		require.False(t, d.Pending())
	}
}

func TestHoverCloseBeforeOpenDelayNeverOpens(t *testing.T) {
	t.Parallel()

	clock := schedule.NewManual()
	d := New(clock, Options{Trigger: Hover, OpenDelay: 300 * time.Millisecond})
	changes := record(d)

	d.RequestOpen()
	clock.Advance(150 * time.Millisecond)
	d.RequestClose()
	clock.Advance(time.Second)

	require.Equal(t, Closed, d.State())
	require.Empty(t, *changes)
}

func TestHoverOpenAfterDelay(t *testing.T) {
	t.Parallel()

	clock := schedule.NewManual()
	d := New(clock, Options{Trigger: Hover, OpenDelay: 300 * time.Millisecond, CloseDelay: 100 * time.Millisecond})

	d.RequestOpen()
	clock.Advance(299 * time.Millisecond)
	require.Equal(t, Closed, d.State())
	clock.Advance(time.Millisecond)
	require.Equal(t, Open, d.State())

	d.RequestClose()
	clock.Advance(50 * time.Millisecond)
	require.Equal(t, Open, d.State())

	// re-entering during the close delay keeps it open
	d.RequestOpen()
	clock.Advance(time.Second)
	require.Equal(t, Open, d.State())

	d.RequestClose()
	clock.Advance(100 * time.Millisecond)
	require.Equal(t, Closed, d.State())
}

func TestDelaysIgnoredForClickTrigger(t *testing.T) {
	t.Parallel()

	clock := schedule.NewManual()
	d := New(clock, Options{Trigger: Click, OpenDelay: time.Hour})
	d.RequestOpen()
	clock.Flush()
	require.Equal(t, Open, d.State())
}

func TestDestroyCancelsPendingWork(t *testing.T) {
	t.Parallel()

	clock := schedule.NewManual()
	d := New(clock, Options{Trigger: Hover, OpenDelay: 10 * time.Millisecond})
	changes := record(d)

	d.RequestOpen()
	d.Destroy()
	clock.Advance(time.Second)

	require.Zero(t, clock.Pending())
	require.Equal(t, Closed, d.State())
	require.Empty(t, *changes)

	d.RequestOpen()
	require.Equal(t, Closed, d.State())
	require.True(t, d.Destroyed())
}

func TestDestroyMidTransitionStopsUpdates(t *testing.T) {
	t.Parallel()

	clock := schedule.NewManual()
	d := New(clock, Options{})
	changes := record(d)

	d.RequestOpen()
	d.Destroy()
	clock.Flush()

	require.Equal(t, Opening, d.State())
	require.Len(t, *changes, 1)
	require.Zero(t, clock.Pending())
}

func TestUnsubscribeInsideCallback(t *testing.T) {
	t.Parallel()

	clock := schedule.NewManual()
	d := New(clock, Options{})

	calls := 0
	var unsubscribe func()
	unsubscribe = d.Subscribe(func(Change) {
		calls++
		unsubscribe()
	})
	other := record(d)

	d.RequestOpen()
	clock.Flush()

	require.Equal(t, 1, calls)
	require.Len(t, *other, 2)
}

func TestRequestFromCallbackCancelsDeferredMove(t *testing.T) {
	t.Parallel()

	clock := schedule.NewManual()
	d := New(clock, Options{})
	d.Subscribe(func(c Change) {
		if c.To == Opening {
			d.RequestClose()
		}
	})

	d.RequestOpen()
	clock.Flush()
	require.Equal(t, Closed, d.State())
}

func TestParseTrigger(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]Trigger{"click": Click, "Hover": Hover, " focus ": Focus, "manual": Manual, "": Click} {
		got, err := ParseTrigger(input)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseTrigger("long-press")
	require.Error(t, err)
}

func TestGeneratedIDsAreUnique(t *testing.T) {
	t.Parallel()

	clock := schedule.NewManual()
	require.NotEqual(t, New(clock, Options{}).ID(), New(clock, Options{}).ID())
}
