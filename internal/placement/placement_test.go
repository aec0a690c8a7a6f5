package placement

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/overlay/internal/surface"
)

var screen = surface.NewRect(0, 0, 80, 24)

func TestResolveKeepsPreferredSideWhenItFits(t *testing.T) {
	t.Parallel()

	anchor := surface.NewRect(30, 10, 10, 1)
	size := surface.Size{Width: 20, Height: 3}

	cases := []struct {
		side Side
		want Placement
	}{
		{Top, Placement{Top: 6, Left: 25, Side: Top}},
		{Bottom, Placement{Top: 12, Left: 25, Side: Bottom}},
		{Left, Placement{Top: 9, Left: 9, Side: Left}},
		{Right, Placement{Top: 9, Left: 41, Side: Right}},
	}

	for _, tc := range cases {
		t.Run(tc.side.String(), func(t *testing.T) {
			got := Resolve(anchor, size, tc.side, screen, 1)
			require.Equal(t, tc.want, got)
			require.False(t, got.Flipped)
		})
	}
}

func TestResolveFlipsWhenPreferredSideOverflows(t *testing.T) {
	t.Parallel()

	// anchor on the first usable row: no room above
	anchor := surface.NewRect(30, 1, 10, 1)
	size := surface.Size{Width: 20, Height: 3}

	got := Resolve(anchor, size, Top, screen, 1)
	require.True(t, got.Flipped)
	require.Equal(t, Bottom, got.Side)
	require.Equal(t, 3, got.Top)
	require.True(t, screen.Inset(DefaultEdgeMargin).Encloses(got.Rect(size)))
}

func TestResolveFlipsHorizontally(t *testing.T) {
	t.Parallel()

	anchor := surface.NewRect(70, 10, 5, 1)
	size := surface.Size{Width: 12, Height: 4}

	got := Resolve(anchor, size, Right, screen, 0)
	require.True(t, got.Flipped)
	require.Equal(t, Left, got.Side)
	require.Equal(t, 58, got.Left)
	require.True(t, screen.Inset(DefaultEdgeMargin).Encloses(got.Rect(size)))
}

func TestResolveKeepsFlipEvenIfStillOverflowing(t *testing.T) {
	t.Parallel()

	viewport := surface.NewRect(0, 0, 40, 6)
	anchor := surface.NewRect(10, 3, 4, 1)
	size := surface.Size{Width: 10, Height: 5}

	got := Resolve(anchor, size, Bottom, viewport, 0)
	require.True(t, got.Flipped)
	require.Equal(t, Top, got.Side)
	require.Equal(t, -2, got.Top)
}

func TestResolveClampsCrossAxis(t *testing.T) {
	t.Parallel()

	anchor := surface.NewRect(0, 10, 4, 1)
	size := surface.Size{Width: 20, Height: 2}

	got := Resolve(anchor, size, Bottom, screen, 0)
	require.False(t, got.Flipped)
	require.Equal(t, DefaultEdgeMargin, got.Left)

	anchor = surface.NewRect(78, 10, 2, 1)
	got = Resolve(anchor, size, Top, screen, 0)
	require.Equal(t, 80-DefaultEdgeMargin-20, got.Left)
}

func TestResolveSlidesInsteadOfFlippingOnCrossAxisOverflow(t *testing.T) {
	t.Parallel()

	// centred above the anchor the box would start at column -4; there is
	// room above, so it keeps the top side and slides right
	got := Resolve(surface.NewRect(0, 10, 2, 1), surface.Size{Width: 10, Height: 3}, Top, screen, 0)
	require.Equal(t, Placement{Top: 7, Left: DefaultEdgeMargin, Side: Top, Flipped: false}, got)

	got = Resolve(surface.NewRect(79, 5, 1, 1), surface.Size{Width: 4, Height: 12}, Left, screen, 0)
	require.Equal(t, Left, got.Side)
	require.False(t, got.Flipped)
	require.Equal(t, DefaultEdgeMargin, got.Top)
}

func TestResolveCrossAxisLargerThanViewportAlignsToStart(t *testing.T) {
	t.Parallel()

	viewport := surface.NewRect(0, 0, 10, 24)
	got := Resolver{}.Resolve(surface.NewRect(4, 10, 2, 1), surface.Size{Width: 30, Height: 1}, Bottom, viewport, 0)
	require.Equal(t, 0, got.Left)
}

func TestResolveIsIdempotent(t *testing.T) {
	t.Parallel()

	anchor := surface.NewRect(5, 22, 8, 1)
	size := surface.Size{Width: 16, Height: 5}
	first := Resolve(anchor, size, Bottom, screen, 1)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Resolve(anchor, size, Bottom, screen, 1))
	}
}

func TestParseSide(t *testing.T) {
	t.Parallel()

	side, err := ParseSide("LEFT")
	require.NoError(t, err)
	require.Equal(t, Left, side)

	side, err = ParseSide("")
	require.NoError(t, err)
	require.Equal(t, Bottom, side)

	_, err = ParseSide("diagonal")
	require.Error(t, err)
}

func TestTrackerReflowsRegisteredEntries(t *testing.T) {
	t.Parallel()

	tr := NewTracker()
	var calls []string
	tr.Track("a", func() { calls = append(calls, "a") })
	tr.Track("b", func() {
		calls = append(calls, "b")
		tr.Untrack("c")
	})
	tr.Track("c", func() { calls = append(calls, "c") })

	tr.Reflow()
	require.Equal(t, []string{"a", "b"}, calls)
	require.Equal(t, 2, tr.Len())

	tr.Untrack("a")
	tr.Untrack("missing")
	require.False(t, tr.Tracked("a"))
	require.True(t, tr.Tracked("b"))
}
