package dismiss

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/overlay/internal/surface"
)

type fakeTarget struct {
	id     string
	closes int
}

func (f *fakeTarget) ID() string    { return f.id }
func (f *fakeTarget) RequestClose() { f.closes++ }

type fixture struct {
	screen  *surface.Surface
	trigger *surface.Node
	panel   *surface.Node
	inside  *surface.Node
	outside *surface.Node
}

func newFixture() fixture {
	s := surface.New(80, 24)
	f := fixture{
		screen:  s,
		trigger: s.NewNode("trigger").SetRect(surface.NewRect(2, 2, 8, 1)),
		panel:   s.NewNode("panel").SetRect(surface.NewRect(2, 3, 20, 6)),
		inside:  s.NewNode("inside").SetRect(surface.NewRect(3, 4, 6, 1)),
		outside: s.NewNode("outside").SetRect(surface.NewRect(40, 10, 6, 1)),
	}
	s.Root().AppendChild(f.trigger)
	s.Root().AppendChild(f.outside)
	f.panel.AppendChild(f.inside)
	s.MountLayer(f.panel)
	return f
}

func TestPointerDownOutsideCloses(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := New()
	popover := &fakeTarget{id: "popover"}
	require.True(t, c.Register(popover, f.panel, f.trigger, Options{OutsideClick: true}))

	require.Empty(t, c.PointerDown(f.inside))
	require.Empty(t, c.PointerDown(f.trigger))
	require.Zero(t, popover.closes)

	require.Equal(t, []string{"popover"}, c.PointerDown(f.outside))
	require.Equal(t, 1, popover.closes)
}

func TestPointerDownRespectsOptOut(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := New()
	tip := &fakeTarget{id: "tip"}
	require.True(t, c.Register(tip, f.panel, f.trigger, Options{Escape: true}))

	c.PointerDown(f.outside)
	require.Zero(t, tip.closes)
}

func TestNilBoundaryDisablesDismissal(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := New()
	require.False(t, c.Register(&fakeTarget{id: "early"}, nil, f.trigger, Options{OutsideClick: true, Escape: true}))
	require.False(t, c.Register(&fakeTarget{id: "none"}, f.panel, f.trigger, Options{}))
	require.Zero(t, c.Len())
}

func TestEscapeClosesTopmostOnly(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := New()
	first := &fakeTarget{id: "first"}
	second := &fakeTarget{id: "second"}
	c.Register(first, f.panel, f.trigger, Options{Escape: true})
	c.Register(second, f.outside, f.inside, Options{Escape: true})

	id, ok := c.Escape()
	require.True(t, ok)
	require.Equal(t, "second", id)
	require.Equal(t, 1, second.closes)
	require.Zero(t, first.closes)
}

func TestEscapeSwallowedWhenTopmostOptsOut(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := New()
	bottom := &fakeTarget{id: "bottom"}
	top := &fakeTarget{id: "top"}
	c.Register(bottom, f.panel, f.trigger, Options{Escape: true})
	c.Register(top, f.outside, nil, Options{OutsideClick: true})

	_, ok := c.Escape()
	require.False(t, ok)
	require.Zero(t, bottom.closes)

	_, ok = New().Escape()
	require.False(t, ok)
}

func TestNestedBoundaryProtectsParent(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := New()
	popover := &fakeTarget{id: "popover"}
	c.Register(popover, f.panel, f.trigger, Options{OutsideClick: true})

	// a dropdown opened from a button inside the popover, floating elsewhere
	menu := f.screen.NewNode("menu").SetRect(surface.NewRect(30, 4, 10, 4))
	menuItem := f.screen.NewNode("menu-item").SetRect(surface.NewRect(30, 5, 10, 1))
	menu.AppendChild(menuItem)
	f.screen.MountLayer(menu)
	dropdown := &fakeTarget{id: "dropdown"}
	c.Register(dropdown, menu, f.inside, Options{OutsideClick: true})

	require.Empty(t, c.PointerDown(menuItem))
	require.Zero(t, popover.closes)

	// after the dropdown is gone, the same node no longer protects the popover
	c.Unregister("dropdown")
	require.Equal(t, []string{"popover"}, c.PointerDown(menuItem))
}

func TestUnregister(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := New()
	target := &fakeTarget{id: "p"}
	c.Register(target, f.panel, f.trigger, Options{OutsideClick: true})
	require.True(t, c.Registered("p"))
	top, ok := c.Top()
	require.True(t, ok)
	require.Equal(t, "p", top)

	c.Unregister("p")
	c.Unregister("p")
	require.False(t, c.Registered("p"))
	c.PointerDown(f.outside)
	require.Zero(t, target.closes)
}
