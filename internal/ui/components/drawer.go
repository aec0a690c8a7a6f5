package components

import (
	"github.com/alexisbeaulieu97/overlay/internal/config"
	"github.com/alexisbeaulieu97/overlay/internal/disclosure"
	"github.com/alexisbeaulieu97/overlay/internal/placement"
	"github.com/alexisbeaulieu97/overlay/internal/surface"
)

const (
	drawerMaxWidth  = 32
	drawerMinWidth  = 16
	drawerMaxHeight = 8
)

// Drawer is a modal sheet pinned to one viewport edge. Left and right drawers
// span the full height; top and bottom drawers span the full width.
type Drawer struct {
	*floating
}

func NewDrawer(deps Deps, cfg config.Widget, trigger disclosure.Trigger, side placement.Side) *Drawer {
	dr := &Drawer{floating: newFloating(deps, cfg, trigger, side)}
	dr.build = func() *Panel {
		width, height := dr.extent()
		// two cells of border, two of padding
		return NewPanel().
			WithTitle(cfg.Label).
			WithBody(cfg.Content).
			WithRows(dr.rowViews()...).
			WithWidth(max(1, width-4)).
			WithHeight(max(1, height-2))
	}
	dr.place = dr.pin
	return dr
}

// extent is the outer size of the drawer for the current viewport.
func (dr *Drawer) extent() (width, height int) {
	vp := dr.deps.Engine.Surface().Viewport()
	if dr.side.Vertical() {
		return vp.Width, min(drawerMaxHeight, max(3, vp.Height/3))
	}
	return min(drawerMaxWidth, max(drawerMinWidth, vp.Width/3)), vp.Height
}

func (dr *Drawer) pin(size surface.Size) {
	vp := dr.deps.Engine.Surface().Viewport()
	x, y := 0, 0
	switch dr.side {
	case placement.Right:
		x = vp.Width - size.Width
	case placement.Bottom:
		y = vp.Height - size.Height
	}
	dr.panel.SetRect(surface.NewRect(max(0, x), max(0, y), size.Width, size.Height))
}

// Activate opens the drawer.
func (dr *Drawer) Activate() {
	dr.d.RequestOpen()
}
