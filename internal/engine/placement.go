package engine

import (
	"github.com/alexisbeaulieu97/overlay/internal/placement"
	"github.com/alexisbeaulieu97/overlay/internal/surface"
)

// ResolvePlacement positions floating next to anchor within the current
// viewport. When either node is detached the last placement computed for
// floating is returned instead, or the zero Placement if there is none.
func (e *Engine) ResolvePlacement(anchor, floating *surface.Node, side placement.Side, offset int) placement.Placement {
	anchorRect, anchorOK := anchor.Rect()
	floatingRect, floatingOK := floating.Rect()
	if !anchorOK || !floatingOK {
		e.logger.Debug(e.ctx, "placement on detached node",
			"anchor", anchor.ID(), "floating", floating.ID())
		return e.last[floating]
	}

	p := e.resolver.Resolve(anchorRect, floatingRect.Size(), side, e.surface.Viewport(), offset)
	e.last[floating] = p
	return p
}

// Place resolves a placement and moves floating to it.
func (e *Engine) Place(anchor, floating *surface.Node, side placement.Side, offset int) placement.Placement {
	p := e.ResolvePlacement(anchor, floating, side, offset)
	if floating.Mounted() && anchor.Mounted() {
		rect, _ := floating.Rect()
		floating.SetRect(p.Rect(rect.Size()))
	}
	return p
}
