package components

import (
	"time"

	"github.com/alexisbeaulieu97/overlay/internal/config"
	"github.com/alexisbeaulieu97/overlay/internal/disclosure"
	"github.com/alexisbeaulieu97/overlay/internal/placement"
	"github.com/alexisbeaulieu97/overlay/internal/schedule"
	"github.com/alexisbeaulieu97/overlay/internal/surface"
)

// Toast is a transient notice in the bottom-right corner that closes itself
// after a delay.
type Toast struct {
	*floating
	cancel schedule.Cancel
}

func NewToast(deps Deps, cfg config.Widget, trigger disclosure.Trigger) *Toast {
	t := &Toast{floating: newFloating(deps, cfg, trigger, placement.Bottom), cancel: schedule.Nop}
	t.build = func() *Panel {
		return NewPanel().WithBody(cfg.Content).WithAppliers(PanelFrame(PaletteSuccess))
	}
	t.place = t.corner
	t.d.Subscribe(func(c disclosure.Change) {
		if c.To == disclosure.Closing {
			t.disarm()
		}
	})
	return t
}

func (t *Toast) corner(size surface.Size) {
	vp := t.deps.Engine.Surface().Viewport()
	margin := placement.DefaultEdgeMargin
	x := max(0, vp.Width-size.Width-margin)
	y := max(0, vp.Height-size.Height-margin)
	t.panel.SetRect(surface.NewRect(x, y, size.Width, size.Height))
}

// Activate shows the toast and restarts its auto-close timer.
func (t *Toast) Activate() {
	t.Show(t.cfg.AutoClose())
}

// Show opens the toast for d; a non-positive d keeps it open until closed.
func (t *Toast) Show(d time.Duration) {
	t.disarm()
	t.d.RequestOpen()
	if d > 0 {
		t.cancel = t.deps.Engine.Scheduler().After(d, t.d.RequestClose)
	}
}

func (t *Toast) disarm() {
	t.cancel()
	t.cancel = schedule.Nop
}

func (t *Toast) Destroy() {
	t.disarm()
	t.floating.Destroy()
}
