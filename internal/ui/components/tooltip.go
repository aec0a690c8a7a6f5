package components

import (
	"github.com/alexisbeaulieu97/overlay/internal/config"
	"github.com/alexisbeaulieu97/overlay/internal/disclosure"
	"github.com/alexisbeaulieu97/overlay/internal/placement"
)

const tooltipMaxWidth = 30

// Tooltip shows short help text next to its trigger, by default on hover.
type Tooltip struct {
	*floating
}

func NewTooltip(deps Deps, cfg config.Widget, trigger disclosure.Trigger, side placement.Side) *Tooltip {
	t := &Tooltip{floating: newFloating(deps, cfg, trigger, side)}
	t.build = func() *Panel {
		return NewPanel().
			WithBody(cfg.Content).
			WithMaxWidth(tooltipMaxWidth).
			WithAppliers(PanelFrame(PaletteMuted))
	}
	return t
}

// View renders the trigger as an unobtrusive marker.
func (t *Tooltip) View() string {
	funcs := []StyleFunc{Foreground(PaletteMuted)}
	if t.d.State().Visible() {
		funcs = []StyleFunc{Foreground(PaletteAccent)}
	}
	if t.focused() {
		funcs = append(funcs, Underline())
	}
	return NewText("(" + t.cfg.Label + ")").WithAppliers(funcs...).ViewWithContext(t.renderContext())
}
