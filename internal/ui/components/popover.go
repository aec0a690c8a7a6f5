package components

import (
	"github.com/alexisbeaulieu97/overlay/internal/config"
	"github.com/alexisbeaulieu97/overlay/internal/disclosure"
	"github.com/alexisbeaulieu97/overlay/internal/placement"
)

const popoverMaxWidth = 36

// Popover is a titled panel anchored to its trigger. Nested widgets render as
// rows inside it.
type Popover struct {
	*floating
}

func NewPopover(deps Deps, cfg config.Widget, trigger disclosure.Trigger, side placement.Side) *Popover {
	p := &Popover{floating: newFloating(deps, cfg, trigger, side)}
	p.build = func() *Panel {
		return NewPanel().
			WithTitle(cfg.Label).
			WithBody(cfg.Content).
			WithMaxWidth(popoverMaxWidth).
			WithRows(p.rowViews()...)
	}
	return p
}
