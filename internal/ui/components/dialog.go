package components

import (
	"github.com/alexisbeaulieu97/overlay/internal/config"
	"github.com/alexisbeaulieu97/overlay/internal/disclosure"
	"github.com/alexisbeaulieu97/overlay/internal/placement"
	"github.com/alexisbeaulieu97/overlay/internal/surface"
	"github.com/alexisbeaulieu97/overlay/internal/ui"
)

const dialogMaxWidth = 40

// Dialog is a modal panel centred in the viewport. While open it locks
// background scrolling; it closes through its OK button or Escape.
type Dialog struct {
	*floating
	ok *surface.Node
}

func NewDialog(deps Deps, cfg config.Widget, trigger disclosure.Trigger) *Dialog {
	dlg := &Dialog{floating: newFloating(deps, cfg, trigger, placement.Bottom)}
	dlg.ok = deps.Engine.Surface().NewNode(cfg.ID + "-ok")
	dlg.addRow(dlg.ok, ui.RenderFunc(func() string {
		return triggerView(deps.Theme, "OK", false, false)
	}))
	dlg.build = func() *Panel {
		return NewPanel().
			WithTitle(cfg.Label).
			WithBody(cfg.Content).
			WithMaxWidth(dialogMaxWidth).
			WithRows(dlg.rowViews()...)
	}
	dlg.place = dlg.centre
	return dlg
}

func (dlg *Dialog) centre(size surface.Size) {
	vp := dlg.deps.Engine.Surface().Viewport()
	x := max(0, (vp.Width-size.Width)/2)
	y := max(0, (vp.Height-size.Height)/2)
	dlg.panel.SetRect(surface.NewRect(x, y, size.Width, size.Height))
}

// Activate opens the dialog; only its own controls close it.
func (dlg *Dialog) Activate() {
	dlg.d.RequestOpen()
}

// Click closes the dialog when OK was pressed.
func (dlg *Dialog) Click(target *surface.Node) bool {
	if dlg.d.State() != disclosure.Open || !dlg.ok.Contains(target) {
		return false
	}
	dlg.d.RequestClose()
	return true
}

// HandleKey confirms with enter.
func (dlg *Dialog) HandleKey(key string) bool {
	if dlg.d.State() != disclosure.Open || key != "enter" {
		return false
	}
	dlg.d.RequestClose()
	return true
}
