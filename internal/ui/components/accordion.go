package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/overlay/internal/config"
	"github.com/alexisbeaulieu97/overlay/internal/disclosure"
	"github.com/alexisbeaulieu97/overlay/internal/engine"
	"github.com/alexisbeaulieu97/overlay/internal/surface"
	"github.com/alexisbeaulieu97/overlay/internal/transition"
	"github.com/alexisbeaulieu97/overlay/internal/ui/compose"
)

const accordionIndent = 2

// Accordion expands its content inline under a header. It has no floating
// layer, so it is never dismissed from outside.
type Accordion struct {
	cfg     config.Widget
	deps    Deps
	d       *engine.Disclosure
	trigger *surface.Node
}

func NewAccordion(deps Deps, cfg config.Widget, trigger disclosure.Trigger) *Accordion {
	a := &Accordion{
		cfg:  cfg,
		deps: deps,
		d: deps.Engine.CreateDisclosure(engine.Options{
			ID:                    cfg.ID,
			Trigger:               trigger,
			OpenDelay:             cfg.OpenDelay(),
			CloseDelay:            cfg.CloseDelay(),
			DismissOnOutsideClick: cfg.OutsideClick(),
			DismissOnEscape:       cfg.Escape(),
			AnimationDuration:     cfg.AnimationDuration(),
		}),
		trigger: deps.Engine.Surface().NewNode(cfg.ID + "-header"),
	}
	a.d.Bind(a.trigger, nil)
	return a
}

func (a *Accordion) ID() string                     { return a.cfg.ID }
func (a *Accordion) Kind() config.Kind              { return a.cfg.Kind }
func (a *Accordion) Disclosure() *engine.Disclosure { return a.d }
func (a *Accordion) TriggerNode() *surface.Node     { return a.trigger }

func (a *Accordion) Activate() {
	a.d.Toggle()
}

// View renders the header and, while present, the indented content.
func (a *Accordion) View() string {
	ctx := DefaultContext().WithTheme(a.deps.Theme)
	marker := "▸ "
	if a.d.State().Visible() {
		marker = "▾ "
	}
	funcs := []StyleFunc{Bold()}
	if a.deps.Engine.Focused() == a.trigger {
		funcs = append(funcs, Underline())
	}
	header := NewText(marker + a.cfg.Label).WithAppliers(funcs...).ViewWithContext(ctx)
	if !a.d.Present() {
		return header
	}

	body := MutedText(a.cfg.Content).ViewWithContext(ctx)
	body = lipgloss.NewStyle().PaddingLeft(accordionIndent).Render(body)
	if phase := a.d.Phase(); phase == transition.Entering || phase == transition.Exiting {
		body = compose.Dim(body)
	}
	return strings.Join([]string{header, body}, "\n")
}

// Overlay is always empty; accordion content is part of the page.
func (a *Accordion) Overlay() (Overlay, bool) {
	return Overlay{}, false
}

func (a *Accordion) Destroy() {
	a.d.Destroy()
	a.trigger.Remove()
}
