package components

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/overlay/internal/config"
	"github.com/alexisbeaulieu97/overlay/internal/disclosure"
	"github.com/alexisbeaulieu97/overlay/internal/engine"
	"github.com/alexisbeaulieu97/overlay/internal/placement"
	"github.com/alexisbeaulieu97/overlay/internal/ports"
	"github.com/alexisbeaulieu97/overlay/internal/surface"
	"github.com/alexisbeaulieu97/overlay/internal/transition"
	"github.com/alexisbeaulieu97/overlay/internal/ui"
	"github.com/alexisbeaulieu97/overlay/internal/ui/compose"
)

// Widget is one configured adapter. View renders its trigger in the page;
// Overlay renders its floating content, if any is present.
type Widget interface {
	ui.Renderable
	ID() string
	Kind() config.Kind
	Disclosure() *engine.Disclosure
	TriggerNode() *surface.Node
	// Activate is the keyboard equivalent of pressing the trigger.
	Activate()
	Overlay() (Overlay, bool)
	Destroy()
}

// Clicker is implemented by widgets with clickable content of their own.
type Clicker interface {
	Click(target *surface.Node) bool
}

// KeyHandler is implemented by widgets that react to keys while open.
type KeyHandler interface {
	HandleKey(key string) bool
}

// Container is implemented by widgets whose panel can hold nested widgets.
type Container interface {
	Adopt(child Widget)
}

// Overlay is a positioned block of rendered floating content.
type Overlay struct {
	Lines []string
	X, Y  int
	// Layer orders overlays; higher layers paint on top.
	Layer int
	Phase transition.Phase
	Modal bool
}

// Deps are the collaborators every widget needs.
type Deps struct {
	Engine  *engine.Engine
	Theme   Theme
	Logger  ports.Logger
	Context context.Context
	// Offset is the gap between an anchor and its floating panel.
	Offset int
}

type row struct {
	node *surface.Node
	view ui.Renderable
}

// floating is the shared core of every widget that renders a panel on its
// own layer.
type floating struct {
	cfg     config.Widget
	deps    Deps
	logger  ports.Logger
	d       *engine.Disclosure
	trigger *surface.Node
	panel   *surface.Node
	side    placement.Side

	rows     []row
	children []Widget

	// build renders the panel; place positions it once sized.
	build func() *Panel
	place func(size surface.Size)
}

func newFloating(deps Deps, cfg config.Widget, trigger disclosure.Trigger, side placement.Side) *floating {
	eng := deps.Engine
	f := &floating{
		cfg:    cfg,
		deps:   deps,
		logger: deps.Logger.With("widget", cfg.ID, "kind", string(cfg.Kind)),
		d: eng.CreateDisclosure(engine.Options{
			ID:                    cfg.ID,
			Trigger:               trigger,
			OpenDelay:             cfg.OpenDelay(),
			CloseDelay:            cfg.CloseDelay(),
			DismissOnOutsideClick: cfg.OutsideClick(),
			DismissOnEscape:       cfg.Escape(),
			Modal:                 cfg.Modal(),
			AnimationDuration:     cfg.AnimationDuration(),
		}),
		trigger: eng.Surface().NewNode(cfg.ID + "-trigger"),
		panel:   eng.Surface().NewNode(cfg.ID + "-panel"),
		side:    side,
	}
	f.place = f.anchor
	f.d.Bind(f.trigger, f.panel)
	f.d.OnReposition(f.reposition)
	f.d.SubscribePhase(func(c transition.PhaseChange) {
		if c.To == transition.Exited {
			eng.Surface().UnmountLayer(f.panel)
		}
	})
	f.d.Subscribe(func(c disclosure.Change) {
		if c.To == disclosure.Closing {
			for _, child := range f.children {
				child.Disclosure().RequestClose()
			}
		}
	})
	return f
}

func (f *floating) ID() string                     { return f.cfg.ID }
func (f *floating) Kind() config.Kind              { return f.cfg.Kind }
func (f *floating) Disclosure() *engine.Disclosure { return f.d }
func (f *floating) TriggerNode() *surface.Node     { return f.trigger }

func (f *floating) Activate() {
	f.d.Toggle()
}

// View renders the trigger button.
func (f *floating) View() string {
	return triggerView(f.deps.Theme, f.cfg.Label, f.d.State().Visible(), f.focused())
}

func (f *floating) focused() bool {
	return f.deps.Engine.Focused() == f.trigger
}

// Adopt nests child's trigger as a row of this panel.
func (f *floating) Adopt(child Widget) {
	f.children = append(f.children, child)
	f.addRow(child.TriggerNode(), child)
}

func (f *floating) addRow(node *surface.Node, view ui.Renderable) {
	f.panel.AppendChild(node)
	f.rows = append(f.rows, row{node: node, view: view})
}

func (f *floating) rowViews() []ui.Renderable {
	views := make([]ui.Renderable, len(f.rows))
	for i, r := range f.rows {
		views[i] = r.view
	}
	return views
}

func (f *floating) renderContext() RenderContext {
	return DefaultContext().WithTheme(f.deps.Theme)
}

// reposition sizes the panel from its rendered content, mounts it and lays
// out nested rows.
func (f *floating) reposition() {
	s := f.deps.Engine.Surface()
	p := f.build()
	lines := p.Lines(f.renderContext())
	size := surface.Size{Width: lipgloss.Width(strings.Join(lines, "\n")), Height: len(lines)}

	if !f.panel.Mounted() {
		s.MountLayer(f.panel)
	}
	rect, _ := f.panel.Rect()
	f.panel.SetRect(surface.NewRect(rect.X, rect.Y, size.Width, size.Height))
	f.place(size)

	origin, _ := f.panel.Rect()
	for i, r := range f.rows {
		dx, dy := p.RowOffset(f.renderContext(), i)
		r.node.SetRect(surface.NewRect(origin.X+dx, origin.Y+dy, lipgloss.Width(r.view.View()), 1))
	}
}

func (f *floating) anchor(surface.Size) {
	f.deps.Engine.Place(f.trigger, f.panel, f.side, f.deps.Offset)
}

// Overlay renders the panel at its resolved position; content is dimmed
// while entering or exiting.
func (f *floating) Overlay() (Overlay, bool) {
	if !f.d.Present() {
		return Overlay{}, false
	}
	rect, ok := f.panel.Rect()
	if !ok {
		return Overlay{}, false
	}

	phase := f.d.Phase()
	view := f.build().ViewWithContext(f.renderContext())
	if phase == transition.Entering || phase == transition.Exiting {
		view = compose.Dim(view)
	}
	return Overlay{
		Lines: strings.Split(view, "\n"),
		X:     rect.X,
		Y:     rect.Y,
		Layer: f.panel.Layer(),
		Phase: phase,
		Modal: f.cfg.Modal(),
	}, true
}

func (f *floating) Destroy() {
	for _, child := range f.children {
		child.Destroy()
	}
	f.d.Destroy()
	f.deps.Engine.Surface().UnmountLayer(f.panel)
	f.trigger.Remove()
}

func triggerView(theme Theme, label string, active, focused bool) string {
	text := NewText(theme.TriggerOpen + " " + label + " " + theme.TriggerClose)
	funcs := []StyleFunc{Foreground(PaletteAccent)}
	if active {
		funcs = append(funcs, Background(PaletteAccent))
	}
	if focused {
		funcs = append(funcs, Bold(), Underline())
	}
	return text.WithAppliers(funcs...).ViewWithContext(DefaultContext().WithTheme(theme))
}

// HeaderWidth is the width of the first line w renders in the page.
func HeaderWidth(w Widget) int {
	line, _, _ := strings.Cut(w.View(), "\n")
	return lipgloss.Width(line)
}
